package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Etozheigor/phonebook/internal/models"
	"github.com/Etozheigor/phonebook/internal/service"
)

const (
	msgNotFound  = "Контакты по запросу отсутствуют в справочнике"
	msgAmbiguous = "Найдено несколько контактов, удовлетворяющих запросу. " +
		"Уточните запрос, чтобы остался один, который вы хотите изменить"
	msgBadPage = "Номер страницы должен быть числом большим нуля"
	msgEdited  = "Контакт успешно изменён"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "phonebook",
		Short: "Телефонный справочник",
		Long: `Телефонный справочник в CSV-файле с разделителем ";".

Каждая запись хранится строкой вида
"Имя";"Отчество";"Фамилия";"Компания";"Моб. тел";"Рабочий тел."`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.file, "file", "", "Файл справочника (по умолчанию PHONEBOOK_FILE или phonebook.csv)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Подробный лог в stderr")
	root.SetGlobalNormalizationFunc(normalizeFlagName)

	root.AddCommand(
		newGetCmd(a),
		newAddCmd(a),
		newSearchCmd(a),
		newEditCmd(a),
		newImportCmd(a),
		newExportCmd(a),
	)
	return root
}

// normalizeFlagName принимает старое написание --patronimic.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "patronimic" {
		name = "patronymic"
	}
	return pflag.NormalizedName(name)
}

// contactFlags — новые значения полей контакта.
type contactFlags struct {
	name, patronymic, surname, company, mobilePhone, workPhone string
}

func (f *contactFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.name, "name", "n", "", "Имя")
	fs.StringVarP(&f.patronymic, "patronymic", "p", "", "Отчество")
	fs.StringVarP(&f.surname, "surname", "s", "", "Фамилия")
	fs.StringVarP(&f.company, "company", "c", "", "Компания")
	fs.StringVarP(&f.mobilePhone, "mobilephone", "m", "", "Мобильный телефон")
	fs.StringVarP(&f.workPhone, "workphone", "w", "", "Рабочий телефон")
}

func (f *contactFlags) update() models.ContactUpdate {
	return models.ContactUpdate{
		Name:        models.Some(f.name),
		Patronymic:  models.Some(f.patronymic),
		Surname:     models.Some(f.surname),
		Company:     models.Some(f.company),
		MobilePhone: models.Some(f.mobilePhone),
		WorkPhone:   models.Some(f.workPhone),
	}
}

// searchFlags — условия поиска.
type searchFlags struct {
	name, surname, phone string
}

func (f *searchFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.name, "searchname", "", "Имя для поиска (начало имени)")
	fs.StringVar(&f.surname, "searchsurname", "", "Фамилия для поиска (начало фамилии)")
	fs.StringVar(&f.phone, "searchphone", "", "Телефон для поиска (начало номера)")
}

func (f *searchFlags) criteria() models.Criteria {
	return models.Criteria{
		Name:    models.Some(f.name),
		Surname: models.Some(f.surname),
		Phone:   models.Some(f.phone),
	}
}

func newGetCmd(a *app) *cobra.Command {
	var pages string
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Вывести контакты постранично (10 на странице)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			contacts, err := a.book.List(cmd.Context(), pages)
			var verr *service.ValidationError
			if errors.As(err, &verr) {
				_, err = fmt.Fprintln(out, msgBadPage)
				return err
			}
			if err != nil {
				return err
			}
			return printContacts(out, contacts)
		},
	}
	cmd.Flags().StringVarP(&pages, "pages", "g", "", "Номер страницы; без него выводятся все контакты")
	return cmd
}

func newAddCmd(a *app) *cobra.Command {
	var fields contactFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Добавить новый контакт",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := fields.update().Contact()
			if err := a.book.Add(cmd.Context(), c); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Контакт %s %s успешно добавлен\n", c.Name, c.Surname)
			return err
		},
	}
	fields.bind(cmd)
	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	var search searchFlags
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Найти контакты по имени, фамилии и телефону",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			contacts, err := a.book.Search(cmd.Context(), search.criteria())
			if err != nil {
				return err
			}
			if len(contacts) == 0 {
				_, err = fmt.Fprintln(out, msgNotFound)
				return err
			}
			return printContacts(out, contacts)
		},
	}
	search.bind(cmd)
	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	var (
		search searchFlags
		fields contactFlags
	)
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Изменить единственный контакт, найденный по условиям поиска",
		Long: `Находит контакт по --searchname, --searchsurname и --searchphone
и заменяет переданные поля. Непереданные поля сохраняют старые значения.
Если найдено несколько контактов, ничего не меняется.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			res, err := a.book.Edit(cmd.Context(), fields.update(), search.criteria())

			var amb *service.AmbiguousMatchError
			switch {
			case errors.Is(err, service.ErrNotFound):
				_, err = fmt.Fprintln(out, msgNotFound)
				return err
			case errors.As(err, &amb):
				if _, err := fmt.Fprintln(out, msgAmbiguous); err != nil {
					return err
				}
				return printContacts(out, amb.Candidates)
			case err != nil:
				return err
			}

			if _, err := fmt.Fprintln(out, msgEdited); err != nil {
				return err
			}
			return printContacts(out, []models.Contact{res.After})
		},
	}
	search.bind(cmd)
	fields.bind(cmd)
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Добавить контакты из CSV с заголовком (name,patronymic,surname,company,mobile_phone,work_phone)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("не удалось открыть файл импорта: %w", err)
			}
			defer in.Close()

			n, err := a.book.Import(cmd.Context(), in)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Импортировано контактов: %d\n", n)
			return err
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Сохранить справочник в CSV с заголовком",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("не удалось создать файл экспорта: %w", err)
			}

			n, err := a.book.Export(cmd.Context(), out)
			if err != nil {
				out.Close()
				_ = os.Remove(args[0])
				return err
			}
			if err := out.Close(); err != nil {
				return fmt.Errorf("ошибка записи файла экспорта: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Экспортировано контактов: %d\n", n)
			return err
		},
	}
}

func printContacts(w io.Writer, contacts []models.Contact) error {
	for _, c := range contacts {
		if _, err := fmt.Fprintln(w, c.String()); err != nil {
			return err
		}
	}
	return nil
}
