package service

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/Etozheigor/phonebook/internal/match"
	"github.com/Etozheigor/phonebook/internal/models"
	"github.com/Etozheigor/phonebook/internal/pager"
	"github.com/Etozheigor/phonebook/internal/storage"
)

// Store — хранилище записей справочника. Порядок ReadAll определяет позиции записей.
type Store interface {
	ReadAll(ctx context.Context) ([]models.Contact, error)
	Append(ctx context.Context, c models.Contact) error
	Rewrite(ctx context.Context, contacts []models.Contact) error
}

type Options struct {
	PageSize int
	Logger   *zap.Logger
}

// Phonebook выполняет команды справочника поверх Store.
type Phonebook struct {
	store    Store
	pageSize int
	logger   *zap.Logger
}

func New(store Store, opts Options) *Phonebook {
	if opts.PageSize <= 0 {
		opts.PageSize = pager.DefaultSize
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Phonebook{
		store:    store,
		pageSize: opts.PageSize,
		logger:   opts.Logger.Named("phonebook"),
	}
}

// ParsePage разбирает номер страницы. Пустая строка — страница не указана (nil).
// Допускаются только цифры; "0" означает первую страницу.
func ParsePage(page string) (*int, error) {
	if page == "" {
		return nil, nil
	}
	for _, r := range page {
		if r < '0' || r > '9' {
			return nil, &ValidationError{Field: "pages", Value: page, Msg: "номер страницы должен быть числом большим нуля"}
		}
	}
	n, err := strconv.Atoi(page)
	if err != nil {
		return nil, &ValidationError{Field: "pages", Value: page, Msg: "номер страницы слишком большой"}
	}
	return &n, nil
}

// List возвращает страницу page или все контакты, если страница не указана.
func (p *Phonebook) List(ctx context.Context, page string) ([]models.Contact, error) {
	number, err := ParsePage(page)
	if err != nil {
		return nil, err
	}

	contacts, err := p.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	result := pager.Page(contacts, number, p.pageSize)
	p.logger.Debug("список контактов", zap.Int("total", len(contacts)), zap.Int("shown", len(result)))
	return result, nil
}

func (p *Phonebook) Add(ctx context.Context, c models.Contact) error {
	if err := p.store.Append(ctx, c); err != nil {
		return err
	}
	p.logger.Debug("контакт добавлен", zap.String("name", c.Name), zap.String("surname", c.Surname))
	return nil
}

// Search возвращает все подходящие контакты; пустой результат не является ошибкой.
func (p *Phonebook) Search(ctx context.Context, criteria models.Criteria) ([]models.Contact, error) {
	contacts, err := p.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	positions := match.Filter(contacts, criteria)
	found := make([]models.Contact, 0, len(positions))
	for _, pos := range positions {
		found = append(found, contacts[pos])
	}

	p.logger.Debug("поиск", zap.Int("criteria", criteria.Count()), zap.Int("found", len(found)))
	return found, nil
}

// Import дописывает в справочник все контакты из CSV с заголовком.
func (p *Phonebook) Import(ctx context.Context, r io.Reader) (int, error) {
	contacts, err := storage.ImportCSV(r)
	if err != nil {
		return 0, err
	}
	for i, c := range contacts {
		if err := p.store.Append(ctx, c); err != nil {
			return i, fmt.Errorf("импорт остановлен на записи %d: %w", i+1, err)
		}
	}
	p.logger.Debug("импорт завершён", zap.Int("count", len(contacts)))
	return len(contacts), nil
}

// Export пишет весь справочник в CSV с заголовком.
func (p *Phonebook) Export(ctx context.Context, w io.Writer) (int, error) {
	contacts, err := p.store.ReadAll(ctx)
	if err != nil {
		return 0, err
	}
	if err := storage.ExportCSV(w, contacts); err != nil {
		return 0, err
	}
	p.logger.Debug("экспорт завершён", zap.Int("count", len(contacts)))
	return len(contacts), nil
}
