package storage

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/Etozheigor/phonebook/internal/models"
)

// ExportCSV пишет контакты в обычный CSV с заголовком
// (name,patronymic,surname,company,mobile_phone,work_phone).
func ExportCSV(w io.Writer, contacts []models.Contact) error {
	rows := make([]*models.Contact, 0, len(contacts))
	for i := range contacts {
		rows = append(rows, &contacts[i])
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("ошибка экспорта CSV: %w", err)
	}
	return nil
}

// ImportCSV читает контакты из CSV с заголовком в формате ExportCSV.
// Если хотя бы одна строка не может быть сохранена в справочник, возвращается ошибка
// с номером строки и ни одного контакта.
func ImportCSV(r io.Reader) ([]models.Contact, error) {
	var rows []*models.Contact
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("ошибка импорта CSV: %w", err)
	}

	contacts := make([]models.Contact, 0, len(rows))
	for i, row := range rows {
		if err := row.Validate(); err != nil {
			// Строка 1 — заголовок.
			return nil, fmt.Errorf("ошибка импорта CSV: строка %d: %w", i+2, err)
		}
		contacts = append(contacts, *row)
	}
	return contacts, nil
}
