package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/Etozheigor/phonebook/internal/models"
)

// Store — справочник в SQLite. Порядок записей задаётся колонкой position.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

func Open(path string, logger *zap.Logger) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("путь к SQLite пустой")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("не удалось создать директорию БД: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия БД: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, logger: logger.Named("sqlite_store")}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragma := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA busy_timeout = 5000;",
	}

	for _, stmt := range pragma {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ошибка PRAGMA: %w", err)
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS contacts (
	position INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL DEFAULT '',
	patronymic TEXT NOT NULL DEFAULT '',
	surname TEXT NOT NULL DEFAULT '',
	company TEXT NOT NULL DEFAULT '',
	mobile_phone TEXT NOT NULL DEFAULT '',
	work_phone TEXT NOT NULL DEFAULT ''
);
`

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("ошибка миграции: %w", err)
	}
	return nil
}

func (s *Store) ReadAll(ctx context.Context) ([]models.Contact, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT name, patronymic, surname, company, mobile_phone, work_phone
FROM contacts
ORDER BY position
`)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения контактов: %w", err)
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.Name, &c.Patronymic, &c.Surname, &c.Company, &c.MobilePhone, &c.WorkPhone); err != nil {
			return nil, fmt.Errorf("ошибка скана контакта: %w", err)
		}
		contacts = append(contacts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка rows: %w", err)
	}

	s.logger.Debug("контакты прочитаны", zap.Int("count", len(contacts)))
	return contacts, nil
}

func (s *Store) Append(ctx context.Context, c models.Contact) error {
	if err := insertContact(ctx, s.db, c); err != nil {
		return err
	}
	s.logger.Debug("контакт добавлен")
	return nil
}

// Rewrite заменяет все записи одной транзакцией; позиции пересчитываются с единицы.
func (s *Store) Rewrite(ctx context.Context, contacts []models.Contact) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM contacts`); err != nil {
		return fmt.Errorf("ошибка очистки контактов: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sqlite_sequence WHERE name = 'contacts'`); err != nil {
		return fmt.Errorf("ошибка сброса позиций: %w", err)
	}
	for _, c := range contacts {
		if err := insertContact(ctx, tx, c); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}
	s.logger.Debug("контакты перезаписаны", zap.Int("count", len(contacts)))
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertContact(ctx context.Context, e execer, c models.Contact) error {
	_, err := e.ExecContext(ctx, `
INSERT INTO contacts (name, patronymic, surname, company, mobile_phone, work_phone)
VALUES (?, ?, ?, ?, ?, ?)
`, c.Name, c.Patronymic, c.Surname, c.Company, c.MobilePhone, c.WorkPhone)
	if err != nil {
		return fmt.Errorf("ошибка вставки контакта: %w", err)
	}
	return nil
}
