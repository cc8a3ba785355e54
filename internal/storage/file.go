package storage

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Etozheigor/phonebook/internal/models"
)

// ErrStorage оборачивает любые ошибки ввода-вывода хранилища.
var ErrStorage = errors.New("ошибка хранилища")

// LineError — строка файла, которую не удалось разобрать.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("строка %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

const filePerm = 0o644

// maxLineSize ограничивает длину одной записи при чтении.
const maxLineSize = 16 << 20

// FileStore хранит справочник в текстовом файле: одна запись на строку,
// поля в кавычках через ";". Каждый вызов открывает и закрывает файл.
type FileStore struct {
	path   string
	logger *zap.Logger
}

// NewFileStore создаёт хранилище поверх файла path. Файл не создаётся.
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{path: path, logger: logger.Named("file_store")}
}

// Path возвращает путь к файлу справочника.
func (s *FileStore) Path() string {
	return s.path
}

// ReadAll читает все записи в порядке хранения. Пустые строки пропускаются.
// Отсутствие файла — ошибка.
func (s *FileStore) ReadAll(ctx context.Context) ([]models.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: не удалось открыть справочник: %w", ErrStorage, err)
	}
	defer f.Close()

	var contacts []models.Contact
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := models.ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrStorage, s.path, &LineError{Line: lineNo, Err: err})
		}
		contacts = append(contacts, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: ошибка чтения справочника: %w", ErrStorage, err)
	}

	s.logger.Debug("справочник прочитан", zap.String("path", s.path), zap.Int("count", len(contacts)))
	return contacts, nil
}

// Append дописывает запись в конец файла, создавая файл при необходимости.
func (s *FileStore) Append(ctx context.Context, c models.Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("%w: не удалось открыть справочник на запись: %w", ErrStorage, err)
	}

	if _, err := out.WriteString(c.Line() + "\n"); err != nil {
		out.Close()
		return fmt.Errorf("%w: ошибка записи: %w", ErrStorage, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: ошибка закрытия файла: %w", ErrStorage, err)
	}

	s.logger.Debug("запись добавлена", zap.String("path", s.path))
	return nil
}

// Rewrite заменяет содержимое файла целиком списком contacts.
func (s *FileStore) Rewrite(ctx context.Context, contacts []models.Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	for _, c := range contacts {
		b.WriteString(c.Line())
		b.WriteByte('\n')
	}

	if err := writeAtomic(s.path, strings.NewReader(b.String())); err != nil {
		return fmt.Errorf("%w: не удалось перезаписать справочник: %w", ErrStorage, err)
	}

	s.logger.Debug("справочник перезаписан", zap.String("path", s.path), zap.Int("count", len(contacts)))
	return nil
}
