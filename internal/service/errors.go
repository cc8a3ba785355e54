package service

import (
	"errors"
	"fmt"

	"github.com/Etozheigor/phonebook/internal/models"
)

// ErrNotFound — по условиям не найдено ни одного контакта.
var ErrNotFound = errors.New("контакты по запросу отсутствуют в справочнике")

// ValidationError — некорректный ввод пользователя; операция не выполняется.
type ValidationError struct {
	Field string
	Value string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %q: %s", e.Field, e.Value, e.Msg)
}

// AmbiguousMatchError — условиям редактирования соответствует больше одного контакта.
type AmbiguousMatchError struct {
	Candidates []models.Contact
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("найдено несколько контактов (%d), уточните запрос", len(e.Candidates))
}
