package models

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Delimiter разделяет поля записи в файле справочника.
	Delimiter = ";"
	// FieldCount — количество полей в каждой записи.
	FieldCount = 6

	quote = `"`
)

// ErrMalformedLine возвращается, если строка файла не состоит ровно из шести полей.
var ErrMalformedLine = errors.New("некорректная строка справочника")

// ErrUnsupportedChar возвращается для полей с разделителем или переводом строки:
// такое значение нельзя записать в файл справочника без порчи записи.
var ErrUnsupportedChar = errors.New("недопустимый символ в поле")

// Contact — одна запись телефонного справочника.
// Все поля необязательны и могут быть пустыми.
type Contact struct {
	Name        string `csv:"name"`
	Patronymic  string `csv:"patronymic"`
	Surname     string `csv:"surname"`
	Company     string `csv:"company"`
	MobilePhone string `csv:"mobile_phone"`
	WorkPhone   string `csv:"work_phone"`
}

// Fields возвращает поля в порядке хранения.
func (c Contact) Fields() [FieldCount]string {
	return [FieldCount]string{c.Name, c.Patronymic, c.Surname, c.Company, c.MobilePhone, c.WorkPhone}
}

// Line сериализует контакт в строку файла без завершающего перевода строки:
// каждое поле в двойных кавычках, разделитель ";".
func (c Contact) Line() string {
	fields := c.Fields()
	quoted := make([]string, 0, FieldCount)
	for _, f := range fields {
		quoted = append(quoted, quote+f+quote)
	}
	return strings.Join(quoted, Delimiter)
}

// Validate проверяет, что контакт можно сохранить одной строкой файла.
func (c Contact) Validate() error {
	for i, f := range c.Fields() {
		if strings.ContainsAny(f, Delimiter+"\r\n") {
			return fmt.Errorf("%w: поле %d (%q)", ErrUnsupportedChar, i+1, f)
		}
	}
	return nil
}

// String — вывод контакта в консоль: поля в кавычках через пробел.
func (c Contact) String() string {
	fields := c.Fields()
	quoted := make([]string, 0, FieldCount)
	for _, f := range fields {
		quoted = append(quoted, quote+f+quote)
	}
	return strings.Join(quoted, " ")
}

// ParseLine разбирает строку файла в контакт.
// Кавычки внутри полей не экранируются, поэтому они просто удаляются.
func ParseLine(line string) (Contact, error) {
	line = strings.TrimRight(line, "\r\n")
	parts := strings.Split(line, Delimiter)
	if len(parts) != FieldCount {
		return Contact{}, fmt.Errorf("%w: ожидалось %d полей, получено %d", ErrMalformedLine, FieldCount, len(parts))
	}
	for i, p := range parts {
		parts[i] = strings.ReplaceAll(p, quote, "")
	}
	return Contact{
		Name:        parts[0],
		Patronymic:  parts[1],
		Surname:     parts[2],
		Company:     parts[3],
		MobilePhone: parts[4],
		WorkPhone:   parts[5],
	}, nil
}
