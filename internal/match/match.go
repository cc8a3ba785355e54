// Package match отбирает записи справочника по условиям поиска.
package match

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/Etozheigor/phonebook/internal/models"
	"github.com/Etozheigor/phonebook/internal/phone"
)

// Matches сообщает, удовлетворяет ли контакт всем переданным условиям.
// Без условий подходит любой контакт.
func Matches(c models.Contact, criteria models.Criteria) bool {
	return newMatcher(criteria).matches(c)
}

// Filter возвращает позиции подходящих контактов в порядке хранения.
func Filter(contacts []models.Contact, criteria models.Criteria) []int {
	m := newMatcher(criteria)
	var positions []int
	for i, c := range contacts {
		if m.matches(c) {
			positions = append(positions, i)
		}
	}
	return positions
}

// matcher хранит уже нормализованные условия, чтобы не повторять работу на каждой записи.
type matcher struct {
	fold cases.Caser

	name, surname, phone          string
	hasName, hasSurname, hasPhone bool
	want                          int
}

func newMatcher(criteria models.Criteria) *matcher {
	m := &matcher{fold: cases.Fold(), want: criteria.Count()}
	if v, ok := criteria.Name.Get(); ok {
		m.name, m.hasName = m.canon(v), true
	}
	if v, ok := criteria.Surname.Get(); ok {
		m.surname, m.hasSurname = m.canon(v), true
	}
	if v, ok := criteria.Phone.Get(); ok {
		m.phone, m.hasPhone = phone.Normalize(v), true
	}
	return m
}

func (m *matcher) canon(s string) string {
	return m.fold.String(norm.NFC.String(s))
}

func (m *matcher) matches(c models.Contact) bool {
	hits := 0
	if m.hasName && strings.HasPrefix(m.canon(c.Name), m.name) {
		hits++
	}
	if m.hasSurname && strings.HasPrefix(m.canon(c.Surname), m.surname) {
		hits++
	}
	if m.hasPhone && m.matchesPhone(c) {
		hits++
	}
	return hits == m.want
}

// matchesPhone: подходит мобильный или рабочий номер.
// Условие без цифр не совпадает ни с чем.
func (m *matcher) matchesPhone(c models.Contact) bool {
	if m.phone == "" {
		return false
	}
	return strings.HasPrefix(phone.Normalize(c.MobilePhone), m.phone) ||
		strings.HasPrefix(phone.Normalize(c.WorkPhone), m.phone)
}
