package phone

import (
	"strings"
	"unicode"
)

const (
	internationalPrefix = "+7"
	domesticPrefix      = "8"
)

// Normalize приводит номер к виду, пригодному для сравнения:
// "+7" в начале заменяется на "8", все нецифровые символы удаляются.
// Корректность номера не проверяется.
func Normalize(phone string) string {
	if phone == "" {
		return phone
	}
	if strings.HasPrefix(phone, internationalPrefix) {
		phone = domesticPrefix + strings.TrimPrefix(phone, internationalPrefix)
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
}
