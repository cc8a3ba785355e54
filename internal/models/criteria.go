package models

// Optional — значение, которое пользователь мог не передать.
// Пустая строка считается непереданным значением.
type Optional struct {
	value string
	ok    bool
}

// Some оборачивает значение. Some("") эквивалентно None().
func Some(value string) Optional {
	return Optional{value: value, ok: value != ""}
}

// None — непереданное значение.
func None() Optional {
	return Optional{}
}

// Get возвращает значение и признак того, что оно передано.
func (o Optional) Get() (string, bool) {
	return o.value, o.ok
}

// IsSet сообщает, передано ли значение.
func (o Optional) IsSet() bool {
	return o.ok
}

// Or возвращает значение или fallback, если значение не передано.
func (o Optional) Or(fallback string) string {
	if !o.ok {
		return fallback
	}
	return o.value
}

// Criteria — условия поиска. Запись подходит, если выполнены все переданные условия.
type Criteria struct {
	Name    Optional
	Surname Optional
	Phone   Optional
}

// Count возвращает количество переданных условий.
func (c Criteria) Count() int {
	n := 0
	for _, o := range []Optional{c.Name, c.Surname, c.Phone} {
		if o.IsSet() {
			n++
		}
	}
	return n
}

// ContactUpdate — новые значения полей при редактировании.
// Непереданные поля сохраняют старое значение.
type ContactUpdate struct {
	Name        Optional
	Patronymic  Optional
	Surname     Optional
	Company     Optional
	MobilePhone Optional
	WorkPhone   Optional
}

// Apply сливает обновление с существующим контактом.
func (u ContactUpdate) Apply(old Contact) Contact {
	return Contact{
		Name:        u.Name.Or(old.Name),
		Patronymic:  u.Patronymic.Or(old.Patronymic),
		Surname:     u.Surname.Or(old.Surname),
		Company:     u.Company.Or(old.Company),
		MobilePhone: u.MobilePhone.Or(old.MobilePhone),
		WorkPhone:   u.WorkPhone.Or(old.WorkPhone),
	}
}

// Contact собирает новый контакт из обновления; непереданные поля остаются пустыми.
func (u ContactUpdate) Contact() Contact {
	return u.Apply(Contact{})
}
