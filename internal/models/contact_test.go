package models

import (
	"errors"
	"testing"
)

func TestContactLine(t *testing.T) {
	c := Contact{
		Name:        "Иван",
		Patronymic:  "Иванович",
		Surname:     "Петров",
		Company:     "ООО Ромашка",
		MobilePhone: "89161234567",
		WorkPhone:   "84951234567",
	}

	want := `"Иван";"Иванович";"Петров";"ООО Ромашка";"89161234567";"84951234567"`
	if got := c.Line(); got != want {
		t.Fatalf("unexpected line:\n got %s\nwant %s", got, want)
	}
}

func TestContactLineEmptyFields(t *testing.T) {
	c := Contact{Name: "Анна"}

	want := `"Анна";"";"";"";"";""`
	if got := c.Line(); got != want {
		t.Fatalf("unexpected line: %s", got)
	}
}

func TestParseLineRoundTrip(t *testing.T) {
	c := Contact{Name: "Иван", Surname: "Петров", WorkPhone: "+7 (495) 123-45-67"}

	got, err := ParseLine(c.Line() + "\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got != c {
		t.Fatalf("unexpected contact: %+v", got)
	}
}

func TestParseLineStripsQuotesAndCRLF(t *testing.T) {
	got, err := ParseLine("\"a\";\"b\";\"c\";\"d\";\"e\";\"f\"\r\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := Contact{"a", "b", "c", "d", "e", "f"}
	if got != want {
		t.Fatalf("unexpected contact: %+v", got)
	}
}

func TestParseLineWrongFieldCount(t *testing.T) {
	for _, line := range []string{"", `"a";"b"`, `"a";"b";"c";"d";"e";"f";"g"`} {
		if _, err := ParseLine(line); !errors.Is(err, ErrMalformedLine) {
			t.Fatalf("line %q: expected ErrMalformedLine, got %v", line, err)
		}
	}
}

func TestContactString(t *testing.T) {
	c := Contact{Name: "Иван", Surname: "Петров"}

	want := `"Иван" "" "Петров" "" "" ""`
	if got := c.String(); got != want {
		t.Fatalf("unexpected output: %s", got)
	}
}

func TestOptionalEmptyIsNotProvided(t *testing.T) {
	if Some("").IsSet() {
		t.Fatal("empty string must be treated as not provided")
	}
	if v, ok := Some("x").Get(); !ok || v != "x" {
		t.Fatalf("unexpected optional: %q %v", v, ok)
	}
	if None().Or("old") != "old" {
		t.Fatal("None must fall back")
	}
}

func TestCriteriaCount(t *testing.T) {
	c := Criteria{Name: Some("Ив"), Phone: Some("")}
	if c.Count() != 1 {
		t.Fatalf("expected 1 criterion, got %d", c.Count())
	}
	if (Criteria{}).Count() != 0 {
		t.Fatal("empty criteria must count zero")
	}
}

func TestContactUpdateApplyKeepsUnsetFields(t *testing.T) {
	old := Contact{"Иван", "Иванович", "Петров", "ООО Ромашка", "89161234567", "84951234567"}
	upd := ContactUpdate{Company: Some("Новая Фирма"), Name: Some("")}

	got := upd.Apply(old)

	want := old
	want.Company = "Новая Фирма"
	if got != want {
		t.Fatalf("unexpected merge result: %+v", got)
	}
}

func TestContactValidateRejectsDelimiterAndNewline(t *testing.T) {
	if err := (Contact{Name: "Иван", Company: `ООО "Ромашка"`}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, c := range []Contact{
		{Company: "Отдел; склад"},
		{Name: "Иван\nПетров"},
		{WorkPhone: "8495\r"},
	} {
		if err := c.Validate(); !errors.Is(err, ErrUnsupportedChar) {
			t.Fatalf("expected ErrUnsupportedChar for %+v, got %v", c, err)
		}
	}
}
