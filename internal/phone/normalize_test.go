package phone

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+79161234567", "89161234567"},
		{"", ""},
		{"+7 (916) 123-45-67", "89161234567"},
		{"8 (495) 123-45-67", "84951234567"},
		{"+1 555 0100", "15550100"},
		{" +79161234567", "79161234567"},
		{"нет номера", ""},
		{"7+7", "77"},
	}

	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
