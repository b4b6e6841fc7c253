package parsers

import "testing"

func TestClearExtraSymbols(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"currency with thousands separator", "1 234,56₽", "1234.56"},
		{"non-breaking space", "1 234₽", "1234"},
		{"percent with unicode minus", "−45%", "-45"},
		{"carriage return and tab", "\t123\r\n", "123"},
		{"keeps inner newline", "123\n-45%", "123\n-45"},
		{"empty", "", ""},
		{"plain number untouched", "42", "42"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClearExtraSymbols(tc.input); got != tc.want {
				t.Errorf("ClearExtraSymbols(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestClearExtraSymbols_Idempotent(t *testing.T) {
	inputs := []string{"1 234,56₽", "−45%", "12:34", "Сыр, кг", "", "123\n-45%"}
	for _, input := range inputs {
		once := ClearExtraSymbols(input)
		twice := ClearExtraSymbols(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
