package phone

import "testing"

func TestNormalizeSeparatorVariants(t *testing.T) {
	variants := []string{
		"010-1234-5678",
		"01012345678",
		"010 1234 5678",
		"010.1234.5678",
		"(010) 1234-5678",
		"+010-1234-5678",
	}

	want := "01012345678"
	for _, v := range variants {
		if got := Normalize(v); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", v, got, want)
		}
	}
}

func TestNormalizeEquality(t *testing.T) {
	if Normalize("010-1234-5678") != Normalize("01012345678") {
		t.Error("numbers differing only by separators must normalize equal")
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize("abc-def"); got != "" {
		t.Errorf("Normalize with no digits = %q, want empty", got)
	}
}

func TestValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"01012345678", true},
		{"0212345678", true},
		{"1234", false},
		{"", false},
		{"1234567890123456", false},
	}

	for _, c := range cases {
		if got := Valid(c.in); got != c.want {
			t.Errorf("Valid(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
