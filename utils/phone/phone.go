package phone

import "strings"

// Normalize strips every non-digit character from a phone number so that
// "010-1234-5678", "010 1234 5678" and "01012345678" compare equal. It is
// applied at every ingestion and comparison point; stored numbers are always
// normalized.
func Normalize(p string) string {
	var b strings.Builder
	b.Grow(len(p))
	for _, r := range p {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Valid reports whether a normalized number looks like a usable mobile
// number: digits only, plausible length.
func Valid(normalized string) bool {
	return len(normalized) >= 9 && len(normalized) <= 15
}
