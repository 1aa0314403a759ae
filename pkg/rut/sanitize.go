package rut

import "strings"

// Sanitize removes every character that is not a decimal digit or the letter
// K from s, uppercasing any lowercase k. Character order is preserved and no
// other normalization is applied, so "12.345.678-k" becomes "12345678K".
// Empty input yields an empty string.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == 'K' || r == 'k':
			b.WriteByte('K')
		}
	}
	return b.String()
}

// digitsOnly strips everything that is not a decimal digit.
func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isDigits reports whether s is non-empty and consists of decimal digits only.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
