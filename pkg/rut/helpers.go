package rut

// IsPlausible is a coarse pre-filter: it reports whether s has at least
// three significant characters after sanitizing. Useful for gating a
// "check" button before running full validation; it says nothing about
// checksum correctness.
func IsPlausible(s string) bool {
	return len(Sanitize(s)) >= 3
}

// Equal reports whether a and b denote the same identifier regardless of
// formatting. Both must resolve to a non-empty canonical rendering.
func Equal(a, b string) bool {
	fa := Format(a, NoDash)
	fb := Format(b, NoDash)
	return fa != "" && fa == fb
}

// Complete takes a bare numeric body, computes its verifier, and returns
// the full identifier in the requested layout. The second return value is
// false when the body, after stripping non-digits, is not 6 to 8 digits.
func Complete(body string, layout Layout) (string, bool) {
	d := digitsOnly(body)
	if len(d) < 6 || len(d) > 8 {
		return "", false
	}
	check, ok := CheckCharacter(d)
	if !ok {
		return "", false
	}
	return render(d, check, layout), true
}
