package rut

// Parts is the result of splitting an input into its numeric body and its
// verifier character. Body contains only decimal digits; Check is empty, a
// single digit, or "K". Either field may be empty when the input could not
// be resolved far enough; callers test for emptiness instead of errors.
type Parts struct {
	Body  string
	Check string
}

// Decompose sanitizes s and splits it into body and verifier using an
// ordered rule list. The rules are evaluated top to bottom and the first
// match wins:
//
//  1. A trailing K is always the verifier, regardless of length.
//  2. A pure-digit token is split by length: 9 digits are read as an
//     8-digit body plus verifier; 8 digits are a bare body with no
//     verifier supplied (never 7 digits plus verifier); 6 or 7 digits are
//     too short to assume a trailing verifier and stay a bare body.
//  3. Any other token longer than one character gives up its final
//     character as the verifier.
//  4. A single-character token is a bare body fragment.
//
// Decompose never fails; unresolvable input comes back with empty fields.
func Decompose(s string) Parts {
	tok := Sanitize(s)
	if tok == "" {
		return Parts{}
	}

	last := tok[len(tok)-1:]
	if last == "K" {
		return Parts{Body: digitsOnly(tok[:len(tok)-1]), Check: "K"}
	}

	if isDigits(tok) {
		switch len(tok) {
		case 9:
			return Parts{Body: tok[:8], Check: tok[8:]}
		case 8, 7, 6:
			return Parts{Body: tok}
		}
	}

	if len(tok) > 1 {
		return Parts{Body: digitsOnly(tok[:len(tok)-1]), Check: last}
	}
	return Parts{Body: digitsOnly(tok)}
}

// Body returns the numeric body Decompose resolves for s.
func Body(s string) string {
	return Decompose(s).Body
}

// Check returns the verifier character Decompose resolves for s, or an
// empty string when none was supplied.
func Check(s string) string {
	return Decompose(s).Check
}
