package rut

import "strings"

// FormatPartial formats an identifier as the user is still typing it, for
// live text-field masking. Its tie-break rules differ from Decompose on
// purpose: intermediate states must render sensibly before the input is
// complete, so an 8-digit token is shown grouped but without a dash (the
// verifier may still be coming), while Decompose treats the same token as
// a finished bare body.
//
//	FormatPartial("1234")      // "1.234"
//	FormatPartial("12345678")  // "12.345.678"
//	FormatPartial("123456785") // "12.345.678-5"
//	FormatPartial("800000k")   // "800.000-K"
func FormatPartial(s string) string {
	tok := Sanitize(s)
	if len(tok) <= 1 {
		return tok
	}

	// A trailing K is always the verifier, however short the input.
	if strings.HasSuffix(tok, "K") {
		return groupThousands(digitsOnly(tok[:len(tok)-1])) + "-K"
	}

	if len(tok) == 8 && isDigits(tok) {
		return groupThousands(tok)
	}

	// Past the trailing-K rule the final character is always a digit.
	if len(tok) >= 9 {
		grouped := groupThousands(digitsOnly(tok[:len(tok)-1]))
		return grouped + "-" + string(tok[len(tok)-1])
	}

	return groupThousands(digitsOnly(tok))
}
