package rut

import "strconv"

// CheckCharacter computes the modulo-11 verifier for a numeric body.
// Stray non-digit characters are stripped first; if nothing remains the
// second return value is false and no verifier exists for the input.
//
// Results are memoized per body; see ResetMemo.
func CheckCharacter(body string) (string, bool) {
	digits := digitsOnly(body)
	if digits == "" {
		return "", false
	}

	if c, ok := memo.get(digits); ok {
		return c, true
	}
	c := checkCharacter(digits)
	memo.put(digits, c)
	return c, true
}

// checkCharacter is the pure modulo-11 computation. The digit string is
// scanned right to left with cyclic multipliers 2 through 7; the weighted
// sum's remainder mod 11 is subtracted from 11 and mapped to a character:
// 11 becomes "0", 10 becomes "K", and anything else is already a single
// digit as a consequence of the arithmetic.
func checkCharacter(digits string) string {
	sum := 0
	factor := 2
	for i := len(digits) - 1; i >= 0; i-- {
		sum += int(digits[i]-'0') * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}

	switch raw := 11 - sum%11; raw {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return strconv.Itoa(raw)
	}
}
