package rut

import "strings"

// IsValidBodyShape reports whether body, after stripping non-digits, is
// exactly 6 to 8 decimal digits long.
func IsValidBodyShape(body string) bool {
	d := digitsOnly(body)
	return len(d) >= 6 && len(d) <= 8
}

// IsSuspicious reports whether body looks implausible as a real issued
// identifier: empty after stripping non-digits, or a single digit repeated
// across its full length. Repeated-digit bodies such as "11111111" carry a
// genuinely correct verifier under modulo 11 but are almost never real.
func IsSuspicious(body string) bool {
	d := digitsOnly(body)
	if d == "" {
		return true
	}
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}

// ValidateBodyOnly reports whether a bare body (no verifier) is plausible:
// valid shape and not a suspicious repeated-digit pattern.
func ValidateBodyOnly(body string) bool {
	return IsValidBodyShape(body) && !IsSuspicious(body)
}

// Validate reports whether a full identifier (body plus verifier, in any
// formatting) is correct. The input is decomposed, the body shape is
// checked, and the supplied verifier is compared case-insensitively against
// the computed one.
//
// Unlike ValidateBodyOnly, Validate does not apply the suspicious-pattern
// filter: a repeated-digit body with a matching verifier is accepted, since
// a correct checksum overrides the plausibility heuristic.
func Validate(full string) bool {
	p := Decompose(full)
	if p.Body == "" || p.Check == "" {
		return false
	}
	if !IsValidBodyShape(p.Body) {
		return false
	}
	want, ok := CheckCharacter(p.Body)
	return ok && strings.EqualFold(want, p.Check)
}
