package validator

import "github.com/dmitrymomot/rutkit/pkg/rut"

// ValidRUT validates a full Chilean RUT (body plus verifier, in any
// formatting) against its modulo-11 checksum.
func ValidRUT(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return rut.Validate(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "invalid RUT",
		},
	}
}

// ValidRUTBody validates a bare RUT body with no verifier attached: 6 to 8
// digits and not an implausible repeated-digit pattern.
func ValidRUTBody(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return rut.ValidateBodyOnly(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "invalid RUT number",
		},
	}
}

// PlausibleRUT is a coarse pre-filter for partially entered input, useful
// for enabling a submit button before running the full checksum.
func PlausibleRUT(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return rut.IsPlausible(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "RUT is too short",
		},
	}
}

// RUTEquals validates that value denotes the same RUT as expected,
// ignoring formatting differences between the two.
func RUTEquals(field, value, expected string) Rule {
	return Rule{
		Check: func() bool {
			return rut.Equal(value, expected)
		},
		Error: ValidationError{
			Field:   field,
			Message: "RUT does not match",
		},
	}
}
