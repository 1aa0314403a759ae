package rut

import "strings"

// Layout selects one of the three canonical renderings of an identifier.
// The zero value is DotDash, the conventional display form.
type Layout int

const (
	// DotDash groups the body in thousands separated by dots and appends
	// the verifier after a dash: "12.345.678-5".
	DotDash Layout = iota
	// Dash renders the body without grouping, dash before the verifier:
	// "12345678-5".
	Dash
	// NoDash renders body and verifier with no separators: "123456785".
	NoDash
)

// Format renders s into the requested layout. The input is decomposed
// first; when no verifier was supplied one is computed, but only for a
// body of valid shape. An empty string signals the input could not be
// formatted; there is nothing exceptional about malformed input here.
// Leading zeros are dropped from the rendered body (an all-zero body keeps
// a single "0") and the verifier is always rendered uppercase.
func Format(s string, layout Layout) string {
	p := Decompose(s)
	if p.Body == "" {
		return ""
	}

	check := p.Check
	if check == "" {
		if !IsValidBodyShape(p.Body) {
			return ""
		}
		c, ok := CheckCharacter(p.Body)
		if !ok {
			return ""
		}
		check = c
	}

	return render(p.Body, check, layout)
}

// render writes out an already-resolved body/verifier pair. The body must
// be digits only and the verifier non-empty.
func render(body, check string, layout Layout) string {
	body = strings.TrimLeft(body, "0")
	if body == "" {
		body = "0"
	}

	switch layout {
	case NoDash:
		return body + check
	case Dash:
		return body + "-" + check
	default:
		return groupThousands(body) + "-" + check
	}
}

// groupThousands splits a digit string into clusters of three counting
// from the right, joined with dots: "12345678" -> "12.345.678".
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)

	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
