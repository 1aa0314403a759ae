package rut_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rutkit/pkg/rut"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		layout   rut.Layout
		expected string
	}{
		{
			name:     "computes missing verifier in dotdash",
			input:    "12345678",
			layout:   rut.DotDash,
			expected: "12.345.678-5",
		},
		{
			name:     "nine digit input keeps supplied verifier",
			input:    "123456789",
			layout:   rut.DotDash,
			expected: "12.345.678-9",
		},
		{
			name:     "dash layout",
			input:    "12345678",
			layout:   rut.Dash,
			expected: "12345678-5",
		},
		{
			name:     "nodash layout",
			input:    "12345678",
			layout:   rut.NoDash,
			expected: "123456785",
		},
		{
			name:     "reformats already formatted input",
			input:    "12.345.678-5",
			layout:   rut.Dash,
			expected: "12345678-5",
		},
		{
			name:     "seven digit body groups as one plus three plus three",
			input:    "7306502-K",
			layout:   rut.DotDash,
			expected: "7.306.502-K",
		},
		{
			name:     "six digit body",
			input:    "800000-K",
			layout:   rut.DotDash,
			expected: "800.000-K",
		},
		{
			name:     "lowercase verifier rendered uppercase",
			input:    "800000-k",
			layout:   rut.Dash,
			expected: "800000-K",
		},
		{
			name:     "leading zeros stripped from rendering",
			input:    "0123456",
			layout:   rut.DotDash,
			expected: "123.456-0",
		},
		{
			name:     "all zero body renders a single zero",
			input:    "000000",
			layout:   rut.DotDash,
			expected: "0-0",
		},
		{
			name:     "empty input cannot be formatted",
			input:    "",
			layout:   rut.DotDash,
			expected: "",
		},
		{
			name:     "five digits decompose via the fallback rule and render",
			input:    "12345",
			layout:   rut.DotDash,
			expected: "1.234-5",
		},
		{
			name:     "three digits decompose via the fallback rule and render",
			input:    "123",
			layout:   rut.DotDash,
			expected: "12-3",
		},
		{
			name:     "single digit has no verifier and invalid shape",
			input:    "5",
			layout:   rut.DotDash,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rut.Format(tt.input, tt.layout))
		})
	}
}

func TestFormatStableUnderReformatting(t *testing.T) {
	inputs := []string{"12345678", "123456789", "12.345.678-5", "800000-K", "24965106"}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			once := rut.Format(in, rut.DotDash)
			assert.Equal(t, rut.Format(in, rut.Dash), rut.Format(once, rut.Dash))
			assert.Equal(t, once, rut.Format(once, rut.DotDash))
		})
	}
}

func TestFormatDefaultsToDotDash(t *testing.T) {
	var zero rut.Layout
	assert.Equal(t, rut.DotDash, zero)
}
