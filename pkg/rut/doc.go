// Package rut validates, formats and completes Chilean RUT identifiers: a
// numeric body of 6 to 8 digits plus a single verifier character ("0"–"9"
// or "K") computed with a weighted modulo-11 checksum.
//
// The package is a set of small, pure string transformations layered on top
// of each other:
//
//   - Sanitize strips punctuation and whitespace and uppercases k.
//   - Decompose splits an ambiguous input into body and verifier using an
//     ordered rule list (a bare 8-digit string is a body without verifier;
//     a 9-digit string is body plus verifier; a trailing K always wins).
//   - CheckCharacter computes the expected verifier for a body.
//   - Validate, ValidateBodyOnly, IsValidBodyShape and IsSuspicious answer
//     pass/fail questions at different levels of strictness.
//   - Format renders an identifier into one of three canonical layouts;
//     FormatPartial masks in-progress input for live text fields.
//
// # Usage
//
// Import the package using its module-qualified path:
//
//	import "github.com/dmitrymomot/rutkit/pkg/rut"
//
// Validating and formatting:
//
//	rut.Validate("12.345.678-5")      // true
//	rut.Format("123456785", rut.DotDash) // "12.345.678-5"
//	rut.Complete("12345678", rut.Dash)   // "12345678-5", true
//
// Live input masking:
//
//	rut.FormatPartial("1234")     // "1.234"
//	rut.FormatPartial("12345678") // "12.345.678"
//
// # Validation strictness
//
// Validate checks a full identifier's checksum and accepts any body whose
// verifier matches, including repeated-digit bodies like "11111111-1",
// which are checksum-correct. ValidateBodyOnly has no verifier to confirm,
// so it additionally rejects those repeated-digit patterns as implausible.
// Pick the one that matches how much of the identifier you hold.
//
// # Error handling
//
// Nothing here returns an error. String results come back empty when the
// input cannot be processed; computations that may have no answer return a
// (value, ok) pair; predicates simply return false.
//
// # Thread safety
//
// All functions are safe for concurrent use. The only shared state is an
// internal verifier memo guarded by a mutex; it is unbounded and cleared
// only by ResetMemo. The memo never affects results, only latency.
package rut
