package rut

import "math/rand/v2"

// sampleBodies is a small fixed pool of plausible bodies used for demo and
// test output. Verifiers are computed on the fly, so every entry renders
// as a correctly checksummed identifier. Every body is either 8 digits or
// carries verifier K: only those renderings re-decompose into the same
// body/verifier pair, so samples stay valid in every layout (a 7-digit
// body with a digit verifier would sanitize to 8 bare digits).
var sampleBodies = []string{
	"12345678",
	"24965106",
	"18972631",
	"19203860",
	"7306502",
	"16288325",
	"20123456",
	"21620551",
}

// Sample returns a correctly checksummed example identifier in the given
// layout, drawn from a fixed pool of bodies. It is meant for demos,
// placeholders and tests. The values are not random enough to stand in
// for real issued identifiers, and none should be treated as one.
func Sample(layout Layout) string {
	body := sampleBodies[rand.IntN(len(sampleBodies))]
	s, _ := Complete(body, layout)
	return s
}
