// DigitPrefilter narrows candidates for a pattern whose every alternation
// branch is required to start with an ASCII digit — an IP-octet
// alternation (`25[0-5]|2[0-4][0-9]|...`), `\d+`, or a date field — cases
// where ExtractLiteralAlternatives finds no literal to extract at all but
// the leading atom still constrains the first byte. See class.go for the
// general form of this idea (any leading byte set, not just digits);
// DigitPrefilter stays as its own type because simd.MemchrDigitAt is a
// dedicated AVX2 kernel, one comparison range instead of a 256-entry table
// lookup.
package prefilter

import "github.com/coregx/rex/simd"

// DigitPrefilter matches candidate positions that start with an ASCII
// digit. It is never complete: a digit only proves the pattern's leading
// constraint, not the rest of the atom chain.
type DigitPrefilter struct{}

// NewDigitPrefilter returns a DigitPrefilter.
func NewDigitPrefilter() *DigitPrefilter {
	return &DigitPrefilter{}
}

// Find returns the index of the first ASCII digit at or after start, or -1.
func (p *DigitPrefilter) Find(haystack []byte, start int) int {
	return simd.MemchrDigitAt(haystack, start)
}

// IsComplete implements Prefilter.
func (p *DigitPrefilter) IsComplete() bool {
	return false
}

// LiteralLen implements Prefilter.
func (p *DigitPrefilter) LiteralLen() int {
	return 0
}

// HeapBytes implements Prefilter.
func (p *DigitPrefilter) HeapBytes() int {
	return 0
}
