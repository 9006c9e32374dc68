package prefilter

import "github.com/coregx/rex/simd"

// ClassPrefilter narrows candidates for a pattern whose leading atom is a
// required character class — `\w+`, `[aeiou]`, `[^0-9]`, and similar —
// where ExtractLiteralAlternatives finds nothing to extract (there is no
// fixed byte run, only a set of acceptable leading bytes). It generalizes
// DigitPrefilter to an arbitrary 256-byte membership table built by
// ExtractLeadingClass.
type ClassPrefilter struct {
	table  *[256]bool
	negate bool
	isWord bool
}

// NewClassPrefilter returns a prefilter over the bytes marked true in
// table. When negate is true, it instead matches bytes NOT in table (a
// negated class such as [^0-9]).
func NewClassPrefilter(table *[256]bool, negate bool) *ClassPrefilter {
	return &ClassPrefilter{table: table, negate: negate, isWord: table != nil && *table == *wordTable}
}

// Find returns the index of the first byte at or after start that belongs
// to (or, when negated, falls outside) the class, or -1.
func (p *ClassPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start > len(haystack) {
		return -1
	}
	rest := haystack[start:]

	var idx int
	switch {
	case p.isWord && !p.negate:
		idx = simd.MemchrWord(rest)
	case p.isWord && p.negate:
		idx = simd.MemchrNotWord(rest)
	case p.negate:
		idx = simd.MemchrNotInTable(rest, p.table)
	default:
		idx = simd.MemchrInTable(rest, p.table)
	}
	if idx == -1 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter: a class match is only a candidate
// position, never a full proof the pattern matches.
func (p *ClassPrefilter) IsComplete() bool { return false }

// LiteralLen implements Prefilter.
func (p *ClassPrefilter) LiteralLen() int { return 0 }

// HeapBytes implements Prefilter: the table is shared, not owned per
// instance (see wordTable / tables built by ExtractLeadingClass).
func (p *ClassPrefilter) HeapBytes() int { return 0 }

// wordTable marks the bytes MemchrWord/MemchrNotWord already special-case
// ([A-Za-z0-9_]); NewClassPrefilter compares against it to route through
// those dedicated kernels instead of the generic table scan.
var wordTable = func() *[256]bool {
	var t [256]bool
	for c := byte('a'); c <= 'z'; c++ {
		t[c] = true
	}
	for c := byte('A'); c <= 'Z'; c++ {
		t[c] = true
	}
	for c := byte('0'); c <= '9'; c++ {
		t[c] = true
	}
	t['_'] = true
	return &t
}()
