//go:build amd64

package simd

// AVX2 kernels for the \w / \W prefilter fast path, implemented in
// memchr_class_amd64.s.

//go:noescape
func memchrWordAVX2(haystack []byte) int

//go:noescape
func memchrNotWordAVX2(haystack []byte) int

// MemchrWord finds the first word character [A-Za-z0-9_] in haystack, or
// -1. ClassPrefilter routes here instead of MemchrInTable when its table
// equals wordTable, since this has a dedicated AVX2 kernel.
func MemchrWord(haystack []byte) int {
	if len(haystack) == 0 {
		return -1
	}

	if hasAVX2 && len(haystack) >= 32 {
		return memchrWordAVX2(haystack)
	}

	return memchrWordGeneric(haystack)
}

// MemchrNotWord finds the first byte NOT in [A-Za-z0-9_], or -1.
func MemchrNotWord(haystack []byte) int {
	if len(haystack) == 0 {
		return -1
	}

	if hasAVX2 && len(haystack) >= 32 {
		return memchrNotWordAVX2(haystack)
	}

	return memchrNotWordGeneric(haystack)
}

// MemchrInTable finds the first byte where table[byte] is true, for an
// arbitrary 256-entry membership table (ClassPrefilter's general case —
// any leading character class that isn't \w/\W). No AVX2 kernel: a table
// lookup per byte needs VPGATHERDD or precomputed nibble masks, more
// complexity than this class of pattern has earned so far.
func MemchrInTable(haystack []byte, table *[256]bool) int {
	if len(haystack) == 0 || table == nil {
		return -1
	}
	return memchrInTableGeneric(haystack, table)
}

// MemchrNotInTable finds the first byte where table[byte] is false (a
// negated class such as [^0-9]).
func MemchrNotInTable(haystack []byte, table *[256]bool) int {
	if len(haystack) == 0 || table == nil {
		return -1
	}

	return memchrNotInTableGeneric(haystack, table)
}
