//go:build amd64

// Package simd backs rex's prefilter package with vector byte search:
// Memchr family for the single/multi-byte prefilters, Memmem for substring
// search, MemchrDigit/MemchrInTable for leading-character-class
// prefilters. The Memchr family, MemchrDigit and MemchrWord/MemchrNotWord
// dispatch to an AVX2 kernel when the CPU and input size justify it, and
// otherwise fall back to a pure Go scan — always the same result, never a
// correctness difference. MemchrInTable/MemchrNotInTable are pure Go only.
package simd

import "golang.org/x/sys/cpu"

// hasAVX2 gates every AVX2 dispatch below; checked once at init instead of
// per call.
var hasAVX2 = cpu.X86.HasAVX2

// AVX2 kernels, implemented in memchr_amd64.s over 256-bit vectors.
//
//go:noescape
func memchrAVX2(haystack []byte, needle byte) int

//go:noescape
func memchr2AVX2(haystack []byte, needle1, needle2 byte) int

//go:noescape
func memchr3AVX2(haystack []byte, needle1, needle2, needle3 byte) int

//go:noescape
func memchrPairAVX2(haystack []byte, byte1, byte2 byte, offset int) int

// Memchr returns the index of the first needle in haystack, or -1.
// Equivalent to bytes.IndexByte; dispatches to AVX2 for inputs >= 32 bytes
// where the vector setup cost pays for itself.
func Memchr(haystack []byte, needle byte) int {
	if len(haystack) == 0 {
		return -1
	}
	if hasAVX2 && len(haystack) >= 32 {
		return memchrAVX2(haystack, needle)
	}
	return memchrGeneric(haystack, needle)
}

// Memchr2 returns the index of the first occurrence of either needle1 or
// needle2 in haystack, or -1. Checks both bytes in the same vector pass,
// so it costs no more than a single-needle Memchr call.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	if len(haystack) == 0 {
		return -1
	}
	if hasAVX2 && len(haystack) >= 32 {
		return memchr2AVX2(haystack, needle1, needle2)
	}
	return memchr2Generic(haystack, needle1, needle2)
}

// Memchr3 returns the index of the first occurrence of needle1, needle2,
// or needle3 in haystack, or -1. Useful for a small character class
// (whitespace, delimiters) where building a full 256-byte table would be
// overkill.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	if len(haystack) == 0 {
		return -1
	}
	if hasAVX2 && len(haystack) >= 32 {
		return memchr3AVX2(haystack, needle1, needle2, needle3)
	}
	return memchr3Generic(haystack, needle1, needle2, needle3)
}

// MemchrPair returns the position of byte1 where byte2 also appears
// exactly offset bytes later, or -1. More selective than a single-byte
// search: a false positive needs both bytes at the right relative
// distance, which is what makes it useful as a 2-byte prefilter
// fingerprint check.
func MemchrPair(haystack []byte, byte1, byte2 byte, offset int) int {
	if offset < 0 {
		return -1
	}
	if len(haystack) <= offset {
		return -1
	}
	if offset == 0 {
		if byte1 != byte2 {
			return -1
		}
		return Memchr(haystack, byte1)
	}
	if hasAVX2 && len(haystack) >= 32+offset {
		return memchrPairAVX2(haystack, byte1, byte2, offset)
	}
	return memchrPairGeneric(haystack, byte1, byte2, offset)
}


