//go:build amd64

// Package asciiscan provides a minimal single-byte scan helper for
// prefilters whose extracted literal is exactly one byte long.
//
// It mirrors the two-file, CPU-feature-gated split used throughout
// package simd, but at this single-byte granularity the underlying
// std/bytes.IndexByte already compiles to the same vectorized code the
// runtime ships, so both branches below route there: the gate exists to
// keep the dispatch point in one place if that ever stops being true.
package asciiscan

import "golang.org/x/sys/cpu"

var hasSSE3 = cpu.X86.HasSSE3

// IndexByte returns the index of the first occurrence of needle in
// haystack, or -1 if needle is not present.
func IndexByte(haystack []byte, needle byte) int {
	if hasSSE3 {
		return indexByte(haystack, needle)
	}
	return indexByte(haystack, needle)
}
