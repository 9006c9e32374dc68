//go:build amd64

package prefilter

import (
	"golang.org/x/sys/cpu"
)

var hasSSSE3 = cpu.X86.HasSSSE3

var hasAVX2 = cpu.X86.HasAVX2

// teddySlimSSSE3_1 is the 128-bit-vector nibble-mask kernel for a 1-byte
// fingerprint, implemented in teddy_ssse3_amd64.s. Returns the first
// candidate position and its bucket id (0-7), or (-1, -1).
//
//go:noescape
func teddySlimSSSE3_1(masks *teddyMasks, haystack []byte) (pos, bucket int)

// findSIMD overrides teddy.go's generic implementation when SSSE3 is
// available, dispatching to the 1-byte-fingerprint kernel; 2-4 byte
// fingerprints and non-SSSE3 CPUs fall back to findScalarCandidate.
func (t *Teddy) findSIMD(haystack []byte) (pos, bucket int) {
	if !hasSSSE3 {
		return t.findScalarCandidate(haystack)
	}
	if int(t.masks.fingerprintLen) == 1 {
		return teddySlimSSSE3_1(t.masks, haystack)
	}
	return t.findScalarCandidate(haystack)
}
