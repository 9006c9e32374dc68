// Teddy searches for 2-32 literal alternatives at once using PSHUFB vector
// shuffles as 256-entry nibble lookup tables: each pattern is assigned a
// bucket, and a candidate position is one where the low and high nibbles of
// its fingerprint bytes both land in a shared bucket across all patterns
// assigned there. A candidate is then verified byte-for-byte against the
// patterns in that bucket.
//
// Construction (once per literal set):
//  1. assign patterns to buckets (modulo distribution)
//  2. for each fingerprint position, set the bucket's bit in the low- and
//     high-nibble mask for the byte each pattern has at that position
//
// Search (per 16-byte chunk on SSSE3):
//  1. split each haystack byte into nibbles, look up bucket membership
//  2. AND the low/high lookups — surviving bits are candidate buckets
//  3. verify patterns in each surviving bucket with a direct comparison
//
// Grounded on BurntSushi/aho-corasick's Teddy implementation (same bucket
// mask layout, same verify-all-set-bits approach as its verify_bucket()).
package prefilter

import (
	"bytes"
	"math/bits"

	"github.com/coregx/rex/literal"
)

const (
	// MaxTeddyPatterns is the most literals Slim Teddy (8 buckets, modulo
	// distribution) handles before the false-positive rate from bucket
	// sharing makes FatTeddy's 16 buckets worth the wider AVX2 path.
	MaxTeddyPatterns = 32

	// MinTeddyPatterns is the fewest literals worth building Teddy for;
	// below this a single-literal prefilter (Memchr/Memmem) is cheaper.
	MinTeddyPatterns = 2

	// MinTeddyPatternLen is the shortest literal Teddy will accept — under
	// 3 bytes the 1-4 byte fingerprint rejects too few false candidates.
	MinTeddyPatternLen = 3

	// MaxFingerprintLen bounds the fingerprint to the first 4 bytes of a
	// literal; more bytes would tighten the false-positive rate further but
	// cost more mask-building work for diminishing returns.
	MaxFingerprintLen = 4

	// NumBucketsSlim is Slim Teddy's bucket count — 8 buckets fit in the one
	// bit per byte a nibble-mask entry carries.
	NumBucketsSlim = 8
)

// TeddyConfig tunes Teddy construction away from its defaults.
type TeddyConfig struct {
	MinPatterns    int
	MaxPatterns    int
	MinPatternLen  int
	FingerprintLen int // 1-4; higher cuts false positives at more build cost
}

// DefaultTeddyConfig returns Slim Teddy's usual tunables: a 2-byte
// fingerprint, which in practice rejects the large majority of
// non-matching candidate positions before full verification runs.
func DefaultTeddyConfig() *TeddyConfig {
	return &TeddyConfig{
		MinPatterns:    MinTeddyPatterns,
		MaxPatterns:    MaxTeddyPatterns,
		MinPatternLen:  MinTeddyPatternLen,
		FingerprintLen: 2,
	}
}

// Teddy accelerates a literal alternation extracted from an atom tree's
// top-level Or (see ExtractLiteralAlternatives) by replacing a per-literal
// scan with one shared SIMD bucket lookup. A hit is always re-verified
// against the exact bytes of the pattern(s) in its bucket, so Teddy never
// reports a false match — only false candidates it then rules out.
//
// Immutable after construction; safe for concurrent Find/FindMatch calls.
type Teddy struct {
	patterns   [][]byte
	masks      *teddyMasks
	buckets    [][]int // bucket ID -> pattern IDs assigned to it
	minLen     int
	complete   bool // true: Find() already proves a full pattern match
	uniformLen int  // shared length when every pattern is the same size, else 0
}

// teddyMasks holds the nibble lookup tables the SIMD search consults.
//
// For fingerprint position pos, loMasks[pos][n] has bit b set when some
// pattern assigned to bucket b has low nibble n at that position (hiMasks
// is the same for the high nibble). The second 16 bytes of each row
// duplicate the first 16 so an AVX2 load can treat both lanes identically.
type teddyMasks struct {
	fingerprintLen uint32
	_              uint32 // alignment padding
	loMasks        [MaxFingerprintLen][32]byte
	hiMasks        [MaxFingerprintLen][32]byte
}

// NewTeddy builds a Teddy over patterns, or returns nil when they don't fit
// Slim Teddy's operating range: fewer than config.MinPatterns, more than
// config.MaxPatterns, or any pattern shorter than config.MinPatternLen. A
// nil config uses DefaultTeddyConfig.
func NewTeddy(patterns [][]byte, config *TeddyConfig) *Teddy {
	if config == nil {
		config = DefaultTeddyConfig()
	}

	if len(patterns) < config.MinPatterns || len(patterns) > config.MaxPatterns {
		return nil
	}

	minLen := len(patterns[0])
	for _, p := range patterns {
		if len(p) < config.MinPatternLen {
			return nil
		}
		if len(p) < minLen {
			minLen = len(p)
		}
	}

	fingerprintLen := config.FingerprintLen
	if fingerprintLen > minLen {
		fingerprintLen = minLen
	}
	if fingerprintLen > MaxFingerprintLen {
		fingerprintLen = MaxFingerprintLen
	}

	patternsCopy := make([][]byte, len(patterns))
	for i, p := range patterns {
		patternsCopy[i] = make([]byte, len(p))
		copy(patternsCopy[i], p)
	}

	masks, buckets := buildMasks(patternsCopy, fingerprintLen)

	// verifyBucket always does a full bytes.Equal against the candidate
	// pattern, so a Find() hit already is the definitive match.
	complete := true

	uniformLen := len(patternsCopy[0])
	for _, p := range patternsCopy[1:] {
		if len(p) != uniformLen {
			uniformLen = 0
			break
		}
	}

	return &Teddy{
		patterns:   patternsCopy,
		masks:      masks,
		buckets:    buckets,
		minLen:     minLen,
		complete:   complete,
		uniformLen: uniformLen,
	}
}

// buildMasks assigns each pattern to a bucket (patternID % numBuckets) and
// sets that bucket's bit in the low/high nibble mask for every fingerprint
// byte the pattern contributes.
func buildMasks(patterns [][]byte, fingerprintLen int) (*teddyMasks, [][]int) {
	masks := &teddyMasks{
		fingerprintLen: uint32(fingerprintLen), // #nosec G115 -- bounded by MaxFingerprintLen(4)
	}

	numBuckets := NumBucketsSlim
	if len(patterns) < numBuckets {
		numBuckets = len(patterns)
	}
	buckets := make([][]int, numBuckets)

	for patternID, pattern := range patterns {
		bucketID := patternID % numBuckets
		buckets[bucketID] = append(buckets[bucketID], patternID)
		bucketBit := byte(1 << bucketID)

		for pos := 0; pos < fingerprintLen; pos++ {
			b := pattern[pos]
			loNibble := b & 0x0F
			hiNibble := (b >> 4) & 0x0F

			masks.loMasks[pos][loNibble] |= bucketBit
			masks.hiMasks[pos][hiNibble] |= bucketBit
			// AVX2 reads both 16-byte lanes identically.
			masks.loMasks[pos][16+loNibble] |= bucketBit
			masks.hiMasks[pos][16+hiNibble] |= bucketBit
		}
	}

	return masks, buckets
}

// Find implements Prefilter: the index of the first candidate match at or
// after start, or -1. Haystacks under 16 bytes fall back to a scalar scan
// since SIMD setup cost would dominate.
func (t *Teddy) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	haystack = haystack[start:]

	if len(haystack) < 16 {
		return t.findScalar(haystack, start)
	}

	// findSIMD's bucket mask can have more than one bit set (several
	// patterns sharing a fingerprint), so every set bit must be checked,
	// not just the lowest — mirrors verify_bucket in the reference impl.
	pos, bucketMask := t.findSIMD(haystack)
	accumulatedOffset := 0

	for pos != -1 {
		mask := bucketMask
		for mask != 0 {
			bucket := bits.TrailingZeros(uint(mask))
			mask &^= 1 << bucket

			matchPos, _ := t.verifyBucket(haystack[accumulatedOffset:], pos, bucket)
			if matchPos != -1 {
				return start + accumulatedOffset + matchPos
			}
		}

		nextSearchStart := accumulatedOffset + pos + 1
		if nextSearchStart >= len(haystack) {
			break
		}
		accumulatedOffset = nextSearchStart
		pos, bucketMask = t.findSIMD(haystack[accumulatedOffset:])
	}

	return -1
}

// FindMatch returns (start, end) of the first match at or after start, or
// (-1, -1). Cheaper than Find plus a separate length lookup when patterns
// vary in length, since verifyBucket already knows which pattern matched.
func (t *Teddy) FindMatch(haystack []byte, start int) (int, int) {
	if start < 0 || start >= len(haystack) {
		return -1, -1
	}
	haystack = haystack[start:]

	if len(haystack) < 16 {
		return t.findMatchScalar(haystack, start)
	}

	pos, bucketMask := t.findSIMD(haystack)
	accumulatedOffset := 0

	for pos != -1 {
		mask := bucketMask
		for mask != 0 {
			bucket := bits.TrailingZeros(uint(mask))
			mask &^= 1 << bucket

			matchPos, patternID := t.verifyBucket(haystack[accumulatedOffset:], pos, bucket)
			if matchPos != -1 && patternID >= 0 && patternID < len(t.patterns) {
				matchStart := start + accumulatedOffset + matchPos
				matchEnd := matchStart + len(t.patterns[patternID])
				return matchStart, matchEnd
			}
		}

		nextSearchStart := accumulatedOffset + pos + 1
		if nextSearchStart >= len(haystack) {
			break
		}
		accumulatedOffset = nextSearchStart
		pos, bucketMask = t.findSIMD(haystack[accumulatedOffset:])
	}

	return -1, -1
}

// findMatchScalar is FindMatch's fallback for haystacks too short for SIMD.
func (t *Teddy) findMatchScalar(haystack []byte, start int) (int, int) {
	for i := 0; i < len(haystack)-t.minLen+1; i++ {
		for _, pattern := range t.patterns {
			if i+len(pattern) <= len(haystack) {
				if bytes.Equal(haystack[i:i+len(pattern)], pattern) {
					return start + i, start + i + len(pattern)
				}
			}
		}
	}
	return -1, -1
}

// findScalar is Find's fallback for haystacks too short for SIMD, checking
// every pattern at every position directly.
func (t *Teddy) findScalar(haystack []byte, start int) int {
	for i := 0; i < len(haystack)-t.minLen+1; i++ {
		for _, pattern := range t.patterns {
			if i+len(pattern) <= len(haystack) {
				if bytes.Equal(haystack[i:i+len(pattern)], pattern) {
					return start + i
				}
			}
		}
	}
	return -1
}

// findScalarCandidate is the non-SIMD candidate search: a correctness
// baseline for testing the SIMD path and the fallback on platforms without
// it. ~100x slower than SIMD but produces an identical bucket mask.
func (t *Teddy) findScalarCandidate(haystack []byte) (pos, bucketMask int) {
	fpLen := int(t.masks.fingerprintLen)

	for i := 0; i+fpLen <= len(haystack); i++ {
		candidateMask := byte(0xFF)

		for pos := 0; pos < fpLen; pos++ {
			b := haystack[i+pos]
			loNibble := b & 0x0F
			hiNibble := (b >> 4) & 0x0F

			loMask := t.masks.loMasks[pos][loNibble]
			hiMask := t.masks.hiMasks[pos][hiNibble]
			candidateMask &= loMask & hiMask
		}

		if candidateMask != 0 {
			return i, int(candidateMask)
		}
	}

	return -1, 0
}

// verify recomputes the candidate mask at pos and checks every bucket it
// names — unlike verifyBucket, which trusts a mask already computed by
// findSIMD. Kept for callers that only have a position, not a mask.
func (t *Teddy) verify(haystack []byte, pos int) (int, int) {
	fpLen := int(t.masks.fingerprintLen)
	if pos+fpLen > len(haystack) {
		return -1, -1
	}

	candidateMask := byte(0xFF)
	for i := 0; i < fpLen; i++ {
		b := haystack[pos+i]
		loNibble := b & 0x0F
		hiNibble := (b >> 4) & 0x0F
		loMask := t.masks.loMasks[i][loNibble]
		hiMask := t.masks.hiMasks[i][hiNibble]
		candidateMask &= loMask & hiMask
	}

	for bucketID := 0; bucketID < len(t.buckets); bucketID++ {
		if candidateMask&(1<<bucketID) != 0 {
			for _, patternID := range t.buckets[bucketID] {
				pattern := t.patterns[patternID]
				end := pos + len(pattern)
				if end > len(haystack) {
					continue
				}
				if bytes.Equal(haystack[pos:end], pattern) {
					return pos, patternID
				}
			}
		}
	}

	return -1, -1
}

// verifyBucket checks only the patterns assigned to bucket at pos — the
// SIMD search already narrowed the candidate to this bucket via BSFL, so
// no mask recomputation is needed here (contrast with verify).
func (t *Teddy) verifyBucket(haystack []byte, pos int, bucket int) (int, int) {
	if pos < 0 || pos >= len(haystack) {
		return -1, -1
	}

	if bucket >= 0 && bucket < len(t.buckets) {
		for _, patternID := range t.buckets[bucket] {
			pattern := t.patterns[patternID]
			end := pos + len(pattern)
			if end <= len(haystack) && bytes.Equal(haystack[pos:end], pattern) {
				return pos, patternID
			}
		}
	}

	return -1, -1
}

// IsComplete implements Prefilter.
func (t *Teddy) IsComplete() bool {
	return t.complete
}

// LiteralLen implements Prefilter: the shared pattern length when every
// pattern in the alternation has the same length and complete is true,
// else 0.
func (t *Teddy) LiteralLen() int {
	if t.complete && t.uniformLen > 0 {
		return t.uniformLen
	}
	return 0
}

// HeapBytes implements Prefilter: the fixed mask-table size plus pattern
// bytes plus the bucket index slices, enough for a caller picking between
// prefilter strategies by memory footprint.
func (t *Teddy) HeapBytes() int {
	heapBytes := 264 // sizeof(teddyMasks)

	for _, p := range t.patterns {
		heapBytes += len(p)
	}

	heapBytes += len(t.buckets) * 24 // slice header, 64-bit
	for _, bucket := range t.buckets {
		heapBytes += len(bucket) * 8
	}

	return heapBytes
}

// newTeddy builds a Teddy prefilter from a literal.Seq extracted from an
// atom tree's top-level alternation (see selectPrefilter), or nil when the
// literals fall outside Teddy's operating range. The result is complete
// only when every literal in seq is marked complete.
func newTeddy(seq *literal.Seq) Prefilter {
	patterns := make([][]byte, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		patterns[i] = seq.Get(i).Bytes
	}
	t := NewTeddy(patterns, nil)
	if t == nil {
		return nil
	}
	for i := 0; i < seq.Len(); i++ {
		if !seq.Get(i).Complete {
			t.complete = false
		}
	}
	return t
}
