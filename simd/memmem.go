package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack, or
// -1 if needle is not present. Equivalent to bytes.Index, but picks the
// needle's two rarest bytes (see SelectRareBytes) and searches for both at
// once via MemchrPair before falling back to a single-byte Memchr scan, so
// a candidate position already has two bytes confirmed before the full
// verification compare runs.
func Memmem(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	if needleLen == 0 {
		return 0
	}
	if haystackLen == 0 || needleLen > haystackLen {
		return -1
	}
	if needleLen == 1 {
		return Memchr(haystack, needle[0])
	}

	// memmemShort's paired-byte search stays effective for long needles too
	// (the two rarest bytes are still two bytes, regardless of needle
	// length), so there's no separate long-needle path.
	return memmemShort(haystack, needle)
}

// memmemShort locates needle using its two rarest bytes (by ByteFrequencies
// rank) as a paired fingerprint, verifying the full needle only at
// positions where both agree.
func memmemShort(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	info := SelectRareBytes(needle)
	firstIdx, secondIdx := info.Index1, info.Index2
	firstByte, secondByte := info.Byte1, info.Byte2
	if firstIdx > secondIdx {
		firstIdx, secondIdx = secondIdx, firstIdx
		firstByte, secondByte = secondByte, firstByte
	}
	offset := secondIdx - firstIdx

	searchStart := 0
	for {
		var candidatePos int
		if offset > 0 {
			candidatePos = MemchrPair(haystack[searchStart:], firstByte, secondByte, offset)
		} else {
			candidatePos = Memchr(haystack[searchStart:], firstByte)
		}
		if candidatePos == -1 {
			return -1
		}
		candidatePos += searchStart

		needleStartPos := candidatePos - firstIdx
		if needleStartPos < 0 || needleStartPos+needleLen > haystackLen {
			searchStart = candidatePos + 1
			if searchStart >= haystackLen {
				return -1
			}
			continue
		}

		if bytesEqual(haystack[needleStartPos:needleStartPos+needleLen], needle) {
			return needleStartPos
		}

		searchStart = candidatePos + 1
		if searchStart >= haystackLen {
			return -1
		}
	}
}

// bytesEqual verifies a full needle match at a candidate position.
func bytesEqual(a, b []byte) bool {
	return bytes.Equal(a, b)
}
