package asciiscan

import "bytes"

func indexByte(haystack []byte, needle byte) int {
	return bytes.IndexByte(haystack, needle)
}
