//go:build !amd64

package asciiscan

// IndexByte returns the index of the first occurrence of needle in
// haystack, or -1 if needle is not present.
func IndexByte(haystack []byte, needle byte) int {
	return indexByte(haystack, needle)
}
