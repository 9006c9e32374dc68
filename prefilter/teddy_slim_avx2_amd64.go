//go:build amd64

package prefilter

// teddySlimAVX2_1 is the 256-bit-vector nibble-mask kernel for a 1-byte
// fingerprint, twice the throughput of teddySlimSSSE3_1. Not dispatched
// from findSIMD: the SSSE3 kernel already covers this fingerprint length
// and swapping it in needs its own CPU-capability branch, tracked
// separately rather than done here.
//
//go:noescape
//nolint:unused
func teddySlimAVX2_1(masks *teddyMasks, haystack []byte) (pos int, bucketMask uint8)

// teddySlimAVX2_2 is the 256-bit-vector nibble-mask kernel for a 2-byte
// fingerprint: checking two consecutive bytes instead of one cuts false
// positives by roughly 90% over the 1-byte variant. Exercised directly by
// teddy_avx2_regression_test.go.
//
//go:noescape
//nolint:unused
func teddySlimAVX2_2(masks *teddyMasks, haystack []byte) (pos int, bucketMask uint8)
