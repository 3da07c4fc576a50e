// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// CacheLineSize is the assumed L1 cache line size used to pad the
// producer and consumer cursor blocks apart from each other.
const CacheLineSize = 64

// MaxRingSize is the largest ring storage size this package supports,
// kept at 2^31-1 so that 32-bit cursor distances stay unambiguous.
const MaxRingSize = 0x7fffffff

// isPowerOfTwo reports whether x is a power of two. Zero is not a power
// of two.
func isPowerOfTwo(x uint32) bool {
	return x != 0 && x&(x-1) == 0
}

// nextPowerOfTwo32 returns the smallest power of two >= x, using the
// classic bit-smear-and-increment trick. nextPowerOfTwo32(0) returns 1.
func nextPowerOfTwo32(x uint32) uint32 {
	if x == 0 {
		return 1
	}
	x--
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	return x + 1
}

// alignUp rounds v up to the nearest multiple of a, a power of two. It is
// the Go equivalent of RTE_ALIGN, used to round a raw byte footprint up to
// a cache-line boundary before handing it to an external allocator.
func alignUp(v, a int) int {
	return (v + a - 1) &^ (a - 1)
}

// pad is cache line padding inserted between hot fields to prevent
// false sharing. It does not guarantee the enclosing struct itself
// starts on a cache line boundary (Go has no alignas); it guarantees
// relative separation between the fields on either side of it, which is
// what actually prevents cross-core contention between prod and cons.
type pad [CacheLineSize]byte
