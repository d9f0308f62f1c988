package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = uint64(0x0101010101010101)
	hi8 = uint64(0x8080808080808080)
)

// zeroBytes returns a mask with the high bit set in the lowest byte of v
// that is zero. Bytes above the lowest zero byte may be flagged spuriously
// by borrow propagation, so only the lowest set bit is meaningful.
func zeroBytes(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}

// memchrSWAR scans eight bytes at a time.
//
// Each word is XORed with the needle broadcast to all eight lanes, which
// turns matching bytes into zero bytes; zeroBytes then marks the first one.
func memchrSWAR(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * lo8
	i := 0
	for ; i+8 <= n; i += 8 {
		word := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroBytes(word ^ mask); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// MemchrPair returns the smallest i such that haystack[i] == byte1 and
// haystack[i+offset] == byte2, or -1 if there is none.
//
// Requiring two bytes at a fixed distance is far more selective than a
// single byte, which makes this the workhorse of the rare-byte prefilter.
// A negative offset never matches. An offset of zero degenerates to Memchr
// when the bytes agree and never matches when they differ.
func MemchrPair(haystack []byte, byte1, byte2 byte, offset int) int {
	if offset < 0 || len(haystack) <= offset {
		return -1
	}
	if offset == 0 {
		if byte1 != byte2 {
			return -1
		}
		return Memchr(haystack, byte1)
	}
	return memchrPairSWAR(haystack, byte1, byte2, offset)
}

// memchrPairSWAR loads one word at i for byte1 and one at i+offset for
// byte2. Lane k of both masks refers to the same candidate i+k, so ANDing
// them keeps only candidates where both bytes agree.
func memchrPairSWAR(haystack []byte, byte1, byte2 byte, offset int) int {
	n := len(haystack)
	mask1 := uint64(byte1) * lo8
	mask2 := uint64(byte2) * lo8

	i := 0
	for ; i+8+offset <= n; i += 8 {
		w1 := binary.LittleEndian.Uint64(haystack[i:])
		w2 := binary.LittleEndian.Uint64(haystack[i+offset:])
		z := zeroBytes(w1^mask1) & zeroBytes(w2^mask2)
		// Spurious lanes can only appear above a genuine zero lane in each
		// operand, so the lowest surviving lane still has to be confirmed.
		for z != 0 {
			k := bits.TrailingZeros64(z) / 8
			if haystack[i+k] == byte1 && haystack[i+k+offset] == byte2 {
				return i + k
			}
			z &^= uint64(0x80) << (8 * k)
		}
	}
	for ; i+offset < n; i++ {
		if haystack[i] == byte1 && haystack[i+offset] == byte2 {
			return i
		}
	}
	return -1
}
