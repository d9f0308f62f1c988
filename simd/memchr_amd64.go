//go:build amd64

package simd

import (
	"bytes"

	"golang.org/x/sys/cpu"
)

// hasAVX2 is set once at package initialization.
var hasAVX2 = cpu.X86.HasAVX2

// avx2Threshold is the haystack length below which the SWAR loop wins over
// the vector routine's setup cost.
const avx2Threshold = 32

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// On CPUs with AVX2, inputs of 32 bytes or more are scanned by
// bytes.IndexByte, whose runtime implementation uses 256-bit vectors.
// Shorter inputs and older CPUs use the SWAR loop.
func Memchr(haystack []byte, needle byte) int {
	if hasAVX2 && len(haystack) >= avx2Threshold {
		return bytes.IndexByte(haystack, needle)
	}
	return memchrSWAR(haystack, needle)
}
