// Package conv provides integer conversion helpers for search statistics.
//
// Statistics counters are fixed-width so that trackers stay small. They
// saturate instead of wrapping: a wrapped counter would make a long-running
// prefilter look ineffective (or effective) for no reason.
package conv

import "math"

// IntToUint32 converts n to uint32, clamping to [0, math.MaxUint32].
//
//go:inline
func IntToUint32(n int) uint32 {
	if n < 0 {
		return 0
	}
	// Compare as uint to stay correct where int is 32 bits wide.
	if uint(n) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(n)
}

// AddUint32 returns a+b, clamped to math.MaxUint32.
//
//go:inline
func AddUint32(a, b uint32) uint32 {
	if s := a + b; s >= a {
		return s
	}
	return math.MaxUint32
}
