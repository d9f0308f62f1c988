// Package simd provides the byte-scanning primitives used by prefilters.
//
// Every routine has a portable SWAR (SIMD Within A Register) implementation
// that inspects eight bytes per step using uint64 arithmetic. On x86-64 with
// AVX2, Memchr hands large inputs to the runtime's vectorized byte search.
//
// None of these routines are needed for correctness by the Two-Way finders;
// they only make candidate positions cheaper to find.
package simd
