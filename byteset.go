package twoway

// approximateByteSet is a 64-bit membership filter over the bytes of a needle.
//
// Bit i is set if and only if some needle byte b satisfies b%64 == i. A byte
// that is NOT in the set cannot occur in the needle, which lets the search
// loop skip a whole needle-length window when the haystack byte aligned with
// the needle's last byte (first byte, in reverse) misses the set. This is the
// Boyer-Moore bad character shift restricted to bytes absent from the needle.
type approximateByteSet uint64

// newApproximateByteSet builds the set for needle.
func newApproximateByteSet(needle []byte) approximateByteSet {
	var bits uint64
	for _, b := range needle {
		bits |= 1 << (b % 64)
	}
	return approximateByteSet(bits)
}

// contains reports whether b might be in the set.
// False positives are possible, false negatives are not.
func (s approximateByteSet) contains(b byte) bool {
	return uint64(s)&(1<<(b%64)) != 0
}
