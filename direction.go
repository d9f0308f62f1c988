package twoway

// direction selects which end of a byte slice index 0 refers to.
//
// Every piece of Two-Way math in this package (suffix extraction, shift
// selection and the search loops) is written once against "oriented"
// indices. A forward orientation reads s[i]; a reverse orientation reads
// s[len(s)-1-i]. Reverse search is then forward search over the mirrored
// needle and haystack, and the two can never drift apart.
type direction uint8

const (
	forward direction = iota
	reverse
)

// at returns the byte at oriented index i of s.
func (d direction) at(s []byte, i int) byte {
	if d == forward {
		return s[i]
	}
	return s[len(s)-1-i]
}

// String returns a human-readable name, used in test failure messages.
func (d direction) String() string {
	if d == forward {
		return "forward"
	}
	return "reverse"
}
