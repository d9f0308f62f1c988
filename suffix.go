package twoway

// suffixKind selects the ordering used when extracting an extremal suffix.
type suffixKind uint8

const (
	// suffixMinimal extracts the smallest suffix. Strictly speaking it is not
	// the lexicographic minimum: between "a" and "aa" it picks "aa". The
	// critical factorization theorem relies on exactly this tie-break, so it
	// must not be "fixed".
	suffixMinimal suffixKind = iota

	// suffixMaximal extracts the lexicographically largest suffix. Between
	// "z" and "zz" it picks "zz".
	suffixMaximal
)

// suffixOrdering is the outcome of comparing one byte of the current best
// suffix against the corresponding byte of a candidate suffix.
type suffixOrdering uint8

const (
	// orderAccept: the candidate beats the current suffix and replaces it.
	orderAccept suffixOrdering = iota
	// orderSkip: the candidate loses; move on to the next candidate.
	orderSkip
	// orderPush: no decision yet; compare the next pair of bytes.
	orderPush
)

// compare classifies candidate against current under kind.
func (k suffixKind) compare(current, candidate byte) suffixOrdering {
	switch {
	case k == suffixMinimal && candidate < current:
		return orderAccept
	case k == suffixMinimal && candidate > current:
		return orderSkip
	case k == suffixMaximal && candidate > current:
		return orderAccept
	case k == suffixMaximal && candidate < current:
		return orderSkip
	default:
		return orderPush
	}
}

func (k suffixKind) String() string {
	if k == suffixMinimal {
		return "minimal"
	}
	return "maximal"
}

// suffix is an extremal suffix of a needle together with its period.
//
// pos is an oriented index: the suffix is the oriented slice starting at pos.
// For a forward suffix that is needle[pos:]; for a reverse suffix it is
// needle[:len(needle)-pos]. period is the period of the suffix itself, which
// is a lower bound on (not necessarily equal to) the period of the needle.
type suffix struct {
	pos    int
	period int
}

// extractSuffix computes the minimal or maximal suffix of needle in the
// orientation given by d.
//
// This is the maximal suffix procedure from Crochemore and Perrin's
// "Two-way string-matching" (1991), with zero-based indices. It runs in
// O(len(needle)) time and constant space.
func extractSuffix(needle []byte, kind suffixKind, d direction) suffix {
	n := len(needle)
	best := suffix{pos: 0, period: 1}
	// Start of the suffix being tested against best.
	candidate := 1
	// Offset of the byte pair under comparison within both suffixes.
	offset := 0

	for candidate+offset < n {
		cur := d.at(needle, best.pos+offset)
		cand := d.at(needle, candidate+offset)
		switch kind.compare(cur, cand) {
		case orderAccept:
			best = suffix{pos: candidate, period: 1}
			candidate++
			offset = 0
		case orderSkip:
			candidate += offset + 1
			offset = 0
			best.period = candidate - best.pos
		case orderPush:
			if offset+1 == best.period {
				candidate += best.period
				offset = 0
			} else {
				offset++
			}
		}
	}
	return best
}
