package twoway

// shiftKind tags the two variants of the Two-Way search loop.
type shiftKind uint8

const (
	// shiftSmall means the period lower bound is the exact period of the
	// needle. The search loop remembers how much of the needle is already
	// known to match after a period shift.
	shiftSmall shiftKind = iota

	// shiftLarge means the needle's period is at least half its length. The
	// search loop shifts by max(len(u), len(v)) after a left-half mismatch
	// and keeps no memory between windows.
	shiftLarge
)

func (k shiftKind) String() string {
	if k == shiftSmall {
		return "small"
	}
	return "large"
}

// shift is the amount a search may advance after a mismatch in the left
// half of the critical factorization.
//
// For a needle x = uv where v is the chosen extremal suffix, the period
// lower bound is period(v) <= period(x). The two are equal when
// len(u) < len(x)/2 and u is a suffix of v[:period(v)]; in that case the
// small variant applies with value == period. Otherwise the needle's period
// is at least len(x)/2 and the large variant applies with
// value == max(len(u), len(v)).
type shift struct {
	kind  shiftKind
	value int
}

// chooseShift selects the shift strategy from the oriented critical position
// and period lower bound.
func chooseShift(needle []byte, periodLowerBound, criticalPos int, d direction) shift {
	n := len(needle)
	large := shift{kind: shiftLarge, value: max(criticalPos, n-criticalPos)}
	if criticalPos*2 >= n {
		return large
	}
	// u = oriented[:criticalPos], v = oriented[criticalPos:].
	// The lower bound is the exact period only if u is a suffix of
	// v[:periodLowerBound].
	if !isOrientedSuffix(needle, criticalPos, periodLowerBound, d) {
		return large
	}
	return shift{kind: shiftSmall, value: periodLowerBound}
}

// isOrientedSuffix reports whether u = oriented[:crit] is a suffix of
// w = oriented[crit:crit+p]. Callers guarantee crit+p <= len(needle).
func isOrientedSuffix(needle []byte, crit, p int, d direction) bool {
	if crit > p {
		return false
	}
	// u[i] must equal w[p-crit+i] = oriented[p+i].
	for i := 0; i < crit; i++ {
		if d.at(needle, i) != d.at(needle, p+i) {
			return false
		}
	}
	return true
}
