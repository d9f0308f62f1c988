// Package twoway implements the Two-Way substring search algorithm.
//
// Two-Way, due to Crochemore and Perrin ("Two-way string-matching", 1991),
// is a good general purpose substring searcher because of its bounds. With
// m = len(needle) and n = len(haystack):
//   - building a finder takes O(m) time and no heap memory
//   - a search takes O(n) time in the worst case, whatever the needle
//   - a search uses O(1) space and never allocates
//
// The same algorithm backs memmem in GNU libc and musl.
//
// Two finders are provided. Finder reports the leftmost occurrence of a
// needle, FinderRev reports the rightmost one. Both are built once from a
// needle and may be reused for any number of haystacks:
//
//	needle := []byte("needle")
//	f := twoway.NewFinder(needle)
//	pos := f.Find([]byte("haystack with a needle"), needle)
//	// pos == 16
//
// A finder does not keep a copy of the needle. The exact same bytes must be
// passed again to every search call. Passing a different needle is a logic
// error: the result is meaningless (and may panic on an out-of-range index).
// Searcher wraps both finders together with an owned copy of the needle for
// callers that do not want to carry it around:
//
//	s := twoway.NewSearcher([]byte("needle"))
//	first := s.Index(haystack)
//	last := s.LastIndex(haystack)
//
// Forward searches may be accelerated by a Prefilter that jumps to likely
// candidate positions (see the prefilter package). Correctness never depends
// on the prefilter; it is consulted only while it reports itself effective.
//
// An empty needle matches at 0 for forward searches and at len(haystack)
// for reverse searches, the same as bytes.Index and bytes.LastIndex.
package twoway

// Prefilter finds candidate match positions ahead of the Two-Way loop.
//
// Implementations are typically stateful (they track whether they are paying
// for themselves) and so a Prefilter value must not be shared between
// concurrent searches.
type Prefilter interface {
	// IsEffective reports whether the prefilter should be consulted for the
	// next candidate. Once it returns false the search may stop asking.
	IsEffective() bool

	// Find returns the offset in haystack of the next position at which a
	// match could start, or -1 if the needle cannot occur anywhere in
	// haystack. The offset must not be greater than that of the leftmost
	// actual match.
	Find(haystack []byte) int
}

// twoWay is the state shared by forward and reverse finders.
//
// The search starts by comparing the haystack against the needle to the
// right of criticalPos. Only if that part matches is the part to the left
// compared. On a mismatch the window advances by an amount derived from
// the critical position and the precomputed shift.
//
// criticalPos is an oriented index (see direction): for a reverse finder it
// counts from the end of the needle.
type twoWay struct {
	byteset     approximateByteSet
	criticalPos int
	shift       shift
}

// newTwoWay computes the critical factorization of needle for direction d.
//
// Both the minimal and the maximal suffix are extracted and the one that
// starts later (in oriented terms) is kept. That maximizes the part of the
// needle scanned first, which the shift correctness argument depends on.
func newTwoWay(needle []byte, d direction) twoWay {
	minSuffix := extractSuffix(needle, suffixMinimal, d)
	maxSuffix := extractSuffix(needle, suffixMaximal, d)
	chosen := maxSuffix
	if minSuffix.pos > maxSuffix.pos {
		chosen = minSuffix
	}
	return twoWay{
		byteset:     newApproximateByteSet(needle),
		criticalPos: chosen.pos,
		shift:       chooseShift(needle, chosen.period, chosen.pos, d),
	}
}

// Finder searches for the first occurrence of a needle.
//
// A Finder is an immutable value. It is safe to copy and to use from
// multiple goroutines at once.
type Finder struct {
	tw twoWay
}

// NewFinder builds a forward finder for needle.
//
// The needle is not retained.
func NewFinder(needle []byte) Finder {
	return Finder{tw: newTwoWay(needle, forward)}
}

// Find returns the index of the first occurrence of needle in haystack, or
// -1 if there is none.
//
// needle must be byte-for-byte identical to the needle given to NewFinder.
func (f Finder) Find(haystack, needle []byte) int {
	return f.tw.search(forward, nil, haystack, needle)
}

// FindWithPrefilter is like Find but consults pre for candidate positions
// while pre reports itself effective. A nil pre is the same as Find.
//
// When pre reports that no candidate exists, FindWithPrefilter returns -1
// without scanning the rest of the haystack.
func (f Finder) FindWithPrefilter(pre Prefilter, haystack, needle []byte) int {
	return f.tw.search(forward, pre, haystack, needle)
}

// FinderRev searches for the last occurrence of a needle.
//
// A FinderRev is an immutable value. It is safe to copy and to use from
// multiple goroutines at once.
type FinderRev struct {
	tw twoWay
}

// NewFinderRev builds a reverse finder for needle.
//
// The needle is not retained.
func NewFinderRev(needle []byte) FinderRev {
	return FinderRev{tw: newTwoWay(needle, reverse)}
}

// RFind returns the index of the last occurrence of needle in haystack, or
// -1 if there is none.
//
// needle must be byte-for-byte identical to the needle given to NewFinderRev.
func (f FinderRev) RFind(haystack, needle []byte) int {
	pos := f.tw.search(reverse, nil, haystack, needle)
	if pos < 0 {
		return -1
	}
	return len(haystack) - pos - len(needle)
}
