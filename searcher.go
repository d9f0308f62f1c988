package twoway

import "github.com/coregx/twoway/prefilter"

// Searcher bundles forward and reverse finders with an owned copy of their
// needle, so the needle never has to be passed again.
//
// A Searcher is safe for concurrent use. Each forward search that uses the
// prefilter gets its own Tracker; the rare-byte scanner behind it is shared
// and immutable.
type Searcher struct {
	needle []byte
	fwd    Finder
	rev    FinderRev

	rare      prefilter.RareBytes
	usePre    bool
	trackConf prefilter.TrackerConfig
}

// NewSearcher builds a Searcher for needle with DefaultConfig.
// The needle is copied.
func NewSearcher(needle []byte) *Searcher {
	s, err := NewSearcherWithConfig(needle, DefaultConfig())
	if err != nil {
		// DefaultConfig always validates.
		panic(err)
	}
	return s
}

// NewSearcherWithConfig builds a Searcher for needle with a custom
// configuration. The needle is copied.
func NewSearcherWithConfig(needle []byte, config Config) (*Searcher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	owned := make([]byte, len(needle))
	copy(owned, needle)

	s := &Searcher{
		needle:    owned,
		fwd:       NewFinder(owned),
		rev:       NewFinderRev(owned),
		usePre:    config.EnablePrefilter && len(owned) > 0,
		trackConf: config.Tracker,
	}
	if s.usePre {
		s.rare = prefilter.NewRareBytes(owned)
	}
	return s, nil
}

// Needle returns the needle this Searcher looks for. The returned slice
// must not be modified.
func (s *Searcher) Needle() []byte {
	return s.needle
}

// Index returns the index of the first occurrence of the needle in
// haystack, or -1 if there is none.
func (s *Searcher) Index(haystack []byte) int {
	if !s.usePre {
		return s.fwd.Find(haystack, s.needle)
	}
	tracker := prefilter.NewTrackerWithConfig(s.rare, s.trackConf)
	return s.fwd.FindWithPrefilter(tracker, haystack, s.needle)
}

// LastIndex returns the index of the last occurrence of the needle in
// haystack, or -1 if there is none.
func (s *Searcher) LastIndex(haystack []byte) int {
	return s.rev.RFind(haystack, s.needle)
}

// Contains reports whether the needle occurs in haystack.
func (s *Searcher) Contains(haystack []byte) bool {
	return s.Index(haystack) >= 0
}

// FindAllIndex returns the start offsets of successive non-overlapping
// occurrences of the needle, scanning left to right. If n >= 0 at most n
// offsets are returned; n < 0 returns all of them. A nil slice means no
// occurrence.
//
// An empty needle matches at every position from 0 to len(haystack).
func (s *Searcher) FindAllIndex(haystack []byte, n int) []int {
	if n == 0 {
		return nil
	}
	var out []int
	s.each(haystack, func(pos int) bool {
		out = append(out, pos)
		return n < 0 || len(out) < n
	})
	return out
}

// Count returns the number of non-overlapping occurrences of the needle in
// haystack. An empty needle occurs len(haystack)+1 times, as in
// bytes.Count.
func (s *Searcher) Count(haystack []byte) int {
	count := 0
	s.each(haystack, func(int) bool {
		count++
		return true
	})
	return count
}

// each calls yield with every non-overlapping occurrence until yield
// returns false. One tracker spans the whole iteration so that retiring an
// ineffective prefilter sticks across matches.
func (s *Searcher) each(haystack []byte, yield func(pos int) bool) {
	if len(s.needle) == 0 {
		for i := 0; i <= len(haystack); i++ {
			if !yield(i) {
				return
			}
		}
		return
	}

	var pre Prefilter
	if s.usePre {
		pre = prefilter.NewTrackerWithConfig(s.rare, s.trackConf)
	}
	start := 0
	for start+len(s.needle) <= len(haystack) {
		pos := s.fwd.FindWithPrefilter(pre, haystack[start:], s.needle)
		if pos < 0 {
			return
		}
		if !yield(start + pos) {
			return
		}
		start += pos + len(s.needle)
	}
}

// Index returns the index of the first occurrence of needle in haystack,
// or -1. It builds a throwaway Searcher; reuse a Searcher or Finder when
// searching for the same needle repeatedly.
func Index(haystack, needle []byte) int {
	return NewFinder(needle).FindWithPrefilter(preFor(needle), haystack, needle)
}

// LastIndex returns the index of the last occurrence of needle in
// haystack, or -1.
func LastIndex(haystack, needle []byte) int {
	return NewFinderRev(needle).RFind(haystack, needle)
}

// Contains reports whether needle occurs in haystack.
func Contains(haystack, needle []byte) bool {
	return Index(haystack, needle) >= 0
}

// preFor returns a default prefilter for a one-off search, or nil for an
// empty needle.
func preFor(needle []byte) Prefilter {
	if len(needle) == 0 {
		return nil
	}
	return prefilter.NewTracker(prefilter.NewRareBytes(needle))
}
