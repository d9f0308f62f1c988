package prefilter

import "github.com/coregx/twoway/internal/conv"

// Tracker wraps a Scanner with effectiveness tracking.
//
// Every candidate the scanner returns is recorded as one skip of some number
// of bytes. Once MinSkips skips have been seen, the tracker stays effective
// only while the average skip is at least MinSkipBytes. A scanner that keeps
// stopping a byte or two ahead costs more than it saves, and retiring it is
// what keeps a prefiltered search within its linear time bound.
//
// Once retired a tracker stays retired until Reset. A Tracker is mutable
// per-search state: use one per search and do not share it between
// goroutines. The scanner it wraps may be shared.
//
// Tracker implements twoway.Prefilter.
type Tracker struct {
	inner Scanner

	skips   uint32
	skipped uint32

	minSkips     uint32
	minSkipBytes uint32

	active bool
}

// NewTracker wraps inner with the default configuration.
//
// Returns nil if inner is nil.
func NewTracker(inner Scanner) *Tracker {
	return NewTrackerWithConfig(inner, DefaultTrackerConfig())
}

// NewTrackerWithConfig wraps inner with a custom configuration. The
// configuration is expected to have passed Validate.
//
// Returns nil if inner is nil.
func NewTrackerWithConfig(inner Scanner, config TrackerConfig) *Tracker {
	if inner == nil {
		return nil
	}
	return &Tracker{
		inner:        inner,
		minSkips:     config.MinSkips,
		minSkipBytes: config.MinSkipBytes,
		active:       true,
	}
}

// IsEffective reports whether the scanner is still worth consulting.
func (t *Tracker) IsEffective() bool {
	if !t.active {
		return false
	}
	if t.skips < t.minSkips {
		return true
	}
	if uint64(t.skipped) >= uint64(t.minSkipBytes)*uint64(t.skips) {
		return true
	}
	t.active = false
	return false
}

// Find asks the scanner for the next candidate and records how far it
// skipped.
func (t *Tracker) Find(haystack []byte) int {
	pos := t.inner.Find(haystack)
	if pos >= 0 {
		t.skips = conv.AddUint32(t.skips, 1)
		t.skipped = conv.AddUint32(t.skipped, conv.IntToUint32(pos))
	}
	return pos
}

// Stats returns the number of candidates seen, the total bytes skipped and
// whether the tracker is still active.
func (t *Tracker) Stats() (skips, skipped uint32, active bool) {
	return t.skips, t.skipped, t.active
}

// Reset clears the statistics and re-activates the tracker, so that it can
// be reused for another search.
func (t *Tracker) Reset() {
	t.skips = 0
	t.skipped = 0
	t.active = true
}

// Inner returns the wrapped scanner.
func (t *Tracker) Inner() Scanner {
	return t.inner
}
