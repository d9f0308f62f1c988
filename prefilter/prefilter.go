// Package prefilter provides candidate finders that let a substring search
// jump over stretches of haystack that cannot contain a match.
//
// A prefilter never decides that a match exists; it only proposes the next
// position worth verifying. The Two-Way finders in the parent package do the
// verification, so a prefilter may be as heuristic as it likes as long as it
// never proposes a position past the leftmost real match.
//
// The candidate finders here are stateless and safe to share. Tracker adds
// per-search effectiveness accounting and implements the IsEffective half of
// the twoway.Prefilter interface:
//
//	needle := []byte("Sherlock")
//	rare := prefilter.NewRareBytes(needle)
//	f := twoway.NewFinder(needle)
//	pos := f.FindWithPrefilter(prefilter.NewTracker(rare), haystack, needle)
package prefilter

import "github.com/coregx/twoway/simd"

// Scanner finds candidate start positions of a needle.
//
// Find returns the offset in haystack of the first position at which the
// needle could start, or -1 if it cannot occur at all. The returned offset
// is never greater than the leftmost actual occurrence.
type Scanner interface {
	Find(haystack []byte) int
}

// RareBytes proposes positions where the two rarest bytes of a needle both
// appear at the right distance from each other.
//
// Rarity comes from the background frequency table in the simd package, so
// the scan mostly runs inside simd.MemchrPair and rarely stops on a false
// candidate for ordinary text. A RareBytes value is immutable.
type RareBytes struct {
	// lead is the earlier of the two rare byte positions in the needle.
	lead      int
	trail     int
	leadByte  byte
	trailByte byte
	empty     bool
}

// NewRareBytes builds a rare-byte scanner for needle. The needle is not
// retained.
func NewRareBytes(needle []byte) RareBytes {
	if len(needle) == 0 {
		return RareBytes{empty: true}
	}
	info := simd.SelectRareBytes(needle)
	p := RareBytes{
		lead:      info.Index1,
		leadByte:  info.Byte1,
		trail:     info.Index2,
		trailByte: info.Byte2,
	}
	if p.trail < p.lead {
		p.lead, p.trail = p.trail, p.lead
		p.leadByte, p.trailByte = p.trailByte, p.leadByte
	}
	return p
}

// Find implements Scanner.
//
// A match starting at s puts the lead byte at s+lead. Scanning from
// haystack[lead:] therefore yields candidate starts directly.
func (p RareBytes) Find(haystack []byte) int {
	if p.empty {
		return 0
	}
	if len(haystack) <= p.lead {
		return -1
	}
	return simd.MemchrPair(haystack[p.lead:], p.leadByte, p.trailByte, p.trail-p.lead)
}

// Offsets returns the needle positions of the two bytes being scanned for,
// earlier position first.
func (p RareBytes) Offsets() (lead, trail int) {
	return p.lead, p.trail
}

// Inert is a prefilter that is never effective. Passing it to a search is
// equivalent to passing no prefilter at all.
type Inert struct{}

// IsEffective always reports false.
func (Inert) IsEffective() bool { return false }

// Find proposes every position.
func (Inert) Find([]byte) int { return 0 }
