package twoway

// search runs the Two-Way loop selected at construction and returns the
// oriented start of the first match, or -1.
//
// The prefilter is only meaningful for forward searches, since its Find
// works on forward haystack offsets. Reverse callers pass nil.
func (tw *twoWay) search(d direction, pre Prefilter, haystack, needle []byte) int {
	if d == reverse {
		pre = nil
	}
	if tw.shift.kind == shiftSmall {
		return tw.searchSmall(d, pre, haystack, needle, tw.shift.value)
	}
	return tw.searchLarge(d, pre, haystack, needle, tw.shift.value)
}

// searchSmall is the exact-period variant.
//
// mem records how many leading needle bytes are already known to match at
// pos after a period shift. Those bytes are not compared again, which is
// what keeps the total number of comparisons linear for periodic needles.
func (tw *twoWay) searchSmall(d direction, pre Prefilter, haystack, needle []byte, period int) int {
	nlen := len(needle)
	if nlen == 0 {
		return 0
	}
	last := nlen - 1
	crit := tw.criticalPos
	pos, mem := 0, 0
	for pos+nlen <= len(haystack) {
		i := max(crit, mem)
		if pre != nil && pre.IsEffective() {
			off := pre.Find(haystack[pos:])
			if off < 0 {
				return -1
			}
			pos += off
			mem = 0
			i = crit
			if pos+nlen > len(haystack) {
				return -1
			}
		}
		if !tw.byteset.contains(d.at(haystack, pos+last)) {
			pos += nlen
			mem = 0
			continue
		}
		for i < nlen && d.at(needle, i) == d.at(haystack, pos+i) {
			i++
		}
		if i < nlen {
			pos += i - crit + 1
			mem = 0
			continue
		}
		j := crit
		for j > mem && d.at(needle, j) == d.at(haystack, pos+j) {
			j--
		}
		// j may stop above mem only on a mismatch; j <= mem means every byte
		// down to mem was compared (or known) and only needle[mem] remains.
		if j <= mem && d.at(needle, mem) == d.at(haystack, pos+mem) {
			return pos
		}
		pos += period
		mem = nlen - period
	}
	return -1
}

// searchLarge is the variant for needles whose period is at least half
// their length. No memory is kept between windows.
func (tw *twoWay) searchLarge(d direction, pre Prefilter, haystack, needle []byte, shiftBy int) int {
	nlen := len(needle)
	if nlen == 0 {
		return 0
	}
	last := nlen - 1
	crit := tw.criticalPos
	pos := 0
	for pos+nlen <= len(haystack) {
		if pre != nil && pre.IsEffective() {
			off := pre.Find(haystack[pos:])
			if off < 0 {
				return -1
			}
			pos += off
			if pos+nlen > len(haystack) {
				return -1
			}
		}
		if !tw.byteset.contains(d.at(haystack, pos+last)) {
			pos += nlen
			continue
		}
		i := crit
		for i < nlen && d.at(needle, i) == d.at(haystack, pos+i) {
			i++
		}
		if i < nlen {
			pos += i - crit + 1
			continue
		}
		j := crit
		for j > 0 && d.at(needle, j-1) == d.at(haystack, pos+j-1) {
			j--
		}
		if j == 0 {
			return pos
		}
		pos += shiftBy
	}
	return -1
}
