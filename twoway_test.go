package twoway

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"
)

func TestFindBasic(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     int
		wantRev  int
	}{
		{"empty_needle", "hello", "", 0, 5},
		{"empty_both", "", "", 0, 0},
		{"empty_haystack", "", "x", -1, -1},
		{"needle_too_long", "hi", "hello", -1, -1},
		{"exact_match", "hello", "hello", 0, 0},
		{"single_byte", "hello", "l", 2, 3},
		{"at_start", "hello world", "hello", 0, 0},
		{"at_end", "hello world", "world", 6, 6},
		{"not_found", "hello world", "xyz", -1, -1},
		{"repeated", "hello hello", "hello", 0, 6},
		{"overlapping", "aaaa", "aa", 0, 2},
		{"periodic", "aaaaaaa", "aaaa", 0, 3},
		{"periodic_miss", "aaabaaa", "aaaa", -1, -1},
		{"abab_in_ababab", "ababab", "abab", 0, 2},
		{"no_repetition", "the quick brown fox", "brown", 10, 10},
		{"null_bytes", "\x00\x01\x02\x03\x00\x01", "\x00\x01", 0, 4},
		{"high_bytes", "\x01\xff\xfe\x05\xff\xfe", "\xff\xfe", 1, 4},
		{"byteset_alias", "\x41\x81\x41", "\x81", 1, 1},
		{"http_header", "Content-Type: json\r\nContent-Length: 12\r\n", "Content-Length:", 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, n := []byte(tt.haystack), []byte(tt.needle)
			if got := NewFinder(n).Find(h, n); got != tt.want {
				t.Errorf("Find(%q, %q) = %d, want %d", h, n, got, tt.want)
			}
			if got := NewFinderRev(n).RFind(h, n); got != tt.wantRev {
				t.Errorf("RFind(%q, %q) = %d, want %d", h, n, got, tt.wantRev)
			}
		})
	}
}

// TestRFindSmallPeriodRegression: the reverse small-period loop must accept
// a match once the left scan reaches the shift bound, not only when it
// lands on it exactly.
func TestRFindSmallPeriodRegression(t *testing.T) {
	needle := []byte("abab")
	if got := NewFinderRev(needle).RFind([]byte("ababaz"), needle); got != 0 {
		t.Errorf("RFind(%q, %q) = %d, want 0", "ababaz", needle, got)
	}
}

func TestChooseShift(t *testing.T) {
	tests := []struct {
		needle string
		dir    direction
		kind   shiftKind
		value  int
	}{
		{"aaaa", forward, shiftSmall, 1},
		{"aaaa", reverse, shiftSmall, 1},
		{"abab", forward, shiftSmall, 2},
		{"abab", reverse, shiftSmall, 2},
		{"abcabc", forward, shiftSmall, 3},
		{"abcd", forward, shiftLarge, 3},
		{"ba", forward, shiftLarge, 1},
		{"a", forward, shiftSmall, 1},
		{"a", reverse, shiftSmall, 1},
		{"", forward, shiftLarge, 0},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String()+"/"+tt.needle, func(t *testing.T) {
			tw := newTwoWay([]byte(tt.needle), tt.dir)
			if tw.shift.kind != tt.kind || tw.shift.value != tt.value {
				t.Errorf("shift(%q) = %v{%d}, want %v{%d}",
					tt.needle, tw.shift.kind, tw.shift.value, tt.kind, tt.value)
			}
			if tw.criticalPos < 0 || tw.criticalPos > len(tt.needle) {
				t.Errorf("criticalPos %d out of range", tw.criticalPos)
			}
		})
	}
}

// TestShiftIsFixed searches many haystacks and checks the finder state
// never changes.
func TestShiftIsFixed(t *testing.T) {
	needle := []byte("abcabcab")
	f := NewFinder(needle)
	r := NewFinderRev(needle)
	before, beforeRev := f.tw, r.tw

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		h := randomBytes(rng, rng.Intn(64), "abc")
		f.Find(h, needle)
		r.RFind(h, needle)
	}
	if f.tw != before || r.tw != beforeRev {
		t.Errorf("finder state changed: %+v -> %+v, %+v -> %+v", before, f.tw, beforeRev, r.tw)
	}
	if again := NewFinder(needle); again.tw != before {
		t.Errorf("construction is not deterministic: %+v vs %+v", again.tw, before)
	}
}

func TestApproximateByteSet(t *testing.T) {
	needle := []byte("Two-Way\x00\xff")
	set := newApproximateByteSet(needle)
	for _, b := range needle {
		if !set.contains(b) {
			t.Errorf("contains(%#x) = false for a needle byte", b)
		}
	}
	empty := newApproximateByteSet(nil)
	for b := 0; b < 256; b++ {
		if empty.contains(byte(b)) {
			t.Fatalf("empty set contains %#x", b)
		}
	}
	if !newApproximateByteSet([]byte{0x01}).contains(0x41) {
		t.Error("0x01 and 0x41 share bucket 1 and must alias")
	}
}

// allStrings returns every string over alphabet with length <= maxLen.
func allStrings(alphabet string, maxLen int) [][]byte {
	out := [][]byte{{}}
	prev := [][]byte{{}}
	for l := 1; l <= maxLen; l++ {
		var next [][]byte
		for _, p := range prev {
			for i := 0; i < len(alphabet); i++ {
				s := append(append([]byte{}, p...), alphabet[i])
				next = append(next, s)
			}
		}
		out = append(out, next...)
		prev = next
	}
	return out
}

func randomBytes(rng *rand.Rand, n int, alphabet string) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return b
}

// TestExhaustiveBinary compares against stdlib for every needle up to six
// bytes and every haystack up to ten bytes over {a, b}. Binary alphabets
// produce the most periodic needles and exercise both shift variants.
func TestExhaustiveBinary(t *testing.T) {
	needles := allStrings("ab", 6)
	haystacks := allStrings("ab", 10)

	for _, n := range needles {
		f, r := NewFinder(n), NewFinderRev(n)
		for _, h := range haystacks {
			if got, want := f.Find(h, n), bytes.Index(h, n); got != want {
				t.Fatalf("Find(%q, %q) = %d, want %d", h, n, got, want)
			}
			if got, want := r.RFind(h, n), bytes.LastIndex(h, n); got != want {
				t.Fatalf("RFind(%q, %q) = %d, want %d", h, n, got, want)
			}
		}
	}
}

func TestRandomAgainstStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabets := []string{"ab", "abc", "abcdefgh", "\x00\x40\x80\xc0"}

	for _, alphabet := range alphabets {
		t.Run(fmt.Sprintf("alphabet_%d", len(alphabet)), func(t *testing.T) {
			for i := 0; i < 2000; i++ {
				n := randomBytes(rng, rng.Intn(12), alphabet)
				h := randomBytes(rng, rng.Intn(200), alphabet)
				// Plant the needle half of the time.
				if len(n) <= len(h) && rng.Intn(2) == 0 {
					at := rng.Intn(len(h) - len(n) + 1)
					copy(h[at:], n)
				}
				if got, want := NewFinder(n).Find(h, n), bytes.Index(h, n); got != want {
					t.Fatalf("Find(%q, %q) = %d, want %d", h, n, got, want)
				}
				if got, want := NewFinderRev(n).RFind(h, n), bytes.LastIndex(h, n); got != want {
					t.Fatalf("RFind(%q, %q) = %d, want %d", h, n, got, want)
				}
			}
		})
	}
}

// TestLongPeriodicNeedles covers needles long enough that the byte set is
// saturated and only the factorization drives the shifts.
func TestLongPeriodicNeedles(t *testing.T) {
	tests := []struct {
		name   string
		needle []byte
	}{
		{"run", bytes.Repeat([]byte("a"), 100)},
		{"square", bytes.Repeat([]byte("abcab"), 20)},
		{"near_square", append(bytes.Repeat([]byte("ab"), 40), 'c')},
		{"prefix_periodic", append([]byte("z"), bytes.Repeat([]byte("ab"), 40)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hay := bytes.Repeat(tt.needle[:len(tt.needle)-1], 5)
			hay = append(hay, tt.needle...)
			hay = append(hay, tt.needle[:len(tt.needle)/2]...)

			if got, want := NewFinder(tt.needle).Find(hay, tt.needle), bytes.Index(hay, tt.needle); got != want {
				t.Errorf("Find = %d, want %d", got, want)
			}
			if got, want := NewFinderRev(tt.needle).RFind(hay, tt.needle), bytes.LastIndex(hay, tt.needle); got != want {
				t.Errorf("RFind = %d, want %d", got, want)
			}
		})
	}
}
