package words

const (
	// KaratsubaThreshold is the operand length in words at or below which
	// Karatsuba falls back to schoolbook multiplication.
	KaratsubaThreshold = 35

	// MinKaratsubaThreshold is the smallest usable threshold. Below it the
	// middle product (aLo+aHi)×(bLo+bHi) is no shorter than its operands
	// and the recursion would not terminate.
	MinKaratsubaThreshold = 3
)

// Stats describes the work done by one Karatsuba multiplication.
type Stats struct {
	// MaxDepth is the deepest recursion level reached; 0 when the top-level
	// call fell back to schoolbook.
	MaxDepth int
	// KaratsubaCalls counts calls that split their operands.
	KaratsubaCalls int
	// SchoolbookCalls counts base-case multiplications.
	SchoolbookCalls int
	// ScratchWords is the total number of scratch words acquired.
	ScratchWords int
}

// Multiplier is a Karatsuba multiplier with a configurable base-case
// threshold. The zero value uses KaratsubaThreshold.
type Multiplier struct {
	threshold int
}

// NewMultiplier returns a Multiplier that falls back to schoolbook
// multiplication for operands of at most threshold words. Thresholds below
// MinKaratsubaThreshold are raised to it.
func NewMultiplier(threshold int) Multiplier {
	if threshold < MinKaratsubaThreshold {
		threshold = MinKaratsubaThreshold
	}
	return Multiplier{threshold: threshold}
}

// Threshold returns the effective base-case threshold.
func (m Multiplier) Threshold() int {
	if m.threshold == 0 {
		return KaratsubaThreshold
	}
	return m.threshold
}

// Mul returns a × b and its length, which is always len(a)+len(b).
func (m Multiplier) Mul(a, b Nat) (Nat, int) {
	c, wc, _ := m.MulWithStats(a, b)
	return c, wc
}

// MulWithStats is Mul that also reports recursion statistics.
func (m Multiplier) MulWithStats(a, b Nat) (Nat, int, Stats) {
	wc := len(a) + len(b)
	c := make(Nat, wc)
	var st Stats
	m.mul(c, a, b, 0, &st)
	return c, wc, st
}

// MulKaratsuba returns a × b using KaratsubaThreshold. The result always
// has len(a)+len(b) words, possibly with high zero words.
func MulKaratsuba(a, b Nat) (Nat, int) {
	return Multiplier{}.Mul(a, b)
}

// splitPoint returns N, the larger of the shorter length and half the
// longer length. Operands are split at N/2.
func splitPoint(wa, wb int) int {
	short, long := wa, wb
	if wa > wb {
		short, long = wb, wa
	}
	return max(short, long/2)
}

// useSchoolbook reports whether a wa×wb product goes to the base case:
// either operand is at or below the threshold, or one is at most half the
// length of the other.
func useSchoolbook(wa, wb, threshold int) bool {
	return wa <= threshold || wb <= threshold || wa <= wb/2 || wb <= wa/2
}

// mul writes a × b into c[:len(a)+len(b)], overwriting every word of that
// window.
func (m Multiplier) mul(c, a, b Nat, depth int, st *Stats) {
	wa, wb := len(a), len(b)
	if depth > st.MaxDepth {
		st.MaxDepth = depth
	}
	if useSchoolbook(wa, wb, m.Threshold()) {
		st.SchoolbookCalls++
		mulSchoolbook(c, a, b)
		return
	}
	st.KaratsubaCalls++

	h := splitPoint(wa, wb) / 2
	aLo, aHi := a[:h], a[h:]
	bLo, bHi := b[:h], b[h:]
	wc := wa + wb

	// P_lo and P_hi land in the disjoint windows [0,2h) and [2h,wc) of c.
	lo, hi := c[:2*h], c[2*h:wc]
	m.mul(lo, aLo, bLo, depth+1, st)
	m.mul(hi, aHi, bHi, depth+1, st)

	sumA := acquireScratch(len(aHi) + 1)
	defer releaseScratch(sumA)
	la := addTo(sumA, aHi, aLo)

	sumB := acquireScratch(len(bHi) + 1)
	defer releaseScratch(sumB)
	lb := addTo(sumB, bHi, bLo)

	mid := acquireScratch(la + lb)
	defer releaseScratch(mid)
	m.mul(mid, sumA[:la], sumB[:lb], depth+1, st)

	// P_lo + P_hi; hi is never shorter than lo.
	loHi := acquireScratch(len(hi) + 1)
	defer releaseScratch(loHi)
	lt := addTo(loHi, hi, lo)

	cross := acquireScratch(la + lb)
	defer releaseScratch(cross)
	if err := subTo(cross, mid, loHi[:lt]); err != nil {
		panic("words: karatsuba middle product below P_lo+P_hi: " + err.Error())
	}
	st.ScratchWords += len(sumA) + len(sumB) + len(mid) + len(loHi) + len(cross)

	// The cross term fits below wc because the whole product does.
	crossSig := cross.Trim()
	if len(crossSig) > wc-h || addWords(c[h:wc], c[h:wc], crossSig) != 0 {
		panic("words: karatsuba cross term overflows the product window")
	}
}
