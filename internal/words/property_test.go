package words

import (
	"math/big"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// operands builds a deterministic operand pair from generated sizes and seed.
func operands(wa, wb int, seed uint64) (Nat, Nat) {
	rng := newTestRand(seed)
	return Random(rng, wa), Random(rng, wb)
}

// TestKaratsubaMatchesReference_PropertyBased verifies that Karatsuba and
// math/big agree on random operands whose sizes straddle the threshold and
// the imbalance fallback.
func TestKaratsubaMatchesReference_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("karatsuba(a, b) == big.Mul(a, b)", prop.ForAll(
		func(wa, wb int, seed uint64) bool {
			a, b := operands(wa, wb, seed)
			got, wc := MulKaratsuba(a, b)
			if wc != wa+wb {
				t.Logf("length %d, want %d", wc, wa+wb)
				return false
			}
			return got.Big().Cmp(new(big.Int).Mul(a.Big(), b.Big())) == 0
		},
		gen.IntRange(1, 400),
		gen.IntRange(1, 400),
		gen.UInt64(),
	))

	properties.Property("small thresholds agree with schoolbook", prop.ForAll(
		func(wa, wb, threshold int, seed uint64) bool {
			a, b := operands(wa, wb, seed)
			got, _ := NewMultiplier(threshold).Mul(a, b)
			want, _ := MulSchoolbook(a, b)
			return slices.Equal(got, want)
		},
		gen.IntRange(1, 120),
		gen.IntRange(1, 120),
		gen.IntRange(MinKaratsubaThreshold, 12),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestKaratsubaCommutative_PropertyBased verifies a×b == b×a word for word.
func TestKaratsubaCommutative_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("a×b == b×a", prop.ForAll(
		func(wa, wb int, seed uint64) bool {
			a, b := operands(wa, wb, seed)
			ab, _ := MulKaratsuba(a, b)
			ba, _ := MulKaratsuba(b, a)
			return slices.Equal(ab, ba)
		},
		gen.IntRange(1, 300),
		gen.IntRange(1, 300),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestAddSubInverse_PropertyBased verifies (a + b) − b == a and that the
// product bit length never exceeds the sum of the operand bit lengths.
func TestAddSubInverse_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("(a + b) − b == a", prop.ForAll(
		func(wa, wb int, seed uint64) bool {
			a, b := operands(wa, wb, seed)
			sum, _ := Add(a, b)
			diff, wc, err := Sub(sum, b)
			if err != nil {
				t.Logf("Sub error: %v", err)
				return false
			}
			return wc == len(sum) && diff.Cmp(a) == 0
		},
		gen.IntRange(1, 64),
		gen.IntRange(1, 64),
		gen.UInt64(),
	))

	properties.Property("bitlen(a×b) <= bitlen(a)+bitlen(b)", prop.ForAll(
		func(wa, wb int, seed uint64) bool {
			a, b := operands(wa, wb, seed)
			c := make(Nat, wa+wb)
			res, err := Product(c, a, b)
			if err != nil {
				return false
			}
			if a.IsZero() || b.IsZero() {
				return res.Bits == 0
			}
			bits := a.BitLen() + b.BitLen()
			return res.Bits <= bits && res.Bits >= bits-1
		},
		gen.IntRange(1, 200),
		gen.IntRange(1, 200),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
