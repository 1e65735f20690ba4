package reference

import (
	"context"
	"math/big"

	"github.com/agbru/kmul/internal/words"
)

// Karatsuba multiplies with words.Multiplier.
type Karatsuba struct{}

// Name returns the name of the algorithm.
func (Karatsuba) Name() string { return "Karatsuba" }

// MultiplyCore multiplies a by b with the configured threshold.
func (Karatsuba) MultiplyCore(_ context.Context, a, b words.Nat, opts Options) (words.Nat, *words.Stats, error) {
	m := words.Multiplier{}
	if opts.Threshold > 0 {
		m = words.NewMultiplier(opts.Threshold)
	}
	c, _, st := m.MulWithStats(a, b)
	return c, &st, nil
}

// Schoolbook multiplies with the quadratic base-case algorithm.
type Schoolbook struct{}

// Name returns the name of the algorithm.
func (Schoolbook) Name() string { return "Schoolbook" }

// MultiplyCore multiplies a by b.
func (Schoolbook) MultiplyCore(_ context.Context, a, b words.Nat, _ Options) (words.Nat, *words.Stats, error) {
	c, _ := words.MulSchoolbook(a, b)
	return c, nil, nil
}

// MathBig multiplies with math/big, the trusted pure-Go reference.
type MathBig struct{}

// Name returns the name of the algorithm.
func (MathBig) Name() string { return "math/big" }

// MultiplyCore multiplies a by b and widens the product to len(a)+len(b)
// words.
func (MathBig) MultiplyCore(_ context.Context, a, b words.Nat, _ Options) (words.Nat, *words.Stats, error) {
	z := new(big.Int).Mul(a.Big(), b.Big())
	return widen(words.FromBig(z), len(a)+len(b)), nil, nil
}

// widen copies n into a new sequence of exactly size words. n's
// significant words must fit.
func widen(n words.Nat, size int) words.Nat {
	c := make(words.Nat, size)
	copy(c, n.Trim())
	return c
}
