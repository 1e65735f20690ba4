//go:build gmp

// This file registers a GMP-backed reference multiplier. Build with
// -tags=gmp; libgmp must be installed.

package reference

import (
	"context"

	"github.com/ncw/gmp"

	"github.com/agbru/kmul/internal/words"
)

func init() {
	_ = registerMultiplier("gmp", func() coreMultiplier { return GMP{} })
}

// GMP multiplies with the GMP mpz routines.
type GMP struct{}

// Name returns the name of the algorithm.
func (GMP) Name() string { return "GMP" }

// MultiplyCore multiplies a by b through GMP integers.
func (GMP) MultiplyCore(_ context.Context, a, b words.Nat, _ Options) (words.Nat, *words.Stats, error) {
	x := gmp.NewInt(0).SetBytes(bigEndian(a))
	y := gmp.NewInt(0).SetBytes(bigEndian(b))
	z := gmp.NewInt(0).Mul(x, y)
	return widen(words.FromBytes(reversed(z.Bytes())), len(a)+len(b)), nil, nil
}

func bigEndian(n words.Nat) []byte {
	return reversed(n.Bytes())
}

func reversed(b []byte) []byte {
	r := make([]byte, len(b))
	for i, v := range b {
		r[len(b)-1-i] = v
	}
	return r
}
