//go:build gmp

package reference

import (
	"context"
	"slices"
	"testing"

	"github.com/agbru/kmul/internal/words"
)

func TestGMP_MatchesKaratsuba(t *testing.T) {
	t.Parallel()
	m, err := GlobalFactory().Get("gmp")
	if err != nil {
		t.Fatalf("Get(gmp) error = %v", err)
	}
	for _, n := range []int{1, 36, 200} {
		a, b := testOperands(uint64(n), n, n+3)
		got, err := m.Multiply(context.Background(), a, b, Options{})
		if err != nil {
			t.Fatalf("Multiply error = %v", err)
		}
		want, _ := words.MulKaratsuba(a, b)
		if !slices.Equal(got, want) {
			t.Errorf("GMP and Karatsuba disagree for %d words", n)
		}
	}
}
