package words

import (
	"errors"
	"math/big"
	"slices"
	"testing"

	apperrors "github.com/agbru/kmul/internal/errors"
)

func TestProduct(t *testing.T) {
	t.Parallel()
	rng := newTestRand(29)
	a, b := Random(rng, 120), Random(rng, 90)

	c := make(Nat, len(a)+len(b)+5)
	for i := range c {
		c[i] = 0xDEADBEEF
	}

	res, err := Product(c, a, b)
	if err != nil {
		t.Fatalf("Product() error = %v", err)
	}
	if res.Words != len(a)+len(b) {
		t.Errorf("Words = %d, want %d", res.Words, len(a)+len(b))
	}

	want := new(big.Int).Mul(a.Big(), b.Big())
	if c[:res.Words].Big().Cmp(want) != 0 {
		t.Error("Product result mismatch with math/big")
	}
	if res.Bits != want.BitLen() {
		t.Errorf("Bits = %d, want %d", res.Bits, want.BitLen())
	}
	for i := res.Words; i < len(c); i++ {
		if c[i] != 0xDEADBEEF {
			t.Fatalf("word %d beyond the product was modified", i)
		}
	}
}

func TestProduct_Scenarios(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		a, b     Nat
		want     Nat
		wantBits int
	}{
		{"carry into third word", Nat{0xFFFFFFFF, 0xFFFFFFFF}, Nat{2}, Nat{0xFFFFFFFE, 0xFFFFFFFF, 1}, 65},
		{"zero operand", Nat{0}, Nat{0xFFFFFFFF}, Nat{0, 0}, 0},
		{"max word squared", Nat{0xFFFFFFFF}, Nat{0xFFFFFFFF}, Nat{1, 0xFFFFFFFE}, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := make(Nat, len(tt.want))
			res, err := Product(c, tt.a, tt.b)
			if err != nil {
				t.Fatalf("Product() error = %v", err)
			}
			if !slices.Equal(c, tt.want) {
				t.Errorf("Product = %v, want %v", []Word(c), []Word(tt.want))
			}
			if res.Bits != tt.wantBits {
				t.Errorf("Bits = %d, want %d", res.Bits, tt.wantBits)
			}
		})
	}
}

func TestProduct_InsufficientCapacity(t *testing.T) {
	t.Parallel()
	c := Nat{7, 7}
	_, err := Product(c, Nat{1, 2}, Nat{3})
	if !errors.Is(err, apperrors.ErrInsufficientCapacity) {
		t.Fatalf("Product() error = %v, want ErrInsufficientCapacity", err)
	}
	var capErr apperrors.CapacityError
	if !errors.As(err, &capErr) || capErr.Required != 3 || capErr.Capacity != 2 {
		t.Errorf("CapacityError = %+v, want Required 3, Capacity 2", capErr)
	}
	if !slices.Equal(c, Nat{7, 7}) {
		t.Error("output buffer must be untouched on error")
	}
}

func TestProduct_CustomThreshold(t *testing.T) {
	t.Parallel()
	rng := newTestRand(31)
	a, b := Random(rng, 64), Random(rng, 64)
	want, _ := MulSchoolbook(a, b)

	c := make(Nat, 128)
	if _, err := NewMultiplier(4).Product(c, a, b); err != nil {
		t.Fatalf("Product() error = %v", err)
	}
	if !slices.Equal(c, want) {
		t.Error("threshold 4 product differs from schoolbook")
	}
}

func TestProductBytes(t *testing.T) {
	t.Parallel()
	// 0xFFFFFFFFFFFFFFFF × 2, little-endian.
	a := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	b := []byte{2}

	got, res, err := ProductBytes(a, b)
	if err != nil {
		t.Fatalf("ProductBytes() error = %v", err)
	}
	want := []byte{0xFE, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 1, 0, 0, 0}
	if !slices.Equal(got, want) {
		t.Errorf("ProductBytes = %x, want %x", got, want)
	}
	if res.Words != 3 || res.Bits != 65 {
		t.Errorf("result = %+v, want {Words:3 Bits:65}", res)
	}
}
