package words

import apperrors "github.com/agbru/kmul/internal/errors"

// ProductResult reports the size of a product written by Product.
type ProductResult struct {
	// Words is the number of words written, always len(a)+len(b).
	Words int
	// Bits is the bit length of the product value (0 for zero).
	Bits int
}

// Product multiplies a by b into the caller-owned buffer c using the
// Karatsuba multiplier. It clears c[:len(a)+len(b)] before multiplying and
// leaves any words beyond that untouched. c must not overlap a or b.
//
// It returns a CapacityError, matching apperrors.ErrInsufficientCapacity,
// when c is shorter than len(a)+len(b).
func Product(c, a, b Nat) (ProductResult, error) {
	return Multiplier{}.Product(c, a, b)
}

// Product is the package-level Product using m's threshold.
func (m Multiplier) Product(c, a, b Nat) (ProductResult, error) {
	need := len(a) + len(b)
	if len(c) < need {
		return ProductResult{}, apperrors.CapacityError{Required: need, Capacity: len(c)}
	}
	out := c[:need]
	clear(out)
	var st Stats
	m.mul(out, a, b, 0, &st)
	return ProductResult{Words: need, Bits: out.BitLen()}, nil
}

// ProductBytes multiplies two raw little-endian operand buffers and returns
// the little-endian product, four bytes per word. Operand lengths that are
// not a multiple of four are zero-extended to whole words.
func ProductBytes(a, b []byte) ([]byte, ProductResult, error) {
	x, y := FromBytes(a), FromBytes(b)
	c := make(Nat, len(x)+len(y))
	res, err := Product(c, x, y)
	if err != nil {
		return nil, ProductResult{}, err
	}
	return c[:res.Words].Bytes(), res, nil
}
