package words

import apperrors "github.com/agbru/kmul/internal/errors"

// subWords sets z = x - y over len(x) words and returns the final borrow
// (0 or 1). It requires len(z) == len(x) >= len(y); z may alias x.
func subWords(z, x, y Nat) Word {
	var borrow DoubleWord
	for i := range x {
		d := DoubleWord(x[i])
		s := borrow
		if i < len(y) {
			s += DoubleWord(y[i])
		}
		if d < s {
			z[i] = Word(d + Radix - s)
			borrow = 1
		} else {
			z[i] = Word(d - s)
			borrow = 0
		}
	}
	return Word(borrow)
}

// subTo writes x - y into z[:len(x)]. It fails with a PreconditionError
// when the value of y exceeds the value of x.
func subTo(z, x, y Nat) error {
	ys := y.Trim()
	if len(ys) > len(x) || subWords(z[:len(x)], x, ys) != 0 {
		return apperrors.PreconditionError{
			Operation:       "sub",
			Cause:           apperrors.ErrNegativeDifference,
			MinuendWords:    len(x),
			SubtrahendWords: len(y),
		}
	}
	return nil
}

// Sub returns a - b and its length, which is always len(a). The caller
// must ensure value(a) >= value(b); otherwise Sub returns a
// PreconditionError matching apperrors.ErrNegativeDifference and no
// result.
func Sub(a, b Nat) (Nat, int, error) {
	c := make(Nat, len(a))
	if err := subTo(c, a, b); err != nil {
		return nil, 0, err
	}
	return c, len(a), nil
}
