package words

import "math/bits"

// Word is a single digit of a multi-precision unsigned integer.
type Word uint32

// DoubleWord holds the full result of a word-by-word product or a sum with
// carry. It must be exactly twice as wide as Word.
type DoubleWord uint64

const (
	// WordBits is the width of a Word in bits.
	WordBits = 32
	// Radix is the base of the positional representation, 2^WordBits.
	Radix DoubleWord = 1 << WordBits
	// WordMask selects the low word of a DoubleWord (value mod Radix).
	WordMask DoubleWord = Radix - 1
)

// Nat is a non-negative integer held as a little-endian word sequence:
// value = Σ n[i]·Radix^i. The slice length is the authoritative length and
// may include high zero words.
type Nat []Word

// Len returns the number of words, significant or not.
func (n Nat) Len() int { return len(n) }

// Trim returns the shortest prefix of n with the same value. The result
// shares n's backing array.
func (n Nat) Trim() Nat {
	i := len(n)
	for i > 0 && n[i-1] == 0 {
		i--
	}
	return n[:i]
}

// IsZero reports whether every word of n is zero.
func (n Nat) IsZero() bool {
	return len(n.Trim()) == 0
}

// BitLen returns the position of the most significant set bit plus one,
// or 0 when n is zero.
func (n Nat) BitLen() int {
	t := n.Trim()
	if len(t) == 0 {
		return 0
	}
	top := len(t) - 1
	return top*WordBits + bits.Len32(uint32(t[top]))
}

// Cmp compares the values of n and m, ignoring high zero words.
// It returns -1, 0 or +1.
func (n Nat) Cmp(m Nat) int {
	a, b := n.Trim(), m.Trim()
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// Clone returns a copy of n that does not share its backing array.
func (n Nat) Clone() Nat {
	if n == nil {
		return nil
	}
	c := make(Nat, len(n))
	copy(c, n)
	return c
}
