package words

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"math/rand/v2"
	"strconv"
	"strings"
)

const (
	hexDigitsPerWord = WordBits / 4
	bytesPerWord     = WordBits / 8
)

// FromUint64 returns the two-word sequence holding v.
func FromUint64(v uint64) Nat {
	return Nat{Word(v & uint64(WordMask)), Word(v >> WordBits)}
}

// FromBig converts a non-negative big.Int to its canonical word sequence
// (no high zero words; zero has length 0). The sign of x is ignored.
func FromBig(x *big.Int) Nat {
	return FromBytes(reverse(x.Bytes()))
}

// Big returns the value of n as a new big.Int.
func (n Nat) Big() *big.Int {
	return new(big.Int).SetBytes(reverse(n.Bytes()))
}

// FromBytes interprets b as a little-endian integer and returns its word
// sequence. A trailing partial word is zero-extended; the result keeps
// one word per started group of four bytes.
func FromBytes(b []byte) Nat {
	n := make(Nat, (len(b)+bytesPerWord-1)/bytesPerWord)
	var buf [bytesPerWord]byte
	for i := range n {
		clear(buf[:])
		copy(buf[:], b[i*bytesPerWord:])
		n[i] = Word(binary.LittleEndian.Uint32(buf[:]))
	}
	return n
}

// Bytes returns the little-endian byte encoding of n, four bytes per word.
func (n Nat) Bytes() []byte {
	b := make([]byte, len(n)*bytesPerWord)
	for i, w := range n {
		binary.LittleEndian.PutUint32(b[i*bytesPerWord:], uint32(w))
	}
	return b
}

// ParseHex parses a big-endian hexadecimal string, with optional "0x"
// prefix and "_" separators. Every started group of eight digits yields
// one word, so leading zero digits are kept as high zero words.
func ParseHex(s string) (Nat, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	s = strings.ReplaceAll(s, "_", "")
	if s == "" {
		return nil, fmt.Errorf("parse hex: empty operand")
	}
	n := make(Nat, (len(s)+hexDigitsPerWord-1)/hexDigitsPerWord)
	for i := range n {
		end := len(s) - i*hexDigitsPerWord
		start := max(end-hexDigitsPerWord, 0)
		v, err := strconv.ParseUint(s[start:end], 16, WordBits)
		if err != nil {
			return nil, fmt.Errorf("parse hex: %w", err)
		}
		n[i] = Word(v)
	}
	return n, nil
}

// Hex returns the canonical lowercase hexadecimal form of n without
// prefix or leading zeros; zero is "0".
func (n Nat) Hex() string {
	t := n.Trim()
	if len(t) == 0 {
		return "0"
	}
	var sb strings.Builder
	sb.Grow(len(t) * hexDigitsPerWord)
	sb.WriteString(strconv.FormatUint(uint64(t[len(t)-1]), 16))
	for i := len(t) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%0*x", hexDigitsPerWord, uint32(t[i]))
	}
	return sb.String()
}

// String implements fmt.Stringer with a "0x" prefixed Hex form.
func (n Nat) String() string {
	return "0x" + n.Hex()
}

// Random returns a sequence of exactly size uniformly random words.
func Random(rng *rand.Rand, size int) Nat {
	n := make(Nat, size)
	for i := range n {
		n[i] = Word(rng.Uint32())
	}
	return n
}

func reverse(b []byte) []byte {
	r := make([]byte, len(b))
	for i, v := range b {
		r[len(b)-1-i] = v
	}
	return r
}
