package words

// addWords sets z = x + y over len(x) words and returns the outgoing carry.
// It requires len(z) == len(x) >= len(y); z may alias x.
func addWords(z, x, y Nat) Word {
	var carry DoubleWord
	for i := range x {
		v := DoubleWord(x[i]) + carry
		if i < len(y) {
			v += DoubleWord(y[i])
		}
		z[i] = Word(v & WordMask)
		carry = v >> WordBits
	}
	return Word(carry)
}

// addTo writes long + short into z and returns the number of words written:
// len(long), plus one for each word the final carry needs. It requires
// len(long) >= len(short) and room in z for the carry word.
func addTo(z, long, short Nat) int {
	carry := DoubleWord(addWords(z[:len(long)], long, short))
	wc := len(long)
	for carry > 0 {
		z[wc] = Word(carry & WordMask)
		carry >>= WordBits
		wc++
	}
	return wc
}

// Add returns a + b and its length in words. The length is max(len(a),
// len(b)), plus one when the sum carries out of the longer operand.
func Add(a, b Nat) (Nat, int) {
	long, short := a, b
	if len(b) > len(a) {
		long, short = b, a
	}
	c := make(Nat, len(long)+1)
	wc := addTo(c, long, short)
	return c[:wc], wc
}
