package words

// mulSchoolbook writes a × b into c[:len(a)+len(b)]. The window is cleared
// first because every row accumulates into words earlier rows wrote.
func mulSchoolbook(c, a, b Nat) {
	wa, wb := len(a), len(b)
	clear(c[:wa+wb])
	for i := 0; i < wa; i++ {
		ai := DoubleWord(a[i])
		var carry DoubleWord
		for j := 0; j < wb; j++ {
			// (R-1)² + 2(R-1) = R²-1, so p never overflows.
			p := ai*DoubleWord(b[j]) + DoubleWord(c[i+j]) + carry
			c[i+j] = Word(p & WordMask)
			carry = p >> WordBits
		}
		c[i+wb] = Word(carry)
	}
}

// MulSchoolbook returns a × b by the quadratic pairwise method. The result
// always has len(a)+len(b) words.
func MulSchoolbook(a, b Nat) (Nat, int) {
	wc := len(a) + len(b)
	c := make(Nat, wc)
	mulSchoolbook(c, a, b)
	return c, wc
}
