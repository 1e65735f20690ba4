// Package words implements unsigned arbitrary-precision arithmetic on
// sequences of fixed-width words stored least-significant word first.
//
// It provides addition, subtraction, schoolbook multiplication and a
// recursive Karatsuba multiplier built on top of them, plus the Product
// entry point that multiplies into a caller-supplied buffer.
//
// All routines are synchronous and keep no state between calls. Inputs are
// never modified; outputs are written only into the buffer a routine owns.
package words
