package scalar

import "crypto/subtle"

// Constant-time comparisons and predicates. These run in time independent
// of the operand values and return 0 or 1 as an int, following the
// crypto/subtle convention, so callers can feed the result into
// [Scalar.Select] or subtle.ConstantTimeSelect without branching.

// Equal returns 1 if s == x and 0 otherwise, in constant time.
func (s *Scalar[C, E, PE]) Equal(x *Scalar[C, E, PE]) int {
	a := PE(&s.inner).Marshal()
	b := PE(&x.inner).Marshal()
	defer wipe(a)
	defer wipe(b)
	return subtle.ConstantTimeCompare(a, b)
}

// Lt returns 1 if s < x and 0 otherwise, in constant time.
func (s *Scalar[C, E, PE]) Lt(x *Scalar[C, E, PE]) int {
	a := PE(&s.inner).Marshal()
	b := PE(&x.inner).Marshal()
	defer wipe(a)
	defer wipe(b)
	return ctLess(a, b)
}

// Gt returns 1 if s > x and 0 otherwise, in constant time.
func (s *Scalar[C, E, PE]) Gt(x *Scalar[C, E, PE]) int {
	a := PE(&s.inner).Marshal()
	b := PE(&x.inner).Marshal()
	defer wipe(a)
	defer wipe(b)
	return ctLess(b, a)
}

// Cmp compares s and x as integers, returning -1, 0, or 1.
//
// Cmp is variable-time and leaks the relative order of its operands through
// timing. It exists for call sites working on public values, such as
// sorting or deduplicating already-published commitments; anything touching
// secret material must use [Scalar.Equal], [Scalar.Lt], or [Scalar.Gt].
func (s *Scalar[C, E, PE]) Cmp(x *Scalar[C, E, PE]) int {
	return PE(&s.inner).Cmp(&x.inner)
}

// IsZero returns 1 if s is zero and 0 otherwise, in constant time.
func (s *Scalar[C, E, PE]) IsZero() int {
	b := PE(&s.inner).Marshal()
	defer wipe(b)
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return subtle.ConstantTimeByteEq(acc, 0)
}

// IsOdd returns 1 if s is odd and 0 otherwise, in constant time.
func (s *Scalar[C, E, PE]) IsOdd() int {
	b := PE(&s.inner).Marshal()
	defer wipe(b)
	return int(b[len(b)-1] & 1)
}

// IsEven returns 1 if s is even and 0 otherwise, in constant time.
func (s *Scalar[C, E, PE]) IsEven() int {
	return 1 - s.IsOdd()
}

// IsHigh returns 1 if s > N>>1 and 0 otherwise, in constant time. A scalar
// equal to N>>1 is not high.
//
// Signature schemes use this to canonicalize one of the two equivalent
// values {s, N-s} to the lower half of the field ("low-S" form).
func (s *Scalar[C, E, PE]) IsHigh() int {
	b := PE(&s.inner).Marshal()
	defer wipe(b)
	return ctLess(halfOrderBytes[C](), b)
}

// Select sets s to a if c == 1 and to b if c == 0, in constant time, and
// returns s. Any other value of c is undefined.
func (s *Scalar[C, E, PE]) Select(c int, a, b *Scalar[C, E, PE]) *Scalar[C, E, PE] {
	av := PE(&a.inner).Marshal()
	bv := PE(&b.inner).Marshal()
	defer wipe(av)
	defer wipe(bv)
	for i := range av {
		av[i] = byte(subtle.ConstantTimeSelect(c, int(av[i]), int(bv[i])))
	}
	// Both operands are canonical, so their byte-wise selection is too.
	if err := PE(&s.inner).SetBytesCanonical(av); err != nil {
		panic("scalar: select produced non-canonical value")
	}
	return s
}

// ctLess returns 1 if a < b and 0 otherwise, comparing equal-length
// big-endian encodings without branching on the data. It walks the full
// width maintaining a borrow chain, the same technique the hand-written
// fixed-width scalar implementations use limb by limb.
func ctLess(a, b []byte) int {
	borrow := 0
	for i := len(a) - 1; i >= 0; i-- {
		d := int(a[i]) - int(b[i]) - borrow
		// d is in [-256, 255]; its sign bit is the next borrow.
		borrow = (d >> 8) & 1
	}
	return borrow
}
