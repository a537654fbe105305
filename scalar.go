package scalar

import (
	"math/big"
)

// Uint is the fixed-width unsigned integer capability [Scalar] is built on.
// It is the pointer type of an element of a prime field of order N: all
// arithmetic is modulo N and every representable value lies in [0, N).
//
// The constraint matches the fr.Element API of the gnark-crypto ecc
// packages, which provide constant-time implementations of every listed
// operation.
type Uint[E any] interface {
	*E

	Set(x *E) *E
	SetZero() *E
	SetOne() *E
	SetUint64(v uint64) *E
	SetBigInt(v *big.Int) *E
	BigInt(res *big.Int) *big.Int

	Add(x, y *E) *E
	Sub(x, y *E) *E
	Neg(x *E) *E

	// SetBytesCanonical decodes a big-endian encoding of exactly the
	// field's byte width, failing on out-of-range values.
	SetBytesCanonical(b []byte) error
	// Marshal returns the canonical fixed-width big-endian encoding.
	Marshal() []byte

	IsZero() bool
	Equal(x *E) bool
	Cmp(x *E) int
}

// Curve is a scalar field parameter set. Implementations are zero-sized
// types whose methods return compile-time constants, so a Curve type
// argument carries no data at run time.
type Curve interface {
	// Name identifies the curve, e.g. "secp256k1".
	Name() string
	// Order returns a fresh copy of the curve order N.
	Order() *big.Int
	// ByteLen returns the canonical encoding width W = ceil(bits(N)/8).
	ByteLen() int
}

// Scalar is an element of the scalar field of curve C, represented by the
// engine element type E. The zero value is the zero scalar, ready to use.
//
// Scalars are plain values: assignment copies, and distinct values may be
// used concurrently without synchronization.
type Scalar[C Curve, E any, PE Uint[E]] struct {
	inner E
}

// New returns a new zero scalar for curve C. The third type argument is
// inferred from the constraint.
func New[C Curve, E any, PE Uint[E]]() *Scalar[C, E, PE] {
	return new(Scalar[C, E, PE])
}

// Modulus returns the order N of curve C's scalar field.
func Modulus[C Curve]() *big.Int {
	var c C
	return c.Order()
}

// Set copies a into s and returns s.
func (s *Scalar[C, E, PE]) Set(a *Scalar[C, E, PE]) *Scalar[C, E, PE] {
	PE(&s.inner).Set(&a.inner)
	return s
}

// SetZero sets s to zero and returns s.
func (s *Scalar[C, E, PE]) SetZero() *Scalar[C, E, PE] {
	PE(&s.inner).SetZero()
	return s
}

// SetOne sets s to the multiplicative identity and returns s.
func (s *Scalar[C, E, PE]) SetOne() *Scalar[C, E, PE] {
	PE(&s.inner).SetOne()
	return s
}

// SetUint64 sets s to v mod N and returns s. Intended for small public
// constants such as participant indices.
func (s *Scalar[C, E, PE]) SetUint64(v uint64) *Scalar[C, E, PE] {
	PE(&s.inner).SetUint64(v)
	return s
}

// SetBigInt sets s to v, which must lie in [0, N). Out-of-range values are
// rejected with [ErrRange], never reduced; s is left unchanged on error.
//
// This is a variable-time operation over a variable-length integer: use it
// only with public values.
func (s *Scalar[C, E, PE]) SetBigInt(v *big.Int) (*Scalar[C, E, PE], error) {
	var c C
	if v.Sign() < 0 || v.Cmp(c.Order()) >= 0 {
		return nil, ErrRange
	}
	PE(&s.inner).SetBigInt(v)
	return s, nil
}

// BigInt writes the value of s into res and returns res. Variable-time:
// use only with public values.
func (s *Scalar[C, E, PE]) BigInt(res *big.Int) *big.Int {
	return PE(&s.inner).BigInt(res)
}

// SetElementUnchecked sets s directly from an engine element, bypassing
// validation.
//
// The caller must guarantee that v holds a modulus-reduced value in [0, N).
// Every element produced by the engine's own arithmetic satisfies this;
// the precondition can only be violated by corrupting an element through
// unsafe means. A violation yields silently wrong results, never memory
// unsafety. Untrusted input must go through [Scalar.SetBytes] instead.
func (s *Scalar[C, E, PE]) SetElementUnchecked(v *E) *Scalar[C, E, PE] {
	PE(&s.inner).Set(v)
	return s
}

// Element returns a pointer to the underlying engine element.
func (s *Scalar[C, E, PE]) Element() *E {
	return &s.inner
}

// Add sets s to a + b mod N and returns s.
func (s *Scalar[C, E, PE]) Add(a, b *Scalar[C, E, PE]) *Scalar[C, E, PE] {
	PE(&s.inner).Add(&a.inner, &b.inner)
	return s
}

// Sub sets s to a - b mod N and returns s.
func (s *Scalar[C, E, PE]) Sub(a, b *Scalar[C, E, PE]) *Scalar[C, E, PE] {
	PE(&s.inner).Sub(&a.inner, &b.inner)
	return s
}

// Neg sets s to -a mod N and returns s. The negation of zero is zero.
func (s *Scalar[C, E, PE]) Neg(a *Scalar[C, E, PE]) *Scalar[C, E, PE] {
	PE(&s.inner).Neg(&a.inner)
	return s
}

// Shr1 sets s to the value of a shifted right by one bit and returns s.
//
// This is a raw shift of the canonical integer, not division by two mod N:
// for odd a the low bit is discarded. Protocols that need exact halving of
// odd values (e.g. binary inversion ladders) handle the odd case themselves
// before shifting.
func (s *Scalar[C, E, PE]) Shr1(a *Scalar[C, E, PE]) *Scalar[C, E, PE] {
	b := PE(&a.inner).Marshal()
	defer wipe(b)
	shr1(b)
	// a < N implies a>>1 < N, so the canonical decode cannot fail.
	if err := PE(&s.inner).SetBytesCanonical(b); err != nil {
		panic("scalar: shift produced non-canonical value")
	}
	return s
}

// Wipe overwrites the scalar's backing storage with zero. Call it when
// discarding a scalar that held secret key material.
func (s *Scalar[C, E, PE]) Wipe() {
	PE(&s.inner).SetZero()
}

// shr1 shifts a big-endian integer right by one bit in place, without
// branching on the data.
func shr1(b []byte) {
	var carry byte
	for i := range b {
		next := b[i] & 1
		b[i] = b[i]>>1 | carry<<7
		carry = next
	}
}

// wipe zeroes a scratch buffer that held a canonical encoding.
func wipe(b []byte) {
	clear(b)
}

// orderBytes returns N as a canonical W-byte big-endian encoding.
func orderBytes[C Curve]() []byte {
	var c C
	return c.Order().FillBytes(make([]byte, c.ByteLen()))
}

// halfOrderBytes returns N >> 1 as a canonical W-byte big-endian encoding.
func halfOrderBytes[C Curve]() []byte {
	var c C
	n := c.Order()
	n.Rsh(n, 1)
	return n.FillBytes(make([]byte, c.ByteLen()))
}
