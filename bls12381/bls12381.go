// Package bls12381 binds the generic [scalar.Scalar] type to the scalar
// field of the BLS12-381 curve, used by BLS signatures in Ethereum
// consensus and by many proof systems. The field order is
//
//	0x73EDA753299D7D483339D80809A1D80553BDA402FFFE5BFEFFFFFFFF00000001
//	52435875175126190479447740508185965837690552500527637822603658699938581184513
//
// and canonical encodings are 32 bytes wide.
package bls12381

import (
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/primeorder/scalar"
)

// Size is the width of a canonical scalar encoding in bytes.
const Size = fr.Bytes

// Curve is the BLS12-381 scalar field parameter set.
type Curve struct{}

// Name returns "bls12-381".
func (Curve) Name() string { return "bls12-381" }

// Order returns a fresh copy of the curve order N.
func (Curve) Order() *big.Int { return fr.Modulus() }

// ByteLen returns the canonical encoding width, [Size].
func (Curve) ByteLen() int { return Size }

// Scalar is an element of the BLS12-381 scalar field. The zero value is
// the zero scalar, ready to use.
type Scalar = scalar.Scalar[Curve, fr.Element, *fr.Element]

// New returns a new zero scalar.
func New() *Scalar { return scalar.New[Curve, fr.Element]() }

// Zero returns a new zero scalar.
func Zero() *Scalar { return New() }

// One returns a new scalar set to one.
func One() *Scalar { return New().SetOne() }

// Random returns a scalar drawn uniformly from [0, N) using r.
func Random(r io.Reader) (*Scalar, error) { return New().SetRandom(r) }

// FromBytes decodes a canonical [Size]-byte big-endian encoding.
func FromBytes(b []byte) (*Scalar, error) { return New().SetBytes(b) }

// FromBytesLE decodes a [Size]-byte little-endian encoding.
func FromBytesLE(b []byte) (*Scalar, error) { return New().SetBytesLE(b) }

// FromHex decodes a fixed-width hexadecimal string, upper or lower case.
func FromHex(h string) (*Scalar, error) { return New().SetHex(h) }

// FromUint64 returns a scalar holding v mod N.
func FromUint64(v uint64) *Scalar { return New().SetUint64(v) }

// FromBigInt returns a scalar holding v, which must lie in [0, N).
func FromBigInt(v *big.Int) (*Scalar, error) { return New().SetBigInt(v) }

// Order returns a fresh copy of the curve order N.
func Order() *big.Int { return fr.Modulus() }
