package secp256k1

import (
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/secp256k1/fr"

	"github.com/primeorder/scalar"
)

// Size is the width of a canonical scalar encoding in bytes.
const Size = fr.Bytes

// Curve is the secp256k1 scalar field parameter set. It is zero-sized and
// carries no run-time data.
type Curve struct{}

// Name returns "secp256k1".
func (Curve) Name() string { return "secp256k1" }

// Order returns a fresh copy of the curve order N.
func (Curve) Order() *big.Int { return fr.Modulus() }

// ByteLen returns the canonical encoding width, [Size].
func (Curve) ByteLen() int { return Size }

// Scalar is an element of the secp256k1 scalar field. The zero value is
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
