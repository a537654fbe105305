package secp256k1_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	btcec "github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"

	"github.com/primeorder/scalar/secp256k1"
)

func TestParams(t *testing.T) {
	require.Equal(t, 32, secp256k1.Size)
	require.Equal(t, 256, secp256k1.Order().BitLen())
	require.True(t, secp256k1.Order().ProbablyPrime(20))

	var c secp256k1.Curve
	require.Equal(t, "secp256k1", c.Name())
	require.Equal(t, secp256k1.Size, c.ByteLen())
}

// toModN converts a scalar to btcec's independent secp256k1 field
// implementation.
func toModN(t *testing.T, s *secp256k1.Scalar) *btcec.ModNScalar {
	t.Helper()
	var m btcec.ModNScalar
	overflow := m.SetByteSlice(s.Bytes())
	require.False(t, overflow, "canonical scalar must not overflow")
	return &m
}

// TestCrossCheckBtcec validates arithmetic and the high-half predicate
// against btcec's ModNScalar, a completely separate implementation of the
// same field.
func TestCrossCheckBtcec(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			a, err := secp256k1.Random(rand.Reader)
			require.NoError(t, err)
			b, err := secp256k1.Random(rand.Reader)
			require.NoError(t, err)

			sum := secp256k1.New().Add(a, b)

			ref := toModN(t, a)
			ref.Add(toModN(t, b))
			refBytes := ref.Bytes()
			require.Equal(t, refBytes[:], sum.Bytes())
		}
	})

	t.Run("Neg", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			a, err := secp256k1.Random(rand.Reader)
			require.NoError(t, err)

			neg := secp256k1.New().Neg(a)

			ref := toModN(t, a)
			ref.Negate()
			refBytes := ref.Bytes()
			require.Equal(t, refBytes[:], neg.Bytes())
		}
	})

	t.Run("IsHigh", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			a, err := secp256k1.Random(rand.Reader)
			require.NoError(t, err)
			require.Equal(t, toModN(t, a).IsOverHalfOrder(), a.IsHigh() == 1)
		}

		// Boundary values.
		half := new(big.Int).Rsh(secp256k1.Order(), 1)
		for _, v := range []*big.Int{
			big.NewInt(0),
			half,
			new(big.Int).Add(half, big.NewInt(1)),
			new(big.Int).Sub(secp256k1.Order(), big.NewInt(1)),
		} {
			s, err := secp256k1.FromBigInt(v)
			require.NoError(t, err)
			require.Equal(t, toModN(t, s).IsOverHalfOrder(), s.IsHigh() == 1, "value %v", v)
		}
	})
}

// TestLowSCanonicalization exercises the signature-normalization pattern
// IsHigh feeds: exactly one of {s, -s} is high for every nonzero s.
func TestLowSCanonicalization(t *testing.T) {
	for i := 0; i < 100; i++ {
		s, err := secp256k1.Random(rand.Reader)
		require.NoError(t, err)
		if s.IsZero() == 1 {
			continue
		}
		neg := secp256k1.New().Neg(s)
		require.Equal(t, 1, s.IsHigh()+neg.IsHigh(), "exactly one of s, -s is high")

		low := secp256k1.New().Select(neg.IsHigh(), s, neg)
		require.Equal(t, 0, low.IsHigh())
	}
}
