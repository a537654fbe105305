// Package scalar provides a generic, curve-agnostic scalar type for
// elliptic curve cryptography.
//
// A scalar is an element of a curve's scalar field: an integer modulo the
// curve order N. This package implements the baseline functionality every
// curve needs on top of that field, independent of any point or group
// arithmetic:
//
//   - validated construction (values >= N are rejected, never reduced)
//   - modular addition, subtraction, and negation
//   - constant-time comparison and predicates usable on secret values
//   - fixed-width big- and little-endian byte encoding
//   - hexadecimal and structured (text/binary) serialization
//   - uniform random sampling in [0, N)
//
// # Curve Genericity
//
// [Scalar] is parameterized by three types: a zero-sized [Curve] parameter
// set carrying the order and encoding width, the fixed-width element type of
// the underlying field implementation, and its pointer type bound by [Uint].
// The [Uint] constraint is the minimal fixed-width unsigned integer
// capability this package consumes; it is satisfied by the fr.Element type
// of every gnark-crypto scalar field package.
//
// Instantiation is a few lines per curve. The secp256k1, bn254, bls12381,
// and stark subpackages provide ready-made bindings:
//
//	s, err := secp256k1.Random(rand.Reader)
//	if err != nil {
//		// rand.Reader failed
//	}
//	t := secp256k1.New().Neg(s)
//	sum := secp256k1.New().Add(s, t) // zero
//
// Because each instantiation is a concrete fixed-size value type, there is
// no interface dispatch or heap allocation in the arithmetic path.
//
// # Arithmetic Style
//
// All arithmetic methods use a mutable receiver pattern: they overwrite the
// receiver with the result and return it, allowing method chaining while
// minimizing allocations. Every result is canonical, in [0, N).
//
// # Constant-Time Contract
//
// Scalars may hold secret key material. [Scalar.Equal], [Scalar.Lt],
// [Scalar.Gt], [Scalar.Select], and the predicate methods run in time
// independent of the operand values and follow the crypto/subtle convention
// of returning 0 or 1 as an int. [Scalar.Cmp] and [Scalar.BigInt] are
// variable-time conveniences: use them only on public values, such as when
// sorting or deduplicating commitments that have already been published.
//
// # Validation and Errors
//
// Validation happens exactly once, at construction or decode. Decoding
// either yields a fully valid scalar or fails atomically with [ErrRange],
// [ErrLength], or [ErrFormat]; partial success is never observable and
// out-of-range input is never silently reduced. Error messages are
// deliberately terse and carry no detail about the rejected input.
//
// # Secure Erasure
//
// Internal scratch buffers holding canonical encodings are zeroed before
// each method returns. Callers owning long-lived secret scalars should call
// [Scalar.Wipe] when done; Go's garbage collector does not clear memory.
package scalar
