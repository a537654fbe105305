// Package secp256k1 binds the generic [scalar.Scalar] type to the scalar
// field of the secp256k1 curve, the curve used by Bitcoin and Ethereum
// for ECDSA and Schnorr signatures.
//
// # Field Parameters
//
// The scalar field order is
//
//	0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141
//	115792089237316195423570985008687907852837564279074904382605163141518161494337
//
// and canonical encodings are 32 bytes wide.
//
// # Usage
//
//	k, err := secp256k1.Random(rand.Reader)
//	if err != nil {
//		// rand.Reader failed
//	}
//	if k.IsHigh() == 1 {
//		k.Neg(k) // canonicalize to the low half ("low-S")
//	}
//
// Field arithmetic is provided by gnark-crypto's secp256k1 implementation;
// this package only supplies the parameter set and convenience
// constructors.
package secp256k1
