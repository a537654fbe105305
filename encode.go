package scalar

import (
	"encoding/hex"
	"strings"
)

// The canonical wire form of a scalar is its fixed-width big-endian byte
// string; hexadecimal is the same bytes in text. Decoding validates
// atomically: wrong width, malformed text, and out-of-range values leave
// the receiver untouched, and out-of-range input is rejected rather than
// reduced.

// Bytes returns the canonical big-endian encoding of s, exactly
// [Curve.ByteLen] bytes.
func (s *Scalar[C, E, PE]) Bytes() []byte {
	return PE(&s.inner).Marshal()
}

// BytesLE returns the little-endian encoding of s, exactly
// [Curve.ByteLen] bytes.
func (s *Scalar[C, E, PE]) BytesLE() []byte {
	b := PE(&s.inner).Marshal()
	reverse(b)
	return b
}

// SetBytes sets s from a big-endian encoding of exactly [Curve.ByteLen]
// bytes and returns s. It fails with [ErrLength] on any other width and
// with [ErrRange] if the encoded value is >= N. The range check does not
// branch on the decoded value.
func (s *Scalar[C, E, PE]) SetBytes(b []byte) (*Scalar[C, E, PE], error) {
	var c C
	if len(b) != c.ByteLen() {
		return nil, ErrLength
	}
	if ctLess(b, orderBytes[C]()) == 0 {
		return nil, ErrRange
	}
	// b < N, so the canonical decode cannot fail.
	if err := PE(&s.inner).SetBytesCanonical(b); err != nil {
		return nil, ErrRange
	}
	return s, nil
}

// SetBytesLE sets s from a little-endian encoding of exactly
// [Curve.ByteLen] bytes and returns s. Failure modes match
// [Scalar.SetBytes].
func (s *Scalar[C, E, PE]) SetBytesLE(b []byte) (*Scalar[C, E, PE], error) {
	var c C
	if len(b) != c.ByteLen() {
		return nil, ErrLength
	}
	buf := make([]byte, len(b))
	for i, v := range b {
		buf[len(b)-1-i] = v
	}
	defer wipe(buf)
	return s.SetBytes(buf)
}

// SetHex sets s from a fixed-width hexadecimal string, upper or lower
// case, and returns s. The string must encode exactly [Curve.ByteLen]
// bytes. Failure is atomic: [ErrLength] for the wrong width, [ErrFormat]
// for non-hexadecimal characters, [ErrRange] for a value >= N.
func (s *Scalar[C, E, PE]) SetHex(h string) (*Scalar[C, E, PE], error) {
	if err := s.UnmarshalText([]byte(h)); err != nil {
		return nil, err
	}
	return s, nil
}

// String returns s as fixed-width uppercase hexadecimal of the big-endian
// encoding.
func (s *Scalar[C, E, PE]) String() string {
	b := PE(&s.inner).Marshal()
	defer wipe(b)
	return strings.ToUpper(hex.EncodeToString(b))
}

// MarshalText implements encoding.TextMarshaler. The text form is
// fixed-width uppercase hexadecimal.
func (s *Scalar[C, E, PE]) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting upper or
// lower case hexadecimal. Failure modes match [Scalar.SetHex].
func (s *Scalar[C, E, PE]) UnmarshalText(text []byte) error {
	var c C
	if len(text) != 2*c.ByteLen() {
		return ErrLength
	}
	buf := make([]byte, c.ByteLen())
	defer wipe(buf)
	if _, err := hex.Decode(buf, text); err != nil {
		return ErrFormat
	}
	_, err := s.SetBytes(buf)
	return err
}

// MarshalBinary implements encoding.BinaryMarshaler. The binary form is
// the canonical big-endian byte string.
func (s *Scalar[C, E, PE]) MarshalBinary() ([]byte, error) {
	return s.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Failure modes
// match [Scalar.SetBytes].
func (s *Scalar[C, E, PE]) UnmarshalBinary(b []byte) error {
	_, err := s.SetBytes(b)
	return err
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
