package scalar

import "io"

// SetRandom sets s to a scalar drawn uniformly from [0, N) using r as the
// source of randomness, and returns s.
//
// Sampling is by masked rejection: each round reads [Curve.ByteLen] bytes,
// clears the excess high bits so candidates span exactly bits(N) bits, and
// accepts the candidate iff it is below N. Accepted values are exactly
// uniform — there is no modulo bias — and each round accepts with
// probability at least 1/2, so the expected number of reads is below two.
// The number of rounds depends only on rejected candidates, which are
// discarded, never on the returned value.
//
// SetRandom blocks only as long as r does, and fails only if r fails. Pass
// crypto/rand.Reader unless a deterministic source is explicitly required
// (e.g. in tests).
func (s *Scalar[C, E, PE]) SetRandom(r io.Reader) (*Scalar[C, E, PE], error) {
	var c C
	w := c.ByteLen()
	excess := uint(8*w - c.Order().BitLen())
	mask := byte(0xff >> excess)

	buf := make([]byte, w)
	defer wipe(buf)
	order := orderBytes[C]()
	var t E
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		buf[0] &= mask
		if ctLess(buf, order) == 1 {
			// Canonical by construction.
			if err := PE(&t).SetBytesCanonical(buf); err != nil {
				panic("scalar: sampling produced non-canonical value")
			}
			PE(&s.inner).Set(&t)
			PE(&t).SetZero()
			return s, nil
		}
	}
}
