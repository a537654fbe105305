package scalar

import "errors"

// Decode and construction failures. The messages are deliberately opaque:
// they must not reveal which part of a possibly secret input was rejected.
var (
	// ErrRange indicates a supplied or decoded integer >= the curve order.
	ErrRange = errors.New("scalar: value out of range")

	// ErrLength indicates a byte or hex encoding of the wrong width.
	ErrLength = errors.New("scalar: invalid encoding length")

	// ErrFormat indicates malformed textual input.
	ErrFormat = errors.New("scalar: malformed encoding")
)
