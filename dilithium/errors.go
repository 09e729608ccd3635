package dilithium

import (
	"errors"
)

var (
	// ErrEntropy is returned when the random source fails to provide
	// the requested bytes. Key generation (and randomized signing)
	// cannot proceed in that case.
	ErrEntropy = errors.New("dilithium: entropy source failure")

	// ErrDecode is returned when an encoded key or signature does not
	// have the exact expected length, or is structurally invalid.
	ErrDecode = errors.New("dilithium: malformed encoding")

	// ErrInternalBound is returned when the signing loop exhausts its
	// attempt limit. With correct parameters this does not happen
	// except with negligible probability.
	ErrInternalBound = errors.New("dilithium: signing attempt limit exceeded")
)
