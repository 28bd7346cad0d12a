package spherical

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedLevel is returned for levels outside [0, MaxLevel].
	ErrUnsupportedLevel = errors.New("spherical: harmonics above L4 are not supported")

	// ErrTermCount is returned when fewer terms are supplied than the
	// declared levels require.
	ErrTermCount = errors.New("spherical: not enough terms for levels")

	// ErrTermIndex is returned by Term/SetTerm for an index outside the terms.
	ErrTermIndex = errors.New("spherical: term index out of range")

	// ErrNilFunc is returned by Project when f is nil.
	ErrNilFunc = errors.New("spherical: nil function")
)

func sphericalErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
