package sampling

import (
	"errors"
	"fmt"
)

var (
	// ErrNilFunc is returned when the function to sample is nil.
	ErrNilFunc = errors.New("sampling: nil function")

	// ErrBadResolution is returned for grid sizes below 2 along any axis.
	ErrBadResolution = errors.New("sampling: resolution must be >= 2")
)

func samplingErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
