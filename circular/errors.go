package circular

import (
	"errors"
	"fmt"
)

var (
	// ErrBandCount is returned when a band count below 1 is requested.
	ErrBandCount = errors.New("circular: band count must be >= 1")

	// ErrCoefficientCount is returned when a coefficient slice does not have
	// an odd, positive length (2·bands-1).
	ErrCoefficientCount = errors.New("circular: coefficient count must be odd and >= 1")

	// ErrBandZero is returned when band 0 is addressed through Band/SetBand.
	// Band 0 has a single coefficient; use Band0/SetBand0.
	ErrBandZero = errors.New("circular: band 0 must be accessed with Band0/SetBand0")

	// ErrBandOutOfRange is returned when a band index is >= BandCount.
	ErrBandOutOfRange = errors.New("circular: band index out of range")

	// ErrTooFewSamples is returned by FromSamples when the sample count
	// cannot resolve the requested number of bands.
	ErrTooFewSamples = errors.New("circular: need at least 2·bands samples")

	// ErrNilFunc is returned by Project when f is nil.
	ErrNilFunc = errors.New("circular: nil function")
)

// circularErrorf tags err with the failing operation while keeping it
// matchable via errors.Is.
func circularErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
