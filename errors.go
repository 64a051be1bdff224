package huequant

import (
	"errors"
	"fmt"
)

var (
	// ErrNilImage is returned when ComputeHistogram is given a nil raster.
	ErrNilImage = errors.New("image must not be nil")
	// ErrInvalidIgnoreBits is returned when the posterization level is
	// outside 0..7.
	ErrInvalidIgnoreBits = errors.New("ignore bits must be in range 0..7")
	// ErrInvalidMaxColors is returned when the histogram bound is not
	// positive.
	ErrInvalidMaxColors = errors.New("max colors must be positive")
)

// ErrTooManyColors indicates that the number of distinct
// post-posterization colors exceeded the configured bound. The failed
// build leaves no partial result; callers typically retry with a coarser
// ignore-bits setting to merge more colors.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrTooManyColors struct {
	MaxColors int
	cause     error
}

func (e *ErrTooManyColors) Error() string {
	return fmt.Sprintf("too many colors: limit of %d distinct colors exceeded", e.MaxColors)
}

func (e *ErrTooManyColors) Unwrap() error { return e.cause }

// ErrImportanceSize indicates that the importance map length does not
// match the raster area.
type ErrImportanceSize struct {
	Expected int
	Actual   int
}

func (e *ErrImportanceSize) Error() string {
	return fmt.Sprintf("importance map size mismatch: expected %d, got %d", e.Expected, e.Actual)
}
