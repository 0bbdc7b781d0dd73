package quad

import (
	"errors"
	"fmt"
)

// Domain errors for quadrature operations.
var (
	// ErrTooFewPoints indicates fewer than two sample points.
	ErrTooFewPoints = errors.New("quad: at least 2 data points are required")

	// ErrDimensionMismatch indicates x and y have different lengths.
	ErrDimensionMismatch = errors.New("quad: x and y lengths differ")

	// ErrOddIntervals indicates the 1/3 rule was given an odd interval count.
	ErrOddIntervals = errors.New("quad: simpson 1/3 rule needs an even number of intervals")

	// ErrNotThreeIntervals indicates the 3/8 rule was given n != 3.
	ErrNotThreeIntervals = errors.New("quad: simpson 3/8 rule needs exactly 3 intervals")

	// ErrNotIncreasing indicates abscissae that are not strictly increasing.
	ErrNotIncreasing = errors.New("quad: x values must be strictly increasing")

	// ErrInvalidValue indicates a NaN or Inf sample.
	ErrInvalidValue = errors.New("quad: invalid sample (NaN or Inf detected)")

	// ErrRichardsonUnavailable indicates the halved grid cannot be integrated.
	ErrRichardsonUnavailable = errors.New("quad: richardson estimate needs n >= 4 with n/2 even")

	// ErrUnknownRule indicates an unrecognised rule name.
	ErrUnknownRule = errors.New("quad: unknown rule")
)

// PointError wraps an error with the offending sample index.
type PointError struct {
	Index   int
	X, Y    float64
	Wrapped error
}

func (e *PointError) Error() string {
	return fmt.Sprintf("point %d (x=%g, y=%g): %v", e.Index, e.X, e.Y, e.Wrapped)
}

func (e *PointError) Unwrap() error {
	return e.Wrapped
}
