package dataset

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
)

// Validate reports every violated table invariant in one error.
func (t Table) Validate() error {
	if len(t.Rows) == 0 {
		return ErrEmpty
	}

	var merr *multierror.Error
	for i, r := range t.Rows {
		if r.Intervals <= 0 {
			merr = multierror.Append(merr, fmt.Errorf("row %d: %w (got %d)", i, ErrNonPositive, r.Intervals))
		}
		if i > 0 && r.Intervals <= t.Rows[i-1].Intervals {
			merr = multierror.Append(merr, fmt.Errorf("row %d: %w (%d after %d)", i, ErrNotIncreasing, r.Intervals, t.Rows[i-1].Intervals))
		}
		for _, v := range []float64{r.Result, r.AbsError, r.RelError} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				merr = multierror.Append(merr, fmt.Errorf("row %d: %w", i, ErrInvalidValue))
				break
			}
		}
		if r.AbsError < 0 || r.RelError < 0 {
			merr = multierror.Append(merr, fmt.Errorf("row %d: %w", i, ErrNegativeError))
		}
	}
	return merr.ErrorOrNil()
}
