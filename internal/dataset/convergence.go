package dataset

import (
	"errors"
	"math"

	"github.com/montanaflynn/stats"
)

var ErrTooFewRows = errors.New("dataset: at least 2 rows are needed")

// Converges reports whether |result_i - reference| strictly decreases.
func (t Table) Converges(reference float64) bool {
	if len(t.Rows) < 2 {
		return false
	}
	prev := math.Abs(t.Rows[0].Result - reference)
	for _, r := range t.Rows[1:] {
		d := math.Abs(r.Result - reference)
		if d >= prev {
			return false
		}
		prev = d
	}
	return true
}

// ConvergesToLimit checks convergence toward the last row, ignoring the last
// row itself.
func (t Table) ConvergesToLimit() bool {
	if len(t.Rows) < 3 {
		return false
	}
	limit := t.Rows[len(t.Rows)-1].Result
	head := Table{Rows: t.Rows[:len(t.Rows)-1]}
	return head.Converges(limit)
}

// ErrorsDecreasing reports whether both error columns strictly decrease.
func (t Table) ErrorsDecreasing() bool {
	if len(t.Rows) < 2 {
		return false
	}
	for i := 1; i < len(t.Rows); i++ {
		if t.Rows[i].AbsError >= t.Rows[i-1].AbsError || t.Rows[i].RelError >= t.Rows[i-1].RelError {
			return false
		}
	}
	return true
}

// ObservedOrder fits log(absError) = c - p*log(n) by least squares and
// returns p. Rows with a zero error are skipped.
func (t Table) ObservedOrder() (float64, error) {
	var xs, ys stats.Float64Data
	for _, r := range t.Rows {
		if r.AbsError <= 0 || r.Intervals <= 0 {
			continue
		}
		xs = append(xs, math.Log(float64(r.Intervals)))
		ys = append(ys, math.Log(r.AbsError))
	}
	if len(xs) < 2 {
		return 0, ErrTooFewRows
	}

	cov, err := stats.CovariancePopulation(xs, ys)
	if err != nil {
		return 0, err
	}
	v, err := stats.PopulationVariance(xs)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, ErrNotIncreasing
	}
	return -cov / v, nil
}
