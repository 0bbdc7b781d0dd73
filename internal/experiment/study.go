package experiment

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-logr/logr"

	"github.com/san-kum/simpson/internal/dataset"
	"github.com/san-kum/simpson/internal/models"
	"github.com/san-kum/simpson/internal/quad"
)

var (
	ErrNoIntervals = errors.New("experiment: no interval counts given")
	ErrNoExact     = errors.New("experiment: integrand has no closed form over the range")
	ErrBadRange    = errors.New("experiment: range end must be greater than its start")
)

const PublishedDecimals = 6

// DefaultIntervals are the interval counts of the published table.
var DefaultIntervals = []int{4, 8, 16, 32}

// Study integrates one function at increasing interval counts and measures
// the error of each estimate against the exact integral.
type Study struct {
	Integrand models.Integrand
	A, B      float64
	Intervals []int
	Rule      quad.Rule
	// Round rounds table values to the published six decimals.
	Round bool

	Log logr.Logger
}

// NewHeatStudy is the study behind the published table.
func NewHeatStudy() *Study {
	return &Study{
		Integrand: models.NewHeatTransfer(),
		A:         0,
		B:         8,
		Intervals: append([]int(nil), DefaultIntervals...),
		Rule:      quad.RuleSimpson13,
		Round:     true,
		Log:       logr.Discard(),
	}
}

type StudyResult struct {
	Table   dataset.Table
	Exact   float64
	Results []*Result
}

// Run evaluates every interval count concurrently. Results stay aligned with
// s.Intervals; the first failure cancels the rest.
func (s *Study) Run(ctx context.Context) (*StudyResult, error) {
	if len(s.Intervals) == 0 {
		return nil, ErrNoIntervals
	}
	if s.B <= s.A {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrBadRange, s.A, s.B)
	}
	exact, ok := s.Integrand.Exact(s.A, s.B)
	if !ok {
		return nil, ErrNoExact
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]*Result, len(s.Intervals))
	errs := make([]error, len(s.Intervals))

	var wg sync.WaitGroup
	for i, n := range s.Intervals {
		wg.Add(1)
		go func(idx, n int) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}

			x, y := quad.Sample(s.Integrand.Eval, s.A, s.B, n)
			res, err := Integrate(x, y, s.Rule)
			if err != nil {
				errs[idx] = fmt.Errorf("n=%d: %w", n, err)
				cancel()
				return
			}
			results[idx] = res.WithExact(exact)
			s.Log.V(1).Info("integrated", "n", n, "rule", res.RuleName, "value", res.Value, "abs_error", res.AbsError)
		}(i, n)
	}

	wg.Wait()

	// a worker failure cancels its siblings; report the failure, not the
	// cancellations it caused
	var firstErr error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if firstErr == nil || errors.Is(firstErr, context.Canceled) {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	rows := make([]dataset.Row, len(results))
	for i, r := range results {
		rows[i] = dataset.Row{
			Intervals: s.Intervals[i],
			Result:    r.Value,
			AbsError:  r.AbsError,
			RelError:  r.RelError,
		}
	}
	tbl := dataset.Table{Rows: rows}
	if s.Round {
		tbl = tbl.Round(PublishedDecimals)
	}

	return &StudyResult{Table: tbl, Exact: exact, Results: results}, nil
}
