package experiment

import (
	"math"
	"time"

	"github.com/san-kum/simpson/internal/quad"
)

// Result is one integration over sampled points, with error analysis when
// the exact value is known.
type Result struct {
	Value     float64       `json:"value"`
	Rule      quad.Rule     `json:"-"`
	RuleName  string        `json:"rule"`
	Intervals int           `json:"intervals"`
	Step      float64       `json:"step"`
	Elapsed   time.Duration `json:"elapsed_ns"`

	HasExact bool    `json:"has_exact"`
	Exact    float64 `json:"exact,omitempty"`
	AbsError float64 `json:"abs_error,omitempty"`
	// RelError is a percentage of |Exact|.
	RelError float64 `json:"rel_error,omitempty"`

	HasEstimate bool    `json:"has_estimate"`
	Estimated   float64 `json:"estimated_error,omitempty"`
	// Accuracy compares Estimated with AbsError, in percent.
	Accuracy float64 `json:"estimation_accuracy,omitempty"`
}

// Integrate applies rule to the points and times it.
func Integrate(x, y []float64, rule quad.Rule) (*Result, error) {
	start := time.Now()
	v, used, err := rule.Apply(x, y)
	elapsed := time.Since(start)
	if err != nil {
		return nil, err
	}

	n, h := quad.Step(x)
	res := &Result{
		Value:     v,
		Rule:      used,
		RuleName:  used.String(),
		Intervals: n,
		Step:      h,
		Elapsed:   elapsed,
	}

	if used == quad.RuleSimpson13 {
		if est, err := quad.Richardson(x, y, v); err == nil {
			res.HasEstimate = true
			res.Estimated = est
		}
	}
	return res, nil
}

// WithExact fills in the error analysis against a known exact value.
func (r *Result) WithExact(exact float64) *Result {
	r.HasExact = true
	r.Exact = exact
	r.AbsError = math.Abs(exact - r.Value)
	if exact != 0 {
		r.RelError = r.AbsError / math.Abs(exact) * 100
	}
	if r.HasEstimate && r.AbsError > 0 {
		r.Accuracy = quad.EstimationAccuracy(r.Estimated, r.AbsError)
	}
	return r
}
