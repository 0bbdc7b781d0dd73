package dataset

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrLengthMismatch = errors.New("dataset: sequences have different lengths")
	ErrEmpty          = errors.New("dataset: table has no rows")
	ErrNotIncreasing  = errors.New("dataset: intervals must be strictly increasing")
	ErrNonPositive    = errors.New("dataset: intervals must be positive")
	ErrNegativeError  = errors.New("dataset: error values must be non-negative")
	ErrInvalidValue   = errors.New("dataset: NaN or Inf value")
)

// Row describes one integration run.
type Row struct {
	Intervals int     `json:"intervals" yaml:"intervals"`
	Result    float64 `json:"result" yaml:"result"`
	AbsError  float64 `json:"abs_error" yaml:"abs_error"`
	RelError  float64 `json:"rel_error" yaml:"rel_error"`
}

type Table struct {
	Rows []Row `json:"rows" yaml:"rows"`
}

// Published returns the Simpson's rule results for the heat transfer rate
// over t in [0, 8] hours, rounded to six decimals.
func Published() Table {
	return Table{Rows: []Row{
		{Intervals: 4, Result: 101.146996, AbsError: 0.107472, RelError: 0.106366},
		{Intervals: 8, Result: 101.045646, AbsError: 0.006122, RelError: 0.006059},
		{Intervals: 16, Result: 101.039898, AbsError: 0.000374, RelError: 0.000370},
		{Intervals: 32, Result: 101.039547, AbsError: 0.000023, RelError: 0.000023},
	}}
}

// FromColumns builds a table from parallel sequences.
func FromColumns(intervals []int, results, abs, rel []float64) (Table, error) {
	n := len(intervals)
	if len(results) != n || len(abs) != n || len(rel) != n {
		return Table{}, fmt.Errorf("%w: intervals=%d results=%d abs=%d rel=%d",
			ErrLengthMismatch, n, len(results), len(abs), len(rel))
	}
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{Intervals: intervals[i], Result: results[i], AbsError: abs[i], RelError: rel[i]}
	}
	return Table{Rows: rows}, nil
}

func (t Table) Len() int { return len(t.Rows) }

func (t Table) Clone() Table {
	rows := make([]Row, len(t.Rows))
	copy(rows, t.Rows)
	return Table{Rows: rows}
}

func (t Table) Intervals() []int {
	out := make([]int, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Intervals
	}
	return out
}

// IntervalsFloat returns the interval counts as plot abscissae.
func (t Table) IntervalsFloat() []float64 {
	out := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = float64(r.Intervals)
	}
	return out
}

func (t Table) Results() []float64 {
	out := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Result
	}
	return out
}

func (t Table) AbsErrors() []float64 {
	out := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.AbsError
	}
	return out
}

func (t Table) RelErrors() []float64 {
	out := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.RelError
	}
	return out
}

// Limit returns the most refined estimate, the result of the last row.
func (t Table) Limit() (float64, error) {
	if len(t.Rows) == 0 {
		return 0, ErrEmpty
	}
	return t.Rows[len(t.Rows)-1].Result, nil
}

// Round returns a copy with every float rounded to the given number of decimals.
func (t Table) Round(decimals int) Table {
	p := math.Pow(10, float64(decimals))
	r := func(v float64) float64 { return math.Round(v*p) / p }
	out := t.Clone()
	for i := range out.Rows {
		out.Rows[i].Result = r(out.Rows[i].Result)
		out.Rows[i].AbsError = r(out.Rows[i].AbsError)
		out.Rows[i].RelError = r(out.Rows[i].RelError)
	}
	return out
}
