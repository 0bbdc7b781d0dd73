package dataset

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestPublishedShape(t *testing.T) {
	tbl := Published()

	n := len(tbl.Intervals())
	if n != 4 || len(tbl.Results()) != n || len(tbl.AbsErrors()) != n || len(tbl.RelErrors()) != n {
		t.Fatalf("expected four aligned sequences of length 4, got %d/%d/%d/%d",
			n, len(tbl.Results()), len(tbl.AbsErrors()), len(tbl.RelErrors()))
	}

	want := []int{4, 8, 16, 32}
	for i, v := range tbl.Intervals() {
		if v != want[i] {
			t.Errorf("intervals[%d]: expected %d, got %d", i, want[i], v)
		}
	}

	if err := tbl.Validate(); err != nil {
		t.Errorf("published table invalid: %v", err)
	}
}

func TestPublishedIsCopy(t *testing.T) {
	a := Published()
	a.Rows[0].Result = 0

	if Published().Rows[0].Result != 101.146996 {
		t.Error("mutating a returned table changed the published data")
	}
}

func TestPublishedErrorsDecreasing(t *testing.T) {
	tbl := Published()

	wantAbs := []float64{0.107472, 0.006122, 0.000374, 0.000023}
	for i, v := range tbl.AbsErrors() {
		if v != wantAbs[i] {
			t.Errorf("abs[%d]: expected %f, got %f", i, wantAbs[i], v)
		}
		if v < 0 || tbl.RelErrors()[i] < 0 {
			t.Errorf("row %d: negative error", i)
		}
	}

	if !tbl.ErrorsDecreasing() {
		t.Error("expected strictly decreasing errors")
	}
}

func TestPublishedConverges(t *testing.T) {
	tbl := Published()

	limit, err := tbl.Limit()
	if err != nil {
		t.Fatal(err)
	}
	if limit != 101.039547 {
		t.Errorf("expected limit 101.039547, got %f", limit)
	}

	d0 := math.Abs(101.146996 - limit)
	d1 := math.Abs(101.045646 - limit)
	d2 := math.Abs(101.039898 - limit)
	if !(d0 > d1 && d1 > d2) {
		t.Errorf("differences not decreasing: %g %g %g", d0, d1, d2)
	}

	if !tbl.ConvergesToLimit() {
		t.Error("expected convergence toward the last row")
	}
	if !tbl.Converges(101.039524) {
		t.Error("expected convergence toward the exact value")
	}
}

func TestObservedOrder(t *testing.T) {
	p, err := Published().ObservedOrder()
	if err != nil {
		t.Fatal(err)
	}
	if p < 3.8 || p > 4.3 {
		t.Errorf("expected fourth order convergence, got p=%.3f", p)
	}

	_, err = Table{Rows: []Row{{Intervals: 4, AbsError: 0.1}}}.ObservedOrder()
	if !errors.Is(err, ErrTooFewRows) {
		t.Errorf("expected ErrTooFewRows, got %v", err)
	}
}

func TestFromColumns(t *testing.T) {
	tbl, err := FromColumns([]int{2, 4}, []float64{1, 2}, []float64{0.1, 0.01}, []float64{1, 0.1})
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Len() != 2 || tbl.Rows[1].RelError != 0.1 {
		t.Errorf("unexpected table %+v", tbl)
	}

	_, err = FromColumns([]int{2, 4}, []float64{1}, []float64{0.1, 0.01}, []float64{1, 0.1})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	tbl := Table{Rows: []Row{
		{Intervals: 8, Result: 1, AbsError: 0.1, RelError: 0.1},
		{Intervals: 4, Result: 1, AbsError: -0.1, RelError: 0.1},
		{Intervals: 0, Result: math.NaN(), AbsError: 0.1, RelError: 0.1},
	}}

	err := tbl.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, target := range []error{ErrNotIncreasing, ErrNegativeError, ErrNonPositive, ErrInvalidValue} {
		if !errors.Is(err, target) {
			t.Errorf("expected %v in %v", target, err)
		}
	}
	if !strings.Contains(err.Error(), "row 1") {
		t.Errorf("expected row index in message: %v", err)
	}

	if !errors.Is(Table{}.Validate(), ErrEmpty) {
		t.Error("expected ErrEmpty for empty table")
	}
}

func TestRound(t *testing.T) {
	tbl := Table{Rows: []Row{{Intervals: 4, Result: 1.23456789, AbsError: 0.0000004, RelError: 0.0000006}}}
	r := tbl.Round(6)

	if r.Rows[0].Result != 1.234568 {
		t.Errorf("expected 1.234568, got %v", r.Rows[0].Result)
	}
	if r.Rows[0].AbsError != 0 || r.Rows[0].RelError != 0.000001 {
		t.Errorf("unexpected rounding: %+v", r.Rows[0])
	}
	if tbl.Rows[0].Result != 1.23456789 {
		t.Error("round mutated the receiver")
	}
}
