package experiment

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/san-kum/simpson/internal/dataset"
	"github.com/san-kum/simpson/internal/models"
	"github.com/san-kum/simpson/internal/quad"
)

func TestHeatStudyReproducesPublishedTable(t *testing.T) {
	res, err := NewHeatStudy().Run(context.Background())
	if err != nil {
		t.Fatalf("study failed: %v", err)
	}

	if diff := cmp.Diff(dataset.Published(), res.Table); diff != "" {
		t.Errorf("study table differs from published table (-want +got):\n%s", diff)
	}

	if math.Abs(res.Exact-101.039524) > 1e-6 {
		t.Errorf("expected exact 101.039524, got %.6f", res.Exact)
	}
}

func TestStudyResultsAligned(t *testing.T) {
	s := NewHeatStudy()
	s.Intervals = []int{2, 4, 8, 16, 32, 64}
	s.Round = false

	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	for i, r := range res.Results {
		if r.Intervals != s.Intervals[i] {
			t.Errorf("result %d: expected n=%d, got %d", i, s.Intervals[i], r.Intervals)
		}
		if r.Rule != quad.RuleSimpson13 {
			t.Errorf("result %d: expected simpson13, got %s", i, r.Rule)
		}
	}
	if !res.Table.ErrorsDecreasing() {
		t.Error("expected errors to shrink as n grows")
	}
	if !res.Results[5].HasEstimate {
		t.Error("expected a richardson estimate for n=64")
	}
	if res.Results[0].HasEstimate {
		t.Error("n=2 cannot have a richardson estimate")
	}
}

func TestStudyPolynomialExact(t *testing.T) {
	s := &Study{
		Integrand: models.NewPolynomial(1, -2, 0, 4), // cubic
		A:         -1,
		B:         3,
		Intervals: []int{2, 6, 10},
		Rule:      quad.RuleSimpson13,
	}

	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range res.Results {
		if r.AbsError > 1e-10 {
			t.Errorf("n=%d: simpson should be exact for cubics, error %g", r.Intervals, r.AbsError)
		}
	}
}

func TestStudyErrors(t *testing.T) {
	s := NewHeatStudy()
	s.Intervals = nil
	if _, err := s.Run(context.Background()); !errors.Is(err, ErrNoIntervals) {
		t.Errorf("expected ErrNoIntervals, got %v", err)
	}

	s = NewHeatStudy()
	s.A, s.B = 5, 1
	if _, err := s.Run(context.Background()); !errors.Is(err, ErrBadRange) {
		t.Errorf("expected ErrBadRange, got %v", err)
	}

	s = NewHeatStudy()
	s.Intervals = []int{4, 5, 8}
	if _, err := s.Run(context.Background()); !errors.Is(err, quad.ErrOddIntervals) {
		t.Errorf("expected ErrOddIntervals, got %v", err)
	}

	s = NewHeatStudy()
	s.Integrand = sampledOnly{}
	if _, err := s.Run(context.Background()); !errors.Is(err, ErrNoExact) {
		t.Errorf("expected ErrNoExact, got %v", err)
	}
}

func TestStudyCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewHeatStudy().Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestIntegrateWithExact(t *testing.T) {
	h := models.NewHeatTransfer()
	x, y := quad.Sample(h.Eval, 0, 8, 32)

	res, err := Integrate(x, y, quad.RuleAuto)
	if err != nil {
		t.Fatal(err)
	}
	exact, _ := h.Exact(0, 8)
	res.WithExact(exact)

	if res.Rule != quad.RuleSimpson13 || res.Intervals != 32 || res.Step != 0.25 {
		t.Errorf("unexpected result header: %+v", res)
	}
	if math.Abs(res.AbsError-0.000023) > 5e-7 {
		t.Errorf("expected abs error 0.000023, got %g", res.AbsError)
	}
	if res.Accuracy < 95 {
		t.Errorf("expected accurate richardson estimate, got %.2f%%", res.Accuracy)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	if got := r.ListIntegrands(); !cmp.Equal(got, []string{"heat", "poly"}) {
		t.Errorf("unexpected integrands %v", got)
	}

	f, err := r.GetIntegrand("heat", map[string]float64{"base": 20})
	if err != nil {
		t.Fatal(err)
	}
	if f.Eval(0) != 22 {
		t.Errorf("expected overridden base, got %f", f.Eval(0))
	}

	p, err := r.GetIntegrand("poly", map[string]float64{"c1": 2})
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := p.Exact(0, 3); v != 9 {
		t.Errorf("expected ∫2t over [0,3] = 9, got %f", v)
	}

	if _, err := r.GetIntegrand("gauss", nil); err == nil {
		t.Error("expected unknown integrand error")
	}
	if rule, err := r.GetRule("simpson38"); err != nil || rule != quad.RuleSimpson38 {
		t.Errorf("unexpected rule %v, %v", rule, err)
	}
}

// sampledOnly has no closed-form integral.
type sampledOnly struct{}

func (sampledOnly) Name() string                       { return "sampled" }
func (sampledOnly) Describe() string                   { return "exp(t^2)" }
func (sampledOnly) Eval(t float64) float64             { return math.Exp(t * t) }
func (sampledOnly) Exact(a, b float64) (float64, bool) { return 0, false }
