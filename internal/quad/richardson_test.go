package quad

import (
	"errors"
	"math"
	"testing"
)

func TestRichardsonEstimate(t *testing.T) {
	x, y := Sample(heatRate, 0, 8, 32)
	result, err := Simpson13(x, y)
	if err != nil {
		t.Fatal(err)
	}

	est, err := Richardson(x, y, result)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(est-2.34e-5) > 1e-7 {
		t.Errorf("estimate %.3e, expected about 2.34e-05", est)
	}

	exact := 10*8 - 10*(math.Cos(4)-1) + 20.0/3.0*math.Sin(2.4)
	acc := EstimationAccuracy(est, math.Abs(exact-result))
	if acc < 95 || acc > 100 {
		t.Errorf("estimation accuracy %.2f%% outside [95, 100]", acc)
	}
}

func TestRichardsonUnavailable(t *testing.T) {
	for _, n := range []int{2, 3, 6} {
		x, y := Sample(heatRate, 0, 8, n)
		if _, err := Richardson(x, y, 0); !errors.Is(err, ErrRichardsonUnavailable) {
			t.Errorf("n=%d: expected ErrRichardsonUnavailable, got %v", n, err)
		}
	}
}

func TestEstimationAccuracyZeroActual(t *testing.T) {
	if !math.IsNaN(EstimationAccuracy(1, 0)) {
		t.Error("expected NaN for zero actual error")
	}
}
