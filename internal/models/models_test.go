package models

import (
	"math"
	"testing"
)

func TestHeatTransferRate(t *testing.T) {
	h := NewHeatTransfer()

	// 10 + 5*sin(0) + 2*cos(0)
	if got := h.Eval(0); math.Abs(got-12) > 1e-12 {
		t.Errorf("expected 12 kW at t=0, got %f", got)
	}
}

func TestHeatTransferExact(t *testing.T) {
	h := NewHeatTransfer()

	got, ok := h.Exact(0, 8)
	if !ok {
		t.Fatal("expected closed form")
	}
	if math.Abs(got-101.039524) > 1e-6 {
		t.Errorf("expected 101.039524 kWh, got %.6f", got)
	}

	zero, _ := h.Exact(3, 3)
	if zero != 0 {
		t.Errorf("expected zero over empty range, got %f", zero)
	}
}

func TestHeatTransferZeroFrequency(t *testing.T) {
	tests := []struct {
		name   string
		w1, w2 float64
		want   float64
	}{
		// sin(0) = 0 drops the first term
		{"w1", 0, 0.3, 10*8 + 2/0.3*math.Sin(2.4)},
		// cos(0) = 1 makes the second term constant
		{"w2", 0.5, 0, 10*8 - 10*(math.Cos(4)-1) + 2*8},
		{"both", 0, 0, 12 * 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHeatTransfer()
			h.W1, h.W2 = tt.w1, tt.w2

			got, ok := h.Exact(0, 8)
			if !ok {
				t.Fatal("expected closed form")
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("expected %.12f, got %.12f", tt.want, got)
			}

			// agrees with a fine Simpson sum of Eval
			const n = 2000
			step := 8.0 / n
			sum := h.Eval(0) + h.Eval(8)
			for i := 1; i < n; i++ {
				w := 2.0
				if i%2 == 1 {
					w = 4
				}
				sum += w * h.Eval(float64(i)*step)
			}
			if approx := sum * step / 3; math.Abs(approx-got) > 1e-9 {
				t.Errorf("closed form %.12f disagrees with quadrature %.12f", got, approx)
			}
		})
	}
}

func TestPolynomial(t *testing.T) {
	p := NewPolynomial(1, 0, 3) // 1 + 3t^2

	if got := p.Eval(2); got != 13 {
		t.Errorf("expected p(2)=13, got %f", got)
	}

	got, _ := p.Exact(0, 2) // t + t^3
	if math.Abs(got-10) > 1e-12 {
		t.Errorf("expected 10, got %f", got)
	}

	if d := p.Describe(); d != "p(t) = 1 + 0*t + 3*t^2" {
		t.Errorf("unexpected description %q", d)
	}
}
