package models

import (
	"fmt"
	"math"
)

// HeatTransfer is a heat transfer rate in kW over time in hours:
//
//	Q'(t) = Base + Amp1*sin(W1*t) + Amp2*cos(W2*t)
//
// Its integral is the total heat transferred in kWh.
type HeatTransfer struct {
	Base float64
	Amp1 float64
	W1   float64
	Amp2 float64
	W2   float64
}

func NewHeatTransfer() *HeatTransfer {
	return &HeatTransfer{
		Base: 10,
		Amp1: 5,
		W1:   0.5,
		Amp2: 2,
		W2:   0.3,
	}
}

func (h *HeatTransfer) Name() string {
	return "heat"
}

func (h *HeatTransfer) Describe() string {
	return fmt.Sprintf("Q'(t) = %g + %g*sin(%g*t) + %g*cos(%g*t) kW", h.Base, h.Amp1, h.W1, h.Amp2, h.W2)
}

func (h *HeatTransfer) Eval(t float64) float64 {
	return h.Base + h.Amp1*math.Sin(h.W1*t) + h.Amp2*math.Cos(h.W2*t)
}

// Exact is the closed-form integral over [a, b]. A zero frequency turns its
// term into a constant, so sin contributes nothing and cos contributes Amp2.
func (h *HeatTransfer) Exact(a, b float64) (float64, bool) {
	v := h.Base * (b - a)
	if h.W1 != 0 {
		v -= h.Amp1 / h.W1 * (math.Cos(h.W1*b) - math.Cos(h.W1*a))
	}
	if h.W2 != 0 {
		v += h.Amp2 / h.W2 * (math.Sin(h.W2*b) - math.Sin(h.W2*a))
	} else {
		v += h.Amp2 * (b - a)
	}
	return v, true
}
