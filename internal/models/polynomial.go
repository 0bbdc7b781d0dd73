package models

import (
	"fmt"
	"strings"
)

// Polynomial holds coefficients in ascending order: c0 + c1*t + c2*t^2 + ...
type Polynomial struct {
	Coeffs []float64
}

func NewPolynomial(coeffs ...float64) *Polynomial {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return &Polynomial{Coeffs: c}
}

func (p *Polynomial) Name() string {
	return "poly"
}

func (p *Polynomial) Describe() string {
	if len(p.Coeffs) == 0 {
		return "p(t) = 0"
	}
	terms := make([]string, 0, len(p.Coeffs))
	for i, c := range p.Coeffs {
		switch i {
		case 0:
			terms = append(terms, fmt.Sprintf("%g", c))
		case 1:
			terms = append(terms, fmt.Sprintf("%g*t", c))
		default:
			terms = append(terms, fmt.Sprintf("%g*t^%d", c, i))
		}
	}
	return "p(t) = " + strings.Join(terms, " + ")
}

func (p *Polynomial) Eval(t float64) float64 {
	v := 0.0
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		v = v*t + p.Coeffs[i]
	}
	return v
}

func (p *Polynomial) Exact(a, b float64) (float64, bool) {
	return p.antiderivative(b) - p.antiderivative(a), true
}

func (p *Polynomial) antiderivative(t float64) float64 {
	v := 0.0
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		v = v*t + p.Coeffs[i]/float64(i+1)
	}
	return v * t
}
