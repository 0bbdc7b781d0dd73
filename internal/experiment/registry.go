package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/simpson/internal/models"
	"github.com/san-kum/simpson/internal/quad"
)

type Registry struct {
	integrands map[string]func(params map[string]float64) models.Integrand
}

func NewRegistry() *Registry {
	r := &Registry{
		integrands: make(map[string]func(map[string]float64) models.Integrand),
	}

	r.integrands["heat"] = func(params map[string]float64) models.Integrand {
		h := models.NewHeatTransfer()
		if v, ok := params["base"]; ok {
			h.Base = v
		}
		if v, ok := params["amp1"]; ok {
			h.Amp1 = v
		}
		if v, ok := params["w1"]; ok {
			h.W1 = v
		}
		if v, ok := params["amp2"]; ok {
			h.Amp2 = v
		}
		if v, ok := params["w2"]; ok {
			h.W2 = v
		}
		return h
	}
	r.integrands["poly"] = func(params map[string]float64) models.Integrand {
		// c0..c9 in ascending order
		coeffs := make([]float64, 0, 10)
		last := -1
		for i := 0; i < 10; i++ {
			v := params[fmt.Sprintf("c%d", i)]
			coeffs = append(coeffs, v)
			if v != 0 {
				last = i
			}
		}
		if last < 0 {
			return models.NewPolynomial(0, 0, 0, 0, 1) // t^4
		}
		return models.NewPolynomial(coeffs[:last+1]...)
	}

	return r
}

func (r *Registry) GetIntegrand(name string, params map[string]float64) (models.Integrand, error) {
	fn, ok := r.integrands[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrand: %s", name)
	}
	return fn(params), nil
}

func (r *Registry) GetRule(name string) (quad.Rule, error) {
	return quad.ParseRule(name)
}

func (r *Registry) ListIntegrands() []string {
	names := make([]string, 0, len(r.integrands))
	for name := range r.integrands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
