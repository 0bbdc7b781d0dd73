package models

// Integrand is a real function with an optional closed-form definite integral.
type Integrand interface {
	Name() string
	Describe() string
	Eval(t float64) float64
	// Exact returns ∫_a^b f(t) dt and whether a closed form is known.
	Exact(a, b float64) (float64, bool)
}
