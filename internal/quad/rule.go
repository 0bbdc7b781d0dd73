package quad

import (
	"fmt"
	"math"
)

type Rule int

const (
	RuleAuto Rule = iota
	RuleSimpson13
	RuleSimpson38
	RuleCombined
	RuleTrapezoidal
)

var ruleNames = map[Rule]string{
	RuleAuto:        "auto",
	RuleSimpson13:   "simpson13",
	RuleSimpson38:   "simpson38",
	RuleCombined:    "combined",
	RuleTrapezoidal: "trapezoid",
}

func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rule(%d)", int(r))
}

// Title is the human-readable rule name used in reports.
func (r Rule) Title() string {
	switch r {
	case RuleSimpson13:
		return "Simpson's 1/3 Rule"
	case RuleSimpson38:
		return "Simpson's 3/8 Rule"
	case RuleCombined:
		return "Combined Simpson's Rule"
	case RuleTrapezoidal:
		return "Trapezoidal Rule"
	}
	return "Automatic"
}

func ParseRule(name string) (Rule, error) {
	for r, n := range ruleNames {
		if n == name {
			return r, nil
		}
	}
	return RuleAuto, fmt.Errorf("%w: %s", ErrUnknownRule, name)
}

func RuleNames() []string {
	return []string{"auto", "simpson13", "simpson38", "combined", "trapezoid"}
}

// Apply integrates with r. RuleAuto resolves to a concrete rule, which is
// returned alongside the value.
func (r Rule) Apply(x, y []float64) (float64, Rule, error) {
	var (
		v   float64
		err error
	)
	switch r {
	case RuleAuto:
		return Auto(x, y)
	case RuleSimpson13:
		v, err = Simpson13(x, y)
	case RuleSimpson38:
		v, err = Simpson38(x, y)
	case RuleCombined:
		v, err = Combined(x, y)
	case RuleTrapezoidal:
		v, err = Trapezoidal(x, y)
	default:
		return 0, r, fmt.Errorf("%w: %s", ErrUnknownRule, r)
	}
	return v, r, err
}

func check(x, y []float64) error {
	if len(x) != len(y) {
		return ErrDimensionMismatch
	}
	if len(x) < 2 {
		return ErrTooFewPoints
	}
	for i := range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) || math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			return &PointError{Index: i, X: x[i], Y: y[i], Wrapped: ErrInvalidValue}
		}
		if i > 0 && x[i] <= x[i-1] {
			return &PointError{Index: i, X: x[i], Y: y[i], Wrapped: ErrNotIncreasing}
		}
	}
	return nil
}

// Step returns the interval count and uniform step of a sample grid.
func Step(x []float64) (int, float64) {
	n := len(x) - 1
	if n < 1 {
		return 0, 0
	}
	return n, (x[n] - x[0]) / float64(n)
}
