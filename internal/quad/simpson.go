package quad

// Simpson13 applies the composite 1/3 rule:
//
//	h/3 * (y0 + yn + 4*sum(y_odd) + 2*sum(y_even))
func Simpson13(x, y []float64) (float64, error) {
	if err := check(x, y); err != nil {
		return 0, err
	}
	return simpson13(y, 0, len(y)-1, stepOf(x, 0, len(x)-1))
}

// Simpson38 applies the 3/8 rule to exactly three intervals:
//
//	3h/8 * (y0 + 3y1 + 3y2 + y3)
func Simpson38(x, y []float64) (float64, error) {
	if err := check(x, y); err != nil {
		return 0, err
	}
	return simpson38(y, 0, len(y)-1, stepOf(x, 0, len(x)-1))
}

// Combined integrates any n >= 2. Even n uses the 1/3 rule throughout; odd n
// uses the 1/3 rule on the first n-3 intervals and a 3/8 panel on the rest.
func Combined(x, y []float64) (float64, error) {
	if err := check(x, y); err != nil {
		return 0, err
	}
	n := len(x) - 1
	if n < 2 {
		return 0, ErrTooFewPoints
	}
	if n%2 == 0 {
		return simpson13(y, 0, n, stepOf(x, 0, n))
	}

	split := n - 3
	var head float64
	if split > 0 {
		v, err := simpson13(y, 0, split, stepOf(x, 0, split))
		if err != nil {
			return 0, err
		}
		head = v
	}
	tail, err := simpson38(y, split, n, stepOf(x, split, n))
	if err != nil {
		return 0, err
	}
	return head + tail, nil
}

func Trapezoidal(x, y []float64) (float64, error) {
	if err := check(x, y); err != nil {
		return 0, err
	}
	sum := 0.0
	for i := 0; i < len(x)-1; i++ {
		sum += 0.5 * (x[i+1] - x[i]) * (y[i] + y[i+1])
	}
	return sum, nil
}

// Auto selects the rule the same way for every caller: even n uses 1/3,
// n == 3 uses 3/8, any other n uses Combined.
func Auto(x, y []float64) (float64, Rule, error) {
	if err := check(x, y); err != nil {
		return 0, RuleAuto, err
	}
	n := len(x) - 1
	switch {
	case n%2 == 0:
		v, err := Simpson13(x, y)
		return v, RuleSimpson13, err
	case n == 3:
		v, err := Simpson38(x, y)
		return v, RuleSimpson38, err
	default:
		v, err := Combined(x, y)
		return v, RuleCombined, err
	}
}

// simpson13 integrates y[lo..hi] with step h.
func simpson13(y []float64, lo, hi int, h float64) (float64, error) {
	n := hi - lo
	if n < 2 {
		return 0, ErrTooFewPoints
	}
	if n%2 != 0 {
		return 0, ErrOddIntervals
	}

	sum := y[lo] + y[hi]
	for i := lo + 1; i < hi; i += 2 {
		sum += 4 * y[i]
	}
	for i := lo + 2; i < hi; i += 2 {
		sum += 2 * y[i]
	}
	return h / 3.0 * sum, nil
}

func simpson38(y []float64, lo, hi int, h float64) (float64, error) {
	if hi-lo != 3 {
		return 0, ErrNotThreeIntervals
	}
	return 3 * h / 8.0 * (y[lo] + 3*y[lo+1] + 3*y[lo+2] + y[hi]), nil
}

func stepOf(x []float64, lo, hi int) float64 {
	return (x[hi] - x[lo]) / float64(hi-lo)
}
