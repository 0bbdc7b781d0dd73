package quad

import "math"

// Richardson estimates the error of a 1/3-rule result by integrating every
// second sample again and returning |I_half - I| / 15.
func Richardson(x, y []float64, result float64) (float64, error) {
	if err := check(x, y); err != nil {
		return 0, err
	}
	n := len(x) - 1
	if n < 4 || n%2 != 0 || (n/2)%2 != 0 {
		return 0, ErrRichardsonUnavailable
	}

	xh := make([]float64, 0, n/2+1)
	yh := make([]float64, 0, n/2+1)
	for i := 0; i <= n; i += 2 {
		xh = append(xh, x[i])
		yh = append(yh, y[i])
	}

	half, err := Simpson13(xh, yh)
	if err != nil {
		return 0, err
	}
	return math.Abs(half-result) / 15.0, nil
}

// EstimationAccuracy compares an estimated error with the actual one, in
// percent. 100 means a perfect estimate.
func EstimationAccuracy(estimated, actual float64) float64 {
	if actual == 0 {
		return math.NaN()
	}
	return (1 - math.Abs(estimated-actual)/actual) * 100
}
