package quad

// Sample evaluates f on n equal intervals of [a, b] and returns the n+1
// abscissae and ordinates.
func Sample(f func(float64) float64, a, b float64, n int) ([]float64, []float64) {
	if n < 1 {
		return nil, nil
	}
	step := (b - a) / float64(n)
	x := make([]float64, n+1)
	y := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		t := a + float64(i)*step
		if i == n {
			t = b
		}
		x[i] = t
		y[i] = f(t)
	}
	return x, y
}
