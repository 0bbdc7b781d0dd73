// Package quad provides composite Newton-Cotes quadrature over sampled points.
//
// All rules take index-aligned abscissae and ordinates (x_i, y_i) with
// n = len(x)-1 intervals and a uniform step h = (x_n - x_0)/n:
//
//   - [Simpson13]: Simpson's 1/3 rule, even n
//   - [Simpson38]: Simpson's 3/8 rule, exactly three intervals
//   - [Combined]: 1/3 rule followed by a trailing 3/8 panel for odd n
//   - [Trapezoidal]: composite trapezoid, any n
//   - [Auto]: picks one of the Simpson rules from n
//
// [Richardson] estimates the error of a 1/3 result by halving the grid.
//
// # Example
//
//	x, y := quad.Sample(models.NewHeatTransfer().Eval, 0, 8, 32)
//	val, rule, _ := quad.Auto(x, y)
package quad
