// Package dataset holds convergence tables: index-aligned interval counts,
// integral estimates, absolute errors and relative errors (percent).
//
// [Published] is the reference table the default chart is drawn from. It is a
// constant, copied on every call, and never loaded from disk.
package dataset
