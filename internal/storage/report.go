package storage

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/san-kum/simpson/internal/experiment"
)

// WriteReport writes the plain text integration report.
func WriteReport(w io.Writer, x, y []float64, res *experiment.Result) error {
	if _, err := fmt.Fprintf(w, "Simpson's Rule Integration Results\n"+
		"==================================\n"+
		"Method: %s\n"+
		"Number of intervals: %d\n"+
		"Integration result: %.6f\n", res.Rule.Title(), res.Intervals, res.Value); err != nil {
		return err
	}
	if res.HasExact {
		if _, err := fmt.Fprintf(w, "Exact solution: %.6f\nAbsolute error: %.6f\nRelative error: %.6f%%\n",
			res.Exact, res.AbsError, res.RelError); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprint(w, "\nData points:\n"); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "x\tf(x)")
	for i := range x {
		fmt.Fprintf(tw, "%.6f\t%.6f\n", x[i], y[i])
	}
	return tw.Flush()
}
