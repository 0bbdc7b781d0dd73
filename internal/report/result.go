package report

import (
	"fmt"
	"strings"

	"github.com/san-kum/simpson/internal/experiment"
)

// Result renders an integration result with its error analysis.
func Result(res *experiment.Result) string {
	var b strings.Builder

	line := func(name, value string) {
		fmt.Fprintf(&b, "%s %s\n", Label.Render(fmt.Sprintf("%-22s", name)), value)
	}

	line("method", Value.Render(res.Rule.Title()))
	line("intervals", Value.Render(fmt.Sprintf("%d", res.Intervals)))
	line("step size", Value.Render(fmt.Sprintf("%.6f", res.Step)))
	line("integration result", Value.Render(fmt.Sprintf("%.6f", res.Value)))
	line("computation time", Value.Render(res.Elapsed.String()))

	if res.HasExact {
		b.WriteString("\n")
		line("exact solution", Value.Render(fmt.Sprintf("%.6f", res.Exact)))
		line("absolute error", Value.Render(fmt.Sprintf("%.6f", res.AbsError)))
		line("relative error", Value.Render(fmt.Sprintf("%.6f%%", res.RelError)))
	}
	if res.HasEstimate {
		line("estimated error", Value.Render(fmt.Sprintf("%.6e", res.Estimated)))
		if res.HasExact && res.AbsError > 0 {
			line("estimation accuracy", Value.Render(fmt.Sprintf("%.1f%%", res.Accuracy)))
		}
	}

	return Panel.Render(strings.TrimRight(b.String(), "\n"))
}

// Points renders the data points, eliding the middle of long inputs.
func Points(x, y []float64, limit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", Header.Render(fmt.Sprintf("%4s  %12s  %12s", "i", "x", "f(x)")))

	skipFrom, skipTo := len(x), len(x)
	if limit > 0 && len(x) > limit {
		skipFrom = limit / 2
		skipTo = len(x) - (limit - skipFrom)
	}
	for i := range x {
		if i == skipFrom && skipFrom < skipTo {
			fmt.Fprintf(&b, "%s\n", Subtle.Render(fmt.Sprintf("  ... %d more", skipTo-skipFrom)))
		}
		if i >= skipFrom && i < skipTo {
			continue
		}
		fmt.Fprintf(&b, " %4d  %12.6f  %12.6f\n", i, x[i], y[i])
	}
	return b.String()
}
