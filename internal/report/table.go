package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/san-kum/simpson/internal/dataset"
)

// Table renders a convergence table with the published column headers.
func Table(title string, tbl dataset.Table) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(Subtle).
		Headers("n", "Simpson's Result", "Error Absolut", "Error Relatif (%)").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return Header
			}
			switch col {
			case 1:
				return Cell.Foreground(ResultColor)
			case 2:
				return Cell.Foreground(AbsColor)
			case 3:
				return Cell.Foreground(RelColor)
			}
			return Cell
		})

	for _, r := range tbl.Rows {
		t.Row(
			strconv.Itoa(r.Intervals),
			fmt.Sprintf("%.6f", r.Result),
			fmt.Sprintf("%.6f", r.AbsError),
			fmt.Sprintf("%.6f", r.RelError),
		)
	}

	var b strings.Builder
	if title != "" {
		b.WriteString(Title.Render(title))
		b.WriteString("\n")
	}
	b.WriteString(t.Render())
	return b.String()
}

// Checks renders the convergence properties of tbl. exact may be NaN when
// the reference value is unknown, in which case the last row is used.
func Checks(tbl dataset.Table, exact float64) string {
	var b strings.Builder

	line := func(name, value string) {
		fmt.Fprintf(&b, "%s %s\n", Label.Render(fmt.Sprintf("%-24s", name)), value)
	}

	if err := tbl.Validate(); err != nil {
		line("valid", check(false)+" "+Fail.Render(strings.TrimSpace(err.Error())))
		return b.String()
	}
	line("valid", check(true))

	if !math.IsNaN(exact) {
		line("converges to exact", check(tbl.Converges(exact)))
	}
	line("converges to limit", check(tbl.ConvergesToLimit()))
	line("errors decreasing", check(tbl.ErrorsDecreasing()))

	if limit, err := tbl.Limit(); err == nil {
		line("limit", Value.Render(fmt.Sprintf("%.6f", limit)))
	}
	if p, err := tbl.ObservedOrder(); err == nil {
		line("observed order", Value.Render(fmt.Sprintf("%.2f", p)))
	}
	line("abs error trend", Sparkline(tbl.AbsErrors(), true))
	return b.String()
}
