package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// Terminal draws the figure as two stacked ASCII charts sharing the x axis:
// the primary series on top and the secondary series below, with log10
// values when the secondary axis is logarithmic.
type Terminal struct {
	Width  int
	Height int
	// Plain disables ANSI colors.
	Plain bool
}

func NewTerminal() *Terminal {
	return &Terminal{Width: 64, Height: 10}
}

func (t *Terminal) Render(w io.Writer, fig *Figure) error {
	if len(fig.Series) == 0 {
		return ErrEmptyFigure
	}
	_, err := io.WriteString(w, t.String(fig))
	return err
}

func (t *Terminal) String(fig *Figure) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render(fig.Title))
	b.WriteString("\n\n")

	if s := fig.On(Primary); len(s) > 0 {
		b.WriteString(t.panel(fig, fig.Y, s))
		b.WriteString("\n")
	}
	if s := fig.On(Secondary); len(s) > 0 {
		b.WriteString(t.panel(fig, fig.Y2, s))
		b.WriteString("\n")
	}
	b.WriteString(t.legend(fig.Legend))
	b.WriteString("\n")
	return b.String()
}

func (t *Terminal) panel(fig *Figure, ax Axis, series []Series) string {
	xlo, xhi := fig.XRange()
	width := t.Width
	if width < 8 {
		width = 8
	}

	data := make([][]float64, len(series))
	colors := make([]asciigraph.AnsiColor, len(series))
	for i, s := range series {
		ys := s.Y
		if ax.Scale == LogScale {
			ys = make([]float64, len(s.Y))
			for j, v := range s.Y {
				ys[j] = math.Log10(v)
			}
		}
		data[i] = resample(s.X, ys, xlo, xhi, width)
		colors[i] = ansiColor(s.Color)
	}

	caption := ax.Label
	if ax.Scale == LogScale {
		caption += " (log10)"
	}
	opts := []asciigraph.Option{
		asciigraph.Height(t.Height),
		asciigraph.Caption(caption),
		asciigraph.Precision(precisionFor(ax)),
	}
	if !t.Plain {
		opts = append(opts, asciigraph.SeriesColors(colors...))
	}

	graph := asciigraph.PlotMany(data, opts...)
	return graph + "\n" + xAxisLine(graph, fig.X.Ticks, xlo, xhi, width, fig.X.Label)
}

func (t *Terminal) legend(lg Legend) string {
	parts := make([]string, 0, len(lg.Entries))
	for _, e := range lg.Entries {
		mark := "─●─"
		if e.Side == Secondary {
			mark = "╌●╌"
		}
		entry := mark + " " + e.Label
		if !t.Plain {
			entry = lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(e.Color))).Render(entry)
		}
		parts = append(parts, entry)
	}
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return box.Render(strings.Join(parts, "\n"))
}

// resample evaluates the piecewise linear curve through (xs, ys) on n evenly
// spaced columns of [lo, hi] so that columns are proportional to x.
func resample(xs, ys []float64, lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if len(xs) == 0 {
		return out
	}
	if len(xs) == 1 || hi == lo {
		for i := range out {
			out[i] = ys[0]
		}
		return out
	}
	k := 0
	for i := 0; i < n; i++ {
		x := lo + float64(i)*(hi-lo)/float64(n-1)
		for k < len(xs)-2 && x > xs[k+1] {
			k++
		}
		x0, x1 := xs[k], xs[k+1]
		f := 0.0
		if x1 != x0 {
			f = (x - x0) / (x1 - x0)
		}
		f = math.Max(0, math.Min(1, f))
		out[i] = ys[k] + f*(ys[k+1]-ys[k])
	}
	return out
}

// xAxisLine places tick labels under the plot columns. The plot area starts
// after the y axis glyph on the first graph line.
func xAxisLine(graph string, ticks []float64, lo, hi float64, width int, label string) string {
	gutter := 0
	first := strings.SplitN(graph, "\n", 2)[0]
	for i, r := range []rune(first) {
		if r == '┤' || r == '┼' {
			gutter = i + 1
			break
		}
	}

	line := []rune(strings.Repeat(" ", gutter+width+8))
	for _, v := range ticks {
		col := 0
		if hi > lo {
			col = int(math.Round((v - lo) / (hi - lo) * float64(width-1)))
		}
		lbl := []rune(formatTick(v))
		start := gutter + col - len(lbl)/2
		if start < 0 {
			start = 0
		}
		for j, r := range lbl {
			if start+j < len(line) {
				line[start+j] = r
			}
		}
	}
	return strings.TrimRight(string(line), " ") + "\n" + strings.Repeat(" ", gutter) + label + "\n"
}

func precisionFor(ax Axis) uint {
	if ax.Scale == LogScale {
		return 1
	}
	return 4
}

func ansiColor(c color.RGBA) asciigraph.AnsiColor {
	switch {
	case c.B > c.R && c.B > c.G:
		return asciigraph.Blue
	case c.R > c.G && c.R > c.B:
		return asciigraph.Red
	case c.G > c.R && c.G > c.B:
		return asciigraph.Green
	}
	return asciigraph.Default
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
