package chart

import (
	"fmt"
	"image/color"

	"github.com/san-kum/simpson/internal/dataset"
)

const (
	Title        = "Visualisasi Hasil Simpson dan Error"
	XLabel       = "Interval (n)"
	ResultLabel  = "Simpson's Result"
	ErrorLabel   = "Error"
	AbsoluteName = "Error Absolut"
	RelativeName = "Error Relatif (%)"

	DefaultWidth  = 8.0
	DefaultHeight = 5.0
)

var (
	Blue  = color.RGBA{R: 0x1f, G: 0x3f, B: 0xd8, A: 0xff}
	Red   = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	Green = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
)

// Build lays out the convergence chart for tbl. It does not draw anything and
// returns a new figure on every call.
func Build(tbl dataset.Table) (*Figure, error) {
	if err := tbl.Validate(); err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}

	x := tbl.IntervalsFloat()
	abs := tbl.AbsErrors()
	rel := tbl.RelErrors()
	for i := range abs {
		if abs[i] <= 0 || rel[i] <= 0 {
			return nil, fmt.Errorf("%w: row %d (abs=%g, rel=%g)", ErrNonPositiveLog, i, abs[i], rel[i])
		}
	}

	ticks := make([]float64, len(x))
	copy(ticks, x)

	fig := &Figure{
		Title:  Title,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		X:      Axis{Label: XLabel, Scale: LinearScale, Ticks: ticks},
		Y:      Axis{Label: ResultLabel, Color: Blue, Scale: LinearScale},
		Y2:     Axis{Label: ErrorLabel, Color: Red, Scale: LogScale},
		Series: []Series{
			{Label: ResultLabel, X: x, Y: tbl.Results(), Color: Blue, Marker: CircleMarker, Side: Primary},
			{Label: AbsoluteName, X: cloneFloats(x), Y: abs, Color: Red, Dashed: true, Marker: CircleMarker, Side: Secondary},
			{Label: RelativeName, X: cloneFloats(x), Y: rel, Color: Green, Dashed: true, Marker: CircleMarker, Side: Secondary},
		},
	}
	fig.Legend = mergeLegends(fig)
	return fig, nil
}

// mergeLegends lists primary entries before secondary ones so one legend
// covers both axes.
func mergeLegends(fig *Figure) Legend {
	lg := Legend{Position: UpperRight}
	for _, side := range []Side{Primary, Secondary} {
		for _, s := range fig.On(side) {
			lg.Entries = append(lg.Entries, LegendEntry{Label: s.Label, Color: s.Color, Side: side})
		}
	}
	return lg
}

func cloneFloats(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
