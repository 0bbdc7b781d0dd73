package chart

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var gonumFormats = map[string]bool{
	"png": true, "svg": true, "pdf": true, "eps": true,
	"jpg": true, "jpeg": true, "tif": true, "tiff": true,
}

// Gonum renders with gonum/plot. gonum has no twin axes, so secondary series
// are drawn into the primary data area through a log-scaled overlay plot and
// the right-hand axis is drawn by hand.
type Gonum struct {
	format string
}

func NewGonum(format string) (*Gonum, error) {
	if format == "" {
		format = "png"
	}
	if !gonumFormats[format] {
		return nil, fmt.Errorf("%w: %s (gonum supports png, svg, pdf, eps, jpg, tiff)", ErrFormat, format)
	}
	return &Gonum{format: format}, nil
}

func (g *Gonum) Format() string { return g.format }

func (g *Gonum) Render(w io.Writer, fig *Figure) error {
	if len(fig.Series) == 0 {
		return ErrEmptyFigure
	}

	primary, secondary, err := g.Plots(fig)
	if err != nil {
		return err
	}

	cw, err := draw.NewFormattedCanvas(vg.Length(fig.Width)*vg.Inch, vg.Length(fig.Height)*vg.Inch, g.format)
	if err != nil {
		return err
	}
	dc := draw.New(cw)

	margin := rightAxisWidth(secondary, fig.Y2)
	left := draw.Crop(dc, 0, -margin, 0, 0)
	primary.Draw(left)

	data := primary.DataCanvas(left)
	for _, s := range fig.On(Secondary) {
		line, points, err := gonumSeries(s)
		if err != nil {
			return err
		}
		line.Plot(data, secondary)
		points.Plot(data, secondary)
	}
	drawRightAxis(data, secondary, fig.Y2)

	_, err = cw.WriteTo(w)
	return err
}

// Plots builds the primary plot, which carries the title, x axis and the
// merged legend, and the overlay plot holding the secondary axis range.
func (g *Gonum) Plots(fig *Figure) (*plot.Plot, *plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fig.Title
	p.X.Label.Text = fig.X.Label
	p.Y.Label.Text = fig.Y.Label
	p.Y.Label.TextStyle.Color = fig.Y.Color
	p.Y.Tick.Label.Color = fig.Y.Color
	p.Y.Tick.Color = fig.Y.Color

	if len(fig.X.Ticks) > 0 {
		ticks := make([]plot.Tick, len(fig.X.Ticks))
		for i, v := range fig.X.Ticks {
			ticks[i] = plot.Tick{Value: v, Label: formatTick(v)}
		}
		p.X.Tick.Marker = plot.ConstantTicks(ticks)
	}

	thumbs := make(map[string][]plot.Thumbnailer)
	for _, s := range fig.On(Primary) {
		line, points, err := gonumSeries(s)
		if err != nil {
			return nil, nil, err
		}
		p.Add(line, points)
		thumbs[s.Label] = []plot.Thumbnailer{line, points}
	}

	sec := plot.New()
	sec.Y.Scale = plot.LogScale{}
	sec.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	for _, s := range fig.On(Secondary) {
		line, points, err := gonumSeries(s)
		if err != nil {
			return nil, nil, err
		}
		sec.Add(line, points)
		thumbs[s.Label] = []plot.Thumbnailer{line, points}
	}

	xlo, xhi := fig.XRange()
	pad := (xhi - xlo) * 0.05
	p.X.Min, p.X.Max = xlo-pad, xhi+pad
	sec.X.Min, sec.X.Max = p.X.Min, p.X.Max

	lo, hi := fig.Range(Secondary)
	if ds := decades(lo, hi); len(ds) > 0 {
		sec.Y.Min, sec.Y.Max = ds[0], ds[len(ds)-1]
	}

	for _, e := range fig.Legend.Entries {
		p.Legend.Add(e.Label, thumbs[e.Label]...)
	}
	p.Legend.Top = fig.Legend.Position == UpperRight || fig.Legend.Position == UpperLeft
	p.Legend.Left = fig.Legend.Position == UpperLeft || fig.Legend.Position == LowerLeft

	return p, sec, nil
}

func gonumSeries(s Series) (*plotter.Line, *plotter.Scatter, error) {
	xys := make(plotter.XYs, len(s.X))
	for i := range s.X {
		xys[i].X = s.X[i]
		xys[i].Y = s.Y[i]
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, nil, fmt.Errorf("chart: series %q: %w", s.Label, err)
	}
	line.LineStyle.Color = s.Color
	line.LineStyle.Width = vg.Points(1.5)
	if s.Dashed {
		line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	}
	points.GlyphStyle.Color = s.Color
	points.GlyphStyle.Radius = vg.Points(3)
	if s.Marker == CircleMarker {
		points.GlyphStyle.Shape = draw.CircleGlyph{}
	} else {
		points.GlyphStyle.Radius = 0
	}
	return line, points, nil
}

const tickLength = 4

func rightAxisWidth(sec *plot.Plot, ax Axis) vg.Length {
	var widest vg.Length
	for _, t := range sec.Y.Tick.Marker.Ticks(sec.Y.Min, sec.Y.Max) {
		if t.Label == "" {
			continue
		}
		if w := sec.Y.Tick.Label.Width(t.Label); w > widest {
			widest = w
		}
	}
	return vg.Points(tickLength*2) + widest + sec.Y.Label.TextStyle.Height(ax.Label) + vg.Points(8)
}

// drawRightAxis draws the secondary axis line, ticks, labels and title along
// the right edge of the data canvas.
func drawRightAxis(data draw.Canvas, sec *plot.Plot, ax Axis) {
	line := draw.LineStyle{Color: ax.Color, Width: vg.Points(0.5)}
	x := data.Max.X
	data.StrokeLine2(line, x, data.Min.Y, x, data.Max.Y)

	_, ty := sec.Transforms(&data)

	tickStyle := sec.Y.Tick.Label
	tickStyle.Color = ax.Color
	tickStyle.XAlign = draw.XLeft
	tickStyle.YAlign = draw.YCenter

	var widest vg.Length
	for _, t := range sec.Y.Tick.Marker.Ticks(sec.Y.Min, sec.Y.Max) {
		y := ty(t.Value)
		if y < data.Min.Y || y > data.Max.Y {
			continue
		}
		length := vg.Points(tickLength)
		if t.IsMinor() {
			length /= 2
		}
		data.StrokeLine2(line, x, y, x+length, y)
		if t.Label == "" {
			continue
		}
		data.FillText(tickStyle, vg.Point{X: x + vg.Points(tickLength*2), Y: y}, t.Label)
		if w := tickStyle.Width(t.Label); w > widest {
			widest = w
		}
	}

	labelStyle := sec.Y.Label.TextStyle
	labelStyle.Color = ax.Color
	labelStyle.XAlign = draw.XCenter
	labelStyle.YAlign = draw.YTop
	mid := vg.Point{
		X: x + vg.Points(tickLength*2) + widest + vg.Points(4),
		Y: (data.Min.Y + data.Max.Y) / 2,
	}
	data.FillText(labelStyle, mid, ax.Label)
}
