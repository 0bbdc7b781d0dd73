package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const pixelsPerInch = 100

// GoChart renders with go-chart, which supports a secondary y axis natively.
type GoChart struct {
	provider gochart.RendererProvider
	format   string
}

func NewGoChart(format string) (*GoChart, error) {
	switch format {
	case "", "png":
		return &GoChart{provider: gochart.PNG, format: "png"}, nil
	case "svg":
		return &GoChart{provider: gochart.SVG, format: "svg"}, nil
	}
	return nil, fmt.Errorf("%w: %s (gochart supports png, svg)", ErrFormat, format)
}

func (g *GoChart) Format() string { return g.format }

func (g *GoChart) Render(w io.Writer, fig *Figure) error {
	c, err := g.Chart(fig)
	if err != nil {
		return err
	}
	return c.Render(g.provider, w)
}

// Chart converts a figure into a go-chart definition.
func (g *GoChart) Chart(fig *Figure) (*gochart.Chart, error) {
	if len(fig.Series) == 0 {
		return nil, ErrEmptyFigure
	}

	c := &gochart.Chart{
		Title:  fig.Title,
		Width:  int(fig.Width * pixelsPerInch),
		Height: int(fig.Height * pixelsPerInch),
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: gochart.XAxis{
			Name:  fig.X.Label,
			Ticks: fixedTicks(fig.X.Ticks),
		},
	}

	var err error
	if c.YAxis, err = goChartYAxis(fig, fig.Y, Primary); err != nil {
		return nil, err
	}
	if c.YAxisSecondary, err = goChartYAxis(fig, fig.Y2, Secondary); err != nil {
		return nil, err
	}

	for _, s := range fig.Series {
		style := gochart.Style{
			StrokeColor: drawColor(s.Color),
			StrokeWidth: 2,
		}
		if s.Dashed {
			style.StrokeDashArray = []float64{6, 4}
		}
		if s.Marker == CircleMarker {
			style.DotColor = drawColor(s.Color)
			style.DotWidth = 4
		}
		cs := gochart.ContinuousSeries{
			Name:    s.Label,
			Style:   style,
			XValues: s.X,
			YValues: s.Y,
		}
		if s.Side == Secondary {
			cs.YAxis = gochart.YAxisSecondary
		}
		c.Series = append(c.Series, cs)
	}

	c.Elements = []gochart.Renderable{legendRenderable(fig.Legend)}
	return c, nil
}

// goChartYAxis builds one y axis. Log axes carry their decade ticks in the
// range rather than in YAxis.Ticks, which go-chart also reads to size the
// secondary range.
func goChartYAxis(fig *Figure, ax Axis, side Side) (gochart.YAxis, error) {
	y := gochart.YAxis{
		Name:      ax.Label,
		NameStyle: gochart.Style{FontColor: drawColor(ax.Color)},
		Style:     gochart.Style{FontColor: drawColor(ax.Color)},
	}
	if ax.Scale == LogScale {
		lo, hi := fig.Range(side)
		ticks := decades(lo, hi)
		if len(ticks) == 0 {
			return y, fmt.Errorf("%w: %s axis range [%g, %g]", ErrNonPositiveLog, ax.Label, lo, hi)
		}
		y.Range = &LogRange{Min: ticks[0], Max: ticks[len(ticks)-1]}
		return y, nil
	}
	y.ValueFormatter = func(v interface{}) string {
		if f, ok := v.(float64); ok {
			return fmt.Sprintf("%.3f", f)
		}
		return ""
	}
	return y, nil
}

func fixedTicks(values []float64) []gochart.Tick {
	if len(values) == 0 {
		return nil
	}
	ticks := make([]gochart.Tick, len(values))
	for i, v := range values {
		ticks[i] = gochart.Tick{Value: v, Label: formatTick(v)}
	}
	return ticks
}

func drawColor(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// legendRenderable draws one legend box for every series, primary axis first,
// in the requested corner of the plot area.
func legendRenderable(lg Legend) gochart.Renderable {
	return func(r gochart.Renderer, cb gochart.Box, defaults gochart.Style) {
		if len(lg.Entries) == 0 {
			return
		}
		style := gochart.Style{
			FillColor:   drawing.ColorWhite,
			FontColor:   gochart.DefaultTextColor,
			FontSize:    8.0,
			StrokeColor: gochart.DefaultAxisColor,
			StrokeWidth: gochart.DefaultAxisLineWidth,
		}.InheritFrom(defaults)

		const (
			pad     = 6
			swatch  = 20
			spacing = 4
			inset   = 8
			lineGap = 6
		)

		style.GetTextOptions().WriteToRenderer(r)
		textW, textH := 0, 0
		for _, e := range lg.Entries {
			tb := r.MeasureText(e.Label)
			if tb.Width() > textW {
				textW = tb.Width()
			}
			if tb.Height() > textH {
				textH = tb.Height()
			}
		}

		rowH := textH + lineGap
		boxW := pad*2 + swatch + spacing + textW
		boxH := pad*2 + rowH*len(lg.Entries) - lineGap

		var left, top int
		switch lg.Position {
		case UpperLeft:
			left, top = cb.Left+inset, cb.Top+inset
		case LowerRight:
			left, top = cb.Right-inset-boxW, cb.Bottom-inset-boxH
		case LowerLeft:
			left, top = cb.Left+inset, cb.Bottom-inset-boxH
		default:
			left, top = cb.Right-inset-boxW, cb.Top+inset
		}
		box := gochart.Box{Top: top, Left: left, Right: left + boxW, Bottom: top + boxH}
		gochart.Draw.Box(r, box, style)

		for i, e := range lg.Entries {
			y := top + pad + i*rowH + textH
			mid := y - textH/2

			line := gochart.Style{StrokeColor: drawColor(e.Color), StrokeWidth: 2}
			if e.Side == Secondary {
				line.StrokeDashArray = []float64{4, 3}
			}
			line.GetStrokeOptions().WriteDrawingOptionsToRenderer(r)
			r.MoveTo(left+pad, mid)
			r.LineTo(left+pad+swatch, mid)
			r.Stroke()

			dot := gochart.Style{FillColor: drawColor(e.Color), StrokeColor: drawColor(e.Color), StrokeWidth: 1}
			dot.GetFillAndStrokeOptions().WriteDrawingOptionsToRenderer(r)
			r.Circle(3, left+pad+swatch/2, mid)
			r.FillStroke()

			style.GetTextOptions().WriteToRenderer(r)
			r.Text(e.Label, left+pad+swatch+spacing, y)
		}
	}
}

var (
	_ gochart.Range         = (*LogRange)(nil)
	_ gochart.TicksProvider = (*LogRange)(nil)
)

// LogRange maps values onto pixels by their base-10 logarithm.
type LogRange struct {
	Min    float64
	Max    float64
	Domain int
}

func (r *LogRange) IsZero() bool {
	return (r.Min == 0 || math.IsNaN(r.Min)) && (r.Max == 0 || math.IsNaN(r.Max)) && r.Domain == 0
}

func (r *LogRange) GetMin() float64      { return r.Min }
func (r *LogRange) SetMin(min float64)   { r.Min = min }
func (r *LogRange) GetMax() float64      { return r.Max }
func (r *LogRange) SetMax(max float64)   { r.Max = max }
func (r *LogRange) GetDomain() int       { return r.Domain }
func (r *LogRange) SetDomain(domain int) { r.Domain = domain }
func (r *LogRange) IsDescending() bool   { return false }

func (r *LogRange) GetDelta() float64 {
	return r.Max - r.Min
}

func (r *LogRange) String() string {
	return fmt.Sprintf("LogRange [%.2g,%.2g] => %d", r.Min, r.Max, r.Domain)
}

// GetTicks returns one tick per decade of the range.
func (r *LogRange) GetTicks(_ gochart.Renderer, _ gochart.Style, _ gochart.ValueFormatter) []gochart.Tick {
	values := decades(r.Min, r.Max)
	ticks := make([]gochart.Tick, len(values))
	for i, v := range values {
		ticks[i] = gochart.Tick{Value: v, Label: formatDecade(v)}
	}
	return ticks
}

func (r *LogRange) Translate(value float64) int {
	if value <= 0 || r.Min <= 0 || r.Max <= r.Min {
		return 0
	}
	lo, hi := math.Log10(r.Min), math.Log10(r.Max)
	ratio := (math.Log10(value) - lo) / (hi - lo)
	return int(math.Ceil(ratio * float64(r.Domain)))
}
