package chart

import (
	"errors"
	"image/color"
)

var (
	ErrNonPositiveLog = errors.New("chart: log-scaled series needs strictly positive values")
	ErrEmptyFigure    = errors.New("chart: figure has no series")
	ErrFormat         = errors.New("chart: unsupported output format")
)

type Scale int

const (
	LinearScale Scale = iota
	LogScale
)

func (s Scale) String() string {
	if s == LogScale {
		return "log"
	}
	return "linear"
}

type Side int

const (
	Primary Side = iota
	Secondary
)

type Corner int

const (
	UpperRight Corner = iota
	UpperLeft
	LowerRight
	LowerLeft
)

type Marker int

const (
	NoMarker Marker = iota
	CircleMarker
)

type Axis struct {
	Label string
	Color color.RGBA
	Scale Scale
	// Ticks, when set, fixes tick positions instead of auto-scaling.
	Ticks []float64
}

type Series struct {
	Label  string
	X, Y   []float64
	Color  color.RGBA
	Dashed bool
	Marker Marker
	Side   Side
}

type LegendEntry struct {
	Label string
	Color color.RGBA
	Side  Side
}

type Legend struct {
	Entries  []LegendEntry
	Position Corner
}

// Figure is a dual-axis line chart. Sizes are in inches.
type Figure struct {
	Title  string
	Width  float64
	Height float64
	X      Axis
	Y      Axis
	Y2     Axis
	Series []Series
	Legend Legend
}

// On returns the series drawn against the given y axis, in draw order.
func (f *Figure) On(side Side) []Series {
	var out []Series
	for _, s := range f.Series {
		if s.Side == side {
			out = append(out, s)
		}
	}
	return out
}

// LegendLabels returns the legend labels in display order.
func (f *Figure) LegendLabels() []string {
	out := make([]string, len(f.Legend.Entries))
	for i, e := range f.Legend.Entries {
		out[i] = e.Label
	}
	return out
}

// AxisFor returns the y axis a series is drawn against.
func (f *Figure) AxisFor(side Side) Axis {
	if side == Secondary {
		return f.Y2
	}
	return f.Y
}

// Range returns the min and max of all series values on a side.
func (f *Figure) Range(side Side) (float64, float64) {
	first := true
	var lo, hi float64
	for _, s := range f.On(side) {
		for _, v := range s.Y {
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}

// XRange returns the span of the x axis, honouring fixed ticks.
func (f *Figure) XRange() (float64, float64) {
	first := true
	var lo, hi float64
	update := func(v float64) {
		if first {
			lo, hi = v, v
			first = false
			return
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	for _, v := range f.X.Ticks {
		update(v)
	}
	for _, s := range f.Series {
		for _, v := range s.X {
			update(v)
		}
	}
	return lo, hi
}
