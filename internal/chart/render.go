package chart

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

// Renderer draws a figure to w in its own output format.
type Renderer interface {
	Render(w io.Writer, fig *Figure) error
}

func BackendNames() []string {
	return []string{"gochart", "gonum", "terminal"}
}

// NewRenderer returns the renderer for a backend name. format is ignored by
// the terminal backend.
func NewRenderer(backend, format string) (Renderer, error) {
	switch backend {
	case "", "gochart":
		return NewGoChart(format)
	case "gonum":
		return NewGonum(format)
	case "terminal":
		return NewTerminal(), nil
	}
	return nil, fmt.Errorf("chart: unknown backend: %s (available: %v)", backend, BackendNames())
}

// FormatFromPath derives the output format from a file extension, defaulting
// to png.
func FormatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "png"
	}
	return ext
}

// decades returns the powers of ten enclosing [lo, hi].
func decades(lo, hi float64) []float64 {
	if lo <= 0 || hi <= 0 {
		return nil
	}
	first := math.Floor(math.Log10(lo))
	last := math.Ceil(math.Log10(hi))
	if last == first {
		last++
	}
	out := make([]float64, 0, int(last-first)+1)
	for e := int(first); e <= int(last); e++ {
		// parsed rather than math.Pow so values equal their literals
		v, _ := strconv.ParseFloat(fmt.Sprintf("1e%d", e), 64)
		out = append(out, v)
	}
	return out
}

func formatTick(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e6 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func formatDecade(v float64) string {
	return fmt.Sprintf("1e%d", int(math.Round(math.Log10(v))))
}
