// Package chart builds and renders the dual-axis convergence chart.
//
// [Build] turns a [dataset.Table] into a backend-independent [Figure]: one
// series on the primary (linear) axis, two on a logarithmic secondary axis
// sharing the same x axis, and a single legend merging both axes.
//
// A [Renderer] draws a Figure:
//
//   - [GoChart]: PNG or SVG through go-chart, native secondary axis
//   - [Gonum]: PNG, SVG or PDF through gonum/plot, overlay secondary axis
//   - [Terminal]: ASCII charts for a terminal
//
// # Example
//
//	fig, _ := chart.Build(dataset.Published())
//	_ = chart.NewGoChart("png").Render(f, fig)
package chart
