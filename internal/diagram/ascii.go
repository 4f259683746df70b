package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// RenderASCII renders the chart curves for terminal output. Curves are
// resampled onto a shared column grid since the terminal plot is
// index-based.
func RenderASCII(data ChartData, width, height int) string {
	if width <= 0 {
		width = 70
	}
	if height <= 0 {
		height = 15
	}

	series := make([][]float64, 0, len(data.Curves))
	names := make([]string, 0, len(data.Curves))
	for _, curve := range data.Curves {
		if len(curve.Points) == 0 {
			continue
		}
		series = append(series, resample(curve.Points, width))
		names = append(names, curve.Name)
	}
	if len(series) == 0 {
		return ""
	}

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(data.Title),
	)

	var b strings.Builder
	b.WriteString(graph)
	b.WriteString("\n")
	if len(data.Curves) > 0 {
		first := data.Curves[0].Points
		b.WriteString(fmt.Sprintf("  x: %s from %.4g to %.4g\n",
			data.XLabel, first[0].X, first[len(first)-1].X))
	}
	for _, name := range names {
		if name != "" {
			b.WriteString(fmt.Sprintf("  series: %s\n", name))
		}
	}
	return b.String()
}

// resample interpolates the curve's Y values onto n evenly spaced
// columns across its X range.
func resample(pts []Point, n int) []float64 {
	out := make([]float64, n)
	if len(pts) == 1 {
		for i := range out {
			out[i] = pts[0].Y
		}
		return out
	}

	x0, x1 := pts[0].X, pts[len(pts)-1].X
	j := 0
	for i := 0; i < n; i++ {
		x := x0 + (x1-x0)*float64(i)/float64(n-1)
		for j < len(pts)-2 && pts[j+1].X < x {
			j++
		}
		a, b := pts[j], pts[j+1]
		if b.X == a.X {
			out[i] = a.Y
			continue
		}
		t := (x - a.X) / (b.X - a.X)
		out[i] = a.Y + t*(b.Y-a.Y)
	}
	return out
}
