package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Line colors cycled across curves on one chart.
var curveColors = []color.RGBA{
	{R: 0, G: 0, B: 139, A: 255},
	{R: 178, G: 34, B: 34, A: 255},
	{R: 0, G: 100, B: 0, A: 255},
	{R: 255, G: 140, B: 0, A: 255},
}

// ExportChart exports a correlation chart to an image file (png, svg
// or pdf, by extension; defaults to png).
func ExportChart(data ChartData, filename string) error {
	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = data.XLabel
	p.Y.Label.Text = data.YLabel
	p.Legend.Top = true
	p.Legend.Left = true

	for i, curve := range data.Curves {
		xys := make(plotter.XYs, len(curve.Points))
		for j, pt := range curve.Points {
			xys[j] = plotter.XY{X: pt.X, Y: pt.Y}
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = curveColors[i%len(curveColors)]
		p.Add(line)
		if curve.Name != "" {
			p.Legend.Add(curve.Name, line)
		}
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
