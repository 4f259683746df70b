package diagram

// Point represents a 2D coordinate on a correlation chart
type Point struct {
	X float64
	Y float64
}

// Curve is one named series on a chart.
type Curve struct {
	Name   string
	Points []Point
}

// ChartData holds the curves and labels for a correlation chart.
type ChartData struct {
	Title  string
	XLabel string
	YLabel string
	Curves []Curve
}

// Sample evaluates fn at n+1 evenly spaced points over [from, to].
func Sample(fn func(float64) float64, from, to float64, n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, 0, n+1)
	step := (to - from) / float64(n)
	for i := 0; i <= n; i++ {
		x := from + float64(i)*step
		pts = append(pts, Point{X: x, Y: fn(x)})
	}
	return pts
}
