package analytics

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RegressionLine fits an ordinary least squares line and returns its two
// endpoints at the smallest and largest x. Fewer than two samples or a zero
// x-variance yield an empty line.
func RegressionLine(points []Point) []Point {
	if len(points) < 2 {
		return []Point{}
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	minX, maxX := math.Inf(1), math.Inf(-1)
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
	}

	if minX == maxX {
		return []Point{}
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)

	return []Point{
		{X: minX, Y: intercept + slope*minX},
		{X: maxX, Y: intercept + slope*maxX},
	}
}
