package tally

import "math"

// Point represents a 2D point in data space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	d := p.Sub(q)
	return math.Hypot(d.X, d.Y)
}

// Equal reports whether two points are within epsilon of each other.
func (p Point) Equal(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) <= epsilon && math.Abs(p.Y-q.Y) <= epsilon
}

// OnCircle returns the point at angle t (radians, counter-clockwise from
// the positive X axis) on the circle of the given radius around p.
func (p Point) OnCircle(radius, t float64) Point {
	return Point{
		X: p.X + radius*math.Cos(t),
		Y: p.Y + radius*math.Sin(t),
	}
}
