// Package geom defines the 2-D point type shared by every mathviz component.
//
// A Point is used both as a DataPoint (an observation (x, y) in a dataset) and as a
// 2-vector (an eigenvector, a centered observation, a pixel coordinate). Points are
// values; datasets are ordered slices of points that callers must not mutate once stored.
package geom

import (
	"fmt"
	"math"
)

// Point is a pair of real numbers.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Norm returns the Euclidean length of p.
func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// Unit returns p scaled to unit length. The second result is false when p has
// zero or non-finite length, in which case p is returned unchanged.
func (p Point) Unit() (Point, bool) {
	n := p.Norm()
	if n == 0 || math.IsInf(n, 0) || math.IsNaN(n) {
		return p, false
	}

	return Point{X: p.X / n, Y: p.Y / n}, true
}

// Rotate90 returns p rotated counter-clockwise by 90°: (-y, x).
func (p Point) Rotate90() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Rotate returns p rotated counter-clockwise by rad radians.
func (p Point) Rotate(rad float64) Point {
	sin, cos := math.Sincos(rad)
	return Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return IsFinite(p.X) && IsFinite(p.Y)
}

// String returns "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Mean returns the centroid of points, or the origin for an empty slice.
func Mean(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}

	var sum Point
	for _, p := range points {
		sum.X += p.X
		sum.Y += p.Y
	}
	n := float64(len(points))

	return Point{X: sum.X / n, Y: sum.Y / n}
}

// Segment is a straight line between two points.
type Segment struct {
	From Point
	To   Point
}

// Slope returns the slope of the segment, or NaN for a vertical one.
func (s Segment) Slope() float64 {
	dx := s.To.X - s.From.X
	if dx == 0 {
		return math.NaN()
	}

	return (s.To.Y - s.From.Y) / dx
}
