package pca

import (
	"fmt"
	"math"

	"github.com/arloliu/mathviz/geom"
)

// Covariance is a symmetric 2×2 covariance matrix. YX always equals XY.
type Covariance struct {
	XX float64
	XY float64
	YX float64
	YY float64
}

// Identity is the covariance used when there are too few points to estimate one.
var Identity = Covariance{XX: 1, YY: 1}

// CovarianceOf returns the sample covariance (divisor n-1) of already centered points.
// With fewer than two points it returns Identity.
func CovarianceOf(centered []geom.Point) Covariance {
	n := len(centered)
	if n < 2 {
		return Identity
	}

	var c Covariance
	for _, p := range centered {
		c.XX += p.X * p.X
		c.XY += p.X * p.Y
		c.YY += p.Y * p.Y
	}
	d := float64(n - 1)
	c.XX /= d
	c.XY /= d
	c.YY /= d
	c.YX = c.XY

	return c
}

// Trace returns XX + YY, the total variance.
func (c Covariance) Trace() float64 {
	return c.XX + c.YY
}

// Det returns the determinant XX·YY - XY·YX.
func (c Covariance) Det() float64 {
	return c.XX*c.YY - c.XY*c.YX
}

// Apply returns the matrix-vector product c·v.
func (c Covariance) Apply(v geom.Point) geom.Point {
	return geom.Point{X: c.XX*v.X + c.XY*v.Y, Y: c.YX*v.X + c.YY*v.Y}
}

// Eigen returns the two eigenpairs of c ordered by descending eigenvalue. The eigenvectors
// are unit length and the second is the 90° rotation of the first.
func (c Covariance) Eigen() [2]EigenPair {
	trace := c.Trace()
	disc := trace*trace - 4*c.Det()
	// Algebraically non-negative for a symmetric matrix; rounding may push it below zero.
	if disc < 0 {
		disc = 0
	}
	root := math.Sqrt(disc)
	l1 := (trace + root) / 2
	l2 := (trace - root) / 2

	v1 := c.dominantVector(l1)

	return [2]EigenPair{
		{Value: l1, Vector: v1},
		{Value: l2, Vector: v1.Rotate90()},
	}
}

func (c Covariance) dominantVector(l1 float64) geom.Point {
	if c.XY != 0 {
		if v, ok := (geom.Point{X: c.XY, Y: l1 - c.XX}).Unit(); ok {
			return v
		}
	}
	if c.YY > c.XX {
		return geom.Point{X: 0, Y: 1}
	}

	return geom.Point{X: 1, Y: 0}
}

// String returns the matrix as "[[xx xy] [yx yy]]".
func (c Covariance) String() string {
	return fmt.Sprintf("[[%.4f %.4f] [%.4f %.4f]]", c.XX, c.XY, c.YX, c.YY)
}

// EigenPair is an eigenvalue together with its unit eigenvector.
type EigenPair struct {
	Value  float64
	Vector geom.Point
}
