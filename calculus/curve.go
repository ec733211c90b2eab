package calculus

import (
	"fmt"

	"github.com/arloliu/mathviz/errs"
	"github.com/arloliu/mathviz/geom"
	"github.com/arloliu/mathviz/viewport"
)

const (
	// DefaultSteps is the number of intervals a plotted curve is sampled with.
	DefaultSteps = 200
	// FitSamples is the number of intervals sampled when fitting the Y range.
	FitSamples = 100
	// DefaultDeltaX is the initial secant step.
	DefaultDeltaX = 0.5
)

// Domain is the X range of the derivative visualization.
var Domain = viewport.Range{Min: -5, Max: 5}

// Point is a point on a curve.
type Point = geom.Point

// Sample evaluates fn at steps+1 evenly spaced X values across r and returns the finite
// results in order. Samples where fn is NaN or infinite are dropped. Non-positive steps
// sample only r.Min.
func Sample(fn Func, r viewport.Range, steps int) []Point {
	steps = max(steps, 0)
	points := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		x := r.Min
		if steps > 0 {
			x = r.Min + float64(i)*(r.Max-r.Min)/float64(steps)
		}
		p := Point{X: x, Y: fn(x)}
		if p.IsFinite() {
			points = append(points, p)
		}
	}

	return points
}

// FitY returns the Y range of f over r with the default margin. When withDerivative is
// set the derivative is included, so that both curves fit the same axis.
func FitY(f Function, r viewport.Range, withDerivative bool) viewport.Range {
	samples := Sample(f.F, r, FitSamples)
	if withDerivative {
		samples = append(samples, Sample(f.Derivative, r, FitSamples)...)
	}

	return viewport.FitYRange(samples)
}

// Tangent returns the tangent line of f at x, spanning r.
func Tangent(f Function, x float64, r viewport.Range) geom.Segment {
	y := f.At(x)
	m := f.Slope(x)

	return geom.Segment{
		From: Point{X: r.Min, Y: y - m*(x-r.Min)},
		To:   Point{X: r.Max, Y: y + m*(r.Max-x)},
	}
}

// Secants returns the secant lines from (x, f(x)) to x+dx and to x-dx.
func Secants(f Function, x, dx float64) (forward, backward geom.Segment, err error) {
	if err := validateDeltaX(dx); err != nil {
		return geom.Segment{}, geom.Segment{}, err
	}

	p := f.Point(x)

	return geom.Segment{From: p, To: f.Point(x + dx)}, geom.Segment{From: p, To: f.Point(x - dx)}, nil
}

// Quotients holds the difference quotients of a function at a point alongside the exact
// derivative they approximate.
type Quotients struct {
	DeltaX   float64
	Forward  float64 // (f(x+h) - f(x)) / h
	Backward float64 // (f(x) - f(x-h)) / h
	Central  float64 // (f(x+h) - f(x-h)) / 2h
	Exact    float64 // f'(x)
}

// DifferenceQuotients returns the forward, backward and central quotients of f at x
// with step dx.
func DifferenceQuotients(f Function, x, dx float64) (Quotients, error) {
	if err := validateDeltaX(dx); err != nil {
		return Quotients{}, err
	}

	fx, fp, fm := f.At(x), f.At(x+dx), f.At(x-dx)

	return Quotients{
		DeltaX:   dx,
		Forward:  (fp - fx) / dx,
		Backward: (fx - fm) / dx,
		Central:  (fp - fm) / (2 * dx),
		Exact:    f.Slope(x),
	}, nil
}

// String returns Δx and the four slope estimates.
func (q Quotients) String() string {
	return fmt.Sprintf("h=%.2f forward=%.4f backward=%.4f central=%.4f exact=%.4f",
		q.DeltaX, q.Forward, q.Backward, q.Central, q.Exact)
}

func validateDeltaX(dx float64) error {
	if !(dx > 0) || !geom.IsFinite(dx) {
		return fmt.Errorf("%w: got %g", errs.ErrInvalidDeltaX, dx)
	}

	return nil
}
