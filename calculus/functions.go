// Package calculus provides the function catalogue of the derivative visualization and
// the geometry built on it: sampled curves, tangent lines, secant lines and difference
// quotients.
package calculus

import (
	"fmt"
	"math"

	"github.com/arloliu/mathviz/errs"
)

// LogFloor is the smallest argument passed to the logarithm in the catalogue.
const LogFloor = 0.1

// Func is a real function of one variable.
type Func func(x float64) float64

// Function is a catalogue entry: a function together with its analytic derivative.
type Function struct {
	Name       string
	F          Func
	Derivative Func
}

// At returns f(x).
func (f Function) At(x float64) float64 {
	return f.F(x)
}

// Slope returns f'(x).
func (f Function) Slope(x float64) float64 {
	return f.Derivative(x)
}

// Point returns (x, f(x)).
func (f Function) Point(x float64) Point {
	return Point{X: x, Y: f.F(x)}
}

// String returns "f(x) = " followed by the function name.
func (f Function) String() string {
	return "f(x) = " + f.Name
}

var catalogue = []Function{
	{
		Name:       "x²",
		F:          func(x float64) float64 { return x * x },
		Derivative: func(x float64) float64 { return 2 * x },
	},
	{
		Name:       "x³",
		F:          func(x float64) float64 { return x * x * x },
		Derivative: func(x float64) float64 { return 3 * x * x },
	},
	{
		Name:       "sin(x)",
		F:          math.Sin,
		Derivative: math.Cos,
	},
	{
		Name:       "cos(x)",
		F:          math.Cos,
		Derivative: func(x float64) float64 { return -math.Sin(x) },
	},
	{
		Name:       "e^x",
		F:          math.Exp,
		Derivative: math.Exp,
	},
	{
		Name:       "ln(x)",
		F:          func(x float64) float64 { return math.Log(math.Max(LogFloor, x)) },
		Derivative: func(x float64) float64 { return 1 / math.Max(LogFloor, x) },
	},
}

// Count returns the number of catalogue entries.
func Count() int {
	return len(catalogue)
}

// Functions returns a copy of the catalogue in index order.
func Functions() []Function {
	out := make([]Function, len(catalogue))
	copy(out, catalogue)

	return out
}

// Lookup returns the catalogue entry at index.
func Lookup(index int) (Function, error) {
	if index < 0 || index >= len(catalogue) {
		return Function{}, fmt.Errorf("%w: index %d, have %d functions", errs.ErrUnknownFunction, index, len(catalogue))
	}

	return catalogue[index], nil
}
