package regression

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/mathviz/geom"
)

// OptimalityTolerance is the per-coefficient tolerance under which two linear models are
// considered equal for the optimality check.
const OptimalityTolerance = 0.01

// Estimator predicts y for a given x.
type Estimator interface {
	// Estimate returns the predicted y at x.
	Estimate(x float64) float64
	// Coefficients returns the model coefficients.
	Coefficients() []float64
}

// LinearModel is the line y = Slope·x + Intercept.
type LinearModel struct {
	Slope     float64
	Intercept float64
}

var _ Estimator = LinearModel{}

// Estimate returns Slope·x + Intercept.
func (m LinearModel) Estimate(x float64) float64 {
	return m.Slope*x + m.Intercept
}

// Coefficients returns [intercept, slope].
func (m LinearModel) Coefficients() []float64 {
	return []float64{m.Intercept, m.Slope}
}

// ApproxEqual reports whether both coefficients of m and o differ by less than tol.
func (m LinearModel) ApproxEqual(o LinearModel, tol float64) bool {
	return math.Abs(m.Slope-o.Slope) < tol && math.Abs(m.Intercept-o.Intercept) < tol
}

// Line returns the segment of the model between x0 and x1.
func (m LinearModel) Line(x0, x1 float64) geom.Segment {
	return geom.Segment{
		From: geom.Point{X: x0, Y: m.Estimate(x0)},
		To:   geom.Point{X: x1, Y: m.Estimate(x1)},
	}
}

// String returns the model as "y = 0.98x + 3.46".
func (m LinearModel) String() string {
	if m.Intercept < 0 {
		return fmt.Sprintf("y = %.2fx - %.2f", m.Slope, -m.Intercept)
	}

	return fmt.Sprintf("y = %.2fx + %.2f", m.Slope, m.Intercept)
}

// Residual is the vertical error of one data point against a model.
type Residual struct {
	X            float64
	Y            float64
	PredictedY   float64
	Error        float64 // Y - PredictedY
	SquaredError float64
}

// Summary describes how well one model explains a dataset.
type Summary struct {
	// Model is the evaluated line.
	Model LinearModel
	// Residuals holds one residual per data point, in dataset order.
	Residuals []Residual
	// SSE is the sum of squared errors.
	SSE float64
	// MSE is SSE divided by the number of points (0 for an empty dataset).
	MSE float64
	// RMSE is the square root of MSE.
	RMSE float64
	// RSquared is the coefficient of determination; 0 when y has no variance.
	RSquared float64
}

// String returns a short description of the summary.
func (s Summary) String() string {
	return fmt.Sprintf("Summary{Model: %s, SSE: %.4f, MSE: %.4f, R²: %.4f}", s.Model, s.SSE, s.MSE, s.RSquared)
}

// Clone returns a copy of s that shares no memory with it.
func (s Summary) Clone() Summary {
	s.Residuals = slices.Clone(s.Residuals)
	return s
}

// FitResult is the least-squares solution together with the means it was derived from.
type FitResult struct {
	Model LinearModel
	MeanX float64
	MeanY float64
}

// Result compares a user-chosen model against the least-squares optimum.
type Result struct {
	// Current is the summary of the user-chosen model.
	Current Summary
	// Optimal is the summary of the least-squares model.
	Optimal Summary
	// MeanX and MeanY are the dataset means.
	MeanX float64
	MeanY float64
	// IsOptimal reports whether Current.Model is within OptimalityTolerance of Optimal.Model.
	IsOptimal bool
}

// Clone returns a deep copy of r, or nil when r is nil.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	c := *r
	c.Current = r.Current.Clone()
	c.Optimal = r.Optimal.Clone()

	return &c
}

// String returns a short description of the result.
func (r *Result) String() string {
	return fmt.Sprintf("Result{Current: %s, Optimal: %s, IsOptimal: %t}", r.Current.Model, r.Optimal.Model, r.IsOptimal)
}
