package regression

import (
	"math"

	"github.com/arloliu/mathviz/geom"
)

// Fit returns the least-squares line through points.
//
// An empty dataset yields the zero model. When all x values are equal the slope is 0 and the
// line passes through the mean of y.
//
// Parameters:
//   - points: Dataset to fit; non-finite points are not filtered
//
// Returns:
//   - FitResult: Least-squares model together with the means of x and y
//
// Example:
//
//	fit := regression.Fit([]geom.Point{geom.Pt(0, 1), geom.Pt(1, 3), geom.Pt(2, 5)})
//	fmt.Println(fit.Model) // y = 2.00x + 1.00
func Fit(points []geom.Point) FitResult {
	n := len(points)
	if n == 0 {
		return FitResult{}
	}

	mean := geom.Mean(points)

	var num, den float64
	for _, p := range points {
		dx := p.X - mean.X
		num += dx * (p.Y - mean.Y)
		den += dx * dx
	}

	slope := 0.0
	if den != 0 {
		slope = num / den
	}

	return FitResult{
		Model: LinearModel{Slope: slope, Intercept: mean.Y - slope*mean.X},
		MeanX: mean.X,
		MeanY: mean.Y,
	}
}

// Analyze evaluates current against the least-squares line for points.
//
// Both models are summarized over the same dataset, so Current.SSE >= Optimal.SSE always
// holds up to rounding.
//
// Parameters:
//   - points: Dataset both models are evaluated on
//   - current: User-chosen model
//
// Returns:
//   - *Result: Summaries of both models, the dataset means and the optimality flag
func Analyze(points []geom.Point, current LinearModel) *Result {
	fit := Fit(points)

	return &Result{
		Current:   Summarize(points, current),
		Optimal:   Summarize(points, fit.Model),
		MeanX:     fit.MeanX,
		MeanY:     fit.MeanY,
		IsOptimal: IsOptimal(current, fit.Model),
	}
}

// IsOptimal reports whether current is within OptimalityTolerance of optimal on both
// coefficients.
func IsOptimal(current, optimal LinearModel) bool {
	return current.ApproxEqual(optimal, OptimalityTolerance)
}

// Summarize computes residuals and error statistics of model over points.
func Summarize(points []geom.Point, model LinearModel) Summary {
	residuals := Residuals(points, model)
	sse := sumSquaredErrors(residuals)
	mse := meanSquaredError(sse, len(residuals))

	return Summary{
		Model:     model,
		Residuals: residuals,
		SSE:       sse,
		MSE:       mse,
		RMSE:      math.Sqrt(mse),
		RSquared:  calculateRSquared(points, residuals),
	}
}

// Residuals returns the residual of every point against est, in dataset order.
func Residuals(points []geom.Point, est Estimator) []Residual {
	out := make([]Residual, len(points))
	for i, p := range points {
		predicted := est.Estimate(p.X)
		e := p.Y - predicted
		out[i] = Residual{
			X:            p.X,
			Y:            p.Y,
			PredictedY:   predicted,
			Error:        e,
			SquaredError: e * e,
		}
	}

	return out
}

// SSE returns the sum of squared errors of est over points.
func SSE(points []geom.Point, est Estimator) float64 {
	sum := 0.0
	for _, p := range points {
		e := p.Y - est.Estimate(p.X)
		sum += e * e
	}

	return sum
}

// MSE returns SSE / n, or 0 for an empty dataset.
func MSE(points []geom.Point, est Estimator) float64 {
	return meanSquaredError(SSE(points, est), len(points))
}

func sumSquaredErrors(residuals []Residual) float64 {
	sum := 0.0
	for _, r := range residuals {
		sum += r.SquaredError
	}

	return sum
}

func meanSquaredError(sse float64, n int) float64 {
	if n == 0 {
		return 0
	}

	return sse / float64(n)
}

// calculateRSquared calculates the coefficient of determination.
//
// Formula: R² = 1 - (SS_res / SS_tot)
//   - SS_res: sum of squared residuals
//   - SS_tot: total sum of squares around the mean of y
//
// Returns 0 when y has no variance. R² is negative for a model worse than the horizontal
// line through ȳ.
func calculateRSquared(points []geom.Point, residuals []Residual) float64 {
	if len(points) == 0 {
		return 0
	}

	meanY := geom.Mean(points).Y
	ssTot := 0.0
	ssRes := 0.0
	for i, p := range points {
		ssTot += (p.Y - meanY) * (p.Y - meanY)
		ssRes += residuals[i].SquaredError
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}
