// Package regression fits straight lines to 2-D datasets by ordinary least squares and
// measures how well any line explains the data.
//
// The least-squares line minimizes the sum of squared vertical residuals:
//
//	slope     = Σ(xᵢ - x̄)(yᵢ - ȳ) / Σ(xᵢ - x̄)²
//	intercept = ȳ - slope·x̄
//
// When every x is equal the denominator is zero and the slope is defined as 0, so Fit is a
// total function: it never fails and never returns NaN for finite input.
//
// # Usage
//
//	data := []geom.Point{{X: 10, Y: 15}, {X: 20, Y: 25}, {X: 30, Y: 32}}
//	fit := regression.Fit(data)
//	fmt.Println(fit.Model) // y = 0.85x + 7.00
//
//	current := regression.LinearModel{Slope: 1, Intercept: 5}
//	res := regression.Analyze(data, current)
//	fmt.Printf("SSE %.2f vs optimal %.2f, optimal=%t\n",
//	    res.Current.SSE, res.Optimal.SSE, res.IsOptimal)
//
// # Goodness of Fit
//
// Every Summary carries the sum of squared errors (SSE), the mean squared error (SSE / n),
// the root mean squared error and the coefficient of determination R². A model is considered
// optimal when both its slope and intercept are within OptimalityTolerance of the
// least-squares solution.
package regression
