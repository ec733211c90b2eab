package regression_test

import (
	"fmt"

	"github.com/arloliu/mathviz/geom"
	"github.com/arloliu/mathviz/regression"
)

// ExampleAnalyze compares a hand-tuned line against the least-squares optimum.
func ExampleAnalyze() {
	data := []geom.Point{
		{X: 10, Y: 15}, {X: 20, Y: 25}, {X: 30, Y: 32}, {X: 40, Y: 40},
		{X: 50, Y: 48}, {X: 60, Y: 65}, {X: 70, Y: 70}, {X: 80, Y: 85},
	}

	res := regression.Analyze(data, regression.LinearModel{Slope: 1, Intercept: 5})
	fmt.Println("optimal line:", res.Optimal.Model)
	fmt.Printf("current SSE: %.2f\n", res.Current.SSE)
	fmt.Printf("optimal SSE: %.2f\n", res.Optimal.SSE)
	fmt.Println("is optimal:", res.IsOptimal)

	res = regression.Analyze(data, res.Optimal.Model)
	fmt.Println("after optimizing:", res.IsOptimal)

	// Output:
	// optimal line: y = 0.98x + 3.46
	// current SSE: 108.00
	// optimal SSE: 56.07
	// is optimal: false
	// after optimizing: true
}
