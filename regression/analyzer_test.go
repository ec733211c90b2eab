package regression

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/mathviz/geom"
)

func classroomData() []geom.Point {
	return []geom.Point{
		{X: 10, Y: 15}, {X: 20, Y: 25}, {X: 30, Y: 32}, {X: 40, Y: 40},
		{X: 50, Y: 48}, {X: 60, Y: 65}, {X: 70, Y: 70}, {X: 80, Y: 85},
	}
}

func split(points []geom.Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}

	return xs, ys
}

func TestFit_ClassroomDataset(t *testing.T) {
	data := classroomData()
	fit := Fit(data)

	// Σ(x-x̄)(y-ȳ) = 4110 and Σ(x-x̄)² = 4200 for this dataset.
	wantSlope := 4110.0 / 4200.0
	wantIntercept := 47.5 - wantSlope*45.0
	require.InDelta(t, wantSlope, fit.Model.Slope, 1e-12)
	require.InDelta(t, wantIntercept, fit.Model.Intercept, 1e-12)
	require.Equal(t, 45.0, fit.MeanX)
	require.Equal(t, 47.5, fit.MeanY)

	// Independent oracle.
	xs, ys := split(data)
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	require.InDelta(t, beta, fit.Model.Slope, 1e-9)
	require.InDelta(t, alpha, fit.Model.Intercept, 1e-9)

	require.Equal(t, "y = 0.98x + 3.46", fit.Model.String())
}

func TestFit_Degenerate(t *testing.T) {
	t.Run("empty dataset", func(t *testing.T) {
		fit := Fit(nil)
		require.Equal(t, FitResult{}, fit)
	})

	t.Run("single point", func(t *testing.T) {
		fit := Fit([]geom.Point{{X: 3, Y: 7}})
		require.Equal(t, 0.0, fit.Model.Slope)
		require.Equal(t, 7.0, fit.Model.Intercept)
	})

	t.Run("all x equal", func(t *testing.T) {
		fit := Fit([]geom.Point{{X: 2, Y: 1}, {X: 2, Y: 5}, {X: 2, Y: 9}})
		require.Equal(t, 0.0, fit.Model.Slope)
		require.Equal(t, 5.0, fit.Model.Intercept)
		require.False(t, math.IsNaN(fit.Model.Intercept))
	})
}

func TestFit_MinimizesSSE(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))

	for trial := range 20 {
		data := make([]geom.Point, 5+trial)
		for i := range data {
			x := rng.Float64()*100 - 50
			data[i] = geom.Point{X: x, Y: 0.7*x + 3 + rng.NormFloat64()*5}
		}

		optimal := Fit(data).Model
		best := SSE(data, optimal)
		for range 100 {
			perturbed := LinearModel{
				Slope:     optimal.Slope + (rng.Float64()*2-1)*0.5,
				Intercept: optimal.Intercept + (rng.Float64()*2-1)*5,
			}
			require.LessOrEqual(t, best, SSE(data, perturbed)+1e-9)
		}
	}
}

func TestAnalyze(t *testing.T) {
	data := classroomData()
	res := Analyze(data, LinearModel{Slope: 1, Intercept: 5})

	require.False(t, res.IsOptimal)
	require.Equal(t, 108.0, res.Current.SSE)
	require.Equal(t, 108.0/8, res.Current.MSE)
	require.InDelta(t, math.Sqrt(108.0/8), res.Current.RMSE, 1e-12)

	// SSE of the optimum: SS_tot - Sxy²/Sxx.
	wantOptimalSSE := 4078.0 - 4110.0*4110.0/4200.0
	require.InDelta(t, wantOptimalSSE, res.Optimal.SSE, 1e-9)
	require.Less(t, res.Optimal.SSE, res.Current.SSE)

	require.Len(t, res.Current.Residuals, len(data))
	require.Len(t, res.Optimal.Residuals, len(data))
	require.InDelta(t, 1-wantOptimalSSE/4078.0, res.Optimal.RSquared, 1e-12)

	require.Equal(t, 45.0, res.MeanX)
	require.Equal(t, 47.5, res.MeanY)
}

func TestIsOptimal(t *testing.T) {
	optimal := LinearModel{Slope: 0.9786, Intercept: 3.4643}

	tests := []struct {
		name    string
		current LinearModel
		want    bool
	}{
		{"identical", optimal, true},
		{"within tolerance", LinearModel{Slope: 0.9836, Intercept: 3.4593}, true},
		{"slope off", LinearModel{Slope: 0.9986, Intercept: 3.4643}, false},
		{"intercept off", LinearModel{Slope: 0.9786, Intercept: 3.4443}, false},
		{"just outside tolerance", LinearModel{Slope: 0.9786 + 0.011, Intercept: 3.4643}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOptimal(tt.current, optimal))
		})
	}
}

func TestIsOptimal_OptimumAlwaysOptimal(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 9))
	for range 50 {
		data := make([]geom.Point, 2+rng.IntN(30))
		for i := range data {
			data[i] = geom.Point{X: rng.Float64() * 10, Y: rng.Float64() * 10}
		}
		optimal := Fit(data).Model
		require.True(t, Analyze(data, optimal).IsOptimal)
	}
}

func TestResiduals(t *testing.T) {
	data := []geom.Point{{X: 1, Y: 3}, {X: 2, Y: 3}}
	res := Residuals(data, LinearModel{Slope: 1, Intercept: 1})

	require.Equal(t, []Residual{
		{X: 1, Y: 3, PredictedY: 2, Error: 1, SquaredError: 1},
		{X: 2, Y: 3, PredictedY: 3, Error: 0, SquaredError: 0},
	}, res)
	require.Equal(t, 1.0, SSE(data, LinearModel{Slope: 1, Intercept: 1}))
	require.Equal(t, 0.5, MSE(data, LinearModel{Slope: 1, Intercept: 1}))
	require.Equal(t, 0.0, MSE(nil, LinearModel{}))
}

func TestSummarize_FlatData(t *testing.T) {
	data := []geom.Point{{X: 1, Y: 4}, {X: 2, Y: 4}, {X: 3, Y: 4}}
	s := Summarize(data, LinearModel{Intercept: 4})
	require.Zero(t, s.SSE)
	require.Zero(t, s.RSquared, "R² is 0 when y has no variance")
}

func TestLinearModel(t *testing.T) {
	m := LinearModel{Slope: 2, Intercept: -1}
	require.Equal(t, 5.0, m.Estimate(3))
	require.Equal(t, []float64{-1, 2}, m.Coefficients())
	require.Equal(t, "y = 2.00x - 1.00", m.String())

	line := m.Line(0, 100)
	require.Equal(t, geom.Point{X: 0, Y: -1}, line.From)
	require.Equal(t, geom.Point{X: 100, Y: 199}, line.To)
}

func BenchmarkAnalyze(b *testing.B) {
	data := make([]geom.Point, 1000)
	for i := range data {
		data[i] = geom.Point{X: float64(i), Y: float64(i)*0.5 + float64(i%7)}
	}
	current := LinearModel{Slope: 0.5, Intercept: 2}

	b.ResetTimer()
	for b.Loop() {
		Analyze(data, current)
	}
}

func TestResult_Clone(t *testing.T) {
	r := Analyze(classroomData(), LinearModel{Slope: 1, Intercept: 5})
	c := r.Clone()
	require.Equal(t, r, c)

	c.Optimal.Model.Slope = 5
	c.Current.Residuals[0].SquaredError = 1e9
	require.NotEqual(t, 5.0, r.Optimal.Model.Slope)
	require.NotEqual(t, 1e9, r.Current.Residuals[0].SquaredError)

	var nilResult *Result
	require.Nil(t, nilResult.Clone())
}
