package preset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mathviz/bayes"
	"github.com/arloliu/mathviz/errs"
	"github.com/arloliu/mathviz/geom"
	"github.com/arloliu/mathviz/regression"
)

func TestBuiltin_RegressionDataset(t *testing.T) {
	d := DefaultDataset()
	require.Equal(t, DefaultName, d.Name)
	require.Equal(t, []geom.Point{
		{X: 10, Y: 15}, {X: 20, Y: 25}, {X: 30, Y: 32}, {X: 40, Y: 40},
		{X: 50, Y: 48}, {X: 60, Y: 65}, {X: 70, Y: 70}, {X: 80, Y: 85},
	}, d.Points)
	require.Equal(t, regression.LinearModel{Slope: 1, Intercept: 5}, d.Model)

	// Callers get their own copy of the points.
	d.Points[0].X = -1
	require.Equal(t, 10.0, DefaultDataset().Points[0].X)
}

func TestBuiltin_BayesExamples(t *testing.T) {
	c := Builtin()
	require.Equal(t, []string{"default", "medical", "spam", "legal"}, c.BayesNames())

	medical, err := c.BayesExample("medical")
	require.NoError(t, err)
	require.Equal(t, bayes.Evidence{Prior: 0.01, Likelihood: 0.95, FalsePositiveRate: 0.05}, medical.Evidence)
	require.Equal(t, "Medical test", medical.Title)
	require.NotEmpty(t, medical.Labels.FalsePositiveRate)
	require.InDelta(t, 0.1610, bayes.Update(medical.Evidence).Posterior, 1e-4)

	require.Equal(t, bayes.Evidence{Prior: 0.3, Likelihood: 0.8, FalsePositiveRate: 0.1}, DefaultEvidence())
}

func TestCatalog_UnknownNames(t *testing.T) {
	c := Builtin()
	_, err := c.Dataset("missing")
	require.ErrorIs(t, err, errs.ErrUnknownPreset)

	_, err = c.BayesExample("missing")
	require.ErrorIs(t, err, errs.ErrUnknownPreset)
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
regression:
  - name: line
    points: [{x: 0, y: 1}, {x: 1, y: 3}]
    model: {slope: 2, intercept: 1}
bayes:
  - name: coin
    prior: 0.5
    likelihood: 0.5
    false_positive_rate: 0.5
`))
	require.NoError(t, err)

	d, err := c.Dataset("line")
	require.NoError(t, err)
	require.Len(t, d.Points, 2)
	require.True(t, regression.IsOptimal(d.Model, regression.Fit(d.Points).Model))

	e, err := c.BayesExample("coin")
	require.NoError(t, err)
	require.Equal(t, 0.5, bayes.Update(e.Evidence).Posterior)

	_, err = Parse([]byte("regression: {not: [a, list"))
	require.Error(t, err)
}
