package viewport

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mathviz/errs"
	"github.com/arloliu/mathviz/geom"
)

func TestNewRange(t *testing.T) {
	r, err := NewRange(-5, 5)
	require.NoError(t, err)
	require.Equal(t, 10.0, r.Span())

	_, err = NewRange(5, -5)
	require.ErrorIs(t, err, errs.ErrInvalidRange)

	_, err = NewRange(math.NaN(), 1)
	require.ErrorIs(t, err, errs.ErrInvalidRange)
}

func TestRange_Helpers(t *testing.T) {
	r := R(-4, 4)
	require.True(t, r.Contains(-4))
	require.True(t, r.Contains(4))
	require.False(t, r.Contains(4.01))
	require.Equal(t, 4.0, r.Clamp(9))
	require.Equal(t, -4.0, r.Clamp(-9))
	require.Equal(t, 1.5, r.Clamp(1.5))
	require.Equal(t, 1.0, R(2, 2).Span())
	require.Equal(t, "[-4, 4]", r.String())
}

func TestRange_Ticks(t *testing.T) {
	require.Equal(t, []float64{-5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5}, R(-5, 5).Ticks(10))
	require.Equal(t, []float64{0, 1}, R(0, 1).Ticks(0))

	ticks := R(0, 1).Ticks(3)
	require.Len(t, ticks, 4)
	require.Equal(t, 1.0, ticks[3], "last tick is exactly Max")
}

func TestFitYRange(t *testing.T) {
	t.Run("adds twenty percent margin", func(t *testing.T) {
		samples := []geom.Point{geom.Pt(-1, 0), geom.Pt(0, 10), geom.Pt(1, 5)}
		require.Equal(t, R(-2, 12), FitYRange(samples))
	})

	t.Run("skips non-finite samples", func(t *testing.T) {
		samples := []geom.Point{
			geom.Pt(-1, math.NaN()),
			geom.Pt(0, 0),
			geom.Pt(1, math.Inf(1)),
			geom.Pt(2, 10),
			geom.Pt(3, math.Inf(-1)),
		}
		require.Equal(t, R(-2, 12), FitYRange(samples))
	})

	t.Run("skips samples with a non-finite x", func(t *testing.T) {
		samples := []geom.Point{geom.Pt(0, 1), geom.Pt(1, 2), geom.Pt(math.NaN(), 100), geom.Pt(math.Inf(1), -50)}
		got := FitYRange(samples)
		require.InDelta(t, 0.8, got.Min, 1e-12)
		require.InDelta(t, 2.2, got.Max, 1e-12)
	})

	t.Run("flat samples get a unit margin", func(t *testing.T) {
		samples := []geom.Point{geom.Pt(0, 3), geom.Pt(1, 3)}
		require.Equal(t, R(2, 4), FitYRange(samples))
	})

	t.Run("no finite samples", func(t *testing.T) {
		require.Equal(t, EmptyRange, FitYRange(nil))
		require.Equal(t, EmptyRange, FitYRange([]geom.Point{geom.Pt(0, math.NaN())}))
	})
}

func TestFitRange_CustomRatio(t *testing.T) {
	require.Equal(t, R(-1, 11), FitRange([]float64{0, 10}, 0.1))
}

func TestFitBounds(t *testing.T) {
	floor := R(-5, 5)

	t.Run("small data is floored", func(t *testing.T) {
		x, y := FitBounds([]geom.Point{geom.Pt(-1, -1), geom.Pt(1, 1)}, 0.2, floor)
		require.Equal(t, floor, x)
		require.Equal(t, floor, y)
	})

	t.Run("large data is buffered", func(t *testing.T) {
		x, y := FitBounds([]geom.Point{geom.Pt(-10, 0), geom.Pt(10, 20)}, 0.2, floor)
		require.Equal(t, R(-14, 14), x)
		require.Equal(t, R(-5, 24), y)
	})

	t.Run("empty data returns floor", func(t *testing.T) {
		x, y := FitBounds(nil, 0.2, floor)
		require.Equal(t, floor, x)
		require.Equal(t, floor, y)
	})
}
