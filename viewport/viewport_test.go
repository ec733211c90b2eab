package viewport

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mathviz/errs"
	"github.com/arloliu/mathviz/geom"
)

func newTestViewport(t *testing.T, x, y Range) Viewport {
	t.Helper()
	vp, err := New(600, 400, 40, x, y)
	require.NoError(t, err)

	return vp
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		w, h, p float64
		x, y    Range
		wantErr error
	}{
		{"valid", 600, 400, 40, R(0, 100), R(0, 100), nil},
		{"zero padding", 10, 10, 0, R(0, 1), R(0, 1), nil},
		{"zero width", 0, 400, 0, R(0, 1), R(0, 1), errs.ErrInvalidViewport},
		{"padding consumes width", 80, 400, 40, R(0, 1), R(0, 1), errs.ErrInvalidViewport},
		{"negative padding", 600, 400, -1, R(0, 1), R(0, 1), errs.ErrInvalidViewport},
		{"NaN height", 600, math.NaN(), 0, R(0, 1), R(0, 1), errs.ErrInvalidViewport},
		{"inverted x", 600, 400, 40, R(1, 0), R(0, 1), errs.ErrInvalidRange},
		{"infinite y", 600, 400, 40, R(0, 1), R(0, math.Inf(1)), errs.ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.w, tt.h, tt.p, tt.x, tt.y)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestViewport_Mapping(t *testing.T) {
	vp := newTestViewport(t, R(0, 100), R(0, 100))

	require.Equal(t, 520.0, vp.PlotWidth())
	require.Equal(t, 320.0, vp.PlotHeight())

	// Corners of the domain land on the corners of the drawable area.
	require.Equal(t, geom.Pt(40, 360), vp.ToPixel(geom.Pt(0, 0)))
	require.Equal(t, geom.Pt(560, 40), vp.ToPixel(geom.Pt(100, 100)))
	require.Equal(t, geom.Pt(300, 200), vp.ToPixel(geom.Pt(50, 50)))

	// Screen Y grows downward.
	require.Less(t, vp.ToPixelY(80), vp.ToPixelY(20))
}

func TestViewport_DegenerateRange(t *testing.T) {
	vp := newTestViewport(t, R(3, 3), R(-2, -2))

	px := vp.ToPixelX(3)
	py := vp.ToPixelY(-2)
	require.False(t, math.IsNaN(px) || math.IsInf(px, 0))
	require.False(t, math.IsNaN(py) || math.IsInf(py, 0))
	require.Equal(t, 40.0, px)
	require.Equal(t, 360.0, py)

	// A degenerate range maps with a unit span.
	require.Equal(t, 40.0+520.0, vp.ToPixelX(4))
	require.InDelta(t, 3.5, vp.ToDomainX(vp.ToPixelX(3.5)), 1e-12)
}

func TestViewport_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	ranges := []struct{ x, y Range }{
		{R(0, 100), R(0, 100)},
		{R(-5, 5), R(-1.2, 1.2)},
		{R(-1e6, 1e6), R(1e-3, 2e-3)},
	}

	for _, rr := range ranges {
		vp := newTestViewport(t, rr.x, rr.y)
		for range 200 {
			x := rr.x.Min + rng.Float64()*(rr.x.Max-rr.x.Min)
			y := rr.y.Min + rng.Float64()*(rr.y.Max-rr.y.Min)

			require.InDelta(t, x, vp.ToDomainX(vp.ToPixelX(x)), 1e-9*rr.x.Span())
			require.InDelta(t, y, vp.ToDomainY(vp.ToPixelY(y)), 1e-9*rr.y.Span())

			back := vp.ToDomain(vp.ToPixel(geom.Pt(x, y)))
			require.InDelta(t, x, back.X, 1e-9*rr.x.Span())
			require.InDelta(t, y, back.Y, 1e-9*rr.y.Span())
		}
	}
}

func TestViewport_WithRange(t *testing.T) {
	vp := newTestViewport(t, R(-5, 5), R(0, 1))

	refit := vp.WithYRange(R(-10, 30))
	require.Equal(t, R(-10, 30), refit.YRange())
	require.Equal(t, R(0, 1), vp.YRange(), "original viewport must be unchanged")

	same := vp.WithYRange(R(2, 1))
	require.Equal(t, R(0, 1), same.YRange(), "invalid ranges are ignored")

	wider := vp.WithXRange(R(-10, 10))
	require.Equal(t, R(-10, 10), wider.XRange())
}

func TestViewport_PathToPixel(t *testing.T) {
	vp := newTestViewport(t, R(0, 100), R(0, 100))
	path := vp.PathToPixel([]geom.Point{geom.Pt(0, 0), geom.Pt(10, math.NaN()), geom.Pt(100, 100)})
	require.Equal(t, []geom.Point{geom.Pt(40, 360), geom.Pt(560, 40)}, path)

	seg := vp.SegmentToPixel(geom.Segment{From: geom.Pt(0, 0), To: geom.Pt(100, 100)})
	require.Equal(t, geom.Pt(40, 360), seg.From)
	require.Equal(t, geom.Pt(560, 40), seg.To)
}
