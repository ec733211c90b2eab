package animation

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mathviz/errs"
	"github.com/arloliu/mathviz/viewport"
)

var domain = viewport.R(-5, 5)

func newDriver(t *testing.T, start float64, opts ...Option) *Driver {
	t.Helper()
	d, err := NewDriver(domain, start, opts...)
	require.NoError(t, err)

	return d
}

func TestNewDriver(t *testing.T) {
	d := newDriver(t, 1)
	require.Equal(t, State{Position: 1, Direction: Forward}, d.State())
	require.Equal(t, viewport.R(-4, 4), d.Bounds())
	require.Equal(t, domain, d.Domain())

	require.Equal(t, 4.0, newDriver(t, 4.9).Position())
	require.Equal(t, -4.0, newDriver(t, math.Inf(-1)).Position())
	require.Equal(t, -4.0, newDriver(t, math.NaN()).Position())

	_, err := NewDriver(viewport.R(1, 0), 0)
	require.ErrorIs(t, err, errs.ErrInvalidRange)

	for _, speed := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		_, err = NewDriver(domain, 0, WithSpeed(speed))
		require.ErrorIs(t, err, errs.ErrInvalidSpeed)
	}
}

func TestDriver_StepWhileStopped(t *testing.T) {
	d := newDriver(t, 0)
	require.False(t, d.Step(0))
	require.Equal(t, 0.0, d.Position())
	require.Zero(t, d.Steps())
}

func TestDriver_StepAdvancesBySpeed(t *testing.T) {
	d := newDriver(t, 0)
	d.Start()

	for range 10 {
		require.True(t, d.Step(0))
	}
	require.InDelta(t, 10*DefaultSpeed, d.Position(), 1e-12)

	// Two nominal frames worth of time move twice as far.
	require.True(t, d.Step(2*DefaultFrameInterval))
	require.InDelta(t, 12*DefaultSpeed, d.Position(), 1e-12)
	require.Equal(t, uint64(11), d.Steps())
}

func TestDriver_ReflectsAtUpperBound(t *testing.T) {
	d := newDriver(t, domain.Max-1)
	d.Start()

	require.True(t, d.Step(0))
	require.Equal(t, domain.Max-1, d.Position())
	require.Equal(t, Backward, d.State().Direction)

	for range 500 {
		d.Step(0)
		require.LessOrEqual(t, d.Position(), domain.Max-1)
		require.GreaterOrEqual(t, d.Position(), domain.Min+1)
	}
}

func TestDriver_ReflectsAtLowerBound(t *testing.T) {
	d := newDriver(t, -3.99, WithDirection(Backward), WithSpeed(0.5))
	d.Start()

	d.Step(0)
	require.Equal(t, -4.0, d.Position())
	require.Equal(t, Forward, d.State().Direction)

	d.Step(0)
	require.InDelta(t, -3.5, d.Position(), 1e-12)
}

func TestDriver_FullSweepStaysInBounds(t *testing.T) {
	d := newDriver(t, 0, WithSpeed(0.7))
	d.Start()

	flips := 0
	dir := d.State().Direction
	for range 1000 {
		d.Step(0)
		s := d.State()
		require.True(t, d.Bounds().Contains(s.Position), s)
		if s.Direction != dir {
			flips++
			dir = s.Direction
		}
	}
	require.Greater(t, flips, 10)
}

func TestDriver_StartStopAreIdempotent(t *testing.T) {
	d := newDriver(t, 0)
	d.Stop()
	require.False(t, d.Running())

	d.Start()
	d.Start()
	require.True(t, d.Running())

	d.Stop()
	d.Stop()
	require.False(t, d.Running())

	require.True(t, d.Toggle())
	require.False(t, d.Toggle())
}

func TestDriver_SetStopsAndClamps(t *testing.T) {
	d := newDriver(t, 0)
	d.Start()

	d.Set(2.5)
	require.False(t, d.Running())
	require.Equal(t, 2.5, d.Position())
	require.False(t, d.Step(0))

	d.Set(9)
	require.Equal(t, 4.0, d.Position())

	d.Set(math.NaN())
	require.Equal(t, 4.0, d.Position())
}

func TestDriver_SetDomain(t *testing.T) {
	d := newDriver(t, 3)
	require.NoError(t, d.SetDomain(viewport.R(0, 3)))
	require.Equal(t, viewport.R(1, 2), d.Bounds())
	require.Equal(t, 2.0, d.Position())

	require.ErrorIs(t, d.SetDomain(viewport.R(math.NaN(), 1)), errs.ErrInvalidRange)
}

func TestReflectingRange_CollapsesNarrowDomain(t *testing.T) {
	d, err := NewDriver(viewport.R(2, 3), 0)
	require.NoError(t, err)
	require.Equal(t, viewport.R(2.5, 2.5), d.Bounds())
	require.Equal(t, 2.5, d.Position())

	d.Start()
	for range 5 {
		d.Step(0)
		require.Equal(t, 2.5, d.Position())
	}

	r := reflectingRange(viewport.R(0, 10), 0)
	require.Equal(t, viewport.R(0, 10), r)
}

func TestDirection_String(t *testing.T) {
	require.Equal(t, "forward", Forward.String())
	require.Equal(t, "backward", Backward.String())
	require.Equal(t, "x=1.500 forward running=true", State{Position: 1.5, Direction: Forward, Running: true}.String())
}

func BenchmarkDriver_Step(b *testing.B) {
	d, _ := NewDriver(domain, 0)
	d.Start()
	for b.Loop() {
		d.Step(time.Millisecond * 16)
	}
}
