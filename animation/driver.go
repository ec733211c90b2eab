package animation

import (
	"fmt"
	"math"
	"time"

	"github.com/arloliu/mathviz/errs"
	"github.com/arloliu/mathviz/internal/options"
	"github.com/arloliu/mathviz/viewport"
)

const (
	// DefaultSpeed is the displacement per frame.
	DefaultSpeed = 0.03
	// DefaultMargin keeps the position this far inside each end of the domain.
	DefaultMargin = 1.0
	// DefaultFrameInterval is the nominal frame time that Step scales dt against.
	DefaultFrameInterval = time.Second / 60
)

// Direction is the sign of the motion.
type Direction int

const (
	// Backward moves toward the lower end of the domain.
	Backward Direction = -1
	// Forward moves toward the upper end of the domain.
	Forward Direction = 1
)

// String returns "backward" or "forward".
func (d Direction) String() string {
	if d < 0 {
		return "backward"
	}

	return "forward"
}

// State is a snapshot of the driver.
type State struct {
	Position  float64
	Direction Direction
	Running   bool
}

// String returns the position, direction and running flag, e.g. "x=1.000 forward running=true".
func (s State) String() string {
	return fmt.Sprintf("x=%.3f %s running=%t", s.Position, s.Direction, s.Running)
}

// Config holds the driver parameters.
type Config struct {
	// Speed is the displacement per nominal frame.
	Speed float64
	// Margin is the distance kept from each end of the domain.
	Margin float64
	// FrameInterval is the nominal frame time. Zero disables dt scaling.
	FrameInterval time.Duration
	// Direction is the initial direction.
	Direction Direction
}

// DefaultConfig returns the default driver configuration.
func DefaultConfig() *Config {
	return &Config{
		Speed:         DefaultSpeed,
		Margin:        DefaultMargin,
		FrameInterval: DefaultFrameInterval,
		Direction:     Forward,
	}
}

// Option configures a Driver.
type Option = options.Option[*Config]

// WithSpeed sets the displacement per frame.
func WithSpeed(speed float64) Option {
	return options.New(func(cfg *Config) error {
		if !(speed > 0) || math.IsInf(speed, 0) {
			return fmt.Errorf("%w: got %g", errs.ErrInvalidSpeed, speed)
		}
		cfg.Speed = speed

		return nil
	})
}

// WithMargin sets the distance kept from each end of the domain. Negative values are
// treated as zero.
func WithMargin(margin float64) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Margin = math.Max(0, margin)
	})
}

// WithFrameInterval sets the nominal frame time.
func WithFrameInterval(d time.Duration) Option {
	return options.NoError(func(cfg *Config) {
		cfg.FrameInterval = d
	})
}

// WithDirection sets the initial direction.
func WithDirection(dir Direction) Option {
	return options.NoError(func(cfg *Config) {
		if dir < 0 {
			cfg.Direction = Backward
		} else {
			cfg.Direction = Forward
		}
	})
}

// Driver advances a position across a domain, reflecting at Margin from either end.
//
// Without a scheduler the host calls Step itself while the driver runs. With one attached,
// Start requests frames and every frame requests the next until Stop. A generation counter
// tags each frame chain, so a callback from a chain that Stop ended is ignored even if the
// scheduler still delivers it.
//
// A Driver is not safe for concurrent use.
type Driver struct {
	cfg    Config
	domain viewport.Range
	bounds viewport.Range
	state  State

	scheduler Scheduler
	cancel    func()
	gen       uint64
	steps     uint64
}

// NewDriver returns a stopped driver over domain positioned at start, clamped into the
// reflecting range.
//
// The reflecting range is domain shrunk by the margin at each end; when the domain is
// narrower than two margins it collapses to the domain midpoint.
//
// Parameters:
//   - domain: Range the position moves across (finite bounds, Min <= Max)
//   - start: Initial position; NaN starts at the lower bound of the reflecting range
//   - opts: Optional configuration (speed, margin, frame interval, direction)
//
// Returns:
//   - *Driver: Stopped driver with no scheduler attached
//   - error: ErrInvalidRange for a bad domain, or ErrInvalidSpeed from WithSpeed
//
// Example:
//
//	d, err := animation.NewDriver(viewport.R(-5, 5), 1, animation.WithSpeed(0.05))
//	if err != nil {
//	    return err
//	}
//	d.Start()
//	d.Step(time.Second / 60) // x = 1.05
func NewDriver(domain viewport.Range, start float64, opts ...Option) (*Driver, error) {
	if err := domain.Validate(); err != nil {
		return nil, err
	}

	cfg, err := options.Build(DefaultConfig, opts...)
	if err != nil {
		return nil, err
	}

	d := &Driver{cfg: *cfg}
	d.state.Direction = cfg.Direction
	d.setDomain(domain)
	if math.IsNaN(start) {
		start = d.bounds.Min
	}
	d.state.Position = d.bounds.Clamp(start)

	return d, nil
}

// Attach sets the scheduler that delivers frames. If the driver is running, the current
// frame chain is canceled and a new one is started on s. A nil s detaches.
func (d *Driver) Attach(s Scheduler) {
	d.cancelFrame()
	d.scheduler = s
	if d.state.Running {
		d.requestFrame()
	}
}

// Start begins the animation. It is a no-op when already running.
func (d *Driver) Start() {
	if d.state.Running {
		return
	}
	d.state.Running = true
	d.requestFrame()
}

// Stop halts the animation and cancels the pending frame. It is a no-op when stopped.
func (d *Driver) Stop() {
	if !d.state.Running {
		return
	}
	d.state.Running = false
	d.cancelFrame()
}

// Toggle starts a stopped driver and stops a running one, returning the new running state.
func (d *Driver) Toggle() bool {
	if d.state.Running {
		d.Stop()
	} else {
		d.Start()
	}

	return d.state.Running
}

// Step advances the position by one frame scaled by dt and reports whether it moved.
// A stopped driver does not move. A dt of zero or less counts as one nominal frame.
func (d *Driver) Step(dt time.Duration) bool {
	if !d.state.Running {
		return false
	}

	frames := 1.0
	if dt > 0 && d.cfg.FrameInterval > 0 {
		frames = float64(dt) / float64(d.cfg.FrameInterval)
	}

	pos := d.state.Position + float64(d.state.Direction)*d.cfg.Speed*frames
	switch {
	case pos > d.bounds.Max:
		pos = d.bounds.Max
		d.state.Direction = Backward
	case pos < d.bounds.Min:
		pos = d.bounds.Min
		d.state.Direction = Forward
	}
	d.state.Position = pos
	d.steps++

	return true
}

// Set moves the position to x, clamped into the reflecting range. A manual change always
// stops the animation first.
func (d *Driver) Set(x float64) {
	d.Stop()
	if math.IsNaN(x) {
		return
	}
	d.state.Position = d.bounds.Clamp(x)
}

// SetDomain replaces the domain and clamps the position into the new reflecting range.
// The running state is unchanged.
func (d *Driver) SetDomain(domain viewport.Range) error {
	if err := domain.Validate(); err != nil {
		return err
	}
	d.setDomain(domain)
	d.state.Position = d.bounds.Clamp(d.state.Position)

	return nil
}

// State returns a snapshot of the driver.
func (d *Driver) State() State {
	return d.state
}

// Position returns the current position.
func (d *Driver) Position() float64 {
	return d.state.Position
}

// Running reports whether the animation is running.
func (d *Driver) Running() bool {
	return d.state.Running
}

// Bounds returns the reflecting range: the domain shrunk by the margin on each side.
func (d *Driver) Bounds() viewport.Range {
	return d.bounds
}

// Domain returns the domain.
func (d *Driver) Domain() viewport.Range {
	return d.domain
}

// Steps returns the number of frames the driver has advanced.
func (d *Driver) Steps() uint64 {
	return d.steps
}

func (d *Driver) setDomain(domain viewport.Range) {
	d.domain = domain
	d.bounds = reflectingRange(domain, d.cfg.Margin)
}

func (d *Driver) requestFrame() {
	if d.scheduler == nil {
		return
	}

	d.gen++
	gen := d.gen
	d.cancel = d.scheduler.RequestFrame(func(dt time.Duration) {
		if gen != d.gen || !d.state.Running {
			return
		}
		d.cancel = nil
		d.Step(dt)
		if d.state.Running && gen == d.gen {
			d.requestFrame()
		}
	})
}

func (d *Driver) cancelFrame() {
	d.gen++
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

// reflectingRange shrinks r by margin on each side. A range narrower than two margins
// collapses to its midpoint.
func reflectingRange(r viewport.Range, margin float64) viewport.Range {
	lo, hi := r.Min+margin, r.Max-margin
	if lo > hi {
		mid := r.Min + (r.Max-r.Min)/2
		return viewport.Range{Min: mid, Max: mid}
	}

	return viewport.Range{Min: lo, Max: hi}
}
