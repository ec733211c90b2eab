package session

import (
	"log/slog"
	"slices"
	"time"

	"github.com/arloliu/mathviz/animation"
	"github.com/arloliu/mathviz/calculus"
	"github.com/arloliu/mathviz/geom"
	"github.com/arloliu/mathviz/internal/hash"
	"github.com/arloliu/mathviz/viewport"
)

// DefaultPointX is where the derivative session places its point initially.
const DefaultPointX = 1.0

// CurveParams select the curves of the derivative plot.
type CurveParams struct {
	Function       int
	ShowDerivative bool
	Domain         viewport.Range
}

// Key implements Params.
func (p CurveParams) Key() uint64 {
	return hash.NewKey().Int(p.Function).Bool(p.ShowDerivative).Float64(p.Domain.Min).Float64(p.Domain.Max).Sum64()
}

// Equal implements Params.
func (p CurveParams) Equal(o CurveParams) bool {
	return p.Function == o.Function && p.ShowDerivative == o.ShowDerivative && sameRange(p.Domain, o.Domain)
}

// Curves are the sampled function and derivative together with the Y range that fits them.
type Curves struct {
	Function   calculus.Function
	Curve      []geom.Point
	Derivative []geom.Point // empty unless requested
	YRange     viewport.Range
}

// Clone returns a copy of c that shares no sample slices with it.
func (c Curves) Clone() Curves {
	c.Curve = slices.Clone(c.Curve)
	c.Derivative = slices.Clone(c.Derivative)

	return c
}

// CurveAnalyzer samples the selected catalogue function.
type CurveAnalyzer struct{}

// Kind implements Analyzer.
func (CurveAnalyzer) Kind() Kind { return KindDerivative }

// Compute implements Analyzer. An unknown function index yields empty curves.
func (CurveAnalyzer) Compute(p CurveParams) Curves {
	fn, err := calculus.Lookup(p.Function)
	if err != nil {
		return Curves{YRange: viewport.EmptyRange}
	}

	c := Curves{
		Function: fn,
		Curve:    calculus.Sample(fn.F, p.Domain, calculus.DefaultSteps),
		YRange:   calculus.FitY(fn, p.Domain, p.ShowDerivative),
	}
	if p.ShowDerivative {
		c.Derivative = calculus.Sample(fn.Derivative, p.Domain, calculus.DefaultSteps)
	}

	return c
}

// TangentParams locate the point of tangency.
type TangentParams struct {
	Function int
	X        float64
	DeltaX   float64
	Domain   viewport.Range
}

// Key implements Params.
func (p TangentParams) Key() uint64 {
	return hash.NewKey().Int(p.Function).Float64s(p.X, p.DeltaX, p.Domain.Min, p.Domain.Max).Sum64()
}

// Equal implements Params.
func (p TangentParams) Equal(o TangentParams) bool {
	return p.Function == o.Function && sameFloat(p.X, o.X) && sameFloat(p.DeltaX, o.DeltaX) && sameRange(p.Domain, o.Domain)
}

// TangentView is the geometry at the selected point.
type TangentView struct {
	Point     geom.Point
	Slope     float64
	Tangent   geom.Segment
	Forward   geom.Segment // secant to x+Δx
	Backward  geom.Segment // secant to x-Δx
	Quotients calculus.Quotients
}

// Clone returns v; a TangentView holds no shared memory.
func (v TangentView) Clone() TangentView { return v }

// TangentAnalyzer computes the tangent and secant lines at a point.
type TangentAnalyzer struct{}

// Kind implements Analyzer.
func (TangentAnalyzer) Kind() Kind { return KindTangent }

// Compute implements Analyzer. An unknown function index yields the zero view; an invalid
// Δx leaves the secants and quotients zero.
func (TangentAnalyzer) Compute(p TangentParams) TangentView {
	fn, err := calculus.Lookup(p.Function)
	if err != nil {
		return TangentView{}
	}

	v := TangentView{
		Point:   fn.Point(p.X),
		Slope:   fn.Slope(p.X),
		Tangent: calculus.Tangent(fn, p.X, p.Domain),
	}
	if fwd, bwd, err := calculus.Secants(fn, p.X, p.DeltaX); err == nil {
		v.Forward, v.Backward = fwd, bwd
	}
	if q, err := calculus.DifferenceQuotients(fn, p.X, p.DeltaX); err == nil {
		v.Quotients = q
	}

	return v
}

// DerivativeSession is the derivative visualization: a catalogue function, a point on it
// that can sweep the domain automatically, and the tangent and secant lines at that point.
type DerivativeSession struct {
	log            *slog.Logger
	function       int
	deltaX         float64
	showDerivative bool
	driver         *animation.Driver
	curves         *Cached[CurveParams, Curves]
	tangent        *Cached[TangentParams, TangentView]
	view           viewport.Viewport
}

// NewDerivativeSession returns a session on x² with the point at x = 1 and Δx = 0.5.
//
// The animation is stopped. With WithScheduler the scheduler delivers frames once it is
// started; otherwise the host calls Step.
//
// Parameters:
//   - opts: Optional session settings (viewport, logger, scheduler, animation)
//
// Returns:
//   - *DerivativeSession: Session with the curves sampled and the Y range fitted
//   - error: ErrInvalidViewport or ErrInvalidSpeed for bad options
func NewDerivativeSession(opts ...Option) (*DerivativeSession, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	driver, err := animation.NewDriver(calculus.Domain, DefaultPointX, cfg.Animation...)
	if err != nil {
		return nil, err
	}
	driver.Attach(cfg.Scheduler)

	view, err := cfg.viewport(calculus.Domain, viewport.EmptyRange)
	if err != nil {
		return nil, err
	}

	s := &DerivativeSession{
		log:     cfg.Logger,
		deltaX:  calculus.DefaultDeltaX,
		driver:  driver,
		curves:  NewCached[CurveParams, Curves](CurveAnalyzer{}, cfg.Logger),
		tangent: NewCached[TangentParams, TangentView](TangentAnalyzer{}, cfg.Logger),
		view:    view,
	}
	s.refit()

	return s, nil
}

// SelectFunction selects the catalogue function at index and refits the Y range.
func (s *DerivativeSession) SelectFunction(index int) error {
	if _, err := calculus.Lookup(index); err != nil {
		return err
	}
	s.function = index
	s.refit()

	return nil
}

// ShowDerivative toggles the derivative curve. The Y range is refitted to include it.
func (s *DerivativeSession) ShowDerivative(show bool) {
	s.showDerivative = show
	s.refit()
}

// SetDeltaX sets the secant step.
func (s *DerivativeSession) SetDeltaX(dx float64) error {
	if _, err := calculus.DifferenceQuotients(s.Function(), 0, dx); err != nil {
		return err
	}
	s.deltaX = dx
	s.Tangent()

	return nil
}

// SetPoint moves the point to x. A running animation is stopped.
func (s *DerivativeSession) SetPoint(x float64) {
	if s.driver.Running() {
		s.log.Debug("animation canceled by manual change", slog.Float64("x", x))
	}
	s.driver.Set(x)
	s.Tangent()
}

// StartAnimation starts sweeping the point across the domain.
func (s *DerivativeSession) StartAnimation() {
	if s.driver.Running() {
		return
	}
	s.driver.Start()
	s.log.Debug("animation started", slog.Float64("x", s.driver.Position()))
}

// StopAnimation stops the sweep.
func (s *DerivativeSession) StopAnimation() {
	if !s.driver.Running() {
		return
	}
	s.driver.Stop()
	s.log.Debug("animation stopped", slog.Float64("x", s.driver.Position()))
}

// Animating reports whether the point is sweeping.
func (s *DerivativeSession) Animating() bool {
	return s.driver.Running()
}

// Step advances the animation by one frame when no scheduler is attached. It reports
// whether the point moved.
func (s *DerivativeSession) Step(dt time.Duration) bool {
	return s.driver.Step(dt)
}

// AnimationPosition returns the x coordinate of the point.
func (s *DerivativeSession) AnimationPosition() float64 {
	return s.driver.Position()
}

// AnimationState returns a snapshot of the animation.
func (s *DerivativeSession) AnimationState() animation.State {
	return s.driver.State()
}

// Function returns the selected catalogue function.
func (s *DerivativeSession) Function() calculus.Function {
	fn, _ := calculus.Lookup(s.function)
	return fn
}

// DeltaX returns the secant step.
func (s *DerivativeSession) DeltaX() float64 {
	return s.deltaX
}

// Curves returns a copy of the sampled curves of the selected function.
func (s *DerivativeSession) Curves() Curves {
	return s.curves.Compute(s.curveParams())
}

func (s *DerivativeSession) curveParams() CurveParams {
	return CurveParams{
		Function:       s.function,
		ShowDerivative: s.showDerivative,
		Domain:         calculus.Domain,
	}
}

// Tangent returns the tangent and secant geometry at the current point.
func (s *DerivativeSession) Tangent() TangentView {
	return s.tangent.Compute(TangentParams{
		Function: s.function,
		X:        s.driver.Position(),
		DeltaX:   s.deltaX,
		Domain:   calculus.Domain,
	})
}

// Viewport returns the pixel mapping of the plot.
func (s *DerivativeSession) Viewport() viewport.Viewport {
	return s.view
}

// refit recomputes the curves and moves the viewport to their Y range.
func (s *DerivativeSession) refit() {
	c := s.curves.shared(s.curveParams())
	s.view = s.view.WithYRange(c.YRange)
	s.Tangent()
}
