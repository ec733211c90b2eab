package session

import (
	"fmt"
	"slices"

	"github.com/arloliu/mathviz/geom"
	"github.com/arloliu/mathviz/internal/hash"
	"github.com/arloliu/mathviz/internal/options"
	"github.com/arloliu/mathviz/pca"
	"github.com/arloliu/mathviz/viewport"
)

// PCA walkthrough steps.
const (
	StepOriginal  = 1 // raw data
	StepCentered  = 2 // data shifted to the mean
	StepComponent = 3 // principal axes
	StepProjected = 4 // projection onto the first axis
)

// PCABoundsBuffer is the fraction of the data extent added around the PCA plot.
const PCABoundsBuffer = 0.2

// PCABoundsFloor is the smallest range each axis of the PCA plot covers.
var PCABoundsFloor = viewport.Range{Min: -5, Max: 5}

// PCAParams are the generator parameters of a PCA dataset.
type PCAParams struct {
	pca.GenerateConfig
}

// Key implements Params.
func (p PCAParams) Key() uint64 {
	return hash.NewKey().
		Int(int(p.Shape)).
		Int(p.Count).
		Float64s(p.Noise, p.Rotation).
		Int(int(p.Seed)). //nolint:gosec // bit pattern only
		Sum64()
}

// Equal implements Params.
func (p PCAParams) Equal(o PCAParams) bool {
	return p.Shape == o.Shape && p.Count == o.Count && p.Seed == o.Seed &&
		sameFloat(p.Noise, o.Noise) && sameFloat(p.Rotation, o.Rotation)
}

// PCAView is the analysis of a generated dataset together with bounds that fit it.
type PCAView struct {
	*pca.Result
	XRange viewport.Range
	YRange viewport.Range
}

// Clone returns a deep copy of v.
func (v PCAView) Clone() PCAView {
	v.Result = v.Result.Clone()
	return v
}

// PCAAnalyzer generates a dataset and runs PCA on it.
type PCAAnalyzer struct{}

// Kind implements Analyzer.
func (PCAAnalyzer) Kind() Kind { return KindPCA }

// Compute implements Analyzer.
func (PCAAnalyzer) Compute(p PCAParams) PCAView {
	points := pca.GenerateFrom(p.GenerateConfig)
	x, y := viewport.FitBounds(points, PCABoundsBuffer, PCABoundsFloor)

	return PCAView{Result: pca.Analyze(points), XRange: x, YRange: y}
}

// PCASession is the principal component analysis visualization.
type PCASession struct {
	cfg      *Config
	gen      pca.GenerateConfig
	step     int
	analyzer *Cached[PCAParams, PCAView]
	view     viewport.Viewport
}

// NewPCASession returns a session on a generated dataset. The generator starts from
// pca.DefaultGenerateConfig with the session seed, then applies WithDataset options.
//
// Parameters:
//   - opts: Optional session settings (viewport, logger, seed, dataset)
//
// Returns:
//   - *PCASession: Session at StepOriginal with the viewport fitted to the dataset
//   - error: ErrInvalidViewport, ErrUnknownShape or ErrInvalidPointCount for bad options
func NewPCASession(opts ...Option) (*PCASession, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	gen := pca.DefaultGenerateConfig()
	gen.Seed = cfg.Seed
	if err := options.Apply(gen, cfg.Dataset...); err != nil {
		return nil, err
	}

	view, err := cfg.viewport(PCABoundsFloor, PCABoundsFloor)
	if err != nil {
		return nil, err
	}

	s := &PCASession{
		cfg:      cfg,
		gen:      *gen,
		step:     StepOriginal,
		analyzer: NewCached[PCAParams, PCAView](PCAAnalyzer{}, cfg.Logger),
		view:     view,
	}
	s.recompute()

	return s, nil
}

// Configure applies generator options and regenerates the dataset. On error nothing changes.
func (s *PCASession) Configure(opts ...pca.GenerateOption) error {
	gen := s.gen
	if err := options.Apply(&gen, opts...); err != nil {
		return err
	}
	s.gen = gen
	s.recompute()

	return nil
}

// SetShape sets the dataset shape.
func (s *PCASession) SetShape(shape pca.Shape) error {
	return s.Configure(pca.WithShape(shape))
}

// SetCount sets the number of points.
func (s *PCASession) SetCount(n int) error {
	return s.Configure(pca.WithCount(n))
}

// SetNoise sets the noise level in percent.
func (s *PCASession) SetNoise(percent float64) {
	_ = s.Configure(pca.WithNoise(percent))
}

// SetRotation sets the rotation in degrees.
func (s *PCASession) SetRotation(degrees float64) {
	_ = s.Configure(pca.WithRotation(degrees))
}

// Regenerate draws a new dataset with the same parameters.
func (s *PCASession) Regenerate() {
	_ = s.Configure(pca.WithSeed(s.gen.Seed + 1))
}

// GenerateConfig returns the generator parameters.
func (s *PCASession) GenerateConfig() pca.GenerateConfig {
	return s.gen
}

// PCAResult returns a copy of the analysis of the current dataset.
func (s *PCASession) PCAResult() *pca.Result {
	return s.result().Clone()
}

// View returns a copy of the analysis together with its plot bounds.
func (s *PCASession) View() PCAView {
	return s.analyzer.Compute(s.params())
}

func (s *PCASession) params() PCAParams {
	return PCAParams{GenerateConfig: s.gen}
}

// result returns the cached analysis. It must not be modified.
func (s *PCASession) result() *pca.Result {
	return s.analyzer.shared(s.params()).Result
}

// Viewport returns the pixel mapping fitted to the current dataset.
func (s *PCASession) Viewport() viewport.Viewport {
	return s.view
}

// Step returns the walkthrough step, from StepOriginal to StepProjected.
func (s *PCASession) Step() int {
	return s.step
}

// SetStep moves the walkthrough to step, clamped to the valid steps.
func (s *PCASession) SetStep(step int) {
	s.step = min(max(step, StepOriginal), StepProjected)
}

// NextStep advances the walkthrough.
func (s *PCASession) NextStep() {
	s.SetStep(s.step + 1)
}

// PrevStep moves the walkthrough back.
func (s *PCASession) PrevStep() {
	s.SetStep(s.step - 1)
}

// Points returns the points shown at the current step: the raw data at StepOriginal and
// the centered data afterwards.
func (s *PCASession) Points() []geom.Point {
	r := s.result()
	if s.step >= StepCentered {
		return slices.Clone(r.Centered)
	}

	return slices.Clone(r.Points)
}

// Axes returns the principal axes through the origin of the centered data, scaled to
// scale standard deviations, or nil before StepComponent.
func (s *PCASession) Axes(scale float64) []geom.Segment {
	if s.step < StepComponent {
		return nil
	}
	r := s.result()

	axes := make([]geom.Segment, 2)
	for i := range axes {
		a := r.Axis(i, scale)
		axes[i] = geom.Segment{From: a.From.Sub(r.Mean), To: a.To.Sub(r.Mean)}
	}

	return axes
}

// Projections returns each centered point's projection onto the first axis, or nil before
// StepProjected.
func (s *PCASession) Projections() []geom.Point {
	if s.step < StepProjected {
		return nil
	}

	return slices.Clone(s.result().Reconstructed)
}

// String returns the shape, point count and walkthrough step.
func (s *PCASession) String() string {
	return fmt.Sprintf("PCASession{%s, n=%d, step=%d}", s.gen.Shape, s.gen.Count, s.step)
}

func (s *PCASession) recompute() {
	v := s.analyzer.shared(s.params())
	s.view = s.view.WithXRange(v.XRange).WithYRange(v.YRange)
}
