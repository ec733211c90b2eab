package session

import (
	"slices"

	"github.com/arloliu/mathviz/geom"
	"github.com/arloliu/mathviz/internal/hash"
	"github.com/arloliu/mathviz/preset"
	"github.com/arloliu/mathviz/regression"
	"github.com/arloliu/mathviz/viewport"
)

// RegressionDomain is the domain shown on both axes of the regression plot.
var RegressionDomain = viewport.Range{Min: 0, Max: 100}

// RegressionParams are the inputs of a regression analysis.
type RegressionParams struct {
	Points []geom.Point
	Model  regression.LinearModel
}

// Key implements Params.
func (p RegressionParams) Key() uint64 {
	k := hash.NewKey().Int(len(p.Points))
	for _, pt := range p.Points {
		k.Float64(pt.X).Float64(pt.Y)
	}

	return k.Float64(p.Model.Slope).Float64(p.Model.Intercept).Sum64()
}

// Equal implements Params.
func (p RegressionParams) Equal(o RegressionParams) bool {
	return sameFloat(p.Model.Slope, o.Model.Slope) &&
		sameFloat(p.Model.Intercept, o.Model.Intercept) &&
		slices.EqualFunc(p.Points, o.Points, samePoint)
}

// RegressionAnalyzer compares a model with the least-squares fit.
type RegressionAnalyzer struct{}

// Kind implements Analyzer.
func (RegressionAnalyzer) Kind() Kind { return KindRegression }

// Compute implements Analyzer.
func (RegressionAnalyzer) Compute(p RegressionParams) *regression.Result {
	return regression.Analyze(p.Points, p.Model)
}

// RegressionSession is the least-squares visualization: a dataset and a user-adjusted line.
type RegressionSession struct {
	cfg      *Config
	initial  preset.Dataset
	points   []geom.Point
	model    regression.LinearModel
	analyzer *Cached[RegressionParams, *regression.Result]
	view     viewport.Viewport
}

// NewRegressionSession returns a session over the default dataset of the catalogue.
//
// Parameters:
//   - opts: Optional session settings (viewport, logger, catalogue)
//
// Returns:
//   - *RegressionSession: Session with the default dataset and its starting model loaded
//   - error: ErrInvalidViewport for bad viewport options, or ErrUnknownPreset when the
//     catalogue has no default dataset
//
// Example:
//
//	s, err := session.NewRegressionSession(session.WithViewport(800, 600, 40))
//	if err != nil {
//	    return err
//	}
//	s.Optimize()
//	fmt.Println(s.IsOptimal()) // true
func NewRegressionSession(opts ...Option) (*RegressionSession, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	initial, err := cfg.Catalog.Dataset(preset.DefaultName)
	if err != nil {
		return nil, err
	}

	view, err := cfg.viewport(RegressionDomain, RegressionDomain)
	if err != nil {
		return nil, err
	}

	s := &RegressionSession{
		cfg:      cfg,
		analyzer: NewCached[RegressionParams, *regression.Result](RegressionAnalyzer{}, cfg.Logger),
		view:     view,
	}
	s.load(initial)

	return s, nil
}

// LoadDataset replaces the dataset and model with the named catalogue entry.
func (s *RegressionSession) LoadDataset(name string) error {
	d, err := s.cfg.Catalog.Dataset(name)
	if err != nil {
		return err
	}
	s.load(d)

	return nil
}

func (s *RegressionSession) load(d preset.Dataset) {
	s.initial = d
	s.points = slices.Clone(d.Points)
	s.model = d.Model
	s.recompute()
}

// SetData replaces the dataset. The slice is copied.
func (s *RegressionSession) SetData(points []geom.Point) {
	s.points = slices.Clone(points)
	s.recompute()
}

// SetSlope sets the slope of the current model.
func (s *RegressionSession) SetSlope(slope float64) {
	s.model.Slope = slope
	s.recompute()
}

// SetIntercept sets the intercept of the current model.
func (s *RegressionSession) SetIntercept(intercept float64) {
	s.model.Intercept = intercept
	s.recompute()
}

// SetModel sets both coefficients of the current model.
func (s *RegressionSession) SetModel(m regression.LinearModel) {
	s.model = m
	s.recompute()
}

// Optimize sets the current model to the least-squares fit.
func (s *RegressionSession) Optimize() {
	s.SetModel(s.OptimalModel())
}

// Reset restores the dataset and model the session was loaded with.
func (s *RegressionSession) Reset() {
	s.load(s.initial)
}

func (s *RegressionSession) recompute() {
	s.result()
}

// result returns the cached comparison. The dataset slice is shared with the cache key and
// is only ever replaced, never modified in place.
func (s *RegressionSession) result() *regression.Result {
	return s.analyzer.shared(RegressionParams{Points: s.points, Model: s.model})
}

// Points returns a copy of the dataset.
func (s *RegressionSession) Points() []geom.Point {
	return slices.Clone(s.points)
}

// CurrentModel returns the user-adjusted model.
func (s *RegressionSession) CurrentModel() regression.LinearModel {
	return s.model
}

// OptimalModel returns the least-squares model.
func (s *RegressionSession) OptimalModel() regression.LinearModel {
	return s.result().Optimal.Model
}

// IsOptimal reports whether the current model matches the least-squares model within
// regression.OptimalityTolerance.
func (s *RegressionSession) IsOptimal() bool {
	return s.result().IsOptimal
}

// Residuals returns the residuals of model over the dataset.
func (s *RegressionSession) Residuals(model regression.LinearModel) []regression.Residual {
	r := s.result()
	switch model {
	case r.Current.Model:
		return slices.Clone(r.Current.Residuals)
	case r.Optimal.Model:
		return slices.Clone(r.Optimal.Residuals)
	default:
		return regression.Residuals(s.points, model)
	}
}

// Result returns the comparison between the current and the optimal model. The result is
// a copy; modifying it does not affect the session.
func (s *RegressionSession) Result() *regression.Result {
	return s.analyzer.Compute(RegressionParams{Points: s.points, Model: s.model})
}

// Viewport returns the pixel mapping of the plot.
func (s *RegressionSession) Viewport() viewport.Viewport {
	return s.view
}

// Line returns model across RegressionDomain in pixel coordinates.
func (s *RegressionSession) Line(model regression.LinearModel) geom.Segment {
	return s.view.SegmentToPixel(model.Line(RegressionDomain.Min, RegressionDomain.Max))
}

// PixelPoints returns the dataset in pixel coordinates.
func (s *RegressionSession) PixelPoints() []geom.Point {
	return s.view.PathToPixel(s.points)
}
