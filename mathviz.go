// Package mathviz is the computation engine behind a set of interactive visualizations of
// elementary statistics and calculus: least-squares regression, numerical differentiation,
// Bayes' theorem, principal component analysis and a two-coin probability game.
//
// The engine owns the numbers and the geometry; rendering is left to the host. Every
// visualization is a session that holds the user-adjustable parameters, recomputes derived
// values when a parameter changes and maps them into a pixel viewport.
//
// # Core Features
//
//   - Closed-form estimators: least squares, 2×2 eigendecomposition, Bayesian update
//   - Affine domain-to-pixel mapping with automatic range fitting
//   - Reflecting animation driver with an explicit frame scheduler contract
//   - Derived results memoized on an xxHash64 key of the parameter tuple
//   - Built-in datasets and examples in an embedded YAML catalogue
//
// # Basic Usage
//
// Comparing a hand-tuned line with the least-squares fit:
//
//	s, _ := mathviz.NewRegression()
//	s.SetSlope(0.9)
//	s.SetIntercept(4)
//	fmt.Println(s.Result().Current.SSE, s.Result().Optimal.SSE, s.IsOptimal())
//
// Animating the point of tangency from a render loop:
//
//	frames := animation.NewFrameQueue()
//	d, _ := mathviz.NewDerivative(session.WithScheduler(frames))
//	d.StartAnimation()
//	for range ticker.C {
//	    frames.Tick(time.Second / 60)
//	    draw(d.Curves(), d.Tangent())
//	}
//
// # Package Structure
//
// This package provides top-level constructors around the session package. The estimators
// live in regression, pca, bayes, calculus and probability; the coordinate mapper in
// viewport; the animation driver in animation. They can be used on their own.
package mathviz

import (
	"github.com/arloliu/mathviz/bayes"
	"github.com/arloliu/mathviz/geom"
	"github.com/arloliu/mathviz/pca"
	"github.com/arloliu/mathviz/regression"
	"github.com/arloliu/mathviz/session"
)

// NewRegression creates a least-squares session over the built-in dataset.
//
// The current model starts at y = x + 5 and the plot covers [0, 100] on both axes.
//
// Example:
//
//	s, err := mathviz.NewRegression(session.WithViewport(800, 600, 50))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s.Optimize()
func NewRegression(opts ...session.Option) (*session.RegressionSession, error) {
	return session.NewRegressionSession(opts...)
}

// NewDerivative creates a derivative session on f(x) = x² with the point at x = 1.
//
// Attach a scheduler with session.WithScheduler to animate the point, or call Step from
// the host's frame loop.
func NewDerivative(opts ...session.Option) (*session.DerivativeSession, error) {
	return session.NewDerivativeSession(opts...)
}

// NewBayes creates a Bayes' theorem session on the default example.
func NewBayes(opts ...session.Option) (*session.BayesSession, error) {
	return session.NewBayesSession(opts...)
}

// NewPCA creates a PCA session on a generated dataset.
//
// Example:
//
//	s, err := mathviz.NewPCA(
//	    session.WithSeed(7),
//	    session.WithDataset(pca.WithShape(pca.AntiCorrelated), pca.WithNoise(40)),
//	)
func NewPCA(opts ...session.Option) (*session.PCASession, error) {
	return session.NewPCASession(opts...)
}

// NewProbability creates a two-coin game session.
func NewProbability(opts ...session.Option) (*session.ProbabilitySession, error) {
	return session.NewProbabilitySession(opts...)
}

// Fit returns the least-squares line through points.
func Fit(points []geom.Point) regression.LinearModel {
	return regression.Fit(points).Model
}

// PCA runs a principal component analysis on points.
func PCA(points []geom.Point) *pca.Result {
	return pca.Analyze(points)
}

// Posterior returns P(A|B) from P(A), P(B|A) and P(B|¬A).
func Posterior(prior, likelihood, falsePositiveRate float64) float64 {
	return bayes.Evidence{Prior: prior, Likelihood: likelihood, FalsePositiveRate: falsePositiveRate}.Posterior()
}
