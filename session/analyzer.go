package session

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/arloliu/mathviz/geom"
	"github.com/arloliu/mathviz/internal/memo"
	"github.com/arloliu/mathviz/viewport"
)

// Kind names an analysis.
type Kind string

const (
	// KindRegression is the least-squares comparison of RegressionAnalyzer.
	KindRegression Kind = "regression"
	// KindDerivative is the curve sampling of CurveAnalyzer.
	KindDerivative Kind = "derivative"
	// KindTangent is the tangent and secant geometry of TangentAnalyzer.
	KindTangent Kind = "tangent"
	// KindBayes is the Bayesian update of BayesAnalyzer.
	KindBayes Kind = "bayes"
	// KindPCA is the dataset generation and PCA of PCAAnalyzer.
	KindPCA Kind = "pca"
	// KindProbability is the bet evaluation of ProbabilityAnalyzer.
	KindProbability Kind = "probability"
)

// Params is a parameter tuple. Key returns a hash that is equal for equal tuples, and
// Equal compares two tuples exactly.
type Params[P any] interface {
	Key() uint64
	Equal(other P) bool
}

// Snapshot is a derived value that can be deep-copied.
type Snapshot[R any] interface {
	Clone() R
}

// Analyzer computes the derived values of one analysis kind. Compute must be a pure
// function of its parameters.
type Analyzer[P Params[P], R any] interface {
	Kind() Kind
	Compute(params P) R
}

// Cached memoizes an Analyzer on its last parameters. The cached value is never handed
// out: Compute returns a clone, so callers may modify what they receive.
type Cached[P Params[P], R Snapshot[R]] struct {
	analyzer Analyzer[P, R]
	logger   *slog.Logger
	cell     *memo.Cell[P, R]
}

var _ Analyzer[BayesParams, BayesView] = (*Cached[BayesParams, BayesView])(nil)

// NewCached wraps a. Recomputations are logged at debug level on logger, which may be nil.
//
// Parameters:
//   - a: Analyzer to memoize
//   - logger: Destination of the debug logs; nil discards them
//
// Returns:
//   - *Cached[P, R]: Memoizing analyzer with an empty cache
func NewCached[P Params[P], R Snapshot[R]](a Analyzer[P, R], logger *slog.Logger) *Cached[P, R] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Cached[P, R]{
		analyzer: a,
		logger:   logger,
		cell:     memo.NewCell[P, R](func(x, y P) bool { return x.Equal(y) }),
	}
}

// Kind returns the kind of the wrapped analyzer.
func (c *Cached[P, R]) Kind() Kind {
	return c.analyzer.Kind()
}

// Compute returns a copy of the cached result when params equal the parameters of the last
// call and recomputes otherwise.
func (c *Cached[P, R]) Compute(params P) R {
	return c.shared(params).Clone()
}

// shared returns the cached result itself. Callers must treat it as read-only.
func (c *Cached[P, R]) shared(params P) R {
	key := params.Key()
	collisions := c.cell.Collisions()

	v := c.cell.Get(key, params, func() R {
		c.logger.Debug("recompute", slog.String("kind", string(c.analyzer.Kind())), slog.String("key", fmt.Sprintf("%016x", key)))
		return c.analyzer.Compute(params)
	})
	if c.cell.Collisions() != collisions {
		c.logger.Debug("key collision", slog.String("kind", string(c.analyzer.Kind())), slog.String("key", fmt.Sprintf("%016x", key)))
	}

	return v
}

// Invalidate drops the cached result.
func (c *Cached[P, R]) Invalidate() {
	c.cell.Invalidate()
}

// Stats returns the cache hits and misses so far.
func (c *Cached[P, R]) Stats() (hits, misses uint64) {
	return c.cell.Stats()
}

// sameFloat compares like the key hash does: NaN equals NaN and -0 equals 0.
func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func samePoint(a, b geom.Point) bool {
	return sameFloat(a.X, b.X) && sameFloat(a.Y, b.Y)
}

func sameRange(a, b viewport.Range) bool {
	return sameFloat(a.Min, b.Min) && sameFloat(a.Max, b.Max)
}
