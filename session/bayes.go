package session

import (
	"log/slog"

	"github.com/arloliu/mathviz/bayes"
	"github.com/arloliu/mathviz/internal/hash"
	"github.com/arloliu/mathviz/preset"
)

// BayesParams are the inputs of a Bayesian update.
type BayesParams struct {
	bayes.Evidence
	Total float64 // population size
}

// Key implements Params.
func (p BayesParams) Key() uint64 {
	return hash.NewKey().Float64s(p.Prior, p.Likelihood, p.FalsePositiveRate, p.Total).Sum64()
}

// Equal implements Params.
func (p BayesParams) Equal(o BayesParams) bool {
	return sameFloat(p.Prior, o.Prior) &&
		sameFloat(p.Likelihood, o.Likelihood) &&
		sameFloat(p.FalsePositiveRate, o.FalsePositiveRate) &&
		sameFloat(p.Total, o.Total)
}

// BayesView is the update together with its population view.
type BayesView struct {
	Result     bayes.Result
	Population bayes.Population
}

// Clone returns v; a BayesView holds no shared memory.
func (v BayesView) Clone() BayesView { return v }

// BayesAnalyzer applies Bayes' theorem.
type BayesAnalyzer struct{}

// Kind implements Analyzer.
func (BayesAnalyzer) Kind() Kind { return KindBayes }

// Compute implements Analyzer.
func (BayesAnalyzer) Compute(p BayesParams) BayesView {
	return BayesView{
		Result:     bayes.Update(p.Evidence),
		Population: p.Evidence.Population(p.Total),
	}
}

// BayesSession is the Bayes' theorem visualization.
type BayesSession struct {
	log      *slog.Logger
	catalog  *preset.Catalog
	evidence bayes.Evidence
	example  string
	analyzer *Cached[BayesParams, BayesView]
}

// NewBayesSession returns a session on the default example of the catalogue.
//
// Returns:
//   - *BayesSession: Session with the default example loaded
//   - error: Option error, or ErrUnknownPreset when the catalogue has no default example
func NewBayesSession(opts ...Option) (*BayesSession, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	s := &BayesSession{
		log:      cfg.Logger,
		catalog:  cfg.Catalog,
		analyzer: NewCached[BayesParams, BayesView](BayesAnalyzer{}, cfg.Logger),
	}
	if err := s.LoadExample(preset.DefaultName); err != nil {
		return nil, err
	}

	return s, nil
}

// LoadExample sets the three inputs from the named catalogue example.
func (s *BayesSession) LoadExample(name string) error {
	e, err := s.catalog.BayesExample(name)
	if err != nil {
		return err
	}
	s.log.Debug("bayes example loaded", slog.String("name", name))
	s.SetEvidence(e.Evidence)
	s.example = name

	return nil
}

// Example returns the name of the loaded example, or "" once an input was changed by hand.
func (s *BayesSession) Example() string {
	return s.example
}

// SetPrior sets P(A).
func (s *BayesSession) SetPrior(p float64) {
	e := s.evidence
	e.Prior = p
	s.SetEvidence(e)
}

// SetLikelihood sets P(B|A).
func (s *BayesSession) SetLikelihood(p float64) {
	e := s.evidence
	e.Likelihood = p
	s.SetEvidence(e)
}

// SetFalsePositiveRate sets P(B|¬A).
func (s *BayesSession) SetFalsePositiveRate(p float64) {
	e := s.evidence
	e.FalsePositiveRate = p
	s.SetEvidence(e)
}

// SetEvidence sets all three inputs.
func (s *BayesSession) SetEvidence(e bayes.Evidence) {
	s.evidence = e
	s.example = ""
	s.View()
}

// Evidence returns the current inputs.
func (s *BayesSession) Evidence() bayes.Evidence {
	return s.evidence
}

// BayesResult returns the marginal and posterior of the current inputs.
func (s *BayesSession) BayesResult() bayes.Result {
	return s.View().Result
}

// Population returns the update over bayes.DefaultPopulation individuals.
func (s *BayesSession) Population() bayes.Population {
	return s.View().Population
}

// View returns the full derived view.
func (s *BayesSession) View() BayesView {
	return s.analyzer.Compute(BayesParams{Evidence: s.evidence, Total: bayes.DefaultPopulation})
}
