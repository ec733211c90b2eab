package session

import (
	"log/slog"
	"slices"
	"time"

	"github.com/arloliu/mathviz/animation"
	"github.com/arloliu/mathviz/internal/hash"
	"github.com/arloliu/mathviz/probability"
)

// FlipInterval is the time between two simulated flips when a scheduler drives the
// simulation.
const FlipInterval = 200 * time.Millisecond

// ProbabilityParams select a bet.
type ProbabilityParams struct {
	Choice probability.OptionID
}

// Key implements Params.
func (p ProbabilityParams) Key() uint64 {
	return hash.NewKey().String(string(p.Choice)).Sum64()
}

// Equal implements Params.
func (p ProbabilityParams) Equal(o ProbabilityParams) bool {
	return p.Choice == o.Choice
}

// ProbabilityView is the theory behind a bet.
type ProbabilityView struct {
	Choice probability.Option
	// Outcomes marks which outcomes of probability.Outcomes the bet wins on.
	Outcomes []bool
	// Best reports whether no other bet has a higher probability of winning.
	Best bool
}

// Clone returns a copy of v that shares no memory with it.
func (v ProbabilityView) Clone() ProbabilityView {
	v.Choice = v.Choice.Clone()
	v.Outcomes = slices.Clone(v.Outcomes)

	return v
}

// ProbabilityAnalyzer evaluates a bet against the sample space.
type ProbabilityAnalyzer struct{}

// Kind implements Analyzer.
func (ProbabilityAnalyzer) Kind() Kind { return KindProbability }

// Compute implements Analyzer. An unknown bet yields the zero view.
func (ProbabilityAnalyzer) Compute(p ProbabilityParams) ProbabilityView {
	opt, err := probability.LookupOption(p.Choice)
	if err != nil {
		return ProbabilityView{}
	}

	wins := make([]bool, len(probability.Outcomes))
	for i, o := range probability.Outcomes {
		wins[i] = opt.Wins(o)
	}

	return ProbabilityView{
		Choice:   opt,
		Outcomes: wins,
		Best:     opt.Probability >= probability.Best().Probability,
	}
}

// ProbabilitySession is the two-coin game: a chosen bet and a simulation of it.
type ProbabilitySession struct {
	log       *slog.Logger
	seed      uint64
	runs      uint64
	choice    probability.OptionID
	analyzer  *Cached[ProbabilityParams, ProbabilityView]
	sim       *probability.Simulation
	scheduler animation.Scheduler
	cancel    func()
	gen       uint64
	elapsed   time.Duration
}

// NewProbabilitySession returns a session betting on the mixed outcome.
func NewProbabilitySession(opts ...Option) (*ProbabilitySession, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	s := &ProbabilitySession{
		log:       cfg.Logger,
		seed:      cfg.Seed,
		choice:    probability.Mixed,
		analyzer:  NewCached[ProbabilityParams, ProbabilityView](ProbabilityAnalyzer{}, cfg.Logger),
		scheduler: cfg.Scheduler,
	}
	s.View()

	return s, nil
}

// SelectOption chooses the bet. A running simulation is stopped and discarded.
func (s *ProbabilitySession) SelectOption(id probability.OptionID) error {
	if _, err := probability.LookupOption(id); err != nil {
		return err
	}
	s.StopSimulation()
	s.sim = nil
	s.choice = id
	s.View()

	return nil
}

// Choice returns the chosen bet.
func (s *ProbabilitySession) Choice() probability.OptionID {
	return s.choice
}

// View returns the theory behind the chosen bet.
func (s *ProbabilitySession) View() ProbabilityView {
	return s.analyzer.Compute(ProbabilityParams{Choice: s.choice})
}

// StartSimulation starts a new simulation of rounds flips, replacing any previous one.
// With a scheduler attached a flip is revealed every FlipInterval; otherwise the host
// calls Advance.
func (s *ProbabilitySession) StartSimulation(rounds int) error {
	s.StopSimulation()

	s.runs++
	sim, err := probability.NewSimulation(s.choice, rounds, s.seed+s.runs-1)
	if err != nil {
		return err
	}
	s.sim = sim
	s.elapsed = 0
	s.log.Debug("simulation started", slog.String("choice", string(s.choice)), slog.Int("rounds", rounds))
	s.requestFrame()

	return nil
}

// StopSimulation stops revealing flips. The flips so far are kept.
func (s *ProbabilitySession) StopSimulation() {
	s.gen++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
		s.log.Debug("simulation stopped")
	}
}

// Simulating reports whether a simulation has rounds left.
func (s *ProbabilitySession) Simulating() bool {
	return s.sim != nil && !s.sim.Done()
}

// Advance reveals the next flip. It returns false when no simulation has rounds left.
func (s *ProbabilitySession) Advance() (probability.Flip, bool) {
	if s.sim == nil {
		return probability.Flip{}, false
	}

	return s.sim.Step()
}

// Flips returns the flips revealed so far.
func (s *ProbabilitySession) Flips() []probability.Flip {
	if s.sim == nil {
		return nil
	}

	return s.sim.Flips()
}

// SimulationStats returns the tally of the flips revealed so far.
func (s *ProbabilitySession) SimulationStats() probability.Stats {
	if s.sim == nil {
		return probability.Stats{}
	}

	return s.sim.Stats()
}

func (s *ProbabilitySession) requestFrame() {
	if s.scheduler == nil || !s.Simulating() {
		return
	}

	s.gen++
	gen := s.gen
	s.cancel = s.scheduler.RequestFrame(func(dt time.Duration) {
		if gen != s.gen {
			return
		}
		s.cancel = nil
		s.elapsed += max(dt, 0)
		for s.elapsed >= FlipInterval && s.Simulating() {
			s.elapsed -= FlipInterval
			s.Advance()
		}
		if s.Simulating() {
			s.requestFrame()
		} else {
			s.log.Debug("simulation finished", slog.Int("wins", s.sim.Stats().Wins))
		}
	})
}
