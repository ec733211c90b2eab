package probability

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// DefaultRounds is the number of flips in a simulation.
const DefaultRounds = 20

// Flip is one round of a simulation.
type Flip struct {
	Round   int // 1-based
	Outcome Outcome
	Winner  OptionID
	UserWon bool
}

// Stats aggregates the rounds played so far.
type Stats struct {
	Wins    int
	Losses  int
	WinRate float64 // percent
}

// String returns the tally with the win rate in percent.
func (s Stats) String() string {
	return fmt.Sprintf("wins=%d losses=%d win rate=%.1f%%", s.Wins, s.Losses, s.WinRate)
}

// Simulation plays a fixed number of rounds for one chosen bet, one round per Step, so a
// host can reveal the flips over time. It is not safe for concurrent use.
type Simulation struct {
	choice Option
	rounds int
	rng    *rand.Rand
	flips  []Flip
	wins   int
}

// NewSimulation returns a simulation of rounds flips betting on choice, with coins drawn
// from a PCG source seeded with seed.
func NewSimulation(choice OptionID, rounds int, seed uint64) (*Simulation, error) {
	opt, err := LookupOption(choice)
	if err != nil {
		return nil, err
	}

	return &Simulation{
		choice: opt,
		rounds: max(rounds, 0),
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		flips:  make([]Flip, 0, max(rounds, 0)),
	}, nil
}

// Choice returns the bet being simulated.
func (s *Simulation) Choice() Option {
	return s.choice.Clone()
}

// Rounds returns the total number of rounds.
func (s *Simulation) Rounds() int {
	return s.rounds
}

// Done reports whether every round has been played.
func (s *Simulation) Done() bool {
	return len(s.flips) >= s.rounds
}

// Step plays the next round. It returns false once the simulation is done.
func (s *Simulation) Step() (Flip, bool) {
	if s.Done() {
		return Flip{}, false
	}

	o := Outcome{s.coin(), s.coin()}
	winner := Winner(o)
	f := Flip{
		Round:   len(s.flips) + 1,
		Outcome: o,
		Winner:  winner,
		UserWon: winner == s.choice.ID,
	}
	s.flips = append(s.flips, f)
	if f.UserWon {
		s.wins++
	}

	return f, true
}

// Run plays all remaining rounds.
func (s *Simulation) Run() Stats {
	for !s.Done() {
		s.Step()
	}

	return s.Stats()
}

// Flips returns a copy of the rounds played so far.
func (s *Simulation) Flips() []Flip {
	return slices.Clone(s.flips)
}

// Stats returns the tally of the rounds played so far.
func (s *Simulation) Stats() Stats {
	n := len(s.flips)
	if n == 0 {
		return Stats{}
	}

	return Stats{
		Wins:    s.wins,
		Losses:  n - s.wins,
		WinRate: float64(s.wins) / float64(n) * 100,
	}
}

func (s *Simulation) coin() Face {
	if s.rng.Float64() < 0.5 {
		return Heads
	}

	return Tails
}
