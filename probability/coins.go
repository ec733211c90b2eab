// Package probability models the two-coin game: two fair coins are flipped and the player
// wins when the outcome matches the option they picked.
package probability

import (
	"fmt"
	"slices"

	"github.com/arloliu/mathviz/errs"
)

// Face is one side of a coin.
type Face byte

const (
	// Heads is printed as "H".
	Heads Face = 'H'
	// Tails is printed as "T".
	Tails Face = 'T'
)

// String returns "H" or "T".
func (f Face) String() string {
	return string(f)
}

// Outcome is the result of flipping both coins.
type Outcome [2]Face

// String returns both faces, e.g. "HT".
func (o Outcome) String() string {
	return string([]byte{byte(o[0]), byte(o[1])})
}

// Outcomes lists the sample space in a fixed order.
var Outcomes = []Outcome{{Heads, Heads}, {Heads, Tails}, {Tails, Heads}, {Tails, Tails}}

// OptionID identifies a bet.
type OptionID string

const (
	// TwoHeads wins when both coins show heads.
	TwoHeads OptionID = "twoHeads"
	// TwoTails wins when both coins show tails.
	TwoTails OptionID = "twoTails"
	// Mixed wins when the coins differ.
	Mixed OptionID = "mixed"
)

// Option is a bet together with the outcomes it wins on.
type Option struct {
	ID          OptionID
	Title       string
	Probability float64
	Favorable   []Outcome
}

// Wins reports whether o is a favorable outcome.
func (opt Option) Wins(o Outcome) bool {
	return slices.Contains(opt.Favorable, o)
}

// Clone returns a copy of opt that shares no memory with it.
func (opt Option) Clone() Option {
	opt.Favorable = slices.Clone(opt.Favorable)
	return opt
}

var options = []Option{
	{ID: TwoHeads, Title: "Two heads", Probability: 0.25, Favorable: []Outcome{{Heads, Heads}}},
	{ID: TwoTails, Title: "Two tails", Probability: 0.25, Favorable: []Outcome{{Tails, Tails}}},
	{ID: Mixed, Title: "One head and one tail", Probability: 0.5, Favorable: []Outcome{{Heads, Tails}, {Tails, Heads}}},
}

// Options returns the three bets.
func Options() []Option {
	out := make([]Option, len(options))
	for i, opt := range options {
		out[i] = opt.Clone()
	}

	return out
}

// LookupOption returns the bet with the given identifier.
func LookupOption(id OptionID) (Option, error) {
	for _, opt := range options {
		if opt.ID == id {
			return opt.Clone(), nil
		}
	}

	return Option{}, fmt.Errorf("%w: %q", errs.ErrUnknownOption, id)
}

// Winner returns the bet that wins on o. Every outcome is won by exactly one bet.
func Winner(o Outcome) OptionID {
	switch {
	case o[0] == Heads && o[1] == Heads:
		return TwoHeads
	case o[0] == Tails && o[1] == Tails:
		return TwoTails
	default:
		return Mixed
	}
}

// Best returns the bet with the highest probability of winning.
func Best() Option {
	best := slices.MaxFunc(options, func(a, b Option) int {
		switch {
		case a.Probability < b.Probability:
			return -1
		case a.Probability > b.Probability:
			return 1
		default:
			return 0
		}
	})

	return best.Clone()
}
