// Package deck builds shuffled card layouts from front-face identifiers.
package deck

import (
	"errors"
	"math/rand"
	"time"
)

var (
	// ErrNoFronts is returned when a deck is requested from an empty front list.
	ErrNoFronts = errors.New("deck needs at least one front")
	// ErrNoPairs is returned when the requested pair count is not positive.
	ErrNoPairs = errors.New("pair count must be > 0")
)

// Generator produces shuffled decks.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewWithSeed returns a Generator with a fixed seed.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Build picks min(pairs, len(fronts)) fronts at random and returns them
// twice each in shuffled order. fronts is shuffled in place.
func (g *Generator) Build(fronts []string, pairs int) ([]string, error) {
	if len(fronts) == 0 {
		return nil, ErrNoFronts
	}
	if pairs <= 0 {
		return nil, ErrNoPairs
	}
	pairs = EffectivePairs(len(fronts), pairs)

	Shuffle(g.rnd, fronts)
	cards := make([]string, 0, 2*pairs)
	cards = append(cards, fronts[:pairs]...)
	cards = append(cards, fronts[:pairs]...)
	Shuffle(g.rnd, cards)
	return cards, nil
}

// EffectivePairs clamps a requested pair count to the available fronts.
func EffectivePairs(available, requested int) int {
	if requested > available {
		return available
	}
	return requested
}
