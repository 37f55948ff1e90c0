package game

import (
	"fmt"
	"time"
)

// Action is a queued animation step. Flip and Pause are the known kinds;
// the sequencer skips anything else.
type Action interface {
	action()
}

// Flip toggles a card's orientation with a transition of the given length.
type Flip struct {
	Card     *Card
	Duration time.Duration
}

// Pause delays the queue without changing any card.
type Pause struct {
	Duration time.Duration
}

func (Flip) action()  {}
func (Pause) action() {}

func (f Flip) String() string {
	return fmt.Sprintf("flip(%d, %s)", f.Card.Index, f.Duration)
}

func (p Pause) String() string {
	return fmt.Sprintf("pause(%s)", p.Duration)
}
