// Package game implements the click-to-flip coordination of a concentration game.
//
// A Session owns two FIFO queues: clicks waiting to be resolved and
// flip/pause actions waiting to be animated. Each queue has its own run
// state; a caller that finds a queue already draining returns at once and
// relies on the active drain to consume whatever it enqueued. Completions
// from the Animator and Timer resume the flip drain one action at a time.
//
// A Session is not safe for concurrent use. All calls, including the done
// callbacks handed to the Animator and Timer, must come from one goroutine.
package game

// Orientation is the side of a card facing the player.
type Orientation int

const (
	// FaceDown shows the card back.
	FaceDown Orientation = iota
	// FaceUp shows the card front.
	FaceUp
)

func (o Orientation) String() string {
	if o == FaceUp {
		return "face-up"
	}
	return "face-down"
}

// Card is one position in the deck.
type Card struct {
	Index       int
	Front       string
	Orientation Orientation
	// Matched never goes back to false once set.
	Matched bool
	// Flipping is set while the card's most recent flip is animating.
	Flipping bool
}

// NewCards wraps fronts as face-down cards indexed in the given order.
func NewCards(fronts []string) []*Card {
	cards := make([]*Card, len(fronts))
	for i, front := range fronts {
		cards[i] = &Card{Index: i, Front: front}
	}
	return cards
}

// IsFaceUp reports whether the card currently shows its front.
func (c *Card) IsFaceUp() bool {
	return c.Orientation == FaceUp
}

func (c *Card) turn() {
	if c.Orientation == FaceUp {
		c.Orientation = FaceDown
		return
	}
	c.Orientation = FaceUp
}
