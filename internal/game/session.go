package game

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// RunState tracks whether a queue is being drained.
type RunState int

const (
	// Idle means no drain is running; the next request starts one.
	Idle RunState = iota
	// Draining means a drain is active and will consume new items.
	Draining
)

func (r RunState) String() string {
	if r == Draining {
		return "draining"
	}
	return "idle"
}

// Timing holds the configured transition lengths.
type Timing struct {
	FaceUp   time.Duration
	FaceDown time.Duration
	Pause    time.Duration
}

// Click is a user interaction aimed at one card.
type Click struct {
	Target int
	// Source is the originating event, kept for the caller's benefit.
	Source any
}

// Animator runs a card transition and calls done exactly once when it ends.
type Animator interface {
	Animate(card *Card, d time.Duration, done func())
}

// Timer calls done exactly once after d.
type Timer interface {
	After(d time.Duration, done func())
}

// Counts are raw interaction tallies for the play log.
type Counts struct {
	Clicks     int
	Pairs      int
	Mismatches int
}

// Session is the mutable state of one game.
type Session struct {
	id       string
	cards    []*Card
	timing   Timing
	animator Animator
	timer    Timer
	log      *slog.Logger

	clicks        []Click
	flips         []Action
	clickState    RunState
	flipState     RunState
	pendingFaceUp *Card

	drainStarts int
	matched     int
	counts      Counts
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes engine diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithID overrides the generated game id.
func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// NewSession creates the state for one game over cards.
func NewSession(cards []*Card, timing Timing, animator Animator, timer Timer, opts ...Option) *Session {
	s := &Session{
		id:       uuid.NewString(),
		cards:    cards,
		timing:   timing,
		animator: animator,
		timer:    timer,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("game", s.id)
	return s
}

// ID returns the game id.
func (s *Session) ID() string { return s.id }

// Cards returns the deck in index order.
func (s *Session) Cards() []*Card { return s.cards }

// Timing returns the configured transition lengths.
func (s *Session) Timing() Timing { return s.timing }

// PendingFaceUp returns the unmatched card waiting for its partner, or nil.
func (s *Session) PendingFaceUp() *Card { return s.pendingFaceUp }

// QueuedActions returns a copy of the actions not yet started.
func (s *Session) QueuedActions() []Action {
	return append([]Action(nil), s.flips...)
}

// QueuedClicks returns the number of clicks not yet resolved.
func (s *Session) QueuedClicks() int { return len(s.clicks) }

// ClickState reports whether clicks are being processed.
func (s *Session) ClickState() RunState { return s.clickState }

// FlipState reports whether the action queue is being drained.
func (s *Session) FlipState() RunState { return s.flipState }

// DrainStarts counts transitions of the action queue from Idle to Draining.
func (s *Session) DrainStarts() int { return s.drainStarts }

// Counts returns interaction tallies so far.
func (s *Session) Counts() Counts { return s.counts }

// Solved reports whether every card is matched.
func (s *Session) Solved() bool {
	return len(s.cards) > 0 && s.matched == len(s.cards)
}

// Idle reports whether both queues are empty and no drain is running.
func (s *Session) Idle() bool {
	return s.clickState == Idle && s.flipState == Idle && len(s.clicks) == 0 && len(s.flips) == 0
}
