package game

import (
	"fmt"
	"time"
)

type scheduled struct {
	kind string
	card *Card
	d    time.Duration
	done func()
}

func (c scheduled) String() string {
	if c.kind == "pause" {
		return fmt.Sprintf("pause %s", c.d)
	}
	return fmt.Sprintf("flip %d %s", c.card.Index, c.d)
}

// fakeScheduler holds completions until the test fires them.
type fakeScheduler struct {
	pending        []scheduled
	history        []scheduled
	maxOutstanding int
}

func (f *fakeScheduler) Animate(card *Card, d time.Duration, done func()) {
	f.push(scheduled{kind: "flip", card: card, d: d, done: done})
}

func (f *fakeScheduler) After(d time.Duration, done func()) {
	f.push(scheduled{kind: "pause", d: d, done: done})
}

func (f *fakeScheduler) push(c scheduled) {
	f.pending = append(f.pending, c)
	f.history = append(f.history, c)
	if len(f.pending) > f.maxOutstanding {
		f.maxOutstanding = len(f.pending)
	}
}

func (f *fakeScheduler) fire() bool {
	if len(f.pending) == 0 {
		return false
	}
	next := f.pending[0]
	f.pending = f.pending[1:]
	next.done()
	return true
}

func (f *fakeScheduler) settle() {
	for f.fire() {
	}
}

func (f *fakeScheduler) trace() []string {
	out := make([]string, len(f.history))
	for i, c := range f.history {
		out[i] = c.String()
	}
	return out
}

type unknownAction struct{}

func (unknownAction) action() {}

var testTiming = Timing{
	FaceUp:   10 * time.Millisecond,
	FaceDown: time.Second,
	Pause:    500 * time.Millisecond,
}

func newTestSession(fronts ...string) (*Session, *fakeScheduler) {
	sched := &fakeScheduler{}
	return NewSession(NewCards(fronts), testTiming, sched, sched, WithID("test")), sched
}
