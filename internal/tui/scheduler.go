package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/concentration/internal/game"
)

// completionMsg carries a finished animation or pause back into Update,
// so the session is only ever touched from the Bubble Tea event loop.
type completionMsg struct {
	generation int
	done       func()
}

// scheduler implements game.Animator and game.Timer with tea.Tick. Commands
// collect until the model hands them back to the runtime.
type scheduler struct {
	generation int
	pending    []tea.Cmd
}

func newScheduler(generation int) *scheduler {
	return &scheduler{generation: generation}
}

// Animate implements game.Animator. The transition is drawn by the
// renderer from Card.Flipping; the tick only marks its end.
func (s *scheduler) Animate(_ *game.Card, d time.Duration, done func()) {
	s.after(d, done)
}

// After implements game.Timer.
func (s *scheduler) After(d time.Duration, done func()) {
	s.after(d, done)
}

func (s *scheduler) after(d time.Duration, done func()) {
	gen := s.generation
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return completionMsg{generation: gen, done: done}
	}))
}

func (s *scheduler) flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
