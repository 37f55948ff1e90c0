// Package tui provides the Bubble Tea game surface.
package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/concentration/internal/deck"
	"github.com/verte-zerg/concentration/internal/game"
	"github.com/verte-zerg/concentration/internal/model"
	"github.com/verte-zerg/concentration/internal/stats"
)

// Recorder stores solved games.
type Recorder interface {
	InsertGame(ctx context.Context, rec model.GameRecord) error
}

// Model implements the Bubble Tea game UI.
type Model struct {
	config   model.Config
	recorder Recorder
	gen      *deck.Generator
	logger   *slog.Logger
	keys     keyMap
	help     help.Model
	now      func() time.Time

	session    *game.Session
	sched      *scheduler
	generation int
	inner      int
	cursor     int

	startedAt time.Time
	endedAt   time.Time
	recorded  bool
	errMsg    string

	width  int
	height int
}

// NewModel constructs the game UI and deals the first deck. recorder may be nil.
func NewModel(cfg model.Config, recorder Recorder, gen *deck.Generator, logger *slog.Logger) (*Model, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := &Model{
		config:   cfg,
		recorder: recorder,
		gen:      gen,
		logger:   logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
		now:      time.Now,
		inner:    cardInnerWidth(cfg.Fronts, cfg.Back),
	}
	if err := m.newGame(); err != nil {
		return nil, err
	}
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case completionMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		msg.done()
		m.checkSolved()
		return m, m.sched.flush()
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		idx, ok := cardAt(msg.X, msg.Y, m.config.Columns, m.inner, len(m.session.Cards()))
		if !ok {
			return m, nil
		}
		m.cursor = idx
		m.click(idx, msg)
		return m, m.sched.flush()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Restart):
			if err := m.newGame(); err != nil {
				m.errMsg = err.Error()
			}
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-m.config.Columns)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(m.config.Columns)
		case key.Matches(msg, m.keys.Left):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Right):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.Flip):
			m.click(m.cursor, msg)
			return m, m.sched.flush()
		}
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	title := titleStyle.Render(fmt.Sprintf("Concentration · %s", m.config.Deck))
	grid := renderGrid(m.session.Cards(), m.config.Back, m.config.Columns, m.inner, m.cursor)
	lines := []string{title, grid, m.renderStatus()}
	if m.errMsg != "" {
		lines = append(lines, errorStyle.Render(m.errMsg))
	}
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func (m *Model) newGame() error {
	fronts := append([]string(nil), m.config.Fronts...)
	faces, err := m.gen.Build(fronts, m.config.Pairs)
	if err != nil {
		return fmt.Errorf("failed to build deck: %w", err)
	}
	m.generation++
	m.sched = newScheduler(m.generation)
	timing := game.Timing{
		FaceUp:   m.config.FaceUpTime,
		FaceDown: m.config.FaceDownTime,
		Pause:    m.config.PauseTime,
	}
	m.session = game.NewSession(game.NewCards(faces), timing, m.sched, m.sched, game.WithLogger(m.logger))
	m.cursor = 0
	m.startedAt = time.Time{}
	m.endedAt = time.Time{}
	m.recorded = false
	m.errMsg = ""
	m.logger.Info("new game", "game", m.session.ID(), "deck", m.config.Deck, "cards", len(faces))
	return nil
}

func (m *Model) click(idx int, source tea.Msg) {
	if m.startedAt.IsZero() {
		m.startedAt = m.now()
	}
	m.session.SubmitClick(game.Click{Target: idx, Source: source})
	m.checkSolved()
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.session.Cards()) {
		return
	}
	m.cursor = next
}

// checkSolved records the game once the last pair has finished animating.
func (m *Model) checkSolved() {
	if m.recorded || !m.session.Solved() || !m.session.Idle() {
		return
	}
	m.recorded = true
	m.endedAt = m.now()
	counts := m.session.Counts()
	rec := model.GameRecord{
		ID:         m.session.ID(),
		StartedAt:  m.startedAt,
		EndedAt:    m.endedAt,
		Deck:       m.config.Deck,
		Pairs:      len(m.session.Cards()) / 2,
		Columns:    m.config.Columns,
		Clicks:     counts.Clicks,
		Mismatches: counts.Mismatches,
		DurationMs: m.endedAt.Sub(m.startedAt).Milliseconds(),
	}
	m.logger.Info("game solved", "game", rec.ID, "clicks", rec.Clicks, "duration_ms", rec.DurationMs)
	if m.recorder == nil {
		return
	}
	if err := m.recorder.InsertGame(context.Background(), rec); err != nil {
		m.errMsg = fmt.Sprintf("failed to save game: %v", err)
		m.logger.Error("failed to save game", "game", rec.ID, "err", err)
	}
}

func (m *Model) renderStatus() string {
	cards := m.session.Cards()
	if m.recorded {
		elapsed := m.endedAt.Sub(m.startedAt).Milliseconds()
		return footerStyle.Render(fmt.Sprintf("Solved in %s. Press r for a new game.", stats.FormatDuration(elapsed)))
	}
	matched := 0
	for _, c := range cards {
		if c.Matched {
			matched++
		}
	}
	return footerStyle.Render(fmt.Sprintf("Pairs %d/%d", matched/2, len(cards)/2))
}
