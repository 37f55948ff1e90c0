package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/concentration/internal/game"
)

const (
	minCardInner = 3
	cardPadding  = 2
	// cardHeight is one label line plus top and bottom border.
	cardHeight = 3
	// gridTop is the number of lines above the grid.
	gridTop = 1
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardBase      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).Align(lipgloss.Center)
	backStyle     = cardBase.Foreground(lipgloss.Color("#8C8C8C")).BorderForeground(lipgloss.Color("#4A4A4A"))
	frontStyle    = cardBase.Foreground(lipgloss.Color("#F0F0F0")).BorderForeground(lipgloss.Color("#C89A3A"))
	matchedStyle  = cardBase.Foreground(lipgloss.Color("#7EC87E")).BorderForeground(lipgloss.Color("#3F7F3F"))
	flippingStyle = cardBase.Foreground(lipgloss.Color("#5A5A5A")).BorderForeground(lipgloss.Color("#6E6E6E")).Faint(true)
)

// cardInnerWidth fits the widest label plus padding.
func cardInnerWidth(fronts []string, back string) int {
	width := runewidth.StringWidth(back)
	for _, f := range fronts {
		if w := runewidth.StringWidth(f); w > width {
			width = w
		}
	}
	width += cardPadding
	if width < minCardInner {
		width = minCardInner
	}
	return width
}

func cardLabel(card *game.Card, back string, inner int) string {
	label := back
	if card.IsFaceUp() {
		label = card.Front
	}
	return runewidth.Truncate(label, inner, "…")
}

func cardStyle(card *game.Card, selected bool) lipgloss.Style {
	style := backStyle
	switch {
	case card.Flipping:
		style = flippingStyle
	case card.Matched:
		style = matchedStyle
	case card.IsFaceUp():
		style = frontStyle
	}
	if selected {
		style = style.Border(lipgloss.ThickBorder(), true).Bold(true)
	}
	return style
}

func renderCard(card *game.Card, back string, inner int, selected bool) string {
	return cardStyle(card, selected).Width(inner).Render(cardLabel(card, back, inner))
}

func renderGrid(cards []*game.Card, back string, columns, inner, cursor int) string {
	if columns < 1 {
		columns = 1
	}
	rows := make([]string, 0, (len(cards)+columns-1)/columns)
	for start := 0; start < len(cards); start += columns {
		end := start + columns
		if end > len(cards) {
			end = len(cards)
		}
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, renderCard(cards[i], back, inner, i == cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// cardAt maps a terminal cell to a card index. Cells outside the grid, or
// past the last card of a short final row, report false.
func cardAt(x, y, columns, inner, count int) (int, bool) {
	if x < 0 || y < gridTop || columns < 1 {
		return 0, false
	}
	outer := inner + 2
	col := x / outer
	if col >= columns {
		return 0, false
	}
	row := (y - gridTop) / cardHeight
	idx := row*columns + col
	if idx >= count {
		return 0, false
	}
	return idx, true
}
