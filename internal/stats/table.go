package stats

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/concentration/internal/model"
)

// GameHeaders are the history table column titles.
var GameHeaders = []string{"When", "Deck", "Pairs", "Clicks", "Misses", "Time"}

// GameRows formats games newest first relative to now.
func GameRows(games []model.GameRecord, now time.Time) [][]string {
	rows := make([][]string, 0, len(games))
	for i := len(games) - 1; i >= 0; i-- {
		g := games[i]
		rows = append(rows, []string{
			humanize.RelTime(g.EndedAt, now, "ago", "from now"),
			g.Deck,
			fmt.Sprintf("%d", g.Pairs),
			fmt.Sprintf("%d", g.Clicks),
			fmt.Sprintf("%d", g.Mismatches),
			FormatDuration(g.DurationMs),
		})
	}
	return rows
}

// FormatDuration renders milliseconds as m:ss.t.
func FormatDuration(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	minutes := int(d / time.Minute)
	seconds := (d % time.Minute).Seconds()
	return fmt.Sprintf("%d:%04.1f", minutes, seconds)
}

// WriteTable writes a plain-text history table and summary to w.
func WriteTable(w io.Writer, report Report, now time.Time) error {
	if len(report.Games) == 0 {
		_, err := fmt.Fprintln(w, "No games recorded yet.")
		return err
	}
	lines := formatTable(GameHeaders, GameRows(report.Games, now), map[int]bool{2: true, 3: true, 4: true, 5: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	s := report.Summary
	_, err := fmt.Fprintf(w, "\n%d games  fastest %s  average %s  %.1f clicks/pair\n",
		s.Games, FormatDuration(s.FastestMs), FormatDuration(s.AvgDurationMs), s.AvgClicksPair)
	return err
}

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = displayWidth(header)
	}
	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
	}
	return strings.TrimRight(b.String(), " ")
}

func padCell(value string, width int, rightAlign bool) string {
	valueWidth := displayWidth(value)
	if valueWidth >= width {
		return value
	}
	padding := width - valueWidth
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}

func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}
