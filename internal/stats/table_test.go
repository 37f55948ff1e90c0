package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/concentration/internal/model"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Deck", "Pairs", "Time"}
	rows := [][]string{
		{"animals", "8", "1:30.0"},
		{"ab", "12", "0:05.5"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Deck     Pairs    Time" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "animals      8  1:30.0" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "ab          12  0:05.5" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"A", "B"}, [][]string{{"🐶", "x"}}, nil)
	if lines[0] != "A   B" {
		t.Fatalf("expected emoji to count as two cells, got %q", lines[0])
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[int64]string{
		0:      "0:00.0",
		5500:   "0:05.5",
		90000:  "1:30.0",
		600000: "10:00.0",
	}
	for ms, want := range cases {
		if got := FormatDuration(ms); got != want {
			t.Fatalf("FormatDuration(%d) = %q, want %q", ms, got, want)
		}
	}
}

func TestWriteTable(t *testing.T) {
	now := time.Unix(100000, 0)
	games := []model.GameRecord{
		{ID: "1", EndedAt: now.Add(-3 * time.Hour), Deck: "letters", Pairs: 4, Clicks: 12, Mismatches: 2, DurationMs: 40000},
		{ID: "2", EndedAt: now.Add(-30 * time.Second), Deck: "animals", Pairs: 8, Clicks: 30, Mismatches: 7, DurationMs: 95000},
	}
	var buf bytes.Buffer
	if err := WriteTable(&buf, Report{Games: games, Summary: Summarize(games)}, now); err != nil {
		t.Fatalf("write table: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if !strings.HasPrefix(lines[1], "30 seconds ago") {
		t.Fatalf("expected newest game first, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "3 hours ago") {
		t.Fatalf("expected oldest game last, got %q", lines[2])
	}
	if !strings.Contains(buf.String(), "2 games  fastest 0:40.0") {
		t.Fatalf("missing summary: %s", buf.String())
	}
}

func TestWriteTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, Report{}, time.Now()); err != nil {
		t.Fatalf("write table: %v", err)
	}
	if !strings.Contains(buf.String(), "No games") {
		t.Fatalf("expected empty notice, got %q", buf.String())
	}
}
