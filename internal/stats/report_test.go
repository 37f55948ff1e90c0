package stats

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/concentration/internal/model"
	"github.com/verte-zerg/concentration/internal/store"
)

func TestBuildReport(t *testing.T) {
	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "games.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
		end := start.Add(30 * time.Second)
		rec := model.GameRecord{
			ID:         string(rune('a' + i)),
			StartedAt:  start,
			EndedAt:    end,
			Deck:       "letters",
			Pairs:      2,
			Columns:    2,
			Clicks:     4 + 2*i,
			Mismatches: i,
			DurationMs: end.Sub(start).Milliseconds(),
		}
		if err := st.InsertGame(ctx, rec); err != nil {
			t.Fatalf("insert game: %v", err)
		}
	}

	report, err := BuildReport(ctx, st, model.HistoryConfig{Deck: "letters", Last: 2})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(report.Games))
	}
	if report.Games[0].ID != "b" || report.Games[1].ID != "c" {
		t.Fatalf("unexpected games: %+v", report.Games)
	}
	if report.Summary.Games != 2 || report.Summary.AvgDurationMs != 30000 {
		t.Fatalf("unexpected summary: %+v", report.Summary)
	}
}
