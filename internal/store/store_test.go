package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/concentration/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "games.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func insertGames(t *testing.T, st *Store, decks ...string) []string {
	t.Helper()
	ctx := context.Background()
	ids := make([]string, 0, len(decks))
	for i, deck := range decks {
		start := time.Unix(0, 0).UTC().Add(time.Duration(i) * time.Hour)
		end := start.Add(90 * time.Second)
		rec := model.GameRecord{
			ID:         uuid.NewString(),
			StartedAt:  start,
			EndedAt:    end,
			Deck:       deck,
			Pairs:      8,
			Columns:    4,
			Clicks:     30 + i,
			Mismatches: 7,
			DurationMs: end.Sub(start).Milliseconds(),
		}
		if err := st.InsertGame(ctx, rec); err != nil {
			t.Fatalf("insert game: %v", err)
		}
		ids = append(ids, rec.ID)
	}
	return ids
}

func TestInsertAndListGames(t *testing.T) {
	st := openTestStore(t)
	ids := insertGames(t, st, "animals", "letters", "animals")

	games, err := st.ListGames(context.Background(), model.HistoryConfig{})
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(games))
	}
	for i, g := range games {
		if g.ID != ids[i] {
			t.Fatalf("expected oldest first, got %+v", games)
		}
	}
	if games[1].Deck != "letters" || games[1].Clicks != 31 || games[1].DurationMs != 90000 {
		t.Fatalf("unexpected round trip: %+v", games[1])
	}
	if !games[0].EndedAt.Equal(time.Unix(90, 0)) {
		t.Fatalf("unexpected ended_at: %v", games[0].EndedAt)
	}
}

func TestListGamesFilters(t *testing.T) {
	st := openTestStore(t)
	ids := insertGames(t, st, "animals", "letters", "animals", "animals")
	ctx := context.Background()

	games, err := st.ListGames(ctx, model.HistoryConfig{Deck: "animals", Last: 2})
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games) != 2 || games[0].ID != ids[2] || games[1].ID != ids[3] {
		t.Fatalf("unexpected filtered games: %+v", games)
	}

	since := time.Unix(0, 0).UTC().Add(150 * time.Minute)
	games, err = st.ListGames(ctx, model.HistoryConfig{Since: &since})
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games) != 1 || games[0].ID != ids[3] {
		t.Fatalf("unexpected since filter result: %+v", games)
	}
}

func TestInsertGameRequiresID(t *testing.T) {
	st := openTestStore(t)
	if err := st.InsertGame(context.Background(), model.GameRecord{}); err == nil {
		t.Fatalf("expected error for record without id")
	}
}
