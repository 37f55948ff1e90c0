// Package stats contains play log summaries and reporting.
package stats

import (
	"context"

	"github.com/verte-zerg/concentration/internal/model"
	"github.com/verte-zerg/concentration/internal/store"
)

// Report contains precomputed data for history rendering.
type Report struct {
	Games   []model.GameRecord
	Summary Summary
}

// BuildReport loads and prepares data for history rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.HistoryConfig) (Report, error) {
	games, err := st.ListGames(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Games:   games,
		Summary: Summarize(games),
	}, nil
}
