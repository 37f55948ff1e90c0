package stats

import "github.com/verte-zerg/concentration/internal/model"

// Summary aggregates a list of games.
type Summary struct {
	Games          int
	FastestMs      int64
	AvgDurationMs  int64
	AvgClicksPair  float64
	MismatchesRate float64
}

// Summarize computes averages across games. Empty input yields a zero Summary.
func Summarize(games []model.GameRecord) Summary {
	if len(games) == 0 {
		return Summary{}
	}
	var sum Summary
	var totalMs int64
	var clicks, pairs, mismatches int
	for i, g := range games {
		totalMs += g.DurationMs
		if i == 0 || g.DurationMs < sum.FastestMs {
			sum.FastestMs = g.DurationMs
		}
		clicks += g.Clicks
		pairs += g.Pairs
		mismatches += g.Mismatches
	}
	sum.Games = len(games)
	sum.AvgDurationMs = totalMs / int64(len(games))
	if pairs > 0 {
		sum.AvgClicksPair = float64(clicks) / float64(pairs)
	}
	attempts := clicks / 2
	if attempts > 0 {
		sum.MismatchesRate = float64(mismatches) / float64(attempts)
	}
	return sum
}
