package hoops

import (
	"fmt"
	"sort"
)

// DefaultTopN is the number of ranked players retained for reporting when no other cutoff is given.
const DefaultTopN = 15

// RankedPlayer is one entry of the ranked leaderboard. Rank 1 is the highest score.
type RankedPlayer struct {
	PlayerName string
	Score      float64
	Rank       int
}

// RankPlayers scores every career summary, orders players by score descending, and returns
// the top `n` with 1-based ranks. Ties in score are broken by player name ascending so the
// leaderboard is reproducible run to run. If `n` exceeds the population, the whole
// population is returned. A non-positive `n` is a configuration error.
func RankPlayers(summaries map[string]CareerSummary, n int) ([]RankedPlayer, error) {
	if n <= 0 {
		return nil, fmt.Errorf("RankPlayers: top-N must be positive, got %d", n)
	}

	ranked := make([]RankedPlayer, 0, len(summaries))
	for name, s := range summaries {
		ranked = append(ranked, RankedPlayer{PlayerName: name, Score: s.WeightedScore()})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].PlayerName < ranked[j].PlayerName
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked, nil
}
