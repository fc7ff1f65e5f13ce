package hoops

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// SeasonScore is the composite score of one (player, age, season) group.
type SeasonScore struct {
	SeasonKey
	Score float64
}

// ScoreSeasons applies the composite formula to every season summary.
// Output order follows the input order.
func ScoreSeasons(summaries []SeasonSummary) []SeasonScore {
	scores := make([]SeasonScore, len(summaries))
	for i, s := range summaries {
		scores[i] = SeasonScore{SeasonKey: s.SeasonKey, Score: s.WeightedScore()}
	}
	return scores
}

// PeakSeason describes the single best season of one ranked player: the age and season
// label of the player's highest season score, plus the scores of the chronologically
// adjacent seasons. PrevScore and NextScore are nil when the best season is the player's
// first or last (or only) season.
type PeakSeason struct {
	PlayerName string
	BestAge    int
	BestSeason string
	BestScore  float64
	PrevScore  *float64
	NextScore  *float64

	// AboveCohortMean is true when BestAge is strictly greater than the cohort-wide mean best age.
	AboveCohortMean bool
}

// PeakAgeReport is the year-over-year peak analysis over the ranked cohort.
type PeakAgeReport struct {
	// Players is ordered the same way as the ranked leaderboard that produced it.
	Players []PeakSeason

	// MeanBestAge is the mean of the cohort's best ages. Zero for an empty cohort.
	MeanBestAge float64
}

// AnalyzePeakAges finds, for each ranked player, the season with their highest season
// score and its chronological neighbors. Within a player, seasons are ordered by season
// label; the "previous" and "next" scores are the immediate neighbors of the best season
// in that order, not of any other season. A tie in season score goes to the earlier season.
func AnalyzePeakAges(ranked []RankedPlayer, scores []SeasonScore) PeakAgeReport {
	byPlayer := make(map[string][]SeasonScore)
	for _, s := range scores {
		byPlayer[s.PlayerName] = append(byPlayer[s.PlayerName], s)
	}

	var report PeakAgeReport
	report.Players = make([]PeakSeason, 0, len(ranked))
	bestAges := make([]float64, 0, len(ranked))
	for _, rp := range ranked {
		seasons := byPlayer[rp.PlayerName]
		if len(seasons) == 0 {
			continue
		}
		sort.Slice(seasons, func(i, j int) bool { return seasons[i].Season < seasons[j].Season })

		best := 0
		for i, s := range seasons {
			if s.Score > seasons[best].Score {
				best = i
			}
		}

		peak := PeakSeason{
			PlayerName: rp.PlayerName,
			BestAge:    seasons[best].Age,
			BestSeason: seasons[best].Season,
			BestScore:  seasons[best].Score,
		}
		if best > 0 {
			prev := seasons[best-1].Score
			peak.PrevScore = &prev
		}
		if best < len(seasons)-1 {
			next := seasons[best+1].Score
			peak.NextScore = &next
		}
		report.Players = append(report.Players, peak)
		bestAges = append(bestAges, float64(peak.BestAge))
	}

	if len(bestAges) > 0 {
		report.MeanBestAge = stat.Mean(bestAges, nil)
	}
	for i := range report.Players {
		report.Players[i].AboveCohortMean = float64(report.Players[i].BestAge) > report.MeanBestAge
	}
	return report
}
