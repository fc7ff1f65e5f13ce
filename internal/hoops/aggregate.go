package hoops

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// CareerSummary collapses all of a player's season rows into one statistical summary.
type CareerSummary struct {
	PlayerName string

	// AvgPts, AvgTSPct and AvgAstPct are arithmetic means over the player's season rows.
	AvgPts    float64
	AvgTSPct  float64
	AvgAstPct float64

	// PtsPerDraftPosition is AvgPts divided by the sum of draft numbers over the player's
	// drafted rows. Zero if the player has no drafted rows or the sum is zero.
	PtsPerDraftPosition float64
}

// SeasonKey identifies one (player, age, season) aggregation group.
type SeasonKey struct {
	PlayerName string
	Age        int
	Season     string
}

// SeasonSummary is the per-(player, age, season) analog of CareerSummary.
type SeasonSummary struct {
	SeasonKey

	AvgPts              float64
	AvgTSPct            float64
	AvgAstPct           float64
	PtsPerDraftPosition float64
}

type statsAccum struct {
	pts    []float64
	ts     []float64
	ast    []float64
	draftN int
	draft  int
}

func (a *statsAccum) add(r SeasonRecord) {
	a.pts = append(a.pts, r.Pts)
	a.ts = append(a.ts, r.TSPct)
	a.ast = append(a.ast, r.AstPct)
	if r.Drafted() {
		a.draftN++
		a.draft += r.DraftNumber
	}
}

// ptsPerDraftPosition computes the draft-pedigree component of the weighted score.
// The denominator is the sum of draft numbers over the accumulated rows, not a single
// fixed draft position: a drafted player with k season rows contributes k times their
// draft number. That mirrors the source computation exactly; see DESIGN.md.
func (a *statsAccum) ptsPerDraftPosition(avgPts float64) float64 {
	if a.draftN == 0 || a.draft == 0 {
		return 0
	}
	return avgPts / float64(a.draft)
}

// SummarizeCareers groups season records by player name and reduces each group to a CareerSummary.
// The input order is irrelevant. An empty input yields an empty map.
func SummarizeCareers(records []SeasonRecord) map[string]CareerSummary {
	groups := make(map[string]*statsAccum)
	for _, r := range records {
		a, ok := groups[r.PlayerName]
		if !ok {
			a = &statsAccum{}
			groups[r.PlayerName] = a
		}
		a.add(r)
	}

	summaries := make(map[string]CareerSummary, len(groups))
	for name, a := range groups {
		avgPts := stat.Mean(a.pts, nil)
		summaries[name] = CareerSummary{
			PlayerName:          name,
			AvgPts:              avgPts,
			AvgTSPct:            stat.Mean(a.ts, nil),
			AvgAstPct:           stat.Mean(a.ast, nil),
			PtsPerDraftPosition: a.ptsPerDraftPosition(avgPts),
		}
	}
	return summaries
}

// SummarizeSeasons groups season records by (player, age, season) and reduces each group
// to a SeasonSummary. The result is sorted by player name, then season, for determinism.
func SummarizeSeasons(records []SeasonRecord) []SeasonSummary {
	groups := make(map[SeasonKey]*statsAccum)
	for _, r := range records {
		key := SeasonKey{PlayerName: r.PlayerName, Age: r.Age, Season: r.Season}
		a, ok := groups[key]
		if !ok {
			a = &statsAccum{}
			groups[key] = a
		}
		a.add(r)
	}

	summaries := make([]SeasonSummary, 0, len(groups))
	for key, a := range groups {
		avgPts := stat.Mean(a.pts, nil)
		summaries = append(summaries, SeasonSummary{
			SeasonKey:           key,
			AvgPts:              avgPts,
			AvgTSPct:            stat.Mean(a.ts, nil),
			AvgAstPct:           stat.Mean(a.ast, nil),
			PtsPerDraftPosition: a.ptsPerDraftPosition(avgPts),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].PlayerName != summaries[j].PlayerName {
			return summaries[i].PlayerName < summaries[j].PlayerName
		}
		if summaries[i].Season != summaries[j].Season {
			return summaries[i].Season < summaries[j].Season
		}
		return summaries[i].Age < summaries[j].Age
	})
	return summaries
}
