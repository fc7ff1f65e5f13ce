package hoops

import "math"

// Weights of the composite score. Scoring volume carries double the weight of
// efficiency, playmaking, and draft pedigree.
const (
	PtsWeight   = 0.4
	TSWeight    = 0.2
	AstWeight   = 0.2
	DraftWeight = 0.2
)

func weightedScore(avgPts, avgTS, avgAst, ptsPerDraft float64) float64 {
	return round2(PtsWeight*avgPts + TSWeight*avgTS + AstWeight*avgAst + DraftWeight*ptsPerDraft)
}

// WeightedScore computes the composite career score, rounded to 2 decimal places.
func (s CareerSummary) WeightedScore() float64 {
	return weightedScore(s.AvgPts, s.AvgTSPct, s.AvgAstPct, s.PtsPerDraftPosition)
}

// WeightedScore computes the composite single-season score, rounded to 2 decimal places.
func (s SeasonSummary) WeightedScore() float64 {
	return weightedScore(s.AvgPts, s.AvgTSPct, s.AvgAstPct, s.PtsPerDraftPosition)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
