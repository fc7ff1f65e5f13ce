package hoops

import "testing"

func summariesWithScores(scores map[string]float64) map[string]CareerSummary {
	summaries := make(map[string]CareerSummary, len(scores))
	for name, score := range scores {
		// PtsPerDraftPosition is the only component with weight 0.2 and no other
		// contribution here, so score = 0.2 * 5 * score component.
		summaries[name] = CareerSummary{PlayerName: name, PtsPerDraftPosition: score * 5}
	}
	return summaries
}

func TestRankPlayers(t *testing.T) {
	summaries := summariesWithScores(map[string]float64{
		"Best":   30,
		"Middle": 20,
		"Worst":  10,
	})

	ranked, err := RankPlayers(summaries, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("expected 2 ranked players, got %d", len(ranked))
	}
	if ranked[0].PlayerName != "Best" || ranked[0].Rank != 1 {
		t.Errorf("expected Best at rank 1, got %+v", ranked[0])
	}
	if ranked[1].PlayerName != "Middle" || ranked[1].Rank != 2 {
		t.Errorf("expected Middle at rank 2, got %+v", ranked[1])
	}
}

func TestRankPlayersTieBreak(t *testing.T) {
	// Equal scores break ties by name ascending.
	summaries := summariesWithScores(map[string]float64{
		"Zeta":  10,
		"Alpha": 10,
		"Omega": 8,
	})

	ranked, err := RankPlayers(summaries, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("expected exactly 2 ranked players, got %d", len(ranked))
	}
	if ranked[0].PlayerName != "Alpha" {
		t.Errorf("expected Alpha first on tie, got %s", ranked[0].PlayerName)
	}
	if ranked[1].PlayerName != "Zeta" {
		t.Errorf("expected Zeta second on tie, got %s", ranked[1].PlayerName)
	}
}

func TestRankPlayersSmallPopulation(t *testing.T) {
	summaries := summariesWithScores(map[string]float64{"Only": 1})
	ranked, err := RankPlayers(summaries, DefaultTopN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 1 {
		t.Errorf("expected 1 ranked player, got %d", len(ranked))
	}
}

func TestRankPlayersBadTopN(t *testing.T) {
	if _, err := RankPlayers(nil, 0); err == nil {
		t.Error("expected error for top-N of 0, got nil")
	}
	if _, err := RankPlayers(nil, -3); err == nil {
		t.Error("expected error for negative top-N, got nil")
	}
}

func TestRankPlayersEmpty(t *testing.T) {
	ranked, err := RankPlayers(map[string]CareerSummary{}, DefaultTopN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 0 {
		t.Errorf("expected empty ranking, got %d entries", len(ranked))
	}
}
