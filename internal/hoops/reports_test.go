package hoops

import (
	"reflect"
	"testing"
)

func TestSummarizePhysical(t *testing.T) {
	ranked := []RankedPlayer{
		{PlayerName: "Tall", Rank: 1},
		{PlayerName: "Short", Rank: 2},
	}
	records := []SeasonRecord{
		{PlayerName: "Tall", Season: "2018-19", TeamAbbreviation: "AAA", PlayerHeight: 210, PlayerWeight: 110},
		{PlayerName: "Tall", Season: "2019-20", TeamAbbreviation: "BBB", PlayerHeight: 210, PlayerWeight: 112},
		{PlayerName: "Tall", Season: "2019-20", TeamAbbreviation: "AAA", PlayerHeight: 210, PlayerWeight: 114},
		{PlayerName: "Short", Season: "2018-19", TeamAbbreviation: "CCC", PlayerHeight: 180, PlayerWeight: 80},
		{PlayerName: "Ignored", Season: "2018-19", TeamAbbreviation: "DDD", PlayerHeight: 500, PlayerWeight: 500},
	}

	report := SummarizePhysical(ranked, records)
	if len(report.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(report.Players))
	}

	tall := report.Players[0]
	if tall.PlayerName != "Tall" {
		t.Fatalf("expected ranked order preserved, got %s first", tall.PlayerName)
	}
	if !almostEqual(tall.AvgHeight, 210) {
		t.Errorf("expected avg height 210, got %v", tall.AvgHeight)
	}
	if !almostEqual(tall.AvgWeight, 112) {
		t.Errorf("expected avg weight 112, got %v", tall.AvgWeight)
	}
	if tall.Seasons != 2 {
		t.Errorf("expected 2 distinct seasons, got %d", tall.Seasons)
	}
	if !reflect.DeepEqual(tall.Teams, []string{"AAA", "BBB"}) {
		t.Errorf("expected teams [AAA BBB], got %v", tall.Teams)
	}

	if !almostEqual(report.MeanHeight, 195) {
		t.Errorf("expected cohort mean height 195, got %v", report.MeanHeight)
	}
	if !almostEqual(tall.HeightDelta, 15) {
		t.Errorf("expected height delta 15, got %v", tall.HeightDelta)
	}
	short := report.Players[1]
	if !almostEqual(short.HeightDelta, -15) {
		t.Errorf("expected height delta -15, got %v", short.HeightDelta)
	}
}

func TestCountColleges(t *testing.T) {
	ranked := []RankedPlayer{
		{PlayerName: "A"}, {PlayerName: "B"}, {PlayerName: "C"}, {PlayerName: "D"},
	}
	records := []SeasonRecord{
		{PlayerName: "A", College: "Duke"},
		{PlayerName: "A", College: "Duke"}, // repeat rows count once
		{PlayerName: "B", College: "Duke"},
		{PlayerName: "C", College: "UCLA"},
		{PlayerName: "D", College: NoCollege},
		{PlayerName: "NotRanked", College: "Duke"},
	}

	counts := CountColleges(ranked, records)
	want := []CollegeCount{
		{College: "Duke", Players: 2},
		{College: "UCLA", Players: 1},
	}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("expected %v, got %v", want, counts)
	}
}

func TestCountTeams(t *testing.T) {
	ranked := []RankedPlayer{{PlayerName: "A"}, {PlayerName: "B"}}
	records := []SeasonRecord{
		{PlayerName: "A", TeamAbbreviation: "AAA"},
		{PlayerName: "A", TeamAbbreviation: "BBB"},
		{PlayerName: "B", TeamAbbreviation: "BBB"},
		{PlayerName: "NotRanked", TeamAbbreviation: "CCC"},
	}

	counts := CountTeams(ranked, records)
	want := []TeamCount{
		{Team: "BBB", Players: 2},
		{Team: "AAA", Players: 1},
	}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("expected %v, got %v", want, counts)
	}
}

func TestReportsEmptyCohort(t *testing.T) {
	records := []SeasonRecord{{PlayerName: "Somebody", College: "Duke", TeamAbbreviation: "AAA"}}

	if report := SummarizePhysical(nil, records); len(report.Players) != 0 {
		t.Errorf("expected empty physical report, got %d players", len(report.Players))
	}
	if counts := CountColleges(nil, records); len(counts) != 0 {
		t.Errorf("expected empty college report, got %v", counts)
	}
	if counts := CountTeams(nil, records); len(counts) != 0 {
		t.Errorf("expected empty team report, got %v", counts)
	}
}
