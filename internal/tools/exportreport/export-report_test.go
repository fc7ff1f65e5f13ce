package exportreport

import (
	"testing"

	"github.com/reallyasi9/hooprank/internal/hoops"
)

func TestMakeWorkbook(t *testing.T) {
	prev := 5.0
	ranked := []hoops.RankedPlayer{{PlayerName: "A. Player", Score: 11.17, Rank: 1}}
	peaks := hoops.PeakAgeReport{
		Players: []hoops.PeakSeason{{
			PlayerName: "A. Player",
			BestAge:    25,
			BestSeason: "2020-21",
			BestScore:  9,
			PrevScore:  &prev,
		}},
		MeanBestAge: 25,
	}
	physical := hoops.PhysicalReport{
		Players:    []hoops.PhysicalLine{{PlayerName: "A. Player", AvgHeight: 200, AvgWeight: 100, Seasons: 2, Teams: []string{"AAA"}}},
		MeanHeight: 200,
		MeanWeight: 100,
	}
	colleges := []hoops.CollegeCount{{College: "Duke", Players: 1}}
	teams := []hoops.TeamCount{{Team: "AAA", Players: 1}}

	xl, err := makeWorkbook(ranked, peaks, physical, colleges, teams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Rankings", "Peak Ages", "Physical", "Colleges", "Teams"}
	got := xl.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("expected %d sheets, got %v", len(want), got)
	}
	for i, name := range want {
		if got[i] != name {
			t.Errorf("expected sheet %s at position %d, got %s", name, i, got[i])
		}
	}

	if v, err := xl.GetCellValue("Rankings", "B2"); err != nil || v != "A. Player" {
		t.Errorf("expected 'A. Player' in Rankings!B2, got '%s' (err %v)", v, err)
	}
	if v, err := xl.GetCellValue("Peak Ages", "C2"); err != nil || v != "2020-21" {
		t.Errorf("expected '2020-21' in 'Peak Ages'!C2, got '%s' (err %v)", v, err)
	}
	// nil next score renders as an empty cell
	if v, err := xl.GetCellValue("Peak Ages", "F2"); err != nil || v != "" {
		t.Errorf("expected empty 'Peak Ages'!F2, got '%s' (err %v)", v, err)
	}
	if v, err := xl.GetCellValue("Colleges", "A2"); err != nil || v != "Duke" {
		t.Errorf("expected 'Duke' in Colleges!A2, got '%s' (err %v)", v, err)
	}
}

func TestMakeWorkbookEmpty(t *testing.T) {
	xl, err := makeWorkbook(nil, hoops.PeakAgeReport{}, hoops.PhysicalReport{}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, err := xl.GetCellValue("Rankings", "A1"); err != nil || v != "Rank" {
		t.Errorf("expected header row even for empty reports, got '%s' (err %v)", v, err)
	}
	if v, err := xl.GetCellValue("Rankings", "A2"); err != nil || v != "" {
		t.Errorf("expected no data rows for empty reports, got '%s' (err %v)", v, err)
	}
}
