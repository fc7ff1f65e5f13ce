package dataset

import (
	"strings"
	"testing"

	"github.com/reallyasi9/hooprank/internal/hoops"
)

const sampleCSV = `player_name,team_abbreviation,age,player_height,player_weight,college,country,draft_year,draft_round,draft_number,gp,pts,reb,ast,ts_pct,ast_pct,season
Dennis Rodman,CHI,36.0,198.12,99.79,Southeastern Oklahoma State,USA,1986,2,27,55,5.7,16.1,3.1,0.479,0.113,1996-97
Travis Knight,LAL,22.0,213.36,106.59,Connecticut,USA,1996,1,29,71,4.8,4.5,0.5,0.545,0.046,1996-97
Ben Wallace,WAS,22.0,205.74,108.86,Virginia Union,USA,Undrafted,Undrafted,Undrafted,34,1.1,2.4,0.3,0.536,0.023,1996-97
`

func TestReadCSV(t *testing.T) {
	records, err := ReadCSV(strings.NewReader(sampleCSV), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	rodman := records[0]
	if rodman.PlayerName != "Dennis Rodman" {
		t.Errorf("expected Dennis Rodman, got %s", rodman.PlayerName)
	}
	if rodman.Age != 36 {
		t.Errorf("expected age 36, got %d", rodman.Age)
	}
	if rodman.Season != "1996-97" {
		t.Errorf("expected season 1996-97, got %s", rodman.Season)
	}
	if rodman.DraftNumber != 27 {
		t.Errorf("expected draft number 27, got %d", rodman.DraftNumber)
	}
	if rodman.Pts != 5.7 || rodman.TSPct != 0.479 || rodman.AstPct != 0.113 {
		t.Errorf("unexpected stats: %+v", rodman)
	}
	if rodman.College != "Southeastern Oklahoma State" {
		t.Errorf("unexpected college: %s", rodman.College)
	}

	wallace := records[2]
	if wallace.DraftNumber != hoops.Undrafted {
		t.Errorf("expected undrafted sentinel, got %d", wallace.DraftNumber)
	}
	if wallace.Drafted() {
		t.Error("expected Drafted() false for undrafted record")
	}
}

func TestReadCSVMissingColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("player_name,age\nSomebody,30\n"), true)
	if err == nil {
		t.Error("expected error for missing required columns, got nil")
	}
}

func TestReadCSVEmpty(t *testing.T) {
	header := strings.Join(requiredColumns, ",") + "\n"
	records, err := ReadCSV(strings.NewReader(header), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestRecordIDDeterministic(t *testing.T) {
	r := hoops.SeasonRecord{PlayerName: "Dennis Rodman", Season: "1996-97", TeamAbbreviation: "CHI"}
	if RecordID(r) != RecordID(r) {
		t.Error("expected identical IDs for identical records")
	}
	other := r
	other.Season = "1997-98"
	if RecordID(r) == RecordID(other) {
		t.Error("expected different IDs for different seasons")
	}
}
