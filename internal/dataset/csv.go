package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	progressbar "github.com/schollz/progressbar/v3"

	"github.com/reallyasi9/hooprank/internal/hoops"
)

// Column names the loaders look for in the dataset header. The Kaggle export carries more
// columns than these; extras are ignored.
const (
	colPlayerName       = "player_name"
	colTeamAbbreviation = "team_abbreviation"
	colAge              = "age"
	colSeason           = "season"
	colPts              = "pts"
	colTSPct            = "ts_pct"
	colAstPct           = "ast_pct"
	colDraftNumber      = "draft_number"
	colPlayerHeight     = "player_height"
	colPlayerWeight     = "player_weight"
	colCollege          = "college"
	colCountry          = "country"
)

var requiredColumns = []string{colPlayerName, colAge, colSeason, colPts, colTSPct, colAstPct, colDraftNumber}

type columnIndex map[string]int

func indexHeader(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("indexHeader: required column '%s' missing from dataset header", name)
		}
	}
	return idx, nil
}

func (idx columnIndex) get(row []string, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (idx columnIndex) getFloat(row []string, name string) (float64, error) {
	s := idx.get(row, name)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// parseRecord converts one data row to a SeasonRecord. Draft numbers that are absent or
// non-numeric (the dataset spells them "Undrafted") become the undrafted sentinel rather
// than an error.
func parseRecord(idx columnIndex, row []string) (hoops.SeasonRecord, error) {
	var r hoops.SeasonRecord

	r.PlayerName = idx.get(row, colPlayerName)
	if r.PlayerName == "" {
		return r, fmt.Errorf("parseRecord: row has no player name")
	}
	r.TeamAbbreviation = idx.get(row, colTeamAbbreviation)
	r.Season = idx.get(row, colSeason)
	r.College = idx.get(row, colCollege)
	r.Country = idx.get(row, colCountry)

	age, err := idx.getFloat(row, colAge)
	if err != nil {
		return r, fmt.Errorf("parseRecord: cannot parse age for %s: %w", r.PlayerName, err)
	}
	r.Age = int(age)

	if r.Pts, err = idx.getFloat(row, colPts); err != nil {
		return r, fmt.Errorf("parseRecord: cannot parse pts for %s: %w", r.PlayerName, err)
	}
	if r.TSPct, err = idx.getFloat(row, colTSPct); err != nil {
		return r, fmt.Errorf("parseRecord: cannot parse ts_pct for %s: %w", r.PlayerName, err)
	}
	if r.AstPct, err = idx.getFloat(row, colAstPct); err != nil {
		return r, fmt.Errorf("parseRecord: cannot parse ast_pct for %s: %w", r.PlayerName, err)
	}
	if r.PlayerHeight, err = idx.getFloat(row, colPlayerHeight); err != nil {
		return r, fmt.Errorf("parseRecord: cannot parse player_height for %s: %w", r.PlayerName, err)
	}
	if r.PlayerWeight, err = idx.getFloat(row, colPlayerWeight); err != nil {
		return r, fmt.Errorf("parseRecord: cannot parse player_weight for %s: %w", r.PlayerName, err)
	}

	draft := idx.get(row, colDraftNumber)
	if n, err := strconv.Atoi(draft); err == nil && n > 0 {
		r.DraftNumber = n
	} else {
		r.DraftNumber = hoops.Undrafted
	}

	return r, nil
}

// ReadCSV reads season records from a comma-separated dataset with a header row.
func ReadCSV(r io.Reader, noProgress bool) ([]hoops.SeasonRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: cannot read dataset header: %w", err)
	}
	idx, err := indexHeader(header)
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w", err)
	}

	bar := progressbar.NewOptions64(-1,
		progressbar.OptionSetDescription("reading season records"),
		progressbar.OptionSetVisibility(!noProgress))

	var records []hoops.SeasonRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: cannot read dataset row: %w", err)
		}
		rec, err := parseRecord(idx, row)
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: %w", err)
		}
		records = append(records, rec)
		bar.Add(1)
	}
	bar.Finish()

	return records, nil
}
