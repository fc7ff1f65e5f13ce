package hoops

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Undrafted is the draft number sentinel for players who were not drafted.
// Draft numbers in the source data are positive integers, so zero is free to mean "no draft position".
const Undrafted = 0

// NoCollege is the value the source data uses for players who did not attend a college.
const NoCollege = "None"

// SeasonRecord is one row of the source dataset: one player's statistics for one season with one team.
// A player appears once per season played, and more than once in a season if they changed teams.
// PlayerName is the grouping key for career-level analysis; it is not guaranteed unique across eras,
// but the dataset treats it as if it were.
type SeasonRecord struct {
	// PlayerName is the player's full display name.
	PlayerName string `firestore:"player_name"`

	// TeamAbbreviation is the short team code for this row, e.g. "CLE" or "GSW".
	TeamAbbreviation string `firestore:"team_abbreviation"`

	// Age is the player's age during the season.
	Age int `firestore:"age"`

	// Season is the season label, e.g. "2016-17". Labels sort chronologically as strings.
	Season string `firestore:"season"`

	// Pts is points scored per game over the season.
	Pts float64 `firestore:"pts"`

	// TSPct is the player's true shooting percentage for the season.
	TSPct float64 `firestore:"ts_pct"`

	// AstPct is the player's assist percentage for the season.
	AstPct float64 `firestore:"ast_pct"`

	// DraftNumber is the overall position at which the player was drafted, or Undrafted.
	DraftNumber int `firestore:"draft_number"`

	// PlayerHeight is the player's height in centimeters.
	PlayerHeight float64 `firestore:"player_height"`

	// PlayerWeight is the player's weight in kilograms.
	PlayerWeight float64 `firestore:"player_weight"`

	// College is the college the player attended, or NoCollege.
	College string `firestore:"college"`

	// Country is the player's country of origin.
	Country string `firestore:"country"`
}

// Drafted reports whether the record carries a real draft position.
func (r SeasonRecord) Drafted() bool {
	return r.DraftNumber > Undrafted
}

// HasCollege reports whether the record names a real college.
func (r SeasonRecord) HasCollege() bool {
	return r.College != "" && r.College != NoCollege
}

// distinctSorted removes duplicates from a slice and sorts the result ascending.
func distinctSorted[T constraints.Ordered](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, x := range s {
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
