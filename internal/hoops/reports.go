package hoops

import "sort"

// PhysicalLine is one ranked player's physical-attribute summary.
type PhysicalLine struct {
	PlayerName string

	// AvgHeight and AvgWeight are means over the player's season rows.
	AvgHeight float64
	AvgWeight float64

	// HeightDelta and WeightDelta are the player's deviation from the cohort mean of means.
	HeightDelta float64
	WeightDelta float64

	// Seasons is the number of distinct seasons the player appears in.
	Seasons int

	// Teams are the distinct team abbreviations the player played for, sorted ascending.
	Teams []string
}

// PhysicalReport is the physical-attribute cross-tab over the ranked cohort.
type PhysicalReport struct {
	// Players is ordered the same way as the ranked leaderboard that produced it.
	Players []PhysicalLine

	// MeanHeight and MeanWeight are cohort-wide means of the per-player means.
	MeanHeight float64
	MeanWeight float64
}

// SummarizePhysical joins the ranked cohort back to the full record set and reports mean
// height and weight per player, each player's deviation from the cohort mean, and the
// seasons and teams the player appeared for. An empty cohort yields an empty report.
func SummarizePhysical(ranked []RankedPlayer, records []SeasonRecord) PhysicalReport {
	byPlayer := make(map[string][]SeasonRecord)
	for _, r := range records {
		byPlayer[r.PlayerName] = append(byPlayer[r.PlayerName], r)
	}

	var report PhysicalReport
	report.Players = make([]PhysicalLine, 0, len(ranked))
	for _, rp := range ranked {
		rows := byPlayer[rp.PlayerName]
		if len(rows) == 0 {
			continue
		}
		var height, weight float64
		seasons := make([]string, 0, len(rows))
		teams := make([]string, 0, len(rows))
		for _, r := range rows {
			height += r.PlayerHeight
			weight += r.PlayerWeight
			seasons = append(seasons, r.Season)
			teams = append(teams, r.TeamAbbreviation)
		}
		line := PhysicalLine{
			PlayerName: rp.PlayerName,
			AvgHeight:  height / float64(len(rows)),
			AvgWeight:  weight / float64(len(rows)),
			Seasons:    len(distinctSorted(seasons)),
			Teams:      distinctSorted(teams),
		}
		report.Players = append(report.Players, line)
		report.MeanHeight += line.AvgHeight
		report.MeanWeight += line.AvgWeight
	}

	if len(report.Players) == 0 {
		return report
	}
	report.MeanHeight /= float64(len(report.Players))
	report.MeanWeight /= float64(len(report.Players))
	for i := range report.Players {
		report.Players[i].HeightDelta = report.Players[i].AvgHeight - report.MeanHeight
		report.Players[i].WeightDelta = report.Players[i].AvgWeight - report.MeanWeight
	}
	return report
}

// CollegeCount is the number of distinct ranked players who attended one college.
type CollegeCount struct {
	College string
	Players int
}

// CountColleges counts distinct ranked players per college, ignoring rows with no real
// college value. Sorted by count descending, then college name ascending.
func CountColleges(ranked []RankedPlayer, records []SeasonRecord) []CollegeCount {
	inCohort := rankedSet(ranked)
	seen := make(map[string]map[string]struct{})
	for _, r := range records {
		if _, ok := inCohort[r.PlayerName]; !ok {
			continue
		}
		if !r.HasCollege() {
			continue
		}
		players, ok := seen[r.College]
		if !ok {
			players = make(map[string]struct{})
			seen[r.College] = players
		}
		players[r.PlayerName] = struct{}{}
	}

	counts := make([]CollegeCount, 0, len(seen))
	for college, players := range seen {
		counts = append(counts, CollegeCount{College: college, Players: len(players)})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Players != counts[j].Players {
			return counts[i].Players > counts[j].Players
		}
		return counts[i].College < counts[j].College
	})
	return counts
}

// TeamCount is the number of distinct ranked players who played for one team.
type TeamCount struct {
	Team    string
	Players int
}

// CountTeams counts distinct ranked players per team abbreviation. A player counts toward
// every team they played for. Sorted by count descending, then abbreviation ascending.
func CountTeams(ranked []RankedPlayer, records []SeasonRecord) []TeamCount {
	inCohort := rankedSet(ranked)
	seen := make(map[string]map[string]struct{})
	for _, r := range records {
		if _, ok := inCohort[r.PlayerName]; !ok {
			continue
		}
		players, ok := seen[r.TeamAbbreviation]
		if !ok {
			players = make(map[string]struct{})
			seen[r.TeamAbbreviation] = players
		}
		players[r.PlayerName] = struct{}{}
	}

	counts := make([]TeamCount, 0, len(seen))
	for team, players := range seen {
		counts = append(counts, TeamCount{Team: team, Players: len(players)})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Players != counts[j].Players {
			return counts[i].Players > counts[j].Players
		}
		return counts[i].Team < counts[j].Team
	})
	return counts
}

func rankedSet(ranked []RankedPlayer) map[string]struct{} {
	set := make(map[string]struct{}, len(ranked))
	for _, rp := range ranked {
		set[rp.PlayerName] = struct{}{}
	}
	return set
}
