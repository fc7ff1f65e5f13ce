package crosstabs

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/reallyasi9/hooprank/internal/hoops"
)

func rankedCohort(ctx *Context) ([]hoops.RankedPlayer, []hoops.SeasonRecord, error) {
	records, err := ctx.Source.ReadRecords(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read season records: %w", err)
	}
	log.Printf("Loaded %d season records", len(records))

	summaries := hoops.SummarizeCareers(records)
	ranked, err := hoops.RankPlayers(summaries, ctx.TopN)
	if err != nil {
		return nil, nil, err
	}
	return ranked, records, nil
}

// Physical prints mean height and weight per top-ranked player with deviations from the
// cohort means, plus seasons played and teams played for.
func Physical(ctx *Context) error {
	log.Print("Summarizing physical attributes of top-ranked players")

	ranked, records, err := rankedCohort(ctx)
	if err != nil {
		return fmt.Errorf("Physical: %w", err)
	}
	report := hoops.SummarizePhysical(ranked, records)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Player", "Height (cm)", "Ht. vs Mean", "Weight (kg)", "Wt. vs Mean", "Seasons", "Teams"})
	for _, line := range report.Players {
		t.AppendRow(table.Row{
			line.PlayerName,
			fmt.Sprintf("%0.1f", line.AvgHeight),
			fmt.Sprintf("%+0.1f", line.HeightDelta),
			fmt.Sprintf("%0.1f", line.AvgWeight),
			fmt.Sprintf("%+0.1f", line.WeightDelta),
			line.Seasons,
			strings.Join(line.Teams, ", "),
		})
	}
	t.AppendFooter(table.Row{"Cohort mean", fmt.Sprintf("%0.1f", report.MeanHeight), "", fmt.Sprintf("%0.1f", report.MeanWeight)})
	t.SetStyle(table.StyleLight)
	t.Render()

	return nil
}

// Colleges prints the count of distinct top-ranked players per college.
func Colleges(ctx *Context) error {
	log.Print("Counting colleges of top-ranked players")

	ranked, records, err := rankedCohort(ctx)
	if err != nil {
		return fmt.Errorf("Colleges: %w", err)
	}
	counts := hoops.CountColleges(ranked, records)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"College", "Players"})
	for _, c := range counts {
		t.AppendRow(table.Row{c.College, c.Players})
	}
	t.SetStyle(table.StyleLight)
	t.Render()

	return nil
}

// Teams prints the count of distinct top-ranked players per team abbreviation. A player
// counts toward every team they played for.
func Teams(ctx *Context) error {
	log.Print("Counting teams of top-ranked players")

	ranked, records, err := rankedCohort(ctx)
	if err != nil {
		return fmt.Errorf("Teams: %w", err)
	}
	counts := hoops.CountTeams(ranked, records)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Team", "Players"})
	for _, c := range counts {
		t.AppendRow(table.Row{c.Team, c.Players})
	}
	t.SetStyle(table.StyleLight)
	t.Render()

	return nil
}
