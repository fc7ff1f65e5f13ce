package peakages

import (
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/reallyasi9/hooprank/internal/hoops"
)

// PeakAges finds the best season for each top-ranked player and prints it alongside the
// chronologically adjacent season scores and the cohort mean best age.
func PeakAges(ctx *Context) error {
	log.Print("Analyzing peak ages of top-ranked players")

	records, err := ctx.Source.ReadRecords(ctx)
	if err != nil {
		return fmt.Errorf("PeakAges: failed to read season records: %w", err)
	}
	log.Printf("Loaded %d season records", len(records))

	summaries := hoops.SummarizeCareers(records)
	ranked, err := hoops.RankPlayers(summaries, ctx.TopN)
	if err != nil {
		return fmt.Errorf("PeakAges: %w", err)
	}

	scores := hoops.ScoreSeasons(hoops.SummarizeSeasons(records))
	report := hoops.AnalyzePeakAges(ranked, scores)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Player", "Best Age", "Best Season", "Best Score", "Prev Score", "Next Score", "Vs. Cohort"})
	for _, peak := range report.Players {
		vs := "below mean"
		if peak.AboveCohortMean {
			vs = "above mean"
		}
		t.AppendRow(table.Row{
			peak.PlayerName,
			peak.BestAge,
			peak.BestSeason,
			fmt.Sprintf("%0.2f", peak.BestScore),
			formatScore(peak.PrevScore),
			formatScore(peak.NextScore),
			vs,
		})
	}
	t.AppendFooter(table.Row{"Mean best age", fmt.Sprintf("%0.2f", report.MeanBestAge)})
	t.SetStyle(table.StyleLight)
	t.Render()

	return nil
}

func formatScore(score *float64) string {
	if score == nil {
		return "-"
	}
	return fmt.Sprintf("%0.2f", *score)
}
