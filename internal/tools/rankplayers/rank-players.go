package rankplayers

import (
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/reallyasi9/hooprank/internal/hoops"
)

// RankPlayers runs the career pipeline (aggregate, score, rank) and prints the
// leaderboard.
func RankPlayers(ctx *Context) error {
	log.Print("Ranking players by weighted career score")

	records, err := ctx.Source.ReadRecords(ctx)
	if err != nil {
		return fmt.Errorf("RankPlayers: failed to read season records: %w", err)
	}
	log.Printf("Loaded %d season records", len(records))

	summaries := hoops.SummarizeCareers(records)
	log.Printf("Summarized %d player careers", len(summaries))

	ranked, err := hoops.RankPlayers(summaries, ctx.TopN)
	if err != nil {
		return fmt.Errorf("RankPlayers: %w", err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Rank", "Player", "Weighted Score"})
	for _, rp := range ranked {
		t.AppendRow(table.Row{rp.Rank, rp.PlayerName, fmt.Sprintf("%0.2f", rp.Score)})
	}
	t.SetStyle(table.StyleLight)
	t.Render()

	return nil
}
