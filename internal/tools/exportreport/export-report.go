package exportreport

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/AlecAivazis/survey/v2"
	excelize "github.com/xuri/excelize/v2"

	"github.com/reallyasi9/hooprank/internal/dataset"
	"github.com/reallyasi9/hooprank/internal/hoops"
)

// Export runs the full pipeline and writes every report (rankings, peak ages, physical
// attributes, colleges, teams) into one Excel workbook, one sheet per report.
func Export(ctx *Context) error {
	log.Print("Exporting all reports")

	records, err := ctx.Source.ReadRecords(ctx)
	if err != nil {
		return fmt.Errorf("Export: failed to read season records: %w", err)
	}
	log.Printf("Loaded %d season records", len(records))

	summaries := hoops.SummarizeCareers(records)
	ranked, err := hoops.RankPlayers(summaries, ctx.TopN)
	if err != nil {
		return fmt.Errorf("Export: %w", err)
	}

	// The cross-tab reports share nothing but the immutable ranked set and record slice,
	// so they can run at the same time.
	var (
		peaks    hoops.PeakAgeReport
		physical hoops.PhysicalReport
		colleges []hoops.CollegeCount
		teams    []hoops.TeamCount
	)
	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		peaks = hoops.AnalyzePeakAges(ranked, hoops.ScoreSeasons(hoops.SummarizeSeasons(records)))
	}()
	go func() {
		defer wg.Done()
		physical = hoops.SummarizePhysical(ranked, records)
	}()
	go func() {
		defer wg.Done()
		colleges = hoops.CountColleges(ranked, records)
	}()
	go func() {
		defer wg.Done()
		teams = hoops.CountTeams(ranked, records)
	}()
	wg.Wait()

	xl, err := makeWorkbook(ranked, peaks, physical, colleges, teams)
	if err != nil {
		return fmt.Errorf("Export: failed to build workbook: %w", err)
	}

	if ctx.Output == "" || ctx.DryRun {
		return dumpWorkbook(xl)
	}

	// Overwriting a local workbook is worth a second look.
	if !ctx.Force {
		if _, err := os.Stat(ctx.Output); err == nil {
			overwrite := false
			prompt := &survey.Confirm{Message: fmt.Sprintf("'%s' already exists. Overwrite?", ctx.Output)}
			if err := survey.AskOne(prompt, &overwrite); err != nil {
				return fmt.Errorf("Export: %w", err)
			}
			if !overwrite {
				log.Print("Export aborted")
				return nil
			}
		}
	}

	writer, err := dataset.OpenFileOrGSWriter(ctx, ctx.Output)
	if err != nil {
		return fmt.Errorf("Export: unable to open '%s': %w", ctx.Output, err)
	}
	defer writer.Close()

	if _, err := xl.WriteTo(writer); err != nil {
		return fmt.Errorf("Export: unable to write workbook: %w", err)
	}
	log.Printf("Exported reports to %s", ctx.Output)
	return nil
}

type sheetBuilder struct {
	xl    *excelize.File
	sheet string
	row   int
	err   error
}

func (b *sheetBuilder) appendRow(values ...interface{}) {
	if b.err != nil {
		return
	}
	b.row++
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, b.row)
		if err != nil {
			b.err = err
			return
		}
		if err := b.xl.SetCellValue(b.sheet, cell, v); err != nil {
			b.err = err
			return
		}
	}
}

func newSheet(xl *excelize.File, name string) (*sheetBuilder, error) {
	if _, err := xl.NewSheet(name); err != nil {
		return nil, err
	}
	return &sheetBuilder{xl: xl, sheet: name}, nil
}

func makeWorkbook(ranked []hoops.RankedPlayer, peaks hoops.PeakAgeReport, physical hoops.PhysicalReport, colleges []hoops.CollegeCount, teams []hoops.TeamCount) (*excelize.File, error) {
	xl := excelize.NewFile()
	defaultSheet := xl.GetSheetName(xl.GetActiveSheetIndex())

	b, err := newSheet(xl, "Rankings")
	if err != nil {
		return nil, err
	}
	b.appendRow("Rank", "Player", "Weighted Score")
	for _, rp := range ranked {
		b.appendRow(rp.Rank, rp.PlayerName, rp.Score)
	}
	if b.err != nil {
		return nil, b.err
	}

	b, err = newSheet(xl, "Peak Ages")
	if err != nil {
		return nil, err
	}
	b.appendRow("Player", "Best Age", "Best Season", "Best Score", "Prev Score", "Next Score", "Above Mean Age")
	for _, peak := range peaks.Players {
		b.appendRow(peak.PlayerName, peak.BestAge, peak.BestSeason, peak.BestScore,
			scoreCell(peak.PrevScore), scoreCell(peak.NextScore), peak.AboveCohortMean)
	}
	b.appendRow("Mean best age", peaks.MeanBestAge)
	if b.err != nil {
		return nil, b.err
	}

	b, err = newSheet(xl, "Physical")
	if err != nil {
		return nil, err
	}
	b.appendRow("Player", "Height (cm)", "Height vs Mean", "Weight (kg)", "Weight vs Mean", "Seasons", "Teams")
	for _, line := range physical.Players {
		b.appendRow(line.PlayerName, line.AvgHeight, line.HeightDelta, line.AvgWeight, line.WeightDelta,
			line.Seasons, strings.Join(line.Teams, ", "))
	}
	b.appendRow("Cohort mean", physical.MeanHeight, "", physical.MeanWeight)
	if b.err != nil {
		return nil, b.err
	}

	b, err = newSheet(xl, "Colleges")
	if err != nil {
		return nil, err
	}
	b.appendRow("College", "Players")
	for _, c := range colleges {
		b.appendRow(c.College, c.Players)
	}
	if b.err != nil {
		return nil, b.err
	}

	b, err = newSheet(xl, "Teams")
	if err != nil {
		return nil, err
	}
	b.appendRow("Team", "Players")
	for _, c := range teams {
		b.appendRow(c.Team, c.Players)
	}
	if b.err != nil {
		return nil, b.err
	}

	if err := xl.DeleteSheet(defaultSheet); err != nil {
		return nil, err
	}
	return xl, nil
}

func scoreCell(score *float64) interface{} {
	if score == nil {
		return ""
	}
	return *score
}

func dumpWorkbook(xl *excelize.File) error {
	for _, sheet := range xl.GetSheetList() {
		fmt.Printf("--- %s ---\n", sheet)
		rows, err := xl.Rows(sheet)
		if err != nil {
			return fmt.Errorf("dumpWorkbook: unable to get row iterator: %w", err)
		}
		for rows.Next() {
			row, err := rows.Columns()
			if err != nil {
				return fmt.Errorf("dumpWorkbook: unable to get cells from row iterator: %w", err)
			}
			fmt.Println(strings.Join(row, ", "))
		}
		if err := rows.Close(); err != nil {
			return err
		}
	}
	return nil
}
