package main

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"github.com/alecthomas/kong"

	"github.com/reallyasi9/hooprank/internal/dataset"
)

type globalCmd struct {
	Dataset    string `help:"Location of the season statistics dataset (CSV or Excel). A Google Cloud Storage location can be specified with a gs:// prefix." env:"HOOPRANK_DATASET"`
	Collection string `help:"Firestore collection containing season records. Takes precedence over --dataset."`
	ProjectID  string `help:"GCP project ID. Only needed with --collection or 'dataset upload'." env:"GCP_PROJECT"`
	TopN       int    `help:"Number of top-ranked players retained for reporting." default:"15"`
	NoProgress bool   `help:"Do not display progress bars."`
	DryRun     bool   `help:"Print writes to log and exit without writing." xor:"Force,DryRun"`
	Force      bool   `help:"Force overwriting data." xor:"Force,DryRun"`
}

// source builds the record source shared by every analysis command.
func (g *globalCmd) source(ctx context.Context) (dataset.Source, error) {
	src := dataset.Source{
		Location:   g.Dataset,
		Collection: g.Collection,
		NoProgress: g.NoProgress,
	}
	if g.Collection != "" {
		client, err := fs.NewClient(ctx, g.ProjectID)
		if err != nil {
			return src, err
		}
		src.FirestoreClient = client
	}
	return src, nil
}

var CLI struct {
	globalCmd

	Rank     rankCmd     `cmd:"" help:"Rank players by weighted career score."`
	PeakAges peakAgesCmd `cmd:"" name:"peak-ages" help:"Find each top-ranked player's best season and its neighbors."`

	Report struct {
		Physical physicalCmd `cmd:"" help:"Summarize height and weight of the top-ranked players."`
		Colleges collegesCmd `cmd:"" help:"Count colleges of the top-ranked players."`
		Teams    teamsCmd    `cmd:"" help:"Count teams of the top-ranked players."`
	} `cmd:""`

	Export exportCmd `cmd:"" help:"Export all reports to an Excel workbook."`

	Dataset struct {
		Upload uploadCmd `cmd:"" help:"Upload a dataset file to Firestore."`
	} `cmd:""`
}

func main() {
	ctx := kong.Parse(&CLI)
	err := ctx.Run(&CLI.globalCmd)
	ctx.FatalIfErrorf(err)
}
