package main

import (
	"context"

	fs "cloud.google.com/go/firestore"

	"github.com/reallyasi9/hooprank/internal/dataset"
	"github.com/reallyasi9/hooprank/internal/tools/uploaddataset"
)

type uploadCmd struct {
	File       string `arg:"" help:"Dataset file to upload (CSV or Excel, optionally gs://)."`
	Collection string `arg:"" help:"Target Firestore collection."`
}

func (a *uploadCmd) Run(g *globalCmd) error {
	ctx := uploaddataset.NewContext(context.Background())
	ctx.Source = dataset.Source{Location: a.File, NoProgress: g.NoProgress}
	ctx.Collection = a.Collection
	ctx.Force = g.Force
	ctx.DryRun = g.DryRun
	if !ctx.DryRun {
		client, err := fs.NewClient(ctx.Context, g.ProjectID)
		if err != nil {
			return err
		}
		ctx.FirestoreClient = client
	}
	return uploaddataset.Upload(ctx)
}
