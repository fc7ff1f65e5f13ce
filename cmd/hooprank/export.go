package main

import (
	"context"

	"github.com/reallyasi9/hooprank/internal/tools/exportreport"
)

type exportCmd struct {
	Output string `help:"The location where the workbook will be written. If not given, prints reports to console. A Google Cloud Storage location can be specified with a gs:// prefix." short:"o"`
}

func (a *exportCmd) Run(g *globalCmd) error {
	ctx := exportreport.NewContext(context.Background())
	var err error
	ctx.Source, err = g.source(ctx.Context)
	if err != nil {
		return err
	}
	ctx.TopN = g.TopN
	ctx.Output = a.Output
	ctx.Force = g.Force
	ctx.DryRun = g.DryRun
	return exportreport.Export(ctx)
}
