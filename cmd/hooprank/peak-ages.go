package main

import (
	"context"

	"github.com/reallyasi9/hooprank/internal/tools/peakages"
)

type peakAgesCmd struct{}

func (a *peakAgesCmd) Run(g *globalCmd) error {
	ctx := peakages.NewContext(context.Background())
	var err error
	ctx.Source, err = g.source(ctx.Context)
	if err != nil {
		return err
	}
	ctx.TopN = g.TopN
	return peakages.PeakAges(ctx)
}
