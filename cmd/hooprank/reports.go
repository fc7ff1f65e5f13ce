package main

import (
	"context"

	"github.com/reallyasi9/hooprank/internal/tools/crosstabs"
)

func crosstabContext(g *globalCmd) (*crosstabs.Context, error) {
	ctx := crosstabs.NewContext(context.Background())
	var err error
	ctx.Source, err = g.source(ctx.Context)
	if err != nil {
		return nil, err
	}
	ctx.TopN = g.TopN
	return ctx, nil
}

type physicalCmd struct{}

func (a *physicalCmd) Run(g *globalCmd) error {
	ctx, err := crosstabContext(g)
	if err != nil {
		return err
	}
	return crosstabs.Physical(ctx)
}

type collegesCmd struct{}

func (a *collegesCmd) Run(g *globalCmd) error {
	ctx, err := crosstabContext(g)
	if err != nil {
		return err
	}
	return crosstabs.Colleges(ctx)
}

type teamsCmd struct{}

func (a *teamsCmd) Run(g *globalCmd) error {
	ctx, err := crosstabContext(g)
	if err != nil {
		return err
	}
	return crosstabs.Teams(ctx)
}
