package main

import (
	"context"

	"github.com/reallyasi9/hooprank/internal/tools/rankplayers"
)

type rankCmd struct{}

func (a *rankCmd) Run(g *globalCmd) error {
	ctx := rankplayers.NewContext(context.Background())
	var err error
	ctx.Source, err = g.source(ctx.Context)
	if err != nil {
		return err
	}
	ctx.TopN = g.TopN
	return rankplayers.RankPlayers(ctx)
}
