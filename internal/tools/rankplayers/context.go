package rankplayers

import (
	"context"

	"github.com/reallyasi9/hooprank/internal/dataset"
)

type Context struct {
	context.Context

	Source dataset.Source
	TopN   int
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
