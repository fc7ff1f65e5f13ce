package exportreport

import (
	"context"

	"github.com/reallyasi9/hooprank/internal/dataset"
)

type Context struct {
	context.Context

	Source dataset.Source
	TopN   int

	// Output is the file or gs:// location of the workbook. Empty prints to console.
	Output string

	Force  bool
	DryRun bool
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
