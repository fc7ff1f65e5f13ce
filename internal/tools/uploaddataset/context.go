package uploaddataset

import (
	"context"

	fs "cloud.google.com/go/firestore"

	"github.com/reallyasi9/hooprank/internal/dataset"
)

type Context struct {
	context.Context

	Source     dataset.Source
	Collection string

	FirestoreClient *fs.Client

	Force  bool
	DryRun bool
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
