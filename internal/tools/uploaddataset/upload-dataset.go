package uploaddataset

import (
	"fmt"
	"log"

	"github.com/reallyasi9/hooprank/internal/dataset"
)

// Upload reads a dataset file and stores its season records in a Firestore collection.
// Document IDs are deterministic, so uploading the same file twice addresses the same
// documents: without Force that is an error, with Force an overwrite.
func Upload(ctx *Context) error {
	if ctx.Collection == "" {
		return fmt.Errorf("Upload: no target collection given")
	}

	records, err := ctx.Source.ReadRecords(ctx)
	if err != nil {
		return fmt.Errorf("Upload: failed to read season records: %w", err)
	}
	log.Printf("Loaded %d season records", len(records))

	if ctx.DryRun {
		log.Printf("DRY RUN: would write the following documents to collection '%s':", ctx.Collection)
		for _, r := range records {
			log.Printf("%s: %+v", dataset.RecordID(r), r)
		}
		return nil
	}

	err = dataset.WriteSeasonRecords(ctx, ctx.FirestoreClient, ctx.Collection, records, ctx.Force, ctx.Source.NoProgress)
	if err != nil {
		return fmt.Errorf("Upload: %w", err)
	}
	log.Printf("Uploaded %d season records to collection '%s'", len(records), ctx.Collection)
	return nil
}
