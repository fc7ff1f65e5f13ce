package dataset

import (
	"context"
	"fmt"

	fs "cloud.google.com/go/firestore"
	progressbar "github.com/schollz/progressbar/v3"
	"github.com/segmentio/fasthash/jody"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/reallyasi9/hooprank/internal/hoops"
)

// writeBatchSize stays under the 500-element limit of a Firestore transaction.
const writeBatchSize = 500

// RecordID builds a deterministic document ID for a season record, so re-uploading the
// same dataset addresses the same documents.
func RecordID(r hoops.SeasonRecord) string {
	h := jody.HashString64(r.PlayerName)
	h = jody.AddString64(h, r.Season)
	h = jody.AddString64(h, r.TeamAbbreviation)
	return fmt.Sprintf("%016x", h)
}

// GetSeasonRecords reads every season record from a Firestore collection.
func GetSeasonRecords(ctx context.Context, client *fs.Client, collection string) ([]hoops.SeasonRecord, error) {
	itr := client.Collection(collection).Documents(ctx)
	defer itr.Stop()

	var records []hoops.SeasonRecord
	for {
		snap, err := itr.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("GetSeasonRecords: error iterating collection '%s': %w", collection, err)
		}
		var r hoops.SeasonRecord
		if err := snap.DataTo(&r); err != nil {
			return nil, fmt.Errorf("GetSeasonRecords: error converting document '%s': %w", snap.Ref.ID, err)
		}
		records = append(records, r)
	}
	return records, nil
}

// WriteSeasonRecords stores season records in a Firestore collection in transactions of at
// most writeBatchSize documents. Without `force`, a record whose document already exists is
// an error; with it, existing documents are overwritten in place.
func WriteSeasonRecords(ctx context.Context, client *fs.Client, collection string, records []hoops.SeasonRecord, force bool, noProgress bool) error {
	coll := client.Collection(collection)

	bar := progressbar.NewOptions64(int64(len(records)),
		progressbar.OptionSetDescription("uploading season records"),
		progressbar.OptionSetVisibility(!noProgress))

	for ll := 0; ll < len(records); ll += writeBatchSize {
		ul := ll + writeBatchSize
		if ul > len(records) {
			ul = len(records)
		}
		err := client.RunTransaction(ctx, func(ctx context.Context, tx *fs.Transaction) error {
			batch := records[ll:ul]
			refs := make([]*fs.DocumentRef, len(batch))
			for i, r := range batch {
				refs[i] = coll.Doc(RecordID(r))
			}
			// transaction reads must all happen before any writes
			if !force {
				for _, ref := range refs {
					_, err := tx.Get(ref)
					if err == nil {
						return fmt.Errorf("document '%s' already exists: use force flag to overwrite", ref.ID)
					}
					if status.Code(err) != codes.NotFound {
						return err
					}
				}
			}
			for i, ref := range refs {
				if err := tx.Set(ref, batch[i]); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("WriteSeasonRecords: transaction failed: %w", err)
		}
		bar.Add(ul - ll)
	}
	bar.Finish()

	return nil
}
