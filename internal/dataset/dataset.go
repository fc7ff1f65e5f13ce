// Package dataset loads the season-by-season player statistics table the analysis
// pipeline consumes. Records can come from a local CSV or Excel file, a Google Cloud
// Storage object, or a Firestore collection.
package dataset

import (
	"context"
	"fmt"
	"path"
	"strings"

	fs "cloud.google.com/go/firestore"

	"github.com/reallyasi9/hooprank/internal/hoops"
)

// Source describes where season records come from. If Collection is set, records are read
// from Firestore and Location is ignored; otherwise Location names a CSV or Excel file,
// optionally with a gs:// prefix.
type Source struct {
	Location   string
	Collection string

	FirestoreClient *fs.Client

	NoProgress bool
}

// ReadRecords materializes the full record set from the source.
func (s Source) ReadRecords(ctx context.Context) ([]hoops.SeasonRecord, error) {
	if s.Collection != "" {
		if s.FirestoreClient == nil {
			return nil, fmt.Errorf("ReadRecords: firestore collection '%s' requested without a client", s.Collection)
		}
		return GetSeasonRecords(ctx, s.FirestoreClient, s.Collection)
	}

	if s.Location == "" {
		return nil, fmt.Errorf("ReadRecords: no dataset location given")
	}
	r, err := GetFileOrGSReader(ctx, s.Location)
	if err != nil {
		return nil, fmt.Errorf("ReadRecords: unable to open '%s': %w", s.Location, err)
	}
	defer r.Close()

	switch strings.ToLower(path.Ext(s.Location)) {
	case ".xlsx":
		return ReadXLSX(r, s.NoProgress)
	default:
		return ReadCSV(r, s.NoProgress)
	}
}
