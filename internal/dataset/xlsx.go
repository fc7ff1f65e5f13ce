package dataset

import (
	"fmt"
	"io"

	progressbar "github.com/schollz/progressbar/v3"
	"github.com/tealeg/xlsx"

	"github.com/reallyasi9/hooprank/internal/hoops"
)

// ReadXLSX reads season records from the first sheet of an Excel workbook. The first row
// is the header; column handling matches ReadCSV.
func ReadXLSX(r io.Reader, noProgress bool) ([]hoops.SeasonRecord, error) {
	slurp, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ReadXLSX: cannot read dataset: %w", err)
	}
	xl, err := xlsx.OpenBinary(slurp)
	if err != nil {
		return nil, fmt.Errorf("ReadXLSX: cannot open workbook: %w", err)
	}
	if len(xl.Sheets) == 0 {
		return nil, fmt.Errorf("ReadXLSX: workbook has no sheets")
	}
	sheet := xl.Sheets[0]
	if len(sheet.Rows) == 0 {
		return nil, fmt.Errorf("ReadXLSX: sheet '%s' has no header row", sheet.Name)
	}

	header := make([]string, len(sheet.Rows[0].Cells))
	for i, cell := range sheet.Rows[0].Cells {
		header[i] = cell.Value
	}
	idx, err := indexHeader(header)
	if err != nil {
		return nil, fmt.Errorf("ReadXLSX: %w", err)
	}

	bar := progressbar.NewOptions64(int64(len(sheet.Rows)-1),
		progressbar.OptionSetDescription("reading season records"),
		progressbar.OptionSetVisibility(!noProgress))

	var records []hoops.SeasonRecord
	for _, row := range sheet.Rows[1:] {
		cells := make([]string, len(row.Cells))
		empty := true
		for i, cell := range row.Cells {
			cells[i] = cell.Value
			if cells[i] != "" {
				empty = false
			}
		}
		// trailing blank rows are common in hand-edited workbooks
		if empty {
			continue
		}
		rec, err := parseRecord(idx, cells)
		if err != nil {
			return nil, fmt.Errorf("ReadXLSX: %w", err)
		}
		records = append(records, rec)
		bar.Add(1)
	}
	bar.Finish()

	return records, nil
}
