// Package fetcher provides the transport implementations that retrieve raw
// tab data for the pipeline: a published-sheet HTTP fetcher, a local xlsx
// workbook fetcher and a CSV directory fetcher. All failures surface as
// *domain.FetchError so the aggregator can skip the tab and report why.
package fetcher

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/sadewadee/sheet-report/internal/domain"
)

// parseCSV decodes one tab's CSV payload into a table. The first record is
// the header row; blank header cells get positional names so column lookups
// stay unambiguous. Ragged rows are accepted.
func parseCSV(tab string, r io.Reader) (*domain.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &domain.FetchError{Kind: domain.FetchParseError, Tab: tab, Err: err}
	}

	if len(records) == 0 {
		return nil, &domain.FetchError{Kind: domain.FetchParseError, Tab: tab, Err: fmt.Errorf("empty CSV")}
	}

	return tableFromRecords(records), nil
}

func tableFromRecords(records [][]string) *domain.Table {
	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Column_%d", i+1)
		}

		headers[i] = h
	}

	return &domain.Table{Columns: headers, Rows: records[1:]}
}
