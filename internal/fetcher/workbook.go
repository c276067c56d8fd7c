package fetcher

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/sadewadee/sheet-report/internal/domain"
)

// WorkbookFetcher serves tabs from a local xlsx workbook; each tab maps to a
// worksheet of the same name. The file is opened per fetch so a run always
// sees the current state of the workbook.
type WorkbookFetcher struct {
	path string
}

// NewWorkbookFetcher creates a fetcher over the xlsx file at path.
func NewWorkbookFetcher(path string) *WorkbookFetcher {
	return &WorkbookFetcher{path: path}
}

// Fetch reads one worksheet. A missing file or unreadable workbook is a
// NetworkError equivalent for this transport; a missing worksheet is
// NotFound.
func (f *WorkbookFetcher) Fetch(ctx context.Context, tab string) (*domain.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.FetchError{Kind: domain.FetchNetworkError, Tab: tab, Err: err}
	}

	wb, err := excelize.OpenFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &domain.FetchError{Kind: domain.FetchNotFound, Tab: tab, Err: err}
		}

		if errors.Is(err, os.ErrPermission) {
			return nil, &domain.FetchError{Kind: domain.FetchPermissionDenied, Tab: tab, Err: err}
		}

		return nil, &domain.FetchError{Kind: domain.FetchParseError, Tab: tab, Err: err}
	}
	defer wb.Close()

	idx, err := wb.GetSheetIndex(tab)
	if err != nil || idx < 0 {
		return nil, &domain.FetchError{Kind: domain.FetchNotFound, Tab: tab, Err: err}
	}

	records, err := wb.GetRows(tab)
	if err != nil {
		return nil, &domain.FetchError{Kind: domain.FetchParseError, Tab: tab, Err: err}
	}

	if len(records) == 0 {
		return nil, &domain.FetchError{Kind: domain.FetchParseError, Tab: tab, Err: fmt.Errorf("empty worksheet")}
	}

	return tableFromRecords(records), nil
}
