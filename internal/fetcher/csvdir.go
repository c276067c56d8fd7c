package fetcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/sadewadee/sheet-report/internal/domain"
)

// CSVDirFetcher serves tabs from a directory of CSV exports, one file per
// tab named "<tab>.csv".
type CSVDirFetcher struct {
	dir string
}

// NewCSVDirFetcher creates a fetcher over the given directory.
func NewCSVDirFetcher(dir string) *CSVDirFetcher {
	return &CSVDirFetcher{dir: dir}
}

// Fetch reads and decodes the tab's CSV file. A missing file is NotFound and
// a permission failure is PermissionDenied.
func (f *CSVDirFetcher) Fetch(ctx context.Context, tab string) (*domain.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.FetchError{Kind: domain.FetchNetworkError, Tab: tab, Err: err}
	}

	file, err := os.Open(filepath.Join(f.dir, tab+".csv"))
	if err != nil {
		kind := domain.FetchNetworkError
		if errors.Is(err, os.ErrNotExist) {
			kind = domain.FetchNotFound
		} else if errors.Is(err, os.ErrPermission) {
			kind = domain.FetchPermissionDenied
		}

		return nil, &domain.FetchError{Kind: kind, Tab: tab, Err: err}
	}
	defer file.Close()

	return parseCSV(tab, file)
}
