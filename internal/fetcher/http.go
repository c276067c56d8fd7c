package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sadewadee/sheet-report/internal/domain"
)

const defaultTimeout = 30 * time.Second

// SheetFetcher retrieves tabs from a published spreadsheet over HTTP. Each
// tab is requested as CSV from the source's export endpoint, one request per
// tab, bounded by the client timeout.
type SheetFetcher struct {
	baseURL string
	client  *http.Client
}

// NewSheetFetcher creates a fetcher for the given spreadsheet id. The export
// URL follows the published-sheet convention:
// https://docs.google.com/spreadsheets/d/<id>/gviz/tq?tqx=out:csv&sheet=<tab>
func NewSheetFetcher(sheetID string, timeout time.Duration) *SheetFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &SheetFetcher{
		baseURL: fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:csv", url.PathEscape(sheetID)),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewSheetFetcherURL creates a fetcher against an explicit base URL; the tab
// name is appended as the "sheet" query parameter. Used for non-Google
// sources and in tests.
func NewSheetFetcherURL(baseURL string, timeout time.Duration) *SheetFetcher {
	f := NewSheetFetcher("", timeout)
	f.baseURL = baseURL

	return f
}

// Fetch retrieves one tab and decodes it. HTTP 404 maps to NotFound, 401/403
// to PermissionDenied, transport failures (including timeouts) to
// NetworkError and undecodable payloads to ParseError.
func (f *SheetFetcher) Fetch(ctx context.Context, tab string) (*domain.Table, error) {
	u := f.tabURL(tab)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &domain.FetchError{Kind: domain.FetchNetworkError, Tab: tab, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{Kind: domain.FetchNetworkError, Tab: tab, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &domain.FetchError{Kind: domain.FetchNotFound, Tab: tab}
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, &domain.FetchError{Kind: domain.FetchPermissionDenied, Tab: tab}
	case resp.StatusCode != http.StatusOK:
		return nil, &domain.FetchError{
			Kind: domain.FetchNetworkError,
			Tab:  tab,
			Err:  fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	return parseCSV(tab, resp.Body)
}

func (f *SheetFetcher) tabURL(tab string) string {
	sep := "?"
	if strings.Contains(f.baseURL, "?") {
		sep = "&"
	}

	return f.baseURL + sep + "sheet=" + url.QueryEscape(tab)
}
