package pipeline

import (
	"context"
	"errors"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/sadewadee/sheet-report/internal/domain"
)

// Fetcher retrieves the raw table for one tab. Failures must be reported as
// *domain.FetchError; the fetch owns its own timeout.
type Fetcher interface {
	Fetch(ctx context.Context, tab string) (*domain.Table, error)
}

// Aggregate runs the tab analyzer over every configured tab and merges the
// results into a single report.
//
// Tabs are attempted in registry order. A failed fetch or a zero-task tab is
// excluded from the report entries and tables but recorded under Skipped; a
// single tab's failure never aborts the remaining tabs. With concurrency > 1
// the tabs are fetched and analyzed under a bounded worker set and the
// report is assembled back in registry order. An all-failed run returns an
// empty report, which is not itself an error.
func Aggregate(ctx context.Context, tabs []string, fetch Fetcher, concurrency int) *domain.Report {
	results := make([]tabResult, len(tabs))

	if concurrency > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)

		for i, tab := range tabs {
			g.Go(func() error {
				results[i] = analyzeTab(gctx, tab, fetch)

				return nil
			})
		}

		// Workers never return errors; failures live in the results.
		_ = g.Wait()
	} else {
		for i, tab := range tabs {
			results[i] = analyzeTab(ctx, tab, fetch)
		}
	}

	report := &domain.Report{Tables: map[string]*domain.Table{}}

	for i, tab := range tabs {
		res := results[i]

		switch {
		case res.err != nil:
			log.Printf("skipping tab %q: %v", tab, res.err)
			report.Skipped = append(report.Skipped, domain.SkippedTab{Tab: tab, Reason: skipReason(res.err)})
		case res.summary.TotalTasks == 0:
			report.Skipped = append(report.Skipped, domain.SkippedTab{Tab: tab, Reason: "no countable tasks"})
		default:
			report.Entries = append(report.Entries, domain.TabEntry{Tab: tab, Summary: res.summary})
			report.Tables[tab] = res.table
		}
	}

	return report
}

type tabResult struct {
	summary domain.TabSummary
	table   *domain.Table
	err     error
}

func analyzeTab(ctx context.Context, tab string, fetch Fetcher) tabResult {
	raw, err := fetch.Fetch(ctx, tab)
	if err != nil {
		return tabResult{err: err}
	}

	summary, cleaned := Analyze(raw)

	return tabResult{summary: summary, table: cleaned}
}

func skipReason(err error) string {
	var fe *domain.FetchError
	if errors.As(err, &fe) {
		return fe.Message()
	}

	return err.Error()
}
