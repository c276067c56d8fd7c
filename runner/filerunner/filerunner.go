// Package filerunner implements the one-shot run mode: aggregate the
// configured source once, print the summary and optionally write a report
// file.
package filerunner

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sadewadee/sheet-report/internal/domain"
	"github.com/sadewadee/sheet-report/internal/export"
	"github.com/sadewadee/sheet-report/internal/service"
	"github.com/sadewadee/sheet-report/runner"
)

type FileRunner struct {
	cfg *runner.Config
	svc *service.ReportService
}

// New creates a FileRunner from the parsed configuration. Configuration
// errors (no source, no tabs) surface here, before anything is fetched.
func New(cfg *runner.Config) (runner.Runner, error) {
	tabs, err := cfg.TabNames()
	if err != nil {
		return nil, err
	}

	// One-shot runs always recompute; the cache is a web-mode concern.
	svc, err := service.NewReportService(cfg.SourceID(), tabs, cfg.NewFetcher(), nil, cfg.CacheTTL, cfg.Concurrency)
	if err != nil {
		return nil, err
	}

	svc.SetTelemetry(runner.Telemetry(), "file")

	return &FileRunner{cfg: cfg, svc: svc}, nil
}

func (r *FileRunner) Run(ctx context.Context) error {
	report, err := r.svc.Refresh(ctx)
	if err != nil {
		return err
	}

	if err := r.write(report); err != nil {
		return err
	}

	printSummary(os.Stderr, report)

	return nil
}

func (r *FileRunner) Close(context.Context) error {
	return nil
}

func (r *FileRunner) write(report *domain.Report) error {
	if r.cfg.ResultsFile == "" || r.cfg.ResultsFile == "stdout" {
		return export.WriteJSON(os.Stdout, report)
	}

	f, err := os.Create(r.cfg.ResultsFile)
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(r.cfg.ResultsFile)) {
	case ".csv":
		return export.WriteCSV(f, report)
	case ".xlsx":
		return export.WriteXLSX(f, report)
	default:
		return export.WriteJSON(f, report)
	}
}

func printSummary(w io.Writer, report *domain.Report) {
	report.SortByTotalTasks()

	fmt.Fprintf(w, "\n%-30s %12s %12s\n", "Tab", "Total Tasks", "Completed")

	for _, e := range report.Entries {
		fmt.Fprintf(w, "%-30s %12d %12d\n", e.Tab, e.Summary.TotalTasks, e.Summary.Counts[domain.BucketCompleted])
	}

	for _, s := range report.Skipped {
		fmt.Fprintf(w, "%-30s %25s\n", s.Tab, "skipped: "+s.Reason)
	}

	fmt.Fprintf(w, "\n%d tasks across %d tabs\n", report.TotalTasks(), len(report.Entries))
}
