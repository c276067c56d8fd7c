package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/sadewadee/sheet-report/internal/cache"
	"github.com/sadewadee/sheet-report/internal/domain"
	"github.com/sadewadee/sheet-report/internal/pipeline"
	"github.com/sadewadee/sheet-report/tlmt"
)

// ReportService computes aggregate reports over the configured tab registry,
// consulting the injected cache before recomputing. The pipeline stays a
// pure function of its inputs; all caching happens here.
type ReportService struct {
	source      string
	tabs        []string
	fetch       pipeline.Fetcher
	cache       cache.Cache
	ttl         time.Duration
	concurrency int
	telemetry   tlmt.Telemetry
	mode        string
}

// NewReportService validates the configuration and creates the service.
// An empty source or tab registry is a configuration error and fails here,
// before any fetch is ever attempted.
func NewReportService(source string, tabs []string, fetch pipeline.Fetcher, c cache.Cache, ttl time.Duration, concurrency int) (*ReportService, error) {
	if source == "" {
		return nil, domain.ErrNoSource
	}

	if len(tabs) == 0 {
		return nil, domain.ErrNoTabs
	}

	if c == nil {
		c = cache.NewNoOpCache()
	}

	if ttl <= 0 {
		ttl = cache.TTLReport
	}

	if concurrency < 1 {
		concurrency = 1
	}

	return &ReportService{
		source:      source,
		tabs:        tabs,
		fetch:       fetch,
		cache:       c,
		ttl:         ttl,
		concurrency: concurrency,
	}, nil
}

// SetTelemetry attaches a telemetry sink; each completed run reports one
// event tagged with the run mode. Without it, runs stay silent.
func (s *ReportService) SetTelemetry(t tlmt.Telemetry, mode string) {
	s.telemetry = t
	s.mode = mode
}

// Tabs returns the configured tab registry, in order.
func (s *ReportService) Tabs() []string {
	return s.tabs
}

// GetReport returns the cached report for the source, or recomputes and
// stores it on a miss.
func (s *ReportService) GetReport(ctx context.Context) (*domain.Report, error) {
	data, err := s.cache.Get(ctx, cache.ReportKey(s.source))
	if err == nil {
		var report domain.Report
		if err := json.Unmarshal(data, &report); err == nil {
			return &report, nil
		}

		// A corrupt entry falls through to recompute.
		_ = s.cache.Delete(ctx, cache.ReportKey(s.source))
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.Printf("report cache get failed: %v", err)
	}

	return s.Refresh(ctx)
}

// Refresh recomputes the report from the current source state and stores it.
func (s *ReportService) Refresh(ctx context.Context) (*domain.Report, error) {
	runID := uuid.NewString()
	start := time.Now()

	report := pipeline.Aggregate(ctx, s.tabs, s.fetch, s.concurrency)
	elapsed := time.Since(start)

	log.Printf("run %s: aggregated %d/%d tabs (%d tasks, %d skipped) in %s",
		runID, len(report.Entries), len(s.tabs), report.TotalTasks(), len(report.Skipped), elapsed.Round(time.Millisecond))

	if s.telemetry != nil {
		_ = s.telemetry.Send(ctx, tlmt.NewEvent("report_run", map[string]any{
			"mode":     s.mode,
			"tabs":     len(s.tabs),
			"included": len(report.Entries),
			"skipped":  len(report.Skipped),
			"duration": elapsed.String(),
		}))
	}

	if data, err := json.Marshal(report); err == nil {
		if err := s.cache.Set(ctx, cache.ReportKey(s.source), data, s.ttl); err != nil {
			log.Printf("report cache set failed: %v", err)
		}
	}

	return report, nil
}

// Invalidate drops the cached report for the source.
func (s *ReportService) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, cache.ReportKey(s.source))
}
