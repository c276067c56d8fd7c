// Package webrunner serves the report API: the presentation layer consumes
// the aggregate and per-tab tables over HTTP while the report cache bounds
// recomputation.
package webrunner

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/sadewadee/sheet-report/internal/api"
	"github.com/sadewadee/sheet-report/internal/api/handlers"
	"github.com/sadewadee/sheet-report/internal/cache"
	"github.com/sadewadee/sheet-report/internal/service"
	"github.com/sadewadee/sheet-report/runner"
)

type WebRunner struct {
	cfg   *runner.Config
	cache cache.Cache
	srv   *http.Server
}

// New wires cache, fetcher, service and router into an HTTP server.
func New(cfg *runner.Config) (runner.Runner, error) {
	tabs, err := cfg.TabNames()
	if err != nil {
		return nil, err
	}

	c, err := cfg.NewCache()
	if err != nil {
		return nil, err
	}

	svc, err := service.NewReportService(cfg.SourceID(), tabs, cfg.NewFetcher(), c, cfg.CacheTTL, cfg.Concurrency)
	if err != nil {
		_ = c.Close()

		return nil, err
	}

	svc.SetTelemetry(runner.Telemetry(), "web")

	router := api.NewRouter(
		handlers.NewReportHandler(svc),
		handlers.NewTabHandler(svc),
		handlers.NewHealthHandler(runner.Version),
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router.Setup(cfg.APIToken),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &WebRunner{cfg: cfg, cache: c, srv: srv}, nil
}

func (r *WebRunner) Run(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		log.Printf("listening on %s", r.cfg.Addr)

		if err := r.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return r.srv.Shutdown(shutdownCtx)
	case err := <-errChan:
		return err
	}
}

func (r *WebRunner) Close(context.Context) error {
	return r.cache.Close()
}
