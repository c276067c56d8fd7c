package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sadewadee/sheet-report/runner"
	"github.com/sadewadee/sheet-report/runner/filerunner"
	"github.com/sadewadee/sheet-report/runner/webrunner"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner.Banner()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan

		log.Println("Received signal, shutting down...")

		cancel()
	}()

	cfg := runner.ParseConfig()

	if cfg.DisableTelemetry {
		os.Setenv("DISABLE_TELEMETRY", "1")
	}

	run, err := newRunner(cfg)
	if err != nil {
		cancel()
		log.Fatalf("%v", err)
	}

	if err := run.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		_ = run.Close(ctx)
		cancel()
		log.Fatalf("%v", err)
	}

	_ = run.Close(ctx)
	_ = runner.Telemetry().Close()
}

func newRunner(cfg *runner.Config) (runner.Runner, error) {
	switch cfg.RunMode {
	case runner.RunModeFile:
		return filerunner.New(cfg)
	case runner.RunModeWeb:
		return webrunner.New(cfg)
	default:
		return nil, fmt.Errorf("%w: %d", runner.ErrInvalidRunMode, cfg.RunMode)
	}
}
