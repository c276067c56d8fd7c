package runner

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/sadewadee/sheet-report/internal/cache"
	"github.com/sadewadee/sheet-report/internal/fetcher"
	"github.com/sadewadee/sheet-report/internal/pipeline"
	"github.com/sadewadee/sheet-report/tlmt"
	"github.com/sadewadee/sheet-report/tlmt/gonoop"
	"github.com/sadewadee/sheet-report/tlmt/goposthog"
)

const (
	RunModeFile = iota + 1
	RunModeWeb
)

var (
	ErrInvalidRunMode = errors.New("invalid run mode")
)

type Runner interface {
	Run(context.Context) error
	Close(context.Context) error
}

type Config struct {
	Concurrency  int
	RunMode      int
	SheetID      string
	Workbook     string
	CSVDir       string
	Tabs         string
	InputFile    string
	ResultsFile  string
	FetchTimeout time.Duration
	CacheTTL     time.Duration
	NoCache      bool

	// Web server flags
	Addr     string
	APIToken string

	// Redis configuration for the report cache
	RedisAddr string
	RedisPass string
	RedisDB   int

	DisableTelemetry bool
}

func ParseConfig() *Config {
	cfg := Config{}

	var serve bool

	flag.IntVar(&cfg.Concurrency, "c", max(runtime.NumCPU()/2, 1), "sets the fetch concurrency [default: half of CPU cores]")
	flag.StringVar(&cfg.SheetID, "sheet", "", "published spreadsheet id to fetch tabs from")
	flag.StringVar(&cfg.Workbook, "workbook", "", "path to a local xlsx workbook to analyze")
	flag.StringVar(&cfg.CSVDir, "csv-dir", "", "directory of per-tab CSV exports to analyze")
	flag.StringVar(&cfg.Tabs, "tabs", "", "comma separated list of tab names, in processing order")
	flag.StringVar(&cfg.InputFile, "input", "", "path to a file with tab names (one per line) [alternative to -tabs]")
	flag.StringVar(&cfg.ResultsFile, "results", "stdout", "path to the results file; format by extension (.json/.csv/.xlsx) [default: stdout]")
	flag.DurationVar(&cfg.FetchTimeout, "fetch-timeout", 30*time.Second, "per-tab fetch timeout")
	flag.DurationVar(&cfg.CacheTTL, "cache-ttl", cache.TTLReport, "lifetime of a computed report in the cache")
	flag.BoolVar(&cfg.NoCache, "no-cache", false, "disable the report cache (every request recomputes)")
	flag.BoolVar(&serve, "serve", false, "run the web server instead of a one-shot analysis")
	flag.StringVar(&cfg.Addr, "addr", ":8080", "address to listen on for web server")
	flag.StringVar(&cfg.APIToken, "api-token", "", "API token for the web server (empty disables auth)")
	flag.StringVar(&cfg.RedisAddr, "redis-addr", "", "Redis address (host:port) for the report cache")
	flag.StringVar(&cfg.RedisPass, "redis-pass", "", "Redis password")
	flag.IntVar(&cfg.RedisDB, "redis-db", 0, "Redis database number")
	flag.BoolVar(&cfg.DisableTelemetry, "disable-telemetry", false, "disable anonymous usage telemetry")

	flag.Parse()

	if cfg.APIToken == "" {
		cfg.APIToken = os.Getenv("SHEET_REPORT_API_TOKEN")
	}

	if cfg.RedisAddr == "" {
		cfg.RedisAddr = os.Getenv("SHEET_REPORT_REDIS_ADDR")
	}

	if cfg.Concurrency < 1 {
		panic("Concurrency must be greater than 0")
	}

	if sources := countSources(&cfg); sources != 1 {
		panic("exactly one of -sheet, -workbook or -csv-dir must be provided")
	}

	if cfg.Tabs == "" && cfg.InputFile == "" {
		panic("tab registry required: provide -tabs or -input")
	}

	cfg.RunMode = RunModeFile
	if serve {
		cfg.RunMode = RunModeWeb
	}

	return &cfg
}

func countSources(cfg *Config) int {
	n := 0
	for _, s := range []string{cfg.SheetID, cfg.Workbook, cfg.CSVDir} {
		if s != "" {
			n++
		}
	}

	return n
}

// SourceID identifies the configured source; it keys the report cache.
func (cfg *Config) SourceID() string {
	switch {
	case cfg.SheetID != "":
		return "sheet:" + cfg.SheetID
	case cfg.Workbook != "":
		return "workbook:" + cfg.Workbook
	default:
		return "csvdir:" + cfg.CSVDir
	}
}

// NewFetcher builds the transport for the configured source.
func (cfg *Config) NewFetcher() pipeline.Fetcher {
	switch {
	case cfg.SheetID != "":
		return fetcher.NewSheetFetcher(cfg.SheetID, cfg.FetchTimeout)
	case cfg.Workbook != "":
		return fetcher.NewWorkbookFetcher(cfg.Workbook)
	default:
		return fetcher.NewCSVDirFetcher(cfg.CSVDir)
	}
}

// NewCache builds the report cache: Redis when configured, otherwise an
// in-process memory cache, or a no-op cache when caching is disabled.
func (cfg *Config) NewCache() (cache.Cache, error) {
	if cfg.NoCache {
		return cache.NewNoOpCache(), nil
	}

	if cfg.RedisAddr != "" {
		return cache.NewRedisCache(cache.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
	}

	return cache.NewMemoryCache(), nil
}

var (
	telemetryOnce sync.Once
	telemetry     tlmt.Telemetry
)

func Telemetry() tlmt.Telemetry {
	telemetryOnce.Do(func() {
		disableTel := func() bool {
			return os.Getenv("DISABLE_TELEMETRY") == "1"
		}()

		if disableTel {
			telemetry = gonoop.New()

			return
		}

		val, err := goposthog.New(os.Getenv("SHEET_REPORT_POSTHOG_KEY"), "https://eu.i.posthog.com")
		if err != nil || val == nil {
			telemetry = gonoop.New()

			return
		}

		telemetry = val
	})

	return telemetry
}

func wrapText(text string, width int) []string {
	var lines []string

	currentLine := ""
	currentWidth := 0

	for _, r := range text {
		runeWidth := runewidth.RuneWidth(r)
		if currentWidth+runeWidth > width {
			lines = append(lines, currentLine)
			currentLine = string(r)
			currentWidth = runeWidth
		} else {
			currentLine += string(r)
			currentWidth += runeWidth
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

func banner(messages []string, width int) string {
	if width <= 0 {
		var err error

		width, _, err = term.GetSize(0)
		if err != nil {
			width = 80
		}
	}

	if width < 20 {
		width = 20
	}

	contentWidth := width - 4

	var wrappedLines []string
	for _, message := range messages {
		wrappedLines = append(wrappedLines, wrapText(message, contentWidth)...)
	}

	var builder strings.Builder

	builder.WriteString("╔" + strings.Repeat("═", width-2) + "╗\n")

	for _, line := range wrappedLines {
		lineWidth := runewidth.StringWidth(line)
		paddingRight := contentWidth - lineWidth

		if paddingRight < 0 {
			paddingRight = 0
		}

		builder.WriteString(fmt.Sprintf("║ %s%s ║\n", line, strings.Repeat(" ", paddingRight)))
	}

	builder.WriteString("╚" + strings.Repeat("═", width-2) + "╝\n")

	return builder.String()
}

func Banner() {
	message1 := "📊 Sheet Report - Task Sheet Analyzer"
	message2 := fmt.Sprintf("v%s (%s)", Version, BuildDate)

	fmt.Fprintln(os.Stderr, banner([]string{message1, message2}, 0))
}
