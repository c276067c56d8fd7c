package runner

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// TabNames resolves the configured tab registry, preserving order and
// dropping blanks and duplicates. The registry is fixed configuration; tabs
// present in the source but absent here are never processed.
func (cfg *Config) TabNames() ([]string, error) {
	if cfg.Tabs != "" {
		return dedupe(strings.Split(cfg.Tabs, ",")), nil
	}

	if cfg.InputFile == "" {
		return nil, nil
	}

	f, err := os.Open(cfg.InputFile)
	if err != nil {
		return nil, fmt.Errorf("open tab registry %q: %w", cfg.InputFile, err)
	}
	defer f.Close()

	var names []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		names = append(names, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read tab registry %q: %w", cfg.InputFile, err)
	}

	return dedupe(names), nil
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		out = append(out, name)
	}

	return out
}
