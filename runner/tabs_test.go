package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabNamesFromFlag(t *testing.T) {
	tests := []struct {
		name     string
		tabs     string
		expected []string
	}{
		{
			name:     "simple list",
			tabs:     "Ops,Sales,HR",
			expected: []string{"Ops", "Sales", "HR"},
		},
		{
			name:     "whitespace and blanks dropped",
			tabs:     " Ops , ,Sales,",
			expected: []string{"Ops", "Sales"},
		},
		{
			name:     "duplicates keep first position",
			tabs:     "Ops,Sales,Ops",
			expected: []string{"Ops", "Sales"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Tabs: tt.tabs}

			names, err := cfg.TabNames()

			require.NoError(t, err)
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestTabNamesFromInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabs.txt")
	require.NoError(t, os.WriteFile(path, []byte("Ops\n\nSales\nOps\n"), 0o644))

	cfg := &Config{InputFile: path}

	names, err := cfg.TabNames()

	require.NoError(t, err)
	assert.Equal(t, []string{"Ops", "Sales"}, names)
}

func TestSourceID(t *testing.T) {
	assert.Equal(t, "sheet:abc", (&Config{SheetID: "abc"}).SourceID())
	assert.Equal(t, "workbook:w.xlsx", (&Config{Workbook: "w.xlsx"}).SourceID())
	assert.Equal(t, "csvdir:exports", (&Config{CSVDir: "exports"}).SourceID())
}
