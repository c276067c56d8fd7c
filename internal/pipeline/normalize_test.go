package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sadewadee/sheet-report/internal/domain"
)

func TestNormalizeDropsBlankRows(t *testing.T) {
	table := &domain.Table{
		Columns: []string{"Issue", "Status"},
		Rows: [][]string{
			{"fix login", "done"},
			{"", ""},
			{"  ", "  "},
			{"ship v2", "50%"},
			{""},
		},
	}

	cleaned, roles, ok := Normalize(table)

	assert.True(t, ok)
	assert.Equal(t, 2, cleaned.Len())
	assert.Equal(t, "fix login", cleaned.Value(0, 0))
	assert.Equal(t, "ship v2", cleaned.Value(1, 0))
	assert.Equal(t, 0, roles.Identifier)
	assert.Equal(t, 1, roles.Indicator)
}

func TestNormalizeEmptyResult(t *testing.T) {
	tests := []struct {
		name  string
		table *domain.Table
	}{
		{
			name:  "no rows",
			table: &domain.Table{Columns: []string{"Issue"}},
		},
		{
			name: "all rows blank",
			table: &domain.Table{
				Columns: []string{"Issue", "Status"},
				Rows:    [][]string{{"", ""}, {" ", ""}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned, _, ok := Normalize(tt.table)

			assert.False(t, ok)
			assert.Equal(t, 0, cleaned.Len())
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	table := &domain.Table{
		Columns: []string{"KPI ID", "Achievement"},
		Rows: [][]string{
			{"K-1", "90"},
			{"", ""},
			{"K-2", "complete"},
		},
	}

	cleaned, roles, ok := Normalize(table)
	assert.True(t, ok)

	again, roles2, ok2 := Normalize(cleaned)

	assert.True(t, ok2)
	assert.Equal(t, cleaned.Rows, again.Rows)
	assert.Equal(t, roles, roles2)
}

func TestColumnRoleResolution(t *testing.T) {
	tests := []struct {
		name       string
		columns    []string
		identifier int
		indicator  int
	}{
		{
			name:       "primary names",
			columns:    []string{"Project/Task Name", "% Achievement"},
			identifier: 0,
			indicator:  1,
		},
		{
			name:       "priority order beats column order",
			columns:    []string{"Status", "Issue", "KPI ID"},
			identifier: 2, // KPI ID outranks Issue
			indicator:  0,
		},
		{
			name:       "trailing space variant",
			columns:    []string{"Issue", "% Achievement "},
			identifier: 0,
			indicator:  1,
		},
		{
			name:       "achievement over status",
			columns:    []string{"Issue", "Status", "Achievement"},
			identifier: 0,
			indicator:  2,
		},
		{
			name:       "both absent",
			columns:    []string{"Owner", "Due Date"},
			identifier: -1,
			indicator:  -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &domain.Table{
				Columns: tt.columns,
				Rows:    [][]string{make([]string, len(tt.columns))},
			}
			table.Rows[0][0] = "x"

			_, roles, _ := Normalize(table)

			assert.Equal(t, tt.identifier, roles.Identifier)
			assert.Equal(t, tt.indicator, roles.Indicator)
		})
	}
}
