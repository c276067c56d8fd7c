package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sadewadee/sheet-report/internal/domain"
)

func TestAnalyzeEmptyTable(t *testing.T) {
	table := &domain.Table{
		Columns: []string{"Issue", "Status"},
		Rows:    [][]string{{"", ""}},
	}

	summary, cleaned := Analyze(table)

	assert.Equal(t, 0, summary.TotalTasks)
	assert.Empty(t, summary.Counts)
	assert.Equal(t, 0, cleaned.Len())
}

func TestAnalyzeStatusScenario(t *testing.T) {
	// Five tasks with a non-blank identifier each; one blank status row stays
	// in the total but lands in no bucket.
	table := &domain.Table{
		Columns: []string{"Issue", "Status"},
		Rows: [][]string{
			{"a", "Complete"},
			{"b", "95%"},
			{"c", "60"},
			{"d", "20%"},
			{"e", ""},
		},
	}

	summary, _ := Analyze(table)

	assert.Equal(t, 5, summary.TotalTasks)
	assert.Equal(t, map[domain.StatusBucket]int{
		domain.BucketCompleted:      1,
		domain.BucketAlmostComplete: 1,
		domain.BucketHalfDone:       1,
		domain.BucketWorkInProgress: 1,
	}, summary.Counts)
}

func TestAnalyzeUnparseableIndicators(t *testing.T) {
	// "TBD" carries no numeric token: every row counts as in progress, the
	// tab still has countable tasks.
	table := &domain.Table{
		Columns: []string{"KPI ID", "% Achievement"},
		Rows: [][]string{
			{"K-1", "TBD"},
			{"K-2", "TBD"},
		},
	}

	summary, _ := Analyze(table)

	assert.Equal(t, 2, summary.TotalTasks)
	assert.Equal(t, map[domain.StatusBucket]int{domain.BucketWorkInProgress: 2}, summary.Counts)
}

func TestAnalyzeNoIndicatorColumn(t *testing.T) {
	table := &domain.Table{
		Columns: []string{"Issue", "Owner"},
		Rows: [][]string{
			{"a", "alice"},
			{"b", "bob"},
		},
	}

	summary, _ := Analyze(table)

	assert.Equal(t, 2, summary.TotalTasks)
	assert.Empty(t, summary.Counts)
}

func TestAnalyzeNoIdentifierColumn(t *testing.T) {
	// Without an identifier column the total falls back to the cleaned row
	// count.
	table := &domain.Table{
		Columns: []string{"Owner", "Status"},
		Rows: [][]string{
			{"alice", "complete"},
			{"bob", "40"},
			{"", ""},
		},
	}

	summary, _ := Analyze(table)

	assert.Equal(t, 2, summary.TotalTasks)
	assert.Equal(t, map[domain.StatusBucket]int{
		domain.BucketCompleted:      1,
		domain.BucketWorkInProgress: 1,
	}, summary.Counts)
}

func TestAnalyzeBlankIdentifierRowExcluded(t *testing.T) {
	// With an identifier column present, a blank-identifier row is neither
	// counted nor classified, so the bucket sum stays within the total.
	table := &domain.Table{
		Columns: []string{"Issue", "Status"},
		Rows: [][]string{
			{"a", "complete"},
			{"", "complete"},
		},
	}

	summary, _ := Analyze(table)

	assert.Equal(t, 1, summary.TotalTasks)
	assert.Equal(t, 1, summary.Counts[domain.BucketCompleted])
	assert.LessOrEqual(t, summary.Classified(), summary.TotalTasks)
}
