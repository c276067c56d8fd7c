package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sadewadee/sheet-report/internal/domain"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		Entries: []domain.TabEntry{
			{
				Tab: "Ops",
				Summary: domain.TabSummary{
					TotalTasks: 3,
					Counts: map[domain.StatusBucket]int{
						domain.BucketCompleted:      2,
						domain.BucketWorkInProgress: 1,
					},
				},
			},
		},
		Tables: map[string]*domain.Table{
			"Ops": {
				Columns: []string{"Issue", "Status"},
				Rows:    [][]string{{"a", "complete"}, {"b", "complete"}, {"c", "20%"}},
			},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleReport()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, summaryHeader, records[0])
	assert.Equal(t, []string{"Ops", "3", "2", "0", "0", "1", "0"}, records[1])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleReport()))

	wb, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer wb.Close()

	assert.ElementsMatch(t, []string{"Summary", "Ops"}, wb.GetSheetList())

	rows, err := wb.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ops", rows[1][0])
	assert.Equal(t, "3", rows[1][1])

	detail, err := wb.GetRows("Ops")
	require.NoError(t, err)
	require.Len(t, detail, 4)
	assert.Equal(t, []string{"Issue", "Status"}, detail[0])
}

func TestWriteJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))
	assert.Contains(t, buf.String(), `"total_tasks": 3`)
}
