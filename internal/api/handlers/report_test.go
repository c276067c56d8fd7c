package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadewadee/sheet-report/internal/domain"
)

type stubReportService struct {
	report    *domain.Report
	refreshed bool
}

func (s *stubReportService) GetReport(context.Context) (*domain.Report, error) {
	return s.report, nil
}

func (s *stubReportService) Refresh(context.Context) (*domain.Report, error) {
	s.refreshed = true

	return s.report, nil
}

func stubReport() *domain.Report {
	return &domain.Report{
		Entries: []domain.TabEntry{
			{Tab: "Ops", Summary: domain.TabSummary{TotalTasks: 2, Counts: map[domain.StatusBucket]int{domain.BucketCompleted: 2}}},
			{Tab: "Sales", Summary: domain.TabSummary{TotalTasks: 5, Counts: map[domain.StatusBucket]int{domain.BucketHalfDone: 5}}},
		},
		Tables: map[string]*domain.Table{
			"Ops":   {Columns: []string{"Issue", "Status"}, Rows: [][]string{{"a", "complete"}, {"b", "complete"}}},
			"Sales": {Columns: []string{"Issue", "Status"}, Rows: [][]string{{"c", "60"}}},
		},
		Skipped: []domain.SkippedTab{{Tab: "HR", Reason: "source unreachable"}},
	}
}

func TestReportHandlerGet(t *testing.T) {
	h := NewReportHandler(&stubReportService{report: stubReport()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/report", nil)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp reportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "Ops", resp.Entries[0].Tab)
	assert.Equal(t, 7, resp.TotalTasks)
	require.Len(t, resp.Skipped, 1)
	assert.Equal(t, "HR", resp.Skipped[0].Tab)
}

func TestReportHandlerGetSorted(t *testing.T) {
	h := NewReportHandler(&stubReportService{report: stubReport()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/report?sort=total", nil)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	var resp reportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "Sales", resp.Entries[0].Tab, "sorted view puts the biggest tab first")
}

func TestReportHandlerRefresh(t *testing.T) {
	svc := &stubReportService{report: stubReport()}
	h := NewReportHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/report/refresh", nil)
	rec := httptest.NewRecorder()

	h.Refresh(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.refreshed)

	rec = httptest.NewRecorder()
	h.Refresh(rec, httptest.NewRequest(http.MethodGet, "/api/v1/report/refresh", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestReportHandlerDownloadCSV(t *testing.T) {
	h := NewReportHandler(&stubReportService{report: stubReport()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/report/download?format=csv", nil)
	rec := httptest.NewRecorder()

	h.Download(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Ops,2,2,0,0,0,0")
}

func TestReportHandlerDownloadBadFormat(t *testing.T) {
	h := NewReportHandler(&stubReportService{report: stubReport()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/report/download?format=pdf", nil)
	rec := httptest.NewRecorder()

	h.Download(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
