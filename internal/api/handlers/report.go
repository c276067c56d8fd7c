package handlers

import (
	"context"
	"net/http"

	"github.com/sadewadee/sheet-report/internal/domain"
	"github.com/sadewadee/sheet-report/internal/export"
)

// ReportServiceInterface defines the report service methods
type ReportServiceInterface interface {
	GetReport(ctx context.Context) (*domain.Report, error)
	Refresh(ctx context.Context) (*domain.Report, error)
}

// ReportHandler handles aggregate-report HTTP requests
type ReportHandler struct {
	reports ReportServiceInterface
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reports ReportServiceInterface) *ReportHandler {
	return &ReportHandler{
		reports: reports,
	}
}

// reportResponse is the overview payload: summaries, totals and skip
// records, without the per-tab tables.
type reportResponse struct {
	Entries    []domain.TabEntry   `json:"entries"`
	TotalTasks int                 `json:"total_tasks"`
	Skipped    []domain.SkippedTab `json:"skipped,omitempty"`
}

// Get handles GET /api/v1/report. With ?sort=total the entries are ordered
// by descending task count instead of processing order.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		RenderError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	report, err := h.reports.GetReport(r.Context())
	if err != nil {
		RenderError(w, http.StatusInternalServerError, "Failed to get report: "+err.Error())
		return
	}

	if r.URL.Query().Get("sort") == "total" {
		report.SortByTotalTasks()
	}

	RenderJSON(w, http.StatusOK, reportResponse{
		Entries:    report.Entries,
		TotalTasks: report.TotalTasks(),
		Skipped:    report.Skipped,
	})
}

// Refresh handles POST /api/v1/report/refresh - recomputes from the current
// source state, bypassing the cache.
func (h *ReportHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		RenderError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	report, err := h.reports.Refresh(r.Context())
	if err != nil {
		RenderError(w, http.StatusInternalServerError, "Failed to refresh report: "+err.Error())
		return
	}

	RenderJSON(w, http.StatusOK, reportResponse{
		Entries:    report.Entries,
		TotalTasks: report.TotalTasks(),
		Skipped:    report.Skipped,
	})
}

// Download handles GET /api/v1/report/download?format=json|csv|xlsx
func (h *ReportHandler) Download(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		RenderError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	report, err := h.reports.GetReport(r.Context())
	if err != nil {
		RenderError(w, http.StatusInternalServerError, "Failed to get report: "+err.Error())
		return
	}

	switch format {
	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", "attachment; filename=report.json")
		_ = export.WriteJSON(w, report)
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=report.csv")
		_ = export.WriteCSV(w, report)
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename=report.xlsx")
		_ = export.WriteXLSX(w, report)
	default:
		RenderError(w, http.StatusBadRequest, "Invalid format. Use 'json', 'csv', or 'xlsx'")
	}
}
