package handlers

import (
	"net/http"

	"github.com/sadewadee/sheet-report/internal/domain"
)

// TabHandler handles per-tab detail HTTP requests
type TabHandler struct {
	reports ReportServiceInterface
}

// NewTabHandler creates a new TabHandler
func NewTabHandler(reports ReportServiceInterface) *TabHandler {
	return &TabHandler{
		reports: reports,
	}
}

// tabDetail is the detail payload for one tab: its summary plus the cleaned
// table the summary was computed from.
type tabDetail struct {
	Tab     string            `json:"tab"`
	Summary domain.TabSummary `json:"summary"`
	Table   *domain.Table     `json:"table"`
}

// List handles GET /api/v1/tabs - names of tabs present in the report.
func (h *TabHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		RenderError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	report, err := h.reports.GetReport(r.Context())
	if err != nil {
		RenderError(w, http.StatusInternalServerError, "Failed to get report: "+err.Error())
		return
	}

	names := make([]string, 0, len(report.Entries))
	for _, e := range report.Entries {
		names = append(names, e.Tab)
	}

	RenderJSON(w, http.StatusOK, map[string]interface{}{"tabs": names})
}

// Get handles GET /api/v1/tabs/{name}
func (h *TabHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		RenderError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	name := r.PathValue("name")

	report, err := h.reports.GetReport(r.Context())
	if err != nil {
		RenderError(w, http.StatusInternalServerError, "Failed to get report: "+err.Error())
		return
	}

	summary, ok := report.Entry(name)
	if !ok {
		RenderError(w, http.StatusNotFound, "Tab not found in report")
		return
	}

	RenderJSON(w, http.StatusOK, tabDetail{
		Tab:     name,
		Summary: summary,
		Table:   report.Tables[name],
	})
}
