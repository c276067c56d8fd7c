// Package pipeline implements the ingestion-normalization-classification
// core: cleaning raw tabular data, classifying completion indicators and
// aggregating per-tab summaries across a tab registry.
package pipeline

import "github.com/sadewadee/sheet-report/internal/domain"

// Candidate column names per role, in priority order. The first name present
// among a table's columns wins; resolution happens once per table.
var (
	identifierCandidates = []string{"Project/Task Name", "KPI ID", "Issue"}
	indicatorCandidates  = []string{"% Achievement", "% Achievement ", "Achievement", "Status"}
)

// ColumnRoles holds the resolved column indexes for a cleaned table.
// An index of -1 means the role is absent.
type ColumnRoles struct {
	Identifier int
	Indicator  int
}

// HasIdentifier reports whether an identifier column was resolved.
func (r ColumnRoles) HasIdentifier() bool { return r.Identifier >= 0 }

// HasIndicator reports whether an indicator column was resolved.
func (r ColumnRoles) HasIndicator() bool { return r.Indicator >= 0 }

// Normalize drops fully-blank rows from t in place and resolves the column
// roles. It returns ok=false when no rows survive cleaning; that is the
// distinguished empty result, not an error. Normalizing an already-clean
// table is a no-op.
func Normalize(t *domain.Table) (*domain.Table, ColumnRoles, bool) {
	kept := t.Rows[:0]

	for i := range t.Rows {
		if !t.RowBlank(i) {
			kept = append(kept, t.Rows[i])
		}
	}

	t.Rows = kept

	roles := resolveRoles(t)
	if len(t.Rows) == 0 {
		return t, roles, false
	}

	return t, roles, true
}

func resolveRoles(t *domain.Table) ColumnRoles {
	return ColumnRoles{
		Identifier: firstPresent(t, identifierCandidates),
		Indicator:  firstPresent(t, indicatorCandidates),
	}
}

func firstPresent(t *domain.Table, candidates []string) int {
	for _, name := range candidates {
		if idx := t.ColumnIndex(name); idx >= 0 {
			return idx
		}
	}

	return -1
}
