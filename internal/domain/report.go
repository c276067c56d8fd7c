package domain

import "sort"

// TabSummary contains the per-tab task counts.
// Invariant: the sum of Counts never exceeds TotalTasks; rows without a
// classifiable indicator are counted in the total but in no bucket.
type TabSummary struct {
	TotalTasks int                  `json:"total_tasks"`
	Counts     map[StatusBucket]int `json:"counts"`
}

// Classified returns the number of rows assigned to any bucket.
func (s TabSummary) Classified() int {
	n := 0
	for _, c := range s.Counts {
		n += c
	}

	return n
}

// TabEntry pairs a tab name with its summary.
type TabEntry struct {
	Tab     string     `json:"tab"`
	Summary TabSummary `json:"summary"`
}

// SkippedTab records a tab excluded from the report and why.
type SkippedTab struct {
	Tab    string `json:"tab"`
	Reason string `json:"reason"`
}

// Report is the aggregate produced by one run over the tab registry.
// Entries keep processing order; Tables holds the cleaned per-tab data for
// detail views. Both are read-only once returned.
type Report struct {
	Entries []TabEntry        `json:"entries"`
	Tables  map[string]*Table `json:"tables"`
	Skipped []SkippedTab      `json:"skipped,omitempty"`
}

// Entry returns the summary for a tab, if present.
func (r *Report) Entry(tab string) (TabSummary, bool) {
	for _, e := range r.Entries {
		if e.Tab == tab {
			return e.Summary, true
		}
	}

	return TabSummary{}, false
}

// TotalTasks sums TotalTasks over all entries.
func (r *Report) TotalTasks() int {
	n := 0
	for _, e := range r.Entries {
		n += e.Summary.TotalTasks
	}

	return n
}

// SortByTotalTasks reorders entries by descending task count, ties broken by
// tab name. Consumers call this for overview views; the stored order stays
// the processing order until then.
func (r *Report) SortByTotalTasks() {
	sort.SliceStable(r.Entries, func(i, j int) bool {
		a, b := r.Entries[i], r.Entries[j]
		if a.Summary.TotalTasks != b.Summary.TotalTasks {
			return a.Summary.TotalTasks > b.Summary.TotalTasks
		}

		return a.Tab < b.Tab
	})
}
