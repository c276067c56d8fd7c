package pipeline

import "github.com/sadewadee/sheet-report/internal/domain"

// Analyze cleans one tab's raw table and produces its summary.
//
// With an identifier column resolved, TotalTasks counts rows whose
// identifier is non-blank and only those rows are classified; without one,
// every cleaned row counts. Rows whose indicator classifies as unclassified
// appear in the total but in no bucket, so the bucket sum never exceeds the
// total. An empty table yields a zero summary, never an error.
func Analyze(raw *domain.Table) (domain.TabSummary, *domain.Table) {
	summary := domain.TabSummary{Counts: map[domain.StatusBucket]int{}}

	cleaned, roles, ok := Normalize(raw)
	if !ok {
		return summary, cleaned
	}

	for i := range cleaned.Rows {
		if roles.HasIdentifier() {
			if cleaned.Value(i, roles.Identifier) == "" {
				continue
			}
		}

		summary.TotalTasks++

		if !roles.HasIndicator() {
			continue
		}

		bucket := Classify(cleaned.Value(i, roles.Indicator))
		if bucket == domain.BucketUnclassified {
			continue
		}

		summary.Counts[bucket]++
	}

	return summary, cleaned
}
