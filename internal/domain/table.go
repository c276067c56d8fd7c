package domain

import "strings"

// Table is an ordered tabular data set as returned by a fetcher.
// Column names are unique within a table but vary across tabs.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}

	return -1
}

// Value returns the trimmed cell at (row, col). Short rows read as blank.
func (t *Table) Value(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return ""
	}

	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}

	return strings.TrimSpace(r[col])
}

// RowBlank reports whether every cell in the row is blank.
func (t *Table) RowBlank(row int) bool {
	for col := range t.Columns {
		if t.Value(row, col) != "" {
			return false
		}
	}

	return true
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
