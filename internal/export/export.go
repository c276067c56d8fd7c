// Package export renders a report to JSON, CSV or XLSX for downloads and
// the file run mode.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/sadewadee/sheet-report/internal/domain"
)

var summaryHeader = []string{"Tab", "Total Tasks", "Completed", "Almost Complete", "Half Done", "Work In Progress", "Unclassified"}

func summaryRecord(e domain.TabEntry) []string {
	s := e.Summary

	return []string{
		e.Tab,
		strconv.Itoa(s.TotalTasks),
		strconv.Itoa(s.Counts[domain.BucketCompleted]),
		strconv.Itoa(s.Counts[domain.BucketAlmostComplete]),
		strconv.Itoa(s.Counts[domain.BucketHalfDone]),
		strconv.Itoa(s.Counts[domain.BucketWorkInProgress]),
		strconv.Itoa(s.TotalTasks - s.Classified()),
	}
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, report *domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(report)
}

// WriteCSV writes the summary table as CSV, one record per tab in report
// order.
func WriteCSV(w io.Writer, report *domain.Report) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(summaryHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, e := range report.Entries {
		if err := writer.Write(summaryRecord(e)); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	writer.Flush()

	return writer.Error()
}

// WriteXLSX writes a workbook with a styled Summary sheet plus one detail
// sheet per tab containing its cleaned table.
func WriteXLSX(w io.Writer, report *domain.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	f.SetSheetName("Sheet1", summarySheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	if err := writeSheet(f, summarySheet, headerStyle, summaryHeader, summaryRecords(report)); err != nil {
		return err
	}

	for _, e := range report.Entries {
		table, ok := report.Tables[e.Tab]
		if !ok {
			continue
		}

		name := sheetName(e.Tab)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}

		if err := writeSheet(f, name, headerStyle, table.Columns, table.Rows); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	return nil
}

func summaryRecords(report *domain.Report) [][]string {
	records := make([][]string, 0, len(report.Entries))
	for _, e := range report.Entries {
		records = append(records, summaryRecord(e))
	}

	return records
}

func writeSheet(f *excelize.File, sheet string, headerStyle int, header []string, rows [][]string) error {
	for i, col := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}

		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return fmt.Errorf("set header cell: %w", err)
		}
	}

	if len(header) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(header), 1)
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return fmt.Errorf("style header: %w", err)
		}
	}

	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("data cell: %w", err)
			}

			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("set data cell: %w", err)
			}
		}
	}

	return nil
}

// sheetName trims a tab name to the 31-character worksheet limit.
func sheetName(tab string) string {
	if len(tab) > 31 {
		return tab[:31]
	}

	return tab
}
