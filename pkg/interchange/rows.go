// Package interchange maps the availability calendar to and from flat
// tabular streams: (Date, Employee, Shift) row files, the availability
// form-response table, and the wide per-date schedule export.
package interchange

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"

	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
	"github.com/AiroGriefwind/ScheduleMaker/pkg/utils"
)

// Row is one (date, employee, shift) triple. A cell with N codes is
// N rows in the flat form.
type Row struct {
	Date     string
	Employee string
	Shift    string
}

var rowHeader = []string{"Date", "Employee", "Shift"}

// ReadRows parses a flat availability table. The header must contain
// Date, Employee and Shift columns, in any order.
func ReadRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("table has no header row")
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[name] = i
	}
	for _, required := range rowHeader {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("table must contain columns Date, Employee, Shift; missing %q", required)
		}
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, Row{
			Date:     record[columns["Date"]],
			Employee: record[columns["Employee"]],
			Shift:    record[columns["Shift"]],
		})
	}
	return rows, nil
}

// WriteRows serializes rows as a flat table with the canonical header
func WriteRows(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(rowHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write([]string{row.Date, row.Employee, row.Shift}); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}
	return nil
}

// GroupRows folds flat rows into the availability shape. Duplicate
// shifts in one cell collapse; row order within a cell is preserved.
// Employees are taken as-is: referential checks against the roster are
// the caller's concern.
func GroupRows(rows []Row) model.Availability {
	availability := make(model.Availability)
	for _, row := range rows {
		if availability[row.Date] == nil {
			availability[row.Date] = make(map[string][]string)
		}
		cell := availability[row.Date][row.Employee]
		if !slices.Contains(cell, row.Shift) {
			availability[row.Date][row.Employee] = append(cell, row.Shift)
		}
	}
	return availability
}

// ToRows flattens the availability calendar, one row per declared
// shift, ordered by date then romanized employee name
func ToRows(availability model.Availability) []Row {
	var rows []Row
	for _, date := range availability.Dates() {
		cells := availability[date]
		names := make([]string, 0, len(cells))
		for name := range cells {
			names = append(names, name)
		}
		utils.SortNames(names)
		for _, name := range names {
			for _, shift := range cells[name] {
				rows = append(rows, Row{Date: date, Employee: name, Shift: shift})
			}
		}
	}
	return rows
}
