package interchange

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
)

// Column contract of the availability form response table. Responses
// carry a name, an employment-type discriminator and one column per
// date, the column header embedding the date as "全職 [DD/MM/YYYY]" or
// "兼職 [DD/MM/YYYY]".
const (
	formNameColumn = "名字"
	formTypeColumn = "請問您是全職還是兼職？"
	formFullTime   = "全職"
	formPartTime   = "兼職"

	// formAllShifts marks a part-time response selecting every shift
	formAllShifts = "全選"
)

// FormCell is one dated answer from a response row
type FormCell struct {
	Date  string // ISO YYYY-MM-DD
	Value string // raw answer text
}

// FormResponse is one parsed response row
type FormResponse struct {
	Name     string
	FullTime bool
	Cells    []FormCell
}

// ReadFormResponses parses the form response table. Rows without a
// name or an employment type are skipped, as are blank answers.
func ReadFormResponses(r io.Reader) ([]FormResponse, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read form responses: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("form response table has no header row")
	}

	header := records[0]
	nameIdx, typeIdx := -1, -1
	for i, col := range header {
		switch col {
		case formNameColumn:
			nameIdx = i
		case formTypeColumn:
			typeIdx = i
		}
	}
	if nameIdx < 0 || typeIdx < 0 {
		return nil, fmt.Errorf("form response table must contain %q and %q columns", formNameColumn, formTypeColumn)
	}

	var responses []FormResponse
	for _, record := range records[1:] {
		name := strings.TrimSpace(record[nameIdx])
		employmentType := strings.TrimSpace(record[typeIdx])
		if name == "" || employmentType == "" {
			continue
		}

		fullTime := employmentType == formFullTime
		if !fullTime && employmentType != formPartTime {
			continue
		}

		prefix := formPartTime
		if fullTime {
			prefix = formFullTime
		}

		response := FormResponse{Name: name, FullTime: fullTime}
		for i, col := range header {
			date, ok := dateFromColumn(col, prefix)
			if !ok {
				continue
			}
			value := strings.TrimSpace(record[i])
			if value == "" {
				continue
			}
			response.Cells = append(response.Cells, FormCell{Date: date, Value: value})
		}
		responses = append(responses, response)
	}
	return responses, nil
}

// dateFromColumn extracts the ISO date from a "<prefix> [DD/MM/YYYY]"
// column header
func dateFromColumn(column, prefix string) (string, bool) {
	if !strings.HasPrefix(column, prefix+" [") || !strings.HasSuffix(column, "]") {
		return "", false
	}
	token := strings.TrimSuffix(strings.TrimPrefix(column, prefix+" ["), "]")
	parts := strings.Split(token, "/")
	if len(parts) != 3 {
		return "", false
	}
	return fmt.Sprintf("%s-%s-%s", parts[2], parts[1], parts[0]), true
}

// PartTimeShifts maps a part-time preference phrase to shift-codes for
// the given day-type. The keyword table is fixed: no further codes are
// ever inferred from free text.
func PartTimeShifts(value string, dayType model.DayType) []string {
	dayShift := "0930-1830"
	if dayType == model.Weekend {
		dayShift = "10-19"
	}

	if value == formAllShifts {
		return []string{"7-16", dayShift, "15-24"}
	}

	var shifts []string
	if strings.Contains(value, "早更") {
		shifts = append(shifts, "7-16")
	}
	if strings.Contains(value, "日更") {
		shifts = append(shifts, dayShift)
	}
	if strings.Contains(value, "夜更") {
		shifts = append(shifts, "15-24")
	}
	return shifts
}
