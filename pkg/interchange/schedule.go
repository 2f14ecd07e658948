package interchange

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
)

// WriteSchedule serializes a generated schedule as a wide table: one
// row per date, one column per employee holding the assigned code.
// The caller supplies the column order (the roster, romanized-sorted).
func WriteSchedule(w io.Writer, entries []model.ScheduleEntry, employees []string) error {
	writer := csv.NewWriter(w)

	header := append([]string{"Date"}, employees...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write schedule header: %w", err)
	}

	for _, entry := range entries {
		record := make([]string, 0, len(header))
		record = append(record, entry.Date)
		for _, name := range employees {
			record = append(record, entry.Assignments[name])
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write schedule row for %s: %w", entry.Date, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush schedule: %w", err)
	}
	return nil
}
