package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
	"github.com/AiroGriefwind/ScheduleMaker/pkg/interchange"
)

// ImportAvailability replaces the availability calendar with the
// contents of a flat (Date, Employee, Shift) table. Unknown employees
// are tolerated as ad hoc entries; no referential check runs at import
// time. A hyphenated non-leave shift for a fixed_time employee updates
// that employee's configured window as a side effect.
func ImportAvailability(ctx context.Context, store Store, logger *zap.Logger, r io.Reader) error {
	rows, err := interchange.ReadRows(r)
	if err != nil {
		return err
	}

	rules, err := store.LoadRules()
	if err != nil {
		return fmt.Errorf("failed to load role rules: %w", err)
	}
	employees, err := store.LoadEmployees()
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	availability := interchange.GroupRows(rows)

	// seed empty cells so every roster employee appears on every
	// imported date
	for _, cells := range availability {
		for _, e := range employees {
			if _, ok := cells[e.Name]; !ok {
				cells[e.Name] = []string{}
			}
		}
	}

	rosterChanged := false
	for _, row := range rows {
		idx := findEmployee(employees, row.Employee)
		if idx < 0 {
			continue
		}
		rule := rules[employees[idx].Role]
		if rule.RuleType != model.RuleFixedTime {
			continue
		}
		if model.IsLeaveCode(row.Shift) || !strings.Contains(row.Shift, "-") {
			continue
		}
		start, end, ok := strings.Cut(row.Shift, "-")
		if !ok {
			continue
		}
		employees[idx].StartTime = start
		employees[idx].EndTime = end
		rosterChanged = true
	}

	if err := store.SaveAvailability(availability); err != nil {
		return fmt.Errorf("failed to save availability: %w", err)
	}
	if rosterChanged {
		if err := store.SaveEmployees(employees); err != nil {
			return fmt.Errorf("failed to save employees: %w", err)
		}
	}

	logger.Info("Availability imported",
		zap.Int("rows", len(rows)),
		zap.Int("dates", len(availability)),
		zap.Bool("roster_updated", rosterChanged))
	return nil
}

// ExportAvailability flattens the availability calendar into the flat
// (Date, Employee, Shift) table, one row per declared shift
func ExportAvailability(ctx context.Context, store AvailabilityStore, logger *zap.Logger, w io.Writer) error {
	availability, err := store.LoadAvailability()
	if err != nil {
		return fmt.Errorf("failed to load availability: %w", err)
	}

	rows := interchange.ToRows(availability)
	if err := interchange.WriteRows(w, rows); err != nil {
		return err
	}

	logger.Info("Availability exported", zap.Int("rows", len(rows)))
	return nil
}
