package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
	"github.com/AiroGriefwind/ScheduleMaker/pkg/interchange"
)

// ImportFormResponses merges an availability form response table into
// the calendar. Full-time answers carry leave-codes or custom windows
// (a hyphenated answer also updates the employee's configured window);
// part-time answers are shift-preference phrases resolved through the
// fixed keyword table. Full-time responses from names outside the
// roster are skipped; part-time responses are taken as-is.
func ImportFormResponses(ctx context.Context, store Store, logger *zap.Logger, r io.Reader) error {
	responses, err := interchange.ReadFormResponses(r)
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
	availability, err := store.LoadAvailability()
	if err != nil {
		return fmt.Errorf("failed to load availability: %w", err)
	}
	if availability == nil {
		availability = make(model.Availability)
	}

	rosterChanged := false
	applied := 0
	for _, response := range responses {
		if response.FullTime {
			idx := findEmployee(employees, response.Name)
			if idx < 0 {
				logger.Warn("Skipping full-time response for unknown employee",
					zap.String("name", response.Name))
				continue
			}
			changed, n := applyFullTimeResponse(availability, rules, &employees[idx], response)
			rosterChanged = rosterChanged || changed
			applied += n
		} else {
			applied += applyPartTimeResponse(availability, response)
		}
	}

	if err := store.SaveAvailability(availability); err != nil {
		return fmt.Errorf("failed to save availability: %w", err)
	}
	if rosterChanged {
		if err := store.SaveEmployees(employees); err != nil {
			return fmt.Errorf("failed to save employees: %w", err)
		}
	}

	logger.Info("Form responses imported",
		zap.Int("responses", len(responses)),
		zap.Int("cells_applied", applied),
		zap.Bool("roster_updated", rosterChanged))
	return nil
}

func applyFullTimeResponse(availability model.Availability, rules map[string]model.RoleRule, employee *model.Employee, response interchange.FormResponse) (rosterChanged bool, applied int) {
	for _, cell := range response.Cells {
		ensureCell(availability, cell.Date, employee.Name)

		switch {
		case model.IsLeaveCode(cell.Value):
			availability[cell.Date][employee.Name] = []string{cell.Value}
		case strings.Contains(cell.Value, "-"):
			if start, end, ok := strings.Cut(cell.Value, "-"); ok {
				employee.StartTime = start
				employee.EndTime = end
				rosterChanged = true
			}
			availability[cell.Date][employee.Name] = []string{cell.Value}
		default:
			if w := employee.Window(); w != "" {
				availability[cell.Date][employee.Name] = []string{w}
			} else if rule, ok := rules[employee.Role]; ok && rule.DefaultShift != "" {
				availability[cell.Date][employee.Name] = []string{rule.DefaultShift}
			} else {
				continue
			}
		}
		applied++
	}
	return rosterChanged, applied
}

func applyPartTimeResponse(availability model.Availability, response interchange.FormResponse) int {
	applied := 0
	for _, cell := range response.Cells {
		t, err := time.Parse("2006-01-02", cell.Date)
		if err != nil {
			continue
		}
		ensureCell(availability, cell.Date, response.Name)
		availability[cell.Date][response.Name] = interchange.PartTimeShifts(cell.Value, model.DayTypeOf(t))
		applied++
	}
	return applied
}

func ensureCell(availability model.Availability, date, name string) {
	if availability[date] == nil {
		availability[date] = make(map[string][]string)
	}
	if availability[date][name] == nil {
		availability[date][name] = []string{}
	}
}
