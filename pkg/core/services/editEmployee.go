package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
)

// EditEmployeeParams describes a roster edit, keyed by the current name
type EditEmployeeParams struct {
	OldName         string `validate:"required"`
	NewName         string `validate:"required"`
	NewRole         string `validate:"required"`
	AdditionalRoles []string
	StartTime       string `validate:"omitempty,datetime=15:04"`
	EndTime         string `validate:"omitempty,datetime=15:04"`
}

// EditEmployee renames and re-roles an employee and migrates their
// availability entries. Migration policy: leave-codes always carry
// forward; non-leave entries are replaced by the new fixed window when
// one is supplied, otherwise cleared. Declared availability never
// survives a role change. A full sync runs afterwards.
func EditEmployee(ctx context.Context, store Store, logger *zap.Logger, params EditEmployeeParams) error {
	if err := validate.Struct(params); err != nil {
		return fmt.Errorf("invalid employee parameters: %w", err)
	}

	employees, err := store.LoadEmployees()
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}
	idx := findEmployee(employees, params.OldName)
	if idx < 0 {
		return fmt.Errorf("%w: %s", model.ErrEmployeeNotFound, params.OldName)
	}
	if params.NewName != params.OldName && findEmployee(employees, params.NewName) >= 0 {
		return fmt.Errorf("%w: %s", model.ErrDuplicateEmployee, params.NewName)
	}

	rules, err := store.LoadRules()
	if err != nil {
		return fmt.Errorf("failed to load role rules: %w", err)
	}
	if err := validateRoles(rules, params.NewRole, params.AdditionalRoles); err != nil {
		return err
	}

	rule := rules[params.NewRole]
	fixedTime := rule.RuleType == model.RuleFixedTime

	employee := &employees[idx]
	employee.Name = params.NewName
	employee.Role = params.NewRole
	employee.AdditionalRoles = params.AdditionalRoles
	if fixedTime {
		employee.StartTime = params.StartTime
		employee.EndTime = params.EndTime
	} else {
		employee.StartTime = ""
		employee.EndTime = ""
	}

	availability, err := store.LoadAvailability()
	if err != nil {
		return fmt.Errorf("failed to load availability: %w", err)
	}

	window := employee.Window()
	for date, cells := range availability {
		cell, ok := cells[params.OldName]
		if !ok {
			continue
		}

		newCell := keepLeaves(cell)
		if newCell == nil {
			if fixedTime && window != "" {
				newCell = []string{window}
			} else {
				newCell = []string{}
			}
		}

		delete(cells, params.OldName)
		availability[date][employee.Name] = newCell
	}

	if err := store.SaveAvailability(availability); err != nil {
		return fmt.Errorf("failed to save availability: %w", err)
	}
	if err := store.SaveEmployees(employees); err != nil {
		return fmt.Errorf("failed to save employees: %w", err)
	}

	logger.Info("Employee edited",
		zap.String("old_name", params.OldName),
		zap.String("new_name", params.NewName),
		zap.String("role", params.NewRole))

	if _, err := SyncAvailability(ctx, store, logger); err != nil {
		return fmt.Errorf("post-edit sync failed: %w", err)
	}
	return nil
}
