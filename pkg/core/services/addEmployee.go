package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
)

var validate = validator.New()

// AddEmployeeParams describes a roster addition. StartTime/EndTime are
// only meaningful for fixed_time primary roles.
type AddEmployeeParams struct {
	Name            string `validate:"required"`
	Role            string `validate:"required"`
	AdditionalRoles []string
	StartTime       string `validate:"omitempty,datetime=15:04"`
	EndTime         string `validate:"omitempty,datetime=15:04"`

	// Window seeds the calendar when no availability document exists
	// yet. Left empty, a default window is created from today.
	Window []string
}

// AddEmployee appends a new employee to the roster and extends the
// availability calendar with an entry for them on every known date.
func AddEmployee(ctx context.Context, store Store, logger *zap.Logger, params AddEmployeeParams) (*model.Employee, error) {
	if err := validate.Struct(params); err != nil {
		return nil, fmt.Errorf("invalid employee parameters: %w", err)
	}

	rules, err := store.LoadRules()
	if err != nil {
		return nil, fmt.Errorf("failed to load role rules: %w", err)
	}
	if err := validateRoles(rules, params.Role, params.AdditionalRoles); err != nil {
		return nil, err
	}

	employees, err := store.LoadEmployees()
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	if findEmployee(employees, params.Name) >= 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrDuplicateEmployee, params.Name)
	}

	rule := rules[params.Role]
	hasWindow := params.StartTime != "" && params.EndTime != ""
	if rule.RuleType == model.RuleFixedTime && !hasWindow && rule.DefaultShift == "" {
		return nil, fmt.Errorf("%w: role %s has no default shift", model.ErrMissingTimeWindow, params.Role)
	}

	employee := model.Employee{
		Name:            params.Name,
		Role:            params.Role,
		AdditionalRoles: params.AdditionalRoles,
	}
	if rule.RuleType == model.RuleFixedTime && hasWindow {
		employee.StartTime = params.StartTime
		employee.EndTime = params.EndTime
	}

	employees = append(employees, employee)
	if err := store.SaveEmployees(employees); err != nil {
		return nil, fmt.Errorf("failed to save employees: %w", err)
	}

	availability, err := store.LoadAvailability()
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}
	if availability == nil {
		window := params.Window
		if len(window) == 0 {
			window, err = WindowDates(time.Now(), defaultWindowDays, "")
			if err != nil {
				return nil, err
			}
		}
		availability = make(model.Availability, len(window))
		for _, date := range window {
			availability[date] = make(map[string][]string)
		}
	}

	for date := range availability {
		if w := employee.Window(); w != "" {
			availability[date][employee.Name] = []string{w}
		} else {
			availability[date][employee.Name] = []string{}
		}
	}
	if err := store.SaveAvailability(availability); err != nil {
		return nil, fmt.Errorf("failed to save availability: %w", err)
	}

	logger.Info("Employee added",
		zap.String("name", employee.Name),
		zap.String("role", employee.Role),
		zap.Int("dates_seeded", len(availability)))
	return &employee, nil
}

// defaultWindowDays is the four-week window seeded when the calendar
// does not exist yet
const defaultWindowDays = 28
