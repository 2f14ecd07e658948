package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
)

// InitAvailability replaces the availability calendar with a fresh
// window: every date gets an empty entry for every roster employee.
func InitAvailability(ctx context.Context, store Store, logger *zap.Logger, window []string) error {
	if len(window) == 0 {
		return fmt.Errorf("window must contain at least one date")
	}

	employees, err := store.LoadEmployees()
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	availability := make(model.Availability, len(window))
	for _, date := range window {
		cells := make(map[string][]string, len(employees))
		for _, e := range employees {
			cells[e.Name] = []string{}
		}
		availability[date] = cells
	}

	if err := store.SaveAvailability(availability); err != nil {
		return fmt.Errorf("failed to save availability: %w", err)
	}

	logger.Info("Availability calendar initialized",
		zap.String("first_date", window[0]),
		zap.String("last_date", window[len(window)-1]),
		zap.Int("dates", len(window)),
		zap.Int("employees", len(employees)))
	return nil
}

// ClearAvailability resets every fixed-time employee's custom window
// and reinitializes a fresh calendar for the given window
func ClearAvailability(ctx context.Context, store Store, logger *zap.Logger, window []string) error {
	rules, err := store.LoadRules()
	if err != nil {
		return fmt.Errorf("failed to load role rules: %w", err)
	}
	employees, err := store.LoadEmployees()
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	cleared := 0
	for i := range employees {
		rule := rules[employees[i].Role]
		if rule.RuleType != model.RuleFixedTime {
			continue
		}
		if employees[i].StartTime != "" || employees[i].EndTime != "" {
			employees[i].StartTime = ""
			employees[i].EndTime = ""
			cleared++
		}
	}
	if err := store.SaveEmployees(employees); err != nil {
		return fmt.Errorf("failed to save employees: %w", err)
	}

	logger.Info("Custom windows cleared", zap.Int("employees", cleared))
	return InitAvailability(ctx, store, logger, window)
}
