package services

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/scheduler"
	"github.com/AiroGriefwind/ScheduleMaker/pkg/interchange"
	"github.com/AiroGriefwind/ScheduleMaker/pkg/utils"
)

// GenerateOptions controls a generation run
type GenerateOptions struct {
	// Export writes the wide per-date schedule table to ExportPath
	Export     bool
	ExportPath string
}

// GenerateResult is the outcome of one generation run
type GenerateResult struct {
	Entries  []model.ScheduleEntry
	Warnings []model.Warning
}

// GenerateSchedule runs the generator against the current snapshot of
// all three stores and optionally exports the resulting table.
// Understaffing surfaces as warnings in the result, never as an error.
func GenerateSchedule(ctx context.Context, store Store, logger *zap.Logger, opts GenerateOptions) (*GenerateResult, error) {
	rules, err := store.LoadRules()
	if err != nil {
		return nil, fmt.Errorf("failed to load role rules: %w", err)
	}
	employees, err := store.LoadEmployees()
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	availability, err := store.LoadAvailability()
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}
	if availability == nil {
		return nil, fmt.Errorf("no availability calendar exists; initialize one first")
	}

	logger.Debug("Generating schedule",
		zap.Int("dates", len(availability)),
		zap.Int("employees", len(employees)),
		zap.Int("roles", len(rules)))

	result, err := scheduler.Generate(scheduler.Input{
		Rules:        rules,
		Employees:    employees,
		Availability: availability,
	})
	if err != nil {
		return nil, fmt.Errorf("schedule generation failed: %w", err)
	}

	for _, warning := range result.Warnings {
		logger.Warn("Understaffed shift",
			zap.String("date", warning.Date),
			zap.String("shift", warning.ShiftLabel),
			zap.String("role", warning.Role),
			zap.Int("required", warning.Required),
			zap.Int("assigned", warning.Assigned))
	}

	if opts.Export {
		if err := exportSchedule(opts.ExportPath, result.Entries, employees); err != nil {
			return nil, err
		}
		logger.Info("Schedule exported", zap.String("path", opts.ExportPath))
	}

	return &GenerateResult{Entries: result.Entries, Warnings: result.Warnings}, nil
}

func exportSchedule(path string, entries []model.ScheduleEntry, employees []model.Employee) error {
	names := make([]string, len(employees))
	for i, e := range employees {
		names[i] = e.Name
	}
	utils.SortNames(names)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create schedule export: %w", err)
	}
	defer f.Close()

	if err := interchange.WriteSchedule(f, entries, names); err != nil {
		return err
	}
	return f.Close()
}
