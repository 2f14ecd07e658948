package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// DeleteEmployee removes an employee from the roster and from every
// date in the availability calendar. Deleting an unknown name is a
// logged no-op, not an error.
func DeleteEmployee(ctx context.Context, store Store, logger *zap.Logger, name string) error {
	employees, err := store.LoadEmployees()
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	idx := findEmployee(employees, name)
	if idx < 0 {
		logger.Warn("Employee not found, nothing to delete", zap.String("name", name))
		return nil
	}

	employees = append(employees[:idx], employees[idx+1:]...)
	if err := store.SaveEmployees(employees); err != nil {
		return fmt.Errorf("failed to save employees: %w", err)
	}

	availability, err := store.LoadAvailability()
	if err != nil {
		return fmt.Errorf("failed to load availability: %w", err)
	}
	for _, cells := range availability {
		delete(cells, name)
	}
	if err := store.SaveAvailability(availability); err != nil {
		return fmt.Errorf("failed to save availability: %w", err)
	}

	logger.Info("Employee deleted", zap.String("name", name))
	return nil
}
