package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// SyncReport summarizes the repairs one sync pass made
type SyncReport struct {
	Dates          int
	EntriesAdded   int
	EntriesRemoved int
}

// SyncAvailability reconciles the availability calendar against the
// current roster: orphaned entries are removed, missing employees get
// an empty entry on every date. Idempotent; safe after every mutation
// and before generation.
func SyncAvailability(ctx context.Context, store Store, logger *zap.Logger) (*SyncReport, error) {
	employees, err := store.LoadEmployees()
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	availability, err := store.LoadAvailability()
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}
	if availability == nil {
		logger.Debug("No availability calendar to sync")
		return &SyncReport{}, nil
	}

	current := make(map[string]struct{}, len(employees))
	for _, e := range employees {
		current[e.Name] = struct{}{}
	}

	report := &SyncReport{Dates: len(availability)}
	for _, cells := range availability {
		for name := range cells {
			if _, ok := current[name]; !ok {
				delete(cells, name)
				report.EntriesRemoved++
			}
		}
		for _, e := range employees {
			if _, ok := cells[e.Name]; !ok {
				cells[e.Name] = []string{}
				report.EntriesAdded++
			}
		}
	}

	if err := store.SaveAvailability(availability); err != nil {
		return nil, fmt.Errorf("failed to save availability: %w", err)
	}

	logger.Info("Availability synchronized",
		zap.Int("dates", report.Dates),
		zap.Int("entries_added", report.EntriesAdded),
		zap.Int("entries_removed", report.EntriesRemoved))
	return report, nil
}
