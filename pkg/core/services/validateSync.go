package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Violation is one consistency failure between the roster and the
// availability calendar
type Violation struct {
	Date     string
	Employee string
	Reason   string
}

func (v Violation) String() string {
	if v.Date == "" {
		return v.Reason
	}
	return fmt.Sprintf("%s on %s: %s", v.Employee, v.Date, v.Reason)
}

// ValidateSync reports every consistency violation between the roster
// and the availability calendar. It never repairs anything; repairing
// is SyncAvailability's job, as a separate explicit step.
func ValidateSync(ctx context.Context, store Store, logger *zap.Logger) ([]Violation, error) {
	employees, err := store.LoadEmployees()
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	availability, err := store.LoadAvailability()
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}

	var violations []Violation
	if len(employees) == 0 {
		violations = append(violations, Violation{Reason: "no employees in the directory"})
	}

	current := make(map[string]struct{}, len(employees))
	for _, e := range employees {
		current[e.Name] = struct{}{}
	}

	dates := availability.Dates()
	for _, date := range dates {
		cells := availability[date]
		for _, e := range employees {
			if _, ok := cells[e.Name]; !ok {
				violations = append(violations, Violation{
					Date:     date,
					Employee: e.Name,
					Reason:   "missing availability entry",
				})
			}
		}

		orphans := make([]string, 0)
		for name := range cells {
			if _, ok := current[name]; !ok {
				orphans = append(orphans, name)
			}
		}
		sort.Strings(orphans)
		for _, name := range orphans {
			violations = append(violations, Violation{
				Date:     date,
				Employee: name,
				Reason:   "orphaned availability entry",
			})
		}
	}

	logger.Info("Synchronization validated", zap.Int("violations", len(violations)))
	return violations, nil
}
