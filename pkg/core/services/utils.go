package services

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
)

// WindowDates expands the calendar window for a start date. When an
// rrule string is configured it drives the expansion, anchored at the
// Sunday on or before start; otherwise the window is `days` consecutive
// days from that Sunday.
func WindowDates(start time.Time, days int, rruleStr string) ([]string, error) {
	anchor := priorSunday(start)

	var rule *rrule.RRule
	var err error
	if rruleStr != "" {
		rule, err = rrule.StrToRRule(rruleStr)
		if err != nil {
			return nil, fmt.Errorf("invalid window rrule: %w", err)
		}
		rule.DTStart(anchor)
	} else {
		rule, err = rrule.NewRRule(rrule.ROption{
			Freq:    rrule.DAILY,
			Count:   days,
			Dtstart: anchor,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build window rule: %w", err)
		}
	}

	occurrences := rule.All()
	dates := make([]string, len(occurrences))
	for i, t := range occurrences {
		dates[i] = t.Format("2006-01-02")
	}
	return dates, nil
}

// priorSunday returns the Sunday on or before the given date,
// normalized to start of day UTC
func priorSunday(t time.Time) time.Time {
	normalized := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return normalized.AddDate(0, 0, -int(normalized.Weekday()))
}

// findEmployee returns the index of the named employee, or -1
func findEmployee(employees []model.Employee, name string) int {
	for i := range employees {
		if employees[i].Name == name {
			return i
		}
	}
	return -1
}

// validateRoles checks that the primary role and every additional role
// exist in the registry
func validateRoles(rules map[string]model.RoleRule, primary string, additional []string) error {
	if _, ok := rules[primary]; !ok {
		return fmt.Errorf("%w: %s", model.ErrInvalidRole, primary)
	}
	for _, role := range additional {
		if _, ok := rules[role]; !ok {
			return fmt.Errorf("%w: %s", model.ErrInvalidRole, role)
		}
	}
	return nil
}

// keepLeaves returns only the leave-codes from a cell, in order
func keepLeaves(cell []string) []string {
	var leaves []string
	for _, code := range cell {
		if model.IsLeaveCode(code) {
			leaves = append(leaves, code)
		}
	}
	return leaves
}
