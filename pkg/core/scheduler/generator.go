// Package scheduler turns a declared availability calendar into a
// per-day staffing table. Roles with a shift_based rule go through
// weighted fair assignment against headcount requirements; roles with
// a fixed_time rule resolve each employee independently.
package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
)

// Generate produces the schedule for every date present in the
// availability calendar. Deterministic given identical inputs.
func Generate(input Input) (*Result, error) {
	days, err := parseDays(input.Availability)
	if err != nil {
		return nil, err
	}

	entries := make([]model.ScheduleEntry, len(days))
	for i, d := range days {
		entries[i] = model.ScheduleEntry{
			Date:        d.date,
			Assignments: make(map[string]string),
		}
	}

	var warnings []model.Warning

	// sorted role order keeps runs reproducible; each employee belongs
	// to exactly one primary role, so strategies never overwrite each other
	for _, role := range sortedRoleNames(input.Rules) {
		rule := input.Rules[role]
		switch rule.RuleType {
		case model.RuleShiftBased:
			warnings = append(warnings, assignShiftBased(role, rule, input, days, entries)...)
		case model.RuleFixedTime:
			assignFixedTime(role, rule, input, days, entries)
		}
	}

	return &Result{Entries: entries, Warnings: warnings}, nil
}

// parseDays validates and orders the calendar's date keys
func parseDays(availability model.Availability) ([]day, error) {
	dates := availability.Dates()
	days := make([]day, len(dates))
	for i, date := range dates {
		t, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("invalid date key %q in availability: %w", date, err)
		}
		days[i] = day{date: date, t: t}
	}
	return days, nil
}

func sortedRoleNames(rules map[string]model.RoleRule) []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// roleMembers returns the names of employees whose primary role matches,
// preserving roster order
func roleMembers(employees []model.Employee, role string) []string {
	var members []string
	for _, e := range employees {
		if e.Role == role {
			members = append(members, e.Name)
		}
	}
	return members
}
