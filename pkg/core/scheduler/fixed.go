package scheduler

import (
	"strings"

	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
)

// assignFixedTime fills the schedule for one fixed_time role. Every
// member is resolved independently per date; there is no headcount
// enforcement and no fairness weighting for fixed-time roles.
//
// Resolution order for a cell: a leading leave-code is assigned
// verbatim; a hyphenated code is a one-day window override, assigned
// verbatim; anything else, including an empty or absent cell, falls
// back to the role's default shift.
func assignFixedTime(role string, rule model.RoleRule, input Input, days []day, entries []model.ScheduleEntry) {
	members := roleMembers(input.Employees, role)

	for i, d := range days {
		cells := input.Availability[d.date]
		for _, name := range members {
			entries[i].Assignments[name] = resolveFixedCell(cells[name], rule.DefaultShift)
		}
	}
}

func resolveFixedCell(cell []string, defaultShift string) string {
	if len(cell) == 0 {
		return defaultShift
	}
	first := cell[0]
	if model.IsLeaveCode(first) {
		return first
	}
	if strings.Contains(first, "-") {
		return first
	}
	return defaultShift
}
