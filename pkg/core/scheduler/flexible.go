package scheduler

import (
	"slices"
	"sort"

	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
)

// shiftSlot pairs a shift-label with its required headcount
type shiftSlot struct {
	label    string
	required int
}

// candidate is an employee eligible for the slot being filled,
// with the fairness weight computed for this date
type candidate struct {
	name   string
	weight float64
}

// assignShiftBased fills the schedule for one shift_based role using
// weighted fair assignment. Per date, slots are filled hardest-first
// (highest required headcount), so high-demand shifts do not starve on
// leftover candidates. Per slot, candidates are weighted by
//
//	1/(options declared today + 1) + 1/(times assigned this label + 1)
//
// which favours employees with scarce availability and employees the
// run has used less for this label. The per-label counters live only
// for this run; fairness is within a single generation, never across runs.
func assignShiftBased(role string, rule model.RoleRule, input Input, days []day, entries []model.ScheduleEntry) []model.Warning {
	members := roleMembers(input.Employees, role)

	counts := make(map[string]map[string]int, len(members))
	for _, name := range members {
		counts[name] = make(map[string]int)
	}

	var warnings []model.Warning

	for i, d := range days {
		dayType := model.DayTypeOf(d.t)
		shifts := rule.Shifts[dayType]
		requirements := rule.Requirements[dayType]
		cells := input.Availability[d.date]

		// every member starts the day off
		for _, name := range members {
			entries[i].Assignments[name] = model.OffCode
		}

		for _, slot := range prioritizedSlots(requirements) {
			code, ok := shifts[slot.label]
			if !ok {
				continue
			}

			// candidates are built in roster order; the stable sort
			// below keeps that order for equal weights
			var candidates []candidate
			for _, name := range members {
				cell := cells[name]
				if entries[i].Assignments[name] != model.OffCode {
					continue
				}
				if !slices.Contains(cell, code) {
					continue
				}
				weight := 1.0/float64(len(cell)+1) + 1.0/float64(counts[name][slot.label]+1)
				candidates = append(candidates, candidate{name: name, weight: weight})
			}

			sort.SliceStable(candidates, func(a, b int) bool {
				return candidates[a].weight > candidates[b].weight
			})

			assigned := 0
			for _, c := range candidates {
				if assigned >= slot.required {
					break
				}
				entries[i].Assignments[c.name] = code
				counts[c.name][slot.label]++
				assigned++
			}

			if assigned < slot.required {
				warnings = append(warnings, model.Warning{
					Date:       d.date,
					ShiftLabel: slot.label,
					Role:       role,
					Required:   slot.required,
					Assigned:   assigned,
				})
			}
		}
	}

	return warnings
}

// prioritizedSlots orders a day-type's slots by required headcount
// descending, ties by label ascending for determinism
func prioritizedSlots(requirements map[string]int) []shiftSlot {
	slots := make([]shiftSlot, 0, len(requirements))
	for label, required := range requirements {
		slots = append(slots, shiftSlot{label: label, required: required})
	}
	sort.Slice(slots, func(a, b int) bool {
		if slots[a].required != slots[b].required {
			return slots[a].required > slots[b].required
		}
		return slots[a].label < slots[b].label
	})
	return slots
}
