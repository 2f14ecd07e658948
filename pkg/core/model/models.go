package model

import (
	"fmt"
	"sort"
	"time"
)

// RuleType distinguishes the two shift policies a role can have
type RuleType string

const (
	// RuleShiftBased roles pick from several shift options per day-type,
	// subject to headcount requirements
	RuleShiftBased RuleType = "shift_based"

	// RuleFixedTime roles work one determined window per day
	RuleFixedTime RuleType = "fixed_time"
)

func (t RuleType) IsValid() bool {
	return t == RuleShiftBased || t == RuleFixedTime
}

// DayType classifies a date for shift/requirement table selection
type DayType string

const (
	Weekday DayType = "weekday"
	Weekend DayType = "weekend"
)

// DayTypeOf returns the day-type for a date (Sat/Sun = weekend)
func DayTypeOf(t time.Time) DayType {
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return Weekend
	}
	return Weekday
}

// RoleRule describes the shift policy for one role.
// Shifts and Requirements are set for shift_based rules,
// DefaultShift for fixed_time rules.
type RoleRule struct {
	RuleType     RuleType                      `json:"rule_type"`
	Shifts       map[DayType]map[string]string `json:"shifts,omitempty"`
	Requirements map[DayType]map[string]int    `json:"requirements,omitempty"`
	DefaultShift string                        `json:"default_shift,omitempty"`
}

// Validate checks rule configuration before it enters the registry
func (r *RoleRule) Validate() error {
	switch r.RuleType {
	case RuleFixedTime:
		if r.DefaultShift == "" {
			return fmt.Errorf("fixed_time rule requires a default_shift")
		}
	case RuleShiftBased:
		if len(r.Shifts[Weekday]) == 0 || len(r.Shifts[Weekend]) == 0 {
			return fmt.Errorf("shift_based rule requires weekday and weekend shifts")
		}
	default:
		return fmt.Errorf("unknown rule_type %q", r.RuleType)
	}
	return nil
}

// DeriveRequirements fills in missing headcount requirements for a
// shift_based rule. Every shift slot without an explicit requirement
// gets a headcount of 1.
func (r *RoleRule) DeriveRequirements() {
	if r.RuleType != RuleShiftBased {
		return
	}
	if r.Requirements == nil {
		r.Requirements = make(map[DayType]map[string]int)
	}
	for dayType, shifts := range r.Shifts {
		if r.Requirements[dayType] == nil {
			r.Requirements[dayType] = make(map[string]int)
		}
		for label := range shifts {
			if _, ok := r.Requirements[dayType][label]; !ok {
				r.Requirements[dayType][label] = 1
			}
		}
	}
}

// Employee is one roster entry. Name is the identity key across the
// directory and the availability store.
type Employee struct {
	Name            string   `json:"name"`
	Role            string   `json:"role"`
	AdditionalRoles []string `json:"additional_roles,omitempty"`
	StartTime       string   `json:"start_time,omitempty"`
	EndTime         string   `json:"end_time,omitempty"`
}

// AllRoles returns the primary role followed by any additional roles
func (e *Employee) AllRoles() []string {
	return append([]string{e.Role}, e.AdditionalRoles...)
}

// Window returns the employee's custom shift window as a shift-code,
// or "" when no custom window is configured
func (e *Employee) Window() string {
	if e.StartTime == "" || e.EndTime == "" {
		return ""
	}
	return e.StartTime + "-" + e.EndTime
}

// Availability maps ISO date -> employee name -> declared shift-codes
// or a single leave-code
type Availability map[string]map[string][]string

// Dates returns the calendar's date keys in ascending order
func (a Availability) Dates() []string {
	dates := make([]string, 0, len(a))
	for date := range a {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// ScheduleEntry is one generated day: employee name -> assigned code
type ScheduleEntry struct {
	Date        string
	Assignments map[string]string
}

// Warning reports an understaffed shift. Non-fatal: the generator
// assigns whoever is available and reports the shortfall.
type Warning struct {
	Date       string
	ShiftLabel string
	Role       string
	Required   int
	Assigned   int
}

func (w Warning) String() string {
	return fmt.Sprintf("Warning: %s shift on %s is understaffed. Required: %d, Assigned: %d.",
		w.ShiftLabel, w.Date, w.Required, w.Assigned)
}

// OffCode is the assignment sentinel for an unassigned shift_based employee
const OffCode = "off"

// leave codes are a fixed vocabulary; free text is never inferred into one
var leaveCodes = map[string]struct{}{
	"AL":       {},
	"CL":       {},
	"PH":       {},
	"ON":       {},
	"自由調配":     {},
	"half off": {},
}

// LeaveCodes returns the canonical leave-code vocabulary
func LeaveCodes() []string {
	return []string{"AL", "CL", "PH", "ON", "自由調配", "half off"}
}

// IsLeaveCode reports whether code is one of the fixed leave-codes
func IsLeaveCode(code string) bool {
	_, ok := leaveCodes[code]
	return ok
}
