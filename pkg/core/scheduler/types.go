package scheduler

import (
	"time"

	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
)

// Input is the snapshot the generator runs against. Generation is a
// pure function of this snapshot: no I/O, no state carried between runs.
type Input struct {
	// Rules is the role rule registry
	Rules map[string]model.RoleRule

	// Employees is the roster in its persisted order. That order is the
	// tie-break for equal candidate weights, so it must be stable.
	Employees []model.Employee

	// Availability is the declared calendar. The generator processes
	// every date key present, in ascending order.
	Availability model.Availability
}

// Result is the outcome of one generation run
type Result struct {
	// Entries holds one row per date, ordered by date. Every roster
	// employee appears in every row with exactly one code.
	Entries []model.ScheduleEntry

	// Warnings lists understaffed shifts. Understaffing is never an
	// error: the schedule is best-effort.
	Warnings []model.Warning
}

// day is a parsed calendar date paired with its original key
type day struct {
	date string
	t    time.Time
}
