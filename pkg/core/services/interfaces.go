package services

import (
	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
)

// RuleStore provides access to the role rule registry
type RuleStore interface {
	LoadRules() (map[string]model.RoleRule, error)
	SaveRules(rules map[string]model.RoleRule) error
}

// RosterStore provides access to the employee directory
type RosterStore interface {
	LoadEmployees() ([]model.Employee, error)
	SaveEmployees(employees []model.Employee) error
}

// AvailabilityStore provides access to the availability calendar
type AvailabilityStore interface {
	LoadAvailability() (model.Availability, error)
	SaveAvailability(availability model.Availability) error
}

// Store is the full scheduling context handle passed explicitly into
// every operation that touches more than one store
type Store interface {
	RuleStore
	RosterStore
	AvailabilityStore
}
