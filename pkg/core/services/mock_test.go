package services

import (
	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
	"github.com/AiroGriefwind/ScheduleMaker/pkg/store"
)

// mockStore implements a test double for the Store interface
type mockStore struct {
	rules        map[string]model.RoleRule
	employees    []model.Employee
	availability model.Availability

	loadRulesErr        error
	loadEmployeesErr    error
	loadAvailabilityErr error
	saveRulesErr        error
	saveEmployeesErr    error
	saveAvailabilityErr error

	ruleSaves         int
	employeeSaves     int
	availabilitySaves int
}

func (m *mockStore) LoadRules() (map[string]model.RoleRule, error) {
	if m.loadRulesErr != nil {
		return nil, m.loadRulesErr
	}
	if m.rules == nil {
		return store.DefaultRules(), nil
	}
	return m.rules, nil
}

func (m *mockStore) SaveRules(rules map[string]model.RoleRule) error {
	if m.saveRulesErr != nil {
		return m.saveRulesErr
	}
	m.rules = rules
	m.ruleSaves++
	return nil
}

func (m *mockStore) LoadEmployees() ([]model.Employee, error) {
	if m.loadEmployeesErr != nil {
		return nil, m.loadEmployeesErr
	}
	return m.employees, nil
}

func (m *mockStore) SaveEmployees(employees []model.Employee) error {
	if m.saveEmployeesErr != nil {
		return m.saveEmployeesErr
	}
	m.employees = employees
	m.employeeSaves++
	return nil
}

func (m *mockStore) LoadAvailability() (model.Availability, error) {
	if m.loadAvailabilityErr != nil {
		return nil, m.loadAvailabilityErr
	}
	return m.availability, nil
}

func (m *mockStore) SaveAvailability(availability model.Availability) error {
	if m.saveAvailabilityErr != nil {
		return m.saveAvailabilityErr
	}
	m.availability = availability
	m.availabilitySaves++
	return nil
}

// threeEmptyDates is a small calendar seed used across tests
func threeEmptyDates(names ...string) model.Availability {
	availability := model.Availability{}
	for _, date := range []string{"2025-01-06", "2025-01-07", "2025-01-08"} {
		cells := map[string][]string{}
		for _, name := range names {
			cells[name] = []string{}
		}
		availability[date] = cells
	}
	return availability
}
