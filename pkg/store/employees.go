package store

import (
	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
)

// LoadEmployees returns the roster in its persisted order.
// An absent roster document is an empty roster, not an error.
func (s *Store) LoadEmployees() ([]model.Employee, error) {
	var employees []model.Employee
	if err := s.readDocument(employeesFileName, &employees); err != nil {
		if isNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return employees, nil
}

// SaveEmployees replaces the roster document
func (s *Store) SaveEmployees(employees []model.Employee) error {
	return s.writeDocument(employeesFileName, employees)
}
