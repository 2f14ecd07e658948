package store

import (
	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
)

// LoadAvailability returns the availability calendar, or nil when no
// document exists yet (the caller decides whether to initialize a window).
func (s *Store) LoadAvailability() (model.Availability, error) {
	var availability model.Availability
	if err := s.readDocument(availabilityFileName, &availability); err != nil {
		if isNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return availability, nil
}

// SaveAvailability replaces the availability document
func (s *Store) SaveAvailability(availability model.Availability) error {
	return s.writeDocument(availabilityFileName, availability)
}
