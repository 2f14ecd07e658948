package store

import (
	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
)

// LoadRules returns the role rule registry. When no rules document
// exists yet, the built-in default registry is returned.
func (s *Store) LoadRules() (map[string]model.RoleRule, error) {
	var rules map[string]model.RoleRule
	if err := s.readDocument(rulesFileName, &rules); err != nil {
		if isNotExist(err) {
			return DefaultRules(), nil
		}
		return nil, err
	}
	return rules, nil
}

// SaveRules replaces the role rule registry document
func (s *Store) SaveRules(rules map[string]model.RoleRule) error {
	return s.writeDocument(rulesFileName, rules)
}

// DefaultRules is the built-in registry used when no rules document
// exists: one shift_based Freelancer role and the fixed_time desk roles.
func DefaultRules() map[string]model.RoleRule {
	return map[string]model.RoleRule{
		"Freelancer": {
			RuleType: model.RuleShiftBased,
			Shifts: map[model.DayType]map[string]string{
				model.Weekday: {"early": "7-16", "day": "0930-1830", "night": "15-24"},
				model.Weekend: {"early": "7-16", "day": "10-19", "night": "15-24"},
			},
			Requirements: map[model.DayType]map[string]int{
				model.Weekday: {"early": 1, "day": 1, "night": 2},
				model.Weekend: {"early": 1, "day": 1, "night": 1},
			},
		},
		"SeniorEditor": {
			RuleType:     model.RuleFixedTime,
			DefaultShift: "13-22",
		},
		"economics": {
			RuleType:     model.RuleFixedTime,
			DefaultShift: "10-19",
		},
		"Entertainment": {
			RuleType:     model.RuleFixedTime,
			DefaultShift: "10-19",
		},
		"KoreanEntertainment": {
			RuleType:     model.RuleFixedTime,
			DefaultShift: "10-19",
		},
	}
}
