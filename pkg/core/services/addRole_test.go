package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
)

func TestAddRole_ShiftBased(t *testing.T) {
	mock := &mockStore{rules: map[string]model.RoleRule{}}

	rule := model.RoleRule{
		RuleType: model.RuleShiftBased,
		Shifts: map[model.DayType]map[string]string{
			model.Weekday: {"early": "7-16", "night": "15-24"},
			model.Weekend: {"night": "15-24"},
		},
		Requirements: map[model.DayType]map[string]int{
			model.Weekday: {"night": 2},
		},
	}

	err := AddRole(context.Background(), mock, zap.NewNop(), "NightDesk", rule)
	require.NoError(t, err)

	saved := mock.rules["NightDesk"]
	assert.Equal(t, 2, saved.Requirements[model.Weekday]["night"])
	assert.Equal(t, 1, saved.Requirements[model.Weekday]["early"], "unstated slots default to one head")
	assert.Equal(t, 1, saved.Requirements[model.Weekend]["night"])
	assert.Equal(t, 1, mock.ruleSaves)
}

func TestAddRole_FixedTime(t *testing.T) {
	mock := &mockStore{rules: map[string]model.RoleRule{}}

	rule := model.RoleRule{
		RuleType:     model.RuleFixedTime,
		DefaultShift: "13-22",
	}

	err := AddRole(context.Background(), mock, zap.NewNop(), "LateDesk", rule)
	require.NoError(t, err)
	assert.Equal(t, "13-22", mock.rules["LateDesk"].DefaultShift)
}

func TestAddRole_Duplicate(t *testing.T) {
	mock := &mockStore{}

	rule := model.RoleRule{RuleType: model.RuleFixedTime, DefaultShift: "10-19"}
	err := AddRole(context.Background(), mock, zap.NewNop(), "Freelancer", rule)
	assert.ErrorIs(t, err, model.ErrDuplicateRole)
	assert.Zero(t, mock.ruleSaves)
}

func TestAddRole_InvalidRule(t *testing.T) {
	mock := &mockStore{rules: map[string]model.RoleRule{}}

	tests := []struct {
		name string
		rule model.RoleRule
	}{
		{"unknown rule type", model.RoleRule{RuleType: "hourly"}},
		{"shift based without shifts", model.RoleRule{RuleType: model.RuleShiftBased}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AddRole(context.Background(), mock, zap.NewNop(), "Broken", tt.rule)
			assert.Error(t, err)
		})
	}
}

func TestAddRole_EmptyName(t *testing.T) {
	mock := &mockStore{rules: map[string]model.RoleRule{}}

	rule := model.RoleRule{RuleType: model.RuleFixedTime, DefaultShift: "10-19"}
	err := AddRole(context.Background(), mock, zap.NewNop(), "", rule)
	assert.Error(t, err)
}
