package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
)

func TestImportAvailability_ReplacesCalendar(t *testing.T) {
	mock := &mockStore{
		employees: []model.Employee{
			{Name: "Ann", Role: "Freelancer"},
			{Name: "Ben", Role: "Freelancer"},
		},
		availability: model.Availability{
			"2024-12-30": {"Ann": {"7-16"}},
		},
	}

	table := strings.Join([]string{
		"Date,Employee,Shift",
		"2025-01-06,Ann,7-16",
		"2025-01-06,Ann,15-24",
		"2025-01-07,Ben,AL",
	}, "\n")

	err := ImportAvailability(context.Background(), mock, zap.NewNop(), strings.NewReader(table))
	require.NoError(t, err)

	_, stale := mock.availability["2024-12-30"]
	assert.False(t, stale, "import replaces, never merges")
	assert.Equal(t, []string{"7-16", "15-24"}, mock.availability["2025-01-06"]["Ann"])
	assert.Equal(t, []string{"AL"}, mock.availability["2025-01-07"]["Ben"])
	assert.Empty(t, mock.availability["2025-01-06"]["Ben"], "roster names are seeded on every date")
	assert.Empty(t, mock.availability["2025-01-07"]["Ann"])
}

func TestImportAvailability_UpdatesFixedTimeWindow(t *testing.T) {
	mock := &mockStore{
		employees: []model.Employee{
			{Name: "Cleo", Role: "SeniorEditor", StartTime: "13", EndTime: "22"},
		},
	}

	table := strings.Join([]string{
		"Date,Employee,Shift",
		"2025-01-06,Cleo,09:00-18:00",
		"2025-01-07,Cleo,PH",
	}, "\n")

	err := ImportAvailability(context.Background(), mock, zap.NewNop(), strings.NewReader(table))
	require.NoError(t, err)

	assert.Equal(t, "09:00", mock.employees[0].StartTime)
	assert.Equal(t, "18:00", mock.employees[0].EndTime)
	assert.Equal(t, 1, mock.employeeSaves)
	assert.Equal(t, []string{"PH"}, mock.availability["2025-01-07"]["Cleo"], "leave-codes never touch the window")
}

func TestImportAvailability_ShiftBasedLeavesRosterAlone(t *testing.T) {
	mock := &mockStore{
		employees: []model.Employee{{Name: "Ann", Role: "Freelancer"}},
	}

	table := "Date,Employee,Shift\n2025-01-06,Ann,7-16\n"
	err := ImportAvailability(context.Background(), mock, zap.NewNop(), strings.NewReader(table))
	require.NoError(t, err)

	assert.Zero(t, mock.employeeSaves)
	assert.Empty(t, mock.employees[0].StartTime)
}

func TestImportAvailability_UnknownEmployeeTolerated(t *testing.T) {
	mock := &mockStore{
		employees: []model.Employee{{Name: "Ann", Role: "Freelancer"}},
	}

	table := "Date,Employee,Shift\n2025-01-06,Visitor,15-24\n"
	err := ImportAvailability(context.Background(), mock, zap.NewNop(), strings.NewReader(table))
	require.NoError(t, err)

	assert.Equal(t, []string{"15-24"}, mock.availability["2025-01-06"]["Visitor"])
}

func TestImportAvailability_BadHeader(t *testing.T) {
	mock := &mockStore{}

	err := ImportAvailability(context.Background(), mock, zap.NewNop(), strings.NewReader("Day,Who\n"))
	assert.Error(t, err)
	assert.Zero(t, mock.availabilitySaves)
}

func TestExportAvailability_RoundTrip(t *testing.T) {
	mock := &mockStore{
		employees: []model.Employee{
			{Name: "Ann", Role: "Freelancer"},
			{Name: "Ben", Role: "Freelancer"},
		},
		availability: model.Availability{
			"2025-01-06": {"Ann": {"7-16", "15-24"}, "Ben": {}},
			"2025-01-07": {"Ann": {}, "Ben": {"AL"}},
		},
	}

	var buf bytes.Buffer
	err := ExportAvailability(context.Background(), mock, zap.NewNop(), &buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"Date,Employee,Shift",
		"2025-01-06,Ann,7-16",
		"2025-01-06,Ann,15-24",
		"2025-01-07,Ben,AL",
	}, lines)

	// importing the export reproduces the declared data
	err = ImportAvailability(context.Background(), mock, zap.NewNop(), strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, []string{"7-16", "15-24"}, mock.availability["2025-01-06"]["Ann"])
	assert.Equal(t, []string{"AL"}, mock.availability["2025-01-07"]["Ben"])
	assert.Empty(t, mock.availability["2025-01-06"]["Ben"])
}
