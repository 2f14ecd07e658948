package interchange

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
)

func TestReadRows_ColumnsInAnyOrder(t *testing.T) {
	table := strings.Join([]string{
		"Shift,Date,Employee",
		"7-16,2025-01-06,Ann",
		"AL,2025-01-07,Ben",
	}, "\n")

	rows, err := ReadRows(strings.NewReader(table))
	require.NoError(t, err)

	assert.Equal(t, []Row{
		{Date: "2025-01-06", Employee: "Ann", Shift: "7-16"},
		{Date: "2025-01-07", Employee: "Ben", Shift: "AL"},
	}, rows)
}

func TestReadRows_MissingColumn(t *testing.T) {
	_, err := ReadRows(strings.NewReader("Date,Employee\n2025-01-06,Ann\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Shift")
}

func TestReadRows_EmptyInput(t *testing.T) {
	_, err := ReadRows(strings.NewReader(""))
	assert.Error(t, err)
}

func TestWriteRows(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRows(&buf, []Row{
		{Date: "2025-01-06", Employee: "Ann", Shift: "7-16"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Date,Employee,Shift\n2025-01-06,Ann,7-16\n", buf.String())
}

func TestGroupRows_CollapsesDuplicates(t *testing.T) {
	rows := []Row{
		{Date: "2025-01-06", Employee: "Ann", Shift: "7-16"},
		{Date: "2025-01-06", Employee: "Ann", Shift: "15-24"},
		{Date: "2025-01-06", Employee: "Ann", Shift: "7-16"},
		{Date: "2025-01-07", Employee: "Ann", Shift: "AL"},
	}

	availability := GroupRows(rows)
	assert.Equal(t, []string{"7-16", "15-24"}, availability["2025-01-06"]["Ann"])
	assert.Equal(t, []string{"AL"}, availability["2025-01-07"]["Ann"])
}

func TestToRows_OrderedByDateThenName(t *testing.T) {
	availability := model.Availability{
		"2025-01-07": {"Ann": {"AL"}},
		"2025-01-06": {
			"張三": {"09:00-18:00"},
			"Ann": {"7-16", "15-24"},
			"Ben": {},
		},
	}

	rows := ToRows(availability)
	assert.Equal(t, []Row{
		{Date: "2025-01-06", Employee: "Ann", Shift: "7-16"},
		{Date: "2025-01-06", Employee: "Ann", Shift: "15-24"},
		{Date: "2025-01-06", Employee: "張三", Shift: "09:00-18:00"},
		{Date: "2025-01-07", Employee: "Ann", Shift: "AL"},
	}, rows)
}

func TestGroupRows_RoundTripsToRows(t *testing.T) {
	availability := model.Availability{
		"2025-01-06": {"Ann": {"7-16", "15-24"}, "Ben": {"AL"}},
		"2025-01-07": {"Ann": {"0930-1830"}},
	}

	grouped := GroupRows(ToRows(availability))
	assert.Equal(t, availability, grouped)
}
