package interchange

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
)

func TestReadFormResponses(t *testing.T) {
	table := strings.Join([]string{
		"時間戳記,名字,請問您是全職還是兼職？,全職 [06/01/2025],全職 [07/01/2025],兼職 [06/01/2025]",
		"2025/1/1 上午 9:00,張三,全職,AL,09:00-18:00,",
		"2025/1/1 上午 9:05,李四,兼職,,,早更和夜更",
	}, "\n")

	responses, err := ReadFormResponses(strings.NewReader(table))
	require.NoError(t, err)
	require.Len(t, responses, 2)

	full := responses[0]
	assert.Equal(t, "張三", full.Name)
	assert.True(t, full.FullTime)
	assert.Equal(t, []FormCell{
		{Date: "2025-01-06", Value: "AL"},
		{Date: "2025-01-07", Value: "09:00-18:00"},
	}, full.Cells, "a full-time row only reads the full-time columns")

	part := responses[1]
	assert.Equal(t, "李四", part.Name)
	assert.False(t, part.FullTime)
	assert.Equal(t, []FormCell{{Date: "2025-01-06", Value: "早更和夜更"}}, part.Cells)
}

func TestReadFormResponses_SkipsIncompleteRows(t *testing.T) {
	table := strings.Join([]string{
		"名字,請問您是全職還是兼職？,全職 [06/01/2025]",
		",全職,AL",
		"張三,,AL",
		"李四,實習,AL",
	}, "\n")

	responses, err := ReadFormResponses(strings.NewReader(table))
	require.NoError(t, err)
	assert.Empty(t, responses, "rows missing a name or a recognized employment type are dropped")
}

func TestReadFormResponses_MissingColumns(t *testing.T) {
	_, err := ReadFormResponses(strings.NewReader("Name,Type\nAnn,full\n"))
	assert.Error(t, err)
}

func TestDateFromColumn(t *testing.T) {
	tests := []struct {
		column string
		prefix string
		want   string
		ok     bool
	}{
		{"全職 [06/01/2025]", "全職", "2025-01-06", true},
		{"兼職 [31/12/2024]", "兼職", "2024-12-31", true},
		{"全職 [06/01/2025]", "兼職", "", false},
		{"名字", "全職", "", false},
		{"全職 [06-01-2025]", "全職", "", false},
	}
	for _, tt := range tests {
		date, ok := dateFromColumn(tt.column, tt.prefix)
		assert.Equal(t, tt.ok, ok, tt.column)
		assert.Equal(t, tt.want, date, tt.column)
	}
}

func TestPartTimeShifts(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		dayType model.DayType
		want    []string
	}{
		{"morning only", "早更", model.Weekday, []string{"7-16"}},
		{"day weekday", "日更", model.Weekday, []string{"0930-1830"}},
		{"day weekend", "日更", model.Weekend, []string{"10-19"}},
		{"night", "夜更", model.Weekday, []string{"15-24"}},
		{"combined phrase", "早更和夜更", model.Weekday, []string{"7-16", "15-24"}},
		{"all weekday", "全選", model.Weekday, []string{"7-16", "0930-1830", "15-24"}},
		{"all weekend", "全選", model.Weekend, []string{"7-16", "10-19", "15-24"}},
		{"free text", "隨便", model.Weekday, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PartTimeShifts(tt.value, tt.dayType))
		})
	}
}
