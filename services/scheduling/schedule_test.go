package scheduling

import (
	"testing"

	"dentora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullWeek() []models.WeeklyScheduleDay {
	days := make([]models.WeeklyScheduleDay, 7)
	for i := range days {
		days[i] = models.WeeklyScheduleDay{DayIndex: i}
	}
	days[1] = models.WeeklyScheduleDay{
		DayIndex:  1,
		IsWorking: true,
		Windows: []models.WorkWindow{
			{Start: "08:00", End: "12:00"},
			{Start: "13:00", End: "17:00"},
		},
	}
	return days
}

func TestValidateWeeklyScheduleAccepts(t *testing.T) {
	assert.NoError(t, ValidateWeeklySchedule(fullWeek()))
}

func TestValidateWeeklyScheduleWrongLength(t *testing.T) {
	err := ValidateWeeklySchedule(fullWeek()[:6])
	assert.True(t, IsConfigurationError(err))
}

func TestValidateWeeklyScheduleDuplicateDay(t *testing.T) {
	days := fullWeek()
	days[6].DayIndex = 1
	err := ValidateWeeklySchedule(days)
	assert.True(t, IsConfigurationError(err))
}

func TestValidateWeeklyScheduleBadWindows(t *testing.T) {
	days := fullWeek()
	days[1].Windows = []models.WorkWindow{
		{Start: "08:00", End: "12:00"},
		{Start: "10:00", End: "14:00"},
	}
	err := ValidateWeeklySchedule(days)
	assert.True(t, IsConfigurationError(err))
}

func TestValidateWeeklyScheduleIgnoresNonWorkingWindows(t *testing.T) {
	// Windows on a non-working day are not inspected; IsWorking wins.
	days := fullWeek()
	days[2].Windows = []models.WorkWindow{{Start: "bad", End: "worse"}}
	assert.NoError(t, ValidateWeeklySchedule(days))
}

func TestValidateBlockedIntervalFullDay(t *testing.T) {
	b := models.BlockedInterval{
		Kind:      models.BlockFullDay,
		StartDate: "2025-02-24",
		EndDate:   "2025-02-26",
	}
	assert.NoError(t, ValidateBlockedInterval(b))
}

func TestValidateBlockedIntervalTimeRange(t *testing.T) {
	b := models.BlockedInterval{
		Kind:      models.BlockTimeRange,
		StartDate: "2025-02-24",
		EndDate:   "2025-02-24",
		StartTime: "09:00",
		EndTime:   "10:00",
	}
	require.NoError(t, ValidateBlockedInterval(b))

	b.EndTime = ""
	assert.True(t, IsConfigurationError(ValidateBlockedInterval(b)))

	b.StartTime, b.EndTime = "10:00", "09:00"
	assert.True(t, IsConfigurationError(ValidateBlockedInterval(b)))
}

func TestValidateBlockedIntervalReversedDates(t *testing.T) {
	b := models.BlockedInterval{
		Kind:      models.BlockFullDay,
		StartDate: "2025-02-26",
		EndDate:   "2025-02-24",
	}
	assert.True(t, IsConfigurationError(ValidateBlockedInterval(b)))
}

func TestValidateBlockedIntervalUnknownKind(t *testing.T) {
	b := models.BlockedInterval{
		Kind:      "sabbatical",
		StartDate: "2025-02-24",
		EndDate:   "2025-02-24",
	}
	assert.True(t, IsConfigurationError(ValidateBlockedInterval(b)))
}
