package scheduling

import (
	"testing"

	"dentora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlotsThirtyMinute(t *testing.T) {
	windows := []models.WorkWindow{
		{Start: "08:00", End: "12:00"},
		{Start: "13:00", End: "17:00"},
	}

	slots, err := GenerateSlots(30, windows)
	require.NoError(t, err)
	require.Len(t, slots, 16)

	assert.Equal(t, models.CandidateSlot{StartTime: "08:00", EndTime: "08:30"}, slots[0])
	assert.Equal(t, models.CandidateSlot{StartTime: "11:30", EndTime: "12:00"}, slots[7])
	assert.Equal(t, models.CandidateSlot{StartTime: "13:00", EndTime: "13:30"}, slots[8])
	assert.Equal(t, models.CandidateSlot{StartTime: "16:30", EndTime: "17:00"}, slots[15])
}

func TestGenerateSlotsSixtyMinute(t *testing.T) {
	windows := []models.WorkWindow{
		{Start: "08:00", End: "12:00"},
		{Start: "13:00", End: "17:00"},
	}

	slots, err := GenerateSlots(60, windows)
	require.NoError(t, err)
	require.Len(t, slots, 8)
	assert.Equal(t, models.CandidateSlot{StartTime: "08:00", EndTime: "09:00"}, slots[0])
	assert.Equal(t, models.CandidateSlot{StartTime: "16:00", EndTime: "17:00"}, slots[7])
}

func TestGenerateSlotsDiscardsTrailingPartial(t *testing.T) {
	// 08:00–09:30 fits one 60-minute slot; the trailing 30 minutes is dropped.
	slots, err := GenerateSlots(60, []models.WorkWindow{{Start: "08:00", End: "09:30"}})
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "08:00", slots[0].StartTime)
	assert.Equal(t, "09:00", slots[0].EndTime)
}

func TestGenerateSlotsWindowTooShort(t *testing.T) {
	slots, err := GenerateSlots(60, []models.WorkWindow{{Start: "08:00", End: "08:45"}})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlotsEmptyWindows(t *testing.T) {
	slots, err := GenerateSlots(30, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlotsInvalidDuration(t *testing.T) {
	for _, d := range []int{0, 15, 45, 90, -30} {
		_, err := GenerateSlots(d, []models.WorkWindow{{Start: "08:00", End: "12:00"}})
		rej, ok := AsRejection(err)
		require.True(t, ok, "duration %d", d)
		assert.Equal(t, ReasonInvalidDuration, rej.Reason)
	}
}

func TestGenerateSlotsMalformedWindows(t *testing.T) {
	cases := []struct {
		name    string
		windows []models.WorkWindow
	}{
		{"unparseable start", []models.WorkWindow{{Start: "8am", End: "12:00"}}},
		{"end before start", []models.WorkWindow{{Start: "12:00", End: "08:00"}}},
		{"end equals start", []models.WorkWindow{{Start: "08:00", End: "08:00"}}},
		{"overlapping", []models.WorkWindow{{Start: "08:00", End: "12:00"}, {Start: "11:00", End: "14:00"}}},
		{"out of order", []models.WorkWindow{{Start: "13:00", End: "17:00"}, {Start: "08:00", End: "12:00"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GenerateSlots(30, tc.windows)
			assert.True(t, IsConfigurationError(err))
		})
	}
}

func TestGenerateSlotsBackToBackWindows(t *testing.T) {
	// Adjacent windows sharing a boundary are valid and do not overlap.
	slots, err := GenerateSlots(30, []models.WorkWindow{
		{Start: "08:00", End: "10:00"},
		{Start: "10:00", End: "12:00"},
	})
	require.NoError(t, err)
	assert.Len(t, slots, 8)
}
