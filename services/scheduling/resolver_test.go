package scheduling

import (
	"testing"
	"time"

	"dentora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDate = "2025-02-24" // a Monday

func morningCandidates(t *testing.T) []models.CandidateSlot {
	t.Helper()
	slots, err := GenerateSlots(30, []models.WorkWindow{{Start: "08:00", End: "12:00"}})
	require.NoError(t, err)
	return slots
}

func slotByStart(t *testing.T, slots []models.AvailableSlot, start string) models.AvailableSlot {
	t.Helper()
	for _, s := range slots {
		if s.StartTime == start {
			return s
		}
	}
	t.Fatalf("no slot starting at %s", start)
	return models.AvailableSlot{}
}

func TestResolveAllFree(t *testing.T) {
	now := time.Date(2025, 2, 23, 12, 0, 0, 0, time.UTC) // the day before
	slots, err := Resolve(testDate, morningCandidates(t), nil, nil, 60, now)
	require.NoError(t, err)
	require.Len(t, slots, 8)
	for _, s := range slots {
		assert.True(t, s.Available, s.StartTime)
		assert.Equal(t, models.ReasonNone, s.Reason)
	}
}

func TestResolveTimeRangeBlock(t *testing.T) {
	now := time.Date(2025, 2, 23, 12, 0, 0, 0, time.UTC)
	blocks := []models.BlockedInterval{{
		ID:        "b1",
		Kind:      models.BlockTimeRange,
		StartDate: testDate,
		EndDate:   testDate,
		StartTime: "09:00",
		EndTime:   "10:00",
		Reason:    "Nghỉ",
	}}

	slots, err := Resolve(testDate, morningCandidates(t), blocks, nil, 60, now)
	require.NoError(t, err)

	// Half-open overlap: exactly the 09:00 and 09:30 slots are blocked. The
	// 08:30 slot ends at 09:00 and the 10:00 slot starts at the block's end.
	for _, s := range slots {
		switch s.StartTime {
		case "09:00", "09:30":
			assert.False(t, s.Available, s.StartTime)
			assert.Equal(t, models.ReasonBlocked, s.Reason, s.StartTime)
		default:
			assert.True(t, s.Available, s.StartTime)
		}
	}
}

func TestResolveFullDayBlock(t *testing.T) {
	now := time.Date(2025, 2, 23, 12, 0, 0, 0, time.UTC)
	blocks := []models.BlockedInterval{{
		ID:        "b1",
		Kind:      models.BlockFullDay,
		StartDate: "2025-02-23",
		EndDate:   "2025-02-25",
		Reason:    "Staff training",
	}}

	slots, err := Resolve(testDate, morningCandidates(t), blocks, nil, 60, now)
	require.NoError(t, err)
	for _, s := range slots {
		assert.False(t, s.Available)
		assert.Equal(t, models.ReasonBlocked, s.Reason)
	}
}

func TestResolveBlockOnDifferentDate(t *testing.T) {
	now := time.Date(2025, 2, 23, 12, 0, 0, 0, time.UTC)
	blocks := []models.BlockedInterval{{
		ID:        "b1",
		Kind:      models.BlockFullDay,
		StartDate: "2025-02-26",
		EndDate:   "2025-02-26",
	}}

	slots, err := Resolve(testDate, morningCandidates(t), blocks, nil, 60, now)
	require.NoError(t, err)
	for _, s := range slots {
		assert.True(t, s.Available, s.StartTime)
	}
}

func TestResolveBookedSlot(t *testing.T) {
	now := time.Date(2025, 2, 23, 12, 0, 0, 0, time.UTC)
	bookings := []models.BookedAppointment{{
		ID:        "a1",
		Date:      testDate,
		StartTime: "9:00", // un-normalized on purpose
		Status:    models.StatusConfirmed,
	}}

	slots, err := Resolve(testDate, morningCandidates(t), nil, bookings, 60, now)
	require.NoError(t, err)

	booked := slotByStart(t, slots, "09:00")
	assert.False(t, booked.Available)
	assert.Equal(t, models.ReasonBooked, booked.Reason)

	// A booking occupies exactly its own start; neighbors stay available.
	assert.True(t, slotByStart(t, slots, "08:30").Available)
	assert.True(t, slotByStart(t, slots, "09:30").Available)
}

func TestResolveCancelledBookingFreesSlot(t *testing.T) {
	now := time.Date(2025, 2, 23, 12, 0, 0, 0, time.UTC)
	bookings := []models.BookedAppointment{{
		ID:        "a1",
		Date:      testDate,
		StartTime: "09:00",
		Status:    models.StatusCancelled,
	}}

	slots, err := Resolve(testDate, morningCandidates(t), nil, bookings, 60, now)
	require.NoError(t, err)
	assert.True(t, slotByStart(t, slots, "09:00").Available)
}

func TestResolveLeadTimeBoundary(t *testing.T) {
	// now = 09:00 on the requested date, 60-minute lead time.
	now := time.Date(2025, 2, 24, 9, 0, 0, 0, time.UTC)

	slots, err := Resolve(testDate, morningCandidates(t), nil, nil, 60, now)
	require.NoError(t, err)

	// Slots starting before 10:00 violate the lead time; 10:00 starts exactly
	// 60 minutes out and qualifies.
	for _, s := range slots {
		if s.StartTime < "10:00" {
			assert.False(t, s.Available, s.StartTime)
			assert.Equal(t, models.ReasonLeadTime, s.Reason, s.StartTime)
		} else {
			assert.True(t, s.Available, s.StartTime)
		}
	}
}

func TestResolveLeadTimeJustUnder(t *testing.T) {
	// One second past 09:00 pushes the 10:00 slot under the 60-minute lead.
	now := time.Date(2025, 2, 24, 9, 0, 1, 0, time.UTC)

	slots, err := Resolve(testDate, morningCandidates(t), nil, nil, 60, now)
	require.NoError(t, err)
	assert.False(t, slotByStart(t, slots, "10:00").Available)
	assert.True(t, slotByStart(t, slots, "10:30").Available)
}

func TestResolveFutureDateIgnoresLeadTime(t *testing.T) {
	now := time.Date(2025, 2, 23, 23, 50, 0, 0, time.UTC) // late the night before
	slots, err := Resolve(testDate, morningCandidates(t), nil, nil, 60, now)
	require.NoError(t, err)
	for _, s := range slots {
		assert.True(t, s.Available, s.StartTime)
	}
}

func TestResolvePastDateAllUnavailable(t *testing.T) {
	now := time.Date(2025, 2, 25, 8, 0, 0, 0, time.UTC) // the day after
	slots, err := Resolve(testDate, morningCandidates(t), nil, nil, 60, now)
	require.NoError(t, err)
	for _, s := range slots {
		assert.False(t, s.Available, s.StartTime)
		assert.Equal(t, models.ReasonLeadTime, s.Reason)
	}
}

func TestResolveRulePrecedence(t *testing.T) {
	// A slot that is blocked, booked and inside the lead window reports
	// blocked; a booked slot inside the lead window reports booked.
	now := time.Date(2025, 2, 24, 8, 45, 0, 0, time.UTC)
	blocks := []models.BlockedInterval{{
		ID:        "b1",
		Kind:      models.BlockTimeRange,
		StartDate: testDate,
		EndDate:   testDate,
		StartTime: "09:00",
		EndTime:   "09:30",
	}}
	bookings := []models.BookedAppointment{
		{ID: "a1", Date: testDate, StartTime: "09:00", Status: models.StatusPending},
		{ID: "a2", Date: testDate, StartTime: "09:30", Status: models.StatusPending},
	}

	slots, err := Resolve(testDate, morningCandidates(t), blocks, bookings, 60, now)
	require.NoError(t, err)
	assert.Equal(t, models.ReasonBlocked, slotByStart(t, slots, "09:00").Reason)
	assert.Equal(t, models.ReasonBooked, slotByStart(t, slots, "09:30").Reason)
	assert.Equal(t, models.ReasonLeadTime, slotByStart(t, slots, "08:00").Reason)
}

func TestResolveRepeatable(t *testing.T) {
	// Pure function: the same inputs resolve to the same slots every time.
	now := time.Date(2025, 2, 24, 9, 0, 0, 0, time.UTC)
	blocks := []models.BlockedInterval{{
		ID:        "b1",
		Kind:      models.BlockTimeRange,
		StartDate: testDate,
		EndDate:   testDate,
		StartTime: "10:00",
		EndTime:   "11:00",
	}}
	bookings := []models.BookedAppointment{{
		ID:        "a1",
		Date:      testDate,
		StartTime: "11:30",
		Status:    models.StatusConfirmed,
	}}

	first, err := Resolve(testDate, morningCandidates(t), blocks, bookings, 60, now)
	require.NoError(t, err)
	second, err := Resolve(testDate, morningCandidates(t), blocks, bookings, 60, now)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveMalformedBlockIsConfigurationError(t *testing.T) {
	now := time.Date(2025, 2, 23, 12, 0, 0, 0, time.UTC)
	blocks := []models.BlockedInterval{{
		ID:        "b1",
		Kind:      models.BlockTimeRange,
		StartDate: testDate,
		EndDate:   testDate,
		// missing StartTime/EndTime
	}}

	_, err := Resolve(testDate, morningCandidates(t), blocks, nil, 60, now)
	assert.True(t, IsConfigurationError(err))
}
