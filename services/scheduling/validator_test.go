package scheduling

import (
	"testing"
	"time"

	"dentora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mondaySnapshot() Snapshot {
	return Snapshot{
		Day: models.WeeklyScheduleDay{
			DayIndex:  1,
			IsWorking: true,
			Windows: []models.WorkWindow{
				{Start: "08:00", End: "12:00"},
				{Start: "13:00", End: "17:00"},
			},
		},
	}
}

func bookingReq(start string, duration int) BookingRequest {
	return BookingRequest{
		ProviderID:      "prov-1",
		Date:            testDate,
		StartTime:       start,
		DurationMinutes: duration,
	}
}

func TestValidateBookingAccepts(t *testing.T) {
	now := time.Date(2025, 2, 23, 12, 0, 0, 0, time.UTC)
	err := ValidateBooking(bookingReq("09:00", 30), mondaySnapshot(), 60, now)
	assert.NoError(t, err)
}

func TestValidateBookingNormalizesStart(t *testing.T) {
	now := time.Date(2025, 2, 23, 12, 0, 0, 0, time.UTC)
	err := ValidateBooking(bookingReq("9:00", 30), mondaySnapshot(), 60, now)
	assert.NoError(t, err)
}

func TestValidateBookingInvalidDuration(t *testing.T) {
	now := time.Date(2025, 2, 23, 12, 0, 0, 0, time.UTC)
	err := ValidateBooking(bookingReq("09:00", 45), mondaySnapshot(), 60, now)
	rej, ok := AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, ReasonInvalidDuration, rej.Reason)
}

func TestValidateBookingDayOff(t *testing.T) {
	now := time.Date(2025, 2, 23, 12, 0, 0, 0, time.UTC)
	snap := mondaySnapshot()
	snap.Day.IsWorking = false

	err := ValidateBooking(bookingReq("09:00", 30), snap, 60, now)
	rej, ok := AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, ReasonProviderNotWorking, rej.Reason)
}

func TestValidateBookingFullDayBlock(t *testing.T) {
	now := time.Date(2025, 2, 23, 12, 0, 0, 0, time.UTC)
	snap := mondaySnapshot()
	snap.Blocked = []models.BlockedInterval{{
		ID:        "b1",
		Kind:      models.BlockFullDay,
		StartDate: testDate,
		EndDate:   testDate,
		Reason:    "Staff training",
	}}

	err := ValidateBooking(bookingReq("09:00", 30), snap, 60, now)
	rej, ok := AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, ReasonProviderNotWorking, rej.Reason)
}

func TestValidateBookingSlotBooked(t *testing.T) {
	now := time.Date(2025, 2, 23, 12, 0, 0, 0, time.UTC)
	snap := mondaySnapshot()
	snap.Bookings = []models.BookedAppointment{{
		ID:        "a1",
		Date:      testDate,
		StartTime: "09:00",
		Status:    models.StatusConfirmed,
	}}

	err := ValidateBooking(bookingReq("09:00", 30), snap, 60, now)
	rej, ok := AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, ReasonSlotNoLongerAvailable, rej.Reason)

	// The neighboring slot is unaffected.
	assert.NoError(t, ValidateBooking(bookingReq("09:30", 30), snap, 60, now))
}

func TestValidateBookingLeadTime(t *testing.T) {
	now := time.Date(2025, 2, 24, 8, 30, 0, 0, time.UTC)

	err := ValidateBooking(bookingReq("09:00", 30), mondaySnapshot(), 60, now)
	rej, ok := AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, ReasonLeadTimeViolation, rej.Reason)

	// 09:30 is exactly 60 minutes out and passes.
	assert.NoError(t, ValidateBooking(bookingReq("09:30", 30), mondaySnapshot(), 60, now))
}

func TestValidateBookingOffGridStart(t *testing.T) {
	now := time.Date(2025, 2, 23, 12, 0, 0, 0, time.UTC)

	// 09:15 never appears on a 30-minute grid anchored at 08:00.
	err := ValidateBooking(bookingReq("09:15", 30), mondaySnapshot(), 60, now)
	rej, ok := AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, ReasonSlotNoLongerAvailable, rej.Reason)

	// Neither does a start inside the lunch gap.
	err = ValidateBooking(bookingReq("12:30", 30), mondaySnapshot(), 60, now)
	rej, ok = AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, ReasonSlotNoLongerAvailable, rej.Reason)
}

func TestValidateBookingUnparseableStart(t *testing.T) {
	now := time.Date(2025, 2, 23, 12, 0, 0, 0, time.UTC)
	err := ValidateBooking(bookingReq("morning", 30), mondaySnapshot(), 60, now)
	rej, ok := AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, ReasonSlotNoLongerAvailable, rej.Reason)
}

func TestValidateBookingCorruptWindows(t *testing.T) {
	now := time.Date(2025, 2, 23, 12, 0, 0, 0, time.UTC)
	snap := mondaySnapshot()
	snap.Day.Windows = []models.WorkWindow{{Start: "12:00", End: "08:00"}}

	err := ValidateBooking(bookingReq("09:00", 30), snap, 60, now)
	assert.True(t, IsConfigurationError(err))
}

// Booking a slot never changes the availability of any other slot: with the
// conflict rule keyed on exact start times, adding an appointment flips
// exactly one slot from available to booked.
func TestBookingMonotonicity(t *testing.T) {
	now := time.Date(2025, 2, 23, 12, 0, 0, 0, time.UTC)
	snap := mondaySnapshot()

	candidates, err := GenerateSlots(30, snap.Day.Windows)
	require.NoError(t, err)

	before, err := Resolve(testDate, candidates, snap.Blocked, snap.Bookings, 60, now)
	require.NoError(t, err)

	snap.Bookings = append(snap.Bookings, models.BookedAppointment{
		ID:        "a1",
		Date:      testDate,
		StartTime: "10:00",
		Status:    models.StatusPending,
	})
	after, err := Resolve(testDate, candidates, snap.Blocked, snap.Bookings, 60, now)
	require.NoError(t, err)

	require.Len(t, after, len(before))
	for i := range before {
		if before[i].StartTime == "10:00" {
			assert.False(t, after[i].Available)
			assert.Equal(t, models.ReasonBooked, after[i].Reason)
		} else {
			assert.Equal(t, before[i].Available, after[i].Available, before[i].StartTime)
		}
	}
}
