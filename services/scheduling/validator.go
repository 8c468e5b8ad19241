package scheduling

import (
	"time"

	"dentora/models"
	"dentora/utils"
)

// Snapshot bundles the freshly fetched inputs the validator re-checks against.
// It must come from a read performed at commit time, never from the earlier
// availability display: the gap between the two is exactly the race this
// component exists to close.
type Snapshot struct {
	Day      models.WeeklyScheduleDay
	Blocked  []models.BlockedInterval
	Bookings []models.BookedAppointment
}

// BookingRequest identifies the slot a client wants to commit to.
type BookingRequest struct {
	ProviderID      string
	Date            string
	StartTime       string
	DurationMinutes int
}

// ValidateBooking re-executes slot generation and resolution against the
// snapshot and checks the requested slot. A client-supplied "available" flag
// is never trusted. Returns nil when the slot may be booked, a *Rejection for
// expected refusals, or a *ConfigurationError for corrupt schedule data.
func ValidateBooking(req BookingRequest, snap Snapshot, minLeadTimeMin int, now time.Time) error {
	if !ValidDuration(req.DurationMinutes) {
		return NewRejection(ReasonInvalidDuration, "duration must be %d or %d minutes, got %d", DurationShort, DurationLong, req.DurationMinutes)
	}
	if !snap.Day.IsWorking || len(snap.Day.Windows) == 0 {
		return NewRejection(ReasonProviderNotWorking, "provider does not work on %s", req.Date)
	}
	if block, covered, err := fullDayBlock(req.Date, snap.Blocked); err != nil {
		return err
	} else if covered {
		return NewRejection(ReasonProviderNotWorking, "provider is unavailable on %s: %s", req.Date, block.Reason)
	}

	candidates, err := GenerateSlots(req.DurationMinutes, snap.Day.Windows)
	if err != nil {
		return err
	}
	slots, err := Resolve(req.Date, candidates, snap.Blocked, snap.Bookings, minLeadTimeMin, now)
	if err != nil {
		return err
	}

	start, err := utils.NormalizeClock(req.StartTime)
	if err != nil {
		return NewRejection(ReasonSlotNoLongerAvailable, "invalid start time %q", req.StartTime)
	}
	for _, slot := range slots {
		if slot.StartTime != start {
			continue
		}
		if slot.Available {
			return nil
		}
		if slot.Reason == models.ReasonLeadTime {
			return NewRejection(ReasonLeadTimeViolation, "slot %s on %s starts less than %d minutes from now", start, req.Date, minLeadTimeMin)
		}
		return NewRejection(ReasonSlotNoLongerAvailable, "slot %s on %s is no longer available", start, req.Date)
	}
	// Requested start does not fall on the provider's slot grid for this duration.
	return NewRejection(ReasonSlotNoLongerAvailable, "no %d-minute slot starts at %s on %s", req.DurationMinutes, start, req.Date)
}

// fullDayBlock returns the first full-day block covering the date, if any.
func fullDayBlock(date string, blocks []models.BlockedInterval) (models.BlockedInterval, bool, error) {
	for _, b := range blocks {
		if b.Kind != models.BlockFullDay {
			continue
		}
		covered, err := utils.DateWithin(date, b.StartDate, b.EndDate)
		if err != nil {
			return models.BlockedInterval{}, false, &ConfigurationError{Detail: "blocked interval " + b.ID + ": " + err.Error()}
		}
		if covered {
			return b, true, nil
		}
	}
	return models.BlockedInterval{}, false, nil
}
