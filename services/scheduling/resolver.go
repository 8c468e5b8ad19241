package scheduling

import (
	"time"

	"dentora/models"
	"dentora/utils"
)

// Resolve intersects candidate slots for one date against blocked intervals,
// booked appointments and the minimum-lead-time rule, producing the final
// availability list in candidate order.
//
// A candidate is unavailable when any rule disqualifies it; the first matching
// rule (blocked, then booked, then lead time) is recorded as the reason for UI
// messaging. The Available boolean is the single authoritative field.
//
// Pure function over the snapshot passed in: no I/O, no shared state, safe
// from any number of goroutines.
func Resolve(
	date string,
	candidates []models.CandidateSlot,
	blocks []models.BlockedInterval,
	bookings []models.BookedAppointment,
	minLeadTimeMin int,
	now time.Time,
) ([]models.AvailableSlot, error) {
	// Normalize booked start times once so "8:00" and "08:00" collide.
	occupied := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		if !b.OccupiesSlot() || b.Date != date {
			continue
		}
		start, err := utils.NormalizeClock(b.StartTime)
		if err != nil {
			return nil, &ConfigurationError{Detail: "booked appointment " + b.ID + ": " + err.Error()}
		}
		occupied[start] = true
	}

	today := utils.FormatDate(now)

	slots := make([]models.AvailableSlot, 0, len(candidates))
	for _, c := range candidates {
		slot := models.AvailableSlot{
			StartTime: c.StartTime,
			EndTime:   c.EndTime,
			Available: true,
		}

		blocked, err := candidateBlocked(date, c, blocks)
		if err != nil {
			return nil, err
		}
		switch {
		case blocked:
			slot.Available = false
			slot.Reason = models.ReasonBlocked
		case occupied[c.StartTime]:
			slot.Available = false
			slot.Reason = models.ReasonBooked
		default:
			ok, err := leadTimeSatisfied(date, today, c.StartTime, minLeadTimeMin, now)
			if err != nil {
				return nil, err
			}
			if !ok {
				slot.Available = false
				slot.Reason = models.ReasonLeadTime
			}
		}

		slots = append(slots, slot)
	}
	return slots, nil
}

// candidateBlocked reports whether any blocked interval disqualifies the
// candidate on the given date. Full-day blocks cover the whole date; time-range
// blocks use half-open [start, end) overlap against the candidate.
func candidateBlocked(date string, c models.CandidateSlot, blocks []models.BlockedInterval) (bool, error) {
	candStart, err := utils.ParseClock(c.StartTime)
	if err != nil {
		return false, &ConfigurationError{Detail: err.Error()}
	}
	candEnd, err := utils.ParseClock(c.EndTime)
	if err != nil {
		return false, &ConfigurationError{Detail: err.Error()}
	}

	for _, b := range blocks {
		covered, err := utils.DateWithin(date, b.StartDate, b.EndDate)
		if err != nil {
			return false, &ConfigurationError{Detail: "blocked interval " + b.ID + ": " + err.Error()}
		}
		if !covered {
			continue
		}
		if b.Kind == models.BlockFullDay {
			return true, nil
		}
		if b.StartTime == "" || b.EndTime == "" {
			return false, &ConfigurationError{Detail: "time-range block " + b.ID + " is missing start or end time"}
		}
		blockStart, err := utils.ParseClock(b.StartTime)
		if err != nil {
			return false, &ConfigurationError{Detail: "blocked interval " + b.ID + ": " + err.Error()}
		}
		blockEnd, err := utils.ParseClock(b.EndTime)
		if err != nil {
			return false, &ConfigurationError{Detail: "blocked interval " + b.ID + ": " + err.Error()}
		}
		if blockEnd <= blockStart {
			return false, &ConfigurationError{Detail: "time-range block " + b.ID + " end must be after start"}
		}
		if candStart < blockEnd && blockStart < candEnd {
			return true, nil
		}
	}
	return false, nil
}

// leadTimeSatisfied applies the minimum-lead-time rule. Slots on future dates
// are never restricted; slots on past dates are always unavailable; slots
// today must start at least minLeadTimeMin after now, which also rules out
// starts already in the past.
func leadTimeSatisfied(date, today, startTime string, minLeadTimeMin int, now time.Time) (bool, error) {
	if date > today {
		return true, nil
	}
	if date < today {
		return false, nil
	}
	startMin, err := utils.ParseClock(startTime)
	if err != nil {
		return false, &ConfigurationError{Detail: err.Error()}
	}
	slotStart, err := utils.AtClock(date, startMin, now.Location())
	if err != nil {
		return false, &ConfigurationError{Detail: err.Error()}
	}
	return slotStart.Sub(now) >= time.Duration(minLeadTimeMin)*time.Minute, nil
}
