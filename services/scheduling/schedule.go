package scheduling

import (
	"fmt"

	"dentora/models"
	"dentora/utils"
)

// ValidateWeeklySchedule checks a full weekly schedule before it is written:
// one entry per weekday 0–6, and within each working day ordered,
// non-overlapping windows with parseable times. Violations are
// ConfigurationErrors since they would corrupt every later availability read.
func ValidateWeeklySchedule(days []models.WeeklyScheduleDay) error {
	if len(days) != 7 {
		return &ConfigurationError{Detail: fmt.Sprintf("weekly schedule must have 7 days, got %d", len(days))}
	}
	seen := make(map[int]bool, 7)
	for _, d := range days {
		if d.DayIndex < 0 || d.DayIndex > 6 {
			return &ConfigurationError{Detail: fmt.Sprintf("day index %d out of range 0-6", d.DayIndex)}
		}
		if seen[d.DayIndex] {
			return &ConfigurationError{Detail: fmt.Sprintf("duplicate day index %d", d.DayIndex)}
		}
		seen[d.DayIndex] = true

		if !d.IsWorking {
			continue
		}
		prevEnd := -1
		for _, w := range d.Windows {
			start, err := utils.ParseClock(w.Start)
			if err != nil {
				return &ConfigurationError{Detail: err.Error()}
			}
			end, err := utils.ParseClock(w.End)
			if err != nil {
				return &ConfigurationError{Detail: err.Error()}
			}
			if end <= start {
				return &ConfigurationError{Detail: fmt.Sprintf("day %d: window end %s must be after start %s", d.DayIndex, w.End, w.Start)}
			}
			if start < prevEnd {
				return &ConfigurationError{Detail: fmt.Sprintf("day %d: windows must be ordered and non-overlapping", d.DayIndex)}
			}
			prevEnd = end
		}
	}
	return nil
}

// ValidateBlockedInterval checks a blocked interval before it is written:
// endDate on or after startDate, and for time-range blocks both bounds present
// with start before end.
func ValidateBlockedInterval(b models.BlockedInterval) error {
	within, err := utils.DateWithin(b.EndDate, b.StartDate, b.EndDate)
	if err != nil {
		return &ConfigurationError{Detail: err.Error()}
	}
	if !within {
		return &ConfigurationError{Detail: fmt.Sprintf("end date %s is before start date %s", b.EndDate, b.StartDate)}
	}

	switch b.Kind {
	case models.BlockFullDay:
		return nil
	case models.BlockTimeRange:
		if b.StartTime == "" || b.EndTime == "" {
			return &ConfigurationError{Detail: "time-range block requires start and end times"}
		}
		start, err := utils.ParseClock(b.StartTime)
		if err != nil {
			return &ConfigurationError{Detail: err.Error()}
		}
		end, err := utils.ParseClock(b.EndTime)
		if err != nil {
			return &ConfigurationError{Detail: err.Error()}
		}
		if end <= start {
			return &ConfigurationError{Detail: fmt.Sprintf("block end %s must be after start %s", b.EndTime, b.StartTime)}
		}
		return nil
	default:
		return &ConfigurationError{Detail: fmt.Sprintf("unknown block kind %q", b.Kind)}
	}
}
