package scheduling

import (
	"dentora/models"
	"dentora/utils"
)

// Supported visit durations in minutes.
const (
	DurationShort = 30
	DurationLong  = 60
)

// ValidDuration reports whether d is a supported slot granularity.
func ValidDuration(d int) bool {
	return d == DurationShort || d == DurationLong
}

// GenerateSlots turns a day's work windows into an ordered list of candidate
// slots of the given duration. Each window is stepped from its start; a
// trailing candidate whose end would exceed the window is discarded.
// Candidates across windows are concatenated in chronological order.
//
// Windows are expected pre-validated but are re-checked here: malformed data
// (unparseable times, end before start, overlap, out of order) is a
// ConfigurationError. An empty window list yields an empty candidate list;
// the caller distinguishes "day off" from "fully booked".
func GenerateSlots(durationMinutes int, windows []models.WorkWindow) ([]models.CandidateSlot, error) {
	if !ValidDuration(durationMinutes) {
		return nil, NewRejection(ReasonInvalidDuration, "duration must be %d or %d minutes, got %d", DurationShort, DurationLong, durationMinutes)
	}

	var candidates []models.CandidateSlot
	prevEnd := -1
	for _, w := range windows {
		start, err := utils.ParseClock(w.Start)
		if err != nil {
			return nil, &ConfigurationError{Detail: err.Error()}
		}
		end, err := utils.ParseClock(w.End)
		if err != nil {
			return nil, &ConfigurationError{Detail: err.Error()}
		}
		if end <= start {
			return nil, &ConfigurationError{Detail: "work window end must be after start: " + w.Start + "-" + w.End}
		}
		if start < prevEnd {
			return nil, &ConfigurationError{Detail: "work windows must be ordered and non-overlapping"}
		}
		prevEnd = end

		for t := start; t+durationMinutes <= end; t += durationMinutes {
			candidates = append(candidates, models.CandidateSlot{
				StartTime: utils.FormatClock(t),
				EndTime:   utils.FormatClock(t + durationMinutes),
			})
		}
	}
	return candidates, nil
}
