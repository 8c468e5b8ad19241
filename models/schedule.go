package models

import "time"

// WorkWindow is a contiguous bookable time-of-day range, "HH:MM" 24-hour clock.
type WorkWindow struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// WeeklyScheduleDay describes one weekday of a provider's recurring schedule.
// Windows must be ordered and non-overlapping; that is validated when the
// schedule is written and re-checked when it is read.
type WeeklyScheduleDay struct {
	DayIndex  int          `bson:"day_index" json:"dayIndex"` // 0=Sunday .. 6=Saturday
	IsWorking bool         `bson:"is_working" json:"isWorking"`
	Windows   []WorkWindow `bson:"windows,omitempty" json:"windows,omitempty"`
}

// WeeklySchedule is a provider's full recurring week, one entry per weekday.
type WeeklySchedule struct {
	ProviderID string              `bson:"provider_id" json:"providerId"`
	Days       []WeeklyScheduleDay `bson:"days" json:"days"`
	UpdatedAt  time.Time           `bson:"updated_at" json:"updatedAt"`
}

// DayFor returns the schedule entry for the given weekday index.
func (ws *WeeklySchedule) DayFor(dayIndex int) (WeeklyScheduleDay, bool) {
	for _, d := range ws.Days {
		if d.DayIndex == dayIndex {
			return d, true
		}
	}
	return WeeklyScheduleDay{}, false
}

// SetupScheduleRequest defines the payload for replacing a provider's weekly schedule.
type SetupScheduleRequest struct {
	Days []WeeklyScheduleDay `json:"days" binding:"required,len=7"`
}
