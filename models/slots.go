package models

// CandidateSlot is a raw slot emitted by the generator before any
// availability rules are applied. Times are "HH:MM" 24-hour clock.
type CandidateSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// UnavailableReason records which rule disqualified a slot, for UI messaging.
// The Available boolean on AvailableSlot is the single authoritative field;
// the reason is advisory only.
type UnavailableReason string

const (
	ReasonNone     UnavailableReason = ""
	ReasonBlocked  UnavailableReason = "blocked"
	ReasonBooked   UnavailableReason = "booked"
	ReasonLeadTime UnavailableReason = "lead_time"
)

// AvailableSlot is a derived, ephemeral view of one candidate slot. It is
// recomputed on every request and never persisted or cached.
type AvailableSlot struct {
	StartTime string            `json:"startTime"`
	EndTime   string            `json:"endTime"`
	Available bool              `json:"available"`
	Reason    UnavailableReason `json:"reason,omitempty"`
}

// SlotRequest is an availability query. It is never persisted.
type SlotRequest struct {
	ProviderID      string `json:"providerId" binding:"required"`
	Date            string `json:"date" binding:"required"`
	DurationMinutes int    `json:"durationMinutes" binding:"required"`
}
