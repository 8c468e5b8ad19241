package scheduling

import (
	"context"
	"time"

	"dentora/models"
)

// AvailableSlotsResult is the availability view returned to clients. A
// non-empty ScheduleError distinguishes "no slots because the provider is
// off" from "no slots because everything is taken".
type AvailableSlotsResult struct {
	Slots         []models.AvailableSlot `json:"slots"`
	ScheduleError string                 `json:"scheduleError,omitempty"`
}

// BookSlotRequest commits a slot for a patient.
type BookSlotRequest struct {
	ProviderID      string
	PatientID       string
	Date            string
	StartTime       string
	DurationMinutes int
	Now             time.Time
}

// RescheduleResult reports a completed reschedule: the moved appointment, the
// fee decision, and the receipt when a fee was collected.
type RescheduleResult struct {
	Appointment *models.BookedAppointment `json:"appointment"`
	Fee         models.FeeDecision        `json:"fee"`
	Receipt     *models.Receipt           `json:"receipt,omitempty"`
}

// SchedulingService is the availability and scheduling engine exposed to
// handlers. Every time-sensitive operation takes `now` explicitly; the engine
// holds no ambient clock and caches nothing between calls.
type SchedulingService interface {
	ListAvailableSlots(providerID, date string, durationMinutes int, now time.Time) (*AvailableSlotsResult, error)
	ValidateBooking(providerID, date, startTime string, durationMinutes int, now time.Time) error
	Book(ctx context.Context, req BookSlotRequest) (*models.BookedAppointment, error)
	Reschedule(ctx context.Context, rc models.RescheduleContext) (*RescheduleResult, error)
	CancelBooking(ctx context.Context, appointmentID string) error
	EvaluateReschedule(oldStart, now time.Time) models.FeeDecision
}
