package models

import "time"

// AppointmentStatus is the booking lifecycle state. Transitions are
// pending → confirmed → in-progress → completed, with cancelled reachable
// from any non-terminal state.
type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "pending"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in-progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
)

// BookedAppointment represents a confirmed or pending appointment record.
// Only non-cancelled appointments occupy a slot.
type BookedAppointment struct {
	ID              string            `bson:"id" json:"id"`
	ProviderID      string            `bson:"provider_id" json:"providerId"`
	PatientID       string            `bson:"patient_id" json:"patientId"`
	Date            string            `bson:"date" json:"date"`             // "2006-01-02"
	StartTime       string            `bson:"start_time" json:"startTime"`  // "HH:MM"
	EndTime         string            `bson:"end_time" json:"endTime"`      // "HH:MM"
	DurationMinutes int               `bson:"duration_minutes" json:"durationMinutes"`
	Status          AppointmentStatus `bson:"status" json:"status"`
	CreatedAt       time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time         `bson:"updated_at" json:"updatedAt"`
}

// OccupiesSlot reports whether this appointment still holds its slot.
// Pending appointments occupy; cancellation frees the slot immediately.
func (a BookedAppointment) OccupiesSlot() bool {
	return a.Status != StatusCancelled
}

// BookingInput is the payload for confirming a booking against a session.
type BookingInput struct {
	SessionID string `json:"sessionId" binding:"required"`
	PatientID string `json:"patientId" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
}

// BookingSession is the short-lived envelope cached in Redis between the
// availability read and the booking confirmation. It intentionally carries no
// availability data: the confirm step always re-validates against fresh state.
type BookingSession struct {
	ProviderID      string    `json:"providerId"`
	Date            string    `json:"date"`
	DurationMinutes int       `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
}
