package notification

import "context"

// Task types consumed by the async worker.
const (
	TypeBookingConfirmed   = "booking:confirmed"
	TypeBookingRescheduled = "booking:rescheduled"
	TypeBookingCancelled   = "booking:cancelled"
)

// BookingNotice is the payload of a booking lifecycle event. It carries
// everything the worker needs to compose messages without re-reading state.
type BookingNotice struct {
	AppointmentID string `json:"appointmentId"`
	ProviderID    string `json:"providerId"`
	PatientID     string `json:"patientId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	FeeCharged    bool   `json:"feeCharged,omitempty"`
	FeeAmount     int64  `json:"feeAmount,omitempty"`
	FeeCurrency   string `json:"feeCurrency,omitempty"`
}

// NotificationService emits booking lifecycle events for asynchronous
// delivery. Emission is decoupled from the booking flow's synchronous return:
// a failed enqueue is logged by the caller, never propagated to the client.
type NotificationService interface {
	NotifyBookingConfirmed(ctx context.Context, notice BookingNotice) error
	NotifyBookingRescheduled(ctx context.Context, notice BookingNotice) error
	NotifyBookingCancelled(ctx context.Context, notice BookingNotice) error
}
