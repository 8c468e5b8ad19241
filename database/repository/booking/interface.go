package bookingRepo

import (
	"errors"

	"dentora/models"
)

// ErrDuplicateSlot is returned when an insert or move collides with the unique
// slot index — the final race-closing guarantee behind commit-time validation.
var ErrDuplicateSlot = errors.New("slot already taken for this provider, date and start time")

// BookingRepository supplies existing booked appointments and persists new
// ones. The availability engine only reads from it; writes happen in the
// booking and reschedule flows.
type BookingRepository interface {
	// GetBookedAppointments returns the provider's non-cancelled appointments
	// for a date. Cancelled records are excluded so they free slots immediately.
	GetBookedAppointments(providerID, date string) ([]models.BookedAppointment, error)
	GetBookingByID(appointmentID string) (*models.BookedAppointment, error)

	// CreateBooking inserts a new appointment record. Returns ErrDuplicateSlot
	// when another non-cancelled appointment already holds the same slot.
	CreateBooking(appointment *models.BookedAppointment) error

	// UpdateBookingTime moves an appointment to a new date and start time.
	// Returns ErrDuplicateSlot on collision with an existing appointment.
	UpdateBookingTime(appointmentID, newDate, newStartTime, newEndTime string) error

	CancelBooking(appointmentID string) error
}
