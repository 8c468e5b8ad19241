package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "dentora/database/repository/booking"
	scheduleRepo "dentora/database/repository/schedule"
	"dentora/models"
	"dentora/services/billing"
	"dentora/services/notification"
	"dentora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSchedulingService is the production scheduling engine. It fetches a
// fresh snapshot from its repositories on every call and runs the pure
// generator/resolver/validator pipeline over it.
type DefaultSchedulingService struct {
	ScheduleRepo scheduleRepo.ScheduleRepository
	BookingRepo  bookingRepo.BookingRepository
	Billing      billing.BillingService
	Notifier     notification.NotificationService

	MinLeadTimeMin int
	FeePolicy      FeePolicy
}

// snapshotFor reads the provider's schedule state for one date. Called once
// per request so every computation sees a consistent, fresh view.
func (s *DefaultSchedulingService) snapshotFor(providerID, date string) (Snapshot, error) {
	schedule, err := s.ScheduleRepo.GetWeeklySchedule(providerID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to fetch weekly schedule: %w", err)
	}
	dayIndex, err := utils.DayIndex(date)
	if err != nil {
		return Snapshot{}, &ConfigurationError{Detail: err.Error()}
	}
	day, ok := schedule.DayFor(dayIndex)
	if !ok {
		return Snapshot{}, &ConfigurationError{Detail: fmt.Sprintf("weekly schedule for provider %s has no entry for weekday %d", providerID, dayIndex)}
	}
	blocked, err := s.ScheduleRepo.GetBlockedIntervals(providerID, date, date)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to fetch blocked intervals: %w", err)
	}
	bookings, err := s.BookingRepo.GetBookedAppointments(providerID, date)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to fetch booked appointments: %w", err)
	}
	return Snapshot{Day: day, Blocked: blocked, Bookings: bookings}, nil
}

// ListAvailableSlots computes the bookable slots for one provider and date.
func (s *DefaultSchedulingService) ListAvailableSlots(providerID, date string, durationMinutes int, now time.Time) (*AvailableSlotsResult, error) {
	if !ValidDuration(durationMinutes) {
		return nil, NewRejection(ReasonInvalidDuration, "duration must be %d or %d minutes, got %d", DurationShort, DurationLong, durationMinutes)
	}

	snap, err := s.snapshotFor(providerID, date)
	if err != nil {
		return nil, err
	}

	if !snap.Day.IsWorking || len(snap.Day.Windows) == 0 {
		return &AvailableSlotsResult{ScheduleError: "Provider does not work on this day"}, nil
	}
	if block, covered, err := fullDayBlock(date, snap.Blocked); err != nil {
		return nil, err
	} else if covered {
		msg := "Provider is unavailable on this day"
		if block.Reason != "" {
			msg += ": " + block.Reason
		}
		return &AvailableSlotsResult{ScheduleError: msg}, nil
	}

	candidates, err := GenerateSlots(durationMinutes, snap.Day.Windows)
	if err != nil {
		return nil, err
	}
	slots, err := Resolve(date, candidates, snap.Blocked, snap.Bookings, s.MinLeadTimeMin, now)
	if err != nil {
		return nil, err
	}
	return &AvailableSlotsResult{Slots: slots}, nil
}

// ValidateBooking re-checks a chosen slot against a freshly fetched snapshot.
func (s *DefaultSchedulingService) ValidateBooking(providerID, date, startTime string, durationMinutes int, now time.Time) error {
	snap, err := s.snapshotFor(providerID, date)
	if err != nil {
		return err
	}
	req := BookingRequest{
		ProviderID:      providerID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: durationMinutes,
	}
	return ValidateBooking(req, snap, s.MinLeadTimeMin, now)
}

// Book validates the slot at commit time and persists the appointment. A
// duplicate-key from the unique slot index means another writer won the race
// after our validation passed, reported as a stale-availability rejection.
func (s *DefaultSchedulingService) Book(ctx context.Context, req BookSlotRequest) (*models.BookedAppointment, error) {
	logger := utils.GetLogger()

	if err := s.ValidateBooking(req.ProviderID, req.Date, req.StartTime, req.DurationMinutes, req.Now); err != nil {
		return nil, err
	}

	start, err := utils.ParseClock(req.StartTime)
	if err != nil {
		return nil, NewRejection(ReasonSlotNoLongerAvailable, "invalid start time %q", req.StartTime)
	}
	appointment := &models.BookedAppointment{
		ID:              uuid.New().String(),
		ProviderID:      req.ProviderID,
		PatientID:       req.PatientID,
		Date:            req.Date,
		StartTime:       utils.FormatClock(start),
		EndTime:         utils.FormatClock(start + req.DurationMinutes),
		DurationMinutes: req.DurationMinutes,
		Status:          models.StatusPending,
	}
	if err := s.BookingRepo.CreateBooking(appointment); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			return nil, NewRejection(ReasonStaleAvailability, "slot %s on %s was just taken", appointment.StartTime, req.Date)
		}
		return nil, err
	}

	if err := s.Notifier.NotifyBookingConfirmed(ctx, notification.BookingNotice{
		AppointmentID: appointment.ID,
		ProviderID:    appointment.ProviderID,
		PatientID:     appointment.PatientID,
		Date:          appointment.Date,
		StartTime:     appointment.StartTime,
		EndTime:       appointment.EndTime,
	}); err != nil {
		// Delivery is best-effort; the booking itself already succeeded.
		logger.Error("failed to enqueue booking confirmation", zap.String("appointmentId", appointment.ID), zap.Error(err))
	}
	return appointment, nil
}

// Reschedule moves an appointment to a new slot, applying the late-change fee
// when the request lands inside the fee window before the original start.
func (s *DefaultSchedulingService) Reschedule(ctx context.Context, rc models.RescheduleContext) (*RescheduleResult, error) {
	logger := utils.GetLogger()

	appointment, err := s.BookingRepo.GetBookingByID(rc.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.Status == models.StatusCancelled {
		return nil, NewRejection(ReasonSlotNoLongerAvailable, "appointment %s is cancelled", rc.AppointmentID)
	}

	oldStartMin, err := utils.ParseClock(appointment.StartTime)
	if err != nil {
		return nil, &ConfigurationError{Detail: "appointment " + appointment.ID + ": " + err.Error()}
	}
	oldStart, err := utils.AtClock(appointment.Date, oldStartMin, rc.Now.Location())
	if err != nil {
		return nil, &ConfigurationError{Detail: "appointment " + appointment.ID + ": " + err.Error()}
	}

	// Validate the target slot against a fresh snapshot, ignoring the
	// appointment being moved so it does not collide with itself.
	snap, err := s.snapshotFor(appointment.ProviderID, rc.NewDate)
	if err != nil {
		return nil, err
	}
	remaining := snap.Bookings[:0:0]
	for _, b := range snap.Bookings {
		if b.ID != appointment.ID {
			remaining = append(remaining, b)
		}
	}
	snap.Bookings = remaining

	req := BookingRequest{
		ProviderID:      appointment.ProviderID,
		Date:            rc.NewDate,
		StartTime:       rc.NewStartTime,
		DurationMinutes: appointment.DurationMinutes,
	}
	if err := ValidateBooking(req, snap, s.MinLeadTimeMin, rc.Now); err != nil {
		return nil, err
	}

	newStartMin, err := utils.ParseClock(rc.NewStartTime)
	if err != nil {
		return nil, NewRejection(ReasonSlotNoLongerAvailable, "invalid start time %q", rc.NewStartTime)
	}
	newStart := utils.FormatClock(newStartMin)
	newEnd := utils.FormatClock(newStartMin + appointment.DurationMinutes)

	if err := s.BookingRepo.UpdateBookingTime(appointment.ID, rc.NewDate, newStart, newEnd); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			return nil, NewRejection(ReasonStaleAvailability, "slot %s on %s was just taken", newStart, rc.NewDate)
		}
		return nil, err
	}
	appointment.Date = rc.NewDate
	appointment.StartTime = newStart
	appointment.EndTime = newEnd

	fee := s.FeePolicy.EvaluateReschedule(oldStart, rc.Now)
	result := &RescheduleResult{Appointment: appointment, Fee: fee}

	// Charge after the move: the slot is the scarce resource, the fee can be
	// retried. A billing failure leaves the reschedule in place.
	if fee.FeeCharged {
		receipt, err := s.Billing.ChargeFee(ctx, billing.ChargeFeeRequest{
			PayerID:     appointment.PatientID,
			PayeeID:     appointment.ProviderID,
			Amount:      fee.Amount,
			Currency:    fee.Currency,
			ReferenceID: appointment.ID,
			Method:      "card",
		})
		if err != nil {
			logger.Error("late-change fee collection failed",
				zap.String("appointmentId", appointment.ID), zap.Error(err))
			return result, fmt.Errorf("appointment moved but fee collection failed: %w", err)
		}
		result.Receipt = receipt
	}

	if err := s.Notifier.NotifyBookingRescheduled(ctx, notification.BookingNotice{
		AppointmentID: appointment.ID,
		ProviderID:    appointment.ProviderID,
		PatientID:     appointment.PatientID,
		Date:          appointment.Date,
		StartTime:     appointment.StartTime,
		EndTime:       appointment.EndTime,
		FeeCharged:    fee.FeeCharged,
		FeeAmount:     fee.Amount,
		FeeCurrency:   fee.Currency,
	}); err != nil {
		logger.Error("failed to enqueue reschedule notice", zap.String("appointmentId", appointment.ID), zap.Error(err))
	}
	return result, nil
}

// CancelBooking marks the appointment cancelled, freeing its slot immediately.
func (s *DefaultSchedulingService) CancelBooking(ctx context.Context, appointmentID string) error {
	appointment, err := s.BookingRepo.GetBookingByID(appointmentID)
	if err != nil {
		return err
	}
	if appointment.Status == models.StatusCancelled {
		return nil
	}
	if err := s.BookingRepo.CancelBooking(appointmentID); err != nil {
		return err
	}
	if err := s.Notifier.NotifyBookingCancelled(ctx, notification.BookingNotice{
		AppointmentID: appointment.ID,
		ProviderID:    appointment.ProviderID,
		PatientID:     appointment.PatientID,
		Date:          appointment.Date,
		StartTime:     appointment.StartTime,
		EndTime:       appointment.EndTime,
	}); err != nil {
		utils.GetLogger().Error("failed to enqueue cancellation notice", zap.String("appointmentId", appointmentID), zap.Error(err))
	}
	return nil
}

// EvaluateReschedule exposes the fee policy as a pure decision.
func (s *DefaultSchedulingService) EvaluateReschedule(oldStart, now time.Time) models.FeeDecision {
	return s.FeePolicy.EvaluateReschedule(oldStart, now)
}
