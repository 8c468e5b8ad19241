package models

import "time"

// RescheduleContext is the input to the reschedule flow: which appointment
// moves, where it moves to, and the instant the change was requested. The
// caller injects Now explicitly; the engine holds no ambient clock.
type RescheduleContext struct {
	AppointmentID string    `json:"appointmentId" binding:"required"`
	NewDate       string    `json:"newDate" binding:"required"`
	NewStartTime  string    `json:"newStartTime" binding:"required"`
	Now           time.Time `json:"-"`
}

// FeeDecision is the output of the reschedule fee policy.
type FeeDecision struct {
	FeeCharged bool   `json:"feeCharged"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
}
