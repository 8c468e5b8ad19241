package scheduling

import (
	"errors"
	"fmt"
)

// RejectionReason classifies an expected, user-facing refusal. These are typed
// results rendered as booking-form feedback, never surfaced as server faults.
type RejectionReason string

const (
	ReasonInvalidDuration       RejectionReason = "INVALID_DURATION"
	ReasonProviderNotWorking    RejectionReason = "PROVIDER_NOT_WORKING"
	ReasonLeadTimeViolation     RejectionReason = "LEAD_TIME_VIOLATION"
	ReasonSlotNoLongerAvailable RejectionReason = "SLOT_NO_LONGER_AVAILABLE"
	// ReasonStaleAvailability means the slot passed validation but was taken
	// between the re-check and the write. Reported distinctly so the UI can
	// say "this slot was just taken" rather than "invalid selection".
	ReasonStaleAvailability RejectionReason = "STALE_AVAILABILITY"
)

// Rejection is a refusal with a reason code the client can branch on.
type Rejection struct {
	Reason  RejectionReason
	Message string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Reason, r.Message)
}

// NewRejection builds a Rejection with a formatted message.
func NewRejection(reason RejectionReason, format string, args ...any) *Rejection {
	return &Rejection{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// AsRejection unwraps err into a Rejection if it is one.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// ConfigurationError signals malformed schedule data (overlapping windows,
// missing time-range bounds). It indicates upstream data corruption: fatal for
// the request, surfaced immediately and never retried.
type ConfigurationError struct {
	Detail string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("schedule configuration error: %s", e.Detail)
}

// IsConfigurationError reports whether err is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
