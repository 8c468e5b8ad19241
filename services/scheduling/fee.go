package scheduling

import (
	"time"

	"dentora/config"
	"dentora/models"
)

// FeePolicy decides whether a late-change fee applies to a reschedule. The
// policy is a pure decision function: posting the offsetting ledger entries is
// the billing collaborator's job.
type FeePolicy struct {
	Window   time.Duration
	Amount   int64
	Currency string
}

// NewFeePolicyFromConfig builds the policy from application configuration.
func NewFeePolicyFromConfig() FeePolicy {
	return FeePolicy{
		Window:   time.Duration(config.AppConfig.RescheduleFeeWindow) * time.Minute,
		Amount:   config.AppConfig.RescheduleFeeAmount,
		Currency: config.AppConfig.RescheduleFeeCcy,
	}
}

// EvaluateReschedule charges the fee when the change request lands inside the
// window before the original slot: 0 < oldStart − now < Window. A gap of
// exactly Window charges no fee, and a request after the slot has passed
// (gap ≤ 0) charges no fee either.
func (p FeePolicy) EvaluateReschedule(oldStart, now time.Time) models.FeeDecision {
	gap := oldStart.Sub(now)
	if gap > 0 && gap < p.Window {
		return models.FeeDecision{FeeCharged: true, Amount: p.Amount, Currency: p.Currency}
	}
	return models.FeeDecision{FeeCharged: false, Amount: 0, Currency: p.Currency}
}
