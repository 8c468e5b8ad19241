package billing

import (
	"context"

	"dentora/models"
)

// ChargeFeeRequest describes one fee to collect from a payer in favor of a
// payee, linked to the booking change that triggered it.
type ChargeFeeRequest struct {
	PayerID     string
	PayeeID     string
	Amount      int64
	Currency    string
	ReferenceID string
	Method      string // "card" or "cash"
}

// BillingService collects fees decided by the scheduling engine. Each charge
// posts two offsetting ledger entries (debit payer, credit payee) and returns
// a receipt.
type BillingService interface {
	ChargeFee(ctx context.Context, req ChargeFeeRequest) (*models.Receipt, error)
}
