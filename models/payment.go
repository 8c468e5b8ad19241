package models

import "time"

// LedgerDirection marks which side of a double entry a ledger row sits on.
type LedgerDirection string

const (
	LedgerDebit  LedgerDirection = "debit"
	LedgerCredit LedgerDirection = "credit"
)

// LedgerEntry is one half of a double-entry fee posting. A late-change fee
// always produces two offsetting entries: a debit against the patient and a
// credit to the provider, linked by ReferenceID.
type LedgerEntry struct {
	ID          string          `bson:"id" json:"id"`
	AccountID   string          `bson:"account_id" json:"accountId"`
	Direction   LedgerDirection `bson:"direction" json:"direction"`
	Amount      int64           `bson:"amount" json:"amount"`
	Currency    string          `bson:"currency" json:"currency"`
	ReferenceID string          `bson:"reference_id" json:"referenceId"`
	CreatedAt   time.Time       `bson:"created_at" json:"createdAt"`
}

// Receipt records the outcome of a fee charge.
type Receipt struct {
	ID          string    `bson:"id" json:"id"`
	PaymentID   string    `bson:"payment_id,omitempty" json:"paymentId,omitempty"` // gateway reference, e.g. stripe payment intent
	PayerID     string    `bson:"payer_id" json:"payerId"`
	PayeeID     string    `bson:"payee_id" json:"payeeId"`
	Amount      int64     `bson:"amount" json:"amount"`
	Currency    string    `bson:"currency" json:"currency"`
	ReferenceID string    `bson:"reference_id" json:"referenceId"`
	Status      string    `bson:"status" json:"status"` // "paid" or "pending"
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
