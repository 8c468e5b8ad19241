package billing

import (
	"context"
	"testing"

	"dentora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedger records postings in memory.
type fakeLedger struct {
	entries  []models.LedgerEntry
	receipts []*models.Receipt
}

func (f *fakeLedger) InsertEntries(entries []models.LedgerEntry) error {
	f.entries = append(f.entries, entries...)
	return nil
}

func (f *fakeLedger) InsertReceipt(receipt *models.Receipt) error {
	f.receipts = append(f.receipts, receipt)
	return nil
}

func (f *fakeLedger) ListEntriesByAccount(accountID string) ([]models.LedgerEntry, error) {
	var out []models.LedgerEntry
	for _, e := range f.entries {
		if e.AccountID == accountID {
			out = append(out, e)
		}
	}
	return out, nil
}

func validRequest() ChargeFeeRequest {
	return ChargeFeeRequest{
		PayerID:     "pat-1",
		PayeeID:     "prov-1",
		Amount:      50000,
		Currency:    "VND",
		ReferenceID: "appt-1",
		Method:      "cash",
	}
}

func TestChargeFeeCashPostsDoubleEntry(t *testing.T) {
	ledger := &fakeLedger{}
	svc := NewDefaultBillingService(ledger)

	receipt, err := svc.ChargeFee(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "pending", receipt.Status)
	assert.Equal(t, int64(50000), receipt.Amount)
	assert.Equal(t, "appt-1", receipt.ReferenceID)

	require.Len(t, ledger.entries, 2)
	debit, credit := ledger.entries[0], ledger.entries[1]
	assert.Equal(t, models.LedgerDebit, debit.Direction)
	assert.Equal(t, "pat-1", debit.AccountID)
	assert.Equal(t, models.LedgerCredit, credit.Direction)
	assert.Equal(t, "prov-1", credit.AccountID)

	// The two sides are linked and balance to zero.
	assert.Equal(t, debit.ReferenceID, credit.ReferenceID)
	assert.Equal(t, debit.Amount, credit.Amount)

	require.Len(t, ledger.receipts, 1)
	assert.Equal(t, receipt.ID, ledger.receipts[0].ID)
}

func TestChargeFeeRejectsInvalidRequests(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ChargeFeeRequest)
	}{
		{"missing payer", func(r *ChargeFeeRequest) { r.PayerID = "" }},
		{"missing payee", func(r *ChargeFeeRequest) { r.PayeeID = "" }},
		{"zero amount", func(r *ChargeFeeRequest) { r.Amount = 0 }},
		{"negative amount", func(r *ChargeFeeRequest) { r.Amount = -100 }},
		{"missing currency", func(r *ChargeFeeRequest) { r.Currency = "" }},
		{"missing reference", func(r *ChargeFeeRequest) { r.ReferenceID = "" }},
		{"unknown method", func(r *ChargeFeeRequest) { r.Method = "gold" }},
	}

	ledger := &fakeLedger{}
	svc := NewDefaultBillingService(ledger)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, err := svc.ChargeFee(context.Background(), req)
			assert.Error(t, err)
		})
	}
	assert.Empty(t, ledger.entries)
}
