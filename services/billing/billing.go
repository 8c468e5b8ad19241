package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	ledgerRepo "dentora/database/repository/ledger"
	"dentora/models"
	"dentora/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// DefaultBillingService is the production implementation backed by the ledger
// repository and Stripe for card capture.
type DefaultBillingService struct {
	Ledger ledgerRepo.LedgerRepository
}

// NewDefaultBillingService constructs the billing service.
func NewDefaultBillingService(ledger ledgerRepo.LedgerRepository) *DefaultBillingService {
	return &DefaultBillingService{Ledger: ledger}
}

// ChargeFee captures the fee and posts the double entry. Card fees go through
// Stripe immediately; cash fees are recorded pending for collection at the
// front desk.
func (s *DefaultBillingService) ChargeFee(ctx context.Context, req ChargeFeeRequest) (*models.Receipt, error) {
	logger := utils.GetLogger()

	if err := validateChargeRequest(req); err != nil {
		return nil, fmt.Errorf("invalid fee charge request: %w", err)
	}

	receipt := &models.Receipt{
		ID:          uuid.New().String(),
		PayerID:     req.PayerID,
		PayeeID:     req.PayeeID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		ReferenceID: req.ReferenceID,
		Status:      "pending",
		CreatedAt:   time.Now(),
	}

	if req.Method == "card" {
		params := &stripe.PaymentIntentParams{
			Amount:   stripe.Int64(req.Amount),
			Currency: stripe.String(strings.ToLower(req.Currency)),
			AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
				Enabled: stripe.Bool(true),
			},
		}
		params.AddMetadata("referenceId", req.ReferenceID)
		params.AddMetadata("payerId", req.PayerID)
		params.AddMetadata("payeeId", req.PayeeID)

		pi, err := paymentintent.New(params)
		if err != nil {
			logger.Error("stripe payment intent failed",
				zap.String("referenceId", req.ReferenceID), zap.Error(err))
			return nil, fmt.Errorf("failed to create payment intent: %w", err)
		}
		receipt.PaymentID = pi.ID
		receipt.Status = "paid"
	}

	now := time.Now()
	entries := []models.LedgerEntry{
		{
			ID:          uuid.New().String(),
			AccountID:   req.PayerID,
			Direction:   models.LedgerDebit,
			Amount:      req.Amount,
			Currency:    req.Currency,
			ReferenceID: req.ReferenceID,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New().String(),
			AccountID:   req.PayeeID,
			Direction:   models.LedgerCredit,
			Amount:      req.Amount,
			Currency:    req.Currency,
			ReferenceID: req.ReferenceID,
			CreatedAt:   now,
		},
	}
	if err := s.Ledger.InsertEntries(entries); err != nil {
		return nil, fmt.Errorf("failed to post ledger entries: %w", err)
	}
	if err := s.Ledger.InsertReceipt(receipt); err != nil {
		return nil, fmt.Errorf("failed to record receipt: %w", err)
	}

	logger.Info("fee charged",
		zap.String("receipt", receipt.ID),
		zap.String("referenceId", req.ReferenceID),
		zap.Int64("amount", req.Amount),
		zap.String("currency", req.Currency),
		zap.String("status", receipt.Status))
	return receipt, nil
}

func validateChargeRequest(req ChargeFeeRequest) error {
	switch {
	case req.PayerID == "":
		return fmt.Errorf("payer ID is required")
	case req.PayeeID == "":
		return fmt.Errorf("payee ID is required")
	case req.Amount <= 0:
		return fmt.Errorf("amount must be positive, got %d", req.Amount)
	case req.Currency == "":
		return fmt.Errorf("currency is required")
	case req.ReferenceID == "":
		return fmt.Errorf("reference ID is required")
	case req.Method != "card" && req.Method != "cash":
		return fmt.Errorf("unsupported payment method: %s", req.Method)
	}
	return nil
}
