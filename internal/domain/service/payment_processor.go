package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentRequest is the charge made when a quote is paid.
type PaymentRequest struct {
	QuoteID    uuid.UUID
	CustomerID uuid.UUID
	Amount     decimal.Decimal
}

// PaymentReceipt confirms a successful charge.
type PaymentReceipt struct {
	Reference   string
	Amount      decimal.Decimal
	ProcessedAt time.Time
}

// PaymentProcessor charges the premium of a quote going live.
type PaymentProcessor interface {
	Charge(ctx context.Context, req PaymentRequest) (*PaymentReceipt, error)
}
