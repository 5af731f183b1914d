// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"insurance/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateQuoteInput identifies who is being quoted and for which policy type.
type CreateQuoteInput struct {
	CustomerID uuid.UUID
	PolicyType entity.PolicyType
}

// TransitionQuoteInput carries the quote to advance and the caller's confirmation token.
type TransitionQuoteInput struct {
	QuoteID      uuid.UUID
	Confirmation string
}

// --- Output DTOs ---

// QuoteView is the representation returned after creating or advancing a quote.
type QuoteView struct {
	QuoteID    uuid.UUID          `json:"quote_id"`
	CustomerID uuid.UUID          `json:"customer_id"`
	PolicyID   uuid.UUID          `json:"policy_id"`
	Premium    string             `json:"premium"`
	Cover      string             `json:"cover"`
	Status     entity.QuoteStatus `json:"status"`
}

// NewQuoteView renders money amounts with exactly two decimals.
func NewQuoteView(quote *entity.Quote) *QuoteView {
	return &QuoteView{
		QuoteID:    quote.ID,
		CustomerID: quote.CustomerID,
		PolicyID:   quote.PolicyID,
		Premium:    quote.Premium.StringFixed(2),
		Cover:      quote.Cover.StringFixed(2),
		Status:     quote.Status,
	}
}

// QuoteSummary is one row of a customer's policy list.
type QuoteSummary struct {
	QuoteID    uuid.UUID          `json:"quote_id"`
	PolicyType entity.PolicyType  `json:"policy_type"`
	Status     entity.QuoteStatus `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	BuyDate    *time.Time         `json:"buy_date"`
	Expiry     *time.Time         `json:"expiry"`
}

// CustomerQuotesOutput lists every quote a customer holds.
type CustomerQuotesOutput struct {
	Customer *entity.Customer
	Quotes   []QuoteSummary
}

// QuoteDetailsOutput is a quote with the customer and catalog policy it references.
type QuoteDetailsOutput struct {
	Quote    *entity.Quote
	Customer *entity.Customer
	Policy   *entity.Policy
}

// QuoteUsecase defines the quote lifecycle operations exposed to the delivery layer.
type QuoteUsecase interface {
	CreateQuote(ctx context.Context, input *CreateQuoteInput) (*QuoteView, error)
	AcceptQuote(ctx context.Context, input *TransitionQuoteInput) (*QuoteView, error)
	PayQuote(ctx context.Context, input *TransitionQuoteInput) (*QuoteView, error)
	ListQuotesForCustomer(ctx context.Context, customerID uuid.UUID) (*CustomerQuotesOutput, error)
	GetQuote(ctx context.Context, quoteID uuid.UUID) (*QuoteDetailsOutput, error)
	GetQuoteHistory(ctx context.Context, quoteID uuid.UUID) ([]*entity.PolicyHistory, error)
}
