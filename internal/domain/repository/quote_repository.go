package repository

import (
	"context"
	"errors"

	"insurance/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrQuoteNotFound is returned when no quote matches the lookup.
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrQuoteStatusConflict is returned by UpdateStatus when the stored status
	// no longer matches the expected one.
	ErrQuoteStatusConflict = errors.New("quote status changed concurrently")
)

// QuoteRepository defines the persistence operations for quotes.
type QuoteRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error)

	// ListByCustomer returns the customer's quotes, oldest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Quote, error)

	Create(ctx context.Context, quote *entity.Quote) error

	// UpdateStatus writes quote's status, buy date, expiry and update time only if
	// the stored status still equals expected (compare-and-swap).
	UpdateStatus(ctx context.Context, quote *entity.Quote, expected entity.QuoteStatus) error
}
