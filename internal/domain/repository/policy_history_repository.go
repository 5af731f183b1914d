package repository

import (
	"context"

	"insurance/internal/domain/entity"

	"github.com/google/uuid"
)

// PolicyHistoryRepository is the append-only store of quote status history.
type PolicyHistoryRepository interface {
	Append(ctx context.Context, entry *entity.PolicyHistory) error

	// ListByQuote returns the entries of a quote ordered by ChangedAt.
	ListByQuote(ctx context.Context, quoteID uuid.UUID) ([]*entity.PolicyHistory, error)
}
