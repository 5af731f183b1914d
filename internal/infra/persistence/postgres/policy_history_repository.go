package postgres

import (
	"context"

	"insurance/internal/domain/entity"
	domainerrors "insurance/internal/domain/errors"
	"insurance/internal/domain/repository"
	"insurance/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type policyHistoryRepository struct {
	db *gorm.DB
}

// NewPolicyHistoryRepository is the constructor for policyHistoryRepository.
func NewPolicyHistoryRepository(db *gorm.DB) repository.PolicyHistoryRepository {
	return &policyHistoryRepository{db: db}
}

func (repo *policyHistoryRepository) Append(ctx context.Context, entry *entity.PolicyHistory) error {
	historyM := &model.PolicyHistoryModel{
		ID:        entry.ID,
		QuoteID:   entry.QuoteID,
		Status:    entry.Status.String(),
		ChangedAt: entry.ChangedAt,
	}

	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrQuoteNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append policy history")
	}

	return nil
}

func (repo *policyHistoryRepository) ListByQuote(ctx context.Context, quoteID uuid.UUID) ([]*entity.PolicyHistory, error) {
	var historyMs []model.PolicyHistoryModel
	err := repo.db.WithContext(ctx).
		Where("quote_id = ?", quoteID).
		Order("seq").
		Find(&historyMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list policy history")
	}

	entries := make([]*entity.PolicyHistory, 0, len(historyMs))
	for _, h := range historyMs {
		entries = append(entries, &entity.PolicyHistory{
			ID:        h.ID,
			QuoteID:   h.QuoteID,
			Status:    entity.QuoteStatus(h.Status),
			ChangedAt: h.ChangedAt,
		})
	}

	return entries, nil
}
