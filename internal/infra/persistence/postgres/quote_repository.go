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

type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository is the constructor for quoteRepository.
func NewQuoteRepository(db *gorm.DB) repository.QuoteRepository {
	return &quoteRepository{db: db}
}

func (repo *quoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	var quoteM model.QuoteModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&quoteM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find quote by id")
	}

	return toQuoteDomain(&quoteM), nil
}

func (repo *quoteRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Quote, error) {
	var quoteMs []model.QuoteModel
	err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at, id").
		Find(&quoteMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list quotes by customer")
	}

	quotes := make([]*entity.Quote, 0, len(quoteMs))
	for i := range quoteMs {
		quotes = append(quotes, toQuoteDomain(&quoteMs[i]))
	}

	return quotes, nil
}

func (repo *quoteRepository) Create(ctx context.Context, quote *entity.Quote) error {
	quoteM := fromQuoteDomain(quote)

	if err := repo.db.WithContext(ctx).Omit("Policy", "History").Create(quoteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidCustomerOrPolicy.WrapMessage("invalid foreign key reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create quote")
	}

	return nil
}

// UpdateStatus only touches the row when its status still equals expected. A
// concurrent writer that got there first leaves zero affected rows.
func (repo *quoteRepository) UpdateStatus(ctx context.Context, quote *entity.Quote, expected entity.QuoteStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.QuoteModel{}).
		Where("id = ? AND status = ?", quote.ID, expected.String()).
		Updates(map[string]any{
			"status":     quote.Status.String(),
			"buy_date":   quote.BuyDate,
			"expiry":     quote.Expiry,
			"updated_at": quote.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update quote status")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).Model(&model.QuoteModel{}).Where("id = ?", quote.ID).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check quote existence")
		}
		if count == 0 {
			return repository.ErrQuoteNotFound
		}

		return repository.ErrQuoteStatusConflict
	}

	return nil
}

func toQuoteDomain(data *model.QuoteModel) *entity.Quote {
	if data == nil {
		return nil
	}

	return &entity.Quote{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		PolicyID:   data.PolicyID,
		PolicyType: entity.PolicyType(data.PolicyType),
		Status:     entity.QuoteStatus(data.Status),
		Premium:    data.Premium,
		Cover:      data.Cover,
		BuyDate:    data.BuyDate,
		Expiry:     data.Expiry,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromQuoteDomain(data *entity.Quote) *model.QuoteModel {
	if data == nil {
		return nil
	}

	return &model.QuoteModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		PolicyID:   data.PolicyID,
		PolicyType: data.PolicyType.String(),
		Status:     data.Status.String(),
		Premium:    data.Premium,
		Cover:      data.Cover,
		BuyDate:    data.BuyDate,
		Expiry:     data.Expiry,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
