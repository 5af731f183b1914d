package postgres

import (
	"context"
	"log/slog"

	"insurance/internal/domain/entity"
	"insurance/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const createCustomerEmailIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_customers_email_lower ON customers (lower(email))`

// Migrate creates or updates the schema and seeds the default policy catalog.
// Seeding skips policy types that already exist, so it is safe to run repeatedly.
func Migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	tx := db.WithContext(ctx)

	if err := tx.AutoMigrate(
		&model.CustomerModel{},
		&model.PolicyModel{},
		&model.QuoteModel{},
		&model.PolicyHistoryModel{},
	); err != nil {
		return errors.Wrap(err, "failed to auto-migrate schema")
	}

	if err := tx.Exec(createCustomerEmailIndex).Error; err != nil {
		return errors.Wrap(err, "failed to create customer email index")
	}

	seeded, err := SeedCatalog(ctx, db)
	if err != nil {
		return err
	}

	logger.Info("Database migrated", slog.Int64("policiesSeeded", seeded))

	return nil
}

// SeedCatalog inserts the default catalog and reports how many policies were added.
func SeedCatalog(ctx context.Context, db *gorm.DB) (int64, error) {
	catalog := entity.DefaultCatalog()
	policyMs := make([]*model.PolicyModel, 0, len(catalog))
	for i := range catalog {
		policy := catalog[i]
		policy.ID = uuid.New()
		policyMs = append(policyMs, fromPolicyDomain(&policy))
	}

	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "type"}}, DoNothing: true}).
		Create(&policyMs)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to seed policy catalog")
	}

	return result.RowsAffected, nil
}
