package postgres

import (
	"context"

	"insurance/internal/domain/entity"
	"insurance/internal/domain/repository"
	"insurance/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type policyRepository struct {
	db *gorm.DB
}

// NewPolicyRepository is the constructor for policyRepository.
func NewPolicyRepository(db *gorm.DB) repository.PolicyRepository {
	return &policyRepository{db: db}
}

func (repo *policyRepository) FindByType(ctx context.Context, policyType entity.PolicyType) (*entity.Policy, error) {
	var policyM model.PolicyModel
	err := repo.db.WithContext(ctx).Where("type = ?", policyType.String()).First(&policyM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPolicyNotFound
		}

		return nil, errors.Wrap(err, "failed to find policy by type")
	}

	return toPolicyDomain(&policyM), nil
}

func (repo *policyRepository) List(ctx context.Context) ([]*entity.Policy, error) {
	var policyMs []model.PolicyModel
	if err := repo.db.WithContext(ctx).Order("type").Find(&policyMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list policies")
	}

	policies := make([]*entity.Policy, 0, len(policyMs))
	for i := range policyMs {
		policies = append(policies, toPolicyDomain(&policyMs[i]))
	}

	return policies, nil
}

func toPolicyDomain(data *model.PolicyModel) *entity.Policy {
	if data == nil {
		return nil
	}

	return &entity.Policy{
		ID:        data.ID,
		Name:      data.Name,
		Type:      entity.PolicyType(data.Type),
		Premium:   data.Premium,
		Cover:     data.Cover,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPolicyDomain(data *entity.Policy) *model.PolicyModel {
	if data == nil {
		return nil
	}

	return &model.PolicyModel{
		ID:        data.ID,
		Name:      data.Name,
		Type:      data.Type.String(),
		Premium:   data.Premium,
		Cover:     data.Cover,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
