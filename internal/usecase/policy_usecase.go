package usecase

import (
	"context"

	"insurance/internal/domain/entity"
)

// PolicyUsecase exposes the read-only policy catalog.
type PolicyUsecase interface {
	ListPolicies(ctx context.Context) ([]*entity.Policy, error)
}
