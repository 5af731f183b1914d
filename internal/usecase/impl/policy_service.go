package impl

import (
	"context"

	"insurance/internal/domain/entity"
	"insurance/internal/domain/repository"
	"insurance/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type policyService struct {
	policyRepo repository.PolicyRepository
}

// PolicyServiceParams holds dependencies for PolicyService, injected by Fx.
type PolicyServiceParams struct {
	fx.In

	PolicyRepo repository.PolicyRepository
}

// NewPolicyService is the constructor for policyService.
func NewPolicyService(params PolicyServiceParams) usecase.PolicyUsecase {
	return &policyService{
		policyRepo: params.PolicyRepo,
	}
}

// ListPolicies returns the whole catalog ordered by policy type.
func (srv *policyService) ListPolicies(ctx context.Context) ([]*entity.Policy, error) {
	policies, err := srv.policyRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list policies")
	}

	return policies, nil
}
