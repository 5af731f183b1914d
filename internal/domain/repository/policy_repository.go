package repository

import (
	"context"
	"errors"

	"insurance/internal/domain/entity"
)

// ErrPolicyNotFound is returned when the catalog has no policy of the requested type.
var ErrPolicyNotFound = errors.New("policy not found")

// PolicyRepository reads the policy catalog.
type PolicyRepository interface {
	FindByType(ctx context.Context, policyType entity.PolicyType) (*entity.Policy, error)
	List(ctx context.Context) ([]*entity.Policy, error)
}
