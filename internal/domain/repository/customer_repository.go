// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"insurance/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is returned when no customer matches the lookup.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the persistence operations for customers.
type CustomerRepository interface {
	// FindByID retrieves a single customer by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// Create persists a new customer. The email must already be normalized;
	// a case-insensitive duplicate fails with domainerrors.ErrCustomerAlreadyExists.
	Create(ctx context.Context, customer *entity.Customer) error

	// Search returns customers whose name or email contains term, case-insensitively.
	Search(ctx context.Context, term string, limit int) ([]*entity.Customer, error)
}
