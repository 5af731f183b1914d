package usecase

import (
	"context"
	"time"

	"insurance/internal/domain/entity"
)

// RegisterCustomerInput defines the data required to register a new customer.
type RegisterCustomerInput struct {
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	Email       string
}

// SearchCustomersInput filters customers by a free-text term.
type SearchCustomersInput struct {
	Term  string
	Limit int // Zero means the configured default.
}

// CustomerUsecase defines the customer-related business operations.
type CustomerUsecase interface {
	RegisterCustomer(ctx context.Context, input *RegisterCustomerInput) (*entity.Customer, error)
	SearchCustomers(ctx context.Context, input *SearchCustomersInput) ([]*entity.Customer, error)
}
