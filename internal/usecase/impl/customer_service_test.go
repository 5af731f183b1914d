package impl

import (
	"context"
	"testing"
	"time"

	"insurance/internal/domain/entity"
	domainerrors "insurance/internal/domain/errors"
	mockRepo "insurance/internal/mocks/repository"
	mockSvc "insurance/internal/mocks/service"
	"insurance/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_RegisterCustomer_NormalizesInput(t *testing.T) {
	fx := newMemoryFixtures(t)

	customer, err := fx.customers.RegisterCustomer(context.Background(), &usecase.RegisterCustomerInput{
		FirstName:   "  Grace ",
		LastName:    "Hopper",
		DateOfBirth: time.Date(1906, time.December, 9, 15, 4, 0, 0, time.FixedZone("EST", -5*3600)),
		Email:       " Grace.Hopper@Navy.MIL ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Grace", customer.FirstName)
	assert.Equal(t, "grace.hopper@navy.mil", customer.Email)
	assert.Equal(t, date(1906, time.December, 9), customer.DateOfBirth)
	assert.Equal(t, testNow, customer.CreatedAt)
}

func TestCustomerService_RegisterCustomer_DuplicateEmail(t *testing.T) {
	fx := newMemoryFixtures(t)
	fx.registerCustomer(t, "ada@example.com", date(1990, 1, 1))

	_, err := fx.customers.RegisterCustomer(context.Background(), &usecase.RegisterCustomerInput{
		FirstName:   "Augusta",
		LastName:    "King",
		DateOfBirth: date(1990, 1, 1),
		Email:       "ADA@example.com",
	})

	assert.ErrorIs(t, err, domainerrors.ErrCustomerAlreadyExists)
}

func TestCustomerService_RegisterCustomer_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterCustomerInput
		want  error
	}{
		{
			name:  "future date of birth",
			input: usecase.RegisterCustomerInput{FirstName: "A", LastName: "B", Email: "a@b.c", DateOfBirth: testNow.AddDate(0, 0, 1)},
			want:  domainerrors.ErrFutureDateOfBirth,
		},
		{
			name:  "blank first name",
			input: usecase.RegisterCustomerInput{FirstName: "  ", LastName: "B", Email: "a@b.c", DateOfBirth: date(1990, 1, 1)},
			want:  domainerrors.ErrValidationFailed,
		},
		{
			name:  "blank email",
			input: usecase.RegisterCustomerInput{FirstName: "A", LastName: "B", Email: " ", DateOfBirth: date(1990, 1, 1)},
			want:  domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newMemoryFixtures(t)

			customer, err := fx.customers.RegisterCustomer(context.Background(), &tt.input)

			assert.Nil(t, customer)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCustomerService_RegisterCustomer_BornToday(t *testing.T) {
	fx := newMemoryFixtures(t)

	customer := fx.registerCustomer(t, "newborn@example.com", testNow)

	assert.Equal(t, date(2024, time.May, 1), customer.DateOfBirth)
}

func TestCustomerService_SearchCustomers_Limits(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{name: "zero uses default", requested: 0, want: 20},
		{name: "negative uses default", requested: -5, want: 20},
		{name: "within bounds", requested: 7, want: 7},
		{name: "capped at max", requested: 500, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customerRepo := mockRepo.NewMockCustomerRepository(t)
			service := NewCustomerService(CustomerServiceParams{
				TxManager:    mockRepo.NewMockTransactionManager(t),
				CustomerRepo: customerRepo,
				Metrics:      mockSvc.NewMockMetricsRecorder(t),
				Clock:        fixedClock{now: testNow},
				Config:       newTestConfig(),
				Logger:       newDiscardLogger(),
			})

			ctx := context.Background()
			customerRepo.EXPECT().Search(ctx, "ada", tt.want).Return([]*entity.Customer{}, nil)

			customers, err := service.SearchCustomers(ctx, &usecase.SearchCustomersInput{Term: " ada ", Limit: tt.requested})
			require.NoError(t, err)
			assert.Empty(t, customers)
		})
	}
}

func TestCustomerService_SearchCustomers_RepositoryError(t *testing.T) {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	service := NewCustomerService(CustomerServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		CustomerRepo: customerRepo,
		Metrics:      mockSvc.NewMockMetricsRecorder(t),
		Clock:        fixedClock{now: testNow},
		Logger:       newDiscardLogger(),
	})

	ctx := context.Background()
	customerRepo.EXPECT().Search(ctx, "", 20).Return(nil, errors.New("db down"))

	_, err := service.SearchCustomers(ctx, &usecase.SearchCustomersInput{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to search customers")
}

func TestCustomerService_SearchCustomers_Memory(t *testing.T) {
	fx := newMemoryFixtures(t)
	fx.registerCustomer(t, "ada@example.com", date(1990, 1, 1))

	customers, err := fx.customers.SearchCustomers(context.Background(), &usecase.SearchCustomersInput{Term: "LOVE"})
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "ada@example.com", customers[0].Email)
}
