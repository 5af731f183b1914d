package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"insurance/config"
	"insurance/internal/domain/entity"
	"insurance/internal/domain/service"
	"insurance/internal/infra/persistence/memory"
	mockSvc "insurance/internal/mocks/service"
	"insurance/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Search: &config.SearchConfig{
			DefaultLimit: 20,
			MaxLimit:     100,
		},
	}
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testNow = time.Date(2024, time.May, 1, 9, 30, 0, 0, time.UTC)

// memoryFixtures wires the real services over the in-memory store.
// Side-effect collaborators are mocks that accept any call unless a test overrides them.
type memoryFixtures struct {
	store     *memory.Store
	customers usecase.CustomerUsecase
	quotes    usecase.QuoteUsecase
	policies  usecase.PolicyUsecase
	payments  *mockSvc.MockPaymentProcessor
	publisher *mockSvc.MockEventPublisher
	metrics   *mockSvc.MockMetricsRecorder
}

func newMemoryFixtures(t *testing.T) *memoryFixtures {
	t.Helper()

	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)
	clock := fixedClock{now: testNow}
	logger := newDiscardLogger()

	payments := mockSvc.NewMockPaymentProcessor(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	metrics.EXPECT().QuoteCreated(mock.Anything).Maybe()
	metrics.EXPECT().QuoteTransitioned(mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().QuoteRejected(mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().CustomerRegistered().Maybe()

	return &memoryFixtures{
		store: store,
		customers: NewCustomerService(CustomerServiceParams{
			TxManager:    txManager,
			CustomerRepo: memory.NewCustomerRepository(store),
			Metrics:      metrics,
			Clock:        clock,
			Config:       newTestConfig(),
			Logger:       logger,
		}),
		quotes: NewQuoteService(QuoteServiceParams{
			TxManager:    txManager,
			CustomerRepo: memory.NewCustomerRepository(store),
			PolicyRepo:   memory.NewPolicyRepository(store),
			QuoteRepo:    memory.NewQuoteRepository(store),
			HistoryRepo:  memory.NewPolicyHistoryRepository(store),
			Payments:     payments,
			Publisher:    publisher,
			Metrics:      metrics,
			Clock:        clock,
			Logger:       logger,
		}),
		policies: NewPolicyService(PolicyServiceParams{
			PolicyRepo: memory.NewPolicyRepository(store),
		}),
		payments:  payments,
		publisher: publisher,
		metrics:   metrics,
	}
}

// acceptPayments makes every charge succeed.
func (f *memoryFixtures) acceptPayments() {
	f.payments.EXPECT().
		Charge(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req service.PaymentRequest) (*service.PaymentReceipt, error) {
			return &service.PaymentReceipt{
				Reference:   "pay_" + req.QuoteID.String(),
				Amount:      req.Amount,
				ProcessedAt: testNow,
			}, nil
		}).
		Maybe()
}

// acceptEvents makes every publish succeed.
func (f *memoryFixtures) acceptEvents() {
	f.publisher.EXPECT().PublishQuoteEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (f *memoryFixtures) registerCustomer(t *testing.T, email string, dob time.Time) *entity.Customer {
	t.Helper()

	customer, err := f.customers.RegisterCustomer(context.Background(), &usecase.RegisterCustomerInput{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		DateOfBirth: dob,
		Email:       email,
	})
	require.NoError(t, err)

	return customer
}

func (f *memoryFixtures) createQuote(t *testing.T, customerID uuid.UUID, policyType entity.PolicyType) *usecase.QuoteView {
	t.Helper()

	view, err := f.quotes.CreateQuote(context.Background(), &usecase.CreateQuoteInput{
		CustomerID: customerID,
		PolicyType: policyType,
	})
	require.NoError(t, err)

	return view
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
