package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"insurance/config"
	deliverycontext "insurance/internal/delivery/context"
	"insurance/internal/domain/entity"
	domainerrors "insurance/internal/domain/errors"
	"insurance/internal/domain/repository"
	"insurance/internal/domain/service"
	"insurance/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	metrics      service.MetricsRecorder
	clock        service.Clock
	search       config.SearchConfig
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CustomerRepo repository.CustomerRepository
	Metrics      service.MetricsRecorder
	Clock        service.Clock
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	search := config.DefaultSearchConfig()
	if params.Config != nil && params.Config.Search != nil {
		search = params.Config.Search
	}

	return &customerService{
		txManager:    params.TxManager,
		customerRepo: params.CustomerRepo,
		metrics:      params.Metrics,
		clock:        params.Clock,
		search:       *search,
		logger:       params.Logger,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterCustomer validates and stores a new customer. Emails are unique regardless of case.
func (srv *customerService) RegisterCustomer(ctx context.Context, input *usecase.RegisterCustomerInput) (*entity.Customer, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	email := entity.NormalizeEmail(input.Email)

	if firstName == "" || lastName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("first and last name are required")
	}
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email is required")
	}

	now := srv.clock.Now()
	dob := truncateToDate(input.DateOfBirth)
	if dob.After(truncateToDate(now)) {
		return nil, domainerrors.ErrFutureDateOfBirth
	}

	customer := &entity.Customer{
		ID:          uuid.New(),
		FirstName:   firstName,
		LastName:    lastName,
		DateOfBirth: dob,
		Email:       email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CustomerRepo().Create(ctx, customer); err != nil {
			return errors.Wrap(err, "failed to create customer")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Customer registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute customer registration transaction")
	}

	srv.metrics.CustomerRegistered()
	srv.log(ctx).Info("Customer registered", slog.String("customerID", customer.ID.String()))

	return customer, nil
}

// SearchCustomers matches the term against names and email. An empty term lists customers.
func (srv *customerService) SearchCustomers(ctx context.Context, input *usecase.SearchCustomersInput) ([]*entity.Customer, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = srv.search.DefaultLimit
	}
	if limit > srv.search.MaxLimit {
		limit = srv.search.MaxLimit
	}

	customers, err := srv.customerRepo.Search(ctx, strings.TrimSpace(input.Term), limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search customers")
	}

	return customers, nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
