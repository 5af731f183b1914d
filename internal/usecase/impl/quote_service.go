// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "insurance/internal/delivery/context"
	"insurance/internal/domain/entity"
	domainerrors "insurance/internal/domain/errors"
	"insurance/internal/domain/pricing"
	"insurance/internal/domain/repository"
	"insurance/internal/domain/service"
	"insurance/internal/domain/workflow"
	"insurance/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// quoteService implements the QuoteUsecase interface.
type quoteService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	policyRepo   repository.PolicyRepository
	quoteRepo    repository.QuoteRepository
	historyRepo  repository.PolicyHistoryRepository
	payments     service.PaymentProcessor
	publisher    service.EventPublisher
	metrics      service.MetricsRecorder
	clock        service.Clock
	logger       *slog.Logger
}

// QuoteServiceParams holds dependencies for QuoteService, injected by Fx.
type QuoteServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CustomerRepo repository.CustomerRepository
	PolicyRepo   repository.PolicyRepository
	QuoteRepo    repository.QuoteRepository
	HistoryRepo  repository.PolicyHistoryRepository
	Payments     service.PaymentProcessor
	Publisher    service.EventPublisher
	Metrics      service.MetricsRecorder
	Clock        service.Clock
	Logger       *slog.Logger
}

// NewQuoteService is the constructor for quoteService. It receives all dependencies as interfaces.
func NewQuoteService(params QuoteServiceParams) usecase.QuoteUsecase {
	return &quoteService{
		txManager:    params.TxManager,
		customerRepo: params.CustomerRepo,
		policyRepo:   params.PolicyRepo,
		quoteRepo:    params.QuoteRepo,
		historyRepo:  params.HistoryRepo,
		payments:     params.Payments,
		publisher:    params.Publisher,
		metrics:      params.Metrics,
		clock:        params.Clock,
		logger:       params.Logger,
	}
}

func (srv *quoteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateQuote prices the requested policy for the customer and stores a NEW quote
// together with its first history entry.
func (srv *quoteService) CreateQuote(ctx context.Context, input *usecase.CreateQuoteInput) (*usecase.QuoteView, error) {
	now := srv.clock.Now()

	var created workflow.Transition
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customer, err := repoFactory.CustomerRepo().FindByID(ctx, input.CustomerID)
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrInvalidCustomerOrPolicy.WrapMessage("customer does not exist")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find customer")
		}

		policy, err := repoFactory.PolicyRepo().FindByType(ctx, input.PolicyType)
		if errors.Is(err, repository.ErrPolicyNotFound) {
			return domainerrors.ErrInvalidCustomerOrPolicy.WrapMessage("unknown policy type")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find policy")
		}

		priced, err := pricing.ComputePremiumAndCover(
			pricing.Base{Premium: policy.Premium, Cover: policy.Cover},
			customer.DateOfBirth,
			now,
		)
		if err != nil {
			return errors.Wrap(err, "failed to price quote")
		}

		created = workflow.Create(customer, policy, priced.Premium, priced.Cover, now)

		if err := repoFactory.QuoteRepo().Create(ctx, created.Quote); err != nil {
			return errors.Wrap(err, "failed to create quote")
		}
		if err := repoFactory.HistoryRepo().Append(ctx, created.History); err != nil {
			return errors.Wrap(err, "failed to record quote history")
		}

		srv.log(ctx).Debug("Quote priced",
			slog.String("quoteID", created.Quote.ID.String()),
			slog.Int("age", priced.Age),
			slog.String("multiplier", priced.Multiplier.String()),
		)

		return nil
	})
	if err != nil {
		srv.rejected(ctx, "create", err)

		return nil, errors.Wrap(err, "failed to execute create quote transaction")
	}

	srv.metrics.QuoteCreated(created.Quote.PolicyType.String())
	srv.publish(ctx, created)

	srv.log(ctx).Info("Quote created",
		slog.String("quoteID", created.Quote.ID.String()),
		slog.String("customerID", created.Quote.CustomerID.String()),
		slog.String("policyType", created.Quote.PolicyType.String()),
	)

	return usecase.NewQuoteView(created.Quote), nil
}

// AcceptQuote moves a NEW quote to QUOTED.
func (srv *quoteService) AcceptQuote(ctx context.Context, input *usecase.TransitionQuoteInput) (*usecase.QuoteView, error) {
	return srv.transition(ctx, workflow.EventAccept, input, workflow.Accept, nil)
}

// PayQuote charges the premium and moves a QUOTED quote to LIVE.
func (srv *quoteService) PayQuote(ctx context.Context, input *usecase.TransitionQuoteInput) (*usecase.QuoteView, error) {
	return srv.transition(ctx, workflow.EventPay, input, workflow.Pay, srv.charge)
}

type transitionStep func(quote *entity.Quote, token string, at time.Time) (workflow.Transition, error)

// transition loads the quote, applies step and persists the result inside one
// transaction. The status update is a compare-and-swap against the status the
// step started from, so of two racing requests only one can win. afterUpdate
// only runs for the winner and its error rolls the update back.
func (srv *quoteService) transition(
	ctx context.Context,
	event workflow.Event,
	input *usecase.TransitionQuoteInput,
	step transitionStep,
	afterUpdate func(ctx context.Context, tr workflow.Transition) error,
) (*usecase.QuoteView, error) {
	if err := workflow.Confirm(event, input.Confirmation); err != nil {
		srv.rejected(ctx, string(event), err)

		return nil, err
	}

	now := srv.clock.Now()

	var applied workflow.Transition
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		quoteRepo := repoFactory.QuoteRepo()

		quote, err := quoteRepo.FindByID(ctx, input.QuoteID)
		if errors.Is(err, repository.ErrQuoteNotFound) {
			return domainerrors.ErrQuoteNotFound.WrapMessage("quote " + input.QuoteID.String())
		}
		if err != nil {
			return errors.Wrap(err, "failed to find quote")
		}

		tr, err := step(quote, input.Confirmation, now)
		if err != nil {
			return err
		}

		if err := quoteRepo.UpdateStatus(ctx, tr.Quote, tr.From); err != nil {
			switch {
			case errors.Is(err, repository.ErrQuoteStatusConflict):
				return domainerrors.ErrIllegalTransition.WrapMessage("quote status changed concurrently")
			case errors.Is(err, repository.ErrQuoteNotFound):
				return domainerrors.ErrQuoteNotFound.WrapMessage("quote " + input.QuoteID.String())
			}

			return errors.Wrap(err, "failed to update quote status")
		}

		if afterUpdate != nil {
			if err := afterUpdate(ctx, tr); err != nil {
				return err
			}
		}

		if tr.History != nil {
			if err := repoFactory.HistoryRepo().Append(ctx, tr.History); err != nil {
				return errors.Wrap(err, "failed to record quote history")
			}
		}

		applied = tr

		return nil
	})
	if err != nil {
		srv.rejected(ctx, string(event), err)

		return nil, errors.Wrapf(err, "failed to %s quote", event)
	}

	srv.metrics.QuoteTransitioned(applied.From.String(), applied.Quote.Status.String())
	srv.publish(ctx, applied)

	srv.log(ctx).Info("Quote status changed",
		slog.String("quoteID", applied.Quote.ID.String()),
		slog.String("from", applied.From.String()),
		slog.String("to", applied.Quote.Status.String()),
	)

	return usecase.NewQuoteView(applied.Quote), nil
}

// charge bills the premium once the quote has been moved to LIVE.
func (srv *quoteService) charge(ctx context.Context, tr workflow.Transition) error {
	receipt, err := srv.payments.Charge(ctx, service.PaymentRequest{
		QuoteID:    tr.Quote.ID,
		CustomerID: tr.Quote.CustomerID,
		Amount:     tr.Quote.Premium,
	})
	if err != nil {
		srv.log(ctx).Warn("Payment declined",
			slog.String("quoteID", tr.Quote.ID.String()),
			slog.Any("error", err),
		)

		return domainerrors.ErrPaymentFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Payment processed",
		slog.String("quoteID", tr.Quote.ID.String()),
		slog.String("reference", receipt.Reference),
		slog.String("amount", receipt.Amount.StringFixed(2)),
	)

	return nil
}

// ListQuotesForCustomer returns every quote held by the customer.
func (srv *quoteService) ListQuotesForCustomer(ctx context.Context, customerID uuid.UUID) (*usecase.CustomerQuotesOutput, error) {
	customer, err := srv.customerRepo.FindByID(ctx, customerID)
	if errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, domainerrors.ErrCustomerNotFound.WrapMessage("customer " + customerID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find customer")
	}

	quotes, err := srv.quoteRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer quotes")
	}

	summaries := make([]usecase.QuoteSummary, 0, len(quotes))
	for _, quote := range quotes {
		summaries = append(summaries, usecase.QuoteSummary{
			QuoteID:    quote.ID,
			PolicyType: quote.PolicyType,
			Status:     quote.Status,
			CreatedAt:  quote.CreatedAt,
			BuyDate:    quote.BuyDate,
			Expiry:     quote.Expiry,
		})
	}

	return &usecase.CustomerQuotesOutput{
		Customer: customer,
		Quotes:   summaries,
	}, nil
}

// GetQuote returns a quote with the customer and policy it references.
func (srv *quoteService) GetQuote(ctx context.Context, quoteID uuid.UUID) (*usecase.QuoteDetailsOutput, error) {
	quote, err := srv.findQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	customer, err := srv.customerRepo.FindByID(ctx, quote.CustomerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find quote customer")
	}

	policy, err := srv.policyRepo.FindByType(ctx, quote.PolicyType)
	if errors.Is(err, repository.ErrPolicyNotFound) {
		return nil, domainerrors.ErrPolicyNotFound.WrapMessage("policy type " + quote.PolicyType.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find quote policy")
	}

	return &usecase.QuoteDetailsOutput{
		Quote:    quote,
		Customer: customer,
		Policy:   policy,
	}, nil
}

// GetQuoteHistory returns the statuses the quote has held, oldest first.
func (srv *quoteService) GetQuoteHistory(ctx context.Context, quoteID uuid.UUID) ([]*entity.PolicyHistory, error) {
	if _, err := srv.findQuote(ctx, quoteID); err != nil {
		return nil, err
	}

	history, err := srv.historyRepo.ListByQuote(ctx, quoteID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list quote history")
	}

	return history, nil
}

func (srv *quoteService) findQuote(ctx context.Context, quoteID uuid.UUID) (*entity.Quote, error) {
	quote, err := srv.quoteRepo.FindByID(ctx, quoteID)
	if errors.Is(err, repository.ErrQuoteNotFound) {
		return nil, domainerrors.ErrQuoteNotFound.WrapMessage("quote " + quoteID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find quote")
	}

	return quote, nil
}

// publish announces a committed transition. The state change already happened,
// so a publishing failure is logged and not returned.
func (srv *quoteService) publish(ctx context.Context, tr workflow.Transition) {
	event := &service.QuoteEvent{
		RequestID:  deliverycontext.RequestIDFrom(ctx),
		QuoteID:    tr.Quote.ID.String(),
		CustomerID: tr.Quote.CustomerID.String(),
		PolicyType: tr.Quote.PolicyType.String(),
		FromStatus: tr.From.String(),
		ToStatus:   tr.Quote.Status.String(),
		Premium:    tr.Quote.Premium.StringFixed(2),
		Cover:      tr.Quote.Cover.StringFixed(2),
		OccurredAt: tr.Quote.UpdatedAt,
	}

	if err := srv.publisher.PublishQuoteEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish quote event",
			slog.String("quoteID", event.QuoteID),
			slog.String("toStatus", event.ToStatus),
			slog.Any("error", err),
		)
	}
}

func (srv *quoteService) rejected(ctx context.Context, operation string, err error) {
	reason := "error"
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		reason = appErr.ErrorCode()
	}

	srv.metrics.QuoteRejected(operation, reason)
	srv.log(ctx).Warn("Quote operation rejected",
		slog.String("operation", operation),
		slog.String("reason", reason),
		slog.Any("error", err),
	)
}
