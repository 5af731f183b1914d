// Package payment holds the payment gateway adapters.
package payment

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"insurance/config"
	"insurance/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ErrDeclined is returned for charges the simulated gateway refuses.
var ErrDeclined = errors.New("payment declined")

// simulatedGateway approves every positive charge up to an optional ceiling.
type simulatedGateway struct {
	declineAbove *decimal.Decimal
	now          func() time.Time
	logger       *slog.Logger
}

// Params holds dependencies for the simulated gateway, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Clock  service.Clock
	Logger *slog.Logger
}

// NewSimulatedGateway builds the gateway from the payment configuration.
func NewSimulatedGateway(params Params) (service.PaymentProcessor, error) {
	gateway := &simulatedGateway{
		now:    params.Clock.Now,
		logger: params.Logger,
	}

	if params.Config != nil && params.Config.Payment != nil {
		if raw := strings.TrimSpace(params.Config.Payment.DeclineAbove); raw != "" {
			limit, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid payment.declineAbove %q", raw)
			}
			gateway.declineAbove = &limit
		}
	}

	return gateway, nil
}

func (g *simulatedGateway) Charge(ctx context.Context, req service.PaymentRequest) (*service.PaymentReceipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	if !req.Amount.IsPositive() {
		return nil, errors.Wrapf(ErrDeclined, "amount %s must be positive", req.Amount.StringFixed(2))
	}
	if g.declineAbove != nil && req.Amount.GreaterThan(*g.declineAbove) {
		return nil, errors.Wrapf(ErrDeclined, "amount %s exceeds limit %s", req.Amount.StringFixed(2), g.declineAbove.StringFixed(2))
	}

	receipt := &service.PaymentReceipt{
		Reference:   "sim_" + uuid.NewString(),
		Amount:      req.Amount,
		ProcessedAt: g.now(),
	}

	g.logger.DebugContext(ctx, "[SimulatedPayment] Charge approved",
		slog.String("quote_id", req.QuoteID.String()),
		slog.String("reference", receipt.Reference),
	)

	return receipt, nil
}
