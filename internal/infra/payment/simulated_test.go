package payment

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"insurance/config"
	"insurance/internal/domain/service"
	mockSvc "insurance/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T, declineAbove string) service.PaymentProcessor {
	t.Helper()

	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)).Maybe()

	gateway, err := NewSimulatedGateway(Params{
		Config: &config.Config{Payment: &config.PaymentConfig{DeclineAbove: declineAbove}},
		Clock:  clock,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return gateway
}

func TestSimulatedGateway_Charge(t *testing.T) {
	tests := []struct {
		name         string
		declineAbove string
		amount       string
		wantDeclined bool
	}{
		{name: "no limit", amount: "1000.00"},
		{name: "below limit", declineAbove: "500", amount: "499.99"},
		{name: "at limit", declineAbove: "500", amount: "500.00"},
		{name: "above limit", declineAbove: "500", amount: "500.01", wantDeclined: true},
		{name: "zero amount", amount: "0", wantDeclined: true},
		{name: "negative amount", amount: "-1", wantDeclined: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := newGateway(t, tt.declineAbove)
			req := service.PaymentRequest{QuoteID: uuid.New(), CustomerID: uuid.New(), Amount: decimal.RequireFromString(tt.amount)}

			receipt, err := gateway.Charge(context.Background(), req)

			if tt.wantDeclined {
				assert.True(t, errors.Is(err, ErrDeclined))
				assert.Nil(t, receipt)

				return
			}
			require.NoError(t, err)
			assert.True(t, receipt.Amount.Equal(req.Amount))
			assert.Contains(t, receipt.Reference, "sim_")
			assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), receipt.ProcessedAt)
		})
	}
}

func TestNewSimulatedGateway_InvalidLimit(t *testing.T) {
	_, err := NewSimulatedGateway(Params{
		Config: &config.Config{Payment: &config.PaymentConfig{DeclineAbove: "lots"}},
		Clock:  mockSvc.NewMockClock(t),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.ErrorContains(t, err, "invalid payment.declineAbove")
}

func TestSimulatedGateway_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newGateway(t, "").Charge(ctx, service.PaymentRequest{Amount: decimal.NewFromInt(1)})

	assert.ErrorIs(t, err, context.Canceled)
}
