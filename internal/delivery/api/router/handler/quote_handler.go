package handler

import (
	"context"
	"net/http"

	"insurance/internal/delivery/api/response"
	"insurance/internal/domain/entity"
	domainerrors "insurance/internal/domain/errors"
	"insurance/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QuoteHandlerParams holds dependencies for QuoteHandler, injected by Fx.
type QuoteHandlerParams struct {
	fx.In

	QuoteUC usecase.QuoteUsecase
}

// QuoteHandler serves the quote lifecycle endpoints
type QuoteHandler struct {
	quoteUC usecase.QuoteUsecase
}

// NewQuoteHandler is the constructor for QuoteHandler
func NewQuoteHandler(params QuoteHandlerParams) *QuoteHandler {
	return &QuoteHandler{
		quoteUC: params.QuoteUC,
	}
}

// CreateQuoteRequest represents the request body for pricing a quote
type CreateQuoteRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
	Type       string `json:"type" validate:"required"`
}

// TransitionQuoteRequest carries the quote and the confirmation token ("accepted" or "active").
type TransitionQuoteRequest struct {
	QuoteID string `json:"quote_id"`
	Status  string `json:"status"`
}

// CreateQuote prices a catalog policy for a customer
func (h *QuoteHandler) CreateQuote(c echo.Context) error {
	var req CreateQuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid quote input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidCustomerOrPolicy)
	}

	view, err := h.quoteUC.CreateQuote(c.Request().Context(), &usecase.CreateQuoteInput{
		CustomerID: customerID,
		PolicyType: entity.PolicyType(req.Type),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, view)
}

// AcceptQuote moves a NEW quote to QUOTED
func (h *QuoteHandler) AcceptQuote(c echo.Context) error {
	return h.transition(c, h.quoteUC.AcceptQuote)
}

// PayQuote moves a QUOTED quote to LIVE
func (h *QuoteHandler) PayQuote(c echo.Context) error {
	return h.transition(c, h.quoteUC.PayQuote)
}

type transitionFunc func(ctx context.Context, input *usecase.TransitionQuoteInput) (*usecase.QuoteView, error)

func (h *QuoteHandler) transition(c echo.Context, step transitionFunc) error {
	var req TransitionQuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid quote input")
	}

	// An unparseable id cannot match any quote; the use case still checks the
	// confirmation token first and then reports the quote as not found.
	quoteID, err := uuid.Parse(req.QuoteID)
	if err != nil {
		quoteID = uuid.Nil
	}

	view, err := step(c.Request().Context(), &usecase.TransitionQuoteInput{
		QuoteID:      quoteID,
		Confirmation: req.Status,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}
