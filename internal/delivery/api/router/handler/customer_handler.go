package handler

import (
	"net/http"
	"time"

	"insurance/internal/delivery/api/response"
	"insurance/internal/domain/entity"
	domainerrors "insurance/internal/domain/errors"
	"insurance/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DateLayout is the wire format for dates of birth (DD-MM-YYYY).
const DateLayout = "02-01-2006"

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
}

// CustomerHandler holds dependencies for customer-related handlers
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
	}
}

// RegisterCustomerRequest represents the request body for registering a customer
type RegisterCustomerRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	DOB       string `json:"dob" validate:"required"`
	Email     string `json:"email" validate:"required,email,max=254"`
}

// SearchCustomersRequest represents the query of a customer search
type SearchCustomersRequest struct {
	Term  string `query:"q" validate:"max=100"`
	Limit int    `query:"limit" validate:"gte=0"`
}

// CustomerResponse is the public representation of a customer
type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	DOB       string    `json:"dob"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newCustomerResponse(customer *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		DOB:       customer.DateOfBirth.Format(DateLayout),
		Email:     customer.Email,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}

// RegisterCustomer handles customer registration
func (h *CustomerHandler) RegisterCustomer(c echo.Context) error {
	var req RegisterCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid customer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	dob, err := time.Parse(DateLayout, req.DOB)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidDateFormat)
	}

	customer, err := h.customerUC.RegisterCustomer(c.Request().Context(), &usecase.RegisterCustomerInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: dob,
		Email:       req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newCustomerResponse(customer))
}

// SearchCustomers handles free-text customer lookup
func (h *CustomerHandler) SearchCustomers(c echo.Context) error {
	var req SearchCustomersRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid search parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	customers, err := h.customerUC.SearchCustomers(c.Request().Context(), &usecase.SearchCustomersInput{
		Term:  req.Term,
		Limit: req.Limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results := make([]CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		results = append(results, newCustomerResponse(customer))
	}

	return response.Success(c, http.StatusOK, results)
}
