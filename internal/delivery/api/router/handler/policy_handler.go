package handler

import (
	"net/http"
	"strings"
	"time"

	"insurance/internal/delivery/api/response"
	"insurance/internal/domain/entity"
	domainerrors "insurance/internal/domain/errors"
	"insurance/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PolicyHandlerParams holds dependencies for PolicyHandler, injected by Fx.
type PolicyHandlerParams struct {
	fx.In

	PolicyUC usecase.PolicyUsecase
	QuoteUC  usecase.QuoteUsecase
}

// PolicyHandler serves the catalog and the read side of customer policies
type PolicyHandler struct {
	policyUC usecase.PolicyUsecase
	quoteUC  usecase.QuoteUsecase
}

// NewPolicyHandler is the constructor for PolicyHandler
func NewPolicyHandler(params PolicyHandlerParams) *PolicyHandler {
	return &PolicyHandler{
		policyUC: params.PolicyUC,
		quoteUC:  params.QuoteUC,
	}
}

// CatalogPolicyResponse is one catalog entry with its base amounts
type CatalogPolicyResponse struct {
	ID      uuid.UUID         `json:"id"`
	Name    string            `json:"name"`
	Type    entity.PolicyType `json:"type"`
	Premium string            `json:"premium"`
	Cover   string            `json:"cover"`
}

// CustomerInfoResponse identifies the owner of a policy list
type CustomerInfoResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// CustomerPoliciesResponse lists every quote a customer holds
type CustomerPoliciesResponse struct {
	CustomerInfo CustomerInfoResponse   `json:"customer_info"`
	Policies     []usecase.QuoteSummary `json:"policies"`
}

// PolicyDetailsResponse is a single quote with its customer and catalog policy
type PolicyDetailsResponse struct {
	QuoteID   uuid.UUID             `json:"quote_id"`
	Status    entity.QuoteStatus    `json:"status"`
	Premium   string                `json:"premium"`
	Cover     string                `json:"cover"`
	CreatedAt time.Time             `json:"created_at"`
	BuyDate   *time.Time            `json:"buy_date"`
	Expiry    *time.Time            `json:"expiry"`
	Customer  CustomerInfoResponse  `json:"customer"`
	Policy    CatalogPolicyResponse `json:"policy"`
}

// HistoryEntryResponse is one recorded status
type HistoryEntryResponse struct {
	Status    entity.QuoteStatus `json:"status"`
	ChangedAt time.Time          `json:"changed_at"`
}

// PolicyHistoryResponse is the audit trail of a quote
type PolicyHistoryResponse struct {
	QuoteID uuid.UUID              `json:"quote_id"`
	History []HistoryEntryResponse `json:"history"`
}

func newCatalogPolicyResponse(policy *entity.Policy) CatalogPolicyResponse {
	return CatalogPolicyResponse{
		ID:      policy.ID,
		Name:    policy.Name,
		Type:    policy.Type,
		Premium: policy.Premium.StringFixed(2),
		Cover:   policy.Cover.StringFixed(2),
	}
}

func newCustomerInfoResponse(customer *entity.Customer) CustomerInfoResponse {
	return CustomerInfoResponse{
		ID:        customer.ID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
	}
}

// ListCatalog returns every policy that can be quoted
func (h *PolicyHandler) ListCatalog(c echo.Context) error {
	policies, err := h.policyUC.ListPolicies(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results := make([]CatalogPolicyResponse, 0, len(policies))
	for _, policy := range policies {
		results = append(results, newCatalogPolicyResponse(policy))
	}

	return response.Success(c, http.StatusOK, results)
}

// ListCustomerPolicies returns the customer and all of their quotes, whatever their status
func (h *PolicyHandler) ListCustomerPolicies(c echo.Context) error {
	rawID := strings.TrimSpace(c.QueryParam("customer_id"))
	if rawID == "" {
		return response.BindingError(c, "customer_id is required.")
	}

	customerID, err := uuid.Parse(rawID)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrCustomerNotFound)
	}

	out, err := h.quoteUC.ListQuotesForCustomer(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CustomerPoliciesResponse{
		CustomerInfo: newCustomerInfoResponse(out.Customer),
		Policies:     out.Quotes,
	})
}

// GetPolicy returns one quote with its customer and catalog policy
func (h *PolicyHandler) GetPolicy(c echo.Context) error {
	quoteID, err := uuid.Parse(c.Param("quote_id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrQuoteNotFound)
	}

	out, err := h.quoteUC.GetQuote(c.Request().Context(), quoteID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PolicyDetailsResponse{
		QuoteID:   out.Quote.ID,
		Status:    out.Quote.Status,
		Premium:   out.Quote.Premium.StringFixed(2),
		Cover:     out.Quote.Cover.StringFixed(2),
		CreatedAt: out.Quote.CreatedAt,
		BuyDate:   out.Quote.BuyDate,
		Expiry:    out.Quote.Expiry,
		Customer:  newCustomerInfoResponse(out.Customer),
		Policy:    newCatalogPolicyResponse(out.Policy),
	})
}

// GetPolicyHistory returns every status the quote has held, oldest first
func (h *PolicyHandler) GetPolicyHistory(c echo.Context) error {
	quoteID, err := uuid.Parse(c.Param("quote_id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrQuoteNotFound)
	}

	entries, err := h.quoteUC.GetQuoteHistory(c.Request().Context(), quoteID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	history := make([]HistoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		history = append(history, HistoryEntryResponse{Status: entry.Status, ChangedAt: entry.ChangedAt})
	}

	return response.Success(c, http.StatusOK, PolicyHistoryResponse{QuoteID: quoteID, History: history})
}
