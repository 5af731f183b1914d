package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"insurance/config"
	"insurance/internal/delivery/api/router"
	"insurance/internal/delivery/api/router/handler"
	deliverycontext "insurance/internal/delivery/context"
	"insurance/internal/infra/metrics"
	"insurance/internal/infra/payment"
	"insurance/internal/infra/persistence/memory"
	"insurance/internal/infra/pubsub"
	"insurance/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testNow = time.Date(2024, time.May, 1, 9, 30, 0, 0, time.UTC)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type testServer struct {
	e       *echo.Echo
	metrics *metrics.Metrics
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := fixedClock{now: testNow}

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Search = config.DefaultSearchConfig()
	cfg.Metrics = &config.MetricsConfig{Enabled: true, Path: "/metrics", Namespace: "insurance"}
	cfg.Payment = &config.PaymentConfig{DeclineAbove: "100000"}

	m := metrics.New(metrics.Params{Config: cfg})
	recorder := metrics.NewRecorder(m)

	gateway, err := payment.NewSimulatedGateway(payment.Params{Config: cfg, Clock: clock, Logger: logger})
	require.NoError(t, err)

	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)
	customerRepo := memory.NewCustomerRepository(store)
	policyRepo := memory.NewPolicyRepository(store)

	quoteUC := impl.NewQuoteService(impl.QuoteServiceParams{
		TxManager:    txManager,
		CustomerRepo: customerRepo,
		PolicyRepo:   policyRepo,
		QuoteRepo:    memory.NewQuoteRepository(store),
		HistoryRepo:  memory.NewPolicyHistoryRepository(store),
		Payments:     gateway,
		Publisher:    pubsub.NewNoopPublisher(logger),
		Metrics:      recorder,
		Clock:        clock,
		Logger:       logger,
	})
	customerUC := impl.NewCustomerService(impl.CustomerServiceParams{
		TxManager:    txManager,
		CustomerRepo: customerRepo,
		Metrics:      recorder,
		Clock:        clock,
		Config:       cfg,
		Logger:       logger,
	})
	policyUC := impl.NewPolicyService(impl.PolicyServiceParams{PolicyRepo: policyRepo})

	e := NewEcho(cfg, logger, router.RouterParams{
		CustomerHandler: handler.NewCustomerHandler(handler.CustomerHandlerParams{CustomerUC: customerUC}),
		QuoteHandler:    handler.NewQuoteHandler(handler.QuoteHandlerParams{QuoteUC: quoteUC}),
		PolicyHandler:   handler.NewPolicyHandler(handler.PolicyHandlerParams{PolicyUC: policyUC, QuoteUC: quoteUC}),
		Metrics:         m,
		Config:          cfg,
	})

	return &testServer{e: e, metrics: m}
}

func (s *testServer) do(t *testing.T, method, target string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), env.Meta.RequestID)
	}

	return rec.Code, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(raw, &out))

	return out
}

func (s *testServer) registerCustomer(t *testing.T, email, dob string) handler.CustomerResponse {
	t.Helper()

	code, env := s.do(t, http.MethodPost, "/api/v1/customers", map[string]string{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"dob":        dob,
		"email":      email,
	})
	require.Equal(t, http.StatusCreated, code)

	return decode[handler.CustomerResponse](t, env.Data)
}

type quoteView struct {
	QuoteID    string `json:"quote_id"`
	CustomerID string `json:"customer_id"`
	PolicyID   string `json:"policy_id"`
	Premium    string `json:"premium"`
	Cover      string `json:"cover"`
	Status     string `json:"status"`
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestServer_QuoteLifecycle(t *testing.T) {
	s := newTestServer(t)
	customer := s.registerCustomer(t, "Ada@Example.com", "10-12-1995")
	assert.Equal(t, "ada@example.com", customer.Email)
	assert.Equal(t, "10-12-1995", customer.DOB)

	// Age 28 on the pricing date: 0.8 multiplier.
	code, env := s.do(t, http.MethodPost, "/api/v1/quotes", map[string]string{
		"customer_id": customer.ID.String(),
		"type":        "health-insurance",
	})
	require.Equal(t, http.StatusCreated, code)
	created := decode[quoteView](t, env.Data)
	assert.Equal(t, "400.00", created.Premium)
	assert.Equal(t, "80000.00", created.Cover)
	assert.Equal(t, "NEW", created.Status)

	code, env = s.do(t, http.MethodPost, "/api/v1/quotes/pay", map[string]string{"quote_id": created.QuoteID, "status": "active"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "ILLEGAL_TRANSITION", env.Error.Code)

	code, env = s.do(t, http.MethodPost, "/api/v1/quotes/accept", map[string]string{"quote_id": created.QuoteID, "status": "accepted"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "QUOTED", decode[quoteView](t, env.Data).Status)

	code, env = s.do(t, http.MethodPost, "/api/v1/quotes/pay", map[string]string{"quote_id": created.QuoteID, "status": "active"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "LIVE", decode[quoteView](t, env.Data).Status)

	code, env = s.do(t, http.MethodGet, "/api/v1/policies?customer_id="+customer.ID.String(), nil)
	require.Equal(t, http.StatusOK, code)
	policies := decode[handler.CustomerPoliciesResponse](t, env.Data)
	assert.Equal(t, customer.ID, policies.CustomerInfo.ID)
	require.Len(t, policies.Policies, 1)
	assert.Equal(t, "LIVE", policies.Policies[0].Status.String())
	require.NotNil(t, policies.Policies[0].BuyDate)
	require.NotNil(t, policies.Policies[0].Expiry)
	assert.Equal(t, policies.Policies[0].BuyDate.Add(365*24*time.Hour), *policies.Policies[0].Expiry)

	code, env = s.do(t, http.MethodGet, "/api/v1/policies/"+created.QuoteID, nil)
	require.Equal(t, http.StatusOK, code)
	details := decode[handler.PolicyDetailsResponse](t, env.Data)
	assert.Equal(t, "health-insurance", details.Policy.Type.String())
	assert.Equal(t, "500.00", details.Policy.Premium)
	assert.Equal(t, "400.00", details.Premium)

	code, env = s.do(t, http.MethodGet, "/api/v1/policies/"+created.QuoteID+"/history", nil)
	require.Equal(t, http.StatusOK, code)
	history := decode[handler.PolicyHistoryResponse](t, env.Data)
	statuses := make([]string, 0, len(history.History))
	for _, h := range history.History {
		statuses = append(statuses, h.Status.String())
	}
	assert.Equal(t, []string{"NEW", "QUOTED", "LIVE"}, statuses)
}

func TestServer_TransitionErrors(t *testing.T) {
	s := newTestServer(t)
	customer := s.registerCustomer(t, "ada@example.com", "01-01-1980")
	_, env := s.do(t, http.MethodPost, "/api/v1/quotes", map[string]string{
		"customer_id": customer.ID.String(),
		"type":        "auto-insurance",
	})
	quote := decode[quoteView](t, env.Data)

	tests := []struct {
		name     string
		path     string
		body     map[string]string
		wantCode int
		wantErr  string
	}{
		{
			name:     "wrong token",
			path:     "/api/v1/quotes/accept",
			body:     map[string]string{"quote_id": quote.QuoteID, "status": "active"},
			wantCode: http.StatusBadRequest,
			wantErr:  "INVALID_CONFIRMATION",
		},
		{
			name:     "token checked before lookup",
			path:     "/api/v1/quotes/accept",
			body:     map[string]string{"quote_id": "does-not-exist", "status": "nope"},
			wantCode: http.StatusBadRequest,
			wantErr:  "INVALID_CONFIRMATION",
		},
		{
			name:     "unknown quote",
			path:     "/api/v1/quotes/accept",
			body:     map[string]string{"quote_id": "00000000-0000-0000-0000-000000000001", "status": "accepted"},
			wantCode: http.StatusNotFound,
			wantErr:  "QUOTE_NOT_FOUND",
		},
		{
			name:     "malformed quote id",
			path:     "/api/v1/quotes/pay",
			body:     map[string]string{"quote_id": "abc", "status": "active"},
			wantCode: http.StatusNotFound,
			wantErr:  "QUOTE_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := s.do(t, http.MethodPost, tt.path, tt.body)

			assert.Equal(t, tt.wantCode, code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
		})
	}
}

func TestServer_CreateQuoteErrors(t *testing.T) {
	s := newTestServer(t)
	customer := s.registerCustomer(t, "ada@example.com", "01-01-1980")

	tests := []struct {
		name     string
		body     map[string]string
		wantCode int
		wantErr  string
	}{
		{name: "unknown policy type", body: map[string]string{"customer_id": customer.ID.String(), "type": "pet-insurance"}, wantCode: http.StatusBadRequest, wantErr: "INVALID_CUSTOMER_OR_POLICY"},
		{name: "unknown customer", body: map[string]string{"customer_id": "00000000-0000-0000-0000-000000000001", "type": "auto-insurance"}, wantCode: http.StatusBadRequest, wantErr: "INVALID_CUSTOMER_OR_POLICY"},
		{name: "malformed customer id", body: map[string]string{"customer_id": "42", "type": "auto-insurance"}, wantCode: http.StatusBadRequest, wantErr: "INVALID_CUSTOMER_OR_POLICY"},
		{name: "missing type", body: map[string]string{"customer_id": customer.ID.String()}, wantCode: http.StatusBadRequest, wantErr: "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := s.do(t, http.MethodPost, "/api/v1/quotes", tt.body)

			assert.Equal(t, tt.wantCode, code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
		})
	}
}

func TestServer_RegisterCustomerErrors(t *testing.T) {
	s := newTestServer(t)
	s.registerCustomer(t, "taken@example.com", "01-01-1980")

	tests := []struct {
		name     string
		body     map[string]string
		wantCode int
		wantErr  string
		wantMsg  string
	}{
		{
			name:     "bad date format",
			body:     map[string]string{"first_name": "A", "last_name": "B", "dob": "1980-01-01", "email": "a@example.com"},
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
			wantMsg:  "Invalid date format. Use DD-MM-YYYY.",
		},
		{
			name:     "future date of birth",
			body:     map[string]string{"first_name": "A", "last_name": "B", "dob": "02-05-2024", "email": "a@example.com"},
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
			wantMsg:  "Date of birth cannot be in the future.",
		},
		{
			name:     "duplicate email ignores case",
			body:     map[string]string{"first_name": "A", "last_name": "B", "dob": "01-01-1980", "email": "TAKEN@example.com"},
			wantCode: http.StatusConflict,
			wantErr:  "CUSTOMER_ALREADY_EXISTS",
			wantMsg:  "Email already exists.",
		},
		{
			name:     "invalid email",
			body:     map[string]string{"first_name": "A", "last_name": "B", "dob": "01-01-1980", "email": "not-an-email"},
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
			wantMsg:  "Input validation failed.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := s.do(t, http.MethodPost, "/api/v1/customers", tt.body)

			assert.Equal(t, tt.wantCode, code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
			assert.Equal(t, tt.wantMsg, env.Error.Message)
		})
	}
}

func TestServer_RegisterCustomer_ValidationDetails(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(t, http.MethodPost, "/api/v1/customers", map[string]string{"first_name": "A", "dob": "01-01-1980"})

	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, env.Error)
	assert.JSONEq(t, `[{"field":"last_name","rule":"required"},{"field":"email","rule":"required"}]`, string(env.Error.Details))
}

func TestServer_SearchCustomers(t *testing.T) {
	s := newTestServer(t)
	s.registerCustomer(t, "ada@example.com", "01-01-1980")

	code, env := s.do(t, http.MethodGet, "/api/v1/customers/search?q=LOVE", nil)
	require.Equal(t, http.StatusOK, code)
	found := decode[[]handler.CustomerResponse](t, env.Data)
	require.Len(t, found, 1)
	assert.Equal(t, "ada@example.com", found[0].Email)

	code, env = s.do(t, http.MethodGet, "/api/v1/customers/search?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestServer_ReadErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name     string
		target   string
		wantCode int
		wantErr  string
	}{
		{name: "missing customer id", target: "/api/v1/policies", wantCode: http.StatusBadRequest, wantErr: "VALIDATION_FAILED"},
		{name: "unknown customer", target: "/api/v1/policies?customer_id=00000000-0000-0000-0000-000000000001", wantCode: http.StatusNotFound, wantErr: "CUSTOMER_NOT_FOUND"},
		{name: "unknown quote", target: "/api/v1/policies/00000000-0000-0000-0000-000000000001", wantCode: http.StatusNotFound, wantErr: "QUOTE_NOT_FOUND"},
		{name: "unknown quote history", target: "/api/v1/policies/not-a-uuid/history", wantCode: http.StatusNotFound, wantErr: "QUOTE_NOT_FOUND"},
		{name: "unknown route", target: "/api/v1/nothing", wantCode: http.StatusNotFound, wantErr: "HTTP_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := s.do(t, http.MethodGet, tt.target, nil)

			assert.Equal(t, tt.wantCode, code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
		})
	}
}

func TestServer_Catalog(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(t, http.MethodGet, "/api/v1/catalog", nil)
	require.Equal(t, http.StatusOK, code)

	catalog := decode[[]handler.CatalogPolicyResponse](t, env.Data)
	require.Len(t, catalog, 5)
	assert.Equal(t, "auto-insurance", catalog[0].Type.String())
	assert.Equal(t, "450.00", catalog[0].Premium)
}

func TestServer_MetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	customer := s.registerCustomer(t, "ada@example.com", "01-01-1980")
	s.do(t, http.MethodPost, "/api/v1/quotes", map[string]string{"customer_id": customer.ID.String(), "type": "life-insurance"})

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `insurance_quotes_created_total{policy_type="life-insurance"} 1`)
	assert.Contains(t, body, `insurance_customers_registered_total 1`)
	assert.Contains(t, body, `insurance_http_requests_total{method="POST",path="/api/v1/quotes",status="201"} 1`)
	assert.NotContains(t, body, `path="/metrics"`)
}
