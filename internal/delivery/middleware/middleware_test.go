package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"insurance/config"
	deliverycontext "insurance/internal/delivery/context"
	domainerrors "insurance/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method string
	path   string
	status int
}

type recordingObserver struct {
	observations []observation
}

func (r *recordingObserver) ObserveHTTPRequest(method, path string, status int, _ time.Duration) {
	r.observations = append(r.observations, observation{method: method, path: path, status: status})
}

func newContext(e *echo.Echo, method, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestResponseStatus(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "app error", err: domainerrors.ErrQuoteNotFound.WrapMessage("failed to accept quote"), want: http.StatusNotFound},
		{name: "echo error", err: echo.ErrMethodNotAllowed, want: http.StatusMethodNotAllowed},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "no error", err: nil, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(e, http.MethodGet, "/")
			assert.Equal(t, tt.want, ResponseStatus(c, tt.err))
		})
	}
}

func TestResponseStatus_ServedWithoutBody(t *testing.T) {
	e := echo.New()
	var got int
	e.GET("/noop", func(c echo.Context) error {
		got = ResponseStatus(c, nil)

		return nil
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/noop", nil))

	assert.Equal(t, http.StatusOK, got)
}

func TestResponseStatus_CommittedResponseWins(t *testing.T) {
	e := echo.New()
	c, _ := newContext(e, http.MethodGet, "/")
	require.NoError(t, c.NoContent(http.StatusAccepted))

	assert.Equal(t, http.StatusAccepted, ResponseStatus(c, errors.New("late failure")))
}

func TestMetricsMiddleware_RecordsRouteTemplate(t *testing.T) {
	observer := &recordingObserver{}
	e := echo.New()
	e.Use(NewMetricsMiddleware(observer, "/metrics").Handle)
	e.GET("/api/v1/policies/:quote_id", func(c echo.Context) error {
		return domainerrors.ErrQuoteNotFound
	})
	e.GET("/metrics", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for _, target := range []string{"/api/v1/policies/a", "/api/v1/policies/b", "/metrics"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	require.Len(t, observer.observations, 2)
	for _, o := range observer.observations {
		assert.Equal(t, observation{method: http.MethodGet, path: "/api/v1/policies/:quote_id", status: http.StatusNotFound}, o)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantEcho bool
	}{
		{name: "client id is kept", header: "req-123", wantEcho: true},
		{name: "missing id is generated", header: "", wantEcho: false},
		{name: "id with spaces is replaced", header: "bad id", wantEcho: false},
		{name: "overlong id is replaced", header: strings.Repeat("x", maxRequestIDLength+1), wantEcho: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			e := echo.New()
			e.Use(NewRequestIDMiddleware(logger).Process)

			var fromCtx string
			e.GET("/", func(c echo.Context) error {
				fromCtx = deliverycontext.RequestIDFrom(c.Request().Context())
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("handled")

				return c.NoContent(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, got)
			assert.Equal(t, got, fromCtx)
			if tt.wantEcho {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, got, entry["request_id"])
		})
	}
}

func TestLoggerMiddleware_LevelFollowsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.POST("/api/v1/quotes/accept", func(c echo.Context) error {
		return domainerrors.ErrIllegalTransition.WrapMessage("failed to accept quote")
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/quotes/accept", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, float64(http.StatusBadRequest), entry["status"])
	assert.Equal(t, "/api/v1/quotes/accept", entry["route"])
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, &config.Config{}).Handle)
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Empty(t, buf.String())
}
