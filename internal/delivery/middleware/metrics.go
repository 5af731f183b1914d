package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

// HTTPObserver receives one observation per served request.
type HTTPObserver interface {
	ObserveHTTPRequest(method, path string, status int, elapsed time.Duration)
}

// MetricsMiddleware records request counts and latencies by route template.
type MetricsMiddleware struct {
	observer HTTPObserver
	skip     map[string]struct{}
}

// NewMetricsMiddleware creates a metrics middleware. Requests to skipPaths
// (typically the scrape endpoint itself) are not observed.
func NewMetricsMiddleware(observer HTTPObserver, skipPaths ...string) *MetricsMiddleware {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return &MetricsMiddleware{
		observer: observer,
		skip:     skip,
	}
}

// Handle observes the wrapped handler.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		// Label by route template, never the raw URL path.
		path := c.Path()
		if path == "" {
			path = unmatchedRoute
		}
		if _, ok := m.skip[path]; ok {
			return err
		}

		m.observer.ObserveHTTPRequest(c.Request().Method, path, ResponseStatus(c, err), time.Since(start))

		return err
	}
}
