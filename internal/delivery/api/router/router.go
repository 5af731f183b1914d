// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"insurance/config"
	"insurance/internal/delivery/api/router/handler"
	"insurance/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CustomerHandler *handler.CustomerHandler
	QuoteHandler    *handler.QuoteHandler
	PolicyHandler   *handler.PolicyHandler
	Metrics         *metrics.Metrics
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler *handler.CustomerHandler
	quoteHandler    *handler.QuoteHandler
	policyHandler   *handler.PolicyHandler
	metrics         *metrics.Metrics
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler: params.CustomerHandler,
		quoteHandler:    params.QuoteHandler,
		policyHandler:   params.PolicyHandler,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	customersGroup := apiV1.Group("/customers")
	{
		customersGroup.POST("", r.customerHandler.RegisterCustomer)
		customersGroup.GET("/search", r.customerHandler.SearchCustomers)
	}

	apiV1.GET("/catalog", r.policyHandler.ListCatalog)

	quotesGroup := apiV1.Group("/quotes")
	{
		quotesGroup.POST("", r.quoteHandler.CreateQuote)
		quotesGroup.POST("/accept", r.quoteHandler.AcceptQuote)
		quotesGroup.POST("/pay", r.quoteHandler.PayQuote)
	}

	policiesGroup := apiV1.Group("/policies")
	{
		policiesGroup.GET("", r.policyHandler.ListCustomerPolicies)
		policiesGroup.GET("/:quote_id", r.policyHandler.GetPolicy)
		policiesGroup.GET("/:quote_id/history", r.policyHandler.GetPolicyHistory)
	}
}

// RegisterMetricsRoute exposes the Prometheus registry when enabled in config.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.metrics == nil || r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
}
