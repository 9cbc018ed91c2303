// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pricing/internal/delivery/api/middleware"
	"pricing/internal/delivery/api/router/handler"
	"pricing/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RuleHandler    *handler.RuleHandler
	ProductHandler *handler.ProductHandler
	PricingHandler *handler.PricingHandler
	TaxHandler     *handler.TaxHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	ruleHandler    *handler.RuleHandler
	productHandler *handler.ProductHandler
	pricingHandler *handler.PricingHandler
	taxHandler     *handler.TaxHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		ruleHandler:    params.RuleHandler,
		productHandler: params.ProductHandler,
		pricingHandler: params.PricingHandler,
		taxHandler:     params.TaxHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	requireAdmin := r.authMiddleware.RequireRole(entity.RolePricingAdmin)

	// Pricing rule management
	rulesGroup := apiV1.Group("/rules")
	{
		rulesGroup.GET("", r.ruleHandler.ListRules)
		rulesGroup.POST("", r.ruleHandler.CreateRule, requireAdmin)
		rulesGroup.PATCH("/:id/active", r.ruleHandler.SetRuleActive, requireAdmin)
	}

	// Catalog reads
	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
	}

	// Price calculator and catalog repricing
	pricingGroup := apiV1.Group("/pricing")
	{
		pricingGroup.POST("/simulate", r.pricingHandler.Simulate)
		pricingGroup.GET("/logs", r.pricingHandler.ListRecentChanges)

		pricingGroup.POST("/apply", r.pricingHandler.ApplyRules, requireAdmin)
		pricingGroup.POST("/bulk-adjust", r.pricingHandler.BulkAdjust, requireAdmin)
		pricingGroup.POST("/psychological", r.pricingHandler.ApplyPsychologicalPricing, requireAdmin)
	}

	// Tax configuration and overlay calculator
	taxGroup := apiV1.Group("/tax-config")
	{
		taxGroup.GET("", r.taxHandler.GetConfiguration)
		taxGroup.PUT("", r.taxHandler.SaveConfiguration, requireAdmin)
		taxGroup.POST("/overlay", r.taxHandler.Overlay)
	}
}
