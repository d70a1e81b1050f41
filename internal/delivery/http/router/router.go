// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"evalert/internal/delivery/http/middleware"
	"evalert/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BroadcastHandler    *handler.BroadcastHandler
	DeviceHandler       *handler.DeviceHandler
	BetHandler          *handler.BetHandler
	OpportunityHandler  *handler.OpportunityHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	broadcastHandler    *handler.BroadcastHandler
	deviceHandler       *handler.DeviceHandler
	betHandler          *handler.BetHandler
	opportunityHandler  *handler.OpportunityHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		broadcastHandler:    params.BroadcastHandler,
		deviceHandler:       params.DeviceHandler,
		betHandler:          params.BetHandler,
		opportunityHandler:  params.OpportunityHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Unauthenticated test endpoints, throttled per client IP
	api.POST("/ping", r.deviceHandler.Ping, r.rateLimitMiddleware.Limit)
	api.POST("/validate-token", r.deviceHandler.ValidateToken, r.rateLimitMiddleware.Limit)

	// Admin broadcast endpoints
	adminGroup := api.Group("")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.POST("/notify-all", r.broadcastHandler.NotifyAll)
		adminGroup.GET("/broadcasts", r.broadcastHandler.History)
	}

	// Authenticated user endpoints
	userGroup := api.Group("")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.POST("/devices", r.deviceHandler.RegisterToken)
		userGroup.GET("/bets", r.betHandler.ListBets)
		userGroup.POST("/bets/:id/star", r.betHandler.Star)
		userGroup.DELETE("/bets/:id/star", r.betHandler.Unstar)
		userGroup.GET("/opportunities", r.opportunityHandler.ListOpen)
	}
}
