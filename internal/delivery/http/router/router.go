// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"mahalla/internal/delivery/http/middleware"
	"mahalla/internal/delivery/http/router/handler"
	"mahalla/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PageHandler    *handler.PageHandler
	APIHandler     *handler.APIHandler
	AuthMiddleware *middleware.AuthMiddleware
	CSRFMiddleware *middleware.CSRFMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	pageHandler    *handler.PageHandler
	apiHandler     *handler.APIHandler
	authMiddleware *middleware.AuthMiddleware
	csrfMiddleware *middleware.CSRFMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pageHandler:    params.PageHandler,
		apiHandler:     params.APIHandler,
		authMiddleware: params.AuthMiddleware,
		csrfMiddleware: params.CSRFMiddleware,
	}
}

// RegisterRoutes sets up the emergency pages and the JSON API.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/emergency")
	})

	// Server-rendered pages: session cookie or bearer token, CSRF-protected forms
	pages := e.Group("/emergency")
	pages.Use(r.authMiddleware.Authenticate)
	pages.Use(r.authMiddleware.RequirePermission(entity.PermissionEmergency))
	pages.Use(r.csrfMiddleware.Handle())
	{
		pages.GET("", r.pageHandler.Index)
		pages.GET("/quick/:type", r.pageHandler.QuickForm)
		pages.POST("/quick/:type", r.pageHandler.SendQuick)
		pages.GET("/custom", r.pageHandler.CustomForm)
		pages.POST("/custom", r.pageHandler.SendCustom)
		pages.GET("/history", r.pageHandler.History)
		pages.GET("/stats", r.pageHandler.Stats)
		pages.GET("/counter", r.pageHandler.Counter)
	}

	// API v1 routes require a bearer token
	apiV1 := e.Group("/api/v1/emergency")
	apiV1.Use(r.authMiddleware.AuthenticateBearer)
	apiV1.Use(r.authMiddleware.RequirePermission(entity.PermissionEmergency))
	{
		apiV1.GET("/recipients", r.apiHandler.Recipients)
		apiV1.GET("/counter", r.apiHandler.Counter)
		apiV1.POST("/broadcasts", r.apiHandler.SendBroadcast)
		apiV1.GET("/broadcasts", r.apiHandler.ListBroadcasts)
		apiV1.GET("/broadcasts/recent", r.apiHandler.RecentBroadcasts)
		apiV1.GET("/statistics", r.apiHandler.Statistics)
	}
}
