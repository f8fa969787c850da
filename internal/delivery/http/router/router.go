// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"catalog/internal/delivery/http/middleware"
	"catalog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	OAuthHandler   *handler.OAuthHandler
	ItemHandler    *handler.ItemHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	oauthHandler   *handler.OAuthHandler
	itemHandler    *handler.ItemHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		oauthHandler:   params.OAuthHandler,
		itemHandler:    params.ItemHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Liveness endpoints
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)

		authGroup.PUT("/email", r.authHandler.ChangeEmail, r.authMiddleware.Authenticate)
		authGroup.PUT("/password", r.authHandler.ChangePassword, r.authMiddleware.Authenticate)
		authGroup.DELETE("/account", r.authHandler.DeleteAccount, r.authMiddleware.Authenticate)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Google sign-in routes
	oauthGroup := e.Group("/oauth")
	{
		oauthGroup.GET("/google", r.oauthHandler.GoogleLogin)
		oauthGroup.GET("/google/callback", r.oauthHandler.GoogleCallback)
		oauthGroup.GET("/google/fail", r.oauthHandler.GoogleFail)
	}

	// Item routes: reads are public, mutations require authentication
	itemGroup := e.Group("/items")
	{
		itemGroup.GET("", r.itemHandler.List)
		itemGroup.GET("/:id", r.itemHandler.Get)

		itemGroup.POST("", r.itemHandler.Create, r.authMiddleware.Authenticate)
		itemGroup.PUT("/:id", r.itemHandler.Replace, r.authMiddleware.Authenticate)
		itemGroup.DELETE("/:id", r.itemHandler.Delete, r.authMiddleware.Authenticate)
	}
}
