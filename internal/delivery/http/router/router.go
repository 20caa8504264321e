// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"breadmap/internal/delivery/http/middleware"
	"breadmap/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	BakeryHandler    *handler.BakeryHandler
	ReviewHandler    *handler.ReviewHandler
	FavoriteHandler  *handler.FavoriteHandler
	ChallengeHandler *handler.ChallengeHandler
	BadgeHandler     *handler.BadgeHandler
	DeviceHandler    *handler.DeviceHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	bakeryHandler    *handler.BakeryHandler
	reviewHandler    *handler.ReviewHandler
	favoriteHandler  *handler.FavoriteHandler
	challengeHandler *handler.ChallengeHandler
	badgeHandler     *handler.BadgeHandler
	deviceHandler    *handler.DeviceHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		bakeryHandler:    params.BakeryHandler,
		reviewHandler:    params.ReviewHandler,
		favoriteHandler:  params.FavoriteHandler,
		challengeHandler: params.ChallengeHandler,
		badgeHandler:     params.BadgeHandler,
		deviceHandler:    params.DeviceHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Bakery routes. Browsing is public, writes require authentication.
	bakeryGroup := e.Group("/bakeries")
	{
		bakeryGroup.GET("", r.bakeryHandler.ListBakeries)
		bakeryGroup.GET("/check-duplicate", r.bakeryHandler.CheckDuplicate)
		bakeryGroup.GET("/:id", r.bakeryHandler.GetBakery)
		bakeryGroup.GET("/:id/reviews", r.reviewHandler.ListByBakery)
		bakeryGroup.POST("", r.bakeryHandler.CreateBakery, r.authMiddleware.Authenticate)
		bakeryGroup.POST("/:id/reviews", r.reviewHandler.Create, r.authMiddleware.Authenticate)
		bakeryGroup.POST("/:id/favorite", r.favoriteHandler.Add, r.authMiddleware.Authenticate)
		bakeryGroup.DELETE("/:id/favorite", r.favoriteHandler.Remove, r.authMiddleware.Authenticate)
	}

	e.GET("/themes", r.bakeryHandler.ListThemes)

	// Favorites share routes. The shared view is public, copying it into a
	// challenge requires an account.
	favoriteShareGroup := e.Group("/favorites/shared")
	{
		favoriteShareGroup.GET("/:token", r.favoriteHandler.GetShared)
		favoriteShareGroup.POST("/:token/to-challenge", r.favoriteHandler.ToChallenge, r.authMiddleware.Authenticate)
	}

	// Badge catalog is public, earned badges are per user.
	e.GET("/badges", r.badgeHandler.ListCatalog)

	// Challenge routes. The shared view and the weekly feed are public.
	challengeGroup := e.Group("/challenges")
	{
		challengeGroup.GET("/recommendations", r.challengeHandler.Recommendations)
		challengeGroup.GET("/shared/:token", r.challengeHandler.GetShared)

		authed := challengeGroup.Group("", r.authMiddleware.Authenticate)
		authed.GET("", r.challengeHandler.List)
		authed.POST("", r.challengeHandler.Create)
		authed.GET("/:id", r.challengeHandler.Get)
		authed.PUT("/:id", r.challengeHandler.Update)
		authed.DELETE("/:id", r.challengeHandler.Delete)
		authed.POST("/:id/bakeries", r.challengeHandler.AddBakeries)
		authed.DELETE("/:id/bakeries/:itemId", r.challengeHandler.RemoveBakery)
		authed.PATCH("/:id/bakeries/:itemId/visit", r.challengeHandler.ToggleVisit)
		authed.POST("/:id/share", r.challengeHandler.ShareQR)
	}

	// User routes that require authentication
	userGroup := e.Group("/users/me")
	userGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		userGroup.GET("", r.userHandler.GetProfile)
		userGroup.PUT("", r.userHandler.UpdateProfile)
		userGroup.GET("/stats", r.userHandler.GetProfileStats)
		userGroup.GET("/activities", r.userHandler.GetActivities)
		userGroup.GET("/reviews", r.reviewHandler.ListMine)
		userGroup.PATCH("/reviews/:id", r.reviewHandler.Update)
		userGroup.DELETE("/reviews/:id", r.reviewHandler.Delete)
		userGroup.GET("/favorites", r.favoriteHandler.List)
		userGroup.POST("/favorites/share", r.favoriteHandler.Share)
		userGroup.DELETE("/favorites/share", r.favoriteHandler.Unshare)
		userGroup.GET("/badges", r.badgeHandler.ListEarned)
		userGroup.POST("/badges/recheck", r.badgeHandler.Recheck)
		userGroup.POST("/devices", r.deviceHandler.Register)
		userGroup.DELETE("/devices/:id", r.deviceHandler.Remove)
	}
}
