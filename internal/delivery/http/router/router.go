// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/alfredtoussaint-cpu/dealshaq/internal/delivery/http/middleware"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/delivery/http/router/handler"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	ConsumerHandler     *handler.ConsumerHandler
	RosterHandler       *handler.RosterHandler
	FavoriteHandler     *handler.FavoriteHandler
	DealHandler         *handler.DealHandler
	NotificationHandler *handler.NotificationHandler
	RetailerHandler     *handler.RetailerHandler
	CategoryHandler     *handler.CategoryHandler
	WSHandler           *handler.WSHandler
	AuthMiddleware      *middleware.AuthMiddleware
	InternalAuth        *middleware.InternalAuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Fixed taxonomy, public so clients can render pickers before login
	e.GET("/categories", p.CategoryHandler.ListCategories)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/consumer", p.UserHandler.RegisterConsumer)
		authGroup.POST("/register/retailer", p.UserHandler.RegisterRetailer)
		authGroup.POST("/login", p.UserHandler.Login)
	}

	// Live notification socket; auth rides in a query param because
	// browsers cannot set headers on the WebSocket handshake.
	e.GET("/ws", p.WSHandler.Serve)

	// Consumer routes that require authentication and the consumer role
	consumerGroup := e.Group("/consumer")
	consumerGroup.Use(p.AuthMiddleware.Authenticate)
	consumerGroup.Use(p.AuthMiddleware.RequireRole(entity.RoleConsumer))
	{
		consumerGroup.GET("/profile", p.ConsumerHandler.GetProfile)
		consumerGroup.DELETE("/profile", p.ConsumerHandler.Deactivate)
		consumerGroup.PUT("/location", p.ConsumerHandler.SetDeliveryLocation)
		consumerGroup.PUT("/radius", p.ConsumerHandler.SetRadius)
		consumerGroup.PUT("/auto-favorite-threshold", p.ConsumerHandler.SetAutoFavoriteThreshold)

		consumerGroup.GET("/roster", p.RosterHandler.ListRoster)
		consumerGroup.POST("/roster/:retailerID", p.RosterHandler.AddRetailer)
		consumerGroup.DELETE("/roster/:retailerID", p.RosterHandler.RemoveRetailer)

		consumerGroup.GET("/favorites", p.FavoriteHandler.ListFavorites)
		consumerGroup.POST("/favorites", p.FavoriteHandler.AddFavorite)
		consumerGroup.DELETE("/favorites", p.FavoriteHandler.RemoveFavorite)

		consumerGroup.GET("/notifications", p.NotificationHandler.ListNotifications)
		consumerGroup.POST("/notifications/:notificationID/read", p.NotificationHandler.MarkRead)

		consumerGroup.POST("/deals/:dealID/claim", p.DealHandler.ClaimDeal)
	}

	// Retailer routes that require authentication and the retailer role
	retailerGroup := e.Group("/retailer")
	retailerGroup.Use(p.AuthMiddleware.Authenticate)
	retailerGroup.Use(p.AuthMiddleware.RequireRole(entity.RoleRetailer))
	{
		retailerGroup.GET("/profile", p.RetailerHandler.GetProfile)
		retailerGroup.PUT("/profile", p.RetailerHandler.UpdateProfile)
		retailerGroup.GET("/readiness", p.RetailerHandler.Readiness)
		retailerGroup.POST("/go-live", p.RetailerHandler.RequestGoLive)

		retailerGroup.POST("/deals", p.DealHandler.PostDeal)
		retailerGroup.GET("/deals", p.DealHandler.ListDeals)
		retailerGroup.DELETE("/deals/:dealID", p.DealHandler.RemoveDeal)
	}

	// Admin routes for store lifecycle and deal moderation
	adminGroup := e.Group("/admin")
	adminGroup.Use(p.AuthMiddleware.Authenticate)
	adminGroup.Use(p.AuthMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.PUT("/stores/:retailerID/status", p.RetailerHandler.UpdateStoreStatus)
		adminGroup.DELETE("/deals/:dealID", p.DealHandler.AdminRemoveDeal)
	}

	// Purchase event ingestion from the order pipeline, gated by the
	// shared internal secret rather than end-user credentials
	internalGroup := e.Group("/internal")
	internalGroup.Use(p.InternalAuth.RequireToken)
	{
		internalGroup.POST("/purchase-events", p.FavoriteHandler.RecordPurchase)
	}
}
