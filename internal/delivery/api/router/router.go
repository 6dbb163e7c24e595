// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"market/internal/delivery/api/middleware"
	"market/internal/delivery/api/router/handler"
	"market/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	OfferHandler         *handler.OfferHandler
	CatalogHandler       *handler.CatalogHandler
	AuthorizationHandler *handler.AuthorizationHandler
	AlertHandler         *handler.AlertHandler
	UserHandler          *handler.UserHandler
	WeekHandler          *handler.WeekHandler
	LiveHandler          *handler.LiveHandler
	HealthHandler        *handler.HealthHandler
	AuthMiddleware       *middleware.AuthMiddleware
	Gatherer             prometheus.Gatherer
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler          *handler.AuthHandler
	offerHandler         *handler.OfferHandler
	catalogHandler       *handler.CatalogHandler
	authorizationHandler *handler.AuthorizationHandler
	alertHandler         *handler.AlertHandler
	userHandler          *handler.UserHandler
	weekHandler          *handler.WeekHandler
	liveHandler          *handler.LiveHandler
	healthHandler        *handler.HealthHandler
	authMiddleware       *middleware.AuthMiddleware
	gatherer             prometheus.Gatherer
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:          params.AuthHandler,
		offerHandler:         params.OfferHandler,
		catalogHandler:       params.CatalogHandler,
		authorizationHandler: params.AuthorizationHandler,
		alertHandler:         params.AlertHandler,
		userHandler:          params.UserHandler,
		weekHandler:          params.WeekHandler,
		liveHandler:          params.LiveHandler,
		healthHandler:        params.HealthHandler,
		authMiddleware:       params.AuthMiddleware,
		gatherer:             params.Gatherer,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))

	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)
	producerOrAdmin := r.authMiddleware.RequireRole(entity.RoleProducer, entity.RoleAdmin)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/session", r.authHandler.OpenSession, r.authMiddleware.Authenticate)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	weeksGroup := apiV1.Group("/weeks")
	{
		weeksGroup.GET("/current", r.weekHandler.CurrentWeek)
		weeksGroup.GET("/:year/:week", r.weekHandler.WeekDates)
	}

	offersGroup := apiV1.Group("/offers")
	{
		offersGroup.GET("", r.offerHandler.ListOffers)
		offersGroup.POST("", r.offerHandler.SubmitOffer, producerOrAdmin)
		offersGroup.POST("/scan", r.offerHandler.ScanOffer)
		offersGroup.GET("/:id", r.offerHandler.GetOffer)
		offersGroup.PATCH("/:id", r.offerHandler.UpdateOffer, producerOrAdmin)
		offersGroup.DELETE("/:id", r.offerHandler.DeleteOffer, producerOrAdmin)
		offersGroup.GET("/:id/qr", r.offerHandler.OfferQRCode)
		offersGroup.PUT("/:id/status", r.offerHandler.UpdateOfferStatus, adminOnly)
		offersGroup.PUT("/:id/allocations", r.offerHandler.UpdateDeliveryAllocations, adminOnly)
	}

	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.catalogHandler.ListProducts)
		productsGroup.GET("/:id", r.catalogHandler.GetProduct)
		productsGroup.POST("", r.catalogHandler.CreateProduct, adminOnly)
		productsGroup.PUT("/:id", r.catalogHandler.UpdateProduct, adminOnly)
		productsGroup.DELETE("/:id", r.catalogHandler.DeleteProduct, adminOnly)
	}

	authorizationsGroup := apiV1.Group("/authorizations")
	{
		authorizationsGroup.GET("", r.authorizationHandler.ListAuthorizations)
		authorizationsGroup.GET("/products", r.authorizationHandler.AuthorizedProducts)
		authorizationsGroup.POST("", r.authorizationHandler.Grant, adminOnly)
		authorizationsGroup.DELETE("/:userId/:productId", r.authorizationHandler.Revoke, adminOnly)
	}

	alertsGroup := apiV1.Group("/alerts")
	{
		alertsGroup.GET("", r.alertHandler.ListAlerts)
		alertsGroup.POST("", r.alertHandler.CreateAlert, adminOnly)
		alertsGroup.POST("/check", r.alertHandler.CheckCertificates, adminOnly)
		alertsGroup.PUT("/:id/status", r.alertHandler.UpdateAlertStatus, adminOnly)
		alertsGroup.DELETE("/:id", r.alertHandler.DeleteAlert, adminOnly)
	}

	newsGroup := apiV1.Group("/news")
	{
		newsGroup.GET("", r.catalogHandler.ListNews)
		newsGroup.POST("", r.catalogHandler.CreateNews, adminOnly)
		newsGroup.PATCH("/:id", r.catalogHandler.UpdateNews, adminOnly)
		newsGroup.DELETE("/:id", r.catalogHandler.DeleteNews, adminOnly)
	}

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.GET("/me", r.userHandler.GetMe)
		usersGroup.PUT("/me", r.userHandler.UpdateMe)
		usersGroup.GET("", r.userHandler.ListUsers, adminOnly)
		usersGroup.GET("/:id", r.userHandler.GetUser, adminOnly)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser, adminOnly)
	}

	apiV1.GET("/producers/nearby", r.userHandler.NearbyProducers,
		r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleSupermarket))

	apiV1.GET("/live/:collection", r.liveHandler.Snapshot, adminOnly)
}
