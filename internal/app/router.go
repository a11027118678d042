package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/raphaestudos2/locadoradestino/internal/handler"
	"github.com/raphaestudos2/locadoradestino/internal/middleware"
	"github.com/raphaestudos2/locadoradestino/internal/service"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	AuthHandler        *handler.AuthHandler
	VehicleHandler     *handler.VehicleHandler
	CustomerHandler    *handler.CustomerHandler
	RentalHandler      *handler.RentalHandler
	PaymentHandler     *handler.PaymentHandler
	LocationHandler    *handler.LocationHandler
	DashboardHandler   *handler.DashboardHandler
	ReservationHandler *handler.ReservationHandler
	AuthService        *service.AuthService
	NewRelicApp        *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered. The public
// reservation flow and login are open; everything else sits behind the
// operator session middleware.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")

	// Public routes.
	v1.POST("/auth/login", deps.AuthHandler.Login)
	reservations := v1.Group("/reservations")
	{
		reservations.GET("/vehicles", deps.ReservationHandler.ListVehicles)
		reservations.GET("/locations", deps.ReservationHandler.ListLocations)
		reservations.POST("", deps.ReservationHandler.Create)
	}

	// Back-office routes.
	admin := v1.Group("")
	admin.Use(middleware.AuthMiddleware(deps.AuthService))
	{
		vehicles := admin.Group("/vehicles")
		{
			vehicles.GET("", deps.VehicleHandler.GetAll)
			vehicles.POST("", deps.VehicleHandler.Create)
			vehicles.GET("/:id", deps.VehicleHandler.Get)
			vehicles.PATCH("/:id", deps.VehicleHandler.Update)
			vehicles.DELETE("/:id", deps.VehicleHandler.Delete)
		}

		customers := admin.Group("/customers")
		{
			customers.GET("", deps.CustomerHandler.GetAll)
			customers.POST("", deps.CustomerHandler.Create)
			customers.GET("/:id", deps.CustomerHandler.Get)
			customers.PATCH("/:id", deps.CustomerHandler.Update)
			customers.DELETE("/:id", deps.CustomerHandler.Delete)
		}

		rentals := admin.Group("/rentals")
		{
			rentals.GET("", deps.RentalHandler.GetAll)
			rentals.POST("", deps.RentalHandler.Create)
			rentals.GET("/export", deps.RentalHandler.Export)
			rentals.GET("/:id", deps.RentalHandler.Get)
			rentals.PATCH("/:id", deps.RentalHandler.Update)
			rentals.DELETE("/:id", deps.RentalHandler.Delete)
			rentals.PUT("/:id/status", deps.RentalHandler.UpdateStatus)
			rentals.PUT("/:id/payment-status", deps.RentalHandler.UpdatePaymentStatus)
			rentals.GET("/:id/payments", deps.PaymentHandler.GetByRental)
		}

		payments := admin.Group("/payments")
		{
			payments.GET("", deps.PaymentHandler.GetAll)
			payments.POST("", deps.PaymentHandler.Create)
			payments.GET("/export", deps.PaymentHandler.Export)
			payments.GET("/:id", deps.PaymentHandler.Get)
			payments.PATCH("/:id", deps.PaymentHandler.Update)
			payments.DELETE("/:id", deps.PaymentHandler.Delete)
		}

		locations := admin.Group("/locations")
		{
			locations.GET("", deps.LocationHandler.GetAll)
			locations.POST("", deps.LocationHandler.Create)
			locations.GET("/:id", deps.LocationHandler.Get)
			locations.PATCH("/:id", deps.LocationHandler.Update)
			locations.DELETE("/:id", deps.LocationHandler.Delete)
		}

		admin.GET("/dashboard", deps.DashboardHandler.GetStats)
		admin.GET("/finance/summary", deps.DashboardHandler.GetFinancialSummary)
		admin.GET("/notifications", deps.DashboardHandler.GetNotifications)
	}

	return router
}
