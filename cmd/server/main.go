package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/raphaestudos2/locadoradestino/internal/app"
	"github.com/raphaestudos2/locadoradestino/internal/config"
	"github.com/raphaestudos2/locadoradestino/internal/domain"
	"github.com/raphaestudos2/locadoradestino/internal/fallback"
	"github.com/raphaestudos2/locadoradestino/internal/handler"
	"github.com/raphaestudos2/locadoradestino/internal/repository"
	"github.com/raphaestudos2/locadoradestino/internal/repository/postgres"
	"github.com/raphaestudos2/locadoradestino/internal/seed"
	"github.com/raphaestudos2/locadoradestino/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	logger, err := config.InitLogging(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			zap.S().Warnw("failed to initialize New Relic", "error", err)
		} else {
			zap.S().Infow("New Relic enabled", "app", cfg.NewRelic.AppName)
		}
	}

	// Open the optional remote backend. db is nil in local-only mode.
	db := app.NewDatabase(ctx, cfg.Database, nrApp)
	if db != nil {
		defer db.Close()
	}

	// The fallback store is required: it carries every entity in local-only
	// mode and mirrors the remote otherwise.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		zap.S().Fatalw("failed to connect to redis", "error", err)
	}
	defer redisClient.Close()
	zap.S().Infow("connected to fallback store", "addr", cfg.Redis.Addr)

	// Wire dependencies.
	server := wireServer(ctx, db, redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		zap.S().Infow("starting server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.S().Fatalw("server error", "error", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.S().Infow("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zap.S().Fatalw("server forced to shutdown", "error", err)
	}

	zap.S().Infow("server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(ctx context.Context, db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Fallback namespaces, one typed collection per entity.
	store := fallback.NewStore(redisClient)
	vehicleFallback := fallback.NewCollection(store, fallback.KeyVehicles, func(v *domain.Vehicle) string { return v.ID })

	// First boot: preload the demo fleet into the fallback so local-only mode
	// starts with a browsable catalog.
	if !store.SetupComplete(ctx) {
		if err := vehicleFallback.ReplaceAll(ctx, seed.Vehicles()); err != nil {
			zap.S().Warnw("failed to preload seed catalog", "error", err)
		} else if err := store.MarkSetupComplete(ctx); err != nil {
			zap.S().Warnw("failed to record setup flag", "error", err)
		}
	}

	customerFallback := fallback.NewCollection(store, fallback.KeyCustomers, func(c *domain.Customer) string { return c.ID })
	rentalFallback := fallback.NewCollection(store, fallback.KeyRentals, func(r *domain.Rental) string { return r.ID })
	paymentFallback := fallback.NewCollection(store, fallback.KeyPayments, func(p *domain.Payment) string { return p.ID })
	locationFallback := fallback.NewCollection(store, fallback.KeyLocations, func(l *domain.PickupLocation) string { return l.ID })

	// Remote repositories. Left nil in local-only mode; the services route
	// everything to the fallback then.
	health := postgres.NewHealth(db)
	var (
		vehicleRepo  repository.VehicleRepository
		customerRepo repository.CustomerRepository
		rentalRepo   repository.RentalRepository
		paymentRepo  repository.PaymentRepository
		locationRepo repository.LocationRepository
		adminRepo    repository.AdminRepository
	)
	if db != nil {
		vehicleRepo = postgres.NewVehicleRepository(db)
		customerRepo = postgres.NewCustomerRepository(db)
		rentalRepo = postgres.NewRentalRepository(db)
		paymentRepo = postgres.NewPaymentRepository(db)
		locationRepo = postgres.NewLocationRepository(db)
		adminRepo = postgres.NewAdminRepository(db)
	}

	// Initialize services.
	notificationService := service.NewNotificationService()
	vehicleService := service.NewVehicleService(vehicleRepo, health, vehicleFallback)
	customerService := service.NewCustomerService(customerRepo, health, customerFallback)
	paymentService := service.NewPaymentService(paymentRepo, health, paymentFallback)
	locationService := service.NewLocationService(locationRepo, health, locationFallback)
	rentalService := service.NewRentalService(rentalRepo, health, rentalFallback, customerService, vehicleService, paymentService, notificationService)
	authService := service.NewAuthService(adminRepo, health, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.BootstrapEmail, cfg.Auth.BootstrapPassword)

	// Initialize handlers.
	authHandler := handler.NewAuthHandler(authService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	customerHandler := handler.NewCustomerHandler(customerService)
	rentalHandler := handler.NewRentalHandler(rentalService, customerService, vehicleService)
	paymentHandler := handler.NewPaymentHandler(paymentService, rentalService, customerService)
	locationHandler := handler.NewLocationHandler(locationService)
	dashboardHandler := handler.NewDashboardHandler(vehicleService, customerService, rentalService, paymentService, notificationService)
	reservationHandler := handler.NewReservationHandler(rentalService, customerService, vehicleService, locationService, notificationService, cfg.Company.WhatsAppPhone)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		AuthHandler:        authHandler,
		VehicleHandler:     vehicleHandler,
		CustomerHandler:    customerHandler,
		RentalHandler:      rentalHandler,
		PaymentHandler:     paymentHandler,
		LocationHandler:    locationHandler,
		DashboardHandler:   dashboardHandler,
		ReservationHandler: reservationHandler,
		AuthService:        authService,
		NewRelicApp:        nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
