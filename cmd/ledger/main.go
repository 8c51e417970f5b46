package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/pidsadka/pidsadka/internal/pkg/config"
	"github.com/pidsadka/pidsadka/internal/pkg/database"
	"github.com/pidsadka/pidsadka/internal/pkg/health"
	"github.com/pidsadka/pidsadka/internal/pkg/logger"
	"github.com/pidsadka/pidsadka/internal/pkg/middleware"
	"github.com/pidsadka/pidsadka/internal/pkg/nsq"
	bookinggateway "github.com/pidsadka/pidsadka/services/bookings/gateway"
	bookinghandler "github.com/pidsadka/pidsadka/services/bookings/handler"
	bookingrepo "github.com/pidsadka/pidsadka/services/bookings/repository"
	bookingusecase "github.com/pidsadka/pidsadka/services/bookings/usecase"
	"github.com/pidsadka/pidsadka/services/lifecycle"
	lifecyclegw "github.com/pidsadka/pidsadka/services/lifecycle/gateway"
	ratinghandler "github.com/pidsadka/pidsadka/services/ratings/handler"
	ratingrepo "github.com/pidsadka/pidsadka/services/ratings/repository"
	ratingusecase "github.com/pidsadka/pidsadka/services/ratings/usecase"
	tripgateway "github.com/pidsadka/pidsadka/services/trips/gateway"
	triphandler "github.com/pidsadka/pidsadka/services/trips/handler"
	triprepo "github.com/pidsadka/pidsadka/services/trips/repository"
	tripusecase "github.com/pidsadka/pidsadka/services/trips/usecase"
	usergateway "github.com/pidsadka/pidsadka/services/users/gateway"
	userhandler "github.com/pidsadka/pidsadka/services/users/handler"
	userrepo "github.com/pidsadka/pidsadka/services/users/repository"
	userusecase "github.com/pidsadka/pidsadka/services/users/usecase"
)

func main() {
	appName := "ledger"
	configPath := "config/ledger.env"
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	logger.Info("Starting application", logger.Fields{
		"app":         appName,
		"version":     configs.App.Version,
		"environment": configs.App.Environment,
	})

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize NSQ producer
	producer, err := nsq.NewProducer(configs.NSQ.Address)
	if err != nil {
		log.Fatalf("Failed to connect to NSQ: %v", err)
	}
	defer producer.Stop()

	db := postgresClient.GetDB()

	// Initialize repositories
	userRepo := userrepo.NewUserRepository(configs, db)
	tripRepo := triprepo.NewTripRepository(configs, db)
	bookingRepo := bookingrepo.NewBookingRepository(configs, db)
	penaltyRepo := bookingrepo.NewPenaltyRepository(redisClient)
	ratingRepo := ratingrepo.NewRatingRepository(configs, db)

	// Initialize gateways
	userGW := usergateway.NewUserGW(producer)
	tripGW := tripgateway.NewTripGW(producer)
	bookingGW := bookinggateway.NewBookingGW(producer)
	lifecycleGW := lifecyclegw.NewLifecycleGW(producer)

	// Initialize usecases. The user repository doubles as the directory
	// the trip and booking services consult for profiles.
	userUC := userusecase.NewUserUC(configs, userRepo, userGW)
	tripUC := tripusecase.NewTripUC(configs, tripRepo, tripGW, userRepo)
	bookingUC := bookingusecase.NewBookingUC(configs, bookingRepo, penaltyRepo, userRepo, bookingGW)
	ratingUC := ratingusecase.NewRatingUC(configs, ratingRepo)

	// Initialize handlers
	userHandler := userhandler.NewUserHandler(userUC)
	tripHandler := triphandler.NewTripHandler(tripUC)
	bookingHandler := bookinghandler.NewBookingHandler(bookingUC)
	ratingHandler := ratinghandler.NewRatingHandler(ratingUC)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))
	e.Use(echomw.RequestID())
	e.Use(logger.EchoMiddleware(appLogger))

	health.RegisterHealthEndpoints(e, appName)

	public := e.Group("/api/v1")
	public.Use(middleware.IPRateLimiter(30, time.Minute, redisClient.GetClient()))

	protected := e.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(configs.JWT))
	protected.Use(middleware.UserRateLimiter(120, time.Minute, redisClient.GetClient()))

	admin := e.Group("/api/v1/admin")
	admin.Use(middleware.ValidateAPIKey(configs.APIKey))

	// Register service routes
	userHandler.RegisterRoutes(public, protected, admin)
	tripHandler.RegisterRoutes(protected, admin)
	bookingHandler.RegisterRoutes(protected)
	ratingHandler.RegisterRoutes(protected)

	// Start the lifecycle worker
	workerCtx, stopWorker := context.WithCancel(context.Background())
	worker := lifecycle.NewWorker(configs, tripRepo, bookingRepo, lifecycleGW)
	go worker.Run(workerCtx)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		logger.Info("Starting HTTP server", logger.Fields{
			"address": addr,
			"app":     appName,
		})

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	logger.Info("Received shutdown signal", logger.Fields{
		"signal": sig.String(),
	})

	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", logger.Fields{
			"error": err.Error(),
		})
	}

	logger.Info("Application stopped", logger.Fields{
		"app": appName,
	})
}
