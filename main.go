package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomnest/config"
	"roomnest/database"
	bookingRepoPkg "roomnest/database/repository/booking"
	roomRepoPkg "roomnest/database/repository/room"
	"roomnest/handlers"
	"roomnest/middleware"
	"roomnest/routes"
	"roomnest/services/booking"
	"roomnest/services/catalog"
	"roomnest/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := mongoClient.Database(config.AppConfig.DatabaseName)

	cacheClient, err := utils.NewCacheClient()
	if err != nil {
		// The catalog degrades to database-only reads without a cache.
		logger.Sugar().Warnf("main: redis unavailable, aggregate caching disabled: %v", err)
		cacheClient = nil
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	roomRepo := roomRepoPkg.NewMongoRoomRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo:   roomRepo,
		Logger: logger,
	}
	if cacheClient != nil {
		catalogService.Cache = catalog.NewRedisAggregateCache(cacheClient, logger)
	}
	bookingService := &booking.DefaultBookingService{
		Bookings: bookingRepo,
		Rooms:    roomRepo,
		Logger:   logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:     handlers.NewAuthHandler(),
		Rooms:    handlers.NewRoomHandler(catalogService),
		Reviews:  handlers.NewReviewHandler(catalogService),
		Bookings: handlers.NewBookingHandler(bookingService),
		Health:   handlers.NewHealthHandler(mongoClient, cacheClient),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
