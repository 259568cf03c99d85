package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventify-hub/internal/application"
	"inventify-hub/internal/config"
	apiinfra "inventify-hub/internal/infrastructure/api"
	"inventify-hub/internal/infrastructure/auth"
	"inventify-hub/internal/infrastructure/repository"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	securitymiddleware "inventify-hub/internal/infrastructure/middleware"
)

func main() {
	// Initialize logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("⚠️  Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger = logger.Level(cfg.LogLevel)

	// Connect to MongoDB with the stable server API, as the hosted cluster expects
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true)
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(serverAPI))
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Warn().Err(err).Msg("MongoDB ping failed, continuing; requests will fail until it is reachable")
	}
	cancel()

	db := client.Database(cfg.MongoDatabase)

	// Initialize repositories
	userRepo := repository.NewMongoUserRepository(db)
	shopRepo := repository.NewMongoShopRepository(db)
	productRepo := repository.NewMongoProductRepository(db)

	// Initialize application services
	userService := application.NewUserService(userRepo, logger)
	shopService := application.NewShopService(shopRepo, logger)
	productService := application.NewProductService(productRepo, logger)

	tokenService := auth.NewJWTService(cfg.AccessTokenSecret)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := securitymiddleware.NewMetrics(registry)

	router := apiinfra.NewRouter(apiinfra.RouterConfig{
		Tokens:         tokenService,
		Users:          userService,
		Shops:          shopService,
		Products:       productService,
		Metrics:        metrics,
		AllowedOrigins: cfg.AllowedOrigins,
		SwaggerFile:    cfg.SwaggerFile,
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Str("database", cfg.MongoDatabase).Msg("Inventify Hub is running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
