package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/rafaelleal24/glowin/docs"
	"github.com/rafaelleal24/glowin/internal/adapters/config"
	"github.com/rafaelleal24/glowin/internal/adapters/http"
	"github.com/rafaelleal24/glowin/internal/adapters/http/controllers"
	"github.com/rafaelleal24/glowin/internal/adapters/mongo"
	"github.com/rafaelleal24/glowin/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/glowin/internal/adapters/outbox"
	"github.com/rafaelleal24/glowin/internal/adapters/rabbitmq"
	"github.com/rafaelleal24/glowin/internal/adapters/redis"
	"github.com/rafaelleal24/glowin/internal/core/domain"
	"github.com/rafaelleal24/glowin/internal/core/logger"
	"github.com/rafaelleal24/glowin/internal/core/port"
	"github.com/rafaelleal24/glowin/internal/core/service"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// @title       Glowin API
// @version     1.0
// @description Storefront cart, wishlist and checkout API

// @host     localhost:8080
// @BasePath /

//go:generate swag init -d ../.. -g cmd/http/main.go -o ../../docs --parseInternal

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	// canceled on SIGINT/SIGTERM; stops the outbox handler and the HTTP server
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer flushLogs()

	goldRate, err := domain.NewDiscountRate(cfg.Membership.GoldDiscountRate)
	if err != nil {
		logger.Fatal(ctx, "Invalid gold discount rate", err, map[string]any{"value": cfg.Membership.GoldDiscountRate})
	}

	// initialize database connection
	mongoClient, err := mongo.NewConnection(cfg.Mongo)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to MongoDB", err, nil)
	}
	defer mongo.Disconnect(mongoClient)
	logger.Info(ctx, "Connected to MongoDB", map[string]any{"database": cfg.Mongo.Database})

	// initialize redis connection
	redisClient, err := redis.NewConnection(cfg.Redis)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
	}
	defer redisClient.Close()
	logger.Info(ctx, "Connected to Redis", map[string]any{"namespace": cfg.Redis.Namespace})

	// initialize rabbitmq connection
	broker, err := rabbitmq.NewRabbitMQAdapter(cfg.RabbitMQ)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to RabbitMQ", err, nil)
	}
	defer broker.Close()
	logger.Info(ctx, "Connected to RabbitMQ", nil)

	// initialize database and repos
	database := mongoClient.Database(cfg.Mongo.Database)
	receiptRepository := repository.NewReceiptRepository(database)
	outboxRepository := repository.NewOutboxRepository(database, cfg.Outbox.MaxAttempts)
	eventOutbox := outbox.NewEventOutbox(outboxRepository)
	txManager := mongo.NewTransactionManager(mongoClient)

	// caches and rate limiter
	sessionCache := redis.NewCache[service.SessionRecord](redisClient, "session-cache")
	idempotencyCache := redis.NewCache[service.IdempotencyEntry[service.CheckoutResult]](redisClient, "idempotency-cache")
	rateLimiter := redis.NewRateLimiter(redisClient)

	// outbox relay
	outboxHandler := outbox.NewHandler(outboxRepository, broker, cfg.Outbox)
	go outboxHandler.Start(ctx)
	logger.Info(ctx, "Outbox handler started", map[string]any{"interval": cfg.Outbox.Interval.String(), "batch_size": cfg.Outbox.BatchSize})

	// services
	catalog := domain.DefaultCatalog()
	membershipService := service.NewMembershipService(service.DefaultMember(), domain.DefaultTierRates(goldRate))
	productService := service.NewProductService(catalog)
	sessionService := service.NewSessionService(catalog, membershipService, sessionCache, cfg.Session.TTL)
	idempotencyService := service.NewIdempotencyService[service.CheckoutResult](
		idempotencyCache,
		"checkout",
		cfg.Checkout.IdempotencyTTL,
		cfg.Checkout.IdempotencyPollInterval,
		cfg.Checkout.IdempotencyPollTimeout,
	)
	checkoutService := service.NewCheckoutService(sessionService, membershipService, receiptRepository, eventOutbox, idempotencyService, txManager)

	// controllers
	catalogController := controllers.NewCatalogController(productService)
	sessionController := controllers.NewSessionController(sessionService)
	checkoutController := controllers.NewCheckoutController(checkoutService)
	membershipController := controllers.NewMembershipController(membershipService)
	healthController := controllers.NewHealthController(healthCheckers(mongoClient, redisClient, broker), cfg.HTTP.HealthCheckTimeout, catalog.Len())

	// router
	router := http.NewRouter(healthController, catalogController, sessionController, checkoutController, membershipController, rateLimiter, cfg.HTTP)

	logger.Info(ctx, "Starting HTTP server", map[string]any{
		"addr":         cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port,
		"catalog_size": catalog.Len(),
		"session_ttl":  cfg.Session.TTL.String(),
	})
	if err := router.ListenAndServe(ctx, cfg.HTTP); err != nil {
		logger.Fatal(ctx, "Failed to start HTTP server", err, nil)
	}
	logger.Info(context.Background(), "HTTP server stopped", nil)
}

func healthCheckers(mongoClient *mongodriver.Client, redisClient *redis.Client, broker port.BrokerPort) []controllers.HealthChecker {
	return []controllers.HealthChecker{
		{Name: "mongodb", Check: func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }},
		{Name: "redis", Check: redisClient.Ping},
		{Name: "rabbitmq", Check: func(context.Context) error { return broker.HealthCheck() }},
	}
}

func flushLogs() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := logger.Shutdown(ctx); err != nil {
		fmt.Println("logger shutdown error: " + err.Error())
	}
}
