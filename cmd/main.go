package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	c "github.com/fjod/go_cart/sneaker-service/internal/cache"
	"github.com/fjod/go_cart/sneaker-service/internal/config"
	h "github.com/fjod/go_cart/sneaker-service/internal/http"
	"github.com/fjod/go_cart/sneaker-service/internal/logger"
	"github.com/fjod/go_cart/sneaker-service/internal/repository"
	s "github.com/fjod/go_cart/sneaker-service/internal/service"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		slog.Warn("falling back to info log level", "error", err)
	}
	log := logger.New(os.Stdout, level)
	slog.SetDefault(log)

	if len(cfg.EnvFiles) == 0 {
		log.Info("no .env file found, using process environment")
	} else {
		log.Info("loaded env files", "files", cfg.EnvFiles)
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	ctx := context.Background()

	// Set up MongoDB connection. Without a URI the API still starts and store
	// backed routes answer 500.
	var mongoDB *mongo.Database
	if cfg.StoreConfigured() {
		mongoDB, err = repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName, repository.MongoOptions{})
		if err != nil {
			log.Error("failed to connect to MongoDB", "error", err)
			os.Exit(1)
		}
		log.Info("connected to MongoDB", "database", cfg.MongoDBName)
	} else {
		log.Warn("MONGO_URI not set, running without a database")
	}

	sneakers := repository.NewSneakerRepository(mongoDB)
	carts := repository.NewCartRepository(mongoDB)

	var cartCache c.CartCache = c.NoopCache{}
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			// the cache is optional; the breaker keeps a dead Redis off the hot path
			log.Warn("redis ping failed", "addr", cfg.RedisAddr, "error", err)
		} else {
			log.Info("redis ping succeeded", "addr", cfg.RedisAddr)
		}
		cartCache = c.NewBreakerCache(c.NewRedisCache(redisClient, cfg.CartCacheTTL), c.BreakerSettings{}, log)
	}

	catalogService := s.NewCatalogService(sneakers, log)
	cartService := s.NewCartService(sneakers, carts, cartCache, log)

	router := h.NewRouter(catalogService, cartService, log, h.RouterConfig{
		RequestTimeout:     cfg.RequestTimeout,
		MaxRequestBodySize: cfg.MaxRequestBodySize,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("sneaker service starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if err := repository.DisconnectMongoDB(shutdownCtx, mongoDB); err != nil {
		log.Error("mongo disconnect failed", "error", err)
	}

	log.Info("server exited")
}
