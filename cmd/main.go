package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fjod/go_storefront/internal/cache"
	"github.com/fjod/go_storefront/internal/catalog"
	h "github.com/fjod/go_storefront/internal/http"
	"github.com/fjod/go_storefront/internal/repository"
	"github.com/fjod/go_storefront/internal/service"
	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort        string        `envconfig:"HTTP_PORT" default:"8080"`
	DBPath          string        `envconfig:"DB_PATH" default:"storefront.db"`
	MigrationsPath  string        `envconfig:"MIGRATIONS_PATH" default:"migrations"`
	RedisAddr       string        `envconfig:"REDIS_ADDR" default:""`
	RedisPassword   string        `envconfig:"REDIS_PASSWORD" default:""`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

func main() {
	var cfg Config
	if err := envconfig.Process("storefront", &cfg); err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	repo, err := repository.NewRepository(cfg.DBPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open store")
	}
	defer repo.Close()

	if err := repo.RunMigrations(cfg.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("failed to run migrations")
	}
	logrus.WithField("db_path", cfg.DBPath).Info("store ready")

	ctx := context.Background()

	// Cart cache is optional; the durable store stays authoritative.
	var cartCache cache.CartCache = cache.Noop{}
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logrus.WithError(err).Fatal("redis connection failed")
		}
		cartCache = cache.NewRedisCache(redisClient)
		logrus.WithField("addr", cfg.RedisAddr).Info("cart cache enabled")
	}

	cat := catalog.Default()
	cartService := service.NewCartService(repo, cartCache, cat)
	accountService := service.NewAccountService(repo)
	orderService := service.NewOrderService(repo, cartService, accountService, cat)

	router := h.NewRouter(cartService, accountService, orderService, cat, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logrus.WithField("port", cfg.HTTPPort).Info("storefront listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down storefront...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Fatal("server forced to shutdown")
	}
	logrus.Info("storefront stopped")
}
