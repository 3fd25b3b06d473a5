package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"shoppingcart/cmd"
	httpadapter "shoppingcart/internal/adapters/in/http"
	pgadapter "shoppingcart/internal/adapters/out/postgres"
	"shoppingcart/internal/jobs"

	"github.com/joho/godotenv"
	gommonlog "github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	configs := getConfigs()
	logger := newLogger(configs.LogLevel)

	db, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to connect database")
	}
	if err := pgadapter.Migrate(db); err != nil {
		logger.WithError(err).Fatal("failed to migrate database")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app := cmd.NewCompositionRoot(configs, db, registry, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := run(ctx, app, configs, registry, logger)
	stop()

	if err := app.Close(); err != nil {
		logger.WithError(err).Warn("failed to close adapters")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	if runErr != nil {
		logger.WithError(runErr).Error("service stopped")
		os.Exit(1)
	}
	logger.Info("service stopped")
}

func run(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, registry *prometheus.Registry, logger *log.Logger) error {
	e, err := httpadapter.NewRouter(app.CreateHTTPServer(), httpadapter.RouterOptions{
		Logger:  logger.WithField("component", "http"),
		Metrics: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Swagger: configs.SwaggerEnabled,
	})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}
	e.Logger.SetLevel(gommonlog.WARN)

	jobManager := app.CreateJobManager()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)
		logger.WithField("addr", addr).Info("http server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		if err := jobManager.StartAll(); err != nil {
			return err
		}
		<-gctx.Done()
		jobManager.StopAll()
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownGracePeriod)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newLogger(level string) *log.Logger {
	logger := log.New()
	logger.SetFormatter(&log.JSONFormatter{})
	parsed, err := log.ParseLevel(level)
	if err != nil {
		logger.WithField("level", level).Warn("unknown log level, using info")
		parsed = log.InfoLevel
	}
	logger.SetLevel(parsed)
	return logger
}

func getConfigs() cmd.Config {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.WithError(err).Warn("failed to load .env file")
	}

	config := cmd.Config{
		LogLevel:               envString("LOG_LEVEL", "info"),
		HTTPPort:               envString("HTTP_PORT", "8082"),
		DBHost:                 envString("DB_HOST", "localhost"),
		DBPort:                 envString("DB_PORT", "5432"),
		DBUser:                 envString("DB_USER", "postgres"),
		DBPassword:             envString("DB_PASSWORD", ""),
		DBName:                 envString("DB_NAME", "shop"),
		DBSslMode:              envString("DB_SSLMODE", "disable"),
		StripeSecretKey:        envString("STRIPE_SECRET_KEY", ""),
		KafkaHost:              envString("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: envString("KAFKA_ORDER_CHANGED_TOPIC", "order-changed"),
		RetryAttempts:          envInt("ORDER_RETRY_ATTEMPTS", 3),
		PendingOrderTTL:        envDuration("PENDING_ORDER_TTL", 24*time.Hour),
		ExpiryBatchSize:        envInt("PENDING_ORDER_EXPIRY_BATCH", 100),
		ExpirySchedule:         envString("PENDING_ORDER_EXPIRY_SCHEDULE", jobs.DefaultExpirySchedule),
		SwaggerEnabled:         envBool("SWAGGER_ENABLED", true),
		ShutdownGracePeriod:    envDuration("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
	return config
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := envString(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.WithField("key", key).WithError(err).Fatal("invalid integer setting")
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := envString(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.WithField("key", key).WithError(err).Fatal("invalid duration setting")
	}
	return d
}

func envBool(key string, fallback bool) bool {
	v := envString(key, "")
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.WithField("key", key).WithError(err).Fatal("invalid boolean setting")
	}
	return b
}
