package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/segmentio/kafka-go"

	"github.com/linkalls/raterover/internal/fetchers"
	"github.com/linkalls/raterover/internal/handlers"
	"github.com/linkalls/raterover/internal/logger"
	"github.com/linkalls/raterover/internal/middlewares"
	"github.com/linkalls/raterover/internal/repositories"
	"github.com/linkalls/raterover/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// @title raterover API
// @version 1.0.0
// @description Currency-conversion service with locally cached exchange rates
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		storeBackend, cacheFile, cacheTTL,
		redisAddr, redisDB, redisPassword,
		pgDSN,
		rateAPIURL, rateTimeout,
		defaultFrom, defaultTo, refreshCron,
		kafkaBroker, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		storeBackend, cacheFile, cacheTTL,
		redisAddr, redisDB, redisPassword,
		pgDSN,
		rateAPIURL, rateTimeout,
		defaultFrom, defaultTo, refreshCron,
		kafkaBroker, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the full
// application configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	storeBackend, cacheFile string, cacheTTL time.Duration,
	redisAddr string, redisDB int, redisPassword string,
	pgDSN string,
	rateAPIURL string, rateTimeout time.Duration,
	defaultFrom, defaultTo, refreshCron string,
	kafkaBroker, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Cache store config
	storeBackend = getEnv("STORE_BACKEND", "file")
	cacheFile = getEnv("CACHE_FILE", "rates.json")

	var ttlHours int
	if ttlHours, err = strconv.Atoi(getEnv("CACHE_TTL_HOURS", "24")); err != nil {
		return
	}
	cacheTTL = time.Duration(ttlHours) * time.Hour

	// Redis config
	redisAddr = fmt.Sprintf("%s:%s", getEnv("REDIS_HOST", "localhost"), getEnv("REDIS_PORT", "6379"))
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// PostgreSQL config
	pgDSN = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		getEnv("POSTGRES_PORT", "5432"),
		getEnv("POSTGRES_DB", "raterover"),
	)

	// Rate provider config
	rateAPIURL = getEnv("RATE_API_URL", "https://latest.currency-api.pages.dev/v1")

	var timeoutSeconds int
	if timeoutSeconds, err = strconv.Atoi(getEnv("RATE_HTTP_TIMEOUT_SECONDS", "20")); err != nil {
		return
	}
	rateTimeout = time.Duration(timeoutSeconds) * time.Second

	// Selection defaults and scheduled refresh
	defaultFrom = getEnv("DEFAULT_FROM", "USD")
	defaultTo = getEnv("DEFAULT_TO", "EUR")
	refreshCron = getEnv("REFRESH_CRON", "0 12 * * *")

	// Kafka config (empty broker disables event publishing)
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "rate-updates")

	return
}

// run initializes the logger, the rate store backend, the fetcher and the
// manager, then serves the HTTP API until a shutdown signal arrives.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	storeBackend, cacheFile string, cacheTTL time.Duration,
	redisAddr string, redisDB int, redisPassword string,
	pgDSN string,
	rateAPIURL string, rateTimeout time.Duration,
	defaultFrom, defaultTo, refreshCron string,
	kafkaBroker, kafkaTopic string,
) error {
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Rate store backend
	var store services.RateStore
	switch storeBackend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Errorw("Redis connection error", "addr", redisAddr, "error", err)
			return err
		}
		defer rdb.Close()
		store = repositories.NewRedisRateStore(rdb, 0)
		logger.Log.Infof("Using Redis rate store at %s", redisAddr)

	case "postgres":
		db, err := sqlx.ConnectContext(ctx, "pgx", pgDSN)
		if err != nil {
			logger.Log.Errorw("PostgreSQL connection error", "error", err)
			return err
		}
		defer db.Close()
		pgStore := repositories.NewPostgresRateStore(db)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			logger.Log.Errorw("failed to ensure rate_cache schema", "error", err)
			return err
		}
		store = pgStore
		logger.Log.Info("Using PostgreSQL rate store")

	default:
		store = repositories.NewFileRateStore(cacheFile)
		logger.Log.Infof("Using file rate store at %s", cacheFile)
	}

	// Optional Kafka publisher
	var kafkaWriter services.KafkaWriter
	if kafkaBroker != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Publishing rate updates to Kafka topic %s at %s", kafkaTopic, kafkaBroker)
	}

	fetcher := fetchers.NewRatesFetcher(rateAPIURL, rateTimeout)
	manager := services.NewRateManager(store, fetcher, kafkaWriter, defaultFrom, cacheTTL)
	selection := services.NewSelection(manager, defaultFrom, defaultTo)

	manager.Subscribe(func(anchor string) {
		logger.Log.Infow("rate table changed", "anchor", anchor)
	})

	// Cache check and first fetch happen before the API is served, so no
	// user-triggered refresh can race ahead of them.
	if err := manager.Initialize(ctx); err != nil {
		logger.Log.Warnw("initial rate load failed, serving pass-through conversions", "error", err)
	}

	// Scheduled daily refresh of the selected base.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(refreshCron, func() {
		if err := manager.Refresh(ctx, manager.SelectedBase()); err != nil {
			logger.Log.Errorw("scheduled refresh failed", "error", err)
		}
	}); err != nil {
		logger.Log.Errorw("invalid refresh cron spec", "spec", refreshCron, "error", err)
		return err
	}
	scheduler.Start()
	defer func() {
		stopCtx := scheduler.Stop()
		<-stopCtx.Done()
	}()

	// HTTP API
	r := chi.NewRouter()
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		handlers.RegisterGetCurrenciesHandler(r, handlers.NewGetCurrenciesHandler())
		handlers.RegisterGetRatesHandler(r, handlers.NewGetRatesHandler(manager))
		handlers.RegisterConvertHandler(r, handlers.NewConvertHandler(manager, manager))
		handlers.RegisterRefreshHandler(r, handlers.NewRefreshHandler(manager))
		handlers.RegisterSelectionHandlers(r,
			handlers.NewGetSelectionHandler(selection, manager),
			handlers.NewPutSelectionHandler(selection, manager),
			handlers.NewSwapSelectionHandler(selection, manager),
		)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
