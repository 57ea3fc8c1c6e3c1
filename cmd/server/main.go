package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"expense-tracker/internal/chart"
	"expense-tracker/internal/config"
	"expense-tracker/internal/database"
	"expense-tracker/internal/handlers"
	"expense-tracker/internal/middleware"
	"expense-tracker/internal/offline"
	"expense-tracker/internal/reports"
	"expense-tracker/internal/repositories"
	"expense-tracker/internal/services"
	"expense-tracker/web"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err, "driver", cfg.Database.Driver)
		os.Exit(1)
	}
	defer db.Close()

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	activity := services.NewActivityLogger(logger)

	trackerRepo := repositories.NewTrackerRepository(repositories.NewKeyValueStore(db.DB))
	expenseService := services.NewExpenseService(trackerRepo, metrics, activity, logger)
	presentationService := services.NewPresentationService(chart.NewSVGRenderer(), logger)
	reportService := services.NewReportService(reports.NewPDFDocument, metrics, activity)

	static := web.Handler()
	cacheManager := offline.NewManager(
		cfg.Offline.CacheVersion,
		offline.DefaultManifest(cfg.Offline.IncludeRemote),
		offline.NewGormCacheStorage(db.DB),
		offline.NewRoutingFetcher(
			offline.NewHandlerFetcher(static),
			offline.NewBreakerFetcher(
				offline.NewHTTPFetcher(cfg.Offline.FetchTimeout),
				offline.BreakerConfig{
					MaxFailures:     cfg.Offline.BreakerFailures,
					ResetTimeout:    cfg.Offline.BreakerReset,
					HalfOpenMaxSucc: 1,
				},
			),
		),
		metrics,
		activity,
		logger,
	)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: cfg.Server.CORSAllowOrigins}))
	e.Use(echomw.BodyLimit("1M"))
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(offline.Intercept(cacheManager))

	handlers.RegisterRoutes(e, handlers.Handlers{
		Health:    handlers.NewHealthCheckHandler(db.DB),
		Expenses:  handlers.NewExpenseHandler(expenseService),
		Dashboard: handlers.NewDashboardHandler(expenseService, presentationService),
		Settings:  handlers.NewSettingsHandler(expenseService),
		Reports:   handlers.NewReportHandler(expenseService, presentationService, reportService),
		Offline:   handlers.NewOfflineHandler(cacheManager),
		Static:    static,
		Metrics:   promhttp.Handler(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Offline.Enabled {
		go func() {
			// failures are logged by the manager; the app keeps serving from the network
			_ = cacheManager.Run(ctx)
		}()
	} else {
		logger.Info("Offline cache disabled")
	}

	go func() {
		logger.Info("Starting expense tracker",
			"address", cfg.Address(),
			"environment", cfg.Server.Environment,
			"driver", cfg.Database.Driver,
		)
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped gracefully")
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.IsDevelopment() {
		opts.Level = slog.LevelDebug
	}

	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
