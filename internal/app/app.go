package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"cashflowstory/internal/analytics"
	"cashflowstory/internal/config"
	apierrors "cashflowstory/internal/errors"
	"cashflowstory/internal/infrastructure"
	customMiddleware "cashflowstory/internal/middleware"
	"cashflowstory/internal/services"
	handlers "cashflowstory/internal/transport/http"
	"cashflowstory/pkg/contracts"
)

// compressionLevel is the gzip level applied to API responses
const compressionLevel = 5

// Application represents the main application container
type Application struct {
	Config           *config.Config
	Router           *chi.Mux
	Server           *http.Server
	Logger           *slog.Logger
	OTelProviders    *infrastructure.OTelProviders
	Metrics          *infrastructure.AnalyticsMetrics
	AnalyticsService *services.AnalyticsService
	HealthService    *services.HealthService
	ErrorHandler     *apierrors.ErrorHandler

	listener net.Listener
	stopOnce sync.Once
	stopErr  error
}

// NewApplication loads configuration and logging from the environment and
// wires the application
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return New(cfg, logger)
}

// New wires the application from an already loaded configuration
func New(cfg *config.Config, logger *slog.Logger) (*Application, error) {
	logger.Info("Application starting",
		slog.String("service", contracts.ServiceName),
		slog.String("version", contracts.Version),
		slog.String("api_version", contracts.APIVersion))

	otelProviders, err := infrastructure.InitializeOTel(infrastructure.OTelConfigFrom(cfg.Telemetry), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	app := &Application{
		Config:        cfg,
		Logger:        logger,
		OTelProviders: otelProviders,
		ErrorHandler:  apierrors.NewErrorHandler(logger, cfg.Logging.Development),
	}

	if err := app.initializeServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	app.setupRouter()
	app.createServer()

	return app, nil
}

// initializeServices creates the metric instruments and the services that use them
func (a *Application) initializeServices() error {
	metrics, err := infrastructure.CreateAnalyticsMetrics(a.OTelProviders.Meter)
	if err != nil {
		return fmt.Errorf("failed to create analytics metrics: %w", err)
	}
	a.Metrics = metrics

	evaluator := analytics.NewEvaluator(
		analytics.WithConcurrency(a.Config.Analytics.BatchConcurrency),
		analytics.WithLogger(a.Logger),
	)

	a.AnalyticsService = services.NewAnalyticsService(evaluator, metrics, a.Logger,
		services.WithMaxPeriods(a.Config.Analytics.MaxPeriods),
	)
	a.HealthService = services.NewHealthService(a.Logger)

	a.Logger.Info("Services initialized",
		slog.Int("batch_concurrency", evaluator.Concurrency()),
		slog.Int("max_periods", a.Config.Analytics.MaxPeriods))

	return nil
}

// setupRouter builds the middleware chain and registers every route.
// Order: RequestID → RealIP → OTel → Logger → Recoverer → headers → CORS → rate limit
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.RealIP)

	// Set before any subrouter is mounted so every mount inherits them
	r.NotFound(a.ErrorHandler.NotFound)
	r.MethodNotAllowed(a.ErrorHandler.MethodNotAllowed)

	// Scraped outside the instrumented group so scrapes don't count as traffic
	if a.OTelProviders.PrometheusHTTP != nil {
		r.Handle("/metrics", a.OTelProviders.PrometheusHTTP)
	}

	r.Group(func(r chi.Router) {
		r.Use(customMiddleware.NewOTelMiddleware(a.OTelProviders, a.Metrics, a.Logger).Handler)
		r.Use(customMiddleware.StructuredLogger(a.Logger))
		r.Use(customMiddleware.Recoverer(a.ErrorHandler))
		r.Use(customMiddleware.SecurityHeaders)

		if a.Config.Security.EnableCORS {
			r.Use(customMiddleware.CORS(a.getCORSConfig()))
		}

		if a.Config.Security.RateLimit.Enabled {
			r.Use(customMiddleware.NewRateLimiter(
				a.Config.Security.RateLimit.RPS,
				a.Config.Security.RateLimit.Burst,
				a.Logger,
			).Handler)
		}

		r.Use(customMiddleware.BodyLimit(a.Config.Server.MaxBodyBytes))

		a.setupAPIRoutes(r)
	})

	a.Router = r
}

// setupAPIRoutes configures the service endpoints
func (a *Application) setupAPIRoutes(r chi.Router) {
	healthHandler := handlers.NewHealthHandler(a.HealthService, a.Logger)
	analyticsHandler := handlers.NewAnalyticsHandler(a.AnalyticsService, a.Logger, a.ErrorHandler)

	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Use(customMiddleware.Timeout(a.Config.Server.RequestTimeout))
		r.Use(customMiddleware.Compress(compressionLevel))

		r.Get("/health", healthHandler.HealthCheck)
		r.Get("/health/ready", healthHandler.ReadinessCheck)
		r.Get("/health/live", healthHandler.LivenessCheck)
		r.Get("/version", healthHandler.Version)

		r.Mount("/", analyticsHandler.Routes())
	})
}

// getCORSConfig builds the CORS policy from the security configuration
func (a *Application) getCORSConfig() customMiddleware.CORSConfig {
	cfg := customMiddleware.CORSConfig{
		AllowedOrigins: a.Config.Security.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Request-ID",
			"X-Requested-With",
		},
		ExposedHeaders: []string{
			"X-Request-ID",
			"Content-Disposition",
			"Retry-After",
		},
		AllowCredentials: a.Config.Security.AllowCredentials,
		MaxAge:           300,
		Logger:           a.Logger,
	}

	a.Logger.Info("CORS configured",
		slog.Any("allowed_origins", cfg.AllowedOrigins),
		slog.Bool("allow_credentials", cfg.AllowCredentials))

	return cfg
}

// createServer creates the HTTP server
func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:           a.Config.Server.Addr(),
		Handler:        a.Router,
		ReadTimeout:    a.Config.Server.ReadTimeout,
		WriteTimeout:   a.Config.Server.WriteTimeout,
		IdleTimeout:    a.Config.Server.IdleTimeout,
		MaxHeaderBytes: a.Config.Server.MaxHeaderBytes,
	}
}

// Handler returns the root HTTP handler
func (a *Application) Handler() http.Handler {
	return a.Router
}

// Addr returns the address the server is listening on, or the configured
// address before Start
func (a *Application) Addr() string {
	if a.listener != nil {
		return a.listener.Addr().String()
	}
	return a.Server.Addr
}

// Start binds the listener and serves in the background. cancel is called
// once the server stops serving.
func (a *Application) Start(ctx context.Context, cancel context.CancelFunc) error {
	a.Logger.InfoContext(ctx, "Starting application",
		slog.String("address", a.Server.Addr),
		slog.String("level", a.Config.Logging.Level))

	ln, err := net.Listen("tcp", a.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.Server.Addr, err)
	}
	a.listener = ln

	go func() {
		defer cancel()
		if err := a.Server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Logger.ErrorContext(ctx, "Server error", slog.String("error", err.Error()))
		}
	}()

	a.performStartupHealthCheck(ctx)

	a.Logger.InfoContext(ctx, "Application started successfully",
		slog.String("address", fmt.Sprintf("http://%s", ln.Addr().String())))

	return nil
}

// performStartupHealthCheck runs the readiness checks once and logs any failure
func (a *Application) performStartupHealthCheck(ctx context.Context) {
	status := a.HealthService.ReadinessCheck(ctx)
	if status.Status == "ready" {
		a.Logger.InfoContext(ctx, "Startup health check passed")
		return
	}
	for name, svc := range status.Services {
		if svc.Status != "ready" {
			a.Logger.WarnContext(ctx, "Startup health check warning",
				slog.String("check", name),
				slog.String("message", svc.Message))
		}
	}
}

// Stop gracefully stops the application. Later calls return the first result.
func (a *Application) Stop(ctx context.Context) error {
	a.stopOnce.Do(func() {
		a.Logger.InfoContext(ctx, "Shutting down application")

		shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			a.stopErr = fmt.Errorf("server shutdown error: %w", err)
			return
		}

		if a.OTelProviders != nil {
			if err := a.OTelProviders.Shutdown(shutdownCtx); err != nil {
				a.Logger.ErrorContext(ctx, "Error shutting down OpenTelemetry", slog.String("error", err.Error()))
			}
		}

		if err := infrastructure.CloseLogFile(); err != nil {
			a.Logger.ErrorContext(ctx, "Error closing log file", slog.String("error", err.Error()))
		}

		a.Logger.InfoContext(ctx, "Application shutdown complete")
	})
	return a.stopErr
}

// Run runs the application until interrupted or until the server stops
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	if err := a.Start(ctx, cancel); err != nil {
		return err
	}

	select {
	case sig := <-sigChan:
		a.Logger.InfoContext(ctx, "Received interrupt signal", slog.String("signal", sig.String()))
	case <-ctx.Done():
		a.Logger.InfoContext(ctx, "Server stopped serving")
	}

	return a.Stop(context.Background())
}
