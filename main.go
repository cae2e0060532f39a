package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ARQAP/quanti-backend/src/config"
	"github.com/ARQAP/quanti-backend/src/db"
	"github.com/ARQAP/quanti-backend/src/i18n"
	"github.com/ARQAP/quanti-backend/src/logging"
	"github.com/ARQAP/quanti-backend/src/metrics"
	"github.com/ARQAP/quanti-backend/src/middleware"
	"github.com/ARQAP/quanti-backend/src/routes"
	"github.com/ARQAP/quanti-backend/src/seed"
	"github.com/ARQAP/quanti-backend/src/sequencescape"
	"github.com/ARQAP/quanti-backend/src/services"
	"github.com/ARQAP/quanti-backend/src/telemetry"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	configPath := flag.String("config", os.Getenv("QUANTI_CONFIG"), "optional YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading configuration: %v\n", err)
	}

	// Logging setup
	if err := logging.Initialize(logging.Config{
		Level:            logging.ParseLogLevel(cfg.Logging.Level),
		IsDev:            cfg.Logging.IsDev,
		LogDir:           cfg.Logging.LogDir,
		MaxAgeDays:       cfg.Logging.MaxAgeDays,
		MaxSizeMB:        cfg.Logging.MaxSizeMB,
		MaxBackups:       cfg.Logging.MaxBackups,
		AlsoLogToConsole: cfg.Logging.AlsoLogToConsole,
	}); err != nil {
		log.Fatalf("Error initializing logger: %v\n", err)
	}
	logger := logging.Get()
	defer func() { _ = logger.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tracing setup
	tracing, err := telemetry.NewProvider(ctx, telemetry.Config{
		Enabled:      cfg.Tracing.Enabled,
		Exporter:     cfg.Tracing.Exporter,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRate:   cfg.Tracing.SampleRate,
		ServiceName:  cfg.Tracing.ServiceName,
	})
	if err != nil {
		logger.Error("Error initializing tracing: %v", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tracing.Shutdown(shutdownCtx)
	}()

	middleware.SetSecretKey(cfg.Auth.JWTSecret)

	// Database connection
	conn, err := db.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Error("Error connecting to database: %v", err)
		os.Exit(1)
	}
	if err := db.Migrate(conn); err != nil {
		logger.Error("Error during auto-migration: %v", err)
		os.Exit(1)
	}
	if cfg.Database.Seed {
		seed.Seed(conn)
	}

	translator, err := i18n.New(cfg.I18n.DefaultLocale)
	if err != nil {
		logger.Error("Error loading locales: %v", err)
		os.Exit(1)
	}
	m := metrics.New()

	// Sequencescape is optional. Without it lookups are local only.
	var remote services.RemoteFinder
	if cfg.Sequencescape.APIRoot != "" {
		opts := []sequencescape.Option{
			sequencescape.WithHTTPClient(&http.Client{
				Timeout:   cfg.Sequencescape.Timeout,
				Transport: otelhttp.NewTransport(http.DefaultTransport),
			}),
			sequencescape.WithSearchesCollection(cfg.Sequencescape.SearchesCollection),
			sequencescape.WithUUIDCache(cfg.Sequencescape.UUIDCacheTTL),
			sequencescape.WithLogger(logger.Slogger()),
			sequencescape.WithObserver(m.ObserveSearch),
		}
		if cfg.Sequencescape.ClientID != "" {
			opts = append(opts, sequencescape.WithHeader("X-Sequencescape-Client-Id", cfg.Sequencescape.ClientID))
		}
		remote = sequencescape.NewClient(cfg.Sequencescape.APIRoot, opts...)
		logger.Info("Sequencescape lookups enabled at %s", cfg.Sequencescape.APIRoot)
	}

	if !cfg.Logging.IsDev {
		gin.SetMode(gin.ReleaseMode)
	}

	// Services setup
	quantTypeService := services.NewQuantTypeService(conn)
	router := routes.NewRouter(routes.Dependencies{
		DB:             conn,
		Translator:     translator,
		Metrics:        m,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		ServiceName:    cfg.Tracing.ServiceName,
		Users:          services.NewUserService(conn, cfg.Auth.TokenLifetime),
		Quants:         services.NewQuantService(conn, services.NewLocatorService(conn, remote), m),
		Assays:         services.NewAssayService(conn),
		Standards:      services.NewStandardService(conn),
		StandardTypes:  services.NewStandardTypeService(conn),
		QuantTypes:     quantTypeService,
		Inputs:         services.NewInputService(conn),
		Imports:        services.NewImportService(conn),
		Lookups:        services.NewLookupService(remote),
	})
	server := &http.Server{
		Addr:              cfg.Server.Host,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server is running on %s", cfg.Server.Host)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Error starting server on %s: %v", cfg.Server.Host, err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown: %v", err)
	}
}
