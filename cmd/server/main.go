package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	variantapp "github.com/erp/variants/internal/application/variant"
	"github.com/erp/variants/internal/domain/shared/valueobject"
	"github.com/erp/variants/internal/infrastructure/config"
	"github.com/erp/variants/internal/infrastructure/event"
	"github.com/erp/variants/internal/infrastructure/logger"
	"github.com/erp/variants/internal/interfaces/http/handler"
	"github.com/erp/variants/internal/interfaces/http/middleware"
	"github.com/erp/variants/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logCfg := logger.ForEnvironment(cfg.App.Env)
	logCfg.Level = cfg.Log.Level
	logCfg.Format = cfg.Log.Format
	logCfg.Output = cfg.Log.Output
	logCfg.Fields = map[string]string{"service": cfg.App.Name, "version": version}
	log, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync(log)

	log.Info("Starting variant engine",
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Event bus: the journal always records, the logging handler is opt-in
	serializer := event.NewEventSerializer()
	event.RegisterVariantEvents(serializer)
	journal := event.NewJournal(serializer, cfg.Event.JournalSize)

	bus := event.NewInMemoryEventBus(log)
	bus.Subscribe(journal)
	if cfg.Event.LogEvents {
		bus.Subscribe(event.NewLoggingHandler(log))
	}
	if cfg.Event.StreamEnabled {
		stream, err := event.NewRedisStreamHandler(event.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, serializer, cfg.Event.StreamName, cfg.Event.StreamMaxLen, log)
		if err != nil {
			log.Fatal("Failed to connect event stream", zap.Error(err))
		}
		defer func() {
			_ = stream.Close()
		}()
		bus.Subscribe(stream)
		log.Info("Forwarding variant events to Redis stream", zap.String("stream", stream.Stream()))
	}
	if err := bus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := bus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	settings := variantapp.Settings{
		Currency:           valueobject.Currency(cfg.Engine.Currency),
		MaxCombinations:    cfg.Engine.MaxCombinations,
		DefaultPricingMode: cfg.Engine.PricingMode(),
	}
	previewService := variantapp.NewPreviewService(settings, bus, log.Named("variants"))

	var limiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitRequests > 0 {
		limiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		go limiter.Run(ctx)
	}

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	cors := middleware.DefaultCORSConfig()
	cors.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	cors.AllowMethods = cfg.HTTP.CORSAllowMethods
	cors.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	security := middleware.DefaultSecurityConfig()
	security.HSTSEnabled = cfg.App.IsProduction()

	engine, err := router.NewEngine(router.Options{
		Logger:         log,
		CORS:           cors,
		Security:       security,
		MaxBodySize:    cfg.HTTP.MaxBodySize,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		TrustedProxies: cfg.HTTP.TrustedProxies,
		RateLimiter:    limiter,
		Variants:       handler.NewVariantHandler(previewService, journal),
		System:         handler.NewSystemHandler(cfg.App.Name, version, previewService.Settings()),
	})
	if err != nil {
		log.Fatal("Failed to build HTTP engine", zap.Error(err))
	}

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}

	log.Info("Server exited gracefully")
}
