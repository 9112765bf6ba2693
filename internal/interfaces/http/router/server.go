package router

import (
	"time"

	"github.com/erp/variants/internal/infrastructure/logger"
	"github.com/erp/variants/internal/interfaces/http/handler"
	"github.com/erp/variants/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Options wires handlers and middleware settings into an engine
type Options struct {
	Logger         *zap.Logger
	CORS           middleware.CORSConfig
	Security       middleware.SecurityConfig
	MaxBodySize    int64
	RequestTimeout time.Duration
	TrustedProxies []string
	// RateLimiter guards the preview endpoint; nil disables limiting
	RateLimiter *middleware.RateLimiter

	Variants *handler.VariantHandler
	System   *handler.SystemHandler
}

// NewEngine builds the gin engine with the global middleware chain and all
// routes mounted: /health at the root, the rest under /api/v1.
func NewEngine(opts Options) (*gin.Engine, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, err
	}

	// RequestID runs first so every later middleware can tag its output
	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		logger.GinMiddleware(log, "/health", APIPrefix+"/system/ping"),
		middleware.SecureWithConfig(opts.Security),
		middleware.CORSWithConfig(opts.CORS),
		middleware.BodyLimit(opts.MaxBodySize),
		middleware.Timeout(opts.RequestTimeout),
	)

	engine.GET("/health", opts.System.Health)

	system := newResourceGroup("/system").
		get("/info", opts.System.GetSystemInfo).
		get("/ping", opts.System.Ping)

	variants := newResourceGroup("/variants").
		post("/preview", middleware.RateLimit(opts.RateLimiter), opts.Variants.Preview).
		get("/suggestions", opts.Variants.Suggestions).
		get("/events", opts.Variants.RecentEvents)

	mountAPI(engine, log, system, variants)

	return engine, nil
}
