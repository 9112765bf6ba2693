package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/erp/variants/internal/domain/shared/valueobject"
	"github.com/erp/variants/internal/domain/variant"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App    AppConfig
	Log    LogConfig
	HTTP   HTTPConfig
	Engine EngineConfig
	Event  EventConfig
	Redis  RedisConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	RequestTimeout   time.Duration
	MaxHeaderBytes   int
	MaxBodySize      int64
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
	TrustedProxies   []string

	// RateLimitRequests caps preview requests per client per window; 0 disables
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// EngineConfig holds variant engine limits and defaults
type EngineConfig struct {
	Currency           string
	MaxCombinations    int
	DefaultPricingMode string // uniform, per_variant
}

// EventConfig holds domain event bus configuration
type EventConfig struct {
	LogEvents   bool // log every published variant event at debug level
	JournalSize int  // number of recent events kept for inspection

	// StreamEnabled forwards events to the Redis stream StreamName
	StreamEnabled bool
	StreamName    string
	StreamMaxLen  int64
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with VARIANTS_ prefix (e.g., VARIANTS_LOG_LEVEL)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	return fromViper(v)
}

// LoadFile loads configuration from an explicit file path, still honouring
// VARIANTS_ environment overrides
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix("VARIANTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:      v.GetDuration("http.read_timeout"),
			WriteTimeout:     v.GetDuration("http.write_timeout"),
			IdleTimeout:      v.GetDuration("http.idle_timeout"),
			RequestTimeout:   v.GetDuration("http.request_timeout"),
			MaxHeaderBytes:   v.GetInt("http.max_header_bytes"),
			MaxBodySize:      v.GetInt64("http.max_body_size"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods: v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders: v.GetStringSlice("http.cors_allow_headers"),
			TrustedProxies:   v.GetStringSlice("http.trusted_proxies"),

			RateLimitRequests: v.GetInt("http.rate_limit_requests"),
			RateLimitWindow:   v.GetDuration("http.rate_limit_window"),
		},
		Engine: EngineConfig{
			Currency:           v.GetString("engine.currency"),
			MaxCombinations:    v.GetInt("engine.max_combinations"),
			DefaultPricingMode: v.GetString("engine.default_pricing_mode"),
		},
		Event: EventConfig{
			LogEvents:   v.GetBool("event.log_events"),
			JournalSize: v.GetInt("event.journal_size"),

			StreamEnabled: v.GetBool("event.stream_enabled"),
			StreamName:    v.GetString("event.stream_name"),
			StreamMaxLen:  v.GetInt64("event.stream_max_len"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "variant-engine"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}

	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.RequestTimeout == 0 {
		cfg.HTTP.RequestTimeout = 10 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if cfg.HTTP.MaxBodySize == 0 {
		cfg.HTTP.MaxBodySize = 2 << 20 // 2MB
	}
	// An empty origin list allows no cross-origin requests.
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"Content-Type", "Authorization", "X-Request-ID"}
	}
	if cfg.HTTP.RateLimitWindow == 0 {
		cfg.HTTP.RateLimitWindow = time.Minute
	}

	if cfg.Engine.Currency == "" {
		cfg.Engine.Currency = string(valueobject.DefaultCurrency)
	}
	if cfg.Engine.MaxCombinations == 0 {
		cfg.Engine.MaxCombinations = 500
	}
	if cfg.Engine.DefaultPricingMode == "" {
		cfg.Engine.DefaultPricingMode = string(variant.PricingUniform)
	}

	if cfg.Event.JournalSize == 0 {
		cfg.Event.JournalSize = 256
	}
	if cfg.Event.StreamName == "" {
		cfg.Event.StreamName = "variants:events"
	}
	if cfg.Event.StreamMaxLen == 0 {
		cfg.Event.StreamMaxLen = 10000
	}

	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	if c.HTTP.MaxBodySize < 0 {
		return fmt.Errorf("http.max_body_size cannot be negative")
	}
	if c.HTTP.RateLimitRequests < 0 || c.HTTP.RateLimitWindow < 0 {
		return fmt.Errorf("http.rate_limit_requests and http.rate_limit_window cannot be negative")
	}
	if c.Event.JournalSize < 0 {
		return fmt.Errorf("event.journal_size cannot be negative")
	}

	if _, err := valueobject.ParseCurrency(c.Engine.Currency); err != nil {
		return fmt.Errorf("engine.currency: %w", err)
	}
	if c.Engine.MaxCombinations < 0 {
		return fmt.Errorf("engine.max_combinations must be positive, got %d", c.Engine.MaxCombinations)
	}
	if _, ok := variant.ParsePricingMode(c.Engine.DefaultPricingMode); !ok {
		return fmt.Errorf("engine.default_pricing_mode must be uniform or per_variant, got %q", c.Engine.DefaultPricingMode)
	}

	if c.App.Env == "production" {
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("cors_allow_origins cannot be '*' in production (use specific origins)")
			}
		}
	}

	return nil
}

// IsProduction reports whether the app runs in production
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// PricingMode returns the parsed default pricing mode
func (e *EngineConfig) PricingMode() variant.PricingMode {
	mode, _ := variant.ParsePricingMode(e.DefaultPricingMode)
	return mode
}
