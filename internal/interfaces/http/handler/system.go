package handler

import (
	"runtime"
	"time"

	variantapp "github.com/erp/variants/internal/application/variant"
	"github.com/gin-gonic/gin"
)

// SystemHandler handles liveness and system information endpoints
type SystemHandler struct {
	BaseHandler
	name      string
	version   string
	settings  variantapp.Settings
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(name, version string, settings variantapp.Settings) *SystemHandler {
	return &SystemHandler{
		name:      name,
		version:   version,
		settings:  settings,
		startTime: time.Now(),
	}
}

// EngineInfo reports the limits every preview runs under
type EngineInfo struct {
	Currency           string `json:"currency"`
	MaxCombinations    int    `json:"max_combinations"`
	DefaultPricingMode string `json:"default_pricing_mode"`
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string     `json:"name"`
	Version   string     `json:"version"`
	GoVersion string     `json:"go_version"`
	Uptime    string     `json:"uptime"`
	Engine    EngineInfo `json:"engine"`
}

// GetSystemInfo returns version, uptime and engine limits
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	h.Success(c, SystemInfoResponse{
		Name:      h.name,
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Engine: EngineInfo{
			Currency:           string(h.settings.Currency),
			MaxCombinations:    h.settings.MaxCombinations,
			DefaultPricingMode: string(h.settings.DefaultPricingMode),
		},
	})
}

// PingResponse represents the ping response
type PingResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Ping answers with pong and the server time
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// HealthResponse is the liveness probe body
type HealthResponse struct {
	Status string `json:"status"`
}

// Health is the liveness probe
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, HealthResponse{Status: "ok"})
}
