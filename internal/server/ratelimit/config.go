package ratelimit

import (
	"net/http"
	"time"

	"github.com/jonathan/csb-validator/internal/config"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// FromSettings builds the limiter configuration from the server settings.
func FromSettings(settings config.RateLimitConfig) *Config {
	if !settings.Enabled {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:         true,
		CleanupInterval: 5 * time.Minute,
		IdleTTL:         time.Hour,
		EndpointConfigs: DefaultEndpointConfigs(settings.PerMinute, settings.Burst),
	}
}

// DefaultEndpointConfigs returns the endpoint-specific configurations.
// Only validation does real work; everything else is unlimited.
func DefaultEndpointConfigs(perMinute, burst int) []EndpointConfig {
	return []EndpointConfig{
		{Path: "/validate", Method: http.MethodPost, Limit: perMinute, Window: time.Minute, Burst: burst},
	}
}
