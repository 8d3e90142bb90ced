package config

import (
	"time"
)

type AppConfig struct {
	RateLimitEnabled bool
	RateLimitConfigs map[string]RateLimitConfig

	EnforceHTTPS bool

	Environment string
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// GetDefaultConfig is the development baseline. Per-endpoint limits here
// are coarse; the limiter keeps its own finer method-aware table.
func GetDefaultConfig() *AppConfig {
	return &AppConfig{
		RateLimitEnabled: true,
		RateLimitConfigs: map[string]RateLimitConfig{
			"/signup":     {Requests: 5, Window: time.Minute},
			"/auth":       {Requests: 10, Window: time.Minute},
			"/todos":      {Requests: 100, Window: time.Minute},
			"/activity":   {Requests: 60, Window: time.Minute},
			"/reports":    {Requests: 30, Window: time.Minute},
			"/categories": {Requests: 30, Window: time.Minute},
		},
		EnforceHTTPS: false,
		Environment:  "development",
	}
}
