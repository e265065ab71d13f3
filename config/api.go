package config

import (
	"strings"
	"time"
)

// APIConfig contains backend API client configuration.
type APIConfig struct {
	// BaseURL is the backend API root (e.g., "http://localhost:8000/api/v1").
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8000/api/v1"`

	// Timeout bounds each request to the backend.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimSuffix(strings.TrimSpace(a.BaseURL), "/")

	// Clamp the timeout to a sane range
	if a.Timeout < time.Second {
		a.Timeout = time.Second
	}
	if a.Timeout > 5*time.Minute {
		a.Timeout = 5 * time.Minute
	}
}
