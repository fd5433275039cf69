// Package config provides explicit application configuration loaded from
// the environment. Provider credentials are validated at startup so a
// missing key fails fast instead of surfacing as a runtime branch.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all runtime configuration for the advisor service.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// Environment is the deployment environment (development, production).
	Environment string

	// WAQIToken is the World Air Quality Index API token (required).
	WAQIToken string

	// GoogleMapsAPIKey is the Google Maps Directions API key (required).
	GoogleMapsAPIKey string

	// OpenWeatherAPIKey is the OpenWeatherMap API key, used for both
	// geocoding and the OneCall weather endpoint (required).
	OpenWeatherAPIKey string

	// ProviderTimeout is the fixed timeout for each outbound provider call.
	ProviderTimeout time.Duration

	// OTLPEndpoint is the OpenTelemetry collector endpoint.
	OTLPEndpoint string

	// TelemetryEnabled controls whether traces/metrics are exported.
	TelemetryEnabled bool
}

// FromEnv creates a Config from environment variables.
func FromEnv() Config {
	timeout, err := time.ParseDuration(getEnvOrDefault("PROVIDER_TIMEOUT", "10s"))
	if err != nil {
		timeout = 10 * time.Second
	}

	return Config{
		Port:              getEnvOrDefault("APP_PORT", "8080"),
		Environment:       getEnvOrDefault("APP_ENV", "development"),
		WAQIToken:         os.Getenv("WAQI_API_TOKEN"),
		GoogleMapsAPIKey:  os.Getenv("GOOGLE_MAPS_API_KEY"),
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		ProviderTimeout:   timeout,
		OTLPEndpoint:      getEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		TelemetryEnabled:  os.Getenv("OTEL_ENABLED") == "true",
	}
}

// Validate checks that all required credentials are present.
// Returns a single error naming every missing key.
func (c Config) Validate() error {
	var missing []string

	if c.WAQIToken == "" {
		missing = append(missing, "WAQI_API_TOKEN")
	}
	if c.GoogleMapsAPIKey == "" {
		missing = append(missing, "GOOGLE_MAPS_API_KEY")
	}
	if c.OpenWeatherAPIKey == "" {
		missing = append(missing, "OPENWEATHER_API_KEY")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if c.ProviderTimeout <= 0 {
		return errors.New("provider timeout must be positive")
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
