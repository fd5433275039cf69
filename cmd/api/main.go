// Package main provides the entrypoint for the Smart Commute API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/smartcommute/smartcommute/internal/advisor"
	"github.com/smartcommute/smartcommute/internal/airquality/waqi"
	"github.com/smartcommute/smartcommute/internal/api"
	"github.com/smartcommute/smartcommute/internal/api/middleware"
	"github.com/smartcommute/smartcommute/internal/config"
	"github.com/smartcommute/smartcommute/internal/directions/googlemaps"
	geocodeowm "github.com/smartcommute/smartcommute/internal/geocode/openweathermap"
	"github.com/smartcommute/smartcommute/internal/provider/resilience"
	"github.com/smartcommute/smartcommute/internal/telemetry"
	weatherowm "github.com/smartcommute/smartcommute/internal/weather/openweathermap"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "smartcommute-api"

	// Load .env for local development; real deployments use the environment.
	_ = godotenv.Load()

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting Smart Commute API")

	// Load and validate configuration; a missing credential is fatal here,
	// not a branch somewhere in a request path.
	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Initialize OpenTelemetry
	ctx := context.Background()

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Enabled:        cfg.TelemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if cfg.TelemetryEnabled {
		log.Info().
			Str("otlp_endpoint", cfg.OTLPEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Provider registry tracks circuit state for the status endpoint.
	registry := resilience.NewRegistry()

	// Initialize provider clients, each behind its own circuit breaker.
	airClient := waqi.NewClient(waqi.ClientConfig{
		Token:      cfg.WAQIToken,
		HTTPClient: resilientHTTPClient(waqi.ProviderName, cfg.ProviderTimeout, registry),
	})
	geoClient := geocodeowm.NewClient(geocodeowm.ClientConfig{
		APIKey:     cfg.OpenWeatherAPIKey,
		HTTPClient: resilientHTTPClient(geocodeowm.ProviderName, cfg.ProviderTimeout, registry),
	})
	weatherClient := weatherowm.NewClient(weatherowm.ClientConfig{
		APIKey:     cfg.OpenWeatherAPIKey,
		HTTPClient: resilientHTTPClient(weatherowm.ProviderName, cfg.ProviderTimeout, registry),
	})
	directionsClient := googlemaps.NewClient(googlemaps.ClientConfig{
		APIKey:     cfg.GoogleMapsAPIKey,
		HTTPClient: resilientHTTPClient(googlemaps.ProviderName, cfg.ProviderTimeout, registry),
		Logger:     log,
	})
	log.Info().Int("providers", registry.ProviderCount()).Msg("provider clients initialized")

	// Initialize the advisor service
	advisorService := advisor.NewService(advisor.ServiceConfig{
		AirQuality: airClient,
		Geocoder:   geoClient,
		Weather:    weatherClient,
		Directions: directionsClient,
		Logger:     log,
	})
	log.Info().Msg("advisor service initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:        Version,
		BuildTime:      BuildTime,
		Logger:         log,
		ServiceName:    serviceName,
		Metrics:        metrics,
		AdvisorService: advisorService,
		Registry:       registry,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}

// resilientHTTPClient builds a registry-tracked HTTP client for one provider.
func resilientHTTPClient(name string, timeout time.Duration, registry *resilience.Registry) *resilience.Client {
	clientCfg := resilience.DefaultClientConfig(name)
	clientCfg.Timeout = timeout
	clientCfg.Registry = registry
	return resilience.NewClient(clientCfg)
}
