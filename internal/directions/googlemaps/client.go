// Package googlemaps provides a client for the Google Maps Directions API.
package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartcommute/smartcommute/internal/directions"
	"github.com/smartcommute/smartcommute/internal/location"
	"github.com/smartcommute/smartcommute/internal/provider/resilience"
)

const (
	// ProviderName identifies this routing provider.
	ProviderName = "googlemaps"

	// DefaultBaseURL is the Google Maps Directions API base URL.
	DefaultBaseURL = "https://maps.googleapis.com/maps/api/directions/json"
)

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the Google Maps client.
type ClientConfig struct {
	// APIKey is the Google Maps API key (required).
	APIKey string

	// BaseURL is the API base URL (optional).
	BaseURL string

	// HTTPClient is the HTTP client to use.
	// If nil, a default single-attempt resilient client is created.
	HTTPClient HTTPDoer

	// Timeout for individual API requests (default: 10s).
	Timeout time.Duration

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is a Google Maps Directions API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPDoer
	logger     zerolog.Logger
}

// NewClient creates a new Google Maps client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		clientCfg := resilience.DefaultClientConfig(ProviderName)
		if cfg.Timeout != 0 {
			clientCfg.Timeout = cfg.Timeout
		}
		httpClient = resilience.NewClient(clientCfg)
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(baseURL, "?"),
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Google Directions API response structures (subset relied upon).

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Legs []struct {
			Duration          *durationValue `json:"duration"`
			DurationInTraffic *durationValue `json:"duration_in_traffic"`
		} `json:"legs"`
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
	} `json:"routes"`
}

type durationValue struct {
	Value int64  `json:"value"` // seconds
	Text  string `json:"text"`
}

// GetLeg fetches the commute leg timing between origin and destination
// for the given mode. Driving requests a live traffic-aware duration
// (departure_time=now) and derives the delay against the free-flow
// baseline, clamped to zero; transit legs always report zero delay.
func (c *Client) GetLeg(ctx context.Context, origin, destination location.Location, mode directions.Mode) (*directions.Leg, error) {
	params := url.Values{}
	params.Set("origin", origin.Query())
	params.Set("destination", destination.Query())
	params.Set("mode", string(mode))
	params.Set("key", c.apiKey)
	if mode == directions.ModeDriving {
		// Required for the traffic prediction in duration_in_traffic.
		params.Set("departure_time", "now")
	}

	reqURL := c.baseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	c.logger.Debug().
		Str("mode", string(mode)).
		Stringer("origin", origin).
		Stringer("destination", destination).
		Msg("requesting directions from Google Maps")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var dirResp directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dirResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if dirResp.Status != "OK" {
		if dirResp.Status == "ZERO_RESULTS" {
			return nil, directions.ErrNoRouteFound
		}
		return nil, fmt.Errorf("directions status %q: %w", dirResp.Status, directions.ErrProviderUnavailable)
	}

	return c.toLeg(&dirResp, mode)
}

// toLeg extracts the first route's first leg into the domain model.
func (c *Client) toLeg(resp *directionsResponse, mode directions.Mode) (*directions.Leg, error) {
	if len(resp.Routes) == 0 || len(resp.Routes[0].Legs) == 0 {
		return nil, directions.ErrNoRouteFound
	}

	apiLeg := resp.Routes[0].Legs[0]
	if apiLeg.Duration == nil {
		return nil, fmt.Errorf("leg missing duration: %w", directions.ErrProviderUnavailable)
	}

	// Prefer the traffic-aware duration when present.
	travelSecs := apiLeg.Duration.Value
	if apiLeg.DurationInTraffic != nil {
		travelSecs = apiLeg.DurationInTraffic.Value
	}

	leg := &directions.Leg{
		Mode:              mode,
		TravelTimeMinutes: roundMinutes(travelSecs),
		GeometryPolyline:  resp.Routes[0].OverviewPolyline.Points,
		FetchedAt:         time.Now(),
	}

	if mode == directions.ModeDriving && apiLeg.DurationInTraffic != nil {
		delay := roundMinutes(apiLeg.DurationInTraffic.Value - apiLeg.Duration.Value)
		// Lighter-than-baseline traffic is no delay.
		if delay < 0 {
			delay = 0
		}
		leg.TrafficDelayMinutes = delay
	}

	return leg, nil
}

// roundMinutes converts seconds to the nearest whole minute.
func roundMinutes(seconds int64) int {
	return int(math.Round(float64(seconds) / 60.0))
}
