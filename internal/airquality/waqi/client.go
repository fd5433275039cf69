// Package waqi provides a client for the World Air Quality Index feed API.
package waqi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/smartcommute/smartcommute/internal/airquality"
	"github.com/smartcommute/smartcommute/internal/location"
	"github.com/smartcommute/smartcommute/internal/provider/resilience"
)

const (
	// ProviderName identifies this provider.
	ProviderName = "waqi"

	// DefaultBaseURL is the base URL for the WAQI API.
	DefaultBaseURL = "https://api.waqi.info"
)

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the WAQI client.
type ClientConfig struct {
	// Token is the WAQI API token (required).
	Token string

	// BaseURL is the API base URL (defaults to DefaultBaseURL).
	BaseURL string

	// HTTPClient is the HTTP client to use.
	// If nil, a default single-attempt resilient client is created.
	HTTPClient HTTPDoer

	// Timeout for individual API requests (default: 10s).
	Timeout time.Duration
}

// Client is a WAQI feed API client.
type Client struct {
	token      string
	baseURL    string
	httpClient HTTPDoer
}

// NewClient creates a new WAQI client.
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
		token:      cfg.Token,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// API response types (from the WAQI feed API).

type feedResponse struct {
	Status string   `json:"status"`
	Data   feedData `json:"data"`
}

type feedData struct {
	// AQI arrives as a number for most stations but as a string
	// (typically "-") when the station has no numeric index.
	AQI               json.RawMessage `json:"aqi"`
	DominantPollutant string          `json:"dominentpol"`
}

// GetObservation fetches the air quality feed for a location. Coordinate
// locations use the geo feed; named locations use the city feed.
func (c *Client) GetObservation(ctx context.Context, loc location.Location) (*airquality.Observation, error) {
	var feedPath string
	if lat, lon, ok := loc.Coordinates(); ok {
		feedPath = fmt.Sprintf("/feed/geo:%.6f;%.6f/", lat, lon)
	} else {
		name, _ := loc.Name()
		feedPath = "/feed/" + url.PathEscape(name) + "/"
	}

	reqURL := fmt.Sprintf("%s%s?token=%s", c.baseURL, feedPath, url.QueryEscape(c.token))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var feed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if feed.Status != "ok" {
		return nil, fmt.Errorf("feed status %q: %w", feed.Status, airquality.ErrProviderUnavailable)
	}

	return &airquality.Observation{
		AQI:               parseAQI(feed.Data.AQI),
		DominantPollutant: feed.Data.DominantPollutant,
		FetchedAt:         time.Now(),
	}, nil
}

// parseAQI extracts a non-negative integer AQI from the raw feed value.
// Non-numeric values (e.g. "-") yield nil without failing the call.
func parseAQI(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}

	s := strings.Trim(string(raw), `"`)
	aqi, err := strconv.Atoi(s)
	if err != nil || aqi < 0 {
		return nil
	}
	return &aqi
}
