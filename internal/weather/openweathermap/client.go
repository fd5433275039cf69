// Package openweathermap provides a client for the OpenWeatherMap
// OneCall API 3.0.
package openweathermap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/smartcommute/smartcommute/internal/provider/resilience"
	"github.com/smartcommute/smartcommute/internal/weather"
)

const (
	// ProviderName identifies this weather provider.
	ProviderName = "openweathermap"

	// DefaultOneCallURL is the OpenWeatherMap OneCall API 3.0 base URL.
	DefaultOneCallURL = "https://api.openweathermap.org/data/3.0/onecall"
)

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the OpenWeatherMap client.
type ClientConfig struct {
	// APIKey is the OpenWeatherMap API key (required).
	APIKey string

	// OneCallURL is the OneCall API URL (optional, defaults to OneCall 3.0).
	OneCallURL string

	// HTTPClient is the HTTP client to use.
	// If nil, a default single-attempt resilient client is created.
	HTTPClient HTTPDoer

	// Timeout for individual API requests (default: 10s).
	Timeout time.Duration
}

// Client is an OpenWeatherMap OneCall API client.
type Client struct {
	apiKey     string
	oneCallURL string
	httpClient HTTPDoer
}

// NewClient creates a new OpenWeatherMap client.
func NewClient(cfg ClientConfig) *Client {
	oneCallURL := cfg.OneCallURL
	if oneCallURL == "" {
		oneCallURL = DefaultOneCallURL
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
		oneCallURL: oneCallURL,
		httpClient: httpClient,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// GetReport fetches the current conditions, daily summary, alerts, and
// hourly forecast for a location in a single OneCall request.
func (c *Client) GetReport(ctx context.Context, lat, lon float64) (*weather.Report, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, weather.ErrInvalidCoordinates
	}

	url := fmt.Sprintf("%s?lat=%.6f&lon=%.6f&exclude=minutely&units=metric&appid=%s",
		c.oneCallURL, lat, lon, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
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

	var owmResp oneCallResponse
	if err := json.NewDecoder(resp.Body).Decode(&owmResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return c.toReport(&owmResp), nil
}

// toReport converts the OneCall response to the domain model.
func (c *Client) toReport(resp *oneCallResponse) *weather.Report {
	report := &weather.Report{
		Lat:         resp.Lat,
		Lon:         resp.Lon,
		Temperature: resp.Current.Temp,
		Condition:   weather.ConditionUnknown,
		Hourly:      make([]weather.HourlyForecast, 0, len(resp.Hourly)),
		FetchedAt:   time.Now(),
	}

	if len(resp.Current.Weather) > 0 {
		report.Condition = mapCondition(resp.Current.Weather[0].Main)
		report.Description = resp.Current.Weather[0].Description
	}

	if len(resp.Daily) > 0 {
		report.DailySummary = resp.Daily[0].Summary
	}

	for _, a := range resp.Alerts {
		report.Alerts = append(report.Alerts, weather.Alert{
			Sender:      a.SenderName,
			Event:       a.Event,
			Description: a.Description,
			Start:       time.Unix(a.Start, 0),
			End:         time.Unix(a.End, 0),
		})
	}

	for _, h := range resp.Hourly {
		hourly := weather.HourlyForecast{
			Time:        time.Unix(h.Dt, 0),
			Temperature: h.Temp,
			Condition:   weather.ConditionUnknown,
			PrecipProb:  h.Pop,
		}
		if len(h.Weather) > 0 {
			hourly.Condition = mapCondition(h.Weather[0].Main)
		}
		report.Hourly = append(report.Hourly, hourly)
	}

	return report
}

// mapCondition maps an OpenWeatherMap condition to the domain condition.
func mapCondition(owmCondition string) weather.Condition {
	switch owmCondition {
	case "Clear":
		return weather.ConditionClear
	case "Clouds":
		return weather.ConditionClouds
	case "Rain":
		return weather.ConditionRain
	case "Drizzle":
		return weather.ConditionDrizzle
	case "Thunderstorm":
		return weather.ConditionThunderstorm
	case "Snow":
		return weather.ConditionSnow
	case "Mist":
		return weather.ConditionMist
	case "Fog":
		return weather.ConditionFog
	case "Haze", "Dust", "Sand", "Ash", "Squall", "Tornado":
		return weather.ConditionHaze
	default:
		return weather.ConditionUnknown
	}
}

// OpenWeatherMap OneCall API response structures.

type oneCallResponse struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Current struct {
		Dt      int64   `json:"dt"`
		Temp    float64 `json:"temp"`
		Weather []struct {
			ID          int    `json:"id"`
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"current"`
	Daily []struct {
		Dt      int64  `json:"dt"`
		Summary string `json:"summary"`
	} `json:"daily"`
	Alerts []struct {
		SenderName  string `json:"sender_name"`
		Event       string `json:"event"`
		Description string `json:"description"`
		Start       int64  `json:"start"`
		End         int64  `json:"end"`
	} `json:"alerts"`
	Hourly []struct {
		Dt      int64   `json:"dt"`
		Temp    float64 `json:"temp"`
		Pop     float64 `json:"pop"` // Probability of precipitation
		Weather []struct {
			ID          int    `json:"id"`
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"hourly"`
}
