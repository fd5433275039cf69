// Package weather provides weather data for commute advice.
package weather

import (
	"errors"
	"strings"
	"time"
)

// Weather errors.
var (
	ErrProviderUnavailable = errors.New("weather provider unavailable")
	ErrInvalidCoordinates  = errors.New("invalid coordinates")
)

// Condition represents the general weather condition.
type Condition string

const (
	ConditionClear        Condition = "CLEAR"
	ConditionClouds       Condition = "CLOUDS"
	ConditionRain         Condition = "RAIN"
	ConditionDrizzle      Condition = "DRIZZLE"
	ConditionThunderstorm Condition = "THUNDERSTORM"
	ConditionSnow         Condition = "SNOW"
	ConditionMist         Condition = "MIST"
	ConditionFog          Condition = "FOG"
	ConditionHaze         Condition = "HAZE"
	ConditionUnknown      Condition = "UNKNOWN"
)

// IsAdverse reports whether the condition makes walking to or waiting
// for transit unsafe or impractical, which makes driving the safer call
// regardless of commute times.
func (c Condition) IsAdverse() bool {
	switch c {
	case ConditionRain, ConditionThunderstorm, ConditionDrizzle,
		ConditionSnow, ConditionMist, ConditionFog:
		return true
	default:
		return false
	}
}

// Display returns the condition in the title-case form the provider
// reports it, for use in user-facing text.
func (c Condition) Display() string {
	s := string(c)
	if len(s) < 2 {
		return s
	}
	return s[:1] + strings.ToLower(s[1:])
}

// Report represents the weather at a location: current conditions, the
// day's summary, active alerts, and the short-range hourly forecast.
type Report struct {
	// Location coordinates
	Lat float64
	Lon float64

	// Current conditions
	Temperature float64 // Celsius
	Condition   Condition
	Description string

	// DailySummary is the provider's human-readable summary for today.
	// Empty if the provider did not supply one.
	DailySummary string

	// Alerts are active government weather alerts, in provider order.
	Alerts []Alert

	// Hourly is the short-range forecast, in chronological order.
	Hourly []HourlyForecast

	// FetchedAt is when the report was retrieved.
	FetchedAt time.Time
}

// Alert represents a government weather alert.
type Alert struct {
	Sender      string
	Event       string
	Description string
	Start       time.Time
	End         time.Time
}

// HourlyForecast represents forecast conditions for a specific hour.
type HourlyForecast struct {
	Time        time.Time
	Temperature float64 // Celsius
	Condition   Condition
	PrecipProb  float64 // Probability of precipitation (0-1)
}
