// Package airquality provides air quality data for commute advice.
package airquality

import (
	"errors"
	"time"
)

// Provider errors.
var (
	ErrProviderUnavailable = errors.New("air quality provider unavailable")
)

// Observation represents the air quality at a location at fetch time.
// This is the internal normalized format for all air quality data.
type Observation struct {
	// AQI is the air quality index. Nil when the provider reported a
	// non-numeric index; the observation is still valid in that case.
	AQI *int

	// DominantPollutant is the pollutant driving the index, e.g. "pm25".
	// Empty if the provider did not report one.
	DominantPollutant string

	// FetchedAt is when the observation was retrieved.
	FetchedAt time.Time
}

// Severity buckets for the US EPA AQI scale.
type Severity string

const (
	SeverityGood          Severity = "GOOD"
	SeverityModerate      Severity = "MODERATE"
	SeveritySensitive     Severity = "UNHEALTHY_FOR_SENSITIVE"
	SeverityUnhealthy     Severity = "UNHEALTHY"
	SeverityVeryUnhealthy Severity = "VERY_UNHEALTHY"
	SeverityHazardous     Severity = "HAZARDOUS"
	SeverityUnknown       Severity = "UNKNOWN"
)

// Severity returns the EPA severity bucket for the observation.
func (o *Observation) Severity() Severity {
	if o.AQI == nil {
		return SeverityUnknown
	}
	switch aqi := *o.AQI; {
	case aqi <= 50:
		return SeverityGood
	case aqi <= 100:
		return SeverityModerate
	case aqi <= 150:
		return SeveritySensitive
	case aqi <= 200:
		return SeverityUnhealthy
	case aqi <= 300:
		return SeverityVeryUnhealthy
	default:
		return SeverityHazardous
	}
}
