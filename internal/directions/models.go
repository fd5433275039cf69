// Package directions provides commute leg timings for commute advice.
package directions

import (
	"errors"
	"time"
)

// Directions errors.
var (
	ErrProviderUnavailable = errors.New("directions provider unavailable")
	ErrNoRouteFound        = errors.New("no route found")
)

// Mode represents a travel mode.
type Mode string

const (
	ModeDriving Mode = "driving"
	ModeTransit Mode = "transit"
)

// Leg represents the timing of a single commute leg in one travel mode.
type Leg struct {
	// Mode is the travel mode for this leg.
	Mode Mode

	// TravelTimeMinutes is the expected door-to-door travel time.
	// For driving this is the live traffic-aware estimate.
	TravelTimeMinutes int

	// TrafficDelayMinutes is how much slower the leg is than its
	// free-flow baseline. Always 0 for transit, and never negative:
	// lighter-than-baseline traffic is reported as no delay.
	TrafficDelayMinutes int

	// GeometryPolyline is the route geometry as an encoded polyline
	// (precision 5). Empty when the provider returns no geometry.
	GeometryPolyline string

	// FetchedAt is when the leg timing was retrieved.
	FetchedAt time.Time
}

// TrafficCondition labels the leg's traffic for display.
type TrafficCondition string

const (
	TrafficHeavy    TrafficCondition = "HEAVY"
	TrafficModerate TrafficCondition = "MODERATE"
	TrafficLight    TrafficCondition = "LIGHT"
)

// TrafficCondition returns the display label for the leg's delay.
func (l *Leg) TrafficCondition() TrafficCondition {
	switch {
	case l.TrafficDelayMinutes > 20:
		return TrafficHeavy
	case l.TrafficDelayMinutes > 10:
		return TrafficModerate
	default:
		return TrafficLight
	}
}
