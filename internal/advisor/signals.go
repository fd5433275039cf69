// Package advisor assembles commute signals from the data providers and
// turns them into a single prioritized recommendation.
package advisor

import (
	"github.com/smartcommute/smartcommute/internal/airquality"
	"github.com/smartcommute/smartcommute/internal/directions"
	"github.com/smartcommute/smartcommute/internal/weather"
)

// CommuteSignals is the uniform signal set for one origin/destination
// query. Every field is independently optional: a nil field means the
// corresponding provider call failed or returned no usable data. The
// zero value (all nil) is valid input for Recommend.
type CommuteSignals struct {
	Air     *airquality.Observation
	Weather *weather.Report
	Driving *directions.Leg
	Transit *directions.Leg
}

// HasAnyLeg reports whether at least one commute leg is known.
func (s CommuteSignals) HasAnyLeg() bool {
	return s.Driving != nil || s.Transit != nil
}
