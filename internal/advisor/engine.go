package advisor

import "fmt"

// Policy constants for the recommendation rules.
const (
	// TrafficDelayThresholdMinutes is the delay above which transit
	// wins regardless of raw travel times.
	TrafficDelayThresholdMinutes = 20

	// TimeDifferenceThresholdMinutes is how much faster transit must
	// be before it is recommended on time alone.
	TimeDifferenceThresholdMinutes = 20

	// HighAQIThreshold is the air quality index above which driving
	// is preferred when times are comparable.
	HighAQIThreshold = 150
)

// TravelMode is the recommended way to commute.
type TravelMode string

const (
	ModeDrive   TravelMode = "drive"
	ModeTransit TravelMode = "transit"
	ModeEither  TravelMode = "either"
	ModeNone    TravelMode = "none"
)

// Recommendation is the engine's output for one signal set.
type Recommendation struct {
	// Mode is the recommended travel mode.
	Mode TravelMode `json:"mode"`

	// Reason identifies the rule that produced this recommendation.
	Reason string `json:"reason"`

	// Summary is the human-readable advice text.
	Summary string `json:"summary"`
}

// A rule pairs a match predicate with a renderer. Rules are evaluated
// in declaration order; the first match wins.
type rule struct {
	reason  string
	matches func(CommuteSignals) bool
	render  func(CommuteSignals) Recommendation
}

var rules = []rule{
	{
		// Adverse weather outranks every time or cost comparison,
		// even when driving data is missing.
		reason:  "adverse_weather",
		matches: func(s CommuteSignals) bool { return s.Weather != nil && s.Weather.Condition.IsAdverse() },
		render:  renderAdverseWeather,
	},
	{
		reason: "heavy_traffic",
		matches: func(s CommuteSignals) bool {
			return bothLegsKnown(s) && s.Driving.TrafficDelayMinutes > TrafficDelayThresholdMinutes
		},
		render: func(s CommuteSignals) Recommendation {
			return Recommendation{
				Mode:   ModeTransit,
				Reason: "heavy_traffic",
				Summary: fmt.Sprintf(
					"Take public transit. Traffic is heavy, with a delay of ~%d minutes. It will be much faster.",
					s.Driving.TrafficDelayMinutes),
			}
		},
	},
	{
		reason: "transit_faster",
		matches: func(s CommuteSignals) bool {
			return bothLegsKnown(s) &&
				s.Driving.TravelTimeMinutes-s.Transit.TravelTimeMinutes > TimeDifferenceThresholdMinutes
		},
		render: func(s CommuteSignals) Recommendation {
			return Recommendation{
				Mode:   ModeTransit,
				Reason: "transit_faster",
				Summary: fmt.Sprintf("Take public transit. It's about %d minutes faster.",
					s.Driving.TravelTimeMinutes-s.Transit.TravelTimeMinutes),
			}
		},
	},
	{
		reason: "high_aqi",
		matches: func(s CommuteSignals) bool {
			return bothLegsKnown(s) && s.Air != nil && s.Air.AQI != nil && *s.Air.AQI > HighAQIThreshold
		},
		render: func(s CommuteSignals) Recommendation {
			return Recommendation{
				Mode:   ModeDrive,
				Reason: "high_aqi",
				Summary: fmt.Sprintf(
					"Driving is recommended due to high AQI (%d). Commute times are comparable, but a car offers better protection.",
					*s.Air.AQI),
			}
		},
	},
	{
		reason:  "comparable",
		matches: bothLegsKnown,
		render: func(s CommuteSignals) Recommendation {
			return Recommendation{
				Mode:   ModeEither,
				Reason: "comparable",
				Summary: fmt.Sprintf(
					"Commute times are comparable. Choose based on your preference. Traffic delay is ~%d minutes.",
					s.Driving.TrafficDelayMinutes),
			}
		},
	},
	{
		reason:  "driving_only",
		matches: func(s CommuteSignals) bool { return s.Driving != nil },
		render: func(s CommuteSignals) Recommendation {
			return Recommendation{
				Mode:   ModeDrive,
				Reason: "driving_only",
				Summary: fmt.Sprintf(
					"Driving is the recommended option. Estimated time is ~%d minutes with a traffic delay of ~%d minutes.",
					s.Driving.TravelTimeMinutes, s.Driving.TrafficDelayMinutes),
			}
		},
	},
	{
		reason:  "transit_only",
		matches: func(s CommuteSignals) bool { return s.Transit != nil },
		render: func(s CommuteSignals) Recommendation {
			return Recommendation{
				Mode:   ModeTransit,
				Reason: "transit_only",
				Summary: fmt.Sprintf("Public transit is the recommended option. Estimated time is ~%d minutes.",
					s.Transit.TravelTimeMinutes),
			}
		},
	},
	{
		reason:  "no_data",
		matches: func(s CommuteSignals) bool { return !s.HasAnyLeg() },
		render: func(CommuteSignals) Recommendation {
			return Recommendation{
				Mode:    ModeNone,
				Reason:  "no_data",
				Summary: "No commute data available. Cannot provide a time-based recommendation.",
			}
		},
	},
}

// Recommend maps a signal set to a recommendation by evaluating the
// rule list in strict priority order. It is pure: no I/O, deterministic
// for any input including the all-absent case.
func Recommend(signals CommuteSignals) Recommendation {
	for _, r := range rules {
		if r.matches(signals) {
			return r.render(signals)
		}
	}
	// Unreachable: any leg matches a mode rule, no legs matches no_data.
	return Recommendation{Mode: ModeNone, Reason: "no_data"}
}

func bothLegsKnown(s CommuteSignals) bool {
	return s.Driving != nil && s.Transit != nil
}

func renderAdverseWeather(s CommuteSignals) Recommendation {
	condition := s.Weather.Condition.Display()
	summary := fmt.Sprintf("Driving is strongly advised due to %s. Driving time is currently unknown. Stay safe!", condition)
	if s.Driving != nil {
		summary = fmt.Sprintf("Driving is strongly advised due to %s. Expect a travel time of ~%d minutes. Stay safe!",
			condition, s.Driving.TravelTimeMinutes)
	}
	return Recommendation{
		Mode:    ModeDrive,
		Reason:  "adverse_weather",
		Summary: summary,
	}
}
