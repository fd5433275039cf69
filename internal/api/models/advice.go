package models

// LocationInput is either explicit coordinates or a place name.
// Exactly one of Point and Name must be set; the caller states its
// intent instead of the server guessing from string contents.
type LocationInput struct {
	Point *Point `json:"point,omitempty"`
	Name  string `json:"name,omitempty"`
}

// AdviceRequest is the body of POST /v1/advice:compute.
type AdviceRequest struct {
	Origin      LocationInput `json:"origin"`
	Destination LocationInput `json:"destination"`
}

// AirQualityReading is the normalized air quality portion of a report.
type AirQualityReading struct {
	AQI               *int   `json:"aqi,omitempty"`
	DominantPollutant string `json:"dominantPollutant,omitempty"`
	Severity          string `json:"severity"`
}

// WeatherAlert is a government weather alert attached to a report.
type WeatherAlert struct {
	Sender      string    `json:"sender,omitempty"`
	Event       string    `json:"event"`
	Description string    `json:"description,omitempty"`
	Start       Timestamp `json:"start"`
	End         Timestamp `json:"end"`
}

// HourlyForecastEntry is one hour of the short-range outlook.
type HourlyForecastEntry struct {
	Time        Timestamp `json:"time"`
	Temperature float64   `json:"temperature"`
	Condition   string    `json:"condition"`
	PrecipProb  float64   `json:"precipProb"`
}

// WeatherSummary is the normalized weather portion of a report.
type WeatherSummary struct {
	Temperature  float64               `json:"temperature"`
	Condition    string                `json:"condition"`
	Description  string                `json:"description,omitempty"`
	DailySummary string                `json:"dailySummary,omitempty"`
	Alerts       []WeatherAlert        `json:"alerts,omitempty"`
	Hourly       []HourlyForecastEntry `json:"hourly,omitempty"`
}

// LegSummary describes one commute leg. Path holds the decoded route
// geometry when the provider returned it.
type LegSummary struct {
	Mode                string  `json:"mode"`
	TravelTimeMinutes   int     `json:"travelTimeMinutes"`
	TrafficDelayMinutes int     `json:"trafficDelayMinutes"`
	TrafficCondition    string  `json:"trafficCondition,omitempty"`
	Path                []Point `json:"path,omitempty"`
}

// Recommendation is the advice produced for a commute report.
type Recommendation struct {
	Mode    string `json:"mode"`
	Reason  string `json:"reason"`
	Summary string `json:"summary"`
}

// CommuteReport is the response of POST /v1/advice:compute. Signal
// sections are omitted when the corresponding provider was unavailable;
// the recommendation is always present.
type CommuteReport struct {
	Air            *AirQualityReading `json:"air,omitempty"`
	Weather        *WeatherSummary    `json:"weather,omitempty"`
	Driving        *LegSummary        `json:"driving,omitempty"`
	Transit        *LegSummary        `json:"transit,omitempty"`
	Recommendation Recommendation     `json:"recommendation"`
	GeneratedAt    Timestamp          `json:"generatedAt"`
}

// ForecastResponse is the response of GET /v1/forecast.
type ForecastResponse struct {
	Point       Point          `json:"point"`
	Weather     WeatherSummary `json:"weather"`
	GeneratedAt Timestamp      `json:"generatedAt"`
}
