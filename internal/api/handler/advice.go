// Package handler provides HTTP handlers for the Smart Commute API.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/smartcommute/smartcommute/internal/advisor"
	"github.com/smartcommute/smartcommute/internal/api/models"
	"github.com/smartcommute/smartcommute/internal/api/response"
	"github.com/smartcommute/smartcommute/internal/directions"
	"github.com/smartcommute/smartcommute/internal/location"
	"github.com/smartcommute/smartcommute/internal/weather"
	"github.com/smartcommute/smartcommute/pkg/polyline"
)

// maxHourlyEntries caps the hourly forecast returned to clients.
const maxHourlyEntries = 12

// AdvisorService aggregates provider signals and serves forecasts.
type AdvisorService interface {
	Aggregate(ctx context.Context, origin, destination location.Location) advisor.CommuteSignals
	Forecast(ctx context.Context, lat, lon float64) (*weather.Report, error)
}

// AdviceHandler handles commute advice endpoints.
type AdviceHandler struct {
	advisor AdvisorService
}

// NewAdviceHandler creates a new AdviceHandler.
func NewAdviceHandler(svc AdvisorService) *AdviceHandler {
	return &AdviceHandler{advisor: svc}
}

// ComputeAdvice handles POST /v1/advice:compute - build a commute report.
func (h *AdviceHandler) ComputeAdvice(w http.ResponseWriter, r *http.Request) {
	var input models.AdviceRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	origin, fieldErrs := parseLocation(input.Origin, "origin")
	destination, destErrs := parseLocation(input.Destination, "destination")
	fieldErrs = append(fieldErrs, destErrs...)
	if len(fieldErrs) > 0 {
		response.BadRequest(w, r, "invalid advice request", fieldErrs)
		return
	}

	signals := h.advisor.Aggregate(r.Context(), origin, destination)
	recommendation := advisor.Recommend(signals)

	report := models.CommuteReport{
		Air:     toAirReading(signals),
		Weather: toWeatherSummary(signals.Weather),
		Driving: toLegSummary(signals.Driving),
		Transit: toLegSummary(signals.Transit),
		Recommendation: models.Recommendation{
			Mode:    string(recommendation.Mode),
			Reason:  recommendation.Reason,
			Summary: recommendation.Summary,
		},
		GeneratedAt: models.Timestamp(time.Now()),
	}

	response.JSON(w, r, http.StatusOK, report)
}

// parseLocation converts a LocationInput into a location value,
// collecting validation problems as field errors.
func parseLocation(input models.LocationInput, field string) (location.Location, []models.FieldError) {
	switch {
	case input.Point != nil && input.Name != "":
		return location.Location{}, []models.FieldError{
			{Field: field, Message: "point and name are mutually exclusive", Code: "AMBIGUOUS"},
		}
	case input.Point != nil:
		loc, err := location.FromCoordinates(input.Point.Lat, input.Point.Lon)
		if err != nil {
			return location.Location{}, []models.FieldError{
				{Field: field + ".point", Message: "coordinates out of range", Code: "OUT_OF_RANGE"},
			}
		}
		return loc, nil
	case input.Name != "":
		loc, err := location.FromName(input.Name)
		if err != nil {
			return location.Location{}, []models.FieldError{
				{Field: field + ".name", Message: "name must not be blank", Code: "REQUIRED"},
			}
		}
		return loc, nil
	default:
		return location.Location{}, []models.FieldError{
			{Field: field, Message: "either point or name is required", Code: "REQUIRED"},
		}
	}
}

func toAirReading(signals advisor.CommuteSignals) *models.AirQualityReading {
	obs := signals.Air
	if obs == nil {
		return nil
	}
	return &models.AirQualityReading{
		AQI:               obs.AQI,
		DominantPollutant: obs.DominantPollutant,
		Severity:          string(obs.Severity()),
	}
}

func toWeatherSummary(report *weather.Report) *models.WeatherSummary {
	if report == nil {
		return nil
	}

	summary := &models.WeatherSummary{
		Temperature:  report.Temperature,
		Condition:    string(report.Condition),
		Description:  report.Description,
		DailySummary: report.DailySummary,
	}

	for _, alert := range report.Alerts {
		summary.Alerts = append(summary.Alerts, models.WeatherAlert{
			Sender:      alert.Sender,
			Event:       alert.Event,
			Description: alert.Description,
			Start:       models.Timestamp(alert.Start),
			End:         models.Timestamp(alert.End),
		})
	}

	hourly := report.Hourly
	if len(hourly) > maxHourlyEntries {
		hourly = hourly[:maxHourlyEntries]
	}
	for _, hour := range hourly {
		summary.Hourly = append(summary.Hourly, models.HourlyForecastEntry{
			Time:        models.Timestamp(hour.Time),
			Temperature: hour.Temperature,
			Condition:   string(hour.Condition),
			PrecipProb:  hour.PrecipProb,
		})
	}

	return summary
}

func toLegSummary(leg *directions.Leg) *models.LegSummary {
	if leg == nil {
		return nil
	}

	summary := &models.LegSummary{
		Mode:                string(leg.Mode),
		TravelTimeMinutes:   leg.TravelTimeMinutes,
		TrafficDelayMinutes: leg.TrafficDelayMinutes,
	}
	if leg.Mode == directions.ModeDriving {
		summary.TrafficCondition = string(leg.TrafficCondition())
	}
	for _, coord := range polyline.Decode(leg.GeometryPolyline) {
		summary.Path = append(summary.Path, models.Point{Lat: coord.Lat, Lon: coord.Lon})
	}
	return summary
}
