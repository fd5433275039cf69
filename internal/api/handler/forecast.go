package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/smartcommute/smartcommute/internal/api/models"
	"github.com/smartcommute/smartcommute/internal/api/response"
)

// ForecastHandler handles the standalone weather forecast endpoint.
type ForecastHandler struct {
	advisor AdvisorService
}

// NewForecastHandler creates a new ForecastHandler.
func NewForecastHandler(svc AdvisorService) *ForecastHandler {
	return &ForecastHandler{advisor: svc}
}

// GetForecast handles GET /v1/forecast?lat=&lon= - short-range outlook.
func (h *ForecastHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		response.BadRequest(w, r, "lat and lon query parameters are required", nil)
		return
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		response.BadRequest(w, r, "coordinates out of range", []models.FieldError{
			{Field: "lat", Message: "must be between -90 and 90", Code: "OUT_OF_RANGE"},
			{Field: "lon", Message: "must be between -180 and 180", Code: "OUT_OF_RANGE"},
		})
		return
	}

	report, err := h.advisor.Forecast(r.Context(), lat, lon)
	if err != nil {
		response.ServiceUnavailable(w, r, "weather provider unavailable")
		return
	}

	summary := toWeatherSummary(report)

	response.JSON(w, r, http.StatusOK, models.ForecastResponse{
		Point:       models.Point{Lat: lat, Lon: lon},
		Weather:     *summary,
		GeneratedAt: models.Timestamp(time.Now()),
	})
}
