package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcommute/smartcommute/internal/api/handler"
	"github.com/smartcommute/smartcommute/internal/api/models"
	"github.com/smartcommute/smartcommute/internal/weather"
)

func getForecast(t *testing.T, svc handler.AdvisorService, target string) *httptest.ResponseRecorder {
	t.Helper()
	h := handler.NewForecastHandler(svc)

	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	rec := httptest.NewRecorder()
	h.GetForecast(rec, req)
	return rec
}

func TestGetForecast_Success(t *testing.T) {
	svc := &stubAdvisor{report: &weather.Report{
		Temperature:  9.5,
		Condition:    weather.ConditionRain,
		Description:  "light rain",
		DailySummary: "Rain through the morning",
		Hourly: []weather.HourlyForecast{
			{Time: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC), Temperature: 9.0, Condition: weather.ConditionRain, PrecipProb: 0.8},
		},
	}}

	rec := getForecast(t, svc, "/v1/forecast?lat=52.37&lon=4.89")

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.ForecastResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 52.37, body.Point.Lat)
	assert.Equal(t, 4.89, body.Point.Lon)
	assert.Equal(t, "RAIN", body.Weather.Condition)
	assert.Equal(t, "Rain through the morning", body.Weather.DailySummary)
	require.Len(t, body.Weather.Hourly, 1)
	assert.Equal(t, 0.8, body.Weather.Hourly[0].PrecipProb)
}

func TestGetForecast_MissingParams(t *testing.T) {
	rec := getForecast(t, &stubAdvisor{}, "/v1/forecast")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "lat and lon query parameters are required")
}

func TestGetForecast_OutOfRangeCoordinates(t *testing.T) {
	rec := getForecast(t, &stubAdvisor{}, "/v1/forecast?lat=95&lon=200")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "coordinates out of range")
}

func TestGetForecast_ProviderUnavailable(t *testing.T) {
	svc := &stubAdvisor{forecastErr: weather.ErrProviderUnavailable}

	rec := getForecast(t, svc, "/v1/forecast?lat=52.37&lon=4.89")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "weather provider unavailable")
}
