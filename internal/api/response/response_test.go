package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcommute/smartcommute/internal/api/models"
	"github.com/smartcommute/smartcommute/internal/api/response"
)

func TestJSON_WritesBodyAndHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/forecast", http.NoBody)
	rec := httptest.NewRecorder()

	response.JSON(rec, req, http.StatusOK, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "world", body["hello"])
}

func TestJSON_NilBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	rec := httptest.NewRecorder()

	response.JSON(rec, req, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestBadRequest_WritesProblem(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/advice:compute", http.NoBody)
	rec := httptest.NewRecorder()

	response.BadRequest(rec, req, "origin is required", []models.FieldError{
		{Field: "origin", Message: "either point or name is required"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var problem models.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, models.ProblemTypeValidation, problem.Type)
	assert.Equal(t, "origin is required", problem.Detail)
	assert.Equal(t, "/v1/advice:compute", problem.Instance)
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "origin", problem.Errors[0].Field)
}

func TestNotFound_WritesProblem(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/unknown", http.NoBody)
	rec := httptest.NewRecorder()

	response.NotFound(rec, req, "resource not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var problem models.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, models.ProblemTypeNotFound, problem.Type)
	assert.Equal(t, "/v1/unknown", problem.Instance)
}

func TestTooManyRequestsWithInfo_SetsRateLimitHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/advice:compute", http.NoBody)
	rec := httptest.NewRecorder()

	response.TooManyRequestsWithInfo(rec, req, "slow down", &response.RateLimitInfo{
		Limit:      30,
		Remaining:  0,
		ResetAt:    1700000000,
		RetryAfter: 42,
	})

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "30", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "1700000000", rec.Header().Get("X-RateLimit-Reset"))
	assert.Equal(t, "42", rec.Header().Get("Retry-After"))
}

func TestInternalError_WritesProblem(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	rec := httptest.NewRecorder()

	response.InternalError(rec, req, "something broke")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var problem models.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, models.ProblemTypeInternal, problem.Type)
}

func TestServiceUnavailable_WritesProblem(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/forecast", http.NoBody)
	rec := httptest.NewRecorder()

	response.ServiceUnavailable(rec, req, "weather provider unavailable")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var problem models.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, models.ProblemTypeUnavailable, problem.Type)
	assert.Equal(t, "weather provider unavailable", problem.Detail)
}
