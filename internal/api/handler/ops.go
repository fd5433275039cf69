package handler

import (
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/smartcommute/smartcommute/internal/api/models"
	"github.com/smartcommute/smartcommute/internal/api/response"
	"github.com/smartcommute/smartcommute/internal/provider/resilience"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	registry  *resilience.Registry
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, registry *resilience.Registry) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		registry:  registry,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check.
// The service is ready once its provider clients are registered.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	status := models.HealthStatusOK
	code := http.StatusOK
	if h.registry == nil || h.registry.ProviderCount() == 0 {
		status = models.HealthStatusFail
		code = http.StatusServiceUnavailable
	}

	health := models.Health{
		Status: status,
		Time:   models.Timestamp(time.Now()),
	}
	response.JSON(w, r, code, health)
}

// SystemStatus handles GET /v1/ops/status - provider circuit status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	now := models.Timestamp(time.Now())

	overall := models.HealthStatusOK
	providers := []models.ProviderStatus{}
	if h.registry != nil {
		for _, health := range h.registry.GetAllHealth() {
			providerStatus := providerHealthStatus(health)
			if providerStatus == models.HealthStatusFail {
				overall = models.HealthStatusDegraded
			} else if providerStatus == models.HealthStatusDegraded && overall == models.HealthStatusOK {
				overall = models.HealthStatusDegraded
			}

			entry := models.ProviderStatus{
				Provider:     health.Name,
				Status:       providerStatus,
				CircuitState: health.CircuitState.String(),
			}
			if health.LastSuccessAt != nil {
				ts := models.Timestamp(*health.LastSuccessAt)
				entry.LastSuccessAt = &ts
			}
			if health.LastFailureAt != nil {
				ts := models.Timestamp(*health.LastFailureAt)
				entry.LastFailureAt = &ts
			}
			providers = append(providers, entry)
		}
	}

	status := models.SystemStatus{
		Status:    overall,
		Time:      now,
		Providers: providers,
	}
	response.JSON(w, r, http.StatusOK, status)
}

func providerHealthStatus(h *resilience.ProviderHealth) models.HealthStatus {
	switch h.CircuitState {
	case gobreaker.StateOpen:
		return models.HealthStatusFail
	case gobreaker.StateHalfOpen:
		return models.HealthStatusDegraded
	default:
		return models.HealthStatusOK
	}
}
