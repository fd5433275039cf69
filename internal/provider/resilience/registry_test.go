package resilience_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcommute/smartcommute/internal/provider/resilience"
)

func TestRegistry_RegisterAndHealth(t *testing.T) {
	registry := resilience.NewRegistry()

	client := resilience.NewClient(resilience.DefaultClientConfig("waqi"))
	registry.Register("waqi", client)

	health := registry.GetHealth("waqi")
	require.NotNil(t, health)
	assert.Equal(t, "waqi", health.Name)
	assert.True(t, health.IsHealthy())
	assert.Nil(t, health.LastSuccessAt)
	assert.Nil(t, health.LastFailureAt)
}

func TestRegistry_GetHealth_Unknown(t *testing.T) {
	registry := resilience.NewRegistry()
	assert.Nil(t, registry.GetHealth("nope"))
}

func TestRegistry_RecordSuccessAndFailure(t *testing.T) {
	registry := resilience.NewRegistry()
	client := resilience.NewClient(resilience.DefaultClientConfig("googlemaps"))
	registry.Register("googlemaps", client)

	registry.RecordSuccess("googlemaps")
	health := registry.GetHealth("googlemaps")
	require.NotNil(t, health)
	assert.NotNil(t, health.LastSuccessAt)

	registry.RecordFailure("googlemaps", errors.New("status 502"))
	health = registry.GetHealth("googlemaps")
	require.NotNil(t, health)
	assert.NotNil(t, health.LastFailureAt)
	assert.Equal(t, "status 502", health.LastError)
}

func TestRegistry_GetAllHealth(t *testing.T) {
	registry := resilience.NewRegistry()
	registry.Register("waqi", resilience.NewClient(resilience.DefaultClientConfig("waqi")))
	registry.Register("openweathermap", resilience.NewClient(resilience.DefaultClientConfig("openweathermap")))
	registry.Register("googlemaps", resilience.NewClient(resilience.DefaultClientConfig("googlemaps")))

	all := registry.GetAllHealth()
	assert.Len(t, all, 3)
	assert.Equal(t, 3, registry.ProviderCount())
}

func TestRegistry_ClientSelfRegisters(t *testing.T) {
	registry := resilience.NewRegistry()

	cfg := resilience.DefaultClientConfig("openweathermap")
	cfg.Registry = registry
	resilience.NewClient(cfg)

	assert.Equal(t, 1, registry.ProviderCount())
	assert.NotNil(t, registry.GetHealth("openweathermap"))
}
