package openweathermap_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcommute/smartcommute/internal/geocode"
	"github.com/smartcommute/smartcommute/internal/geocode/openweathermap"
)

func TestClient_Geocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/direct", r.URL.Path)
		assert.Equal(t, "IIT Kharagpur", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "****", r.URL.Query().Get("appid"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"Kharagpur","lat":22.3302,"lon":87.3237,"country":"IN"}]`))
	}))
	defer server.Close()

	client := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:  "****",
		BaseURL: server.URL,
	})

	place, err := client.Geocode(context.Background(), "IIT Kharagpur")
	require.NoError(t, err)
	require.NotNil(t, place)

	assert.Equal(t, "Kharagpur", place.Name)
	assert.Equal(t, "IN", place.Country)
	assert.Equal(t, 22.3302, place.Lat)
	assert.Equal(t, 87.3237, place.Lon)
}

func TestClient_Geocode_EmptyResultSet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := openweathermap.NewClient(openweathermap.ClientConfig{APIKey: "****", BaseURL: server.URL})

	_, err := client.Geocode(context.Background(), "nowhere-at-all")
	assert.ErrorIs(t, err, geocode.ErrNoResults)
}

func TestClient_Geocode_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := openweathermap.NewClient(openweathermap.ClientConfig{APIKey: "****", BaseURL: server.URL})

	_, err := client.Geocode(context.Background(), "somewhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestClient_Geocode_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer server.Close()

	client := openweathermap.NewClient(openweathermap.ClientConfig{APIKey: "****", BaseURL: server.URL})

	_, err := client.Geocode(context.Background(), "somewhere")
	require.Error(t, err)
}
