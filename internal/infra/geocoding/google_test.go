package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfredtoussaint-cpu/dealshaq/config"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/service"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) service.GeocodingService {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&config.Config{
		Geocoding: &config.GeocodingConfig{
			APIKey:  "test-key",
			BaseURL: server.URL,
			Timeout: time.Second,
		},
	})
	require.NoError(t, err)

	return client
}

func TestClient_Geocode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "123 Main St, Philadelphia, PA", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{"geometry": {"location": {"lat": 40.0, "lng": -75.0}}}]
		}`))
	})

	coords, err := client.Geocode(context.Background(), "123 Main St, Philadelphia, PA")
	require.NoError(t, err)
	assert.Equal(t, 40.0, coords.Latitude)
	assert.Equal(t, -75.0, coords.Longitude)
}

func TestClient_Geocode_ZeroResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	_, err := client.Geocode(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, service.ErrAddressNotFound)
}

func TestClient_Geocode_ProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Geocode(context.Background(), "123 Main St")
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrAddressNotFound)
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(&config.Config{Geocoding: &config.GeocodingConfig{}})
	assert.Error(t, err)
}
