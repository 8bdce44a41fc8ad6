// Package geocoding implements the domain geocoding service on top of
// the Google Maps Geocoding API.
package geocoding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/alfredtoussaint-cpu/dealshaq/config"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/service"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/errors"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"
	defaultTimeout = 5 * time.Second
)

// Client wraps the Google Maps Geocoding API behind the domain
// GeocodingService interface.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a geocoding client from the configuration. BaseURL is
// overridable for tests.
func NewClient(cfg *config.Config) (service.GeocodingService, error) {
	gc := cfg.Geocoding
	if gc == nil || gc.APIKey == "" {
		return nil, errors.New("geocoding api key must be provided")
	}

	baseURL := gc.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := gc.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		apiKey:     gc.APIKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
	Status  string          `json:"status"`
}

type geocodeResult struct {
	Geometry geometry `json:"geometry"`
}

type geometry struct {
	Location latLng `json:"location"`
}

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geocode resolves a free-form address to coordinates. An address the
// provider cannot resolve maps to service.ErrAddressNotFound.
func (c *Client) Geocode(ctx context.Context, address string) (*entity.Coordinates, error) {
	u := c.baseURL + "?address=" + url.QueryEscape(address) + "&key=" + url.QueryEscape(c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create geocoding request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "geocoding request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("geocoding API returned HTTP %d", resp.StatusCode)
	}

	var geoResp geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&geoResp); err != nil {
		return nil, errors.Wrap(err, "failed to decode geocoding response")
	}

	// ZERO_RESULTS is a well-formed "address does not exist" answer.
	if geoResp.Status == "ZERO_RESULTS" || (geoResp.Status == "OK" && len(geoResp.Results) == 0) {
		return nil, service.ErrAddressNotFound
	}
	if geoResp.Status != "OK" {
		return nil, errors.Errorf("geocoding failed: status=%s", geoResp.Status)
	}

	location := geoResp.Results[0].Geometry.Location

	return &entity.Coordinates{
		Latitude:  location.Lat,
		Longitude: location.Lng,
	}, nil
}
