// Package places implements nearby venue lookups against the Google Places
// API. Results are display-only; nothing here is persisted.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"esnaftaucuz/config"
	"esnaftaucuz/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GoogleClient calls the Google Places nearby-search endpoint.
type GoogleClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
}

// NewGoogleClient creates a places client backed by the Google API.
func NewGoogleClient(params Params) service.PlacesService {
	return &GoogleClient{
		apiKey:     params.Config.Places.APIKey,
		baseURL:    params.Config.Places.BaseURL,
		httpClient: &http.Client{Timeout: params.Config.Places.Timeout},
	}
}

// NearbySearch returns places within radiusMeters of the point, optionally
// narrowed to the given place types.
func (c *GoogleClient) NearbySearch(ctx context.Context, lat, lng float64, radiusMeters int, types []string) ([]*service.Place, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", fmt.Sprintf("%d", radiusMeters))
	params.Set("key", c.apiKey)
	if len(types) > 0 {
		params.Set("type", strings.Join(types, "|"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build places request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "places request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("places request returned status %d", resp.StatusCode)
	}

	var payload nearbySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode places response")
	}

	if payload.Status != "OK" && payload.Status != "ZERO_RESULTS" {
		if payload.ErrorMessage != "" {
			return nil, errors.Errorf("places search failed: %s - %s", payload.Status, payload.ErrorMessage)
		}

		return nil, errors.Errorf("places search failed: %s", payload.Status)
	}

	places := make([]*service.Place, 0, len(payload.Results))
	for _, result := range payload.Results {
		place := &service.Place{
			ID:        result.PlaceID,
			Name:      result.Name,
			Types:     result.Types,
			Address:   result.Vicinity,
			Latitude:  result.Geometry.Location.Lat,
			Longitude: result.Geometry.Location.Lng,
		}
		if result.OpeningHours != nil {
			place.IsOpen = result.OpeningHours.OpenNow
		}
		places = append(places, place)
	}

	return places, nil
}

type nearbySearchResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
	Results      []placeResult `json:"results"`
}

type placeResult struct {
	PlaceID      string        `json:"place_id"`
	Name         string        `json:"name"`
	Types        []string      `json:"types"`
	Vicinity     string        `json:"vicinity"`
	Geometry     geometry      `json:"geometry"`
	OpeningHours *openingHours `json:"opening_hours,omitempty"`
}

type openingHours struct {
	OpenNow *bool `json:"open_now,omitempty"`
}

type geometry struct {
	Location location `json:"location"`
}

type location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
