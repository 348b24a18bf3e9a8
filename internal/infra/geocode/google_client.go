// Package geocode implements forward and reverse geocoding against the
// Google Geocoding API with bounded retry and a Redis cache.
package geocode

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"esnaftaucuz/config"
	"esnaftaucuz/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	statusOK             = "OK"
	statusZeroResults    = "ZERO_RESULTS"
	statusOverQueryLimit = "OVER_QUERY_LIMIT"
	statusRequestDenied  = "REQUEST_DENIED"

	maxAttempts    = 3
	initialBackoff = time.Second
	maxBackoff     = 5 * time.Second
)

// GoogleClient calls the Google Geocoding API. Failed lookups are reported
// as a structured result rather than an error so callers can degrade to a
// coordinate-only display.
type GoogleClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *redis.Client
	cacheTTL   time.Duration
	logger     *slog.Logger

	// sleep is swapped out in tests to observe retry pacing.
	sleep func(ctx context.Context, d time.Duration) error
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Cache  *redis.Client
	Logger *slog.Logger
}

// NewGoogleClient creates a geocoding client backed by the Google API.
func NewGoogleClient(params Params) service.GeocodingService {
	return &GoogleClient{
		apiKey:     params.Config.Geocoding.APIKey,
		baseURL:    params.Config.Geocoding.BaseURL,
		httpClient: &http.Client{Timeout: params.Config.Geocoding.Timeout},
		cache:      params.Cache,
		cacheTTL:   params.Config.Geocoding.CacheTTL,
		logger:     params.Logger,
		sleep:      sleepContext,
	}
}

// Geocode resolves a free-form address to coordinates.
func (c *GoogleClient) Geocode(ctx context.Context, address string) (*service.GeocodeResult, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return nil, errors.New("address is required")
	}

	cacheKey := "geocode:fwd:" + hashKey(strings.ToLower(trimmed))
	if cached := c.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	result := c.lookupWithRetry(ctx, url.Values{"address": []string{trimmed}})
	c.toCache(ctx, cacheKey, result)

	return result, nil
}

// ReverseGeocode resolves coordinates to the nearest address.
func (c *GoogleClient) ReverseGeocode(ctx context.Context, lat, lng float64) (*service.GeocodeResult, error) {
	cacheKey := fmt.Sprintf("geocode:rev:%.5f,%.5f", lat, lng)
	if cached := c.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	result := c.lookupWithRetry(ctx, url.Values{"latlng": []string{fmt.Sprintf("%f,%f", lat, lng)}})
	c.toCache(ctx, cacheKey, result)

	return result, nil
}

// lookupWithRetry performs up to maxAttempts requests with exponential
// backoff. ZERO_RESULTS and OVER_QUERY_LIMIT are retried like transport
// failures; REQUEST_DENIED is terminal since retrying a rejected key cannot
// succeed. Exhaustion yields a structured failure carrying the last status.
func (c *GoogleClient) lookupWithRetry(ctx context.Context, params url.Values) *service.GeocodeResult {
	var lastStatus, lastError string

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			if err := c.sleep(ctx, backoffForAttempt(attempt)); err != nil {
				lastError = err.Error()

				break
			}
		}

		result, err := c.doRequest(ctx, params)
		if err != nil {
			lastStatus = ""
			lastError = err.Error()
			c.logger.LogAttrs(ctx, slog.LevelWarn, "geocoding request failed",
				slog.Int("attempt", attempt+1),
				slog.Any("error", err),
			)

			continue
		}

		switch result.Status {
		case statusOK:
			return result
		case statusRequestDenied:
			result.Success = false
			result.Error = "geocoding request denied: " + result.Error

			return result
		default:
			lastStatus = result.Status
			lastError = result.Error
			if lastError == "" {
				lastError = "geocoding failed with status " + result.Status
			}
		}
	}

	return &service.GeocodeResult{
		Success: false,
		Status:  lastStatus,
		Error:   lastError,
	}
}

func (c *GoogleClient) doRequest(ctx context.Context, params url.Values) (*service.GeocodeResult, error) {
	query := url.Values{}
	for key, values := range params {
		query[key] = values
	}
	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build geocoding request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("geocoding request returned status %d", resp.StatusCode)
	}

	var payload geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode geocoding response")
	}

	result := &service.GeocodeResult{
		Status: payload.Status,
		Error:  payload.ErrorMessage,
	}

	if payload.Status == statusOK && len(payload.Results) > 0 {
		first := payload.Results[0]
		result.Success = true
		result.Latitude = first.Geometry.Location.Lat
		result.Longitude = first.Geometry.Location.Lng
		result.FormattedAddress = first.FormattedAddress
		result.City = component(first.AddressComponents, "administrative_area_level_1", "locality")
		result.District = component(first.AddressComponents, "administrative_area_level_2", "sublocality")
	}

	return result, nil
}

func (c *GoogleClient) fromCache(ctx context.Context, key string) *service.GeocodeResult {
	if c.cache == nil {
		return nil
	}

	payload, err := c.cache.Get(ctx, key).Bytes()
	if err != nil || len(payload) == 0 {
		return nil
	}

	var result service.GeocodeResult
	if err := json.Unmarshal(payload, &result); err != nil || !result.Success {
		return nil
	}

	return &result
}

// toCache stores successful lookups only; failures must be retried by the
// next caller, not replayed from cache.
func (c *GoogleClient) toCache(ctx context.Context, key string, result *service.GeocodeResult) {
	if c.cache == nil || result == nil || !result.Success {
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return
	}

	if err := c.cache.Set(ctx, key, payload, c.cacheTTL).Err(); err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "failed to cache geocoding result",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

// backoffForAttempt doubles the delay per retry, capped at maxBackoff.
func backoffForAttempt(attempt int) time.Duration {
	backoff := initialBackoff << (attempt - 1)
	if backoff > maxBackoff {
		backoff = maxBackoff
	}

	return backoff
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func hashKey(value string) string {
	sum := sha256.Sum256([]byte(value))

	return hex.EncodeToString(sum[:])
}

func component(components []addressComponent, primary string, fallback ...string) string {
	for _, comp := range components {
		if containsType(comp.Types, primary) {
			return comp.LongName
		}
	}
	for _, alt := range fallback {
		for _, comp := range components {
			if containsType(comp.Types, alt) {
				return comp.LongName
			}
		}
	}

	return ""
}

func containsType(types []string, target string) bool {
	for _, t := range types {
		if t == target {
			return true
		}
	}

	return false
}

type geocodeResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
	Results      []geocodeResult `json:"results"`
}

type geocodeResult struct {
	FormattedAddress  string             `json:"formatted_address"`
	AddressComponents []addressComponent `json:"address_components"`
	Geometry          geometry           `json:"geometry"`
}

type addressComponent struct {
	LongName string   `json:"long_name"`
	Types    []string `json:"types"`
}

type geometry struct {
	Location location `json:"location"`
}

type location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
