package geocode

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestClient(baseURL string) (*GoogleClient, *[]time.Duration) {
	delays := make([]time.Duration, 0)
	client := &GoogleClient{
		apiKey:     "test-key",
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: time.Second},
		logger:     slog.New(slog.DiscardHandler),
		sleep: func(_ context.Context, d time.Duration) error {
			delays = append(delays, d)

			return nil
		},
	}

	return client, &delays
}

func TestGoogleClient_RetriesThenSucceeds(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts < 3 {
			w.Write([]byte(`{"status":"OVER_QUERY_LIMIT"}`))

			return
		}
		w.Write([]byte(`{"status":"OK","results":[{
			"formatted_address":"Kadıköy, İstanbul",
			"address_components":[
				{"long_name":"İstanbul","types":["administrative_area_level_1"]},
				{"long_name":"Kadıköy","types":["administrative_area_level_2"]}
			],
			"geometry":{"location":{"lat":40.99,"lng":29.03}}
		}]}`))
	}))
	defer server.Close()

	client, delays := newTestClient(server.URL)

	result, err := client.Geocode(context.Background(), "Kadıköy çarşı")
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 3, attempts)
	assert.InDelta(t, 40.99, result.Latitude, 0.001)
	assert.Equal(t, "İstanbul", result.City)
	assert.Equal(t, "Kadıköy", result.District)

	// Two delayed retries before the third attempt, doubling each time.
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *delays)
}

func TestGoogleClient_ExhaustsAfterThreeAttempts(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		w.Write([]byte(`{"status":"ZERO_RESULTS"}`))
	}))
	defer server.Close()

	client, _ := newTestClient(server.URL)

	result, err := client.Geocode(context.Background(), "nowhere at all")
	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, "ZERO_RESULTS", result.Status)
	assert.NotEmpty(t, result.Error)
}

func TestGoogleClient_RequestDeniedIsTerminal(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"API key invalid"}`))
	}))
	defer server.Close()

	client, delays := newTestClient(server.URL)

	result, err := client.ReverseGeocode(context.Background(), 41.0, 29.0)
	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, 1, attempts)
	assert.Empty(t, *delays)
	assert.Contains(t, result.Error, "request denied")
}

func TestGoogleClient_EmptyAddress(t *testing.T) {
	client, _ := newTestClient("http://unused")

	result, err := client.Geocode(context.Background(), "   ")
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestBackoffForAttempt(t *testing.T) {
	assert.Equal(t, time.Second, backoffForAttempt(1))
	assert.Equal(t, 2*time.Second, backoffForAttempt(2))
	assert.Equal(t, 4*time.Second, backoffForAttempt(3))
	assert.Equal(t, 5*time.Second, backoffForAttempt(4))
}
