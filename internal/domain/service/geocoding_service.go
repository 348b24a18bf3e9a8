package service

import "context"

// GeocodeResult is the structured outcome of a geocoding attempt. Success is
// false when every attempt failed; Error then carries the last failure
// message. Callers never receive a Go error for exhaustion, only for
// programming mistakes such as an empty query.
type GeocodeResult struct {
	Success          bool
	Latitude         float64
	Longitude        float64
	FormattedAddress string
	City             string
	District         string
	Status           string // Last provider status, e.g. "OK", "ZERO_RESULTS".
	Error            string // Last failure message when Success is false.
}

// GeocodingService defines forward and reverse geocoding.
type GeocodingService interface {
	// Geocode resolves a free-form address to coordinates.
	Geocode(ctx context.Context, address string) (*GeocodeResult, error)

	// ReverseGeocode resolves coordinates to the nearest address.
	ReverseGeocode(ctx context.Context, lat, lng float64) (*GeocodeResult, error)
}
