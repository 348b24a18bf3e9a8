package usecase

import (
	"context"

	"esnaftaucuz/internal/domain/service"
)

// GeoUsecase exposes geocoding and nearby-place lookups to the delivery
// layer. Lookups that exhaust their retries return a structured failure so
// callers degrade to a coordinate-only display instead of erroring.
type GeoUsecase interface {
	// Geocode resolves a free-form address to coordinates.
	Geocode(ctx context.Context, address string) (*service.GeocodeResult, error)

	// ReverseGeocode resolves coordinates to the nearest address.
	ReverseGeocode(ctx context.Context, lat, lng float64) (*service.GeocodeResult, error)

	// NearbyPlaces returns venues around a point for map display.
	NearbyPlaces(ctx context.Context, lat, lng float64, radiusMeters int, types []string) ([]*service.Place, error)
}
