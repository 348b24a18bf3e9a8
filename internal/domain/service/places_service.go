package service

import "context"

// Place is a nearby venue returned by the places provider.
type Place struct {
	ID        string
	Name      string
	Types     []string
	Address   string
	Latitude  float64
	Longitude float64
	IsOpen    *bool
}

// PlacesService defines nearby place lookups for display alongside prices.
type PlacesService interface {
	// NearbySearch returns places within radiusMeters of the point,
	// optionally narrowed to the given place types.
	NearbySearch(ctx context.Context, lat, lng float64, radiusMeters int, types []string) ([]*Place, error)
}
