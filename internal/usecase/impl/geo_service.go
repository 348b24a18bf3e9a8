package impl

import (
	"context"

	"esnaftaucuz/internal/domain/service"
	"esnaftaucuz/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// geoService implements the GeoUsecase interface as a thin orchestration
// over the geocoding and places clients.
type geoService struct {
	geocoder service.GeocodingService
	places   service.PlacesService
}

// GeoServiceParams holds dependencies for GeoService, injected by Fx.
type GeoServiceParams struct {
	fx.In

	Geocoder service.GeocodingService
	Places   service.PlacesService
}

// NewGeoService is the constructor for geoService.
func NewGeoService(params GeoServiceParams) usecase.GeoUsecase {
	return &geoService{
		geocoder: params.Geocoder,
		places:   params.Places,
	}
}

// Geocode resolves a free-form address to coordinates.
func (srv *geoService) Geocode(ctx context.Context, address string) (*service.GeocodeResult, error) {
	result, err := srv.geocoder.Geocode(ctx, address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to geocode address")
	}

	return result, nil
}

// ReverseGeocode resolves coordinates to the nearest address.
func (srv *geoService) ReverseGeocode(ctx context.Context, lat, lng float64) (*service.GeocodeResult, error) {
	result, err := srv.geocoder.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reverse geocode coordinates")
	}

	return result, nil
}

// NearbyPlaces returns venues around a point for map display.
func (srv *geoService) NearbyPlaces(ctx context.Context, lat, lng float64, radiusMeters int, types []string) ([]*service.Place, error) {
	places, err := srv.places.NearbySearch(ctx, lat, lng, radiusMeters, types)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search nearby places")
	}

	return places, nil
}
