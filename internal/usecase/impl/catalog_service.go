package impl

import (
	"context"
	"strings"

	"esnaftaucuz/internal/domain/entity"
	domainerrors "esnaftaucuz/internal/domain/errors"
	"esnaftaucuz/internal/domain/repository"
	"esnaftaucuz/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultCatalogSearchLimit = 20
	maxCatalogSearchLimit     = 50
)

// catalogService implements the CatalogUsecase interface as read-only
// lookups; no transaction manager is needed.
type catalogService struct {
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	LocationRepo repository.LocationRepository
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  params.ProductRepo,
		locationRepo: params.LocationRepo,
	}
}

// SearchProducts retrieves products matching the query by name.
func (srv *catalogService) SearchProducts(ctx context.Context, query string, limit int) ([]*entity.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("search query cannot be empty")
	}

	products, err := srv.productRepo.SearchProductsByName(ctx, query, clampCatalogLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

// SearchLocations retrieves locations matching the query by name.
func (srv *catalogService) SearchLocations(ctx context.Context, query string, limit int) ([]*entity.Location, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("search query cannot be empty")
	}

	locations, err := srv.locationRepo.SearchLocationsByName(ctx, query, clampCatalogLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to search locations")
	}

	return locations, nil
}

// ListLocationsByCity retrieves all locations in a city, optionally narrowed
// to a district.
func (srv *catalogService) ListLocationsByCity(ctx context.Context, city, district string) ([]*entity.Location, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("city cannot be empty")
	}

	locations, err := srv.locationRepo.ListLocationsByCity(ctx, city, strings.TrimSpace(district))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list locations by city")
	}

	return locations, nil
}

func clampCatalogLimit(limit int) int {
	if limit <= 0 {
		return defaultCatalogSearchLimit
	}
	if limit > maxCatalogSearchLimit {
		return maxCatalogSearchLimit
	}

	return limit
}
