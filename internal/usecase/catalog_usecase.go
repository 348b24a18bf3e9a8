package usecase

import (
	"context"

	"esnaftaucuz/internal/domain/entity"
)

// CatalogUsecase serves product and location lookups for typeahead search
// and browsing. Row creation stays with the price and merchant flows, which
// create products and locations on demand from free-typed names.
type CatalogUsecase interface {
	// SearchProducts retrieves products whose name contains the query,
	// case-insensitively.
	SearchProducts(ctx context.Context, query string, limit int) ([]*entity.Product, error)

	// SearchLocations retrieves locations whose name contains the query,
	// case-insensitively.
	SearchLocations(ctx context.Context, query string, limit int) ([]*entity.Location, error)

	// ListLocationsByCity retrieves all locations in a city, optionally
	// narrowed to a district.
	ListLocationsByCity(ctx context.Context, city, district string) ([]*entity.Location, error)
}
