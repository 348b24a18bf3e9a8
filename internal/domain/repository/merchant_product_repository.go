// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"esnaftaucuz/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrListingNotFound is returned when a merchant listing is not found.
var ErrListingNotFound = errors.New("merchant listing not found")

// MerchantProductRepository defines the interface for merchant catalog persistence.
type MerchantProductRepository interface {
	// CreateListing persists a new merchant product listing.
	CreateListing(ctx context.Context, listing *entity.MerchantProduct) error

	// FindListingByID retrieves a listing with its joined product.
	FindListingByID(ctx context.Context, id uuid.UUID) (*entity.MerchantProduct, error)

	// ListListingsByMerchant retrieves all listings owned by a merchant, newest first.
	ListListingsByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.MerchantProduct, error)

	// ListListingsByProduct retrieves all merchant listings for a product.
	ListListingsByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.MerchantProduct, error)

	// UpdateListing updates an existing listing record.
	UpdateListing(ctx context.Context, listing *entity.MerchantProduct) error

	// AddListingVerification atomically increments one of the listing's
	// verification counters; disputed selects the unverification counter.
	AddListingVerification(ctx context.Context, id uuid.UUID, disputed bool) error

	// DeleteListing removes a listing by its ID.
	DeleteListing(ctx context.Context, id uuid.UUID) error
}
