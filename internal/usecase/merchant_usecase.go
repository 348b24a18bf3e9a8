package usecase

import (
	"context"

	"esnaftaucuz/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpsertMerchantProfileInput creates or updates the caller's shop profile.
type UpsertMerchantProfileInput struct {
	UserID          uuid.UUID
	ShopName        string
	ShopDescription string
	City            string
	District        string
}

// CreateListingInput defines the data for a new merchant catalog entry.
type CreateListingInput struct {
	MerchantID  uuid.UUID
	ProductName string
	Category    string
	Amount      float64
	Unit        string
	LocationID  *uuid.UUID
	Latitude    *float64
	Longitude   *float64

	// Photos are optional listing images, uploaded before the row is written.
	Photos       [][]byte
	ContentTypes []string
}

// UpdateListingInput updates an existing listing owned by the caller.
type UpdateListingInput struct {
	MerchantID uuid.UUID
	ListingID  uuid.UUID
	Amount     *float64
	Unit       *string
}

// MerchantUsecase defines merchant shop and catalog operations.
type MerchantUsecase interface {
	// UpsertProfile creates or updates the caller's merchant profile.
	UpsertProfile(ctx context.Context, input *UpsertMerchantProfileInput) (*entity.User, error)

	// CreateListing adds a catalog entry, creating the product on demand.
	CreateListing(ctx context.Context, input *CreateListingInput) (*entity.MerchantProduct, error)

	// UpdateListing updates a listing. Only the owner may update it.
	UpdateListing(ctx context.Context, input *UpdateListingInput) (*entity.MerchantProduct, error)

	// DeleteListing removes a listing. Only the owner may delete it.
	DeleteListing(ctx context.Context, merchantID, listingID uuid.UUID) error

	// ListMyListings retrieves the caller's catalog, newest first.
	ListMyListings(ctx context.Context, merchantID uuid.UUID) ([]*entity.MerchantProduct, error)

	// ListListingsForProduct retrieves all merchant listings for a product.
	ListListingsForProduct(ctx context.Context, productID uuid.UUID) ([]*entity.MerchantProduct, error)

	// VerifyListing counts a shopper's confirmation or dispute of a listing.
	VerifyListing(ctx context.Context, listingID uuid.UUID, disputed bool) error

	// ShopQR renders the merchant's shop QR code as PNG bytes.
	ShopQR(ctx context.Context, merchantID uuid.UUID) ([]byte, error)

	// ResolveShopQR parses scanned QR data and returns the merchant profile.
	ResolveShopQR(ctx context.Context, qrData string) (*entity.User, error)
}
