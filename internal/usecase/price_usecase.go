package usecase

import (
	"context"

	"esnaftaucuz/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SubmitPriceInput defines the data required to submit a price observation.
// ProductName and LocationName are free-typed; unmatched names create rows
// on demand.
type SubmitPriceInput struct {
	UserID       uuid.UUID
	ProductName  string
	Category     string
	Amount       float64
	Unit         string
	LocationName string
	LocationType entity.LocationType
	City         string
	District     string
	Latitude     *float64
	Longitude    *float64

	// Photo is an optional photo to attach; ContentType must be set when
	// Photo is non-empty.
	Photo       []byte
	ContentType string
}

// ListPricesInput narrows the price listing.
type ListPricesInput struct {
	ProductID  *uuid.UUID
	LocationID *uuid.UUID
	UserID     *uuid.UUID
	Verified   *bool
	Limit      int
	Offset     int
}

// NearbyPricesInput asks for prices around a point. RadiusKm of zero means
// "use the requesting user's effective search radius".
type NearbyPricesInput struct {
	UserID    *uuid.UUID
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Limit     int
}

// --- Output DTOs ---

// SubmitPriceOutput returns the created price with its joined relations.
type SubmitPriceOutput struct {
	Price *entity.Price
}

// NearbyPrice pairs a price with its distance from the query point.
type NearbyPrice struct {
	Price      *entity.Price
	DistanceKm float64
}

// PriceUsecase defines price observation operations.
type PriceUsecase interface {
	// SubmitPrice records a new observation, creating the product and
	// location rows on demand when the free-typed names match nothing.
	SubmitPrice(ctx context.Context, input *SubmitPriceInput) (*SubmitPriceOutput, error)

	// GetPrice retrieves one price with joined product and location.
	GetPrice(ctx context.Context, id uuid.UUID) (*entity.Price, error)

	// ListPrices retrieves prices matching the filter, newest first.
	ListPrices(ctx context.Context, input *ListPricesInput) ([]*entity.Price, error)

	// NearbyPrices retrieves prices within the radius, nearest first.
	NearbyPrices(ctx context.Context, input *NearbyPricesInput) ([]*NearbyPrice, error)

	// VerifyPrice counts one verification from userID. Users cannot verify
	// their own submissions.
	VerifyPrice(ctx context.Context, userID, priceID uuid.UUID) error

	// ReportPrice counts one report against the price.
	ReportPrice(ctx context.Context, userID, priceID uuid.UUID) error
}
