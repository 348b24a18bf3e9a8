// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"esnaftaucuz/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPriceNotFound is returned when a price record is not found.
var ErrPriceNotFound = errors.New("price not found")

// PriceQuery narrows price listings. Zero values mean "no filter".
type PriceQuery struct {
	ProductID  *uuid.UUID
	LocationID *uuid.UUID
	UserID     *uuid.UUID
	Verified   *bool
	Limit      int
	Offset     int
}

// PriceRepository defines the interface for price observation persistence.
type PriceRepository interface {
	// CreatePrice persists a new price observation.
	CreatePrice(ctx context.Context, price *entity.Price) error

	// FindPriceByID retrieves a price with its joined product and location.
	FindPriceByID(ctx context.Context, id uuid.UUID) (*entity.Price, error)

	// ListPrices retrieves prices matching the query, newest first,
	// with joined product and location records.
	ListPrices(ctx context.Context, q PriceQuery) ([]*entity.Price, error)

	// ListPricesWithCoordinates retrieves prices that carry a usable point,
	// either their own coordinates or their location's. Radius filtering is
	// done by the caller; this only narrows to rows that can be measured.
	ListPricesWithCoordinates(ctx context.Context, limit int) ([]*entity.Price, error)

	// UpdatePrice updates an existing price record.
	UpdatePrice(ctx context.Context, price *entity.Price) error

	// AddVerification atomically increments the verification counter and
	// flips the verified flag once the threshold is crossed.
	AddVerification(ctx context.Context, id uuid.UUID, threshold int) error

	// AddReport atomically increments the report counter.
	AddReport(ctx context.Context, id uuid.UUID) error

	// DeletePrice removes a price by its ID.
	DeletePrice(ctx context.Context, id uuid.UUID) error
}
