// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"esnaftaucuz/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrLocationNotFound is returned when a location is not found.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines the interface for location persistence.
type LocationRepository interface {
	// CreateLocation persists a new location.
	CreateLocation(ctx context.Context, location *entity.Location) error

	// FindLocationByID retrieves a location by its unique ID.
	FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// FindLocationByName retrieves a location by exact name within a city.
	// Used by create-on-demand to avoid duplicate rows for free-typed names.
	FindLocationByName(ctx context.Context, name, city string) (*entity.Location, error)

	// SearchLocationsByName retrieves locations whose name contains the query,
	// case-insensitively, capped at limit.
	SearchLocationsByName(ctx context.Context, query string, limit int) ([]*entity.Location, error)

	// ListLocationsByCity retrieves all locations in a city, optionally
	// narrowed to a district.
	ListLocationsByCity(ctx context.Context, city, district string) ([]*entity.Location, error)

	// UpdateLocation updates an existing location record.
	UpdateLocation(ctx context.Context, location *entity.Location) error
}
