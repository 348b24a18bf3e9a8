// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"esnaftaucuz/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	// Preference updates must keep the legacy search-radius column mirrored.
	Update(ctx context.Context, user *entity.User) error

	// AddContribution atomically bumps the user's points and share/verification
	// counters after an accepted submission.
	AddContribution(ctx context.Context, id uuid.UUID, points, shares, verifications int) error

	// FindNotifiableNear retrieves users with notifications enabled whose
	// effective search radius covers the given point.
	FindNotifiableNear(ctx context.Context, lat, lng float64) ([]*entity.User, error)
}
