package usecase

import (
	"context"

	"esnaftaucuz/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput updates display fields on the caller's profile.
type UpdateProfileInput struct {
	UserID    uuid.UUID
	Name      *string
	AvatarURL *string
}

// UpdatePreferencesInput updates the caller's settings. A nil field means
// "leave unchanged".
type UpdatePreferencesInput struct {
	UserID               uuid.UUID
	NotificationsEnabled *bool
	SearchRadiusKm       *float64
	FCMToken             *string
}

// ProfileUsecase defines profile and preference operations.
type ProfileUsecase interface {
	// GetProfile retrieves the user's profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile updates display fields.
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)

	// UpdatePreferences updates settings. A radius change writes both the
	// preferences value and the legacy column so older readers stay correct.
	UpdatePreferences(ctx context.Context, input *UpdatePreferencesInput) (*entity.User, error)
}
