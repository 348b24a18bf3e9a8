package handler

import (
	"log/slog"
	"net/http"

	"esnaftaucuz/internal/delivery/http/response"
	"esnaftaucuz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

// GetProfile returns the authenticated user's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// updateProfileRequest is the JSON body for profile display updates.
type updateProfileRequest struct {
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
}

// UpdateProfile updates the authenticated user's display fields.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		UserID:    userID,
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}

// updatePreferencesRequest is the JSON body for preference updates.
type updatePreferencesRequest struct {
	NotificationsEnabled *bool    `json:"notificationsEnabled"`
	SearchRadiusKm       *float64 `json:"searchRadiusKm"`
	FCMToken             *string  `json:"fcmToken"`
}

// UpdatePreferences updates the authenticated user's settings.
func (h *ProfileHandler) UpdatePreferences(c echo.Context) error {
	userID, ok := UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req updatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}

	user, err := h.uc.UpdatePreferences(c.Request().Context(), &usecase.UpdatePreferencesInput{
		UserID:               userID,
		NotificationsEnabled: req.NotificationsEnabled,
		SearchRadiusKm:       req.SearchRadiusKm,
		FCMToken:             req.FCMToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Preferences updated successfully")
}
