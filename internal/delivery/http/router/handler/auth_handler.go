// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"esnaftaucuz/internal/delivery/http/response"
	"esnaftaucuz/internal/domain/service"
	"esnaftaucuz/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication-related handlers.
type AuthHandler struct {
	uc           usecase.UserUsecase
	bootstrapper usecase.SessionBootstrapper
	oauthCodeSvc service.OAuthCodeService
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(
	uc usecase.UserUsecase,
	bootstrapper usecase.SessionBootstrapper,
	oauthCodeSvc service.OAuthCodeService,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		uc:           uc,
		bootstrapper: bootstrapper,
		oauthCodeSvc: oauthCodeSvc,
		logger:       logger,
	}
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input *usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.RegisterUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "User registered successfully")
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// RefreshToken handles the token refresh request.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var input *usecase.RefreshTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// Logout handles the user logout request.
func (h *AuthHandler) Logout(c echo.Context) error {
	var input *usecase.LogoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}

	if err := h.uc.Logout(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// LogoutAllDevices ends every session of the authenticated user.
func (h *AuthHandler) LogoutAllDevices(c echo.Context) error {
	userID, ok := UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.uc.LogoutAllDevices(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logged out from all devices")
}

// ListSessions lists the authenticated user's active sessions.
func (h *AuthHandler) ListSessions(c echo.Context) error {
	userID, ok := UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	sessions, err := h.uc.GetActiveSessions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessions, "Sessions retrieved successfully")
}

// RevokeSession revokes one of the authenticated user's sessions.
func (h *AuthHandler) RevokeSession(c echo.Context) error {
	userID, ok := UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	tokenID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session id")
	}

	if err := h.uc.RevokeSession(c.Request().Context(), userID, tokenID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Session revoked successfully")
}

// GoogleSignIn logs in or registers a user from a verified Google ID token.
func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	var input *usecase.GoogleSignInInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid Google sign-in input")
	}
	if input == nil || input.IDToken == "" {
		return response.BadRequest(c, "INVALID_INPUT", "ID token is required")
	}

	output, err := h.uc.GoogleSignIn(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Google sign-in successful")
}

// GoogleAuthURL returns the Google authorization URL for the code flow.
func (h *AuthHandler) GoogleAuthURL(c echo.Context) error {
	url, state, err := h.oauthCodeSvc.BuildAuthURL()
	if err != nil {
		return errors.WithStack(err)
	}

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, url)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"oauth_url": url,
		"state":     state,
	}, "Google OAuth URL generated successfully")
}

// OAuthCallback classifies the provider redirect and consumes it. A failed
// exchange still answers 200 with an error fragment the client can display.
func (h *AuthHandler) OAuthCallback(c echo.Context) error {
	req := c.Request()

	launchURL := req.URL.String()
	result, err := h.bootstrapper.HandleLaunch(req.Context(), &usecase.LaunchInput{
		URL:    launchURL,
		Native: req.Header.Get("X-Native-Wrapper") == "true",
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if result.ErrorFragment != "" {
		return response.Success(c, http.StatusOK, result, "Sign-in could not be completed")
	}

	return response.Success(c, http.StatusOK, result, "Launch handled")
}

// GuestSession issues a transient guest identity.
func (h *AuthHandler) GuestSession(c echo.Context) error {
	output, err := h.uc.CreateGuestSession(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Guest session created")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// UserIDFromContext extracts the authenticated user's ID set by the auth
// middleware.
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}
