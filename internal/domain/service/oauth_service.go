package service

import (
	"context"

	"esnaftaucuz/internal/domain/entity"
)

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string              // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string              // User's email address
	Name          string              // User's display name
	Provider      entity.ProviderType // The OAuth provider
	AvatarURL     string              // URL to user's profile picture
	EmailVerified bool                // Whether the email is verified by the provider
	Locale        string              // User's locale/language preference
}

// OAuthAuthService defines the interface for OAuth authentication operations
// This is specifically for ID token verification (like Google ID tokens)
type OAuthAuthService interface {
	// VerifyIDToken verifies an OAuth ID token and returns user information
	// This is primarily used for Google Sign-In where the client sends an ID token directly
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)

	// GetProvider returns the OAuth provider type
	GetProvider() entity.ProviderType
}

// OAuthCodeService defines the server-side authorization-code flow:
// build the consent URL, then exchange the redirect's code for user info.
type OAuthCodeService interface {
	// BuildAuthURL returns the provider consent URL carrying a CSRF state
	// and a PKCE challenge bound to that state.
	BuildAuthURL() (url string, state string, err error)

	// ExchangeCode redeems an authorization code for tokens and returns the
	// authenticated user. The state must match one issued by BuildAuthURL.
	ExchangeCode(ctx context.Context, code, state string) (*OAuthUser, error)

	// GetProvider returns the OAuth provider type
	GetProvider() entity.ProviderType
}
