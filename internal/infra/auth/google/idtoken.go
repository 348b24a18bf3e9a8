package google

import (
	"context"

	"esnaftaucuz/config"
	"esnaftaucuz/internal/domain/entity"
	"esnaftaucuz/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// IDTokenService verifies Google ID tokens sent directly by mobile clients
// that completed Google Sign-In on-device.
type IDTokenService struct {
	clientID string
}

// NewIDTokenService creates a Google ID token verification service.
func NewIDTokenService(cfg *config.Config) service.OAuthAuthService {
	return &IDTokenService{clientID: cfg.GoogleOAuth.ClientID}
}

// VerifyIDToken verifies an OAuth ID token and returns user information.
func (s *IDTokenService) VerifyIDToken(ctx context.Context, rawToken string) (*service.OAuthUser, error) {
	payload, err := idtoken.Validate(ctx, rawToken, s.clientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate id token")
	}

	sub, _ := payload.Claims["sub"].(string)
	if sub == "" {
		return nil, errors.New("id token has no subject")
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)
	locale, _ := payload.Claims["locale"].(string)

	return &service.OAuthUser{
		ID:            sub,
		Email:         email,
		Name:          name,
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     picture,
		EmailVerified: emailVerified,
		Locale:        locale,
	}, nil
}

// GetProvider returns the OAuth provider type
func (s *IDTokenService) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}
