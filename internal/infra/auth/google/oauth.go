// Package google implements the Google OAuth flows used for sign-in.
package google

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"esnaftaucuz/config"
	"esnaftaucuz/internal/domain/entity"
	"esnaftaucuz/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	googleOAuthURL    = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	defaultScopes = "openid email profile"

	stateTTL = 10 * time.Minute
)

// pendingAuth is an in-flight authorization: the CSRF state plus the PKCE
// verifier that must accompany the matching code exchange.
type pendingAuth struct {
	verifier  string
	expiresAt time.Time
}

// OAuthService handles the Google authorization-code flow with PKCE.
type OAuthService struct {
	clientID     string
	clientSecret string
	redirectURI  string
	scopes       string
	httpClient   *http.Client

	// State storage for CSRF protection; keyed by state, holding the PKCE verifier.
	pending     map[string]pendingAuth
	pendingLock sync.Mutex
}

// NewOAuthService creates a new Google OAuth code-flow service.
func NewOAuthService(cfg *config.Config) service.OAuthCodeService {
	return &OAuthService{
		clientID:     cfg.GoogleOAuth.ClientID,
		clientSecret: cfg.GoogleOAuth.ClientSecret,
		redirectURI:  cfg.GoogleOAuth.RedirectURI,
		scopes:       defaultScopes,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		pending:      make(map[string]pendingAuth),
	}
}

// BuildAuthURL constructs the Google consent URL carrying a CSRF state and a
// PKCE S256 challenge. The verifier is kept server-side, bound to the state.
func (s *OAuthService) BuildAuthURL() (string, string, error) {
	state, err := randomToken()
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate state")
	}
	verifier, err := randomToken()
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate PKCE verifier")
	}

	s.storePending(state, verifier)

	challenge := sha256.Sum256([]byte(verifier))

	params := url.Values{}
	params.Set("client_id", s.clientID)
	params.Set("redirect_uri", s.redirectURI)
	params.Set("scope", s.scopes)
	params.Set("response_type", "code")
	params.Set("state", state)
	params.Set("code_challenge", base64.RawURLEncoding.EncodeToString(challenge[:]))
	params.Set("code_challenge_method", "S256")

	return googleOAuthURL + "?" + params.Encode(), state, nil
}

// ExchangeCode redeems an authorization code for tokens and fetches the user
// info. The state must match one issued by BuildAuthURL; each state is
// consumed on first use to prevent replay.
func (s *OAuthService) ExchangeCode(ctx context.Context, code, state string) (*service.OAuthUser, error) {
	verifier, ok := s.consumePending(state)
	if !ok {
		return nil, errors.New("unknown or expired oauth state")
	}

	accessToken, err := s.exchangeCodeForToken(ctx, code, verifier)
	if err != nil {
		return nil, err
	}

	return s.getUserInfo(ctx, accessToken)
}

// GetProvider returns the OAuth provider type
func (s *OAuthService) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

func (s *OAuthService) storePending(state, verifier string) {
	s.pendingLock.Lock()
	defer s.pendingLock.Unlock()

	s.pending[state] = pendingAuth{
		verifier:  verifier,
		expiresAt: time.Now().Add(stateTTL),
	}

	// Clean up expired states while we hold the lock.
	now := time.Now()
	for key, entry := range s.pending {
		if now.After(entry.expiresAt) {
			delete(s.pending, key)
		}
	}
}

// consumePending removes and returns the verifier for a state.
// A state can only be consumed once.
func (s *OAuthService) consumePending(state string) (string, bool) {
	s.pendingLock.Lock()
	defer s.pendingLock.Unlock()

	entry, ok := s.pending[state]
	if !ok {
		return "", false
	}
	delete(s.pending, state)

	if time.Now().After(entry.expiresAt) {
		return "", false
	}

	return entry.verifier, true
}

// exchangeCodeForToken exchanges an authorization code for an access token.
// The exchange is performed exactly once per call; retries are the caller's decision.
func (s *OAuthService) exchangeCodeForToken(ctx context.Context, code, verifier string) (string, error) {
	data := url.Values{}
	data.Set("client_id", s.clientID)
	data.Set("client_secret", s.clientSecret)
	data.Set("code", code)
	data.Set("code_verifier", verifier)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", s.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, googleTokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to create token exchange request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to exchange code for token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return "", errors.Errorf("token exchange failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", errors.Wrap(err, "failed to decode token response")
	}

	return tokenResponse.AccessToken, nil
}

// getUserInfo retrieves user information using an access token.
func (s *OAuthService) getUserInfo(ctx context.Context, accessToken string) (*service.OAuthUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.Errorf("user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var googleUser struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
		VerifiedEmail bool   `json:"verified_email"`
		Locale        string `json:"locale"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}

	return &service.OAuthUser{
		ID:            googleUser.ID,
		Email:         googleUser.Email,
		Name:          googleUser.Name,
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     googleUser.Picture,
		EmailVerified: googleUser.VerifiedEmail,
		Locale:        googleUser.Locale,
	}, nil
}

// randomToken generates a cryptographically secure random hex string.
func randomToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(bytes), nil
}
