// Package entity contains the core business objects of the project.
package entity

import "time"

// AuthEventType is an authentication lifecycle event emitted by the auth
// provider. The reconciler reduces these, together with session presence,
// into the displayed profile state.
type AuthEventType string

const (
	AuthEventInitialSession AuthEventType = "INITIAL_SESSION"
	AuthEventSignedIn       AuthEventType = "SIGNED_IN"
	AuthEventSignedOut      AuthEventType = "SIGNED_OUT"
	AuthEventTokenRefreshed AuthEventType = "TOKEN_REFRESHED"
	AuthEventUserUpdated    AuthEventType = "USER_UPDATED"
)

// Session is the provider-side view of an authenticated user: the token pair
// plus whatever identity metadata the provider attached. The metadata is the
// only material available for placeholder profile synthesis when the profile
// row cannot be fetched in time.
type Session struct {
	UserID       string // Provider-side user ID; matches the profile row's ID.
	Email        string
	Name         string // Display name from provider metadata, may be empty.
	AvatarURL    string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// AuthEvent pairs an event type with the session state it was delivered with.
// Session is nil when the provider reports no active session.
type AuthEvent struct {
	Type    AuthEventType
	Session *Session
}

// PlaceholderProfile synthesizes a displayable profile from session metadata
// alone. Used when the real profile row is missing or its fetch timed out:
// level 1, zero points, default radius.
func (s *Session) PlaceholderProfile() *UserProfileView {
	name := s.Name
	if name == "" {
		name = s.Email
	}

	return &UserProfileView{
		ID:             s.UserID,
		Email:          s.Email,
		Name:           name,
		AvatarURL:      s.AvatarURL,
		Level:          1,
		Points:         0,
		SearchRadiusKm: DefaultSearchRadiusKm,
		IsPlaceholder:  true,
	}
}

// UserProfileView is the profile state the reconciler exposes to the client
// surface. It is a projection, not the persisted row: it may be a placeholder
// until the row is fetched or created.
type UserProfileView struct {
	ID             string
	Email          string
	Name           string
	AvatarURL      string
	Level          int
	Points         int
	Shares         int
	Verifications  int
	SearchRadiusKm float64
	Preferences    Preferences
	IsPlaceholder  bool
}

// ViewFromUser projects a persisted user row into the reconciler's view.
func ViewFromUser(u *User) *UserProfileView {
	return &UserProfileView{
		ID:             u.ID.String(),
		Email:          u.Email,
		Name:           u.Name,
		AvatarURL:      u.AvatarURL,
		Level:          u.Level,
		Points:         u.Points,
		Shares:         u.Shares,
		Verifications:  u.Verifications,
		SearchRadiusKm: u.EffectiveSearchRadiusKm(),
		Preferences:    u.Preferences,
		IsPlaceholder:  false,
	}
}
