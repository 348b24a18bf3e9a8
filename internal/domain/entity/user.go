// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSearchRadiusKm is the radius applied when a user never chose one.
const DefaultSearchRadiusKm = 15.0

// User is the core entity in the system, representing a unique "person" or "account".
type User struct {
	ID            uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email         string    // The user's primary contact email, often used as a login identifier.
	Name          string    // The user's display name.
	AvatarURL     string    // Optional profile picture URL.
	Level         int       // Contribution level, starts at 1.
	Points        int       // Accumulated contribution points.
	Shares        int       // Number of prices this user has shared.
	Verifications int       // Number of prices this user has verified.
	IsGuest       bool      // Guest accounts are local-only and never persisted server-side.

	// Preferences holds the user's chosen settings. SearchRadiusKm inside it is
	// the canonical value; the top-level SearchRadiusKm mirrors it for older
	// rows that predate the preferences column. Any update writes both.
	Preferences    Preferences
	SearchRadiusKm *float64 // Legacy column mirror of Preferences.SearchRadiusKm.

	MerchantProfile *MerchantProfile // Nil unless this account also has the merchant role.
	CreatedAt       time.Time        // Timestamp of when this user account was created.
	UpdatedAt       time.Time        // Timestamp of the last modification to this user's data.
}

// Preferences holds per-user settings.
type Preferences struct {
	NotificationsEnabled bool     `json:"notificationsEnabled"`
	SearchRadiusKm       *float64 `json:"searchRadiusKm,omitempty"`

	// FCMToken is the device push token registered by the client. Empty when
	// the user never enabled push notifications on any device.
	FCMToken string `json:"-"`
}

// EffectiveSearchRadiusKm resolves the radius used for nearby queries:
// the preferences value wins, then the legacy column, then the default.
// Total over every combination of set/unset fields.
func (u *User) EffectiveSearchRadiusKm() float64 {
	if u != nil {
		if u.Preferences.SearchRadiusKm != nil {
			return *u.Preferences.SearchRadiusKm
		}
		if u.SearchRadiusKm != nil {
			return *u.SearchRadiusKm
		}
	}

	return DefaultSearchRadiusKm
}

// SetSearchRadiusKm updates the radius and keeps the legacy mirror in sync.
func (u *User) SetSearchRadiusKm(km float64) {
	u.Preferences.SearchRadiusKm = &km
	u.SearchRadiusKm = &km
}

// MerchantProfile holds data specific to the "merchant" role.
type MerchantProfile struct {
	UserID          uuid.UUID // Foreign Key that links this profile to a core User entity.
	ShopName        string    // The merchant's shop name as shown to buyers.
	ShopDescription string    // A short description of the shop.
	City            string
	District        string
	UpdatedAt       time.Time // Timestamp of the last modification to this profile.
}
