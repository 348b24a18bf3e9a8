package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Preferences are flattened into columns; search_radius_km is the legacy
// column kept in sync with pref_search_radius_km for older clients.
type UserModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email                string    `gorm:"type:varchar(255);unique;not null"`
	Name                 string    `gorm:"type:varchar(100)"`
	AvatarURL            string    `gorm:"type:varchar(512)"`
	Level                int       `gorm:"not null;default:1"`
	Points               int       `gorm:"not null;default:0"`
	Shares               int       `gorm:"not null;default:0"`
	Verifications        int       `gorm:"not null;default:0"`
	NotificationsEnabled bool      `gorm:"not null;default:false"`
	FCMToken             string    `gorm:"type:varchar(512)"`
	PrefSearchRadiusKm   *float64
	SearchRadiusKm       *float64
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            *time.Time `gorm:"index"`

	MerchantProfile *MerchantProfileModel `gorm:"foreignKey:UserID"`
	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// MerchantProfileModel mirrors the 'merchant_profiles' table. UserID references users.id (UUID).
type MerchantProfileModel struct {
	UserID          uuid.UUID `gorm:"primaryKey"`
	ShopName        string    `gorm:"type:varchar(100);not null"`
	ShopDescription string    `gorm:"type:text"`
	City            string    `gorm:"type:varchar(100)"`
	District        string    `gorm:"type:varchar(100)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantProfileModel) TableName() string {
	return "merchant_profiles"
}
