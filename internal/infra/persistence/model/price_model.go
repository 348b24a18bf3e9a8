package model

import (
	"time"

	"github.com/google/uuid"
)

// PriceModel mirrors the 'prices' table. Coordinates are nullable; a price
// without its own point falls back to its location's point for distance math.
type PriceModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Amount        float64   `gorm:"type:numeric(12,2);not null"`
	Unit          string    `gorm:"type:varchar(20);not null"`
	PhotoURL      string    `gorm:"type:varchar(512)"`
	IsVerified    bool      `gorm:"not null;default:false"`
	Verifications int       `gorm:"not null;default:0"`
	Reports       int       `gorm:"not null;default:0"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index"`
	LocationID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Latitude      *float64
	Longitude     *float64
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time

	Product  *ProductModel  `gorm:"foreignKey:ProductID"`
	Location *LocationModel `gorm:"foreignKey:LocationID"`
	User     *UserModel     `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (PriceModel) TableName() string {
	return "prices"
}
