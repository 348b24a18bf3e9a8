package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MerchantProductModel mirrors the 'merchant_products' table. Images are a
// JSONB array of public URLs.
type MerchantProductModel struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MerchantID      uuid.UUID                   `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Price           float64                     `gorm:"type:numeric(12,2);not null"`
	Unit            string                      `gorm:"type:varchar(20);not null"`
	Images          datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	LocationID      *uuid.UUID                  `gorm:"type:uuid"`
	Latitude        *float64
	Longitude       *float64
	Verifications   int `gorm:"not null;default:0"`
	Unverifications int `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (MerchantProductModel) TableName() string {
	return "merchant_products"
}
