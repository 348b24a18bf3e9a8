package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel mirrors the 'locations' table.
type LocationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_locations_name_city"`
	Type      string    `gorm:"type:varchar(20);not null"`
	City      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_locations_name_city;index"`
	District  string    `gorm:"type:varchar(100);index"`
	Latitude  float64   `gorm:"not null"`
	Longitude float64   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
