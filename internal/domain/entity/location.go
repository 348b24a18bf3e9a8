// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationType classifies where a price was observed.
type LocationType string

const (
	LocationTypeMarket LocationType = "market"
	LocationTypeShop   LocationType = "shop"
	LocationTypeBazaar LocationType = "bazaar"
	LocationTypeOther  LocationType = "other"
)

// IsValid checks if the LocationType is a valid value.
func (t LocationType) IsValid() bool {
	switch t {
	case LocationTypeMarket, LocationTypeShop, LocationTypeBazaar, LocationTypeOther:
		return true
	default:
		return false
	}
}

// Location is a physical place prices are reported at. Like products,
// locations are created on demand from free-typed submissions.
type Location struct {
	ID        uuid.UUID
	Name      string
	Type      LocationType
	City      string
	District  string
	Latitude  float64
	Longitude float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
