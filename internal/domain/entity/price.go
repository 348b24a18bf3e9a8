// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Price is a single crowdsourced price observation: one product, one
// location, reported by one user. Coordinates are optional and record where
// the observation happened, which may differ from the location's fixed point.
type Price struct {
	ID            uuid.UUID
	Amount        float64 // Observed price in the local currency.
	Unit          string  // Sales unit, e.g. "kg", "adet", "litre".
	PhotoURL      string  // Optional receipt or shelf photo.
	IsVerified    bool    // Set once enough users confirm the observation.
	Verifications int     // Number of users who confirmed this price.
	Reports       int     // Number of users who flagged this price as wrong.
	UserID        uuid.UUID
	ProductID     uuid.UUID
	LocationID    uuid.UUID
	Latitude      *float64
	Longitude     *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined records, populated by list queries and the secondary feed fetch.
	Product  *Product
	Location *Location
	User     *User
}

// HasCoordinates reports whether the observation carries its own point.
func (p *Price) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}
