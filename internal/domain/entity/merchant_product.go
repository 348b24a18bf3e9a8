// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MerchantProduct is a merchant-maintained catalog listing, distinct from
// crowdsourced price observations: the merchant asserts their own price.
type MerchantProduct struct {
	ID              uuid.UUID
	MerchantID      uuid.UUID // The merchant user who owns this listing.
	ProductID       uuid.UUID
	Price           float64
	Unit            string
	Images          []string // Public URLs of uploaded listing photos.
	LocationID      *uuid.UUID
	Latitude        *float64
	Longitude       *float64
	Verifications   int // Users confirming the listed price is accurate.
	Unverifications int // Users disputing it.
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Product *Product // Joined record, populated by list queries.
}
