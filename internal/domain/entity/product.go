// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item prices are reported against. Products are created
// on demand when a submitted price names a product that does not exist yet.
type Product struct {
	ID          uuid.UUID
	Name        string
	Category    string // e.g. "meyve-sebze", "bakliyat", "temizlik".
	ImageURL    string
	DefaultUnit string // Suggested unit for new price submissions.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
