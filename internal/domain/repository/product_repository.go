// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"esnaftaucuz/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product catalog persistence.
type ProductRepository interface {
	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProductByName retrieves a product by exact name match.
	// Used by create-on-demand to avoid duplicate rows for free-typed names.
	FindProductByName(ctx context.Context, name string) (*entity.Product, error)

	// SearchProductsByName retrieves products whose name contains the query,
	// case-insensitively, capped at limit.
	SearchProductsByName(ctx context.Context, query string, limit int) ([]*entity.Product, error)

	// UpdateProduct updates an existing product record.
	UpdateProduct(ctx context.Context, product *entity.Product) error
}
