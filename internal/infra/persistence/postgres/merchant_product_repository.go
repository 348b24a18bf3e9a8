// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"esnaftaucuz/internal/domain/entity"
	domainerrors "esnaftaucuz/internal/domain/errors"
	"esnaftaucuz/internal/domain/repository"
	"esnaftaucuz/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// merchantProductRepository implements the domain.MerchantProductRepository interface using GORM.
type merchantProductRepository struct {
	db *gorm.DB
}

// NewMerchantProductRepository is the constructor for merchantProductRepository.
func NewMerchantProductRepository(db *gorm.DB) repository.MerchantProductRepository {
	return &merchantProductRepository{db: db}
}

// CreateListing persists a new merchant product listing.
func (repo *merchantProductRepository) CreateListing(ctx context.Context, listing *entity.MerchantProduct) error {
	listingM := fromMerchantProductDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrListingNotFound.WrapMessage("invalid product or location reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required listing fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// FindListingByID retrieves a listing with its joined product.
func (repo *merchantProductRepository) FindListingByID(ctx context.Context, id uuid.UUID) (*entity.MerchantProduct, error) {
	var listingM model.MerchantProductModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", id).
		First(&listingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by id")
	}

	return toMerchantProductDomain(&listingM), nil
}

// ListListingsByMerchant retrieves all listings owned by a merchant, newest first.
func (repo *merchantProductRepository) ListListingsByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.MerchantProduct, error) {
	var listingModels []*model.MerchantProductModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("merchant_id = ?", merchantID).
		Order("created_at DESC").
		Find(&listingModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listings by merchant")
	}

	return toMerchantProductDomainSlice(listingModels), nil
}

// ListListingsByProduct retrieves all merchant listings for a product.
func (repo *merchantProductRepository) ListListingsByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.MerchantProduct, error) {
	var listingModels []*model.MerchantProductModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("product_id = ?", productID).
		Order("price ASC").
		Find(&listingModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listings by product")
	}

	return toMerchantProductDomainSlice(listingModels), nil
}

// UpdateListing updates an existing listing record.
func (repo *merchantProductRepository) UpdateListing(ctx context.Context, listing *entity.MerchantProduct) error {
	listingM := fromMerchantProductDomain(listing)

	if err := repo.db.WithContext(ctx).Save(listingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update listing")
	}

	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// AddListingVerification atomically increments one of the listing's verification counters.
func (repo *merchantProductRepository) AddListingVerification(ctx context.Context, id uuid.UUID, disputed bool) error {
	column := "verifications"
	if disputed {
		column = "unverifications"
	}

	result := repo.db.WithContext(ctx).
		Model(&model.MerchantProductModel{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to add listing verification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// DeleteListing removes a listing by its ID.
func (repo *merchantProductRepository) DeleteListing(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MerchantProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toMerchantProductDomain(data *model.MerchantProductModel) *entity.MerchantProduct {
	if data == nil {
		return nil
	}

	return &entity.MerchantProduct{
		ID:              data.ID,
		MerchantID:      data.MerchantID,
		ProductID:       data.ProductID,
		Price:           data.Price,
		Unit:            data.Unit,
		Images:          data.Images,
		LocationID:      data.LocationID,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		Verifications:   data.Verifications,
		Unverifications: data.Unverifications,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		Product:         toProductDomain(data.Product),
	}
}

func toMerchantProductDomainSlice(models []*model.MerchantProductModel) []*entity.MerchantProduct {
	listings := make([]*entity.MerchantProduct, 0, len(models))
	for _, m := range models {
		listings = append(listings, toMerchantProductDomain(m))
	}

	return listings
}

func fromMerchantProductDomain(data *entity.MerchantProduct) *model.MerchantProductModel {
	if data == nil {
		return nil
	}

	return &model.MerchantProductModel{
		ID:              data.ID,
		MerchantID:      data.MerchantID,
		ProductID:       data.ProductID,
		Price:           data.Price,
		Unit:            data.Unit,
		Images:          data.Images,
		LocationID:      data.LocationID,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		Verifications:   data.Verifications,
		Unverifications: data.Unverifications,
	}
}
