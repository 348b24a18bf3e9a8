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

// priceRepository implements the domain.PriceRepository interface using GORM.
type priceRepository struct {
	db *gorm.DB
}

// NewPriceRepository is the constructor for priceRepository.
func NewPriceRepository(db *gorm.DB) repository.PriceRepository {
	return &priceRepository{db: db}
}

// CreatePrice persists a new price observation.
func (repo *priceRepository) CreatePrice(ctx context.Context, price *entity.Price) error {
	priceM := fromPriceDomain(price)

	if err := repo.db.WithContext(ctx).Create(priceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPriceNotFound.WrapMessage("invalid product or location reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required price fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create price")
	}

	price.ID = priceM.ID
	price.CreatedAt = priceM.CreatedAt
	price.UpdatedAt = priceM.UpdatedAt

	return nil
}

// FindPriceByID retrieves a price with its joined product and location.
func (repo *priceRepository) FindPriceByID(ctx context.Context, id uuid.UUID) (*entity.Price, error) {
	var priceM model.PriceModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Preload("Location").
		Where("id = ?", id).
		First(&priceM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPriceNotFound
		}

		return nil, errors.Wrap(err, "failed to find price by id")
	}

	return toPriceDomain(&priceM), nil
}

// ListPrices retrieves prices matching the query, newest first.
func (repo *priceRepository) ListPrices(ctx context.Context, q repository.PriceQuery) ([]*entity.Price, error) {
	tx := repo.db.WithContext(ctx).
		Preload("Product").
		Preload("Location").
		Order("created_at DESC")

	if q.ProductID != nil {
		tx = tx.Where("product_id = ?", *q.ProductID)
	}
	if q.LocationID != nil {
		tx = tx.Where("location_id = ?", *q.LocationID)
	}
	if q.UserID != nil {
		tx = tx.Where("user_id = ?", *q.UserID)
	}
	if q.Verified != nil {
		tx = tx.Where("is_verified = ?", *q.Verified)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}

	var priceModels []*model.PriceModel
	if err := tx.Find(&priceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list prices")
	}

	return toPriceDomainSlice(priceModels), nil
}

// ListPricesWithCoordinates retrieves prices that carry a usable point, either
// their own coordinates or their location's.
func (repo *priceRepository) ListPricesWithCoordinates(ctx context.Context, limit int) ([]*entity.Price, error) {
	tx := repo.db.WithContext(ctx).
		Preload("Product").
		Preload("Location").
		Joins("JOIN locations ON locations.id = prices.location_id").
		Where("(prices.latitude IS NOT NULL AND prices.longitude IS NOT NULL) OR locations.latitude IS NOT NULL").
		Order("prices.created_at DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var priceModels []*model.PriceModel
	if err := tx.Find(&priceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list prices with coordinates")
	}

	return toPriceDomainSlice(priceModels), nil
}

// UpdatePrice updates an existing price record.
func (repo *priceRepository) UpdatePrice(ctx context.Context, price *entity.Price) error {
	priceM := fromPriceDomain(price)

	if err := repo.db.WithContext(ctx).Save(priceM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update price")
	}

	price.UpdatedAt = priceM.UpdatedAt

	return nil
}

// AddVerification atomically increments the verification counter and flips
// the verified flag once the threshold is crossed.
func (repo *priceRepository) AddVerification(ctx context.Context, id uuid.UUID, threshold int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PriceModel{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"verifications": gorm.Expr("verifications + 1"),
			"is_verified":   gorm.Expr("verifications + 1 >= ?", threshold),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to add verification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPriceNotFound
	}

	return nil
}

// AddReport atomically increments the report counter.
func (repo *priceRepository) AddReport(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PriceModel{}).
		Where("id = ?", id).
		UpdateColumn("reports", gorm.Expr("reports + 1"))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to add report")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPriceNotFound
	}

	return nil
}

// DeletePrice removes a price by its ID.
func (repo *priceRepository) DeletePrice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PriceModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete price")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPriceNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPriceDomain(data *model.PriceModel) *entity.Price {
	if data == nil {
		return nil
	}

	return &entity.Price{
		ID:            data.ID,
		Amount:        data.Amount,
		Unit:          data.Unit,
		PhotoURL:      data.PhotoURL,
		IsVerified:    data.IsVerified,
		Verifications: data.Verifications,
		Reports:       data.Reports,
		UserID:        data.UserID,
		ProductID:     data.ProductID,
		LocationID:    data.LocationID,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		Product:       toProductDomain(data.Product),
		Location:      toLocationDomain(data.Location),
		User:          toUserDomain(data.User),
	}
}

func toPriceDomainSlice(models []*model.PriceModel) []*entity.Price {
	prices := make([]*entity.Price, 0, len(models))
	for _, m := range models {
		prices = append(prices, toPriceDomain(m))
	}

	return prices
}

func fromPriceDomain(data *entity.Price) *model.PriceModel {
	if data == nil {
		return nil
	}

	return &model.PriceModel{
		ID:            data.ID,
		Amount:        data.Amount,
		Unit:          data.Unit,
		PhotoURL:      data.PhotoURL,
		IsVerified:    data.IsVerified,
		Verifications: data.Verifications,
		Reports:       data.Reports,
		UserID:        data.UserID,
		ProductID:     data.ProductID,
		LocationID:    data.LocationID,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
	}
}
