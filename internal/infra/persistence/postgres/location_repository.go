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

// locationRepository implements the domain.LocationRepository interface using GORM.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// CreateLocation persists a new location.
func (repo *locationRepository) CreateLocation(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("location already exists in this city")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required location fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindLocationByID retrieves a location by its unique ID.
func (repo *locationRepository) FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by id")
	}

	return toLocationDomain(&locationM), nil
}

// FindLocationByName retrieves a location by exact name within a city.
func (repo *locationRepository) FindLocationByName(ctx context.Context, name, city string) (*entity.Location, error) {
	var locationM model.LocationModel
	err := repo.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?) AND LOWER(city) = LOWER(?)", name, city).
		First(&locationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by name")
	}

	return toLocationDomain(&locationM), nil
}

// SearchLocationsByName retrieves locations whose name contains the query, case-insensitively.
func (repo *locationRepository) SearchLocationsByName(ctx context.Context, query string, limit int) ([]*entity.Location, error) {
	tx := repo.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+query+"%").
		Order("name ASC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var locationModels []*model.LocationModel
	if err := tx.Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search locations by name")
	}

	return toLocationDomainSlice(locationModels), nil
}

// ListLocationsByCity retrieves all locations in a city, optionally narrowed to a district.
func (repo *locationRepository) ListLocationsByCity(ctx context.Context, city, district string) ([]*entity.Location, error) {
	tx := repo.db.WithContext(ctx).
		Where("LOWER(city) = LOWER(?)", city).
		Order("name ASC")
	if district != "" {
		tx = tx.Where("LOWER(district) = LOWER(?)", district)
	}

	var locationModels []*model.LocationModel
	if err := tx.Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list locations by city")
	}

	return toLocationDomainSlice(locationModels), nil
}

// UpdateLocation updates an existing location record.
func (repo *locationRepository) UpdateLocation(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Save(locationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update location")
	}

	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:        data.ID,
		Name:      data.Name,
		Type:      entity.LocationType(data.Type),
		City:      data.City,
		District:  data.District,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toLocationDomainSlice(models []*model.LocationModel) []*entity.Location {
	locations := make([]*entity.Location, 0, len(models))
	for _, m := range models {
		locations = append(locations, toLocationDomain(m))
	}

	return locations
}

func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:        data.ID,
		Name:      data.Name,
		Type:      string(data.Type),
		City:      data.City,
		District:  data.District,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
	}
}
