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

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading the merchant profile.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("MerchantProfile").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, preloading the merchant profile.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("MerchantProfile").
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity, including its merchant profile when present.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	// Map the pure domain entity to a GORM persistence model.
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid foreign key reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.MerchantProfile != nil && userM.MerchantProfile != nil {
		user.MerchantProfile.UserID = userM.MerchantProfile.UserID
		user.MerchantProfile.UpdatedAt = userM.MerchantProfile.UpdatedAt
	}

	return nil
}

// Update modifies an existing user entity, including its merchant profile, in the database.
// The legacy search-radius column is written from the same value as the
// preferences column, keeping the mirror invariant at the persistence boundary.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(userM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("invalid foreign key reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt
	if user.MerchantProfile != nil && userM.MerchantProfile != nil {
		user.MerchantProfile.UpdatedAt = userM.MerchantProfile.UpdatedAt
	}

	return nil
}

// AddContribution atomically bumps the user's points and counters.
func (repo *userRepository) AddContribution(ctx context.Context, id uuid.UUID, points, shares, verifications int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"points":        gorm.Expr("points + ?", points),
			"shares":        gorm.Expr("shares + ?", shares),
			"verifications": gorm.Expr("verifications + ?", verifications),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to add contribution")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// FindNotifiableNear retrieves users with notifications enabled whose effective
// search radius covers the given point. The radius precedence (preferences,
// then legacy column, then default) is expressed with COALESCE so the filter
// runs in one query; the haversine formula works in kilometers.
func (repo *userRepository) FindNotifiableNear(ctx context.Context, lat, lng float64) ([]*entity.User, error) {
	var userModels []*model.UserModel

	distanceExpr := `6371 * acos(least(1.0,
		cos(radians(?)) * cos(radians(l.latitude)) * cos(radians(l.longitude) - radians(?)) +
		sin(radians(?)) * sin(radians(l.latitude))))`

	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("notifications_enabled = ?", true).
		Where(`EXISTS (
			SELECT 1 FROM locations l
			WHERE `+distanceExpr+` <= COALESCE(users.pref_search_radius_km, users.search_radius_km, ?)
		)`, lat, lng, lat, entity.DefaultSearchRadiusKm).
		Find(&userModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notifiable users near point")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, m := range userModels {
		users = append(users, toUserDomain(m))
	}

	return users, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:            data.ID,
		Email:         data.Email,
		Name:          data.Name,
		AvatarURL:     data.AvatarURL,
		Level:         data.Level,
		Points:        data.Points,
		Shares:        data.Shares,
		Verifications: data.Verifications,
		Preferences: entity.Preferences{
			NotificationsEnabled: data.NotificationsEnabled,
			SearchRadiusKm:       data.PrefSearchRadiusKm,
			FCMToken:             data.FCMToken,
		},
		SearchRadiusKm:  data.SearchRadiusKm,
		MerchantProfile: toMerchantProfileDomain(data.MerchantProfile),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                   data.ID,
		Email:                data.Email,
		Name:                 data.Name,
		AvatarURL:            data.AvatarURL,
		Level:                data.Level,
		Points:               data.Points,
		Shares:               data.Shares,
		Verifications:        data.Verifications,
		NotificationsEnabled: data.Preferences.NotificationsEnabled,
		FCMToken:             data.Preferences.FCMToken,
		PrefSearchRadiusKm:   data.Preferences.SearchRadiusKm,
		SearchRadiusKm:       data.SearchRadiusKm,
		MerchantProfile:      fromMerchantProfileDomain(data.MerchantProfile),
	}
}

// toMerchantProfileDomain converts a GORM MerchantProfileModel to a domain MerchantProfile entity.
func toMerchantProfileDomain(data *model.MerchantProfileModel) *entity.MerchantProfile {
	if data == nil {
		return nil
	}

	return &entity.MerchantProfile{
		UserID:          data.UserID,
		ShopName:        data.ShopName,
		ShopDescription: data.ShopDescription,
		City:            data.City,
		District:        data.District,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromMerchantProfileDomain converts a domain MerchantProfile entity to a GORM MerchantProfileModel.
func fromMerchantProfileDomain(data *entity.MerchantProfile) *model.MerchantProfileModel {
	if data == nil {
		return nil
	}

	return &model.MerchantProfileModel{
		UserID:          data.UserID,
		ShopName:        data.ShopName,
		ShopDescription: data.ShopDescription,
		City:            data.City,
		District:        data.District,
	}
}
