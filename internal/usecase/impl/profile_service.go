package impl

import (
	"context"
	"log/slog"

	deliverycontext "esnaftaucuz/internal/delivery/context"
	"esnaftaucuz/internal/domain/entity"
	domainerrors "esnaftaucuz/internal/domain/errors"
	"esnaftaucuz/internal/domain/repository"
	"esnaftaucuz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	maxRadius float64
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		maxRadius: 100,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the user's profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile updates display fields.
func (srv *profileService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.User, error) {
	return srv.mutateUser(ctx, input.UserID, func(user *entity.User) error {
		if input.Name != nil {
			if *input.Name == "" {
				return domainerrors.ErrValidationFailed.WrapMessage("name cannot be empty")
			}
			user.Name = *input.Name
		}
		if input.AvatarURL != nil {
			user.AvatarURL = *input.AvatarURL
		}

		return nil
	})
}

// UpdatePreferences updates settings. A radius change writes both the
// preferences value and the legacy column so older readers stay correct.
func (srv *profileService) UpdatePreferences(ctx context.Context, input *usecase.UpdatePreferencesInput) (*entity.User, error) {
	return srv.mutateUser(ctx, input.UserID, func(user *entity.User) error {
		if input.NotificationsEnabled != nil {
			user.Preferences.NotificationsEnabled = *input.NotificationsEnabled
		}
		if input.FCMToken != nil {
			user.Preferences.FCMToken = *input.FCMToken
		}
		if input.SearchRadiusKm != nil {
			radius := *input.SearchRadiusKm
			if radius <= 0 || radius > srv.maxRadius {
				return domainerrors.ErrValidationFailed.WrapMessage("search radius out of range")
			}
			user.SetSearchRadiusKm(radius)
		}

		return nil
	})
}

func (srv *profileService) mutateUser(ctx context.Context, userID uuid.UUID, mutate func(*entity.User) error) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if err := mutate(user); err != nil {
			return err
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		updated = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to update user", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user update transaction")
	}

	return updated, nil
}
