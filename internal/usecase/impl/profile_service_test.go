package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"esnaftaucuz/internal/domain/entity"
	domainerrors "esnaftaucuz/internal/domain/errors"
	"esnaftaucuz/internal/domain/repository"
	mockRepo "esnaftaucuz/internal/mocks/repository"
	"esnaftaucuz/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Logger:    logger,
	})

	return profileServiceFixtures{service: service, txManager: txManager, userRepo: userRepo}
}

// expectMutateUser wires the find/update pair every profile mutation runs through.
func expectMutateUser(t *testing.T, fx profileServiceFixtures, ctx context.Context, user *entity.User, txErr error) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			if txErr == nil {
				mockUserRepo.EXPECT().Update(ctx, user).Return(nil)
			}

			_ = fn(mockFactory)
		}).
		Return(txErr)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateProfile_RejectsEmptyName(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Before"}
	empty := ""

	expectMutateUser(t, fx, ctx, user, domainerrors.ErrValidationFailed)

	_, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		UserID: user.ID,
		Name:   &empty,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_UpdateProfile_SetsNameAndAvatar(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Before"}
	name := "After"
	avatar := "https://example.com/new.png"

	expectMutateUser(t, fx, ctx, user, nil)

	updated, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		UserID:    user.ID,
		Name:      &name,
		AvatarURL: &avatar,
	})

	require.NoError(t, err)
	assert.Equal(t, "After", updated.Name)
	assert.Equal(t, avatar, updated.AvatarURL)
}

func TestProfileService_UpdatePreferences_RadiusKeepsLegacyMirror(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}
	radius := 50.0

	expectMutateUser(t, fx, ctx, user, nil)

	updated, err := fx.service.UpdatePreferences(ctx, &usecase.UpdatePreferencesInput{
		UserID:         user.ID,
		SearchRadiusKm: &radius,
	})

	require.NoError(t, err)
	assert.InDelta(t, 50, updated.EffectiveSearchRadiusKm(), 0.001)
	require.NotNil(t, updated.SearchRadiusKm, "legacy column must mirror the preference")
	assert.InDelta(t, 50, *updated.SearchRadiusKm, 0.001)
	require.NotNil(t, updated.Preferences.SearchRadiusKm)
	assert.InDelta(t, 50, *updated.Preferences.SearchRadiusKm, 0.001)
}

func TestProfileService_UpdatePreferences_RejectsOutOfRangeRadius(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}

	expectMutateUser(t, fx, ctx, user, domainerrors.ErrValidationFailed)

	for _, radius := range []float64{0, -3, 101} {
		radius := radius

		_, err := fx.service.UpdatePreferences(ctx, &usecase.UpdatePreferencesInput{
			UserID:         user.ID,
			SearchRadiusKm: &radius,
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestProfileService_UpdatePreferences_TogglesNotifications(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}
	enabled := true

	expectMutateUser(t, fx, ctx, user, nil)

	updated, err := fx.service.UpdatePreferences(ctx, &usecase.UpdatePreferencesInput{
		UserID:               user.ID,
		NotificationsEnabled: &enabled,
	})

	require.NoError(t, err)
	assert.True(t, updated.Preferences.NotificationsEnabled)
}
