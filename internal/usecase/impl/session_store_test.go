package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"esnaftaucuz/config"
	"esnaftaucuz/internal/domain/entity"
	"esnaftaucuz/internal/domain/repository"
	mockRepo "esnaftaucuz/internal/mocks/repository"
	"esnaftaucuz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionStoreFixtures holds all test dependencies for session store tests.
type sessionStoreFixtures struct {
	store    usecase.SessionStore
	userRepo *mockRepo.MockUserRepository
}

func createTestSessionStore(t *testing.T) sessionStoreFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := NewSessionStore(SessionStoreParams{
		UserRepo: userRepo,
		Config: &config.Config{
			Session: &config.SessionConfig{ProfileFetchTimeout: 200 * time.Millisecond},
		},
		Logger: logger,
	})
	require.NoError(t, store.Init(context.Background()))
	t.Cleanup(store.Dispose)

	return sessionStoreFixtures{store: store, userRepo: userRepo}
}

func signedInEvent(userID uuid.UUID) *entity.AuthEvent {
	return &entity.AuthEvent{
		Type: entity.AuthEventSignedIn,
		Session: &entity.Session{
			UserID: userID.String(),
			Email:  "test@example.com",
			Name:   "Test User",
		},
	}
}

func TestSessionStore_SignedIn_LoadsProfile(t *testing.T) {
	fx := createTestSessionStore(t)

	userID := uuid.New()
	fx.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(&entity.User{
			ID:     userID,
			Email:  "test@example.com",
			Name:   "Test User",
			Level:  3,
			Points: 120,
		}, nil)

	fx.store.HandleAuthEvent(context.Background(), signedInEvent(userID))

	snapshot := fx.store.Snapshot()
	assert.False(t, snapshot.Loading)
	require.NotNil(t, snapshot.Profile)
	assert.Equal(t, userID.String(), snapshot.Profile.ID)
	assert.Equal(t, 3, snapshot.Profile.Level)
	assert.False(t, snapshot.Profile.IsPlaceholder)
}

func TestSessionStore_SignedOut_ClearsState(t *testing.T) {
	fx := createTestSessionStore(t)

	userID := uuid.New()
	fx.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, Level: 1}, nil)

	fx.store.HandleAuthEvent(context.Background(), signedInEvent(userID))
	require.NotNil(t, fx.store.Snapshot().Profile)

	fx.store.HandleAuthEvent(context.Background(), &entity.AuthEvent{Type: entity.AuthEventSignedOut})

	snapshot := fx.store.Snapshot()
	assert.False(t, snapshot.Loading)
	assert.Nil(t, snapshot.Session)
	assert.Nil(t, snapshot.Profile)
}

func TestSessionStore_FetchError_FallsBackToPlaceholder(t *testing.T) {
	fx := createTestSessionStore(t)

	userID := uuid.New()
	fx.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(nil, errors.New("connection reset"))

	fx.store.HandleAuthEvent(context.Background(), signedInEvent(userID))

	snapshot := fx.store.Snapshot()
	assert.False(t, snapshot.Loading, "loading must terminate even when the fetch fails")
	require.NotNil(t, snapshot.Profile)
	assert.True(t, snapshot.Profile.IsPlaceholder)
	assert.Equal(t, 1, snapshot.Profile.Level)
	assert.Equal(t, 0, snapshot.Profile.Points)
	assert.InDelta(t, entity.DefaultSearchRadiusKm, snapshot.Profile.SearchRadiusKm, 0.001)
}

func TestSessionStore_MissingRow_PlaceholderThenCreatedRow(t *testing.T) {
	fx := createTestSessionStore(t)

	userID := uuid.New()
	fx.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(nil, repository.ErrUserNotFound)

	// The background creation lands a row at a higher level than the
	// placeholder; the display must pick it up without any extra event.
	fx.userRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.Level = 2
		}).
		Return(nil)

	fx.store.HandleAuthEvent(context.Background(), signedInEvent(userID))

	// The placeholder is visible before creation settles.
	snapshot := fx.store.Snapshot()
	assert.False(t, snapshot.Loading)
	require.NotNil(t, snapshot.Profile)

	store, ok := fx.store.(*sessionStore)
	require.True(t, ok)
	store.WaitForProfileCreation()

	snapshot = fx.store.Snapshot()
	require.NotNil(t, snapshot.Profile)
	assert.False(t, snapshot.Profile.IsPlaceholder)
	assert.Equal(t, 2, snapshot.Profile.Level)
	assert.Equal(t, userID.String(), snapshot.Profile.ID)
}

func TestSessionStore_CreateFailure_KeepsPlaceholder(t *testing.T) {
	fx := createTestSessionStore(t)

	userID := uuid.New()
	fx.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.User")).
		Return(errors.New("insert failed"))

	fx.store.HandleAuthEvent(context.Background(), signedInEvent(userID))

	store, ok := fx.store.(*sessionStore)
	require.True(t, ok)
	store.WaitForProfileCreation()

	snapshot := fx.store.Snapshot()
	assert.False(t, snapshot.Loading)
	require.NotNil(t, snapshot.Profile)
	assert.True(t, snapshot.Profile.IsPlaceholder, "creation failure must not roll back the placeholder")
}

func TestSessionStore_MatchingProfile_SkipsRefetch(t *testing.T) {
	fx := createTestSessionStore(t)

	userID := uuid.New()
	fx.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, Level: 1}, nil).
		Once()

	fx.store.HandleAuthEvent(context.Background(), signedInEvent(userID))

	// A token refresh for the same user must not trigger a second fetch;
	// the mock would fail the test on an unexpected FindByID call.
	fx.store.HandleAuthEvent(context.Background(), &entity.AuthEvent{
		Type:    entity.AuthEventTokenRefreshed,
		Session: &entity.Session{UserID: userID.String()},
	})

	snapshot := fx.store.Snapshot()
	assert.False(t, snapshot.Loading)
	require.NotNil(t, snapshot.Profile)
	assert.Equal(t, userID.String(), snapshot.Profile.ID)
}

func TestSessionStore_SignedInAlwaysRefetches(t *testing.T) {
	fx := createTestSessionStore(t)

	userID := uuid.New()
	fx.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, Level: 1}, nil).
		Twice()

	fx.store.HandleAuthEvent(context.Background(), signedInEvent(userID))
	fx.store.HandleAuthEvent(context.Background(), signedInEvent(userID))
}

func TestSessionStore_NoSession_KeepsCachedProfile(t *testing.T) {
	fx := createTestSessionStore(t)

	userID := uuid.New()
	fx.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, Level: 1}, nil)

	fx.store.HandleAuthEvent(context.Background(), signedInEvent(userID))

	fx.store.HandleAuthEvent(context.Background(), &entity.AuthEvent{Type: entity.AuthEventInitialSession})

	snapshot := fx.store.Snapshot()
	assert.False(t, snapshot.Loading)
	assert.NotNil(t, snapshot.Profile, "an absent session with a cached profile keeps the profile")
}

func TestSessionStore_NonUUIDSessionID_UsesPlaceholder(t *testing.T) {
	fx := createTestSessionStore(t)

	fx.store.HandleAuthEvent(context.Background(), &entity.AuthEvent{
		Type: entity.AuthEventSignedIn,
		Session: &entity.Session{
			UserID: "not-a-uuid",
			Email:  "weird@example.com",
		},
	})

	snapshot := fx.store.Snapshot()
	assert.False(t, snapshot.Loading)
	require.NotNil(t, snapshot.Profile)
	assert.True(t, snapshot.Profile.IsPlaceholder)
}

func TestSessionStore_HandleAuthEventBeforeInit_IsNoOp(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := NewSessionStore(SessionStoreParams{UserRepo: userRepo, Logger: logger})
	t.Cleanup(store.Dispose)

	store.HandleAuthEvent(context.Background(), signedInEvent(uuid.New()))

	snapshot := store.Snapshot()
	assert.False(t, snapshot.Loading)
	assert.Nil(t, snapshot.Profile)
}

func TestSessionStore_DisposeIsIdempotent(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := NewSessionStore(SessionStoreParams{UserRepo: userRepo, Logger: logger})
	require.NoError(t, store.Init(context.Background()))

	store.Dispose()
	store.Dispose()

	_, open := <-store.Updates()
	assert.False(t, open, "updates channel must be closed after dispose")
}
