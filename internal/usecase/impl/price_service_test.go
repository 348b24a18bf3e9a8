package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"esnaftaucuz/config"
	"esnaftaucuz/internal/domain/entity"
	domainerrors "esnaftaucuz/internal/domain/errors"
	"esnaftaucuz/internal/domain/repository"
	mockRepo "esnaftaucuz/internal/mocks/repository"
	mockSvc "esnaftaucuz/internal/mocks/service"
	"esnaftaucuz/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// priceServiceFixtures holds all test dependencies for price service tests.
type priceServiceFixtures struct {
	service        usecase.PriceUsecase
	txManager      *mockRepo.MockTransactionManager
	priceRepo      *mockRepo.MockPriceRepository
	userRepo       *mockRepo.MockUserRepository
	geocoder       *mockSvc.MockGeocodingService
	photoStorage   *mockSvc.MockPhotoStorage
	eventPublisher *mockSvc.MockEventPublisher
	feedBus        *mockSvc.MockFeedBus
}

func createTestPriceService(t *testing.T) priceServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	priceRepo := mockRepo.NewMockPriceRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	geocoder := mockSvc.NewMockGeocodingService(t)
	photoStorage := mockSvc.NewMockPhotoStorage(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	feedBus := mockSvc.NewMockFeedBus(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPriceService(PriceServiceParams{
		TxManager:      txManager,
		PriceRepo:      priceRepo,
		UserRepo:       userRepo,
		Geocoder:       geocoder,
		PhotoStorage:   photoStorage,
		EventPublisher: eventPublisher,
		FeedBus:        feedBus,
		Config: &config.Config{
			Search: &config.SearchConfig{DefaultRadiusKm: 15, MaxRadiusKm: 100},
		},
		Logger: logger,
	})

	return priceServiceFixtures{
		service:        service,
		txManager:      txManager,
		priceRepo:      priceRepo,
		userRepo:       userRepo,
		geocoder:       geocoder,
		photoStorage:   photoStorage,
		eventPublisher: eventPublisher,
		feedBus:        feedBus,
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestPriceService_SubmitPrice_CreatesProductAndLocationOnDemand(t *testing.T) {
	fx := createTestPriceService(t)

	ctx := context.Background()
	input := &usecase.SubmitPriceInput{
		UserID:       uuid.New(),
		ProductName:  "Domates",
		Category:     "sebze",
		Amount:       34.9,
		Unit:         "kg",
		LocationName: "Sali Pazari",
		City:         "Istanbul",
		District:     "Kadikoy",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockLocationRepo := mockRepo.NewMockLocationRepository(t)
			mockPriceRepo := mockRepo.NewMockPriceRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
			mockFactory.EXPECT().NewLocationRepository().Return(mockLocationRepo)
			mockFactory.EXPECT().NewPriceRepository().Return(mockPriceRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockProductRepo.EXPECT().
				FindProductByName(ctx, "Domates").
				Return(nil, repository.ErrProductNotFound)
			mockProductRepo.EXPECT().
				CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
				Run(func(ctx context.Context, product *entity.Product) {
					product.ID = uuid.New()
				}).
				Return(nil)

			mockLocationRepo.EXPECT().
				FindLocationByName(ctx, "Sali Pazari", "Istanbul").
				Return(nil, repository.ErrLocationNotFound)
			mockLocationRepo.EXPECT().
				CreateLocation(ctx, mock.AnythingOfType("*entity.Location")).
				Run(func(ctx context.Context, location *entity.Location) {
					assert.Equal(t, entity.LocationTypeOther, location.Type)
					location.ID = uuid.New()
				}).
				Return(nil)

			mockPriceRepo.EXPECT().
				CreatePrice(ctx, mock.AnythingOfType("*entity.Price")).
				Run(func(ctx context.Context, price *entity.Price) {
					price.ID = uuid.New()
				}).
				Return(nil)

			mockUserRepo.EXPECT().
				AddContribution(ctx, input.UserID, pointsPerShare, 1, 0).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.feedBus.EXPECT().
		Publish(ctx, mock.AnythingOfType("*entity.FeedEvent")).
		Run(func(ctx context.Context, event *entity.FeedEvent) {
			assert.Equal(t, entity.FeedActionInserted, event.Action)
			assert.Equal(t, "prices", event.Table)
		}).
		Return(nil)
	fx.eventPublisher.EXPECT().
		PublishPriceEvent(ctx, mock.AnythingOfType("*service.PriceEvent")).
		Return(nil)

	output, err := fx.service.SubmitPrice(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output.Price)
	assert.InDelta(t, 34.9, output.Price.Amount, 0.001)
	require.NotNil(t, output.Price.Product)
	assert.Equal(t, "Domates", output.Price.Product.Name)
}

func TestPriceService_SubmitPrice_RejectsNonPositiveAmount(t *testing.T) {
	fx := createTestPriceService(t)

	_, err := fx.service.SubmitPrice(context.Background(), &usecase.SubmitPriceInput{
		UserID:       uuid.New(),
		ProductName:  "Domates",
		LocationName: "Pazar",
		Amount:       0,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPriceService_SubmitPrice_RejectsUnknownLocationType(t *testing.T) {
	fx := createTestPriceService(t)

	_, err := fx.service.SubmitPrice(context.Background(), &usecase.SubmitPriceInput{
		UserID:       uuid.New(),
		ProductName:  "Domates",
		LocationName: "Pazar",
		Amount:       10,
		LocationType: "spaceship",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidLocationType)
}

func TestPriceService_NearbyPrices_ExplicitRadiusWins(t *testing.T) {
	fx := createTestPriceService(t)

	ctx := context.Background()
	userID := uuid.New()

	near := &entity.Price{ID: uuid.New(), Latitude: floatPtr(41.0), Longitude: floatPtr(29.0)}
	// Roughly 110 km north of the query point.
	far := &entity.Price{ID: uuid.New(), Latitude: floatPtr(42.0), Longitude: floatPtr(29.0)}

	fx.priceRepo.EXPECT().
		ListPricesWithCoordinates(ctx, mock.AnythingOfType("int")).
		Return([]*entity.Price{far, near}, nil)

	// An explicit radius means the user row is never consulted; the mock
	// would fail on an unexpected FindByID call.
	nearby, err := fx.service.NearbyPrices(ctx, &usecase.NearbyPricesInput{
		UserID:    &userID,
		Latitude:  41.0,
		Longitude: 29.0,
		RadiusKm:  5,
	})

	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, near.ID, nearby[0].Price.ID)
	assert.Less(t, nearby[0].DistanceKm, 5.0)
}

func TestPriceService_NearbyPrices_FallsBackToUserRadius(t *testing.T) {
	fx := createTestPriceService(t)

	ctx := context.Background()
	userID := uuid.New()
	radius := 50.0

	user := &entity.User{ID: userID}
	user.SetSearchRadiusKm(radius)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)

	// ~38 km away: inside the user's 50 km radius, outside the 15 km default.
	candidate := &entity.Price{ID: uuid.New(), Latitude: floatPtr(41.35), Longitude: floatPtr(29.0)}
	fx.priceRepo.EXPECT().
		ListPricesWithCoordinates(ctx, mock.AnythingOfType("int")).
		Return([]*entity.Price{candidate}, nil)

	nearby, err := fx.service.NearbyPrices(ctx, &usecase.NearbyPricesInput{
		UserID:    &userID,
		Latitude:  41.0,
		Longitude: 29.0,
	})

	require.NoError(t, err)
	require.Len(t, nearby, 1)
}

func TestPriceService_NearbyPrices_DefaultRadiusWhenUserUnknown(t *testing.T) {
	fx := createTestPriceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	// ~38 km away: outside the 15 km default radius.
	candidate := &entity.Price{ID: uuid.New(), Latitude: floatPtr(41.35), Longitude: floatPtr(29.0)}
	fx.priceRepo.EXPECT().
		ListPricesWithCoordinates(ctx, mock.AnythingOfType("int")).
		Return([]*entity.Price{candidate}, nil)

	nearby, err := fx.service.NearbyPrices(ctx, &usecase.NearbyPricesInput{
		UserID:    &userID,
		Latitude:  41.0,
		Longitude: 29.0,
	})

	require.NoError(t, err)
	assert.Empty(t, nearby)
}

func TestPriceService_NearbyPrices_UsesLocationPointWhenPriceHasNone(t *testing.T) {
	fx := createTestPriceService(t)

	ctx := context.Background()
	candidate := &entity.Price{
		ID:       uuid.New(),
		Location: &entity.Location{Latitude: 41.01, Longitude: 29.01},
	}
	fx.priceRepo.EXPECT().
		ListPricesWithCoordinates(ctx, mock.AnythingOfType("int")).
		Return([]*entity.Price{candidate}, nil)

	nearby, err := fx.service.NearbyPrices(ctx, &usecase.NearbyPricesInput{
		Latitude:  41.0,
		Longitude: 29.0,
		RadiusKm:  10,
	})

	require.NoError(t, err)
	require.Len(t, nearby, 1)
}

func TestPriceService_VerifyPrice_RejectsSelfVerification(t *testing.T) {
	fx := createTestPriceService(t)

	ctx := context.Background()
	userID := uuid.New()
	priceID := uuid.New()
	expectedErr := domainerrors.ErrPriceSelfVerification

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPriceRepo := mockRepo.NewMockPriceRepository(t)

			mockFactory.EXPECT().NewPriceRepository().Return(mockPriceRepo)
			mockPriceRepo.EXPECT().
				FindPriceByID(ctx, priceID).
				Return(&entity.Price{ID: priceID, UserID: userID}, nil)

			err := fn(mockFactory)
			assert.ErrorIs(t, err, domainerrors.ErrPriceSelfVerification)
		}).
		Return(expectedErr)

	err := fx.service.VerifyPrice(ctx, userID, priceID)
	assert.ErrorIs(t, err, domainerrors.ErrPriceSelfVerification)
}

func TestPriceService_VerifyPrice_Success(t *testing.T) {
	fx := createTestPriceService(t)

	ctx := context.Background()
	verifierID := uuid.New()
	ownerID := uuid.New()
	priceID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPriceRepo := mockRepo.NewMockPriceRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewPriceRepository().Return(mockPriceRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockPriceRepo.EXPECT().
				FindPriceByID(ctx, priceID).
				Return(&entity.Price{ID: priceID, UserID: ownerID}, nil).
				Once()
			mockPriceRepo.EXPECT().
				AddVerification(ctx, priceID, verificationThreshold).
				Return(nil)
			mockUserRepo.EXPECT().
				AddContribution(ctx, verifierID, pointsPerVerification, 0, 1).
				Return(nil)
			mockPriceRepo.EXPECT().
				FindPriceByID(ctx, priceID).
				Return(&entity.Price{ID: priceID, UserID: ownerID, Verifications: 3, IsVerified: true}, nil).
				Once()

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	fx.feedBus.EXPECT().
		Publish(ctx, mock.AnythingOfType("*entity.FeedEvent")).
		Run(func(ctx context.Context, event *entity.FeedEvent) {
			assert.Equal(t, entity.FeedActionUpdated, event.Action)
			assert.True(t, event.Record.IsVerified)
		}).
		Return(nil)

	require.NoError(t, fx.service.VerifyPrice(ctx, verifierID, priceID))
}

func TestPriceService_ReportPrice_NotFound(t *testing.T) {
	fx := createTestPriceService(t)

	ctx := context.Background()
	priceID := uuid.New()

	fx.priceRepo.EXPECT().
		AddReport(ctx, priceID).
		Return(repository.ErrPriceNotFound)

	err := fx.service.ReportPrice(ctx, uuid.New(), priceID)
	assert.ErrorIs(t, err, domainerrors.ErrPriceNotFound)
}

func TestPriceService_GetPrice_NotFound(t *testing.T) {
	fx := createTestPriceService(t)

	ctx := context.Background()
	priceID := uuid.New()

	fx.priceRepo.EXPECT().
		FindPriceByID(ctx, priceID).
		Return(nil, repository.ErrPriceNotFound)

	_, err := fx.service.GetPrice(ctx, priceID)
	assert.ErrorIs(t, err, domainerrors.ErrPriceNotFound)
}
