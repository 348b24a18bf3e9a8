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
	mockSvc "esnaftaucuz/internal/mocks/service"
	"esnaftaucuz/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// merchantServiceFixtures holds all test dependencies for merchant service tests.
type merchantServiceFixtures struct {
	service      usecase.MerchantUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	listingRepo  *mockRepo.MockMerchantProductRepository
	photoStorage *mockSvc.MockPhotoStorage
	qrService    *mockSvc.MockQRCodeService
}

func createTestMerchantService(t *testing.T) merchantServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	listingRepo := mockRepo.NewMockMerchantProductRepository(t)
	photoStorage := mockSvc.NewMockPhotoStorage(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewMerchantService(MerchantServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		ListingRepo:  listingRepo,
		PhotoStorage: photoStorage,
		QRService:    qrService,
		Logger:       logger,
	})

	return merchantServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		listingRepo:  listingRepo,
		photoStorage: photoStorage,
		qrService:    qrService,
	}
}

func merchantUser(id uuid.UUID) *entity.User {
	return &entity.User{
		ID:              id,
		Name:            "Shop Owner",
		MerchantProfile: &entity.MerchantProfile{UserID: id, ShopName: "Manav Ali"},
	}
}

func TestMerchantService_CreateListing_Success(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	input := &usecase.CreateListingInput{
		MerchantID:  merchantID,
		ProductName: "Domates",
		Amount:      34.5,
		Unit:        "kg",
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, merchantID).
		Return(merchantUser(merchantID), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockListingRepo := mockRepo.NewMockMerchantProductRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
			mockFactory.EXPECT().NewMerchantProductRepository().Return(mockListingRepo)

			mockProductRepo.EXPECT().
				FindProductByName(ctx, "Domates").
				Return(&entity.Product{ID: uuid.New(), Name: "Domates"}, nil)
			mockListingRepo.EXPECT().
				CreateListing(ctx, mock.AnythingOfType("*entity.MerchantProduct")).
				Run(func(ctx context.Context, listing *entity.MerchantProduct) {
					listing.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	listing, err := fx.service.CreateListing(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, merchantID, listing.MerchantID)
	assert.InDelta(t, 34.5, listing.Price, 0.001)
	require.NotNil(t, listing.Product)
	assert.Equal(t, "Domates", listing.Product.Name)
}

func TestMerchantService_CreateListing_RequiresMerchantProfile(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	userID := uuid.New()

	// A plain shopper account has no merchant profile.
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Name: "Shopper"}, nil)

	_, err := fx.service.CreateListing(ctx, &usecase.CreateListingInput{
		MerchantID:  userID,
		ProductName: "Domates",
		Amount:      10,
	})

	assert.ErrorIs(t, err, domainerrors.ErrMerchantNotFound)
}

func TestMerchantService_CreateListing_RejectsNonPositiveAmount(t *testing.T) {
	fx := createTestMerchantService(t)

	_, err := fx.service.CreateListing(context.Background(), &usecase.CreateListingInput{
		MerchantID:  uuid.New(),
		ProductName: "Domates",
		Amount:      0,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMerchantService_UpdateListing_RejectsForeignListing(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	listingID := uuid.New()
	newAmount := 12.0

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockMerchantProductRepository(t)

			mockFactory.EXPECT().NewMerchantProductRepository().Return(mockListingRepo)
			mockListingRepo.EXPECT().
				FindListingByID(ctx, listingID).
				Return(&entity.MerchantProduct{ID: listingID, MerchantID: uuid.New()}, nil)

			err := fn(mockFactory)
			assert.ErrorIs(t, err, domainerrors.ErrListingOwnershipViolation)
		}).
		Return(domainerrors.ErrListingOwnershipViolation)

	_, err := fx.service.UpdateListing(ctx, &usecase.UpdateListingInput{
		MerchantID: merchantID,
		ListingID:  listingID,
		Amount:     &newAmount,
	})

	assert.ErrorIs(t, err, domainerrors.ErrListingOwnershipViolation)
}

func TestMerchantService_DeleteListing_RejectsForeignListing(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	listingID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockMerchantProductRepository(t)

			mockFactory.EXPECT().NewMerchantProductRepository().Return(mockListingRepo)
			mockListingRepo.EXPECT().
				FindListingByID(ctx, listingID).
				Return(&entity.MerchantProduct{ID: listingID, MerchantID: uuid.New()}, nil)

			err := fn(mockFactory)
			assert.ErrorIs(t, err, domainerrors.ErrListingOwnershipViolation)
		}).
		Return(domainerrors.ErrListingOwnershipViolation)

	err := fx.service.DeleteListing(ctx, merchantID, listingID)
	assert.ErrorIs(t, err, domainerrors.ErrListingOwnershipViolation)
}

func TestMerchantService_VerifyListing_NotFound(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	listingID := uuid.New()

	fx.listingRepo.EXPECT().
		AddListingVerification(ctx, listingID, false).
		Return(repository.ErrListingNotFound)

	err := fx.service.VerifyListing(ctx, listingID, false)
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestMerchantService_ShopQR_RendersForMerchant(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.userRepo.EXPECT().
		FindByID(ctx, merchantID).
		Return(merchantUser(merchantID), nil)
	fx.qrService.EXPECT().
		GenerateShopQR(merchantID).
		Return(png, nil)

	got, err := fx.service.ShopQR(ctx, merchantID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestMerchantService_ResolveShopQR_RejectsNonMerchant(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.qrService.EXPECT().
		ParseShopQR("qr-payload").
		Return(userID, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	_, err := fx.service.ResolveShopQR(ctx, "qr-payload")
	assert.ErrorIs(t, err, domainerrors.ErrMerchantNotFound)
}

func TestMerchantService_ResolveShopQR_UnreadableCode(t *testing.T) {
	fx := createTestMerchantService(t)

	fx.qrService.EXPECT().
		ParseShopQR("garbage").
		Return(uuid.Nil, domainerrors.ErrValidationFailed)

	_, err := fx.service.ResolveShopQR(context.Background(), "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
