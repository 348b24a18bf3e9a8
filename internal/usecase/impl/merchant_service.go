package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "esnaftaucuz/internal/delivery/context"
	"esnaftaucuz/internal/domain/entity"
	domainerrors "esnaftaucuz/internal/domain/errors"
	"esnaftaucuz/internal/domain/repository"
	"esnaftaucuz/internal/domain/service"
	"esnaftaucuz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// merchantService implements the MerchantUsecase interface.
type merchantService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	listingRepo  repository.MerchantProductRepository
	photoStorage service.PhotoStorage
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// MerchantServiceParams holds dependencies for MerchantService, injected by Fx.
type MerchantServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	ListingRepo  repository.MerchantProductRepository
	PhotoStorage service.PhotoStorage
	QRService    service.QRCodeService
	Logger       *slog.Logger
}

// NewMerchantService is the constructor for merchantService.
func NewMerchantService(params MerchantServiceParams) usecase.MerchantUsecase {
	return &merchantService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		listingRepo:  params.ListingRepo,
		photoStorage: params.PhotoStorage,
		qrService:    params.QRService,
		logger:       params.Logger,
	}
}

func (srv *merchantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpsertProfile creates or updates the caller's merchant profile.
func (srv *merchantService) UpsertProfile(ctx context.Context, input *usecase.UpsertMerchantProfileInput) (*entity.User, error) {
	if input.ShopName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("shop name is required")
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		if user.MerchantProfile == nil {
			user.MerchantProfile = &entity.MerchantProfile{UserID: user.ID}
		}
		user.MerchantProfile.ShopName = input.ShopName
		user.MerchantProfile.ShopDescription = input.ShopDescription
		user.MerchantProfile.City = input.City
		user.MerchantProfile.District = input.District

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update merchant profile")
		}

		updated = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to upsert merchant profile", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute merchant profile transaction")
	}

	return updated, nil
}

// CreateListing adds a catalog entry, creating the product on demand.
func (srv *merchantService) CreateListing(ctx context.Context, input *usecase.CreateListingInput) (*entity.MerchantProduct, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("listing price must be positive")
	}
	if input.ProductName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("product name is required")
	}

	if err := srv.requireMerchant(ctx, input.MerchantID); err != nil {
		return nil, err
	}

	images := srv.uploadListingPhotos(ctx, input)

	var created *entity.MerchantProduct
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		product, err := srv.findOrCreateListingProduct(ctx, repoFactory.NewProductRepository(), input)
		if err != nil {
			return err
		}

		listing := &entity.MerchantProduct{
			MerchantID: input.MerchantID,
			ProductID:  product.ID,
			Price:      input.Amount,
			Unit:       input.Unit,
			Images:     images,
			LocationID: input.LocationID,
			Latitude:   input.Latitude,
			Longitude:  input.Longitude,
		}

		if err := repoFactory.NewMerchantProductRepository().CreateListing(ctx, listing); err != nil {
			return errors.Wrap(err, "failed to create listing")
		}

		listing.Product = product
		created = listing

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to create listing", slog.Any("merchantID", input.MerchantID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute listing creation transaction")
	}

	return created, nil
}

func (srv *merchantService) findOrCreateListingProduct(ctx context.Context, productRepo repository.ProductRepository, input *usecase.CreateListingInput) (*entity.Product, error) {
	product, err := productRepo.FindProductByName(ctx, input.ProductName)
	if err == nil {
		return product, nil
	}
	if !errors.Is(err, repository.ErrProductNotFound) {
		return nil, errors.Wrap(err, "failed to find product")
	}

	product = &entity.Product{
		Name:        input.ProductName,
		Category:    input.Category,
		DefaultUnit: input.Unit,
	}
	if err := productRepo.CreateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product on demand")
	}

	return product, nil
}

func (srv *merchantService) uploadListingPhotos(ctx context.Context, input *usecase.CreateListingInput) []string {
	if srv.photoStorage == nil || len(input.Photos) == 0 {
		return nil
	}

	images := make([]string, 0, len(input.Photos))
	for i, photo := range input.Photos {
		contentType := ""
		if i < len(input.ContentTypes) {
			contentType = input.ContentTypes[i]
		}

		key := fmt.Sprintf("listings/%s/%d-%d", input.MerchantID, time.Now().UnixNano(), i)
		url, err := srv.photoStorage.Upload(ctx, key, contentType, photo)
		if err != nil {
			srv.log(ctx).Warn("Listing photo upload failed, skipping", slog.Int("index", i), slog.Any("error", err))

			continue
		}
		images = append(images, url)
	}

	return images
}

// UpdateListing updates a listing. Only the owner may update it.
func (srv *merchantService) UpdateListing(ctx context.Context, input *usecase.UpdateListingInput) (*entity.MerchantProduct, error) {
	var updated *entity.MerchantProduct
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.NewMerchantProductRepository()

		listing, err := listingRepo.FindListingByID(ctx, input.ListingID)
		if err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return errors.Wrap(domainerrors.ErrListingNotFound, "listing not found")
			}

			return errors.Wrap(err, "failed to find listing")
		}

		if listing.MerchantID != input.MerchantID {
			return errors.Wrap(domainerrors.ErrListingOwnershipViolation, "listing belongs to another merchant")
		}

		if input.Amount != nil {
			listing.Price = *input.Amount
		}
		if input.Unit != nil {
			listing.Unit = *input.Unit
		}

		if err := listingRepo.UpdateListing(ctx, listing); err != nil {
			return errors.Wrap(err, "failed to update listing")
		}

		updated = listing

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to update listing", slog.Any("listingID", input.ListingID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute listing update transaction")
	}

	return updated, nil
}

// DeleteListing removes a listing. Only the owner may delete it.
func (srv *merchantService) DeleteListing(ctx context.Context, merchantID, listingID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.NewMerchantProductRepository()

		listing, err := listingRepo.FindListingByID(ctx, listingID)
		if err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return errors.Wrap(domainerrors.ErrListingNotFound, "listing not found")
			}

			return errors.Wrap(err, "failed to find listing")
		}

		if listing.MerchantID != merchantID {
			return errors.Wrap(domainerrors.ErrListingOwnershipViolation, "listing belongs to another merchant")
		}

		return errors.Wrap(listingRepo.DeleteListing(ctx, listingID), "failed to delete listing")
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to delete listing", slog.Any("listingID", listingID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute listing deletion transaction")
	}

	return nil
}

// ListMyListings retrieves the caller's catalog, newest first.
func (srv *merchantService) ListMyListings(ctx context.Context, merchantID uuid.UUID) ([]*entity.MerchantProduct, error) {
	listings, err := srv.listingRepo.ListListingsByMerchant(ctx, merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchant listings")
	}

	return listings, nil
}

// ListListingsForProduct retrieves all merchant listings for a product.
func (srv *merchantService) ListListingsForProduct(ctx context.Context, productID uuid.UUID) ([]*entity.MerchantProduct, error) {
	listings, err := srv.listingRepo.ListListingsByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product listings")
	}

	return listings, nil
}

// VerifyListing counts a shopper's confirmation or dispute of a listing.
func (srv *merchantService) VerifyListing(ctx context.Context, listingID uuid.UUID, disputed bool) error {
	if err := srv.listingRepo.AddListingVerification(ctx, listingID, disputed); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return errors.Wrap(domainerrors.ErrListingNotFound, "listing not found")
		}

		return errors.Wrap(err, "failed to verify listing")
	}

	return nil
}

// ShopQR renders the merchant's shop QR code as PNG bytes.
func (srv *merchantService) ShopQR(ctx context.Context, merchantID uuid.UUID) ([]byte, error) {
	if err := srv.requireMerchant(ctx, merchantID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateShopQR(merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate shop QR code")
	}

	return png, nil
}

// ResolveShopQR parses scanned QR data and returns the merchant profile.
func (srv *merchantService) ResolveShopQR(ctx context.Context, qrData string) (*entity.User, error) {
	merchantID, err := srv.qrService.ParseShopQR(qrData)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unreadable shop code")
	}

	merchant, err := srv.userRepo.FindByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMerchantNotFound, "merchant not found")
		}

		return nil, errors.Wrap(err, "failed to find merchant")
	}
	if merchant.MerchantProfile == nil {
		return nil, errors.Wrap(domainerrors.ErrMerchantNotFound, "user has no shop profile")
	}

	return merchant, nil
}

// requireMerchant verifies the user exists and carries a merchant profile.
func (srv *merchantService) requireMerchant(ctx context.Context, merchantID uuid.UUID) error {
	user, err := srv.userRepo.FindByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrMerchantNotFound, "merchant not found")
		}

		return errors.Wrap(err, "failed to find merchant")
	}
	if user.MerchantProfile == nil {
		return errors.Wrap(domainerrors.ErrMerchantNotFound, "user has no shop profile")
	}

	return nil
}
