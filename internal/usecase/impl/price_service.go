package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"esnaftaucuz/config"
	deliverycontext "esnaftaucuz/internal/delivery/context"
	"esnaftaucuz/internal/domain/entity"
	domainerrors "esnaftaucuz/internal/domain/errors"
	"esnaftaucuz/internal/domain/repository"
	"esnaftaucuz/internal/domain/service"
	"esnaftaucuz/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// verificationThreshold is how many confirmations flip a price to verified.
	verificationThreshold = 3

	// Contribution points awarded per action.
	pointsPerShare        = 10
	pointsPerVerification = 5

	feedTablePrices = "prices"
)

// priceService implements the PriceUsecase interface.
type priceService struct {
	txManager      repository.TransactionManager
	priceRepo      repository.PriceRepository
	userRepo       repository.UserRepository
	geocoder       service.GeocodingService
	photoStorage   service.PhotoStorage
	eventPublisher service.EventPublisher
	feedBus        service.FeedBus
	defaultRadius  float64
	maxRadius      float64
	logger         *slog.Logger
}

// PriceServiceParams holds dependencies for PriceService, injected by Fx.
type PriceServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	PriceRepo      repository.PriceRepository
	UserRepo       repository.UserRepository
	Geocoder       service.GeocodingService
	PhotoStorage   service.PhotoStorage
	EventPublisher service.EventPublisher
	FeedBus        service.FeedBus
	Config         *config.Config
	Logger         *slog.Logger
}

// NewPriceService is the constructor for priceService.
func NewPriceService(params PriceServiceParams) usecase.PriceUsecase {
	defaultRadius := entity.DefaultSearchRadiusKm
	maxRadius := 100.0
	if params.Config != nil && params.Config.Search != nil {
		if params.Config.Search.DefaultRadiusKm > 0 {
			defaultRadius = params.Config.Search.DefaultRadiusKm
		}
		if params.Config.Search.MaxRadiusKm > 0 {
			maxRadius = params.Config.Search.MaxRadiusKm
		}
	}

	return &priceService{
		txManager:      params.TxManager,
		priceRepo:      params.PriceRepo,
		userRepo:       params.UserRepo,
		geocoder:       params.Geocoder,
		photoStorage:   params.PhotoStorage,
		eventPublisher: params.EventPublisher,
		feedBus:        params.FeedBus,
		defaultRadius:  defaultRadius,
		maxRadius:      maxRadius,
		logger:         params.Logger,
	}
}

func (srv *priceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitPrice records a new observation, creating the product and location
// rows on demand when the free-typed names match nothing.
func (srv *priceService) SubmitPrice(ctx context.Context, input *usecase.SubmitPriceInput) (*usecase.SubmitPriceOutput, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price amount must be positive")
	}
	if input.ProductName == "" || input.LocationName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("product and location names are required")
	}
	if input.LocationType != "" && !input.LocationType.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidLocationType, "unknown location type")
	}

	srv.log(ctx).Info("Submitting price",
		slog.String("product", input.ProductName),
		slog.String("location", input.LocationName),
		slog.Float64("amount", input.Amount),
	)

	// Upload the photo before the transaction; a failed upload only costs the
	// photo, never the observation.
	photoURL := srv.uploadPhoto(ctx, input)

	city, district := srv.resolveCityDistrict(ctx, input)

	var created *entity.Price
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		product, err := srv.findOrCreateProduct(ctx, repoFactory.NewProductRepository(), input)
		if err != nil {
			return err
		}

		location, err := srv.findOrCreateLocation(ctx, repoFactory.NewLocationRepository(), input, city, district)
		if err != nil {
			return err
		}

		price := &entity.Price{
			Amount:     input.Amount,
			Unit:       input.Unit,
			PhotoURL:   photoURL,
			UserID:     input.UserID,
			ProductID:  product.ID,
			LocationID: location.ID,
			Latitude:   input.Latitude,
			Longitude:  input.Longitude,
		}

		if err := repoFactory.NewPriceRepository().CreatePrice(ctx, price); err != nil {
			return errors.Wrap(err, "failed to create price")
		}

		if err := repoFactory.NewUserRepository().AddContribution(ctx, input.UserID, pointsPerShare, 1, 0); err != nil {
			return errors.Wrap(err, "failed to record contribution")
		}

		price.Product = product
		price.Location = location
		created = price

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute price submission transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute price submission transaction")
	}

	srv.announcePrice(ctx, created)

	return &usecase.SubmitPriceOutput{Price: created}, nil
}

func (srv *priceService) uploadPhoto(ctx context.Context, input *usecase.SubmitPriceInput) string {
	if len(input.Photo) == 0 || srv.photoStorage == nil {
		return ""
	}

	key := fmt.Sprintf("prices/%s/%d", input.UserID, time.Now().UnixNano())
	url, err := srv.photoStorage.Upload(ctx, key, input.ContentType, input.Photo)
	if err != nil {
		srv.log(ctx).Warn("Photo upload failed, submitting without photo", slog.Any("error", err))

		return ""
	}

	return url
}

// resolveCityDistrict fills missing city/district from a reverse geocode when
// coordinates are present. A failed lookup degrades to the typed values.
func (srv *priceService) resolveCityDistrict(ctx context.Context, input *usecase.SubmitPriceInput) (string, string) {
	city, district := input.City, input.District
	if city != "" || input.Latitude == nil || input.Longitude == nil || srv.geocoder == nil {
		return city, district
	}

	result, err := srv.geocoder.ReverseGeocode(ctx, *input.Latitude, *input.Longitude)
	if err != nil || !result.Success {
		srv.log(ctx).Debug("Reverse geocode unavailable for submission", slog.Any("error", err))

		return city, district
	}

	if result.City != "" {
		city = result.City
	}
	if district == "" {
		district = result.District
	}

	return city, district
}

func (srv *priceService) findOrCreateProduct(ctx context.Context, productRepo repository.ProductRepository, input *usecase.SubmitPriceInput) (*entity.Product, error) {
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

	srv.log(ctx).Debug("Created product on demand", slog.String("name", product.Name))

	return product, nil
}

func (srv *priceService) findOrCreateLocation(ctx context.Context, locationRepo repository.LocationRepository, input *usecase.SubmitPriceInput, city, district string) (*entity.Location, error) {
	location, err := locationRepo.FindLocationByName(ctx, input.LocationName, city)
	if err == nil {
		return location, nil
	}
	if !errors.Is(err, repository.ErrLocationNotFound) {
		return nil, errors.Wrap(err, "failed to find location")
	}

	locationType := input.LocationType
	if locationType == "" {
		locationType = entity.LocationTypeOther
	}

	location = &entity.Location{
		Name:     input.LocationName,
		Type:     locationType,
		City:     city,
		District: district,
	}
	if input.Latitude != nil && input.Longitude != nil {
		location.Latitude = *input.Latitude
		location.Longitude = *input.Longitude
	}

	if err := locationRepo.CreateLocation(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to create location on demand")
	}

	srv.log(ctx).Debug("Created location on demand", slog.String("name", location.Name), slog.String("city", city))

	return location, nil
}

// announcePrice pushes the new observation to the change feed and the alert
// queue. Both are best-effort: the row is already committed.
func (srv *priceService) announcePrice(ctx context.Context, price *entity.Price) {
	if srv.feedBus != nil {
		event := &entity.FeedEvent{
			Action: entity.FeedActionInserted,
			Table:  feedTablePrices,
			Record: feedRecordForPrice(price),
		}
		if err := srv.feedBus.Publish(ctx, event); err != nil {
			srv.log(ctx).Warn("Failed to publish feed event", slog.Any("error", err))
		}
	}

	if srv.eventPublisher != nil {
		alert := &service.PriceEvent{
			RequestID: deliverycontext.GetRequestIDFromContext(ctx),
			PriceID:   price.ID.String(),
			UserID:    price.UserID.String(),
			ProductID: price.ProductID.String(),
			Amount:    price.Amount,
			Unit:      price.Unit,
		}
		if price.Product != nil {
			alert.ProductName = price.Product.Name
		}
		if price.Location != nil {
			alert.LocationName = price.Location.Name
			alert.Latitude = price.Location.Latitude
			alert.Longitude = price.Location.Longitude
		}
		if price.HasCoordinates() {
			alert.Latitude = *price.Latitude
			alert.Longitude = *price.Longitude
		}

		if err := srv.eventPublisher.PublishPriceEvent(ctx, alert); err != nil {
			srv.log(ctx).Warn("Failed to publish price alert event", slog.Any("error", err))
		}
	}
}

func feedRecordForPrice(price *entity.Price) entity.FeedRecord {
	return entity.FeedRecord{
		ID:         price.ID.String(),
		IsVerified: price.IsVerified,
		Columns: map[string]any{
			"id":          price.ID.String(),
			"is_verified": price.IsVerified,
			"amount":      price.Amount,
			"unit":        price.Unit,
			"user_id":     price.UserID.String(),
			"product_id":  price.ProductID.String(),
			"location_id": price.LocationID.String(),
		},
	}
}

// GetPrice retrieves one price with joined product and location.
func (srv *priceService) GetPrice(ctx context.Context, id uuid.UUID) (*entity.Price, error) {
	price, err := srv.priceRepo.FindPriceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPriceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPriceNotFound, "price not found")
		}

		return nil, errors.Wrap(err, "failed to find price")
	}

	return price, nil
}

// ListPrices retrieves prices matching the filter, newest first.
func (srv *priceService) ListPrices(ctx context.Context, input *usecase.ListPricesInput) ([]*entity.Price, error) {
	prices, err := srv.priceRepo.ListPrices(ctx, repository.PriceQuery{
		ProductID:  input.ProductID,
		LocationID: input.LocationID,
		UserID:     input.UserID,
		Verified:   input.Verified,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list prices")
	}

	return prices, nil
}

// NearbyPrices retrieves prices within the radius, nearest first. The
// candidate set is narrowed in SQL to rows with a usable point; distance
// filtering happens here where the haversine math lives.
func (srv *priceService) NearbyPrices(ctx context.Context, input *usecase.NearbyPricesInput) ([]*usecase.NearbyPrice, error) {
	radiusKm, err := srv.resolveRadius(ctx, input)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 50
	}

	// Over-fetch so the radius filter still has enough rows to fill the page.
	candidates, err := srv.priceRepo.ListPricesWithCoordinates(ctx, limit*10)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list prices with coordinates")
	}

	center := orb.Point{input.Longitude, input.Latitude}
	nearby := make([]*usecase.NearbyPrice, 0, limit)
	for _, price := range candidates {
		point, ok := pricePoint(price)
		if !ok {
			continue
		}

		distanceKm := geo.Distance(center, point) / 1000
		if distanceKm > radiusKm {
			continue
		}

		nearby = append(nearby, &usecase.NearbyPrice{Price: price, DistanceKm: distanceKm})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	if len(nearby) > limit {
		nearby = nearby[:limit]
	}

	return nearby, nil
}

// resolveRadius picks the query radius: explicit input first, then the
// requesting user's effective radius, then the configured default.
func (srv *priceService) resolveRadius(ctx context.Context, input *usecase.NearbyPricesInput) (float64, error) {
	if input.RadiusKm > 0 {
		if input.RadiusKm > srv.maxRadius {
			return srv.maxRadius, nil
		}

		return input.RadiusKm, nil
	}

	if input.UserID != nil {
		user, err := srv.userRepo.FindByID(ctx, *input.UserID)
		if err == nil {
			return user.EffectiveSearchRadiusKm(), nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return 0, errors.Wrap(err, "failed to load user for radius resolution")
		}
	}

	return srv.defaultRadius, nil
}

func pricePoint(price *entity.Price) (orb.Point, bool) {
	if price.HasCoordinates() {
		return orb.Point{*price.Longitude, *price.Latitude}, true
	}
	if price.Location != nil && (price.Location.Latitude != 0 || price.Location.Longitude != 0) {
		return orb.Point{price.Location.Longitude, price.Location.Latitude}, true
	}

	return orb.Point{}, false
}

// VerifyPrice counts one verification from userID. Users cannot verify their
// own submissions; enough verifications flip the verified flag.
func (srv *priceService) VerifyPrice(ctx context.Context, userID, priceID uuid.UUID) error {
	var updated *entity.Price
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		priceRepo := repoFactory.NewPriceRepository()

		price, err := priceRepo.FindPriceByID(ctx, priceID)
		if err != nil {
			if errors.Is(err, repository.ErrPriceNotFound) {
				return errors.Wrap(domainerrors.ErrPriceNotFound, "price not found")
			}

			return errors.Wrap(err, "failed to find price")
		}

		if price.UserID == userID {
			return errors.Wrap(domainerrors.ErrPriceSelfVerification, "cannot verify own price")
		}

		if err := priceRepo.AddVerification(ctx, priceID, verificationThreshold); err != nil {
			return errors.Wrap(err, "failed to add verification")
		}

		if err := repoFactory.NewUserRepository().AddContribution(ctx, userID, pointsPerVerification, 0, 1); err != nil {
			return errors.Wrap(err, "failed to record contribution")
		}

		updated, err = priceRepo.FindPriceByID(ctx, priceID)
		if err != nil {
			return errors.Wrap(err, "failed to reload price after verification")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to verify price", slog.Any("priceID", priceID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute price verification transaction")
	}

	if srv.feedBus != nil {
		event := &entity.FeedEvent{
			Action: entity.FeedActionUpdated,
			Table:  feedTablePrices,
			Record: feedRecordForPrice(updated),
		}
		if err := srv.feedBus.Publish(ctx, event); err != nil {
			srv.log(ctx).Warn("Failed to publish feed event", slog.Any("error", err))
		}
	}

	return nil
}

// ReportPrice counts one report against the price.
func (srv *priceService) ReportPrice(ctx context.Context, userID, priceID uuid.UUID) error {
	srv.log(ctx).Info("Reporting price", slog.Any("userID", userID), slog.Any("priceID", priceID))

	if err := srv.priceRepo.AddReport(ctx, priceID); err != nil {
		if errors.Is(err, repository.ErrPriceNotFound) {
			return errors.Wrap(domainerrors.ErrPriceNotFound, "price not found")
		}

		return errors.Wrap(err, "failed to report price")
	}

	return nil
}
