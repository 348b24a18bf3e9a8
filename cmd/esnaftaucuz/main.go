package main

import (
	"context"
	"log/slog"
	"os"

	"esnaftaucuz/config"
	"esnaftaucuz/internal/delivery"
	"esnaftaucuz/internal/delivery/http"
	"esnaftaucuz/internal/delivery/http/middleware"
	"esnaftaucuz/internal/delivery/http/router/handler"
	"esnaftaucuz/internal/domain/service"
	"esnaftaucuz/internal/infra/auth"
	"esnaftaucuz/internal/infra/auth/google"
	"esnaftaucuz/internal/infra/cache"
	"esnaftaucuz/internal/infra/feed"
	"esnaftaucuz/internal/infra/geocode"
	logs "esnaftaucuz/internal/infra/log"
	"esnaftaucuz/internal/infra/persistence/postgres"
	"esnaftaucuz/internal/infra/places"
	"esnaftaucuz/internal/infra/pubsub"
	"esnaftaucuz/internal/infra/qrcode"
	"esnaftaucuz/internal/infra/storage"
	"esnaftaucuz/internal/usecase"
	"esnaftaucuz/internal/usecase/impl"

	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			runSessionStore,
			runPriceFeed,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.New,
		feed.New,
		storage.New,
		pubsub.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
			postgres.NewPriceRepository,
			postgres.NewProductRepository,
			postgres.NewLocationRepository,
			postgres.NewMerchantProductRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
			google.NewOAuthService,
			google.NewIDTokenService,
			geocode.NewGoogleClient,
			places.NewGoogleClient,
			newQRCodeService,
		),
	)
}

// newPasswordHasher creates the bcrypt hasher with the configured cost
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return auth.NewBcryptHasherWithCost(cost)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewSessionStore,
			impl.NewBootstrapService,
			impl.NewPriceService,
			impl.NewPriceFeed,
			impl.NewMerchantService,
			impl.NewGeoService,
			impl.NewCatalogService,
		),
	)
}

// runSessionStore ties the session store's explicit lifecycle to the app:
// started before serving, disposed on shutdown.
func runSessionStore(lc fx.Lifecycle, store usecase.SessionStore) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return store.Init(ctx)
		},
		OnStop: func(ctx context.Context) error {
			store.Dispose()

			return nil
		},
	})
}

// runPriceFeed keeps the live price feed applying change events for the
// lifetime of the app.
func runPriceFeed(lc fx.Lifecycle, priceFeed usecase.PriceFeed, logger *slog.Logger) {
	feedCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := priceFeed.Run(feedCtx); err != nil {
					logger.Error("Price feed stopped", slog.Any("error", err))
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewSessionHandler,
			handler.NewPriceHandler,
			handler.NewFeedHandler,
			handler.NewProfileHandler,
			handler.NewMerchantHandler,
			handler.NewGeoHandler,
			handler.NewCatalogHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
