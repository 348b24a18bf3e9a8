// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"esnaftaucuz/internal/delivery/http/middleware"
	"esnaftaucuz/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	SessionHandler  *handler.SessionHandler
	PriceHandler    *handler.PriceHandler
	FeedHandler     *handler.FeedHandler
	ProfileHandler  *handler.ProfileHandler
	MerchantHandler *handler.MerchantHandler
	GeoHandler      *handler.GeoHandler
	CatalogHandler  *handler.CatalogHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	sessionHandler  *handler.SessionHandler
	priceHandler    *handler.PriceHandler
	feedHandler     *handler.FeedHandler
	profileHandler  *handler.ProfileHandler
	merchantHandler *handler.MerchantHandler
	geoHandler      *handler.GeoHandler
	catalogHandler  *handler.CatalogHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		sessionHandler:  params.SessionHandler,
		priceHandler:    params.PriceHandler,
		feedHandler:     params.FeedHandler,
		profileHandler:  params.ProfileHandler,
		merchantHandler: params.MerchantHandler,
		geoHandler:      params.GeoHandler,
		catalogHandler:  params.CatalogHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/google", r.authHandler.GoogleSignIn)
		authGroup.GET("/google/url", r.authHandler.GoogleAuthURL)
		authGroup.GET("/callback", r.authHandler.OAuthCallback)
		authGroup.POST("/guest", r.authHandler.GuestSession)
		authGroup.GET("/session", r.sessionHandler.Snapshot)
		authGroup.GET("/session/stream", r.sessionHandler.Stream)
		authGroup.POST("/session/events", r.sessionHandler.HandleEvent)
	}

	// Session management requires authentication
	sessionGroup := e.Group("/auth/sessions")
	sessionGroup.Use(r.authMiddleware.Authenticate)
	{
		sessionGroup.GET("", r.authHandler.ListSessions)
		sessionGroup.DELETE("/:id", r.authHandler.RevokeSession)
		sessionGroup.POST("/logout-all", r.authHandler.LogoutAllDevices)
	}

	// Price routes: reads are public, writes require authentication
	priceGroup := e.Group("/prices")
	{
		priceGroup.GET("", r.priceHandler.ListPrices)
		priceGroup.GET("/nearby", r.priceHandler.NearbyPrices)
		priceGroup.GET("/:id", r.priceHandler.GetPrice)
	}
	priceWriteGroup := e.Group("/prices")
	priceWriteGroup.Use(r.authMiddleware.Authenticate)
	{
		priceWriteGroup.POST("", r.priceHandler.SubmitPrice)
		priceWriteGroup.POST("/:id/verify", r.priceHandler.VerifyPrice)
		priceWriteGroup.POST("/:id/report", r.priceHandler.ReportPrice)
	}

	// Live feed routes
	feedGroup := e.Group("/feed")
	{
		feedGroup.GET("", r.feedHandler.Snapshot)
		feedGroup.GET("/stream", r.feedHandler.Stream)
	}

	// Profile routes require authentication
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PATCH("", r.profileHandler.UpdateProfile)
		profileGroup.PATCH("/preferences", r.profileHandler.UpdatePreferences)
	}

	// Merchant catalog routes require authentication; listing writes also
	// require the merchant role
	merchantGroup := e.Group("/merchant")
	merchantGroup.Use(r.authMiddleware.Authenticate)
	{
		merchantGroup.PUT("/profile", r.merchantHandler.UpsertProfile)
		merchantGroup.GET("/qr", r.merchantHandler.ShopQR)
	}
	listingGroup := e.Group("/merchant/listings")
	listingGroup.Use(r.authMiddleware.Authenticate)
	listingGroup.Use(r.authMiddleware.RequireRole("merchant"))
	{
		listingGroup.GET("", r.merchantHandler.ListMyListings)
		listingGroup.POST("", r.merchantHandler.CreateListing)
		listingGroup.PATCH("/:id", r.merchantHandler.UpdateListing)
		listingGroup.DELETE("/:id", r.merchantHandler.DeleteListing)
	}

	// Catalog lookup routes for typeahead search
	e.GET("/products", r.catalogHandler.SearchProducts)
	e.GET("/locations", r.catalogHandler.SearchLocations)

	// Shopper-facing listing routes
	e.GET("/products/:id/listings", r.merchantHandler.ListListingsForProduct)
	e.GET("/shops/resolve", r.merchantHandler.ResolveShopQR)
	listingVerifyGroup := e.Group("/listings")
	listingVerifyGroup.Use(r.authMiddleware.Authenticate)
	{
		listingVerifyGroup.POST("/:id/verify", r.merchantHandler.VerifyListing)
	}

	// Geo routes
	geoGroup := e.Group("/geo")
	{
		geoGroup.GET("/geocode", r.geoHandler.Geocode)
		geoGroup.GET("/reverse", r.geoHandler.ReverseGeocode)
		geoGroup.GET("/places", r.geoHandler.NearbyPlaces)
	}
}
