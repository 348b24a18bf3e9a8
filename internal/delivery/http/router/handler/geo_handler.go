package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"esnaftaucuz/internal/delivery/http/response"
	"esnaftaucuz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GeoHandler holds dependencies for geocoding and place lookups.
type GeoHandler struct {
	uc     usecase.GeoUsecase
	logger *slog.Logger
}

// NewGeoHandler is the constructor for GeoHandler, injected by Fx.
func NewGeoHandler(uc usecase.GeoUsecase, logger *slog.Logger) *GeoHandler {
	return &GeoHandler{uc: uc, logger: logger}
}

// Geocode resolves a free-form address to coordinates.
func (h *GeoHandler) Geocode(c echo.Context) error {
	address := c.QueryParam("address")
	if address == "" {
		return response.BadRequest(c, "INVALID_INPUT", "address query parameter is required")
	}

	result, err := h.uc.Geocode(c.Request().Context(), address)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Address geocoded successfully")
}

// ReverseGeocode resolves coordinates to the nearest address.
func (h *GeoHandler) ReverseGeocode(c echo.Context) error {
	lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if latErr != nil || lngErr != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lat and lng query parameters are required")
	}

	result, err := h.uc.ReverseGeocode(c.Request().Context(), lat, lng)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Coordinates resolved successfully")
}

// NearbyPlaces returns venues around a point for map display.
func (h *GeoHandler) NearbyPlaces(c echo.Context) error {
	lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if latErr != nil || lngErr != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lat and lng query parameters are required")
	}

	radiusMeters := queryInt(c, "radius", 1000)

	var types []string
	if typesParam := c.QueryParam("types"); typesParam != "" {
		types = strings.Split(typesParam, ",")
	}

	places, err := h.uc.NearbyPlaces(c.Request().Context(), lat, lng, radiusMeters, types)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, places, "Nearby places retrieved successfully")
}
