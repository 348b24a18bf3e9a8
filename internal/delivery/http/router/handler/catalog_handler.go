package handler

import (
	"log/slog"
	"net/http"

	"esnaftaucuz/internal/delivery/http/response"
	"esnaftaucuz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for product and location lookup handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: logger}
}

// SearchProducts returns products whose name matches ?query=, for typeahead
// on the price submission form.
func (h *CatalogHandler) SearchProducts(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'query' is required")
	}

	products, err := h.uc.SearchProducts(c.Request().Context(), query, queryInt(c, "limit", 0))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// SearchLocations returns locations by name match (?query=) or by city
// (?city=, optionally ?district=). Exactly one of the two modes applies;
// a name query wins when both are present.
func (h *CatalogHandler) SearchLocations(c echo.Context) error {
	ctx := c.Request().Context()

	if query := c.QueryParam("query"); query != "" {
		locations, err := h.uc.SearchLocations(ctx, query, queryInt(c, "limit", 0))
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, locations, "Locations retrieved successfully")
	}

	city := c.QueryParam("city")
	if city == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Either 'query' or 'city' is required")
	}

	locations, err := h.uc.ListLocationsByCity(ctx, city, c.QueryParam("district"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, locations, "Locations retrieved successfully")
}
