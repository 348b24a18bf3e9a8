package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"esnaftaucuz/internal/delivery/http/response"
	"esnaftaucuz/internal/domain/entity"
	"esnaftaucuz/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxPhotoBytes caps uploaded price photos at 5 MiB.
const maxPhotoBytes = 5 << 20

// PriceHandler holds dependencies for price-related handlers.
type PriceHandler struct {
	uc     usecase.PriceUsecase
	logger *slog.Logger
}

// NewPriceHandler is the constructor for PriceHandler, injected by Fx.
func NewPriceHandler(uc usecase.PriceUsecase, logger *slog.Logger) *PriceHandler {
	return &PriceHandler{uc: uc, logger: logger}
}

// submitPriceRequest is the JSON/form body for a price submission.
type submitPriceRequest struct {
	ProductName  string   `json:"productName" form:"productName"`
	Category     string   `json:"category" form:"category"`
	Amount       float64  `json:"amount" form:"amount"`
	Unit         string   `json:"unit" form:"unit"`
	LocationName string   `json:"locationName" form:"locationName"`
	LocationType string   `json:"locationType" form:"locationType"`
	City         string   `json:"city" form:"city"`
	District     string   `json:"district" form:"district"`
	Latitude     *float64 `json:"latitude" form:"latitude"`
	Longitude    *float64 `json:"longitude" form:"longitude"`
}

// SubmitPrice records a new price observation. An optional "photo" multipart
// file is attached to the observation.
func (h *PriceHandler) SubmitPrice(c echo.Context) error {
	userID, ok := UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req submitPriceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid price submission input")
	}

	input := &usecase.SubmitPriceInput{
		UserID:       userID,
		ProductName:  req.ProductName,
		Category:     req.Category,
		Amount:       req.Amount,
		Unit:         req.Unit,
		LocationName: req.LocationName,
		LocationType: entity.LocationType(req.LocationType),
		City:         req.City,
		District:     req.District,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	}

	if photo, contentType, err := readPhoto(c, "photo"); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Photo could not be read")
	} else if photo != nil {
		input.Photo = photo
		input.ContentType = contentType
	}

	output, err := h.uc.SubmitPrice(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Price, "Price submitted successfully")
}

// GetPrice retrieves one price with its joined relations.
func (h *PriceHandler) GetPrice(c echo.Context) error {
	priceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid price id")
	}

	price, err := h.uc.GetPrice(c.Request().Context(), priceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, price, "Price retrieved successfully")
}

// ListPrices retrieves prices matching the query filters, newest first.
func (h *PriceHandler) ListPrices(c echo.Context) error {
	input := &usecase.ListPricesInput{
		Limit:  queryInt(c, "limit", 0),
		Offset: queryInt(c, "offset", 0),
	}

	if id, err := uuid.Parse(c.QueryParam("productId")); err == nil {
		input.ProductID = &id
	}
	if id, err := uuid.Parse(c.QueryParam("locationId")); err == nil {
		input.LocationID = &id
	}
	if id, err := uuid.Parse(c.QueryParam("userId")); err == nil {
		input.UserID = &id
	}
	if verified := c.QueryParam("verified"); verified != "" {
		v := verified == "true"
		input.Verified = &v
	}

	prices, err := h.uc.ListPrices(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prices, "Prices retrieved successfully")
}

// NearbyPrices retrieves prices around a point, nearest first. A zero radius
// falls back to the requesting user's effective search radius.
func (h *PriceHandler) NearbyPrices(c echo.Context) error {
	lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if latErr != nil || lngErr != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lat and lng query parameters are required")
	}

	input := &usecase.NearbyPricesInput{
		Latitude:  lat,
		Longitude: lng,
		Limit:     queryInt(c, "limit", 0),
	}
	if radius, err := strconv.ParseFloat(c.QueryParam("radiusKm"), 64); err == nil {
		input.RadiusKm = radius
	}
	if userID, ok := UserIDFromContext(c); ok {
		input.UserID = &userID
	}

	prices, err := h.uc.NearbyPrices(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prices, "Nearby prices retrieved successfully")
}

// VerifyPrice counts one verification from the authenticated user.
func (h *PriceHandler) VerifyPrice(c echo.Context) error {
	userID, ok := UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	priceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid price id")
	}

	if err := h.uc.VerifyPrice(c.Request().Context(), userID, priceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Price verified successfully")
}

// ReportPrice counts one report against the price.
func (h *PriceHandler) ReportPrice(c echo.Context) error {
	userID, ok := UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	priceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid price id")
	}

	if err := h.uc.ReportPrice(c.Request().Context(), userID, priceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Price reported successfully")
}

// queryInt parses an integer query parameter, returning fallback when absent
// or malformed.
func queryInt(c echo.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return fallback
	}

	return value
}

// readPhoto reads an optional multipart file field. A missing field is not an
// error; it returns nil bytes.
func readPhoto(c echo.Context, field string) ([]byte, string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, "", nil
	}
	if fileHeader.Size > maxPhotoBytes {
		return nil, "", errors.New("photo exceeds size limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to open uploaded photo")
	}
	defer file.Close()

	data, err := readAllLimited(file)
	if err != nil {
		return nil, "", err
	}

	return data, fileHeader.Header.Get("Content-Type"), nil
}

// readAllLimited reads a multipart file, never more than maxPhotoBytes.
func readAllLimited(file multipart.File) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded photo")
	}

	return data, nil
}
