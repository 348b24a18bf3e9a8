package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"

	"esnaftaucuz/internal/delivery/http/response"
	"esnaftaucuz/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MerchantHandler holds dependencies for merchant shop and catalog handlers.
type MerchantHandler struct {
	uc     usecase.MerchantUsecase
	logger *slog.Logger
}

// NewMerchantHandler is the constructor for MerchantHandler, injected by Fx.
func NewMerchantHandler(uc usecase.MerchantUsecase, logger *slog.Logger) *MerchantHandler {
	return &MerchantHandler{uc: uc, logger: logger}
}

// upsertProfileRequest is the JSON body for shop profile upserts.
type upsertProfileRequest struct {
	ShopName        string `json:"shopName"`
	ShopDescription string `json:"shopDescription"`
	City            string `json:"city"`
	District        string `json:"district"`
}

// UpsertProfile creates or updates the caller's shop profile.
func (h *MerchantHandler) UpsertProfile(c echo.Context) error {
	userID, ok := UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req upsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop profile input")
	}

	user, err := h.uc.UpsertProfile(c.Request().Context(), &usecase.UpsertMerchantProfileInput{
		UserID:          userID,
		ShopName:        req.ShopName,
		ShopDescription: req.ShopDescription,
		City:            req.City,
		District:        req.District,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Shop profile saved successfully")
}

// createListingRequest is the form body for a new catalog entry. Photos are
// sent as multipart files under the "photos" field.
type createListingRequest struct {
	ProductName string   `json:"productName" form:"productName"`
	Category    string   `json:"category" form:"category"`
	Amount      float64  `json:"amount" form:"amount"`
	Unit        string   `json:"unit" form:"unit"`
	LocationID  *string  `json:"locationId" form:"locationId"`
	Latitude    *float64 `json:"latitude" form:"latitude"`
	Longitude   *float64 `json:"longitude" form:"longitude"`
}

// CreateListing adds a catalog entry for the authenticated merchant.
func (h *MerchantHandler) CreateListing(c echo.Context) error {
	userID, ok := UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	input := &usecase.CreateListingInput{
		MerchantID:  userID,
		ProductName: req.ProductName,
		Category:    req.Category,
		Amount:      req.Amount,
		Unit:        req.Unit,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
	if req.LocationID != nil {
		if locationID, err := uuid.Parse(*req.LocationID); err == nil {
			input.LocationID = &locationID
		}
	}

	photos, contentTypes, err := readListingPhotos(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Listing photos could not be read")
	}
	input.Photos = photos
	input.ContentTypes = contentTypes

	listing, err := h.uc.CreateListing(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, listing, "Listing created successfully")
}

// updateListingRequest is the JSON body for listing updates.
type updateListingRequest struct {
	Amount *float64 `json:"amount"`
	Unit   *string  `json:"unit"`
}

// UpdateListing updates one of the authenticated merchant's listings.
func (h *MerchantHandler) UpdateListing(c echo.Context) error {
	userID, ok := UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing id")
	}

	var req updateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	listing, err := h.uc.UpdateListing(c.Request().Context(), &usecase.UpdateListingInput{
		MerchantID: userID,
		ListingID:  listingID,
		Amount:     req.Amount,
		Unit:       req.Unit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "Listing updated successfully")
}

// DeleteListing removes one of the authenticated merchant's listings.
func (h *MerchantHandler) DeleteListing(c echo.Context) error {
	userID, ok := UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing id")
	}

	if err := h.uc.DeleteListing(c.Request().Context(), userID, listingID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Listing deleted successfully")
}

// ListMyListings retrieves the authenticated merchant's catalog.
func (h *MerchantHandler) ListMyListings(c echo.Context) error {
	userID, ok := UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listings, err := h.uc.ListMyListings(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "Listings retrieved successfully")
}

// ListListingsForProduct retrieves all merchant listings for a product.
func (h *MerchantHandler) ListListingsForProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	listings, err := h.uc.ListListingsForProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "Listings retrieved successfully")
}

// VerifyListing counts a shopper's confirmation or dispute of a listing.
func (h *MerchantHandler) VerifyListing(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing id")
	}

	disputed := c.QueryParam("disputed") == "true"
	if err := h.uc.VerifyListing(c.Request().Context(), listingID, disputed); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Listing verification recorded")
}

// ShopQR renders the authenticated merchant's shop QR code as a PNG.
func (h *MerchantHandler) ShopQR(c echo.Context) error {
	userID, ok := UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	png, err := h.uc.ShopQR(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ResolveShopQR resolves scanned QR data to a merchant profile.
func (h *MerchantHandler) ResolveShopQR(c echo.Context) error {
	qrData := c.QueryParam("qr")
	if qrData == "" {
		return response.BadRequest(c, "INVALID_INPUT", "qr query parameter is required")
	}

	merchant, err := h.uc.ResolveShopQR(c.Request().Context(), qrData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, merchant, "Merchant resolved successfully")
}

// readListingPhotos reads the optional "photos" multipart files.
func readListingPhotos(c echo.Context) ([][]byte, []string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, nil // Not a multipart request.
	}

	files := form.File["photos"]
	if len(files) == 0 {
		return nil, nil, nil
	}

	photos := make([][]byte, 0, len(files))
	contentTypes := make([]string, 0, len(files))
	for _, fileHeader := range files {
		data, contentType, err := readMultipartFile(fileHeader)
		if err != nil {
			return nil, nil, err
		}
		photos = append(photos, data)
		contentTypes = append(contentTypes, contentType)
	}

	return photos, contentTypes, nil
}

func readMultipartFile(fileHeader *multipart.FileHeader) ([]byte, string, error) {
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
