package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/vecivendo/marketplace/internal/pkg/logger"
	"github.com/vecivendo/marketplace/internal/pkg/middleware"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/internal/utils"
	"github.com/vecivendo/marketplace/services/catalog"
)

// AdHandler handles HTTP requests for ad operations
type AdHandler struct {
	catalogUC catalog.CatalogUC
}

// NewAdHandler creates a new ad handler
func NewAdHandler(catalogUC catalog.CatalogUC) *AdHandler {
	return &AdHandler{
		catalogUC: catalogUC,
	}
}

// ListAds handles ad listing requests
func (h *AdHandler) ListAds(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	filter := &models.AdFilter{
		ResidentialID: c.QueryParam("residential"),
		Category:      c.QueryParam("category"),
		Search:        c.QueryParam("search"),
		ActiveOnly:    true,
		Limit:         limit,
		Offset:        offset,
	}

	ads, err := h.catalogUC.ListAds(c.Request().Context(), filter)
	if err != nil {
		logger.Error("Failed to list ads",
			logger.ErrorField(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to list ads")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ads retrieved successfully", ads)
}

// GetAd handles single ad retrieval
func (h *AdHandler) GetAd(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ad ID")
	}

	ad, err := h.catalogUC.GetAd(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrAdNotFound) {
			return utils.NotFoundResponse(c, "Ad not found")
		}
		logger.Error("Failed to retrieve ad",
			logger.ErrorField(err),
			logger.String("ad_id", id.String()),
		)
		return utils.InternalServerErrorResponse(c, "Failed to retrieve ad")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ad retrieved successfully", ad)
}

// CreateAd handles ad publication by a verified seller
func (h *AdHandler) CreateAd(c echo.Context) error {
	ident := middleware.IdentityFromContext(c)
	if ident == "" {
		return utils.UnauthorizedResponse(c, "Missing identity")
	}

	var ad models.Ad
	if err := c.Bind(&ad); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if ad.Title == "" {
		return utils.BadRequestResponse(c, "Title is required")
	}

	if err := h.catalogUC.CreateAd(c.Request().Context(), ident, &ad); err != nil {
		logger.Error("Failed to create ad",
			logger.ErrorField(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to create ad")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ad created successfully", ad)
}

// SetAdActive handles pausing or republishing an ad
func (h *AdHandler) SetAdActive(c echo.Context) error {
	ident := middleware.IdentityFromContext(c)
	if ident == "" {
		return utils.UnauthorizedResponse(c, "Missing identity")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ad ID")
	}

	var req models.SetAdActiveRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.catalogUC.SetAdActive(c.Request().Context(), ident, id, req.Active); err != nil {
		if errors.Is(err, catalog.ErrAdNotFound) {
			return utils.NotFoundResponse(c, "Ad not found")
		}
		if errors.Is(err, catalog.ErrNotAdOwner) {
			return utils.ForbiddenResponse(c, "Ad belongs to another seller")
		}
		logger.Error("Failed to update ad visibility",
			logger.ErrorField(err),
			logger.String("ad_id", id.String()),
		)
		return utils.InternalServerErrorResponse(c, "Failed to update ad visibility")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ad visibility updated", nil)
}

// OtherAdsBySeller handles the "more from this seller" lookup
func (h *AdHandler) OtherAdsBySeller(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ad ID")
	}

	ads, err := h.catalogUC.OtherAdsBySeller(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrAdNotFound) {
			return utils.NotFoundResponse(c, "Ad not found")
		}
		logger.Error("Failed to list seller ads",
			logger.ErrorField(err),
			logger.String("ad_id", id.String()),
		)
		return utils.InternalServerErrorResponse(c, "Failed to list seller ads")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Seller ads retrieved successfully", ads)
}
