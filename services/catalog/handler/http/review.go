package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/vecivendo/marketplace/internal/pkg/logger"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/internal/utils"
	"github.com/vecivendo/marketplace/services/catalog"
)

// ReviewHandler handles HTTP requests for review operations
type ReviewHandler struct {
	catalogUC catalog.CatalogUC
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(catalogUC catalog.CatalogUC) *ReviewHandler {
	return &ReviewHandler{
		catalogUC: catalogUC,
	}
}

// ListReviews handles review listing for an ad
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	adID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ad ID")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	reviews, err := h.catalogUC.ListReviews(c.Request().Context(), adID, limit, offset)
	if err != nil {
		logger.Error("Failed to list reviews",
			logger.ErrorField(err),
			logger.String("ad_id", adID.String()),
		)
		return utils.InternalServerErrorResponse(c, "Failed to list reviews")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reviews retrieved successfully", reviews)
}

// CreateReview handles review submission for an ad
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	adID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ad ID")
	}

	var review models.Review
	if err := c.Bind(&review); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	review.AdID = adID

	if err := h.catalogUC.CreateReview(c.Request().Context(), &review); err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidRating):
			return utils.BadRequestResponse(c, "Rating must be between 1 and 5")
		case errors.Is(err, catalog.ErrAdNotFound):
			return utils.NotFoundResponse(c, "Ad not found")
		}
		logger.Error("Failed to create review",
			logger.ErrorField(err),
			logger.String("ad_id", adID.String()),
		)
		return utils.InternalServerErrorResponse(c, "Failed to create review")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Review created successfully", review)
}
