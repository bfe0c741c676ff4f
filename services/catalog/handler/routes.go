package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/vecivendo/marketplace/internal/pkg/middleware"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/services/catalog/handler/http"
)

// Handler coordinates the HTTP handlers for the catalog service
type Handler struct {
	adHandler     *http.AdHandler
	reviewHandler *http.ReviewHandler
	cfg           *models.Config
}

// NewHandler creates and initializes all catalog handlers
func NewHandler(
	adHandler *http.AdHandler,
	reviewHandler *http.ReviewHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		adHandler:     adHandler,
		reviewHandler: reviewHandler,
		cfg:           cfg,
	}
}

// RegisterRoutes registers the catalog routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	jwtAuth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	adGroup := e.Group("/ads")
	adGroup.GET("", h.adHandler.ListAds)
	adGroup.GET("/:id", h.adHandler.GetAd)
	adGroup.POST("", h.adHandler.CreateAd, jwtAuth)
	adGroup.PUT("/:id/active", h.adHandler.SetAdActive, jwtAuth)
	adGroup.GET("/:id/others", h.adHandler.OtherAdsBySeller)
	adGroup.GET("/:id/reviews", h.reviewHandler.ListReviews)
	adGroup.POST("/:id/reviews", h.reviewHandler.CreateReview, jwtAuth)
}
