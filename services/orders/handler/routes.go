package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/vecivendo/marketplace/internal/pkg/middleware"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/services/orders/handler/http"
)

// Handler coordinates the HTTP handlers for the orders service
type Handler struct {
	orderHandler *http.OrderHandler
	cfg          *models.Config
}

// NewHandler creates and initializes all order handlers
func NewHandler(orderHandler *http.OrderHandler, cfg *models.Config) *Handler {
	return &Handler{
		orderHandler: orderHandler,
		cfg:          cfg,
	}
}

// RegisterRoutes registers the order routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	orderGroup := e.Group("/orders")
	orderGroup.POST("", h.orderHandler.PlaceOrder, middleware.JWTAuthMiddleware(h.cfg.JWT))
	orderGroup.GET("/history", h.orderHandler.History)
	orderGroup.GET("/:id", h.orderHandler.GetOrder)
}
