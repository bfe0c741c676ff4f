package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/vecivendo/marketplace/internal/pkg/logger"
	"github.com/vecivendo/marketplace/internal/pkg/middleware"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/internal/utils"
	"github.com/vecivendo/marketplace/services/catalog"
	"github.com/vecivendo/marketplace/services/orders"
)

// OrderHandler handles HTTP requests for order operations
type OrderHandler struct {
	orderUC orders.OrderUC
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUC orders.OrderUC) *OrderHandler {
	return &OrderHandler{
		orderUC: orderUC,
	}
}

// PlaceOrder handles checkout requests from a verified buyer
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	ident := middleware.IdentityFromContext(c)
	if ident == "" {
		return utils.UnauthorizedResponse(c, "Missing identity")
	}

	var req models.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), ident, &req)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrEmptyOrder):
			return utils.BadRequestResponse(c, "Order has no items")
		case errors.Is(err, orders.ErrMultipleSellers):
			return utils.BadRequestResponse(c, "Order items must belong to one seller")
		case errors.Is(err, catalog.ErrAdNotFound):
			return utils.NotFoundResponse(c, "Ad not found")
		}
		logger.Error("Failed to place order",
			logger.ErrorField(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to place order")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Order placed successfully", map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"total":        order.Total,
	})
}

// History handles order history lookups by phone
func (h *OrderHandler) History(c echo.Context) error {
	phone := c.QueryParam("phone")
	if phone == "" {
		return utils.BadRequestResponse(c, "Phone is required")
	}

	history, err := h.orderUC.History(c.Request().Context(), phone)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidPhone) {
			return utils.BadRequestResponse(c, "Invalid phone number")
		}
		logger.Error("Failed to retrieve order history",
			logger.ErrorField(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to retrieve order history")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Order history retrieved successfully", history)
}

// GetOrder handles single order retrieval
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			return utils.NotFoundResponse(c, "Order not found")
		}
		logger.Error("Failed to retrieve order",
			logger.ErrorField(err),
			logger.String("order_id", id.String()),
		)
		return utils.InternalServerErrorResponse(c, "Failed to retrieve order")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Order retrieved successfully", order)
}
