package usecase

import (
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/services/orders"
)

type OrderUC struct {
	orderRepo orders.OrderRepo
	orderGW   orders.OrderGW
	cfg       *models.Config
}

// NewOrderUC creates a new order usecase instance
func NewOrderUC(
	orderRepo orders.OrderRepo,
	orderGW orders.OrderGW,
	cfg *models.Config,
) *OrderUC {
	return &OrderUC{
		orderRepo: orderRepo,
		orderGW:   orderGW,
		cfg:       cfg,
	}
}
