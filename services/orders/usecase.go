package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/vecivendo/marketplace/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/vecivendo/marketplace/services/orders OrderUC

// OrderUC represents the order ledger usecase interface
type OrderUC interface {
	PlaceOrder(ctx context.Context, buyerIdentity string, req *models.PlaceOrderRequest) (*models.Order, error)
	History(ctx context.Context, phone string) (*models.OrderHistory, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
}
