package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/vecivendo/marketplace/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/vecivendo/marketplace/services/orders OrderRepo

// OrderRepo represents the order repository interface. An order is written
// in a single insert; there is no partial multi-item state to clean up.
type OrderRepo interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	// History lookups match on the phone suffix in each direction
	ListPlacedBySuffix(ctx context.Context, suffix string, limit int) ([]*models.Order, error)
	ListReceivedBySuffix(ctx context.Context, suffix string, limit int) ([]*models.Order, error)
}
