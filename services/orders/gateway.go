package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/vecivendo/marketplace/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/vecivendo/marketplace/services/orders OrderGW

// OrderGW represents the order gateway interface: the catalog lookup used
// to price items and the event boundary other systems consume
type OrderGW interface {
	// ResolveAd returns the ad an order item references
	ResolveAd(ctx context.Context, adID uuid.UUID) (*models.Ad, error)

	// ResolveBuyer returns the profile behind a verified buyer identity
	ResolveBuyer(ctx context.Context, identity string) (*models.Profile, error)

	// PublishOrderPlaced announces a freshly placed order
	PublishOrderPlaced(ctx context.Context, order *models.Order) error
}
