package gateway

import (
	"context"

	"github.com/google/uuid"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	natspkg "github.com/vecivendo/marketplace/internal/pkg/nats"
	"github.com/vecivendo/marketplace/services/catalog"
	"github.com/vecivendo/marketplace/services/identity"
	"github.com/vecivendo/marketplace/services/orders"
	gateway_nats "github.com/vecivendo/marketplace/services/orders/gateway/nats"
)

// OrderGW handles order gateway operations. Catalog and identity live in
// the same process, so ad and buyer resolution call their usecases
// directly; only the order placed event crosses a wire.
type OrderGW struct {
	catalogUC   catalog.CatalogUC
	identityUC  identity.IdentityUC
	natsGateway *gateway_nats.NATSGateway
}

// NewOrderGW creates a new order gateway instance
func NewOrderGW(catalogUC catalog.CatalogUC, identityUC identity.IdentityUC, natsClient *natspkg.Client) orders.OrderGW {
	return &OrderGW{
		catalogUC:   catalogUC,
		identityUC:  identityUC,
		natsGateway: gateway_nats.NewNATSGateway(natsClient),
	}
}

// ResolveAd returns the ad an order item references
func (g *OrderGW) ResolveAd(ctx context.Context, adID uuid.UUID) (*models.Ad, error) {
	return g.catalogUC.GetAd(ctx, adID)
}

// ResolveBuyer returns the profile behind a verified buyer identity
func (g *OrderGW) ResolveBuyer(ctx context.Context, identity string) (*models.Profile, error) {
	return g.identityUC.GetProfile(ctx, identity)
}

// PublishOrderPlaced announces a freshly placed order
func (g *OrderGW) PublishOrderPlaced(ctx context.Context, order *models.Order) error {
	return g.natsGateway.PublishOrderPlaced(ctx, order)
}
