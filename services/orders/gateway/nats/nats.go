package gateway_nats

import (
	"context"
	"fmt"

	"github.com/vecivendo/marketplace/internal/pkg/constants"
	"github.com/vecivendo/marketplace/internal/pkg/logger"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	natspkg "github.com/vecivendo/marketplace/internal/pkg/nats"
)

// NATSGateway implements the NATS gateway operations for the orders service
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishOrderPlaced publishes an order placed event
func (g *NATSGateway) PublishOrderPlaced(ctx context.Context, order *models.Order) error {
	event := models.OrderPlacedEvent{
		OrderID:       order.ID.String(),
		OrderNumber:   order.OrderNumber,
		BuyerPhone:    order.BuyerPhone,
		SellerPhone:   order.SellerPhone,
		Total:         order.Total,
		ResidentialID: order.ResidentialID,
	}

	if err := g.client.PublishJSON(constants.SubjectOrderPlaced, event); err != nil {
		logger.Error("Failed to publish order placed event",
			logger.String("order_number", event.OrderNumber),
			logger.Err(err))
		return fmt.Errorf("failed to publish order placed event: %w", err)
	}

	logger.Info("Published order placed event",
		logger.String("order_number", event.OrderNumber))

	return nil
}
