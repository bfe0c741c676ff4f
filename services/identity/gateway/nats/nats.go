package gateway_nats

import (
	"context"
	"fmt"

	"github.com/vecivendo/marketplace/internal/pkg/constants"
	"github.com/vecivendo/marketplace/internal/pkg/logger"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	natspkg "github.com/vecivendo/marketplace/internal/pkg/nats"
)

// NATSGateway implements the NATS gateway operations for the identity service
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishProfileVerified publishes a profile verified event
func (g *NATSGateway) PublishProfileVerified(ctx context.Context, profile *models.Profile) error {
	event := models.ProfileVerifiedEvent{
		UserID:        profile.ID.String(),
		Identity:      profile.Phone,
		ResidentialID: profile.ResidentialID,
	}

	if err := g.client.PublishJSON(constants.SubjectProfileVerified, event); err != nil {
		logger.Error("Failed to publish profile verified event",
			logger.String("user_id", event.UserID),
			logger.Err(err))
		return fmt.Errorf("failed to publish profile verified event: %w", err)
	}

	logger.Info("Published profile verified event",
		logger.String("user_id", event.UserID))

	return nil
}
