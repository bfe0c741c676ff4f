package gateway

import (
	"context"

	"github.com/vecivendo/marketplace/internal/pkg/models"
	natspkg "github.com/vecivendo/marketplace/internal/pkg/nats"
	"github.com/vecivendo/marketplace/services/identity"
	gateway_http "github.com/vecivendo/marketplace/services/identity/gateway/http"
	gateway_nats "github.com/vecivendo/marketplace/services/identity/gateway/nats"
)

// IdentityGW handles identity gateway operations
type IdentityGW struct {
	whatsappGateway *gateway_http.WhatsAppGateway
	natsGateway     *gateway_nats.NATSGateway
}

// NewIdentityGW creates a new gateway instance with WhatsApp and NATS clients
func NewIdentityGW(cfg models.WhatsAppConfig, natsClient *natspkg.Client) identity.IdentityGW {
	return &IdentityGW{
		whatsappGateway: gateway_http.NewWhatsAppGateway(cfg),
		natsGateway:     gateway_nats.NewNATSGateway(natsClient),
	}
}

// SendCode delivers a verification code over WhatsApp
func (g *IdentityGW) SendCode(ctx context.Context, phone, code string) error {
	return g.whatsappGateway.SendCode(ctx, phone, code)
}

// PublishProfileVerified announces a newly verified profile
func (g *IdentityGW) PublishProfileVerified(ctx context.Context, profile *models.Profile) error {
	return g.natsGateway.PublishProfileVerified(ctx, profile)
}
