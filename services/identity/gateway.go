package identity

import (
	"context"

	"github.com/vecivendo/marketplace/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/vecivendo/marketplace/services/identity IdentityGW

// IdentityGW represents the identity gateway interface: the OTP transport
// plus the event boundary other systems consume
type IdentityGW interface {
	// SendCode delivers a verification code over WhatsApp. Send failures
	// surface to the caller; they are never retried here.
	SendCode(ctx context.Context, phone, code string) error

	// PublishProfileVerified announces a newly verified profile
	PublishProfileVerified(ctx context.Context, profile *models.Profile) error
}
