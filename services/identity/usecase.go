package identity

import (
	"context"

	"github.com/vecivendo/marketplace/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/vecivendo/marketplace/services/identity IdentityUC

// IdentityUC represents the identity usecase interface
type IdentityUC interface {
	// phone verification
	RequestCode(ctx context.Context, phone string) error
	VerifyCode(ctx context.Context, phone, code string) (*models.AuthResponse, error)

	// profile
	GetProfile(ctx context.Context, identity string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, identity string, update *models.ProfileUpdate) (*models.Profile, error)
}
