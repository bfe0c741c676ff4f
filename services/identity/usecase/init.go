package usecase

import (
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/services/identity"
)

type IdentityUC struct {
	identityRepo identity.IdentityRepo
	identityGW   identity.IdentityGW
	cfg          *models.Config
}

// NewIdentityUC creates a new identity usecase instance
func NewIdentityUC(
	identityRepo identity.IdentityRepo,
	identityGW identity.IdentityGW,
	cfg *models.Config,
) *IdentityUC {
	return &IdentityUC{
		identityRepo: identityRepo,
		identityGW:   identityGW,
		cfg:          cfg,
	}
}
