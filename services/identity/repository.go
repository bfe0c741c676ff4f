package identity

import (
	"context"

	"github.com/vecivendo/marketplace/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/vecivendo/marketplace/services/identity IdentityRepo

// IdentityRepo represents the identity repository interface.
// Challenges live in Redis with a TTL; profiles live in Postgres.
type IdentityRepo interface {
	// challenges
	CreateChallenge(ctx context.Context, challenge *models.Challenge) error
	GetChallenge(ctx context.Context, identity string) (*models.Challenge, error)
	ConsumeChallenge(ctx context.Context, identity string) error
	IncrementAttempts(ctx context.Context, identity string) (int64, error)
	DiscardChallenge(ctx context.Context, identity string) error

	// profiles
	GetProfileByPhone(ctx context.Context, phone string) (*models.Profile, error)
	UpsertProfile(ctx context.Context, profile *models.Profile) error
}
