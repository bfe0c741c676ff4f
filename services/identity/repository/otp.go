package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/vecivendo/marketplace/internal/pkg/constants"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/services/identity"
)

// CreateChallenge stores a verification challenge with a TTL. A fresh
// challenge supersedes any outstanding one for the same identity, and the
// attempt counter is reset alongside it.
func (r *IdentityRepo) CreateChallenge(ctx context.Context, challenge *models.Challenge) error {
	data, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	ttl := time.Until(challenge.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("challenge already expired")
	}

	key := fmt.Sprintf(constants.KeyUserOTP, challenge.Phone)
	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store challenge: %w", err)
	}

	attemptsKey := fmt.Sprintf(constants.KeyUserOTPAttempts, challenge.Phone)
	if err := r.redisClient.Delete(ctx, attemptsKey); err != nil {
		return fmt.Errorf("failed to reset attempt counter: %w", err)
	}

	return nil
}

// GetChallenge retrieves the outstanding challenge for an identity.
// Returns ErrNoActiveChallenge when none exists or the TTL has lapsed.
func (r *IdentityRepo) GetChallenge(ctx context.Context, ident string) (*models.Challenge, error) {
	key := fmt.Sprintf(constants.KeyUserOTP, ident)
	data, err := r.redisClient.Get(ctx, key)
	if err == redis.Nil {
		return nil, identity.ErrNoActiveChallenge
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	var challenge models.Challenge
	if err := json.Unmarshal([]byte(data), &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
	}

	return &challenge, nil
}

// ConsumeChallenge removes a challenge after a successful verification so
// the code cannot be replayed.
func (r *IdentityRepo) ConsumeChallenge(ctx context.Context, ident string) error {
	key := fmt.Sprintf(constants.KeyUserOTP, ident)
	attemptsKey := fmt.Sprintf(constants.KeyUserOTPAttempts, ident)
	if err := r.redisClient.Delete(ctx, key, attemptsKey); err != nil {
		return fmt.Errorf("failed to consume challenge: %w", err)
	}
	return nil
}

// IncrementAttempts bumps the verification attempt counter for an identity
// and returns the new count. The counter expires with the challenge window
// so a stale counter never blocks a fresh challenge.
func (r *IdentityRepo) IncrementAttempts(ctx context.Context, ident string) (int64, error) {
	key := fmt.Sprintf(constants.KeyUserOTPAttempts, ident)
	count, err := r.redisClient.Incr(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to increment attempts: %w", err)
	}
	if count == 1 {
		ttl := time.Duration(r.cfg.OTP.TTLSeconds) * time.Second
		if err := r.redisClient.Client.Expire(ctx, key, ttl).Err(); err != nil {
			return count, fmt.Errorf("failed to set attempt counter expiry: %w", err)
		}
	}
	return count, nil
}

// DiscardChallenge drops a challenge and its attempt counter without a
// successful verification (send failure or attempt limit reached).
func (r *IdentityRepo) DiscardChallenge(ctx context.Context, ident string) error {
	key := fmt.Sprintf(constants.KeyUserOTP, ident)
	attemptsKey := fmt.Sprintf(constants.KeyUserOTPAttempts, ident)
	if err := r.redisClient.Delete(ctx, key, attemptsKey); err != nil {
		return fmt.Errorf("failed to discard challenge: %w", err)
	}
	return nil
}
