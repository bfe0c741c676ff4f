package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	jwtpkg "github.com/vecivendo/marketplace/internal/pkg/jwt"
	"github.com/vecivendo/marketplace/internal/pkg/logger"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/internal/utils"
	"github.com/vecivendo/marketplace/services/identity"
)

const codeLength = 6

// RequestCode issues a new verification challenge for the given phone.
// A fresh request supersedes any unconsumed challenge for the same identity.
func (u *IdentityUC) RequestCode(ctx context.Context, phone string) error {
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return err
	}

	code, err := utils.GenerateNumericCode(codeLength)
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}

	now := time.Now()
	challenge := &models.Challenge{
		Phone:     normalized,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(u.cfg.OTP.TTLSeconds) * time.Second),
	}

	if err := u.identityRepo.CreateChallenge(ctx, challenge); err != nil {
		return fmt.Errorf("failed to create challenge: %w", err)
	}

	if err := u.identityGW.SendCode(ctx, normalized, code); err != nil {
		// A challenge without a delivered code is useless; discard it so
		// the resident can request again immediately.
		if discardErr := u.identityRepo.DiscardChallenge(ctx, normalized); discardErr != nil {
			logger.Warn("Failed to discard undelivered challenge",
				logger.String("identity", normalized),
				logger.Err(discardErr))
		}
		return fmt.Errorf("failed to send verification code: %w", err)
	}

	logger.Info("Verification code issued",
		logger.String("identity", normalized))

	return nil
}

// VerifyCode validates a candidate code against the active challenge and,
// on success, mints the session credential for the derived identity. The
// underlying profile record is created if it does not yet exist.
func (u *IdentityUC) VerifyCode(ctx context.Context, phone, code string) (*models.AuthResponse, error) {
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return nil, err
	}

	challenge, err := u.identityRepo.GetChallenge(ctx, normalized)
	if err != nil {
		return nil, err
	}

	attempts, err := u.identityRepo.IncrementAttempts(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to count verification attempt: %w", err)
	}
	if attempts > int64(u.cfg.OTP.MaxAttempts) {
		if err := u.identityRepo.DiscardChallenge(ctx, normalized); err != nil {
			logger.Warn("Failed to discard exhausted challenge",
				logger.String("identity", normalized),
				logger.Err(err))
		}
		return nil, identity.ErrTooManyAttempts
	}

	if challenge.Code != code {
		// The challenge stays active until expiry so the resident can retry
		return nil, identity.ErrCodeMismatch
	}

	if err := u.identityRepo.ConsumeChallenge(ctx, normalized); err != nil {
		return nil, fmt.Errorf("failed to consume challenge: %w", err)
	}

	profile, err := u.identityRepo.GetProfileByPhone(ctx, normalized)
	if err != nil {
		if !errors.Is(err, identity.ErrProfileNotFound) {
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}
		// First verification for this phone: create the durable record.
		// Upsert semantics keep re-verification from erroring on "exists".
		profile = &models.Profile{
			Phone:    normalized,
			Verified: true,
		}
	} else {
		profile.Phone = normalized
		profile.Verified = true
	}

	if err := u.identityRepo.UpsertProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to persist verified profile: %w", err)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(profile.ID, normalized, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := u.identityGW.PublishProfileVerified(ctx, profile); err != nil {
		// Event delivery is best effort; verification already succeeded
		logger.Warn("Failed to publish profile verified event",
			logger.String("identity", normalized),
			logger.Err(err))
	}

	return &models.AuthResponse{
		Identity:  normalized,
		UserID:    profile.ID.String(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
