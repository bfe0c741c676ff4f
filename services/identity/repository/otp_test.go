package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecivendo/marketplace/internal/pkg/constants"
	"github.com/vecivendo/marketplace/internal/pkg/database"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/services/identity"
)

// setupMiniredis creates a new miniredis server and returns a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, client
}

func setupChallengeRepoTest(t *testing.T) (*IdentityRepo, *miniredis.Miniredis) {
	mr, client := setupMiniredis(t)

	redisClient := &database.RedisClient{
		Client: client,
	}

	repo := &IdentityRepo{
		cfg: &models.Config{
			OTP: models.OTPConfig{
				TTLSeconds:  300,
				MaxAttempts: 5,
			},
		},
		redisClient: redisClient,
	}

	return repo, mr
}

func newTestChallenge(phone string) *models.Challenge {
	now := time.Now()
	return &models.Challenge{
		Phone:     phone,
		Code:      "482913",
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
	}
}

func TestCreateChallenge(t *testing.T) {
	// Setup
	repo, mr := setupChallengeRepoTest(t)
	defer mr.Close()

	challenge := newTestChallenge("5215541263382")

	// Execute
	err := repo.CreateChallenge(context.Background(), challenge)

	// Assert
	assert.NoError(t, err)

	key := fmt.Sprintf(constants.KeyUserOTP, challenge.Phone)
	val, err := mr.Get(key)
	assert.NoError(t, err)

	var stored models.Challenge
	require.NoError(t, json.Unmarshal([]byte(val), &stored))
	assert.Equal(t, challenge.Code, stored.Code)

	// TTL is set from the expiry
	ttl := mr.TTL(key)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, 5*time.Minute)
}

func TestCreateChallenge_SupersedesAndResetsAttempts(t *testing.T) {
	// Setup
	repo, mr := setupChallengeRepoTest(t)
	defer mr.Close()

	phone := "5215541263382"
	first := newTestChallenge(phone)
	require.NoError(t, repo.CreateChallenge(context.Background(), first))

	// Burn a couple of attempts against the first challenge
	_, err := repo.IncrementAttempts(context.Background(), phone)
	require.NoError(t, err)
	_, err = repo.IncrementAttempts(context.Background(), phone)
	require.NoError(t, err)

	// A fresh challenge replaces the old one and zeroes the counter
	second := newTestChallenge(phone)
	second.Code = "771204"
	require.NoError(t, repo.CreateChallenge(context.Background(), second))

	got, err := repo.GetChallenge(context.Background(), phone)
	assert.NoError(t, err)
	assert.Equal(t, "771204", got.Code)

	count, err := repo.IncrementAttempts(context.Background(), phone)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCreateChallenge_AlreadyExpired(t *testing.T) {
	repo, mr := setupChallengeRepoTest(t)
	defer mr.Close()

	challenge := newTestChallenge("5215541263382")
	challenge.ExpiresAt = time.Now().Add(-time.Minute)

	err := repo.CreateChallenge(context.Background(), challenge)
	assert.Error(t, err)
}

func TestGetChallenge_NotFound(t *testing.T) {
	// Setup
	repo, mr := setupChallengeRepoTest(t)
	defer mr.Close()

	// Execute
	_, err := repo.GetChallenge(context.Background(), "5215541263382")

	// Assert
	assert.ErrorIs(t, err, identity.ErrNoActiveChallenge)
}

func TestGetChallenge_Expired(t *testing.T) {
	// Setup
	repo, mr := setupChallengeRepoTest(t)
	defer mr.Close()

	phone := "5215541263382"
	require.NoError(t, repo.CreateChallenge(context.Background(), newTestChallenge(phone)))

	// Let the TTL lapse
	mr.FastForward(6 * time.Minute)

	// Execute
	_, err := repo.GetChallenge(context.Background(), phone)

	// Assert
	assert.ErrorIs(t, err, identity.ErrNoActiveChallenge)
}

func TestConsumeChallenge_RemovesCodeAndCounter(t *testing.T) {
	// Setup
	repo, mr := setupChallengeRepoTest(t)
	defer mr.Close()

	phone := "5215541263382"
	require.NoError(t, repo.CreateChallenge(context.Background(), newTestChallenge(phone)))
	_, err := repo.IncrementAttempts(context.Background(), phone)
	require.NoError(t, err)

	// Execute
	err = repo.ConsumeChallenge(context.Background(), phone)

	// Assert: a consumed code cannot be replayed
	assert.NoError(t, err)
	_, err = repo.GetChallenge(context.Background(), phone)
	assert.ErrorIs(t, err, identity.ErrNoActiveChallenge)

	assert.False(t, mr.Exists(fmt.Sprintf(constants.KeyUserOTPAttempts, phone)))
}

func TestIncrementAttempts_Counts(t *testing.T) {
	// Setup
	repo, mr := setupChallengeRepoTest(t)
	defer mr.Close()

	phone := "5215541263382"

	for want := int64(1); want <= 3; want++ {
		count, err := repo.IncrementAttempts(context.Background(), phone)
		assert.NoError(t, err)
		assert.Equal(t, want, count)
	}

	// The counter carries a TTL so it cannot outlive the challenge window
	ttl := mr.TTL(fmt.Sprintf(constants.KeyUserOTPAttempts, phone))
	assert.Greater(t, ttl, time.Duration(0))
}

func TestDiscardChallenge(t *testing.T) {
	// Setup
	repo, mr := setupChallengeRepoTest(t)
	defer mr.Close()

	phone := "5215541263382"
	require.NoError(t, repo.CreateChallenge(context.Background(), newTestChallenge(phone)))

	// Execute
	err := repo.DiscardChallenge(context.Background(), phone)

	// Assert
	assert.NoError(t, err)
	_, err = repo.GetChallenge(context.Background(), phone)
	assert.ErrorIs(t, err, identity.ErrNoActiveChallenge)
}
