package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vecivendo/marketplace/internal/pkg/models"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key-for-jwt-signing",
		Expiration: 60, // 60 minutes
		Issuer:     "vecivendo-test",
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name     string
		userID   uuid.UUID
		identity string
	}{
		{
			name:     "Valid token generation",
			userID:   uuid.New(),
			identity: "5215541263382",
		},
		{
			name:     "Empty identity still generates a token",
			userID:   uuid.New(),
			identity: "",
		},
		{
			name:     "Zero UUID still generates a token",
			userID:   uuid.UUID{},
			identity: "5215541263382",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := getTestConfig()
			tokenString, expiresAt, err := GenerateToken(tt.userID, tt.identity, cfg)

			assert.NoError(t, err)
			assert.NotEmpty(t, tokenString)
			assert.Greater(t, expiresAt, time.Now().Unix())

			// Verify token structure and claims round-trip
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				return []byte(cfg.Secret), nil
			})
			require.NoError(t, err)
			claims, ok := token.Claims.(jwt.MapClaims)
			require.True(t, ok)
			assert.Equal(t, tt.userID.String(), claims["user_id"])
			assert.Equal(t, tt.identity, claims["identity"])
			assert.Equal(t, cfg.Issuer, claims["iss"])
		})
	}
}

func TestValidateToken(t *testing.T) {
	cfg := getTestConfig()
	userID := uuid.New()

	tokenString, _, err := GenerateToken(userID, "5215541263382", cfg)
	require.NoError(t, err)

	t.Run("Valid token", func(t *testing.T) {
		claims, err := ValidateToken(tokenString, cfg.Secret)
		assert.NoError(t, err)
		assert.Equal(t, userID.String(), claims["user_id"])
		assert.Equal(t, "5215541263382", claims["identity"])
	})

	t.Run("Wrong secret", func(t *testing.T) {
		claims, err := ValidateToken(tokenString, "some-other-secret")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Malformed token", func(t *testing.T) {
		claims, err := ValidateToken("not.a.token", cfg.Secret)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Expired token", func(t *testing.T) {
		expiredCfg := cfg
		expiredCfg.Expiration = -1
		expired, _, err := GenerateToken(userID, "5215541263382", expiredCfg)
		require.NoError(t, err)

		claims, err := ValidateToken(expired, cfg.Secret)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}
