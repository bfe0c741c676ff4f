package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/internal/utils"
	"github.com/vecivendo/marketplace/services/identity"
	"github.com/vecivendo/marketplace/services/identity/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "vecivendo-test",
		},
		OTP: models.OTPConfig{
			TTLSeconds:  300,
			MaxAttempts: 5,
		},
	}
}

func TestRequestCode_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	mockGW := mocks.NewMockIdentityGW(ctrl)

	// Test data: 12 digits with country code gets the mobile indicator inserted
	phone := "52 5541263382"
	normalized := "5215541263382"

	var sentCode string

	// Expectations
	mockRepo.EXPECT().
		CreateChallenge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, challenge *models.Challenge) error {
			assert.Equal(t, normalized, challenge.Phone)
			assert.Len(t, challenge.Code, 6)
			assert.True(t, challenge.ExpiresAt.After(challenge.CreatedAt))
			sentCode = challenge.Code
			return nil
		})
	mockGW.EXPECT().
		SendCode(gomock.Any(), normalized, gomock.Any()).
		DoAndReturn(func(ctx context.Context, phone, code string) error {
			assert.Equal(t, sentCode, code)
			return nil
		})

	uc := NewIdentityUC(mockRepo, mockGW, testConfig())

	// Act
	err := uc.RequestCode(context.Background(), phone)

	// Assert
	assert.NoError(t, err)
}

func TestRequestCode_InvalidPhone(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	mockGW := mocks.NewMockIdentityGW(ctrl)

	uc := NewIdentityUC(mockRepo, mockGW, testConfig())

	// Act: too few digits to be a phone number, nothing should be stored or sent
	err := uc.RequestCode(context.Background(), "12345")

	// Assert
	assert.ErrorIs(t, err, utils.ErrInvalidPhone)
}

func TestRequestCode_SendFailureDiscardsChallenge(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	mockGW := mocks.NewMockIdentityGW(ctrl)

	normalized := "5215541263382"

	mockRepo.EXPECT().CreateChallenge(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().
		SendCode(gomock.Any(), normalized, gomock.Any()).
		Return(errors.New("provider timeout"))
	mockRepo.EXPECT().DiscardChallenge(gomock.Any(), normalized).Return(nil)

	uc := NewIdentityUC(mockRepo, mockGW, testConfig())

	// Act
	err := uc.RequestCode(context.Background(), "525541263382")

	// Assert: the send failure surfaces, the undelivered challenge is gone
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send verification code")
}

func TestVerifyCode_Success_NewProfile(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	mockGW := mocks.NewMockIdentityGW(ctrl)

	normalized := "5215541263382"
	code := "482913"
	now := time.Now()
	challenge := &models.Challenge{
		Phone:     normalized,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
	}

	mockRepo.EXPECT().GetChallenge(gomock.Any(), normalized).Return(challenge, nil)
	mockRepo.EXPECT().IncrementAttempts(gomock.Any(), normalized).Return(int64(1), nil)
	mockRepo.EXPECT().ConsumeChallenge(gomock.Any(), normalized).Return(nil)
	mockRepo.EXPECT().
		GetProfileByPhone(gomock.Any(), normalized).
		Return(nil, identity.ErrProfileNotFound)
	mockRepo.EXPECT().
		UpsertProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, profile *models.Profile) error {
			assert.Equal(t, normalized, profile.Phone)
			assert.True(t, profile.Verified)
			profile.ID = uuid.New()
			return nil
		})
	mockGW.EXPECT().PublishProfileVerified(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewIdentityUC(mockRepo, mockGW, testConfig())

	// Act
	resp, err := uc.VerifyCode(context.Background(), "52 5541263382", code)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, normalized, resp.Identity)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.UserID)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
}

func TestVerifyCode_Success_ExistingProfile(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	mockGW := mocks.NewMockIdentityGW(ctrl)

	normalized := "5215541263382"
	code := "482913"
	existing := &models.Profile{
		ID:    uuid.New(),
		Phone: "5541263382", // stored in a historical format
		Name:  "Laura",
	}
	challenge := &models.Challenge{
		Phone:     normalized,
		Code:      code,
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	mockRepo.EXPECT().GetChallenge(gomock.Any(), normalized).Return(challenge, nil)
	mockRepo.EXPECT().IncrementAttempts(gomock.Any(), normalized).Return(int64(1), nil)
	mockRepo.EXPECT().ConsumeChallenge(gomock.Any(), normalized).Return(nil)
	mockRepo.EXPECT().GetProfileByPhone(gomock.Any(), normalized).Return(existing, nil)
	mockRepo.EXPECT().
		UpsertProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, profile *models.Profile) error {
			// Re-verification normalizes the stored phone in place
			assert.Equal(t, normalized, profile.Phone)
			assert.True(t, profile.Verified)
			assert.Equal(t, "Laura", profile.Name)
			return nil
		})
	mockGW.EXPECT().PublishProfileVerified(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewIdentityUC(mockRepo, mockGW, testConfig())

	// Act
	resp, err := uc.VerifyCode(context.Background(), normalized, code)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, existing.ID.String(), resp.UserID)
}

func TestVerifyCode_ProfileReadFailure(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	mockGW := mocks.NewMockIdentityGW(ctrl)

	normalized := "5215541263382"
	code := "123456"
	challenge := &models.Challenge{
		Phone:     normalized,
		Code:      code,
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	mockRepo.EXPECT().GetChallenge(gomock.Any(), normalized).Return(challenge, nil)
	mockRepo.EXPECT().IncrementAttempts(gomock.Any(), normalized).Return(int64(1), nil)
	mockRepo.EXPECT().ConsumeChallenge(gomock.Any(), normalized).Return(nil)
	// A failed read must not be mistaken for a missing profile: no blank
	// upsert may follow it
	mockRepo.EXPECT().
		GetProfileByPhone(gomock.Any(), normalized).
		Return(nil, errors.New("i/o timeout"))

	uc := NewIdentityUC(mockRepo, mockGW, testConfig())

	// Act
	resp, err := uc.VerifyCode(context.Background(), normalized, code)

	// Assert
	assert.Nil(t, resp)
	assert.Error(t, err)
}

func TestVerifyCode_NoActiveChallenge(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	mockGW := mocks.NewMockIdentityGW(ctrl)

	normalized := "5215541263382"

	mockRepo.EXPECT().
		GetChallenge(gomock.Any(), normalized).
		Return(nil, identity.ErrNoActiveChallenge)

	uc := NewIdentityUC(mockRepo, mockGW, testConfig())

	// Act
	resp, err := uc.VerifyCode(context.Background(), normalized, "000000")

	// Assert
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, identity.ErrNoActiveChallenge)
}

func TestVerifyCode_Mismatch_ChallengeStaysActive(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	mockGW := mocks.NewMockIdentityGW(ctrl)

	normalized := "5215541263382"
	challenge := &models.Challenge{
		Phone:     normalized,
		Code:      "482913",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	// The challenge is not consumed or discarded on a plain mismatch
	mockRepo.EXPECT().GetChallenge(gomock.Any(), normalized).Return(challenge, nil)
	mockRepo.EXPECT().IncrementAttempts(gomock.Any(), normalized).Return(int64(2), nil)

	uc := NewIdentityUC(mockRepo, mockGW, testConfig())

	// Act
	resp, err := uc.VerifyCode(context.Background(), normalized, "111111")

	// Assert
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, identity.ErrCodeMismatch)
}

func TestVerifyCode_TooManyAttempts(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	mockGW := mocks.NewMockIdentityGW(ctrl)

	normalized := "5215541263382"
	challenge := &models.Challenge{
		Phone:     normalized,
		Code:      "482913",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	mockRepo.EXPECT().GetChallenge(gomock.Any(), normalized).Return(challenge, nil)
	mockRepo.EXPECT().IncrementAttempts(gomock.Any(), normalized).Return(int64(6), nil)
	mockRepo.EXPECT().DiscardChallenge(gomock.Any(), normalized).Return(nil)

	uc := NewIdentityUC(mockRepo, mockGW, testConfig())

	// Act: even the correct code is rejected once the budget is spent
	resp, err := uc.VerifyCode(context.Background(), normalized, "482913")

	// Assert
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, identity.ErrTooManyAttempts)
}

func TestVerifyCode_PublishFailureDoesNotFailVerification(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	mockGW := mocks.NewMockIdentityGW(ctrl)

	normalized := "5215541263382"
	code := "482913"
	challenge := &models.Challenge{
		Phone:     normalized,
		Code:      code,
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	mockRepo.EXPECT().GetChallenge(gomock.Any(), normalized).Return(challenge, nil)
	mockRepo.EXPECT().IncrementAttempts(gomock.Any(), normalized).Return(int64(1), nil)
	mockRepo.EXPECT().ConsumeChallenge(gomock.Any(), normalized).Return(nil)
	mockRepo.EXPECT().
		GetProfileByPhone(gomock.Any(), normalized).
		Return(nil, identity.ErrProfileNotFound)
	mockRepo.EXPECT().
		UpsertProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, profile *models.Profile) error {
			profile.ID = uuid.New()
			return nil
		})
	mockGW.EXPECT().
		PublishProfileVerified(gomock.Any(), gomock.Any()).
		Return(errors.New("nats unavailable"))

	uc := NewIdentityUC(mockRepo, mockGW, testConfig())

	// Act
	resp, err := uc.VerifyCode(context.Background(), normalized, code)

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}
