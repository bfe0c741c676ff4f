package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/services/identity"
	"github.com/vecivendo/marketplace/services/identity/mocks"
)

func TestUpdateProfile_MergesIntoStoredProfile(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	mockGW := mocks.NewMockIdentityGW(ctrl)

	normalized := "5215541263382"
	existing := &models.Profile{
		ID:       uuid.New(),
		Phone:    normalized,
		Name:     "Laura",
		Street:   "Av. Las Flores",
		Verified: true,
	}

	mockRepo.EXPECT().GetProfileByPhone(gomock.Any(), normalized).Return(existing, nil)
	mockRepo.EXPECT().
		UpsertProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, profile *models.Profile) error {
			assert.Equal(t, "Laura", profile.Name)
			assert.Equal(t, "Calle Los Pinos", profile.Street)
			return nil
		})

	uc := NewIdentityUC(mockRepo, mockGW, testConfig())
	street := "Calle Los Pinos"

	// Act
	profile, err := uc.UpdateProfile(context.Background(), normalized, &models.ProfileUpdate{Street: &street})

	// Assert: untouched fields survive the partial update
	require.NoError(t, err)
	assert.Equal(t, "Laura", profile.Name)
	assert.Equal(t, "Calle Los Pinos", profile.Street)
}

func TestUpdateProfile_AbsentProfileStartsBlank(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	mockGW := mocks.NewMockIdentityGW(ctrl)

	normalized := "5215541263382"

	mockRepo.EXPECT().
		GetProfileByPhone(gomock.Any(), normalized).
		Return(nil, identity.ErrProfileNotFound)
	mockRepo.EXPECT().
		UpsertProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, profile *models.Profile) error {
			assert.Equal(t, normalized, profile.Phone)
			assert.True(t, profile.Verified)
			return nil
		})

	uc := NewIdentityUC(mockRepo, mockGW, testConfig())
	name := "Carlos"

	// Act
	profile, err := uc.UpdateProfile(context.Background(), normalized, &models.ProfileUpdate{Name: &name})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Carlos", profile.Name)
}

func TestUpdateProfile_ReadFailureDoesNotOverwrite(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	mockGW := mocks.NewMockIdentityGW(ctrl)

	normalized := "5215541263382"

	// A transient read failure must surface, never fall through to an
	// upsert that would blank the stored row
	mockRepo.EXPECT().
		GetProfileByPhone(gomock.Any(), normalized).
		Return(nil, errors.New("i/o timeout"))

	uc := NewIdentityUC(mockRepo, mockGW, testConfig())
	street := "Calle Los Pinos"

	// Act
	profile, err := uc.UpdateProfile(context.Background(), normalized, &models.ProfileUpdate{Street: &street})

	// Assert: error surfaces and no write was attempted
	assert.Error(t, err)
	assert.Nil(t, profile)
}
