package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/services/identity"
	"github.com/vecivendo/marketplace/services/identity/mocks"
)

func strPtr(s string) *string { return &s }

func TestDraft_UpdateAccumulatesLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repository calls expected: edits stay in memory until Commit
	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	draft := NewDraft(mockRepo)

	draft.Update(&models.ProfileUpdate{Name: strPtr("Laura")})
	draft.Update(&models.ProfileUpdate{Street: strPtr("Av. Las Flores"), Block: strPtr("12")})

	p := draft.Profile()
	assert.Equal(t, "Laura", p.Name)
	assert.Equal(t, "Av. Las Flores", p.Street)
	assert.Equal(t, "12", p.Block)
	assert.True(t, draft.Dirty())
}

func TestDraft_CommitWithoutIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	draft := NewDraft(mockRepo)

	draft.Update(&models.ProfileUpdate{Name: strPtr("Laura")})

	err := draft.Commit(context.Background())

	assert.ErrorIs(t, err, identity.ErrNotVerified)
	assert.True(t, draft.Dirty(), "failed commit must not clear pending edits")
}

func TestDraft_CommitCleanIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	draft := NewDraft(mockRepo)

	assert.NoError(t, draft.Commit(context.Background()))
}

func TestDraft_CommitAfterAttachIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	draft := NewDraft(mockRepo)

	draft.Update(&models.ProfileUpdate{Name: strPtr("Laura")})
	draft.AttachIdentity("5215541263382")

	mockRepo.EXPECT().
		UpsertProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, profile *models.Profile) error {
			assert.Equal(t, "5215541263382", profile.Phone)
			assert.Equal(t, "Laura", profile.Name)
			assert.True(t, profile.Verified)
			return nil
		})

	err := draft.Commit(context.Background())

	assert.NoError(t, err)
	assert.False(t, draft.Dirty())

	// A second commit with no new edits touches nothing
	assert.NoError(t, draft.Commit(context.Background()))
}

func TestDraft_FailedCommitStaysDirtyAndRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	draft := NewDraft(mockRepo)

	draft.Update(&models.ProfileUpdate{Name: strPtr("Laura")})
	draft.AttachIdentity("5215541263382")

	gomock.InOrder(
		mockRepo.EXPECT().
			UpsertProfile(gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused")),
		mockRepo.EXPECT().
			UpsertProfile(gomock.Any(), gomock.Any()).
			Return(nil),
	)

	err := draft.Commit(context.Background())
	assert.Error(t, err)
	assert.True(t, draft.Dirty())

	// Retry targets the same single record
	err = draft.Commit(context.Background())
	assert.NoError(t, err)
	assert.False(t, draft.Dirty())
}

func TestDraft_LoadLocalSeedsIdentityFromVerifiedProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	draft := NewDraft(mockRepo)

	draft.LoadLocal(&models.Profile{
		Phone:    "5215541263382",
		Name:     "Laura",
		Verified: true,
	})
	draft.Update(&models.ProfileUpdate{Street: strPtr("Av. Las Flores")})

	mockRepo.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, draft.Commit(context.Background()))
}
