package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/internal/utils"
	"github.com/vecivendo/marketplace/services/identity"
)

// GetProfile returns the profile bound to a verified identity
func (u *IdentityUC) GetProfile(ctx context.Context, identity string) (*models.Profile, error) {
	normalized, err := utils.NormalizePhone(identity)
	if err != nil {
		return nil, err
	}

	return u.identityRepo.GetProfileByPhone(ctx, normalized)
}

// UpdateProfile merges partial fields into the stored profile and persists
// the result. The write is an upsert keyed by identity, so repeating it
// with the same data is observably a no-op.
func (u *IdentityUC) UpdateProfile(ctx context.Context, ident string, update *models.ProfileUpdate) (*models.Profile, error) {
	normalized, err := utils.NormalizePhone(ident)
	if err != nil {
		return nil, err
	}

	profile, err := u.identityRepo.GetProfileByPhone(ctx, normalized)
	if err != nil {
		// Only a genuinely absent profile starts from a blank record; a
		// failed read must not let the upsert wipe the stored columns
		if !errors.Is(err, identity.ErrProfileNotFound) {
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}
		profile = &models.Profile{
			Phone:    normalized,
			Verified: true,
		}
	}

	applyProfileUpdate(profile, update)

	if err := u.identityRepo.UpsertProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to persist profile: %w", err)
	}

	return profile, nil
}

// applyProfileUpdate merges non-nil fields into the profile and refreshes
// the derived geohash when the geo-pin changes
func applyProfileUpdate(profile *models.Profile, update *models.ProfileUpdate) {
	if update == nil {
		return
	}
	if update.Name != nil {
		profile.Name = *update.Name
	}
	if update.Street != nil {
		profile.Street = *update.Street
	}
	if update.Block != nil {
		profile.Block = *update.Block
	}
	if update.Lot != nil {
		profile.Lot = *update.Lot
	}
	if update.House != nil {
		profile.House = *update.House
	}
	if update.Directions != nil {
		profile.Directions = *update.Directions
	}
	if update.ResidentialID != nil {
		profile.ResidentialID = *update.ResidentialID
	}
	if update.Latitude != nil {
		profile.Latitude = update.Latitude
	}
	if update.Longitude != nil {
		profile.Longitude = update.Longitude
	}
	if profile.Latitude != nil && profile.Longitude != nil {
		profile.Geohash = utils.EncodeLocation(*profile.Latitude, *profile.Longitude)
	}
}
