package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/internal/utils"
	"github.com/vecivendo/marketplace/services/identity"
)

// GetProfileByPhone looks a profile up by the significant suffix of the
// phone number, so historical rows stored with or without a country prefix
// still resolve to the same resident.
func (r *IdentityRepo) GetProfileByPhone(ctx context.Context, phone string) (*models.Profile, error) {
	suffix := utils.PhoneSuffix(phone)
	if suffix == "" {
		return nil, utils.ErrInvalidPhone
	}

	var profile models.Profile
	query := `
		SELECT id, phone, name, street, block, lot, house, directions,
		       latitude, longitude, geohash, residential_id, verified,
		       created_at, updated_at
		FROM profiles
		WHERE right(phone, 10) = $1`

	err := r.db.GetContext(ctx, &profile, query, suffix)
	if err == sql.ErrNoRows {
		return nil, identity.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

// UpsertProfile persists a profile keyed by phone identity. An existing row
// matching the phone suffix is updated in place (and its stored phone
// normalized); otherwise a new row is inserted. Repeated commits of the same
// state are idempotent.
func (r *IdentityRepo) UpsertProfile(ctx context.Context, profile *models.Profile) error {
	suffix := utils.PhoneSuffix(profile.Phone)
	if suffix == "" {
		return utils.ErrInvalidPhone
	}

	now := time.Now()
	profile.UpdatedAt = now

	updateQuery := `
		UPDATE profiles
		SET phone = $1, name = $2, street = $3, block = $4, lot = $5,
		    house = $6, directions = $7, latitude = $8, longitude = $9,
		    geohash = $10, residential_id = $11, verified = $12, updated_at = $13
		WHERE right(phone, 10) = $14
		RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, updateQuery,
		profile.Phone, profile.Name, profile.Street, profile.Block, profile.Lot,
		profile.House, profile.Directions, profile.Latitude, profile.Longitude,
		profile.Geohash, profile.ResidentialID, profile.Verified, profile.UpdatedAt,
		suffix,
	).Scan(&profile.ID, &profile.CreatedAt)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	profile.CreatedAt = now

	insertQuery := `
		INSERT INTO profiles (id, phone, name, street, block, lot, house,
		                      directions, latitude, longitude, geohash,
		                      residential_id, verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err = r.db.ExecContext(ctx, insertQuery,
		profile.ID, profile.Phone, profile.Name, profile.Street, profile.Block,
		profile.Lot, profile.House, profile.Directions, profile.Latitude,
		profile.Longitude, profile.Geohash, profile.ResidentialID,
		profile.Verified, profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert profile: %w", err)
	}

	return nil
}
