package usecase

import (
	"context"
	"fmt"

	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/services/identity"
)

// Draft is the local-first profile editing buffer for one client session.
// Fields accumulate in memory across edits and reach durable storage only
// on an explicit Commit, and only after a verified identity is attached.
// Single-owner: a Draft must not be shared between goroutines.
type Draft struct {
	profile  models.Profile
	identity string
	dirty    bool
	repo     identity.IdentityRepo
}

// NewDraft creates an empty draft backed by the given repository
func NewDraft(repo identity.IdentityRepo) *Draft {
	return &Draft{repo: repo}
}

// LoadLocal seeds the draft from a previously cached profile. Absence is
// not an error; the draft simply starts from defaults.
func (d *Draft) LoadLocal(cached *models.Profile) {
	if cached == nil {
		return
	}
	d.profile = *cached
	if cached.Verified && cached.Phone != "" {
		d.identity = cached.Phone
	}
}

// Profile returns a copy of the current draft state
func (d *Draft) Profile() models.Profile {
	return d.profile
}

// Dirty reports whether the draft has uncommitted edits
func (d *Draft) Dirty() bool {
	return d.dirty
}

// Update merges partial fields into the draft and marks it dirty.
// It performs no validation beyond field types; the merge is pure.
func (d *Draft) Update(update *models.ProfileUpdate) {
	if update == nil {
		return
	}
	applyProfileUpdate(&d.profile, update)
	d.dirty = true
}

// AttachIdentity binds the verified identity to the draft. Required before
// Commit can target durable storage.
func (d *Draft) AttachIdentity(identityPhone string) {
	d.identity = identityPhone
	d.profile.Phone = identityPhone
	d.profile.Verified = true
	d.dirty = true
}

// Commit persists the draft if it is dirty. The write is an upsert keyed
// by identity, so a retry after failure writes the same single record.
// The dirty flag clears only on success.
func (d *Draft) Commit(ctx context.Context) error {
	if !d.dirty {
		return nil
	}
	if d.identity == "" {
		return identity.ErrNotVerified
	}

	if err := d.repo.UpsertProfile(ctx, &d.profile); err != nil {
		return fmt.Errorf("failed to commit profile: %w", err)
	}

	d.dirty = false
	return nil
}
