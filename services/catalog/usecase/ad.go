package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/internal/utils"
	"github.com/vecivendo/marketplace/services/catalog"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
	othersLimit      = 6
)

// ListAds returns ads matching the filter, newest first
func (u *CatalogUC) ListAds(ctx context.Context, filter *models.AdFilter) ([]*models.Ad, error) {
	if filter == nil {
		filter = &models.AdFilter{}
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	ads, err := u.catalogRepo.ListAds(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list ads: %w", err)
	}

	for _, ad := range ads {
		if err := ad.DecodeVariants(); err != nil {
			return nil, fmt.Errorf("failed to decode variants for ad %s: %w", ad.ID, err)
		}
	}

	return ads, nil
}

// GetAd returns a single ad with its variants decoded
func (u *CatalogUC) GetAd(ctx context.Context, id uuid.UUID) (*models.Ad, error) {
	ad, err := u.catalogRepo.GetAd(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ad.DecodeVariants(); err != nil {
		return nil, fmt.Errorf("failed to decode variants for ad %s: %w", ad.ID, err)
	}

	return ad, nil
}

// CreateAd publishes an ad under the verified seller identity. The seller
// phone comes from the session, never from the payload.
func (u *CatalogUC) CreateAd(ctx context.Context, sellerIdentity string, ad *models.Ad) error {
	normalized, err := utils.NormalizePhone(sellerIdentity)
	if err != nil {
		return err
	}

	ad.ID = uuid.New()
	ad.SellerPhone = normalized
	ad.Slug = utils.Slugify(ad.Title)
	if ad.Plan == "" {
		ad.Plan = models.PlanFree
	}
	ad.Active = true

	// Tiers travel as decoded variants and persist as encoded blobs
	if len(ad.Variants) > 0 {
		blobs := make([]string, 0, len(ad.Variants))
		for _, v := range ad.Variants {
			blob, err := models.EncodeVariant(v)
			if err != nil {
				return fmt.Errorf("failed to encode variant: %w", err)
			}
			blobs = append(blobs, blob)
		}
		ad.RawVariants = blobs
	}

	if err := u.catalogRepo.CreateAd(ctx, ad); err != nil {
		return fmt.Errorf("failed to create ad: %w", err)
	}

	return nil
}

// SetAdActive toggles an ad's visibility. Only the ad's own seller may
// pause or republish it; ownership is matched on the phone suffix so a
// session minted from either phone spelling passes.
func (u *CatalogUC) SetAdActive(ctx context.Context, sellerIdentity string, id uuid.UUID, active bool) error {
	ad, err := u.catalogRepo.GetAd(ctx, id)
	if err != nil {
		return err
	}

	suffix := utils.PhoneSuffix(sellerIdentity)
	if suffix == "" || suffix != utils.PhoneSuffix(ad.SellerPhone) {
		return catalog.ErrNotAdOwner
	}

	return u.catalogRepo.SetAdActive(ctx, id, active)
}

// OtherAdsBySeller returns the source ad's seller's other active ads,
// newest-updated first. The source ad is always excluded and the result
// is capped; an empty list is a valid answer.
func (u *CatalogUC) OtherAdsBySeller(ctx context.Context, adID uuid.UUID) ([]*models.Ad, error) {
	source, err := u.catalogRepo.GetAd(ctx, adID)
	if err != nil {
		return nil, err
	}

	suffix := utils.PhoneSuffix(source.SellerPhone)
	if suffix == "" {
		return []*models.Ad{}, nil
	}

	ads, err := u.catalogRepo.ListActiveBySellerSuffix(ctx, suffix, source.ID, othersLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list seller ads: %w", err)
	}

	for _, ad := range ads {
		if err := ad.DecodeVariants(); err != nil {
			return nil, fmt.Errorf("failed to decode variants for ad %s: %w", ad.ID, err)
		}
	}

	return ads, nil
}
