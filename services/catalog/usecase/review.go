package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/services/catalog"
)

const reviewListLimit = 50

// ListReviews returns an ad's reviews, newest first
func (u *CatalogUC) ListReviews(ctx context.Context, adID uuid.UUID, limit, offset int) ([]*models.Review, error) {
	if limit <= 0 || limit > reviewListLimit {
		limit = reviewListLimit
	}
	if offset < 0 {
		offset = 0
	}

	reviews, err := u.catalogRepo.ListReviews(ctx, adID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}

// CreateReview appends a rating for the advertiser behind an ad. The
// advertiser phone is resolved from the ad record, not taken from the
// payload.
func (u *CatalogUC) CreateReview(ctx context.Context, review *models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return catalog.ErrInvalidRating
	}

	ad, err := u.catalogRepo.GetAd(ctx, review.AdID)
	if err != nil {
		return err
	}

	review.ID = uuid.New()
	review.AdvertiserPhone = ad.SellerPhone

	if err := u.catalogRepo.CreateReview(ctx, review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}
