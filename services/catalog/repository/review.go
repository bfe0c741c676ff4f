package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vecivendo/marketplace/internal/pkg/models"
)

// ListReviews returns an ad's reviews, newest first
func (r *CatalogRepo) ListReviews(ctx context.Context, adID uuid.UUID, limit, offset int) ([]*models.Review, error) {
	query := `
		SELECT id, ad_id, advertiser_phone, rating, comment, author_name, created_at
		FROM reviews
		WHERE ad_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	var reviews []*models.Review
	if err := r.db.SelectContext(ctx, &reviews, query, adID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}

// CreateReview appends a review row
func (r *CatalogRepo) CreateReview(ctx context.Context, review *models.Review) error {
	review.CreatedAt = time.Now()

	query := `
		INSERT INTO reviews (id, ad_id, advertiser_phone, rating, comment, author_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		review.ID, review.AdID, review.AdvertiserPhone, review.Rating,
		review.Comment, review.AuthorName, review.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}

	return nil
}
