package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/vecivendo/marketplace/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/vecivendo/marketplace/services/catalog CatalogRepo

// CatalogRepo represents the catalog repository interface
type CatalogRepo interface {
	// ads
	ListAds(ctx context.Context, filter *models.AdFilter) ([]*models.Ad, error)
	GetAd(ctx context.Context, id uuid.UUID) (*models.Ad, error)
	CreateAd(ctx context.Context, ad *models.Ad) error
	SetAdActive(ctx context.Context, id uuid.UUID, active bool) error
	// ListActiveBySellerSuffix returns active ads whose seller phone ends
	// with the given suffix, excluding one ad, newest-updated first.
	ListActiveBySellerSuffix(ctx context.Context, suffix string, excludeID uuid.UUID, limit int) ([]*models.Ad, error)

	// reviews
	ListReviews(ctx context.Context, adID uuid.UUID, limit, offset int) ([]*models.Review, error)
	CreateReview(ctx context.Context, review *models.Review) error

	// residential metrics
	ListResidentials(ctx context.Context, limit, offset int) ([]*models.Residential, error)
	CountActiveAdsByPlan(ctx context.Context, residentialID string) (free, paid int, err error)
	UpdateResidentialMetrics(ctx context.Context, residentialID string, free, paid int) error
}
