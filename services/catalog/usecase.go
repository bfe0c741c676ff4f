package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/vecivendo/marketplace/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/vecivendo/marketplace/services/catalog CatalogUC

// CatalogUC represents the catalog usecase interface
type CatalogUC interface {
	// ads
	ListAds(ctx context.Context, filter *models.AdFilter) ([]*models.Ad, error)
	GetAd(ctx context.Context, id uuid.UUID) (*models.Ad, error)
	CreateAd(ctx context.Context, sellerIdentity string, ad *models.Ad) error
	SetAdActive(ctx context.Context, sellerIdentity string, id uuid.UUID, active bool) error
	OtherAdsBySeller(ctx context.Context, adID uuid.UUID) ([]*models.Ad, error)

	// reviews
	ListReviews(ctx context.Context, adID uuid.UUID, limit, offset int) ([]*models.Review, error)
	CreateReview(ctx context.Context, review *models.Review) error

	// residential metrics batch
	RecalcResidentialMetrics(ctx context.Context) (int, error)
}
