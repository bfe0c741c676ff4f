package usecase

import (
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/services/catalog"
)

type CatalogUC struct {
	catalogRepo catalog.CatalogRepo
	cfg         *models.Config
}

// NewCatalogUC creates a new catalog usecase instance
func NewCatalogUC(catalogRepo catalog.CatalogRepo, cfg *models.Config) *CatalogUC {
	return &CatalogUC{
		catalogRepo: catalogRepo,
		cfg:         cfg,
	}
}
