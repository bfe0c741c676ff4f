package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vecivendo/marketplace/internal/pkg/models"
)

// CatalogRepo implements the catalog repository interface
type CatalogRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewCatalogRepo creates a new catalog repository instance
func NewCatalogRepo(cfg *models.Config, db *sqlx.DB) *CatalogRepo {
	return &CatalogRepo{
		cfg: cfg,
		db:  db,
	}
}

// adRow maps an ads table row. Variant blobs live in a single jsonb column
// as an array of encoded strings.
type adRow struct {
	ID            uuid.UUID `db:"id"`
	Title         string    `db:"title"`
	Description   string    `db:"description"`
	Price         float64   `db:"price"`
	Currency      string    `db:"currency"`
	Category      string    `db:"category"`
	Slug          string    `db:"slug"`
	Plan          string    `db:"plan"`
	Active        bool      `db:"active"`
	SellerName    string    `db:"seller_name"`
	SellerPhone   string    `db:"seller_phone"`
	ResidentialID string    `db:"residential_id"`
	Variants      []byte    `db:"variants"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (r *adRow) toModel() (*models.Ad, error) {
	ad := &models.Ad{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Price:         r.Price,
		Currency:      r.Currency,
		Category:      r.Category,
		Slug:          r.Slug,
		Plan:          r.Plan,
		Active:        r.Active,
		SellerName:    r.SellerName,
		SellerPhone:   r.SellerPhone,
		ResidentialID: r.ResidentialID,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if len(r.Variants) > 0 {
		if err := json.Unmarshal(r.Variants, &ad.RawVariants); err != nil {
			return nil, fmt.Errorf("failed to unmarshal variant blobs: %w", err)
		}
	}
	return ad, nil
}

func variantsColumn(ad *models.Ad) ([]byte, error) {
	blobs := ad.RawVariants
	if blobs == nil {
		blobs = []string{}
	}
	data, err := json.Marshal(blobs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal variant blobs: %w", err)
	}
	return data, nil
}
