package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/services/catalog"
)

const adColumns = `id, title, description, price, currency, category, slug,
	plan, active, seller_name, seller_phone, residential_id, variants,
	created_at, updated_at`

// ListAds returns ads matching the filter, newest first
func (r *CatalogRepo) ListAds(ctx context.Context, filter *models.AdFilter) ([]*models.Ad, error) {
	var conditions []string
	var args []interface{}

	if filter.ResidentialID != "" {
		args = append(args, filter.ResidentialID)
		conditions = append(conditions, fmt.Sprintf("residential_id = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	if filter.ActiveOnly {
		conditions = append(conditions, "active = true")
	}

	query := "SELECT " + adColumns + " FROM ads"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	var rows []adRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list ads: %w", err)
	}

	return rowsToAds(rows)
}

// GetAd returns a single ad by id
func (r *CatalogRepo) GetAd(ctx context.Context, id uuid.UUID) (*models.Ad, error) {
	var row adRow
	query := "SELECT " + adColumns + " FROM ads WHERE id = $1"

	err := r.db.GetContext(ctx, &row, query, id)
	if err == sql.ErrNoRows {
		return nil, catalog.ErrAdNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ad: %w", err)
	}

	return row.toModel()
}

// CreateAd inserts a new ad
func (r *CatalogRepo) CreateAd(ctx context.Context, ad *models.Ad) error {
	now := time.Now()
	ad.CreatedAt = now
	ad.UpdatedAt = now

	variants, err := variantsColumn(ad)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO ads (id, title, description, price, currency, category,
		                 slug, plan, active, seller_name, seller_phone,
		                 residential_id, variants, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err = r.db.ExecContext(ctx, query,
		ad.ID, ad.Title, ad.Description, ad.Price, ad.Currency, ad.Category,
		ad.Slug, ad.Plan, ad.Active, ad.SellerName, ad.SellerPhone,
		ad.ResidentialID, variants, ad.CreatedAt, ad.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ad: %w", err)
	}

	return nil
}

// SetAdActive toggles an ad's visibility
func (r *CatalogRepo) SetAdActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE ads SET active = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, active, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update ad: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return catalog.ErrAdNotFound
	}

	return nil
}

// ListActiveBySellerSuffix returns a seller's other active ads, matched on
// the phone suffix, most recently updated first
func (r *CatalogRepo) ListActiveBySellerSuffix(ctx context.Context, suffix string, excludeID uuid.UUID, limit int) ([]*models.Ad, error) {
	query := "SELECT " + adColumns + ` FROM ads
		WHERE active = true
		  AND right(seller_phone, 10) = $1
		  AND id != $2
		ORDER BY updated_at DESC
		LIMIT $3`

	var rows []adRow
	if err := r.db.SelectContext(ctx, &rows, query, suffix, excludeID, limit); err != nil {
		return nil, fmt.Errorf("failed to list seller ads: %w", err)
	}

	return rowsToAds(rows)
}

func rowsToAds(rows []adRow) ([]*models.Ad, error) {
	ads := make([]*models.Ad, 0, len(rows))
	for i := range rows {
		ad, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		ads = append(ads, ad)
	}
	return ads, nil
}
