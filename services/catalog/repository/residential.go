package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vecivendo/marketplace/internal/pkg/models"
)

// ListResidentials pages through residentials in id order so a metrics
// sweep visits each one exactly once
func (r *CatalogRepo) ListResidentials(ctx context.Context, limit, offset int) ([]*models.Residential, error) {
	query := `
		SELECT id, name, slug, active, total_ads_free, total_ads_paid, created_at, updated_at
		FROM residentials
		ORDER BY id
		LIMIT $1 OFFSET $2`

	var residentials []*models.Residential
	if err := r.db.SelectContext(ctx, &residentials, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list residentials: %w", err)
	}

	return residentials, nil
}

// CountActiveAdsByPlan counts a residential's active ads split into free
// and paid tiers
func (r *CatalogRepo) CountActiveAdsByPlan(ctx context.Context, residentialID string) (int, int, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE NOT (plan = ANY($2))) AS free,
			COUNT(*) FILTER (WHERE plan = ANY($2)) AS paid
		FROM ads
		WHERE residential_id = $1 AND active = true`

	var counts struct {
		Free int `db:"free"`
		Paid int `db:"paid"`
	}
	// pq-style array literal keeps the paid plan set in one place
	paidPlans := "{" + strings.Join(models.PaidPlans, ",") + "}"
	if err := r.db.GetContext(ctx, &counts, query, residentialID, paidPlans); err != nil {
		return 0, 0, fmt.Errorf("failed to count ads: %w", err)
	}

	return counts.Free, counts.Paid, nil
}

// UpdateResidentialMetrics stores recomputed ad totals
func (r *CatalogRepo) UpdateResidentialMetrics(ctx context.Context, residentialID string, free, paid int) error {
	query := `
		UPDATE residentials
		SET total_ads_free = $1, total_ads_paid = $2, updated_at = $3
		WHERE id = $4`

	if _, err := r.db.ExecContext(ctx, query, free, paid, time.Now(), residentialID); err != nil {
		return fmt.Errorf("failed to update residential metrics: %w", err)
	}

	return nil
}
