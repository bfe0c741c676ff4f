package usecase

import (
	"context"
	"fmt"

	"github.com/vecivendo/marketplace/internal/pkg/logger"
)

const metricsPageSize = 100

// RecalcResidentialMetrics recounts active ads per residential, split into
// free and paid tiers, and stores the totals. Residentials are paged
// through in fixed batches; a failure on one residential is logged and the
// sweep continues, so a single bad row never aborts the whole run. The
// recount is absolute, not incremental, which makes re-runs safe.
func (u *CatalogUC) RecalcResidentialMetrics(ctx context.Context) (int, error) {
	processed := 0

	for offset := 0; ; offset += metricsPageSize {
		residentials, err := u.catalogRepo.ListResidentials(ctx, metricsPageSize, offset)
		if err != nil {
			return processed, fmt.Errorf("failed to page residentials: %w", err)
		}
		if len(residentials) == 0 {
			break
		}

		for _, res := range residentials {
			free, paid, err := u.catalogRepo.CountActiveAdsByPlan(ctx, res.ID)
			if err != nil {
				logger.Error("Failed to count ads for residential",
					logger.String("residential_id", res.ID),
					logger.Err(err))
				continue
			}

			if err := u.catalogRepo.UpdateResidentialMetrics(ctx, res.ID, free, paid); err != nil {
				logger.Error("Failed to update residential metrics",
					logger.String("residential_id", res.ID),
					logger.Err(err))
				continue
			}

			processed++
		}

		if len(residentials) < metricsPageSize {
			break
		}
	}

	logger.Info("Residential metrics recalculated",
		logger.Int("residentials", processed))

	return processed, nil
}
