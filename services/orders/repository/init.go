package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/vecivendo/marketplace/internal/pkg/models"
)

// OrderRepo implements the order repository interface
type OrderRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewOrderRepo creates a new order repository instance
func NewOrderRepo(cfg *models.Config, db *sqlx.DB) *OrderRepo {
	return &OrderRepo{
		cfg: cfg,
		db:  db,
	}
}
