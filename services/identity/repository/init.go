package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/vecivendo/marketplace/internal/pkg/database"
	"github.com/vecivendo/marketplace/internal/pkg/models"
)

// IdentityRepo implements the identity repository interface
type IdentityRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewIdentityRepo creates a new identity repository instance
func NewIdentityRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *IdentityRepo {
	return &IdentityRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
