package models

import (
	"time"
)

// Residential is a gated community: the tenant boundary ads and orders are scoped to
type Residential struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Slug         string    `json:"slug" db:"slug"`
	Active       bool      `json:"active" db:"active"`
	TotalAdsFree int       `json:"total_ads_free" db:"total_ads_free"`
	TotalAdsPaid int       `json:"total_ads_paid" db:"total_ads_paid"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
