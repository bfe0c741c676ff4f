package models

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Ad plan tiers
const (
	PlanFree    = "free"
	PlanPaid    = "paid"
	PlanPremium = "premium"
	PlanPro     = "pro"
)

// PaidPlans lists the plan values counted as paid in residential metrics
var PaidPlans = []string{PlanPaid, PlanPremium, PlanPro, "pago"}

// Ad represents a classified ad published inside one residential
type Ad struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description" db:"description"`
	Price         float64   `json:"price" db:"price"`
	Currency      string    `json:"currency" db:"currency"`
	Category      string    `json:"category" db:"category"`
	Slug          string    `json:"slug" db:"slug"`
	Plan          string    `json:"plan" db:"plan"`
	Active        bool      `json:"active" db:"active"`
	SellerName    string    `json:"seller_name" db:"seller_name"`
	SellerPhone   string    `json:"seller_phone" db:"seller_phone"`
	ResidentialID string    `json:"residential_id" db:"residential_id"`
	// Variants are persisted as base64-encoded JSON blobs, one per tier
	RawVariants []string  `json:"-" db:"-"`
	Variants    []Variant `json:"variants,omitempty" db:"-"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Variant is a per-ad pricing tier, stored as a self-describing encoded blob
// so new tier shapes don't require a schema migration
type Variant struct {
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	MinQuantity int     `json:"minQuantity"`
	SKU         string  `json:"sku"`
	Offer       string  `json:"offer,omitempty"`
}

// EncodeVariant serializes a variant into its persisted blob form
func EncodeVariant(v Variant) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal variant: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeVariant parses a persisted variant blob
func DecodeVariant(blob string) (Variant, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return Variant{}, fmt.Errorf("failed to decode variant blob: %w", err)
	}
	var v Variant
	if err := json.Unmarshal(raw, &v); err != nil {
		return Variant{}, fmt.Errorf("failed to unmarshal variant: %w", err)
	}
	return v, nil
}

// DecodeVariants decodes every stored blob on the ad into Variants.
// Malformed blobs fail the whole decode so callers never see partial tiers.
func (a *Ad) DecodeVariants() error {
	if len(a.RawVariants) == 0 {
		a.Variants = nil
		return nil
	}
	variants := make([]Variant, 0, len(a.RawVariants))
	for _, blob := range a.RawVariants {
		v, err := DecodeVariant(blob)
		if err != nil {
			return err
		}
		variants = append(variants, v)
	}
	a.Variants = variants
	return nil
}

// SetAdActiveRequest represents an ad visibility change payload
type SetAdActiveRequest struct {
	Active bool `json:"active"`
}

// AdFilter narrows ad listing queries
type AdFilter struct {
	ResidentialID string
	Category      string
	Search        string
	ActiveOnly    bool
	Limit         int
	Offset        int
}
