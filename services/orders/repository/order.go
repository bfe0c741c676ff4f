package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/services/orders"
)

const orderColumns = `id, order_number, buyer_name, buyer_phone, buyer_address,
	seller_phone, residential_id, items, total, status, created_at`

// CreateOrder writes the whole order, items included, in one insert
func (r *OrderRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (id, order_number, buyer_name, buyer_phone,
		                    buyer_address, seller_phone, residential_id,
		                    items, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		order.ID, order.OrderNumber, order.BuyerName, order.BuyerPhone,
		order.BuyerAddress, order.SellerPhone, order.ResidentialID,
		order.RawItems, order.Total, order.Status, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

// GetOrder returns a single order by id
func (r *OrderRepo) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	query := "SELECT " + orderColumns + " FROM orders WHERE id = $1"

	err := r.db.GetContext(ctx, &order, query, id)
	if err == sql.ErrNoRows {
		return nil, orders.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}

// ListPlacedBySuffix returns orders a phone placed as buyer, newest first
func (r *OrderRepo) ListPlacedBySuffix(ctx context.Context, suffix string, limit int) ([]*models.Order, error) {
	query := "SELECT " + orderColumns + ` FROM orders
		WHERE right(buyer_phone, 10) = $1
		ORDER BY created_at DESC
		LIMIT $2`

	var result []*models.Order
	if err := r.db.SelectContext(ctx, &result, query, suffix, limit); err != nil {
		return nil, fmt.Errorf("failed to list placed orders: %w", err)
	}

	return result, nil
}

// ListReceivedBySuffix returns orders a phone received as seller, newest first
func (r *OrderRepo) ListReceivedBySuffix(ctx context.Context, suffix string, limit int) ([]*models.Order, error) {
	query := "SELECT " + orderColumns + ` FROM orders
		WHERE right(seller_phone, 10) = $1
		ORDER BY created_at DESC
		LIMIT $2`

	var result []*models.Order
	if err := r.db.SelectContext(ctx, &result, query, suffix, limit); err != nil {
		return nil, fmt.Errorf("failed to list received orders: %w", err)
	}

	return result, nil
}
