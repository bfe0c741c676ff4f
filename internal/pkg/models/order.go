package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Order statuses. Orders are created as placed; transitions beyond that
// are driven by the console and out of scope here.
const (
	OrderStatusPlaced    = "placed"
	OrderStatusConfirmed = "confirmed"
	OrderStatusInProcess = "in_process"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order represents an order placed against a seller's ads
type Order struct {
	ID            uuid.UUID `json:"id" db:"id"`
	OrderNumber   string    `json:"order_number" db:"order_number"`
	BuyerName     string    `json:"buyer_name" db:"buyer_name"`
	BuyerPhone    string    `json:"buyer_phone" db:"buyer_phone"`
	BuyerAddress  string    `json:"buyer_address" db:"buyer_address"`
	SellerPhone   string    `json:"seller_phone" db:"seller_phone"`
	ResidentialID string    `json:"residential_id" db:"residential_id"`
	// Items is the persisted JSON encoding of the item list
	RawItems  string      `json:"-" db:"items"`
	Items     []OrderItem `json:"items" db:"-"`
	Total     float64     `json:"total" db:"total"`
	Status    string      `json:"status" db:"status"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}

// OrderItem is one line of an order, snapshotting the ad at purchase time
type OrderItem struct {
	AdID     string   `json:"ad_id"`
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	Price    float64  `json:"price"`
	Variant  *Variant `json:"variant,omitempty"`
}

// EncodeItems serializes the item list into the persisted column form
func (o *Order) EncodeItems() error {
	raw, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}
	o.RawItems = string(raw)
	return nil
}

// DecodeItems parses the persisted item list
func (o *Order) DecodeItems() error {
	if o.RawItems == "" {
		o.Items = nil
		return nil
	}
	if err := json.Unmarshal([]byte(o.RawItems), &o.Items); err != nil {
		return fmt.Errorf("failed to unmarshal order items: %w", err)
	}
	return nil
}

// PlaceOrderRequest is the checkout payload
type PlaceOrderRequest struct {
	Items []PlaceOrderItem `json:"items" validate:"required"`
}

// PlaceOrderItem references an ad with a quantity and optional variant SKU
type PlaceOrderItem struct {
	AdID     string `json:"ad_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required"`
	SKU      string `json:"sku,omitempty"`
}

// OrderHistory groups orders by the caller's role in them
type OrderHistory struct {
	Placed   []*Order `json:"placed"`
	Received []*Order `json:"received"`
}
