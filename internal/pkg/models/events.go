package models

// ProfileVerifiedEvent is published when a phone verification completes
type ProfileVerifiedEvent struct {
	UserID        string `json:"user_id"`
	Identity      string `json:"identity"`
	ResidentialID string `json:"residential_id,omitempty"`
}

// OrderPlacedEvent is published when a buyer places an order
type OrderPlacedEvent struct {
	OrderID       string  `json:"order_id"`
	OrderNumber   string  `json:"order_number"`
	BuyerPhone    string  `json:"buyer_phone"`
	SellerPhone   string  `json:"seller_phone"`
	Total         float64 `json:"total"`
	ResidentialID string  `json:"residential_id,omitempty"`
}
