package orders

import "errors"

var (
	ErrEmptyOrder      = errors.New("order has no items")
	ErrMultipleSellers = errors.New("order items span multiple sellers")
	ErrOrderNotFound   = errors.New("order not found")
)
