package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vecivendo/marketplace/internal/pkg/logger"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/internal/utils"
	"github.com/vecivendo/marketplace/services/orders"
)

const historyLimit = 100

// newOrderNumber derives the human-facing order reference from the
// creation instant
func newOrderNumber(at time.Time) string {
	return fmt.Sprintf("VV%d", at.UnixMilli())
}

// PlaceOrder checks out a cart for a verified buyer. Item prices are
// recomputed from the current ad records, honoring variant pricing, so a
// stale client total is never trusted. Every item must belong to one
// seller; the whole order lands in a single write.
func (u *OrderUC) PlaceOrder(ctx context.Context, buyerIdentity string, req *models.PlaceOrderRequest) (*models.Order, error) {
	if req == nil || len(req.Items) == 0 {
		return nil, orders.ErrEmptyOrder
	}

	normalized, err := utils.NormalizePhone(buyerIdentity)
	if err != nil {
		return nil, err
	}

	var (
		items        []models.OrderItem
		total        float64
		sellerPhone  string
		sellerSuffix string
		residential  string
	)

	for _, line := range req.Items {
		if line.Quantity < 1 {
			line.Quantity = 1
		}

		adID, err := uuid.Parse(line.AdID)
		if err != nil {
			return nil, fmt.Errorf("invalid ad id %q: %w", line.AdID, err)
		}

		ad, err := u.orderGW.ResolveAd(ctx, adID)
		if err != nil {
			return nil, err
		}

		suffix := utils.PhoneSuffix(ad.SellerPhone)
		if sellerSuffix == "" {
			sellerSuffix = suffix
			sellerPhone = ad.SellerPhone
			residential = ad.ResidentialID
		} else if suffix != sellerSuffix {
			return nil, orders.ErrMultipleSellers
		}

		item := models.OrderItem{
			AdID:     ad.ID.String(),
			Name:     ad.Title,
			Quantity: line.Quantity,
			Price:    ad.Price,
		}

		if line.SKU != "" {
			variant, err := matchVariant(ad, line.SKU)
			if err != nil {
				return nil, err
			}
			item.Price = variant.Price
			item.Variant = &variant
		}

		total += item.Price * float64(item.Quantity)
		items = append(items, item)
	}

	now := time.Now()
	order := &models.Order{
		ID:            uuid.New(),
		OrderNumber:   newOrderNumber(now),
		BuyerPhone:    normalized,
		SellerPhone:   sellerPhone,
		ResidentialID: residential,
		Items:         items,
		Total:         total,
		Status:        models.OrderStatusPlaced,
		CreatedAt:     now,
	}

	// The buyer's stored profile fills in delivery details when present
	if buyer, err := u.orderGW.ResolveBuyer(ctx, normalized); err == nil {
		order.BuyerName = buyer.Name
		order.BuyerAddress = buyer.Address()
	}

	if err := order.EncodeItems(); err != nil {
		return nil, err
	}

	if err := u.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := u.orderGW.PublishOrderPlaced(ctx, order); err != nil {
		// The ledger write already happened; notification is best effort
		logger.Warn("Failed to publish order placed event",
			logger.String("order_number", order.OrderNumber),
			logger.Err(err))
	}

	logger.Info("Order placed",
		logger.String("order_number", order.OrderNumber),
		logger.Float64("total", order.Total))

	return order, nil
}

// matchVariant finds the priced tier an item references by SKU
func matchVariant(ad *models.Ad, sku string) (models.Variant, error) {
	if err := ad.DecodeVariants(); err != nil {
		return models.Variant{}, err
	}
	for _, v := range ad.Variants {
		if v.SKU == sku {
			return v, nil
		}
	}
	return models.Variant{}, fmt.Errorf("ad %s has no variant with sku %q", ad.ID, sku)
}

// History returns the orders a phone placed and the orders it received,
// each newest first. Lookups match on the identity suffix, so any
// historical phone format for the same resident sees the same ledger.
func (u *OrderUC) History(ctx context.Context, phone string) (*models.OrderHistory, error) {
	suffix := utils.PhoneSuffix(phone)
	if suffix == "" {
		return nil, utils.ErrInvalidPhone
	}

	placed, err := u.orderRepo.ListPlacedBySuffix(ctx, suffix, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list placed orders: %w", err)
	}

	received, err := u.orderRepo.ListReceivedBySuffix(ctx, suffix, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list received orders: %w", err)
	}

	for _, order := range append(append([]*models.Order{}, placed...), received...) {
		if err := order.DecodeItems(); err != nil {
			return nil, err
		}
	}

	return &models.OrderHistory{
		Placed:   placed,
		Received: received,
	}, nil
}

// GetOrder returns a single order with its items decoded
func (u *OrderUC) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := u.orderRepo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := order.DecodeItems(); err != nil {
		return nil, err
	}

	return order, nil
}
