package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/services/catalog"
	"github.com/vecivendo/marketplace/services/orders"
	"github.com/vecivendo/marketplace/services/orders/mocks"
)

func sellerAd(id uuid.UUID, title string, price float64, sellerPhone string) *models.Ad {
	return &models.Ad{
		ID:            id,
		Title:         title,
		Price:         price,
		SellerPhone:   sellerPhone,
		ResidentialID: "res-001",
		Active:        true,
	}
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No gateway or repository calls expected: the check precedes any I/O
	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)

	uc := NewOrderUC(mockRepo, mockGW, &models.Config{})

	// Act
	_, err := uc.PlaceOrder(context.Background(), "5215541263382", &models.PlaceOrderRequest{})

	// Assert
	assert.ErrorIs(t, err, orders.ErrEmptyOrder)

	_, err = uc.PlaceOrder(context.Background(), "5215541263382", nil)
	assert.ErrorIs(t, err, orders.ErrEmptyOrder)
}

func TestPlaceOrder_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)

	adID := uuid.New()
	ad := sellerAd(adID, "Tamales", 120, "5215587654321")

	buyer := &models.Profile{
		Phone:  "5215541263382",
		Name:   "Carlos",
		Street: "Av. Las Flores",
		Block:  "12",
		Lot:    "4",
		House:  "7",
	}

	mockGW.EXPECT().ResolveAd(gomock.Any(), adID).Return(ad, nil)
	mockGW.EXPECT().ResolveBuyer(gomock.Any(), "5215541263382").Return(buyer, nil)
	mockRepo.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, order *models.Order) error {
			assert.True(t, strings.HasPrefix(order.OrderNumber, "VV"))
			assert.Equal(t, models.OrderStatusPlaced, order.Status)
			assert.Equal(t, "5215541263382", order.BuyerPhone)
			assert.Equal(t, "5215587654321", order.SellerPhone)
			assert.Equal(t, "Carlos", order.BuyerName)
			assert.Equal(t, "Av. Las Flores Mz 12 Lt 4 #7", order.BuyerAddress)
			assert.Equal(t, 360.0, order.Total)
			assert.NotEmpty(t, order.RawItems)
			return nil
		})
	mockGW.EXPECT().PublishOrderPlaced(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewOrderUC(mockRepo, mockGW, &models.Config{})

	req := &models.PlaceOrderRequest{
		Items: []models.PlaceOrderItem{
			{AdID: adID.String(), Quantity: 3},
		},
	}

	// Act
	order, err := uc.PlaceOrder(context.Background(), "52 5541263382", req)

	// Assert
	assert.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, 120.0, order.Items[0].Price)
}

func TestPlaceOrder_VariantPricing(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)

	adID := uuid.New()
	ad := sellerAd(adID, "Tamales", 120, "5215587654321")
	blob, err := models.EncodeVariant(models.Variant{Type: "media docena", Price: 65, SKU: "TAM-6"})
	require.NoError(t, err)
	ad.RawVariants = []string{blob}

	mockGW.EXPECT().ResolveAd(gomock.Any(), adID).Return(ad, nil)
	mockGW.EXPECT().
		ResolveBuyer(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("profile not found"))
	mockRepo.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, order *models.Order) error {
			// The variant price wins over the ad's base price
			assert.Equal(t, 130.0, order.Total)
			return nil
		})
	mockGW.EXPECT().PublishOrderPlaced(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewOrderUC(mockRepo, mockGW, &models.Config{})

	req := &models.PlaceOrderRequest{
		Items: []models.PlaceOrderItem{
			{AdID: adID.String(), Quantity: 2, SKU: "TAM-6"},
		},
	}

	// Act
	order, err := uc.PlaceOrder(context.Background(), "5215541263382", req)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, order.Items[0].Variant)
	assert.Equal(t, "TAM-6", order.Items[0].Variant.SKU)
}

func TestPlaceOrder_MultipleSellers(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)

	adA := uuid.New()
	adB := uuid.New()

	mockGW.EXPECT().ResolveAd(gomock.Any(), adA).
		Return(sellerAd(adA, "Tamales", 120, "5215587654321"), nil)
	mockGW.EXPECT().ResolveAd(gomock.Any(), adB).
		Return(sellerAd(adB, "Pozole", 90, "5215512345678"), nil)

	uc := NewOrderUC(mockRepo, mockGW, &models.Config{})

	req := &models.PlaceOrderRequest{
		Items: []models.PlaceOrderItem{
			{AdID: adA.String(), Quantity: 1},
			{AdID: adB.String(), Quantity: 1},
		},
	}

	// Act: no write happens
	_, err := uc.PlaceOrder(context.Background(), "5215541263382", req)

	// Assert
	assert.ErrorIs(t, err, orders.ErrMultipleSellers)
}

func TestPlaceOrder_AdMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)

	adID := uuid.New()
	mockGW.EXPECT().ResolveAd(gomock.Any(), adID).Return(nil, catalog.ErrAdNotFound)

	uc := NewOrderUC(mockRepo, mockGW, &models.Config{})

	req := &models.PlaceOrderRequest{
		Items: []models.PlaceOrderItem{{AdID: adID.String(), Quantity: 1}},
	}

	_, err := uc.PlaceOrder(context.Background(), "5215541263382", req)
	assert.ErrorIs(t, err, catalog.ErrAdNotFound)
}

func TestPlaceOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)

	adID := uuid.New()
	mockGW.EXPECT().ResolveAd(gomock.Any(), adID).
		Return(sellerAd(adID, "Tamales", 120, "5215587654321"), nil)
	mockGW.EXPECT().
		ResolveBuyer(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("profile not found"))
	mockRepo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().
		PublishOrderPlaced(gomock.Any(), gomock.Any()).
		Return(errors.New("nats unavailable"))

	uc := NewOrderUC(mockRepo, mockGW, &models.Config{})

	req := &models.PlaceOrderRequest{
		Items: []models.PlaceOrderItem{{AdID: adID.String(), Quantity: 1}},
	}

	// Act
	order, err := uc.PlaceOrder(context.Background(), "5215541263382", req)

	// Assert: the ledger write stands
	assert.NoError(t, err)
	assert.NotNil(t, order)
}

func TestHistory_SuffixEqualPhonesSeeTheSameLedger(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)

	placed := []*models.Order{
		{ID: uuid.New(), OrderNumber: "VV1", BuyerPhone: "5541263382", RawItems: "[]"},
	}
	received := []*models.Order{
		{ID: uuid.New(), OrderNumber: "VV2", SellerPhone: "5215541263382", RawItems: "[]"},
	}

	// Both spellings of the same identity resolve to one suffix
	mockRepo.EXPECT().ListPlacedBySuffix(gomock.Any(), "5541263382", 100).Return(placed, nil).Times(2)
	mockRepo.EXPECT().ListReceivedBySuffix(gomock.Any(), "5541263382", 100).Return(received, nil).Times(2)

	uc := NewOrderUC(mockRepo, mockGW, &models.Config{})

	// Act
	a, err := uc.History(context.Background(), "5215541263382")
	require.NoError(t, err)
	b, err := uc.History(context.Background(), "5541263382")
	require.NoError(t, err)

	// Assert
	assert.Equal(t, a.Placed[0].OrderNumber, b.Placed[0].OrderNumber)
	assert.Equal(t, a.Received[0].OrderNumber, b.Received[0].OrderNumber)
}

func TestHistory_InvalidPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)

	uc := NewOrderUC(mockRepo, mockGW, &models.Config{})

	_, err := uc.History(context.Background(), "---")
	assert.Error(t, err)
}

func TestGetOrder_DecodesItems(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)

	orderID := uuid.New()
	stored := &models.Order{
		ID:       orderID,
		RawItems: `[{"ad_id":"a","name":"Tamales","quantity":2,"price":120}]`,
	}

	mockRepo.EXPECT().GetOrder(gomock.Any(), orderID).Return(stored, nil)

	uc := NewOrderUC(mockRepo, mockGW, &models.Config{})

	// Act
	order, err := uc.GetOrder(context.Background(), orderID)

	// Assert
	assert.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Tamales", order.Items[0].Name)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestGetOrder_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)

	orderID := uuid.New()
	mockRepo.EXPECT().GetOrder(gomock.Any(), orderID).Return(nil, orders.ErrOrderNotFound)

	uc := NewOrderUC(mockRepo, mockGW, &models.Config{})

	_, err := uc.GetOrder(context.Background(), orderID)
	assert.ErrorIs(t, err, orders.ErrOrderNotFound)
}
