package impl

import (
	"context"
	"log/slog"
	"testing"

	"verdeluxe/internal/domain/entity"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/domain/repository"
	mockRepo "verdeluxe/internal/mocks/repository"
	"verdeluxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service   usecase.CartUsecase
	cartRepo  *mockRepo.MockCartRepository
	plantRepo *mockRepo.MockPlantRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	plantRepo := mockRepo.NewMockPlantRepository(t)

	return cartServiceFixtures{
		service:   NewCartService(cartRepo, plantRepo, slog.New(slog.DiscardHandler)),
		cartRepo:  cartRepo,
		plantRepo: plantRepo,
	}
}

func testPlant(price string, stock int) *entity.Plant {
	return &entity.Plant{
		ID:       uuid.New(),
		Name:     "Monstera Deliciosa",
		Slug:     "monstera-deliciosa",
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
		IsActive: true,
	}
}

func TestCartService_AddItem_IncrementsExistingLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	plant := testPlant("20.00", 10)
	itemID := uuid.New()

	fx.plantRepo.EXPECT().FindByID(ctx, plant.ID).Return(plant, nil).Twice()
	fx.cartRepo.EXPECT().
		AddOrIncrement(ctx, userID, plant.ID, 1).
		Return(&entity.CartItem{ID: itemID, UserID: userID, PlantID: plant.ID, Quantity: 1}, nil).
		Once()
	fx.cartRepo.EXPECT().
		AddOrIncrement(ctx, userID, plant.ID, 2).
		Return(&entity.CartItem{ID: itemID, UserID: userID, PlantID: plant.ID, Quantity: 3}, nil).
		Once()

	first, err := fx.service.AddItem(ctx, userID, plant.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Quantity)

	second, err := fx.service.AddItem(ctx, userID, plant.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, itemID, second.ID)
	assert.Equal(t, 3, second.Quantity)
	assert.Same(t, plant, second.Plant)
}

func TestCartService_AddItem_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous caller", func(t *testing.T) {
		fx := createTestCartService(t)

		_, err := fx.service.AddItem(ctx, uuid.Nil, uuid.New(), 1)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("zero quantity", func(t *testing.T) {
		fx := createTestCartService(t)

		_, err := fx.service.AddItem(ctx, uuid.New(), uuid.New(), 0)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
	})

	t.Run("inactive plant", func(t *testing.T) {
		fx := createTestCartService(t)
		plant := testPlant("12.50", 4)
		plant.IsActive = false
		fx.plantRepo.EXPECT().FindByID(ctx, plant.ID).Return(plant, nil)

		_, err := fx.service.AddItem(ctx, uuid.New(), plant.ID, 1)
		assert.ErrorIs(t, err, domainerrors.ErrPlantUnavailable)
	})

	t.Run("unknown plant", func(t *testing.T) {
		fx := createTestCartService(t)
		plantID := uuid.New()
		fx.plantRepo.EXPECT().FindByID(ctx, plantID).Return(nil, repository.ErrPlantNotFound)

		_, err := fx.service.AddItem(ctx, uuid.New(), plantID, 1)
		assert.ErrorIs(t, err, domainerrors.ErrPlantNotFound)
	})
}

func TestCartService_GetCart_ComputesTotals(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	monstera := testPlant("20.00", 10)
	fern := testPlant("7.25", 3)

	fx.cartRepo.EXPECT().ListByUser(ctx, userID).Return([]*entity.CartItem{
		{ID: uuid.New(), UserID: userID, PlantID: monstera.ID, Quantity: 3, Plant: monstera},
		{ID: uuid.New(), UserID: userID, PlantID: fern.ID, Quantity: 2, Plant: fern},
	}, nil)

	cart, err := fx.service.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 5, cart.TotalItems)
	assert.Equal(t, "74.50", cart.TotalPrice.StringFixed(2))
}

func TestCartService_GetCart_Empty(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.cartRepo.EXPECT().ListByUser(ctx, userID).Return(nil, nil)

	cart, err := fx.service.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.NotNil(t, cart.Items)
	assert.Equal(t, 0, cart.TotalItems)
	assert.True(t, cart.TotalPrice.IsZero())
}

func TestCartService_UpdateItem_ZeroQuantityRemoves(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	fx.cartRepo.EXPECT().Delete(ctx, userID, itemID).Return(nil)

	require.NoError(t, fx.service.UpdateItem(ctx, userID, itemID, 0))
}

func TestCartService_UpdateItem_MissingItem(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	fx.cartRepo.EXPECT().UpdateQuantity(ctx, userID, itemID, 4).Return(repository.ErrCartItemNotFound)

	err := fx.service.UpdateItem(ctx, userID, itemID, 4)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_ClearCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.cartRepo.EXPECT().DeleteByUser(ctx, userID).Return(int64(2), nil)

	require.NoError(t, fx.service.ClearCart(ctx, userID))
}
