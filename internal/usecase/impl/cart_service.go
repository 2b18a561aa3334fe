package impl

import (
	"context"
	"log/slog"

	"verdeluxe/internal/domain/entity"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/domain/repository"
	"verdeluxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type cartService struct {
	cartRepo  repository.CartRepository
	plantRepo repository.PlantRepository
	logger    *slog.Logger
}

func NewCartService(cartRepo repository.CartRepository, plantRepo repository.PlantRepository, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		cartRepo:  cartRepo,
		plantRepo: plantRepo,
		logger:    logger,
	}
}

func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	if userID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	items, err := srv.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, translateError(err, "failed to list cart items")
	}

	return entity.NewCart(items), nil
}

func (srv *cartService) AddItem(ctx context.Context, userID, plantID uuid.UUID, quantity int) (*entity.CartItem, error) {
	if userID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if quantity < 1 {
		return nil, errors.WithStack(domainerrors.ErrInvalidQuantity)
	}

	plant, err := srv.plantRepo.FindByID(ctx, plantID)
	if err != nil {
		return nil, translateError(err, "failed to find plant")
	}
	if !plant.IsActive {
		return nil, errors.WithStack(domainerrors.ErrPlantUnavailable)
	}

	item, err := srv.cartRepo.AddOrIncrement(ctx, userID, plantID, quantity)
	if err != nil {
		return nil, translateError(err, "failed to add cart item")
	}
	item.Plant = plant

	loggerFrom(ctx, srv.logger).Debug("Cart item added",
		slog.String("user_id", userID.String()),
		slog.String("plant_id", plantID.String()),
		slog.Int("quantity", item.Quantity),
	)

	return item, nil
}

func (srv *cartService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) error {
	if userID == uuid.Nil {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if quantity <= 0 {
		return srv.RemoveItem(ctx, userID, itemID)
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, userID, itemID, quantity); err != nil {
		return translateError(err, "failed to update cart item")
	}

	return nil
}

func (srv *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	if userID == uuid.Nil {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	if err := srv.cartRepo.Delete(ctx, userID, itemID); err != nil {
		return translateError(err, "failed to remove cart item")
	}

	return nil
}

func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	removed, err := srv.cartRepo.DeleteByUser(ctx, userID)
	if err != nil {
		return translateError(err, "failed to clear cart")
	}

	loggerFrom(ctx, srv.logger).Debug("Cart cleared", slog.String("user_id", userID.String()), slog.Int64("removed", removed))

	return nil
}
