package impl

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"log/slog"
	"time"

	"verdeluxe/config"
	deliverycontext "verdeluxe/internal/delivery/context"
	"verdeluxe/internal/domain/entity"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/domain/repository"
	"verdeluxe/internal/domain/service"
	"verdeluxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	orderNumberPrefix     = "VL-"
	orderNumberTimeLayout = "20060102150405"
	orderNumberAttempts   = 3
	defaultCurrency       = "USD"
)

var orderNumberEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

type checkoutService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	payments  service.PaymentGateway
	publisher service.EventPublisher
	taxRate   decimal.Decimal
	currency  string
	logger    *slog.Logger
}

type CheckoutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Payments  service.PaymentGateway
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

func NewCheckoutService(params CheckoutServiceParams) (usecase.CheckoutUsecase, error) {
	taxRate := decimal.RequireFromString("0.08")
	currency := defaultCurrency
	if cfg := params.Config.Checkout; cfg != nil {
		if cfg.TaxRate != "" {
			rate, err := cfg.TaxRateDecimal()
			if err != nil {
				return nil, err
			}
			taxRate = rate
		}
		if cfg.Currency != "" {
			currency = cfg.Currency
		}
	}

	return &checkoutService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		payments:  params.Payments,
		publisher: params.Publisher,
		taxRate:   taxRate,
		currency:  currency,
		logger:    params.Logger,
	}, nil
}

func (srv *checkoutService) PlaceOrder(ctx context.Context, userID uuid.UUID, input *usecase.CheckoutInput) (*entity.Order, error) {
	if userID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if input.Payment.Method != service.PaymentMethodCard {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unsupported payment method"))
	}

	cartItems, err := srv.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, translateError(err, "failed to load cart")
	}
	if len(cartItems) == 0 {
		return nil, errors.WithStack(domainerrors.ErrEmptyCart)
	}

	items, err := snapshotCart(cartItems)
	if err != nil {
		return nil, err
	}

	totals := entity.ComputeOrderTotals(items, srv.taxRate)
	now := time.Now().UTC()
	order := &entity.Order{
		ID:              uuid.New(),
		UserID:          userID,
		OrderNumber:     newOrderNumber(now),
		Status:          entity.OrderStatusPending,
		Items:           items,
		Subtotal:        totals.Subtotal,
		Tax:             totals.Tax,
		TotalAmount:     totals.Total,
		ShippingAddress: input.ShippingAddress,
		PaymentStatus:   entity.PaymentStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	logger := loggerFrom(ctx, srv.logger).With(
		slog.String("user_id", userID.String()),
		slog.String("order_number", order.OrderNumber),
	)

	result, err := srv.payments.Charge(ctx, &service.PaymentRequest{
		OrderNumber:    order.OrderNumber,
		Amount:         order.TotalAmount,
		Currency:       srv.currency,
		Method:         input.Payment.Method,
		CardholderName: input.Payment.CardholderName,
		CardLast4:      input.Payment.CardLast4,
	})
	if err != nil {
		logger.Warn("Payment failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPaymentFailed, err.Error())
	}
	if !result.Approved {
		logger.Warn("Payment declined")

		return nil, errors.WithStack(domainerrors.ErrPaymentFailed.WithDetails("payment declined"))
	}

	order.PaymentStatus = entity.PaymentStatusPaid
	order.PaymentReference = result.Reference

	if err := srv.commitOrder(ctx, order); err != nil {
		// The charge went through but nothing was written.
		logger.Error("Failed to record paid order",
			slog.String("payment_reference", result.Reference),
			slog.Any("error", err),
		)

		details := "order could not be recorded"
		switch {
		case errors.Is(err, repository.ErrInsufficientStock):
			details = "a plant sold out during checkout"
		case errors.Is(err, repository.ErrPlantInactive):
			details = "a plant was withdrawn during checkout"
		}

		return nil, errors.Wrap(domainerrors.ErrPaymentFailed.WithDetails(details), err.Error())
	}

	logger.Info("Order placed", slog.String("order_id", order.ID.String()), slog.String("total", order.TotalAmount.StringFixed(2)))

	srv.publish(ctx, order)

	return order, nil
}

// commitOrder decrements stock, inserts the order and clears the cart in one
// transaction, drawing a fresh order number on collision.
func (srv *checkoutService) commitOrder(ctx context.Context, order *entity.Order) error {
	var err error
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		if attempt > 0 {
			order.OrderNumber = newOrderNumber(order.CreatedAt)
		}

		err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
			plantRepo := txRepoFactory.NewPlantRepository()
			orderRepo := txRepoFactory.NewOrderRepository()
			cartRepo := txRepoFactory.NewCartRepository()

			for _, item := range order.Items {
				if err := plantRepo.DecrementStock(ctx, item.PlantID, item.Quantity); err != nil {
					return errors.Wrapf(err, "failed to reserve stock for %s", item.PlantID)
				}
			}

			if err := orderRepo.Create(ctx, order); err != nil {
				return errors.Wrap(err, "failed to create order")
			}

			if _, err := cartRepo.DeleteByUser(ctx, order.UserID); err != nil {
				return errors.Wrap(err, "failed to clear cart")
			}

			return nil
		})
		if !errors.Is(err, repository.ErrOrderNumberConflict) {
			return err
		}
	}

	return err
}

func (srv *checkoutService) publish(ctx context.Context, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        service.OrderEventPlaced,
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID.String(),
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount.StringFixed(2),
		OccurredAt:  order.CreatedAt.Format(time.RFC3339),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		loggerFrom(ctx, srv.logger).Warn("Failed to publish order event",
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}

// snapshotCart copies plant name and current price into order lines.
// Unavailable and understocked plants fail before any payment is attempted.
func snapshotCart(cartItems []*entity.CartItem) ([]entity.OrderItem, error) {
	items := make([]entity.OrderItem, 0, len(cartItems))
	for _, cartItem := range cartItems {
		plant := cartItem.Plant
		if plant == nil || !plant.IsActive {
			return nil, errors.WithStack(domainerrors.ErrPlantUnavailable.WithDetails(cartItem.PlantID.String()))
		}
		if plant.Stock < cartItem.Quantity {
			return nil, errors.WithStack(domainerrors.ErrInsufficientStock.WithDetails(plant.Name))
		}

		items = append(items, entity.OrderItem{
			PlantID:  plant.ID,
			Name:     plant.Name,
			Quantity: cartItem.Quantity,
			Price:    plant.Price,
		})
	}

	return items, nil
}

// newOrderNumber returns VL-<yyyymmddhhmmss>-<6 random base32 characters>.
func newOrderNumber(at time.Time) string {
	random := make([]byte, 4)
	_, _ = rand.Read(random)

	return orderNumberPrefix + at.UTC().Format(orderNumberTimeLayout) + "-" + orderNumberEncoding.EncodeToString(random)[:6]
}
