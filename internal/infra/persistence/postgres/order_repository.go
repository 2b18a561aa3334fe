package postgres

import (
	"context"
	"time"

	"verdeluxe/internal/domain/entity"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/domain/repository"
	"verdeluxe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrOrderNumberConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count orders")
	}

	page := filter.Page.Normalize()
	var orderModels []*model.OrderModel
	if err := query.
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&orderModels).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{"status": string(to), "updated_at": time.Now()})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	if _, err := repo.FindByID(ctx, id); err != nil {
		return err
	}

	return repository.ErrOrderStatusConflict
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			PlantID:  item.PlantID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return &entity.Order{
		ID:          data.ID,
		UserID:      data.UserID,
		OrderNumber: data.OrderNumber,
		Status:      entity.OrderStatus(data.Status),
		Items:       items,
		Subtotal:    data.Subtotal,
		Tax:         data.Tax,
		TotalAmount: data.TotalAmount,
		ShippingAddress: entity.ShippingAddress{
			FullName: data.Shipping.FullName,
			Email:    data.Shipping.Email,
			Phone:    data.Shipping.Phone,
			Address:  data.Shipping.Address,
			City:     data.Shipping.City,
			State:    data.Shipping.State,
			ZipCode:  data.Shipping.ZipCode,
			Country:  data.Shipping.Country,
		},
		PaymentStatus:    entity.PaymentStatus(data.PaymentStatus),
		PaymentReference: data.PaymentReference,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			PlantID:  item.PlantID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return &model.OrderModel{
		ID:          data.ID,
		UserID:      data.UserID,
		OrderNumber: data.OrderNumber,
		Status:      string(data.Status),
		Items:       items,
		Subtotal:    data.Subtotal,
		Tax:         data.Tax,
		TotalAmount: data.TotalAmount,
		Shipping: model.ShippingAddressModel{
			FullName: data.ShippingAddress.FullName,
			Email:    data.ShippingAddress.Email,
			Phone:    data.ShippingAddress.Phone,
			Address:  data.ShippingAddress.Address,
			City:     data.ShippingAddress.City,
			State:    data.ShippingAddress.State,
			ZipCode:  data.ShippingAddress.ZipCode,
			Country:  data.ShippingAddress.Country,
		},
		PaymentStatus:    string(data.PaymentStatus),
		PaymentReference: data.PaymentReference,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
