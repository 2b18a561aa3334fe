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
	"gorm.io/gorm/clause"
)

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (repo *cartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	var itemModels []*model.CartItemModel
	if err := repo.db.WithContext(ctx).
		Preload("Plant").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&itemModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list cart items")
	}

	items := make([]*entity.CartItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toCartItemDomain(itemM))
	}

	return items, nil
}

func (repo *cartRepository) FindByID(ctx context.Context, userID, itemID uuid.UUID) (*entity.CartItem, error) {
	var itemM model.CartItemModel
	if err := repo.db.WithContext(ctx).
		Preload("Plant").
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return toCartItemDomain(&itemM), nil
}

// AddOrIncrement relies on the (user_id, plant_id) unique index:
// INSERT ... ON CONFLICT DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity.
func (repo *cartRepository) AddOrIncrement(ctx context.Context, userID, plantID uuid.UUID, quantity int) (*entity.CartItem, error) {
	now := time.Now()
	itemM := &model.CartItemModel{
		ID:        uuid.New(),
		UserID:    userID,
		PlantID:   plantID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}, {Name: "plant_id"}},
				DoUpdates: clause.Assignments(map[string]any{
					"quantity":   gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
					"updated_at": now,
				}),
			},
			clause.Returning{},
		).
		Create(itemM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrPlantNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert cart item")
	}

	return toCartItemDomain(itemM), nil
}

func (repo *cartRepository) UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Updates(map[string]any{"quantity": quantity, "updated_at": time.Now()})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cart item quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

func (repo *cartRepository) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

func (repo *cartRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to clear cart")
	}

	return result.RowsAffected, nil
}

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	return &entity.CartItem{
		ID:        data.ID,
		UserID:    data.UserID,
		PlantID:   data.PlantID,
		Quantity:  data.Quantity,
		Plant:     toPlantDomain(data.Plant),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
