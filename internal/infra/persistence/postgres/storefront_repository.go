package postgres

import (
	"context"
	"strings"
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

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

func (repo *wishlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error) {
	var itemModels []*model.WishlistItemModel
	if err := repo.db.WithContext(ctx).
		InnerJoins("Plant").
		Where("wishlist_items.user_id = ?", userID).
		Where(`"Plant"."is_active" = ?`, true).
		Order("wishlist_items.created_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list wishlist")
	}

	items := make([]*entity.WishlistItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toWishlistDomain(itemM))
	}

	return items, nil
}

func (repo *wishlistRepository) Add(ctx context.Context, userID, plantID uuid.UUID) (*entity.WishlistItem, error) {
	itemM := &model.WishlistItemModel{
		ID:        uuid.New(),
		UserID:    userID,
		PlantID:   plantID,
		CreatedAt: time.Now(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrPlantNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to add wishlist item")
	}

	var stored model.WishlistItemModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND plant_id = ?", userID, plantID).
		First(&stored).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load wishlist item")
	}

	return toWishlistDomain(&stored), nil
}

func (repo *wishlistRepository) Remove(ctx context.Context, userID, plantID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND plant_id = ?", userID, plantID).
		Delete(&model.WishlistItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove wishlist item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWishlistItemNotFound
	}

	return nil
}

func toWishlistDomain(data *model.WishlistItemModel) *entity.WishlistItem {
	return &entity.WishlistItem{
		ID:        data.ID,
		UserID:    data.UserID,
		PlantID:   data.PlantID,
		Plant:     toPlantDomain(data.Plant),
		CreatedAt: data.CreatedAt,
	}
}

type newsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) repository.NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (repo *newsletterRepository) Subscribe(ctx context.Context, email string) (*entity.NewsletterSubscriber, error) {
	subscriberM := &model.NewsletterSubscriberModel{
		ID:        uuid.New(),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "email"}},
				DoUpdates: clause.Assignments(map[string]any{"is_active": true}),
			},
			clause.Returning{},
		).
		Create(subscriberM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to subscribe to newsletter")
	}

	return toSubscriberDomain(subscriberM), nil
}

func (repo *newsletterRepository) List(ctx context.Context, page repository.Page) ([]*entity.NewsletterSubscriber, int64, error) {
	page = page.Normalize()

	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.NewsletterSubscriberModel{}).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count subscribers")
	}

	var subscriberModels []*model.NewsletterSubscriberModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&subscriberModels).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list subscribers")
	}

	subscribers := make([]*entity.NewsletterSubscriber, 0, len(subscriberModels))
	for _, subscriberM := range subscriberModels {
		subscribers = append(subscribers, toSubscriberDomain(subscriberM))
	}

	return subscribers, total, nil
}

func (repo *newsletterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NewsletterSubscriberModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete subscriber")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubscriberNotFound
	}

	return nil
}

func toSubscriberDomain(data *model.NewsletterSubscriberModel) *entity.NewsletterSubscriber {
	return &entity.NewsletterSubscriber{
		ID:        data.ID,
		Email:     data.Email,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
	}
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) repository.ContentRepository {
	return &contentRepository{db: db}
}

func (repo *contentRepository) Get(ctx context.Context, key string) (*entity.SiteContent, error) {
	var contentM model.SiteContentModel
	if err := repo.db.WithContext(ctx).Where("key = ?", key).First(&contentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContentNotFound
		}

		return nil, errors.Wrap(err, "failed to get site content")
	}

	return toContentDomain(&contentM), nil
}

func (repo *contentRepository) List(ctx context.Context) ([]*entity.SiteContent, error) {
	var contentModels []*model.SiteContentModel
	if err := repo.db.WithContext(ctx).Order("key ASC").Find(&contentModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list site content")
	}

	contents := make([]*entity.SiteContent, 0, len(contentModels))
	for _, contentM := range contentModels {
		contents = append(contents, toContentDomain(contentM))
	}

	return contents, nil
}

func (repo *contentRepository) Upsert(ctx context.Context, content *entity.SiteContent) error {
	content.UpdatedAt = time.Now()
	contentM := &model.SiteContentModel{
		Key:       content.Key,
		Title:     content.Title,
		Body:      content.Body,
		UpdatedAt: content.UpdatedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "body", "updated_at"}),
		}).
		Create(contentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save site content")
	}

	return nil
}

func (repo *contentRepository) Delete(ctx context.Context, key string) error {
	result := repo.db.WithContext(ctx).Where("key = ?", key).Delete(&model.SiteContentModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete site content")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	return nil
}

func toContentDomain(data *model.SiteContentModel) *entity.SiteContent {
	return &entity.SiteContent{
		Key:       data.Key,
		Title:     data.Title,
		Body:      data.Body,
		UpdatedAt: data.UpdatedAt,
	}
}
