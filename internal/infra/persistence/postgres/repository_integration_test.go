//go:build integration

package postgres

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"verdeluxe/internal/domain/entity"
	"verdeluxe/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("verdeluxe"),
		tcpostgres.WithUsername("verdeluxe"),
		tcpostgres.WithPassword("verdeluxe"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, RunMigrations(sqlDB, slog.New(slog.DiscardHandler), MigrateUp, 0))

	return db
}

func seedUser(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()
	user := &entity.User{ID: uuid.New(), FirebaseUID: "uid-" + uuid.NewString(), Email: "fern@example.com"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedPlant(t *testing.T, db *gorm.DB, name string, price string, stock int, active bool) *entity.Plant {
	t.Helper()
	plant := &entity.Plant{
		ID:        uuid.New(),
		Name:      name,
		Slug:      entity.Slugify(name) + "-" + uuid.NewString()[:8],
		Price:     decimal.RequireFromString(price),
		ImageURLs: []string{},
		Tags:      []string{"indoor"},
		Stock:     stock,
		IsActive:  active,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, NewPlantRepository(db).Create(context.Background(), plant))

	return plant
}

func TestPlantRepository_ListHidesInactiveAndEmptyIsNotError(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewPlantRepository(db)

	plants, err := repo.List(ctx, entity.PlantFilter{})
	require.NoError(t, err)
	assert.Empty(t, plants)

	visible := seedPlant(t, db, "Monstera", "10.00", 5, true)
	hidden := seedPlant(t, db, "Fiddle Leaf", "25.00", 5, true)
	require.NoError(t, repo.SetActive(ctx, hidden.ID, false))

	plants, err = repo.List(ctx, entity.PlantFilter{})
	require.NoError(t, err)
	require.Len(t, plants, 1)
	assert.Equal(t, visible.ID, plants[0].ID)

	stored, err := repo.FindByID(ctx, hidden.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}

func TestCartRepository_AddOrIncrementMergesLines(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db)
	plant := seedPlant(t, db, "Pothos", "10.00", 10, true)
	repo := NewCartRepository(db)

	first, err := repo.AddOrIncrement(ctx, user.ID, plant.ID, 1)
	require.NoError(t, err)
	second, err := repo.AddOrIncrement(ctx, user.ID, plant.ID, 2)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 3, second.Quantity)

	items, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	require.NotNil(t, items[0].Plant)
	assert.True(t, decimal.RequireFromString("10.00").Equal(items[0].Plant.Price))
}

func TestCartRepository_ConcurrentAddsKeepOneLine(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db)
	plant := seedPlant(t, db, "Calathea", "12.50", 10, true)
	repo := NewCartRepository(db)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.AddOrIncrement(ctx, user.ID, plant.ID, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	items, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 8, items[0].Quantity)
}

func TestCartRepository_OwnershipAndClear(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db)
	other := seedUser(t, db)
	plant := seedPlant(t, db, "Snake Plant", "8.00", 10, true)
	repo := NewCartRepository(db)

	item, err := repo.AddOrIncrement(ctx, owner.ID, plant.ID, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Delete(ctx, other.ID, item.ID), repository.ErrCartItemNotFound)
	assert.ErrorIs(t, repo.UpdateQuantity(ctx, other.ID, item.ID, 5), repository.ErrCartItemNotFound)

	removed, err := repo.DeleteByUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)
}

func TestCheckoutTransaction_RollsBackOnInsufficientStock(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db)
	plant := seedPlant(t, db, "Bonsai", "40.00", 1, true)
	_, err := NewCartRepository(db).AddOrIncrement(ctx, user.ID, plant.ID, 2)
	require.NoError(t, err)

	txManager := NewTransactionManager(db)
	err = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := factory.NewCartRepository().DeleteByUser(ctx, user.ID); err != nil {
			return err
		}

		return factory.NewPlantRepository().DecrementStock(ctx, plant.ID, 2)
	})
	require.ErrorIs(t, err, repository.ErrInsufficientStock)

	items, err := NewCartRepository(db).ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1, "cart must survive a rolled back checkout")
}

func TestPlantRepository_DecrementStockSkipsInactivePlants(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	plant := seedPlant(t, db, "Calathea", "25.00", 10, true)
	repo := NewPlantRepository(db)

	require.NoError(t, repo.SetActive(ctx, plant.ID, false))

	err := repo.DecrementStock(ctx, plant.ID, 1)
	require.ErrorIs(t, err, repository.ErrPlantInactive)

	stored, err := repo.FindByID(ctx, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Stock)
}

func TestOrderRepository_CreateAndTransition(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db)
	plant := seedPlant(t, db, "Aloe", "10.00", 10, true)
	repo := NewOrderRepository(db)

	items := []entity.OrderItem{{PlantID: plant.ID, Name: plant.Name, Quantity: 2, Price: plant.Price}}
	totals := entity.ComputeOrderTotals(items, decimal.RequireFromString("0.08"))
	order := &entity.Order{
		ID:          uuid.New(),
		UserID:      user.ID,
		OrderNumber: "VL-20260101120000-ABCDEF",
		Status:      entity.OrderStatusPending,
		Items:       items,
		Subtotal:    totals.Subtotal,
		Tax:         totals.Tax,
		TotalAmount: totals.Total,
		ShippingAddress: entity.ShippingAddress{
			FullName: "Ivy Green", Email: "ivy@example.com", Address: "1 Leaf Lane",
			City: "Portland", ZipCode: "97201", Country: "US",
		},
		PaymentStatus: entity.PaymentStatusPaid,
	}
	require.NoError(t, repo.Create(ctx, order))

	dup := *order
	dup.ID = uuid.New()
	assert.ErrorIs(t, repo.Create(ctx, &dup), repository.ErrOrderNumberConflict)

	stored, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "21.6", stored.TotalAmount.String())
	assert.Equal(t, "Portland", stored.ShippingAddress.City)
	require.Len(t, stored.Items, 1)

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusProcessing))
	assert.ErrorIs(t, repo.UpdateStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusCancelled), repository.ErrOrderStatusConflict)

	status := entity.OrderStatusProcessing
	orders, total, err := repo.List(ctx, repository.OrderFilter{UserID: &user.ID, Status: &status})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, orders, 1)
}

func TestNewsletterRepository_SubscribeIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewNewsletterRepository(db)

	first, err := repo.Subscribe(ctx, "Leaf@Example.com")
	require.NoError(t, err)
	second, err := repo.Subscribe(ctx, "leaf@example.com ")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "leaf@example.com", second.Email)
}
