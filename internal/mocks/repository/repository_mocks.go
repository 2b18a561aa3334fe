// Package repository holds hand-written testify mocks of the repository
// interfaces, in the shape mockery's expecter template produces.
package repository

import (
	"context"
	"time"

	"verdeluxe/internal/domain/entity"
	"verdeluxe/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// returnValue reads a typed return value, tolerating nil.
func returnValue[T any](args mock.Arguments, index int) T {
	value, _ := args.Get(index).(T)

	return value
}

// MockUserRepository is a testify mock of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

type MockUserRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserRepository) EXPECT() *MockUserRepository_Expecter {
	return &MockUserRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ret := _m.Called(ctx, id)

	return returnValue[*entity.User](ret, 0), ret.Error(1)
}

func (_e *MockUserRepository_Expecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockUserRepository) FindByFirebaseUID(ctx context.Context, uid string) (*entity.User, error) {
	ret := _m.Called(ctx, uid)

	return returnValue[*entity.User](ret, 0), ret.Error(1)
}

func (_e *MockUserRepository_Expecter) FindByFirebaseUID(ctx interface{}, uid interface{}) *mock.Call {
	return _e.mock.On("FindByFirebaseUID", ctx, uid)
}

func (_m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	ret := _m.Called(ctx, user)

	return ret.Error(0)
}

func (_e *MockUserRepository_Expecter) Create(ctx interface{}, user interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, user)
}

func (_m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	ret := _m.Called(ctx, user)

	return ret.Error(0)
}

func (_e *MockUserRepository_Expecter) Update(ctx interface{}, user interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, user)
}

func (_m *MockUserRepository) List(ctx context.Context, page repository.Page) ([]*entity.User, int64, error) {
	ret := _m.Called(ctx, page)

	return returnValue[[]*entity.User](ret, 0), returnValue[int64](ret, 1), ret.Error(2)
}

func (_e *MockUserRepository_Expecter) List(ctx interface{}, page interface{}) *mock.Call {
	return _e.mock.On("List", ctx, page)
}

func (_m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockUserRepository_Expecter) SoftDelete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("SoftDelete", ctx, id)
}

// NewMockUserRepository registers a cleanup that asserts all expectations were met.
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockDeviceRepository is a testify mock of DeviceRepository.
type MockDeviceRepository struct {
	mock.Mock
}

type MockDeviceRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockDeviceRepository) EXPECT() *MockDeviceRepository_Expecter {
	return &MockDeviceRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockDeviceRepository) UpsertDevice(ctx context.Context, device *entity.UserDevice) (*entity.UserDevice, error) {
	ret := _m.Called(ctx, device)

	return returnValue[*entity.UserDevice](ret, 0), ret.Error(1)
}

func (_e *MockDeviceRepository_Expecter) UpsertDevice(ctx interface{}, device interface{}) *mock.Call {
	return _e.mock.On("UpsertDevice", ctx, device)
}

func (_m *MockDeviceRepository) FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	ret := _m.Called(ctx, userID)

	return returnValue[[]*entity.UserDevice](ret, 0), ret.Error(1)
}

func (_e *MockDeviceRepository_Expecter) FindActiveDevicesByUser(ctx interface{}, userID interface{}) *mock.Call {
	return _e.mock.On("FindActiveDevicesByUser", ctx, userID)
}

func (_m *MockDeviceRepository) DeactivateByTokens(ctx context.Context, tokens []string) (int64, error) {
	ret := _m.Called(ctx, tokens)

	return returnValue[int64](ret, 0), ret.Error(1)
}

func (_e *MockDeviceRepository_Expecter) DeactivateByTokens(ctx interface{}, tokens interface{}) *mock.Call {
	return _e.mock.On("DeactivateByTokens", ctx, tokens)
}

// NewMockDeviceRepository registers a cleanup that asserts all expectations were met.
func NewMockDeviceRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDeviceRepository {
	m := &MockDeviceRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockPlantRepository is a testify mock of PlantRepository.
type MockPlantRepository struct {
	mock.Mock
}

type MockPlantRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPlantRepository) EXPECT() *MockPlantRepository_Expecter {
	return &MockPlantRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockPlantRepository) List(ctx context.Context, filter entity.PlantFilter) ([]*entity.Plant, error) {
	ret := _m.Called(ctx, filter)

	return returnValue[[]*entity.Plant](ret, 0), ret.Error(1)
}

func (_e *MockPlantRepository_Expecter) List(ctx interface{}, filter interface{}) *mock.Call {
	return _e.mock.On("List", ctx, filter)
}

func (_m *MockPlantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error) {
	ret := _m.Called(ctx, id)

	return returnValue[*entity.Plant](ret, 0), ret.Error(1)
}

func (_e *MockPlantRepository_Expecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockPlantRepository) FindBySlug(ctx context.Context, slug string) (*entity.Plant, error) {
	ret := _m.Called(ctx, slug)

	return returnValue[*entity.Plant](ret, 0), ret.Error(1)
}

func (_e *MockPlantRepository_Expecter) FindBySlug(ctx interface{}, slug interface{}) *mock.Call {
	return _e.mock.On("FindBySlug", ctx, slug)
}

func (_m *MockPlantRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Plant, error) {
	ret := _m.Called(ctx, ids)

	return returnValue[[]*entity.Plant](ret, 0), ret.Error(1)
}

func (_e *MockPlantRepository_Expecter) FindByIDs(ctx interface{}, ids interface{}) *mock.Call {
	return _e.mock.On("FindByIDs", ctx, ids)
}

func (_m *MockPlantRepository) Create(ctx context.Context, plant *entity.Plant) error {
	ret := _m.Called(ctx, plant)

	return ret.Error(0)
}

func (_e *MockPlantRepository_Expecter) Create(ctx interface{}, plant interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, plant)
}

func (_m *MockPlantRepository) Update(ctx context.Context, plant *entity.Plant) error {
	ret := _m.Called(ctx, plant)

	return ret.Error(0)
}

func (_e *MockPlantRepository_Expecter) Update(ctx interface{}, plant interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, plant)
}

func (_m *MockPlantRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	ret := _m.Called(ctx, id, active)

	return ret.Error(0)
}

func (_e *MockPlantRepository_Expecter) SetActive(ctx interface{}, id interface{}, active interface{}) *mock.Call {
	return _e.mock.On("SetActive", ctx, id, active)
}

func (_m *MockPlantRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	ret := _m.Called(ctx, id, quantity)

	return ret.Error(0)
}

func (_e *MockPlantRepository_Expecter) DecrementStock(ctx interface{}, id interface{}, quantity interface{}) *mock.Call {
	return _e.mock.On("DecrementStock", ctx, id, quantity)
}

// NewMockPlantRepository registers a cleanup that asserts all expectations were met.
func NewMockPlantRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPlantRepository {
	m := &MockPlantRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockCategoryRepository is a testify mock of CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

type MockCategoryRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCategoryRepository) EXPECT() *MockCategoryRepository_Expecter {
	return &MockCategoryRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	ret := _m.Called(ctx)

	return returnValue[[]*entity.Category](ret, 0), ret.Error(1)
}

func (_e *MockCategoryRepository_Expecter) List(ctx interface{}) *mock.Call {
	return _e.mock.On("List", ctx)
}

func (_m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	ret := _m.Called(ctx, id)

	return returnValue[*entity.Category](ret, 0), ret.Error(1)
}

func (_e *MockCategoryRepository_Expecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	ret := _m.Called(ctx, category)

	return ret.Error(0)
}

func (_e *MockCategoryRepository_Expecter) Create(ctx interface{}, category interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, category)
}

func (_m *MockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	ret := _m.Called(ctx, category)

	return ret.Error(0)
}

func (_e *MockCategoryRepository_Expecter) Update(ctx interface{}, category interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, category)
}

func (_m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockCategoryRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// NewMockCategoryRepository registers a cleanup that asserts all expectations were met.
func NewMockCategoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockPhotoRepository is a testify mock of PhotoRepository.
type MockPhotoRepository struct {
	mock.Mock
}

type MockPhotoRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPhotoRepository) EXPECT() *MockPhotoRepository_Expecter {
	return &MockPhotoRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockPhotoRepository) ListByPlant(ctx context.Context, plantID uuid.UUID) ([]*entity.Photo, error) {
	ret := _m.Called(ctx, plantID)

	return returnValue[[]*entity.Photo](ret, 0), ret.Error(1)
}

func (_e *MockPhotoRepository_Expecter) ListByPlant(ctx interface{}, plantID interface{}) *mock.Call {
	return _e.mock.On("ListByPlant", ctx, plantID)
}

func (_m *MockPhotoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Photo, error) {
	ret := _m.Called(ctx, id)

	return returnValue[*entity.Photo](ret, 0), ret.Error(1)
}

func (_e *MockPhotoRepository_Expecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockPhotoRepository) Create(ctx context.Context, photo *entity.Photo) error {
	ret := _m.Called(ctx, photo)

	return ret.Error(0)
}

func (_e *MockPhotoRepository_Expecter) Create(ctx interface{}, photo interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, photo)
}

func (_m *MockPhotoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockPhotoRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// NewMockPhotoRepository registers a cleanup that asserts all expectations were met.
func NewMockPhotoRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPhotoRepository {
	m := &MockPhotoRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockCartRepository is a testify mock of CartRepository.
type MockCartRepository struct {
	mock.Mock
}

type MockCartRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCartRepository) EXPECT() *MockCartRepository_Expecter {
	return &MockCartRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockCartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	ret := _m.Called(ctx, userID)

	return returnValue[[]*entity.CartItem](ret, 0), ret.Error(1)
}

func (_e *MockCartRepository_Expecter) ListByUser(ctx interface{}, userID interface{}) *mock.Call {
	return _e.mock.On("ListByUser", ctx, userID)
}

func (_m *MockCartRepository) FindByID(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) (*entity.CartItem, error) {
	ret := _m.Called(ctx, userID, itemID)

	return returnValue[*entity.CartItem](ret, 0), ret.Error(1)
}

func (_e *MockCartRepository_Expecter) FindByID(ctx interface{}, userID interface{}, itemID interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, userID, itemID)
}

func (_m *MockCartRepository) AddOrIncrement(ctx context.Context, userID uuid.UUID, plantID uuid.UUID, quantity int) (*entity.CartItem, error) {
	ret := _m.Called(ctx, userID, plantID, quantity)

	return returnValue[*entity.CartItem](ret, 0), ret.Error(1)
}

func (_e *MockCartRepository_Expecter) AddOrIncrement(ctx interface{}, userID interface{}, plantID interface{}, quantity interface{}) *mock.Call {
	return _e.mock.On("AddOrIncrement", ctx, userID, plantID, quantity)
}

func (_m *MockCartRepository) UpdateQuantity(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, quantity int) error {
	ret := _m.Called(ctx, userID, itemID, quantity)

	return ret.Error(0)
}

func (_e *MockCartRepository_Expecter) UpdateQuantity(ctx interface{}, userID interface{}, itemID interface{}, quantity interface{}) *mock.Call {
	return _e.mock.On("UpdateQuantity", ctx, userID, itemID, quantity)
}

func (_m *MockCartRepository) Delete(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) error {
	ret := _m.Called(ctx, userID, itemID)

	return ret.Error(0)
}

func (_e *MockCartRepository_Expecter) Delete(ctx interface{}, userID interface{}, itemID interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, userID, itemID)
}

func (_m *MockCartRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	ret := _m.Called(ctx, userID)

	return returnValue[int64](ret, 0), ret.Error(1)
}

func (_e *MockCartRepository_Expecter) DeleteByUser(ctx interface{}, userID interface{}) *mock.Call {
	return _e.mock.On("DeleteByUser", ctx, userID)
}

// NewMockCartRepository registers a cleanup that asserts all expectations were met.
func NewMockCartRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCartRepository {
	m := &MockCartRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockOrderRepository is a testify mock of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

type MockOrderRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockOrderRepository) EXPECT() *MockOrderRepository_Expecter {
	return &MockOrderRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	ret := _m.Called(ctx, order)

	return ret.Error(0)
}

func (_e *MockOrderRepository_Expecter) Create(ctx interface{}, order interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, order)
}

func (_m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	ret := _m.Called(ctx, id)

	return returnValue[*entity.Order](ret, 0), ret.Error(1)
}

func (_e *MockOrderRepository_Expecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockOrderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, int64, error) {
	ret := _m.Called(ctx, filter)

	return returnValue[[]*entity.Order](ret, 0), returnValue[int64](ret, 1), ret.Error(2)
}

func (_e *MockOrderRepository_Expecter) List(ctx interface{}, filter interface{}) *mock.Call {
	return _e.mock.On("List", ctx, filter)
}

func (_m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from entity.OrderStatus, to entity.OrderStatus) error {
	ret := _m.Called(ctx, id, from, to)

	return ret.Error(0)
}

func (_e *MockOrderRepository_Expecter) UpdateStatus(ctx interface{}, id interface{}, from interface{}, to interface{}) *mock.Call {
	return _e.mock.On("UpdateStatus", ctx, id, from, to)
}

// NewMockOrderRepository registers a cleanup that asserts all expectations were met.
func NewMockOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockAdminRepository is a testify mock of AdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

type MockAdminRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAdminRepository) EXPECT() *MockAdminRepository_Expecter {
	return &MockAdminRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockAdminRepository) Lock(ctx context.Context) error {
	ret := _m.Called(ctx)

	return ret.Error(0)
}

func (_e *MockAdminRepository_Expecter) Lock(ctx interface{}) *mock.Call {
	return _e.mock.On("Lock", ctx)
}

func (_m *MockAdminRepository) Count(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)

	return returnValue[int64](ret, 0), ret.Error(1)
}

func (_e *MockAdminRepository_Expecter) Count(ctx interface{}) *mock.Call {
	return _e.mock.On("Count", ctx)
}

func (_m *MockAdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminCredential, error) {
	ret := _m.Called(ctx, id)

	return returnValue[*entity.AdminCredential](ret, 0), ret.Error(1)
}

func (_e *MockAdminRepository_Expecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockAdminRepository) FindByUsername(ctx context.Context, username string) (*entity.AdminCredential, error) {
	ret := _m.Called(ctx, username)

	return returnValue[*entity.AdminCredential](ret, 0), ret.Error(1)
}

func (_e *MockAdminRepository_Expecter) FindByUsername(ctx interface{}, username interface{}) *mock.Call {
	return _e.mock.On("FindByUsername", ctx, username)
}

func (_m *MockAdminRepository) Create(ctx context.Context, admin *entity.AdminCredential) error {
	ret := _m.Called(ctx, admin)

	return ret.Error(0)
}

func (_e *MockAdminRepository_Expecter) Create(ctx interface{}, admin interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, admin)
}

func (_m *MockAdminRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	ret := _m.Called(ctx, id, at)

	return ret.Error(0)
}

func (_e *MockAdminRepository_Expecter) UpdateLastLogin(ctx interface{}, id interface{}, at interface{}) *mock.Call {
	return _e.mock.On("UpdateLastLogin", ctx, id, at)
}

// NewMockAdminRepository registers a cleanup that asserts all expectations were met.
func NewMockAdminRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAdminRepository {
	m := &MockAdminRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockWishlistRepository is a testify mock of WishlistRepository.
type MockWishlistRepository struct {
	mock.Mock
}

type MockWishlistRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockWishlistRepository) EXPECT() *MockWishlistRepository_Expecter {
	return &MockWishlistRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockWishlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error) {
	ret := _m.Called(ctx, userID)

	return returnValue[[]*entity.WishlistItem](ret, 0), ret.Error(1)
}

func (_e *MockWishlistRepository_Expecter) ListByUser(ctx interface{}, userID interface{}) *mock.Call {
	return _e.mock.On("ListByUser", ctx, userID)
}

func (_m *MockWishlistRepository) Add(ctx context.Context, userID uuid.UUID, plantID uuid.UUID) (*entity.WishlistItem, error) {
	ret := _m.Called(ctx, userID, plantID)

	return returnValue[*entity.WishlistItem](ret, 0), ret.Error(1)
}

func (_e *MockWishlistRepository_Expecter) Add(ctx interface{}, userID interface{}, plantID interface{}) *mock.Call {
	return _e.mock.On("Add", ctx, userID, plantID)
}

func (_m *MockWishlistRepository) Remove(ctx context.Context, userID uuid.UUID, plantID uuid.UUID) error {
	ret := _m.Called(ctx, userID, plantID)

	return ret.Error(0)
}

func (_e *MockWishlistRepository_Expecter) Remove(ctx interface{}, userID interface{}, plantID interface{}) *mock.Call {
	return _e.mock.On("Remove", ctx, userID, plantID)
}

// NewMockWishlistRepository registers a cleanup that asserts all expectations were met.
func NewMockWishlistRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWishlistRepository {
	m := &MockWishlistRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockNewsletterRepository is a testify mock of NewsletterRepository.
type MockNewsletterRepository struct {
	mock.Mock
}

type MockNewsletterRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockNewsletterRepository) EXPECT() *MockNewsletterRepository_Expecter {
	return &MockNewsletterRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockNewsletterRepository) Subscribe(ctx context.Context, email string) (*entity.NewsletterSubscriber, error) {
	ret := _m.Called(ctx, email)

	return returnValue[*entity.NewsletterSubscriber](ret, 0), ret.Error(1)
}

func (_e *MockNewsletterRepository_Expecter) Subscribe(ctx interface{}, email interface{}) *mock.Call {
	return _e.mock.On("Subscribe", ctx, email)
}

func (_m *MockNewsletterRepository) List(ctx context.Context, page repository.Page) ([]*entity.NewsletterSubscriber, int64, error) {
	ret := _m.Called(ctx, page)

	return returnValue[[]*entity.NewsletterSubscriber](ret, 0), returnValue[int64](ret, 1), ret.Error(2)
}

func (_e *MockNewsletterRepository_Expecter) List(ctx interface{}, page interface{}) *mock.Call {
	return _e.mock.On("List", ctx, page)
}

func (_m *MockNewsletterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockNewsletterRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// NewMockNewsletterRepository registers a cleanup that asserts all expectations were met.
func NewMockNewsletterRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNewsletterRepository {
	m := &MockNewsletterRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockContentRepository is a testify mock of ContentRepository.
type MockContentRepository struct {
	mock.Mock
}

type MockContentRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockContentRepository) EXPECT() *MockContentRepository_Expecter {
	return &MockContentRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockContentRepository) Get(ctx context.Context, key string) (*entity.SiteContent, error) {
	ret := _m.Called(ctx, key)

	return returnValue[*entity.SiteContent](ret, 0), ret.Error(1)
}

func (_e *MockContentRepository_Expecter) Get(ctx interface{}, key interface{}) *mock.Call {
	return _e.mock.On("Get", ctx, key)
}

func (_m *MockContentRepository) List(ctx context.Context) ([]*entity.SiteContent, error) {
	ret := _m.Called(ctx)

	return returnValue[[]*entity.SiteContent](ret, 0), ret.Error(1)
}

func (_e *MockContentRepository_Expecter) List(ctx interface{}) *mock.Call {
	return _e.mock.On("List", ctx)
}

func (_m *MockContentRepository) Upsert(ctx context.Context, content *entity.SiteContent) error {
	ret := _m.Called(ctx, content)

	return ret.Error(0)
}

func (_e *MockContentRepository_Expecter) Upsert(ctx interface{}, content interface{}) *mock.Call {
	return _e.mock.On("Upsert", ctx, content)
}

func (_m *MockContentRepository) Delete(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	return ret.Error(0)
}

func (_e *MockContentRepository_Expecter) Delete(ctx interface{}, key interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, key)
}

// NewMockContentRepository registers a cleanup that asserts all expectations were met.
func NewMockContentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockContentRepository {
	m := &MockContentRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
