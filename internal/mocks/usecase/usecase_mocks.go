// Package usecase holds hand-written testify mocks of the usecase
// interfaces, used by the delivery tests.
package usecase

import (
	"context"
	"io"

	"verdeluxe/internal/domain/entity"
	"verdeluxe/internal/domain/repository"
	"verdeluxe/internal/domain/service"
	"verdeluxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func returnValue[T any](args mock.Arguments, index int) T {
	value, _ := args.Get(index).(T)

	return value
}

// MockCatalogUsecase is a testify mock of CatalogUsecase.
type MockCatalogUsecase struct {
	mock.Mock
}

type MockCatalogUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCatalogUsecase) EXPECT() *MockCatalogUsecase_Expecter {
	return &MockCatalogUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockCatalogUsecase) ListPlants(ctx context.Context, filter entity.PlantFilter) ([]*entity.CatalogPlant, error) {
	ret := _m.Called(ctx, filter)

	return returnValue[[]*entity.CatalogPlant](ret, 0), ret.Error(1)
}

func (_e *MockCatalogUsecase_Expecter) ListPlants(ctx interface{}, filter interface{}) *mock.Call {
	return _e.mock.On("ListPlants", ctx, filter)
}

func (_m *MockCatalogUsecase) GetPlant(ctx context.Context, id uuid.UUID) (*entity.CatalogPlant, error) {
	ret := _m.Called(ctx, id)

	return returnValue[*entity.CatalogPlant](ret, 0), ret.Error(1)
}

func (_e *MockCatalogUsecase_Expecter) GetPlant(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("GetPlant", ctx, id)
}

func (_m *MockCatalogUsecase) GetPlantBySlug(ctx context.Context, slug string) (*entity.CatalogPlant, error) {
	ret := _m.Called(ctx, slug)

	return returnValue[*entity.CatalogPlant](ret, 0), ret.Error(1)
}

func (_e *MockCatalogUsecase_Expecter) GetPlantBySlug(ctx interface{}, slug interface{}) *mock.Call {
	return _e.mock.On("GetPlantBySlug", ctx, slug)
}

func (_m *MockCatalogUsecase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	ret := _m.Called(ctx)

	return returnValue[[]*entity.Category](ret, 0), ret.Error(1)
}

func (_e *MockCatalogUsecase_Expecter) ListCategories(ctx interface{}) *mock.Call {
	return _e.mock.On("ListCategories", ctx)
}

func (_m *MockCatalogUsecase) ListPlantPhotos(ctx context.Context, plantID uuid.UUID) ([]*entity.Photo, error) {
	ret := _m.Called(ctx, plantID)

	return returnValue[[]*entity.Photo](ret, 0), ret.Error(1)
}

func (_e *MockCatalogUsecase_Expecter) ListPlantPhotos(ctx interface{}, plantID interface{}) *mock.Call {
	return _e.mock.On("ListPlantPhotos", ctx, plantID)
}

func (_m *MockCatalogUsecase) PlantQRCode(ctx context.Context, plantID uuid.UUID) ([]byte, error) {
	ret := _m.Called(ctx, plantID)

	return returnValue[[]byte](ret, 0), ret.Error(1)
}

func (_e *MockCatalogUsecase_Expecter) PlantQRCode(ctx interface{}, plantID interface{}) *mock.Call {
	return _e.mock.On("PlantQRCode", ctx, plantID)
}

// NewMockCatalogUsecase registers a cleanup that asserts all expectations were met.
func NewMockCatalogUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCatalogUsecase {
	m := &MockCatalogUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockCatalogAdminUsecase is a testify mock of CatalogAdminUsecase.
type MockCatalogAdminUsecase struct {
	mock.Mock
}

type MockCatalogAdminUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCatalogAdminUsecase) EXPECT() *MockCatalogAdminUsecase_Expecter {
	return &MockCatalogAdminUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockCatalogAdminUsecase) ListAllPlants(ctx context.Context) ([]*entity.Plant, error) {
	ret := _m.Called(ctx)

	return returnValue[[]*entity.Plant](ret, 0), ret.Error(1)
}

func (_e *MockCatalogAdminUsecase_Expecter) ListAllPlants(ctx interface{}) *mock.Call {
	return _e.mock.On("ListAllPlants", ctx)
}

func (_m *MockCatalogAdminUsecase) CreatePlant(ctx context.Context, input *usecase.PlantInput) (*entity.Plant, error) {
	ret := _m.Called(ctx, input)

	return returnValue[*entity.Plant](ret, 0), ret.Error(1)
}

func (_e *MockCatalogAdminUsecase_Expecter) CreatePlant(ctx interface{}, input interface{}) *mock.Call {
	return _e.mock.On("CreatePlant", ctx, input)
}

func (_m *MockCatalogAdminUsecase) UpdatePlant(ctx context.Context, id uuid.UUID, input *usecase.PlantInput) (*entity.Plant, error) {
	ret := _m.Called(ctx, id, input)

	return returnValue[*entity.Plant](ret, 0), ret.Error(1)
}

func (_e *MockCatalogAdminUsecase_Expecter) UpdatePlant(ctx interface{}, id interface{}, input interface{}) *mock.Call {
	return _e.mock.On("UpdatePlant", ctx, id, input)
}

func (_m *MockCatalogAdminUsecase) DeletePlant(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockCatalogAdminUsecase_Expecter) DeletePlant(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("DeletePlant", ctx, id)
}

func (_m *MockCatalogAdminUsecase) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	ret := _m.Called(ctx, input)

	return returnValue[*entity.Category](ret, 0), ret.Error(1)
}

func (_e *MockCatalogAdminUsecase_Expecter) CreateCategory(ctx interface{}, input interface{}) *mock.Call {
	return _e.mock.On("CreateCategory", ctx, input)
}

func (_m *MockCatalogAdminUsecase) UpdateCategory(ctx context.Context, id uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	ret := _m.Called(ctx, id, input)

	return returnValue[*entity.Category](ret, 0), ret.Error(1)
}

func (_e *MockCatalogAdminUsecase_Expecter) UpdateCategory(ctx interface{}, id interface{}, input interface{}) *mock.Call {
	return _e.mock.On("UpdateCategory", ctx, id, input)
}

func (_m *MockCatalogAdminUsecase) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockCatalogAdminUsecase_Expecter) DeleteCategory(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("DeleteCategory", ctx, id)
}

func (_m *MockCatalogAdminUsecase) UploadPhoto(ctx context.Context, plantID uuid.UUID, upload *usecase.PhotoUpload) (*entity.Photo, error) {
	ret := _m.Called(ctx, plantID, upload)

	return returnValue[*entity.Photo](ret, 0), ret.Error(1)
}

func (_e *MockCatalogAdminUsecase_Expecter) UploadPhoto(ctx interface{}, plantID interface{}, upload interface{}) *mock.Call {
	return _e.mock.On("UploadPhoto", ctx, plantID, upload)
}

func (_m *MockCatalogAdminUsecase) DeletePhoto(ctx context.Context, photoID uuid.UUID) error {
	ret := _m.Called(ctx, photoID)

	return ret.Error(0)
}

func (_e *MockCatalogAdminUsecase_Expecter) DeletePhoto(ctx interface{}, photoID interface{}) *mock.Call {
	return _e.mock.On("DeletePhoto", ctx, photoID)
}

func (_m *MockCatalogAdminUsecase) OpenPhoto(ctx context.Context, key string) (io.ReadCloser, string, error) {
	ret := _m.Called(ctx, key)

	return returnValue[io.ReadCloser](ret, 0), returnValue[string](ret, 1), ret.Error(2)
}

func (_e *MockCatalogAdminUsecase_Expecter) OpenPhoto(ctx interface{}, key interface{}) *mock.Call {
	return _e.mock.On("OpenPhoto", ctx, key)
}

// NewMockCatalogAdminUsecase registers a cleanup that asserts all expectations were met.
func NewMockCatalogAdminUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCatalogAdminUsecase {
	m := &MockCatalogAdminUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockCartUsecase is a testify mock of CartUsecase.
type MockCartUsecase struct {
	mock.Mock
}

type MockCartUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCartUsecase) EXPECT() *MockCartUsecase_Expecter {
	return &MockCartUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockCartUsecase) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	ret := _m.Called(ctx, userID)

	return returnValue[*entity.Cart](ret, 0), ret.Error(1)
}

func (_e *MockCartUsecase_Expecter) GetCart(ctx interface{}, userID interface{}) *mock.Call {
	return _e.mock.On("GetCart", ctx, userID)
}

func (_m *MockCartUsecase) AddItem(ctx context.Context, userID uuid.UUID, plantID uuid.UUID, quantity int) (*entity.CartItem, error) {
	ret := _m.Called(ctx, userID, plantID, quantity)

	return returnValue[*entity.CartItem](ret, 0), ret.Error(1)
}

func (_e *MockCartUsecase_Expecter) AddItem(ctx interface{}, userID interface{}, plantID interface{}, quantity interface{}) *mock.Call {
	return _e.mock.On("AddItem", ctx, userID, plantID, quantity)
}

func (_m *MockCartUsecase) UpdateItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, quantity int) error {
	ret := _m.Called(ctx, userID, itemID, quantity)

	return ret.Error(0)
}

func (_e *MockCartUsecase_Expecter) UpdateItem(ctx interface{}, userID interface{}, itemID interface{}, quantity interface{}) *mock.Call {
	return _e.mock.On("UpdateItem", ctx, userID, itemID, quantity)
}

func (_m *MockCartUsecase) RemoveItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) error {
	ret := _m.Called(ctx, userID, itemID)

	return ret.Error(0)
}

func (_e *MockCartUsecase_Expecter) RemoveItem(ctx interface{}, userID interface{}, itemID interface{}) *mock.Call {
	return _e.mock.On("RemoveItem", ctx, userID, itemID)
}

func (_m *MockCartUsecase) ClearCart(ctx context.Context, userID uuid.UUID) error {
	ret := _m.Called(ctx, userID)

	return ret.Error(0)
}

func (_e *MockCartUsecase_Expecter) ClearCart(ctx interface{}, userID interface{}) *mock.Call {
	return _e.mock.On("ClearCart", ctx, userID)
}

// NewMockCartUsecase registers a cleanup that asserts all expectations were met.
func NewMockCartUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCartUsecase {
	m := &MockCartUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockCheckoutUsecase is a testify mock of CheckoutUsecase.
type MockCheckoutUsecase struct {
	mock.Mock
}

type MockCheckoutUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCheckoutUsecase) EXPECT() *MockCheckoutUsecase_Expecter {
	return &MockCheckoutUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockCheckoutUsecase) PlaceOrder(ctx context.Context, userID uuid.UUID, input *usecase.CheckoutInput) (*entity.Order, error) {
	ret := _m.Called(ctx, userID, input)

	return returnValue[*entity.Order](ret, 0), ret.Error(1)
}

func (_e *MockCheckoutUsecase_Expecter) PlaceOrder(ctx interface{}, userID interface{}, input interface{}) *mock.Call {
	return _e.mock.On("PlaceOrder", ctx, userID, input)
}

// NewMockCheckoutUsecase registers a cleanup that asserts all expectations were met.
func NewMockCheckoutUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCheckoutUsecase {
	m := &MockCheckoutUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockOrderUsecase is a testify mock of OrderUsecase.
type MockOrderUsecase struct {
	mock.Mock
}

type MockOrderUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockOrderUsecase) EXPECT() *MockOrderUsecase_Expecter {
	return &MockOrderUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockOrderUsecase) ListUserOrders(ctx context.Context, userID uuid.UUID, page repository.Page) (*usecase.OrderList, error) {
	ret := _m.Called(ctx, userID, page)

	return returnValue[*usecase.OrderList](ret, 0), ret.Error(1)
}

func (_e *MockOrderUsecase_Expecter) ListUserOrders(ctx interface{}, userID interface{}, page interface{}) *mock.Call {
	return _e.mock.On("ListUserOrders", ctx, userID, page)
}

func (_m *MockOrderUsecase) GetUserOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) (*entity.Order, error) {
	ret := _m.Called(ctx, userID, orderID)

	return returnValue[*entity.Order](ret, 0), ret.Error(1)
}

func (_e *MockOrderUsecase_Expecter) GetUserOrder(ctx interface{}, userID interface{}, orderID interface{}) *mock.Call {
	return _e.mock.On("GetUserOrder", ctx, userID, orderID)
}

func (_m *MockOrderUsecase) ListOrders(ctx context.Context, status *entity.OrderStatus, page repository.Page) (*usecase.OrderList, error) {
	ret := _m.Called(ctx, status, page)

	return returnValue[*usecase.OrderList](ret, 0), ret.Error(1)
}

func (_e *MockOrderUsecase_Expecter) ListOrders(ctx interface{}, status interface{}, page interface{}) *mock.Call {
	return _e.mock.On("ListOrders", ctx, status, page)
}

func (_m *MockOrderUsecase) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	ret := _m.Called(ctx, orderID, status)

	return returnValue[*entity.Order](ret, 0), ret.Error(1)
}

func (_e *MockOrderUsecase_Expecter) UpdateStatus(ctx interface{}, orderID interface{}, status interface{}) *mock.Call {
	return _e.mock.On("UpdateStatus", ctx, orderID, status)
}

// NewMockOrderUsecase registers a cleanup that asserts all expectations were met.
func NewMockOrderUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrderUsecase {
	m := &MockOrderUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockAdminUsecase is a testify mock of AdminUsecase.
type MockAdminUsecase struct {
	mock.Mock
}

type MockAdminUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAdminUsecase) EXPECT() *MockAdminUsecase_Expecter {
	return &MockAdminUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockAdminUsecase) CheckExists(ctx context.Context) (bool, error) {
	ret := _m.Called(ctx)

	return returnValue[bool](ret, 0), ret.Error(1)
}

func (_e *MockAdminUsecase_Expecter) CheckExists(ctx interface{}) *mock.Call {
	return _e.mock.On("CheckExists", ctx)
}

func (_m *MockAdminUsecase) CreateAdmin(ctx context.Context, input *usecase.CreateAdminInput, actorID *uuid.UUID) (*entity.AdminCredential, error) {
	ret := _m.Called(ctx, input, actorID)

	return returnValue[*entity.AdminCredential](ret, 0), ret.Error(1)
}

func (_e *MockAdminUsecase_Expecter) CreateAdmin(ctx interface{}, input interface{}, actorID interface{}) *mock.Call {
	return _e.mock.On("CreateAdmin", ctx, input, actorID)
}

func (_m *MockAdminUsecase) Login(ctx context.Context, username string, password string) (*usecase.LoginOutput, error) {
	ret := _m.Called(ctx, username, password)

	return returnValue[*usecase.LoginOutput](ret, 0), ret.Error(1)
}

func (_e *MockAdminUsecase_Expecter) Login(ctx interface{}, username interface{}, password interface{}) *mock.Call {
	return _e.mock.On("Login", ctx, username, password)
}

func (_m *MockAdminUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.AdminCredential, error) {
	ret := _m.Called(ctx, accessToken)

	return returnValue[*entity.AdminCredential](ret, 0), ret.Error(1)
}

func (_e *MockAdminUsecase_Expecter) Authenticate(ctx interface{}, accessToken interface{}) *mock.Call {
	return _e.mock.On("Authenticate", ctx, accessToken)
}

func (_m *MockAdminUsecase) Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	ret := _m.Called(ctx, refreshToken)

	return returnValue[*entity.TokenPair](ret, 0), ret.Error(1)
}

func (_e *MockAdminUsecase_Expecter) Refresh(ctx interface{}, refreshToken interface{}) *mock.Call {
	return _e.mock.On("Refresh", ctx, refreshToken)
}

// NewMockAdminUsecase registers a cleanup that asserts all expectations were met.
func NewMockAdminUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAdminUsecase {
	m := &MockAdminUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockUserUsecase is a testify mock of UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

type MockUserUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserUsecase) EXPECT() *MockUserUsecase_Expecter {
	return &MockUserUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockUserUsecase) EnsureUser(ctx context.Context, identity *service.Identity) (*entity.User, error) {
	ret := _m.Called(ctx, identity)

	return returnValue[*entity.User](ret, 0), ret.Error(1)
}

func (_e *MockUserUsecase_Expecter) EnsureUser(ctx interface{}, identity interface{}) *mock.Call {
	return _e.mock.On("EnsureUser", ctx, identity)
}

func (_m *MockUserUsecase) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ret := _m.Called(ctx, id)

	return returnValue[*entity.User](ret, 0), ret.Error(1)
}

func (_e *MockUserUsecase_Expecter) GetUser(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("GetUser", ctx, id)
}

func (_m *MockUserUsecase) UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName string) (*entity.User, error) {
	ret := _m.Called(ctx, id, displayName)

	return returnValue[*entity.User](ret, 0), ret.Error(1)
}

func (_e *MockUserUsecase_Expecter) UpdateDisplayName(ctx interface{}, id interface{}, displayName interface{}) *mock.Call {
	return _e.mock.On("UpdateDisplayName", ctx, id, displayName)
}

func (_m *MockUserUsecase) ListUsers(ctx context.Context, page repository.Page) (*usecase.UserList, error) {
	ret := _m.Called(ctx, page)

	return returnValue[*usecase.UserList](ret, 0), ret.Error(1)
}

func (_e *MockUserUsecase_Expecter) ListUsers(ctx interface{}, page interface{}) *mock.Call {
	return _e.mock.On("ListUsers", ctx, page)
}

func (_m *MockUserUsecase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockUserUsecase_Expecter) DeleteUser(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("DeleteUser", ctx, id)
}

// NewMockUserUsecase registers a cleanup that asserts all expectations were met.
func NewMockUserUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockWishlistUsecase is a testify mock of WishlistUsecase.
type MockWishlistUsecase struct {
	mock.Mock
}

type MockWishlistUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockWishlistUsecase) EXPECT() *MockWishlistUsecase_Expecter {
	return &MockWishlistUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockWishlistUsecase) List(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error) {
	ret := _m.Called(ctx, userID)

	return returnValue[[]*entity.WishlistItem](ret, 0), ret.Error(1)
}

func (_e *MockWishlistUsecase_Expecter) List(ctx interface{}, userID interface{}) *mock.Call {
	return _e.mock.On("List", ctx, userID)
}

func (_m *MockWishlistUsecase) Add(ctx context.Context, userID uuid.UUID, plantID uuid.UUID) (*entity.WishlistItem, error) {
	ret := _m.Called(ctx, userID, plantID)

	return returnValue[*entity.WishlistItem](ret, 0), ret.Error(1)
}

func (_e *MockWishlistUsecase_Expecter) Add(ctx interface{}, userID interface{}, plantID interface{}) *mock.Call {
	return _e.mock.On("Add", ctx, userID, plantID)
}

func (_m *MockWishlistUsecase) Remove(ctx context.Context, userID uuid.UUID, plantID uuid.UUID) error {
	ret := _m.Called(ctx, userID, plantID)

	return ret.Error(0)
}

func (_e *MockWishlistUsecase_Expecter) Remove(ctx interface{}, userID interface{}, plantID interface{}) *mock.Call {
	return _e.mock.On("Remove", ctx, userID, plantID)
}

// NewMockWishlistUsecase registers a cleanup that asserts all expectations were met.
func NewMockWishlistUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWishlistUsecase {
	m := &MockWishlistUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockNewsletterUsecase is a testify mock of NewsletterUsecase.
type MockNewsletterUsecase struct {
	mock.Mock
}

type MockNewsletterUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockNewsletterUsecase) EXPECT() *MockNewsletterUsecase_Expecter {
	return &MockNewsletterUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockNewsletterUsecase) Subscribe(ctx context.Context, email string) (*entity.NewsletterSubscriber, error) {
	ret := _m.Called(ctx, email)

	return returnValue[*entity.NewsletterSubscriber](ret, 0), ret.Error(1)
}

func (_e *MockNewsletterUsecase_Expecter) Subscribe(ctx interface{}, email interface{}) *mock.Call {
	return _e.mock.On("Subscribe", ctx, email)
}

func (_m *MockNewsletterUsecase) List(ctx context.Context, page repository.Page) (*usecase.SubscriberList, error) {
	ret := _m.Called(ctx, page)

	return returnValue[*usecase.SubscriberList](ret, 0), ret.Error(1)
}

func (_e *MockNewsletterUsecase_Expecter) List(ctx interface{}, page interface{}) *mock.Call {
	return _e.mock.On("List", ctx, page)
}

func (_m *MockNewsletterUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockNewsletterUsecase_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// NewMockNewsletterUsecase registers a cleanup that asserts all expectations were met.
func NewMockNewsletterUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNewsletterUsecase {
	m := &MockNewsletterUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockContentUsecase is a testify mock of ContentUsecase.
type MockContentUsecase struct {
	mock.Mock
}

type MockContentUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockContentUsecase) EXPECT() *MockContentUsecase_Expecter {
	return &MockContentUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockContentUsecase) Get(ctx context.Context, key string) (*entity.SiteContent, error) {
	ret := _m.Called(ctx, key)

	return returnValue[*entity.SiteContent](ret, 0), ret.Error(1)
}

func (_e *MockContentUsecase_Expecter) Get(ctx interface{}, key interface{}) *mock.Call {
	return _e.mock.On("Get", ctx, key)
}

func (_m *MockContentUsecase) List(ctx context.Context) ([]*entity.SiteContent, error) {
	ret := _m.Called(ctx)

	return returnValue[[]*entity.SiteContent](ret, 0), ret.Error(1)
}

func (_e *MockContentUsecase_Expecter) List(ctx interface{}) *mock.Call {
	return _e.mock.On("List", ctx)
}

func (_m *MockContentUsecase) Upsert(ctx context.Context, key string, input *usecase.ContentInput) (*entity.SiteContent, error) {
	ret := _m.Called(ctx, key, input)

	return returnValue[*entity.SiteContent](ret, 0), ret.Error(1)
}

func (_e *MockContentUsecase_Expecter) Upsert(ctx interface{}, key interface{}, input interface{}) *mock.Call {
	return _e.mock.On("Upsert", ctx, key, input)
}

func (_m *MockContentUsecase) Delete(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	return ret.Error(0)
}

func (_e *MockContentUsecase_Expecter) Delete(ctx interface{}, key interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, key)
}

// NewMockContentUsecase registers a cleanup that asserts all expectations were met.
func NewMockContentUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockContentUsecase {
	m := &MockContentUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockDeviceUsecase is a testify mock of DeviceUsecase.
type MockDeviceUsecase struct {
	mock.Mock
}

type MockDeviceUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockDeviceUsecase) EXPECT() *MockDeviceUsecase_Expecter {
	return &MockDeviceUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockDeviceUsecase) RegisterDevice(ctx context.Context, userID uuid.UUID, info *usecase.DeviceInfo) (*entity.UserDevice, error) {
	ret := _m.Called(ctx, userID, info)

	return returnValue[*entity.UserDevice](ret, 0), ret.Error(1)
}

func (_e *MockDeviceUsecase_Expecter) RegisterDevice(ctx interface{}, userID interface{}, info interface{}) *mock.Call {
	return _e.mock.On("RegisterDevice", ctx, userID, info)
}

// NewMockDeviceUsecase registers a cleanup that asserts all expectations were met.
func NewMockDeviceUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDeviceUsecase {
	m := &MockDeviceUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockNotificationUsecase is a testify mock of NotificationUsecase.
type MockNotificationUsecase struct {
	mock.Mock
}

type MockNotificationUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockNotificationUsecase) EXPECT() *MockNotificationUsecase_Expecter {
	return &MockNotificationUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockNotificationUsecase) HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	ret := _m.Called(ctx, event)

	return ret.Error(0)
}

func (_e *MockNotificationUsecase_Expecter) HandleOrderEvent(ctx interface{}, event interface{}) *mock.Call {
	return _e.mock.On("HandleOrderEvent", ctx, event)
}

// NewMockNotificationUsecase registers a cleanup that asserts all expectations were met.
func NewMockNotificationUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNotificationUsecase {
	m := &MockNotificationUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
