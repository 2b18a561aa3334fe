package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"verdeluxe/config"
	deliverycontext "verdeluxe/internal/delivery/context"
	httpmiddleware "verdeluxe/internal/delivery/http/middleware"
	"verdeluxe/internal/delivery/http/router"
	"verdeluxe/internal/delivery/http/router/handler"
	"verdeluxe/internal/domain/entity"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/domain/repository"
	"verdeluxe/internal/domain/service"
	"verdeluxe/internal/errors"
	mockService "verdeluxe/internal/mocks/service"
	mockUsecase "verdeluxe/internal/mocks/usecase"
	"verdeluxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeHealthChecker struct {
	err error
}

func (f *fakeHealthChecker) Check(context.Context) error {
	return f.err
}

type apiFixtures struct {
	echo         *echo.Echo
	health       *fakeHealthChecker
	verifier     *mockService.MockIdentityVerifier
	catalogUC    *mockUsecase.MockCatalogUsecase
	catalogAdmin *mockUsecase.MockCatalogAdminUsecase
	cartUC       *mockUsecase.MockCartUsecase
	checkoutUC   *mockUsecase.MockCheckoutUsecase
	orderUC      *mockUsecase.MockOrderUsecase
	userUC       *mockUsecase.MockUserUsecase
	adminUC      *mockUsecase.MockAdminUsecase
	wishlistUC   *mockUsecase.MockWishlistUsecase
	newsletterUC *mockUsecase.MockNewsletterUsecase
	contentUC    *mockUsecase.MockContentUsecase
	deviceUC     *mockUsecase.MockDeviceUsecase
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func createTestAPI(t *testing.T, opts ...func(cfg *config.Config)) *apiFixtures {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	cfg := &config.Config{}
	cfg.HTTP.AllowOrigins = []string{"*"}
	cfg.HTTP.MaxRequestBodySize = "1M"
	for _, opt := range opts {
		opt(cfg)
	}

	fx := &apiFixtures{
		health:       &fakeHealthChecker{},
		verifier:     mockService.NewMockIdentityVerifier(t),
		catalogUC:    mockUsecase.NewMockCatalogUsecase(t),
		catalogAdmin: mockUsecase.NewMockCatalogAdminUsecase(t),
		cartUC:       mockUsecase.NewMockCartUsecase(t),
		checkoutUC:   mockUsecase.NewMockCheckoutUsecase(t),
		orderUC:      mockUsecase.NewMockOrderUsecase(t),
		userUC:       mockUsecase.NewMockUserUsecase(t),
		adminUC:      mockUsecase.NewMockAdminUsecase(t),
		wishlistUC:   mockUsecase.NewMockWishlistUsecase(t),
		newsletterUC: mockUsecase.NewMockNewsletterUsecase(t),
		contentUC:    mockUsecase.NewMockContentUsecase(t),
		deviceUC:     mockUsecase.NewMockDeviceUsecase(t),
	}

	params := router.RouterParams{
		HealthHandler:       handler.NewHealthHandler(fx.health, logger),
		CatalogHandler:      handler.NewCatalogHandler(fx.catalogUC, fx.catalogAdmin),
		CatalogAdminHandler: handler.NewCatalogAdminHandler(fx.catalogAdmin),
		CartHandler:         handler.NewCartHandler(fx.cartUC, fx.checkoutUC),
		OrderHandler:        handler.NewOrderHandler(fx.orderUC),
		UserHandler:         handler.NewUserHandler(fx.userUC),
		AdminHandler: handler.NewAdminHandler(handler.AdminHandlerParams{
			AdminUC: fx.adminUC,
			Logger:  logger,
		}),
		StorefrontHandler: handler.NewStorefrontHandler(handler.StorefrontHandlerParams{
			WishlistUC:   fx.wishlistUC,
			NewsletterUC: fx.newsletterUC,
			ContentUC:    fx.contentUC,
			DeviceUC:     fx.deviceUC,
		}),
		AuthMiddleware: httpmiddleware.NewAuthMiddleware(fx.adminUC),
		CustomerAuthMiddleware: httpmiddleware.NewCustomerAuthMiddleware(httpmiddleware.CustomerAuthMiddlewareParams{
			Verifier: fx.verifier,
			UserUC:   fx.userUC,
			Logger:   logger,
		}),
	}

	fx.echo = NewEcho(cfg, logger)
	router.NewRouter(params).RegisterRoutes(fx.echo)

	return fx
}

func (fx *apiFixtures) do(t *testing.T, method, target, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

// signIn makes the Firebase middleware accept "customer-token" as user.
func (fx *apiFixtures) signIn(user *entity.User) map[string]string {
	identity := &service.Identity{UID: user.FirebaseUID, Email: user.Email}
	fx.verifier.EXPECT().VerifyIDToken(mock.Anything, "customer-token").Return(identity, nil).Once()
	fx.userUC.EXPECT().EnsureUser(mock.Anything, identity).Return(user, nil).Once()

	return map[string]string{echo.HeaderAuthorization: "Bearer customer-token"}
}

// signInAdmin makes the JWT middleware accept "admin-token".
func (fx *apiFixtures) signInAdmin(admin *entity.AdminCredential) map[string]string {
	fx.adminUC.EXPECT().Authenticate(mock.Anything, "admin-token").Return(admin, nil).Once()

	return map[string]string{echo.HeaderAuthorization: "Bearer admin-token"}
}

func TestAPI_Health(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	fx.health.err = errors.New("connection refused")
	rec, env = fx.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "UNHEALTHY", env.Error.Code)
}

func TestAPI_RequestIDIsEchoed(t *testing.T) {
	fx := createTestAPI(t)

	rec, _ := fx.do(t, http.MethodGet, "/health", "", map[string]string{deliverycontext.HeaderXRequestID: "req-42"})
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestAPI_ListPlantsFilters(t *testing.T) {
	fx := createTestAPI(t)

	categoryID := uuid.New()
	plant := &entity.CatalogPlant{Plant: &entity.Plant{ID: uuid.New(), Name: "Monstera", Price: decimal.RequireFromString("29.99"), IsActive: true}}
	fx.catalogUC.EXPECT().ListPlants(mock.Anything, mock.MatchedBy(func(f entity.PlantFilter) bool {
		return f.CategoryID != nil && *f.CategoryID == categoryID && f.Featured != nil && *f.Featured && !f.IncludeInactive
	})).Return([]*entity.CatalogPlant{plant}, nil).Once()

	rec, env := fx.do(t, http.MethodGet, "/api/plants?categoryId="+categoryID.String()+"&featured=true", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var plants []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &plants))
	require.Len(t, plants, 1)
	assert.Equal(t, "Monstera", plants[0]["name"])
}

func TestAPI_ListPlantsRejectsBadQuery(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodGet, "/api/plants?categoryId=not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, env = fx.do(t, http.MethodGet, "/api/plants?featured=maybe", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestAPI_PlantBySlugAndNotFound(t *testing.T) {
	fx := createTestAPI(t)

	fx.catalogUC.EXPECT().GetPlantBySlug(mock.Anything, "fiddle-leaf-fig").Return(nil, domainerrors.ErrPlantNotFound).Once()

	rec, env := fx.do(t, http.MethodGet, "/api/plants/slug/fiddle-leaf-fig", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, domainerrors.ErrPlantNotFound.ErrorCode(), env.Error.Code)
}

func TestAPI_PlantQRCodeIsPNG(t *testing.T) {
	fx := createTestAPI(t)

	plantID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}
	fx.catalogUC.EXPECT().PlantQRCode(mock.Anything, plantID).Return(png, nil).Once()

	rec, _ := fx.do(t, http.MethodGet, "/api/plants/"+plantID.String()+"/qrcode", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestAPI_ServeUpload(t *testing.T) {
	fx := createTestAPI(t)

	key := "plants/" + uuid.NewString() + "/photo.jpg"
	fx.catalogAdmin.EXPECT().OpenPhoto(mock.Anything, key).
		Return(io.NopCloser(strings.NewReader("jpeg-bytes")), "image/jpeg", nil).Once()

	rec, _ := fx.do(t, http.MethodGet, "/uploads/"+key, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "jpeg-bytes", rec.Body.String())
}

func TestAPI_CustomerRoutesRequireToken(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodGet, "/api/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)

	fx.verifier.EXPECT().VerifyIDToken(mock.Anything, "expired").Return(nil, domainerrors.ErrIdentityTokenInvalid).Once()
	rec, env = fx.do(t, http.MethodGet, "/api/cart", "", map[string]string{echo.HeaderAuthorization: "Bearer expired"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, domainerrors.ErrIdentityTokenInvalid.ErrorCode(), env.Error.Code)
}

func TestAPI_GetCart(t *testing.T) {
	fx := createTestAPI(t)

	user := &entity.User{ID: uuid.New(), FirebaseUID: "fb-1", Email: "ivy@example.com"}
	headers := fx.signIn(user)
	fx.cartUC.EXPECT().GetCart(mock.Anything, user.ID).Return(entity.NewCart(nil), nil).Once()

	rec, env := fx.do(t, http.MethodGet, "/api/cart", "", headers)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"items":[],"totalItems":0,"totalPrice":"0"}`, string(env.Data))
}

func TestAPI_AddCartItemValidation(t *testing.T) {
	fx := createTestAPI(t)

	user := &entity.User{ID: uuid.New(), FirebaseUID: "fb-1"}
	headers := fx.signIn(user)

	body := `{"plantId":"` + uuid.NewString() + `","quantity":0}`
	rec, env := fx.do(t, http.MethodPost, "/api/cart/items", body, headers)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "Quantity")
}

func TestAPI_AddCartItem(t *testing.T) {
	fx := createTestAPI(t)

	user := &entity.User{ID: uuid.New(), FirebaseUID: "fb-1"}
	plantID := uuid.New()
	headers := fx.signIn(user)
	fx.cartUC.EXPECT().AddItem(mock.Anything, user.ID, plantID, 2).
		Return(&entity.CartItem{ID: uuid.New(), UserID: user.ID, PlantID: plantID, Quantity: 2}, nil).Once()

	rec, env := fx.do(t, http.MethodPost, "/api/cart/items", `{"plantId":"`+plantID.String()+`","quantity":2}`, headers)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
}

func TestAPI_CheckoutEmptyCart(t *testing.T) {
	fx := createTestAPI(t)

	user := &entity.User{ID: uuid.New(), FirebaseUID: "fb-1"}
	headers := fx.signIn(user)
	fx.checkoutUC.EXPECT().PlaceOrder(mock.Anything, user.ID, mock.AnythingOfType("*usecase.CheckoutInput")).
		Return(nil, domainerrors.ErrEmptyCart).Once()

	body := `{
		"shippingAddress":{"fullName":"Ivy Green","email":"ivy@example.com","address":"1 Fern St","city":"Portland","zipCode":"97201","country":"US"},
		"payment":{"method":"card","cardholderName":"Ivy Green","cardLast4":"4242"}
	}`
	rec, env := fx.do(t, http.MethodPost, "/api/checkout", body, headers)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EMPTY_CART", env.Error.Code)
}

func TestAPI_CheckoutRejectsMissingAddress(t *testing.T) {
	fx := createTestAPI(t)

	headers := fx.signIn(&entity.User{ID: uuid.New(), FirebaseUID: "fb-1"})

	body := `{"payment":{"method":"card","cardholderName":"Ivy Green","cardLast4":"4242"}}`
	rec, env := fx.do(t, http.MethodPost, "/api/checkout", body, headers)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestAPI_AdminRoutesRequireToken(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodGet, "/api/admin/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_INVALID", env.Error.Code)

	fx.adminUC.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, domainerrors.ErrTokenInvalid).Once()
	rec, _ = fx.do(t, http.MethodGet, "/api/admin/orders", "", map[string]string{echo.HeaderAuthorization: "Bearer stale"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_AdminListOrdersByStatus(t *testing.T) {
	fx := createTestAPI(t)

	headers := fx.signInAdmin(&entity.AdminCredential{ID: uuid.New(), Username: "root"})
	fx.orderUC.EXPECT().ListOrders(mock.Anything, mock.MatchedBy(func(s *entity.OrderStatus) bool {
		return s != nil && *s == entity.OrderStatusShipped
	}), repository.Page{Limit: 10, Offset: 20}).Return(&usecase.OrderList{Orders: []*entity.Order{}, Total: 0}, nil).Once()

	rec, env := fx.do(t, http.MethodGet, "/api/admin/orders?status=shipped&limit=10&offset=20", "", headers)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestAPI_AdminUpdateOrderStatusConflict(t *testing.T) {
	fx := createTestAPI(t)

	orderID := uuid.New()
	headers := fx.signInAdmin(&entity.AdminCredential{ID: uuid.New(), Username: "root"})
	fx.orderUC.EXPECT().UpdateStatus(mock.Anything, orderID, entity.OrderStatusPending).
		Return(nil, domainerrors.ErrInvalidStatusTransition.WithDetails("delivered -> pending")).Once()

	rec, env := fx.do(t, http.MethodPut, "/api/admin/orders/"+orderID.String()+"/status", `{"status":"pending"}`, headers)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", env.Error.Code)
	assert.Equal(t, "delivered -> pending", env.Error.Details)
}

func TestAPI_AdminCheckExistsIsPublic(t *testing.T) {
	fx := createTestAPI(t)

	fx.adminUC.EXPECT().CheckExists(mock.Anything).Return(false, nil).Once()

	rec, env := fx.do(t, http.MethodGet, "/api/admin/check-exists", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"exists":false}`, string(env.Data))
}

func TestAPI_AdminCreateWithActor(t *testing.T) {
	fx := createTestAPI(t)

	actor := &entity.AdminCredential{ID: uuid.New(), Username: "root"}
	fx.adminUC.EXPECT().Authenticate(mock.Anything, "admin-token").Return(actor, nil).Once()
	fx.adminUC.EXPECT().CreateAdmin(mock.Anything, &usecase.CreateAdminInput{
		Username: "second",
		Email:    "second@example.com",
		Password: "Greenhouse42",
	}, &actor.ID).Return(&entity.AdminCredential{ID: uuid.New(), Username: "second"}, nil).Once()

	body := `{"username":"second","email":"second@example.com","password":"Greenhouse42"}`
	rec, env := fx.do(t, http.MethodPost, "/api/admin/create", body, map[string]string{echo.HeaderAuthorization: "Bearer admin-token"})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
}

func TestAPI_UnhandledErrorsAreHidden(t *testing.T) {
	fx := createTestAPI(t)

	fx.catalogUC.EXPECT().ListCategories(mock.Anything).Return(nil, errors.New("pq: relation does not exist")).Once()

	rec, env := fx.do(t, http.MethodGet, "/api/categories", "", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestAPI_DatabaseErrorDetailsAreHidden(t *testing.T) {
	fx := createTestAPI(t)

	fx.contentUC.EXPECT().Get(mock.Anything, "about").
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "select site_content")).Once()

	rec, env := fx.do(t, http.MethodGet, "/api/content/about", "", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, env.Error.Details)
}

func TestAPI_OversizePhotoReachesUploadCheck(t *testing.T) {
	fx := createTestAPI(t, func(cfg *config.Config) { cfg.HTTP.MaxRequestBodySize = "12MB" })

	admin := &entity.AdminCredential{ID: uuid.New(), Username: "root"}
	headers := fx.signInAdmin(admin)
	plantID := uuid.New()
	tooLarge := domainerrors.ErrPhotoTooLarge.WithDetails("limit is 10.00 MB")
	fx.catalogAdmin.EXPECT().
		UploadPhoto(mock.Anything, plantID, mock.MatchedBy(func(upload *usecase.PhotoUpload) bool {
			return upload.Size == 10<<20+1
		})).
		Return(nil, tooLarge).Once()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("photo", "monstera.png")
	require.NoError(t, err)
	_, err = part.Write(make([]byte, 10<<20+1))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/plants/"+plantID.String()+"/photos", &body)
	req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "PHOTO_TOO_LARGE", env.Error.Code)
}

func TestAPI_NewsletterSubscribe(t *testing.T) {
	fx := createTestAPI(t)

	fx.newsletterUC.EXPECT().Subscribe(mock.Anything, "fern@example.com").
		Return(&entity.NewsletterSubscriber{ID: uuid.New(), Email: "fern@example.com", IsActive: true}, nil).Once()

	rec, env := fx.do(t, http.MethodPost, "/api/newsletter", `{"email":"fern@example.com"}`, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)

	rec, env = fx.do(t, http.MethodPost, "/api/newsletter", `{"email":"not-an-email"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}
