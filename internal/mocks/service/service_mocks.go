// Package service holds hand-written testify mocks of the domain service
// interfaces.
package service

import (
	"context"
	"io"
	"time"

	"verdeluxe/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func returnValue[T any](args mock.Arguments, index int) T {
	value, _ := args.Get(index).(T)

	return value
}

// MockEventPublisher is a testify mock of EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

type MockEventPublisher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventPublisher) EXPECT() *MockEventPublisher_Expecter {
	return &MockEventPublisher_Expecter{mock: &_m.Mock}
}

func (_m *MockEventPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	ret := _m.Called(ctx, event)

	return ret.Error(0)
}

func (_e *MockEventPublisher_Expecter) PublishOrderEvent(ctx interface{}, event interface{}) *mock.Call {
	return _e.mock.On("PublishOrderEvent", ctx, event)
}

func (_m *MockEventPublisher) Close() error {
	ret := _m.Called()

	return ret.Error(0)
}

func (_e *MockEventPublisher_Expecter) Close() *mock.Call {
	return _e.mock.On("Close")
}

// NewMockEventPublisher registers a cleanup that asserts all expectations were met.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockNotificationService is a testify mock of NotificationService.
type MockNotificationService struct {
	mock.Mock
}

type MockNotificationService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockNotificationService) EXPECT() *MockNotificationService_Expecter {
	return &MockNotificationService_Expecter{mock: &_m.Mock}
}

func (_m *MockNotificationService) SendBatchNotification(ctx context.Context, tokens []string, title string, body string, data map[string]string) (int, int, []string, error) {
	ret := _m.Called(ctx, tokens, title, body, data)

	return returnValue[int](ret, 0), returnValue[int](ret, 1), returnValue[[]string](ret, 2), ret.Error(3)
}

func (_e *MockNotificationService_Expecter) SendBatchNotification(ctx interface{}, tokens interface{}, title interface{}, body interface{}, data interface{}) *mock.Call {
	return _e.mock.On("SendBatchNotification", ctx, tokens, title, body, data)
}

func (_m *MockNotificationService) SendSingleNotification(ctx context.Context, token string, title string, body string, data map[string]string) error {
	ret := _m.Called(ctx, token, title, body, data)

	return ret.Error(0)
}

func (_e *MockNotificationService_Expecter) SendSingleNotification(ctx interface{}, token interface{}, title interface{}, body interface{}, data interface{}) *mock.Call {
	return _e.mock.On("SendSingleNotification", ctx, token, title, body, data)
}

// NewMockNotificationService registers a cleanup that asserts all expectations were met.
func NewMockNotificationService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNotificationService {
	m := &MockNotificationService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockPasswordHasher is a testify mock of PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

type MockPasswordHasher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPasswordHasher) EXPECT() *MockPasswordHasher_Expecter {
	return &MockPasswordHasher_Expecter{mock: &_m.Mock}
}

func (_m *MockPasswordHasher) Hash(password string) (string, error) {
	ret := _m.Called(password)

	return returnValue[string](ret, 0), ret.Error(1)
}

func (_e *MockPasswordHasher_Expecter) Hash(password interface{}) *mock.Call {
	return _e.mock.On("Hash", password)
}

func (_m *MockPasswordHasher) Check(password string, hash string) bool {
	ret := _m.Called(password, hash)

	return returnValue[bool](ret, 0)
}

func (_e *MockPasswordHasher_Expecter) Check(password interface{}, hash interface{}) *mock.Call {
	return _e.mock.On("Check", password, hash)
}

func (_m *MockPasswordHasher) ValidatePasswordStrength(password string) error {
	ret := _m.Called(password)

	return ret.Error(0)
}

func (_e *MockPasswordHasher_Expecter) ValidatePasswordStrength(password interface{}) *mock.Call {
	return _e.mock.On("ValidatePasswordStrength", password)
}

// NewMockPasswordHasher registers a cleanup that asserts all expectations were met.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockTokenService is a testify mock of TokenService.
type MockTokenService struct {
	mock.Mock
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

func (_m *MockTokenService) GenerateTokens(userID uuid.UUID, roles []string) (string, string, error) {
	ret := _m.Called(userID, roles)

	return returnValue[string](ret, 0), returnValue[string](ret, 1), ret.Error(2)
}

func (_e *MockTokenService_Expecter) GenerateTokens(userID interface{}, roles interface{}) *mock.Call {
	return _e.mock.On("GenerateTokens", userID, roles)
}

func (_m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	ret := _m.Called(tokenString)

	return returnValue[*service.Claims](ret, 0), ret.Error(1)
}

func (_e *MockTokenService_Expecter) ValidateToken(tokenString interface{}) *mock.Call {
	return _e.mock.On("ValidateToken", tokenString)
}

func (_m *MockTokenService) GetAccessTokenDuration() time.Duration {
	ret := _m.Called()

	return returnValue[time.Duration](ret, 0)
}

func (_e *MockTokenService_Expecter) GetAccessTokenDuration() *mock.Call {
	return _e.mock.On("GetAccessTokenDuration")
}

// NewMockTokenService registers a cleanup that asserts all expectations were met.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockIdentityVerifier is a testify mock of IdentityVerifier.
type MockIdentityVerifier struct {
	mock.Mock
}

type MockIdentityVerifier_Expecter struct {
	mock *mock.Mock
}

func (_m *MockIdentityVerifier) EXPECT() *MockIdentityVerifier_Expecter {
	return &MockIdentityVerifier_Expecter{mock: &_m.Mock}
}

func (_m *MockIdentityVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.Identity, error) {
	ret := _m.Called(ctx, idToken)

	return returnValue[*service.Identity](ret, 0), ret.Error(1)
}

func (_e *MockIdentityVerifier_Expecter) VerifyIDToken(ctx interface{}, idToken interface{}) *mock.Call {
	return _e.mock.On("VerifyIDToken", ctx, idToken)
}

// NewMockIdentityVerifier registers a cleanup that asserts all expectations were met.
func NewMockIdentityVerifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdentityVerifier {
	m := &MockIdentityVerifier{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockPhotoStorage is a testify mock of PhotoStorage.
type MockPhotoStorage struct {
	mock.Mock
}

type MockPhotoStorage_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPhotoStorage) EXPECT() *MockPhotoStorage_Expecter {
	return &MockPhotoStorage_Expecter{mock: &_m.Mock}
}

func (_m *MockPhotoStorage) Put(ctx context.Context, key string, contentType string, r io.Reader) (int64, error) {
	ret := _m.Called(ctx, key, contentType, r)

	return returnValue[int64](ret, 0), ret.Error(1)
}

func (_e *MockPhotoStorage_Expecter) Put(ctx interface{}, key interface{}, contentType interface{}, r interface{}) *mock.Call {
	return _e.mock.On("Put", ctx, key, contentType, r)
}

func (_m *MockPhotoStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	ret := _m.Called(ctx, key)

	return returnValue[io.ReadCloser](ret, 0), returnValue[string](ret, 1), ret.Error(2)
}

func (_e *MockPhotoStorage_Expecter) Open(ctx interface{}, key interface{}) *mock.Call {
	return _e.mock.On("Open", ctx, key)
}

func (_m *MockPhotoStorage) Delete(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	return ret.Error(0)
}

func (_e *MockPhotoStorage_Expecter) Delete(ctx interface{}, key interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, key)
}

func (_m *MockPhotoStorage) URL(key string) string {
	ret := _m.Called(key)

	return returnValue[string](ret, 0)
}

func (_e *MockPhotoStorage_Expecter) URL(key interface{}) *mock.Call {
	return _e.mock.On("URL", key)
}

// NewMockPhotoStorage registers a cleanup that asserts all expectations were met.
func NewMockPhotoStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPhotoStorage {
	m := &MockPhotoStorage{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockPaymentGateway is a testify mock of PaymentGateway.
type MockPaymentGateway struct {
	mock.Mock
}

type MockPaymentGateway_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPaymentGateway) EXPECT() *MockPaymentGateway_Expecter {
	return &MockPaymentGateway_Expecter{mock: &_m.Mock}
}

func (_m *MockPaymentGateway) Charge(ctx context.Context, req *service.PaymentRequest) (*service.PaymentResult, error) {
	ret := _m.Called(ctx, req)

	return returnValue[*service.PaymentResult](ret, 0), ret.Error(1)
}

func (_e *MockPaymentGateway_Expecter) Charge(ctx interface{}, req interface{}) *mock.Call {
	return _e.mock.On("Charge", ctx, req)
}

// NewMockPaymentGateway registers a cleanup that asserts all expectations were met.
func NewMockPaymentGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentGateway {
	m := &MockPaymentGateway{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockQRCodeService is a testify mock of QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

type MockQRCodeService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQRCodeService) EXPECT() *MockQRCodeService_Expecter {
	return &MockQRCodeService_Expecter{mock: &_m.Mock}
}

func (_m *MockQRCodeService) GeneratePlantARQR(slug string) ([]byte, error) {
	ret := _m.Called(slug)

	return returnValue[[]byte](ret, 0), ret.Error(1)
}

func (_e *MockQRCodeService_Expecter) GeneratePlantARQR(slug interface{}) *mock.Call {
	return _e.mock.On("GeneratePlantARQR", slug)
}

func (_m *MockQRCodeService) PlantARURL(slug string) string {
	ret := _m.Called(slug)

	return returnValue[string](ret, 0)
}

func (_e *MockQRCodeService_Expecter) PlantARURL(slug interface{}) *mock.Call {
	return _e.mock.On("PlantARURL", slug)
}

// NewMockQRCodeService registers a cleanup that asserts all expectations were met.
func NewMockQRCodeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockLegacySource is a testify mock of LegacySource.
type MockLegacySource struct {
	mock.Mock
}

type MockLegacySource_Expecter struct {
	mock *mock.Mock
}

func (_m *MockLegacySource) EXPECT() *MockLegacySource_Expecter {
	return &MockLegacySource_Expecter{mock: &_m.Mock}
}

func (_m *MockLegacySource) Snapshot(ctx context.Context) (*service.LegacySnapshot, error) {
	ret := _m.Called(ctx)

	return returnValue[*service.LegacySnapshot](ret, 0), ret.Error(1)
}

func (_e *MockLegacySource_Expecter) Snapshot(ctx interface{}) *mock.Call {
	return _e.mock.On("Snapshot", ctx)
}

func (_m *MockLegacySource) Close() error {
	ret := _m.Called()

	return ret.Error(0)
}

func (_e *MockLegacySource_Expecter) Close() *mock.Call {
	return _e.mock.On("Close")
}

// NewMockLegacySource registers a cleanup that asserts all expectations were met.
func NewMockLegacySource(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLegacySource {
	m := &MockLegacySource{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
