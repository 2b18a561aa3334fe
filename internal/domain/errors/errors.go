package errors

import (
	"net/http"

	"verdeluxe/internal/errors"
)

// AppError is an error that knows how it should be presented to API clients.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Optional detail
}

// BaseError is the default AppError implementation.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// Is matches errors by business code so that WithDetails copies still
// satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WithDetails returns a copy of the error carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

var (
	// Customer identity
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"sign in required",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrIdentityTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"IDENTITY_TOKEN_INVALID",
		"invalid or expired identity token",
		"",
	)

	// Catalog
	ErrPlantNotFound = NewBaseError(
		http.StatusNotFound,
		"PLANT_NOT_FOUND",
		"plant not found",
		"",
	)

	ErrPlantSlugTaken = NewBaseError(
		http.StatusConflict,
		"PLANT_SLUG_TAKEN",
		"a plant with this slug already exists",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"category not found",
		"",
	)

	ErrCategorySlugTaken = NewBaseError(
		http.StatusConflict,
		"CATEGORY_SLUG_TAKEN",
		"a category with this slug already exists",
		"",
	)

	ErrPhotoNotFound = NewBaseError(
		http.StatusNotFound,
		"PHOTO_NOT_FOUND",
		"photo not found",
		"",
	)

	ErrUnsupportedMediaType = NewBaseError(
		http.StatusUnsupportedMediaType,
		"UNSUPPORTED_MEDIA_TYPE",
		"only jpeg, png, webp and gif images are accepted",
		"",
	)

	ErrPhotoTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"PHOTO_TOO_LARGE",
		"photo exceeds the maximum upload size",
		"",
	)

	// Cart
	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"cart item not found",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"quantity must be at least 1",
		"",
	)

	ErrPlantUnavailable = NewBaseError(
		http.StatusUnprocessableEntity,
		"PLANT_UNAVAILABLE",
		"plant is not available for purchase",
		"",
	)

	// Checkout and orders
	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"your cart is empty",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"not enough stock for one or more items",
		"",
	)

	ErrPaymentFailed = NewBaseError(
		http.StatusPaymentRequired,
		"PAYMENT_FAILED",
		"payment failed",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"order not found",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"order status change is not allowed",
		"",
	)

	// Admin
	ErrAdminAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ADMIN_ALREADY_EXISTS",
		"an admin account already exists",
		"",
	)

	ErrAdminUsernameTaken = NewBaseError(
		http.StatusConflict,
		"ADMIN_USERNAME_TAKEN",
		"username is already in use",
		"",
	)

	ErrAdminNotFound = NewBaseError(
		http.StatusNotFound,
		"ADMIN_NOT_FOUND",
		"admin not found",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid username or password",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"invalid or expired token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"password is too weak",
		"",
	)

	// Wishlist, newsletter, content, devices
	ErrWishlistItemNotFound = NewBaseError(
		http.StatusNotFound,
		"WISHLIST_ITEM_NOT_FOUND",
		"wishlist item not found",
		"",
	)

	ErrSubscriberNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIBER_NOT_FOUND",
		"newsletter subscriber not found",
		"",
	)

	ErrContentNotFound = NewBaseError(
		http.StatusNotFound,
		"CONTENT_NOT_FOUND",
		"content not found",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"device not found",
		"",
	)

	// General
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// DatabaseExecuteError is returned by repositories for unexpected driver errors.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "database operation failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
