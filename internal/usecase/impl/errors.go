// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "verdeluxe/internal/delivery/context"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/domain/repository"

	"github.com/pkg/errors"
)

// repositoryErrors maps repository sentinels onto client-facing errors.
var repositoryErrors = map[error]*domainerrors.BaseError{
	repository.ErrPlantNotFound:        domainerrors.ErrPlantNotFound,
	repository.ErrPlantSlugTaken:       domainerrors.ErrPlantSlugTaken,
	repository.ErrInsufficientStock:    domainerrors.ErrInsufficientStock,
	repository.ErrPlantInactive:        domainerrors.ErrPlantUnavailable,
	repository.ErrCategoryNotFound:     domainerrors.ErrCategoryNotFound,
	repository.ErrCategorySlugTaken:    domainerrors.ErrCategorySlugTaken,
	repository.ErrPhotoNotFound:        domainerrors.ErrPhotoNotFound,
	repository.ErrCartItemNotFound:     domainerrors.ErrCartItemNotFound,
	repository.ErrOrderNotFound:        domainerrors.ErrOrderNotFound,
	repository.ErrOrderStatusConflict:  domainerrors.ErrInvalidStatusTransition,
	repository.ErrAdminNotFound:        domainerrors.ErrAdminNotFound,
	repository.ErrAdminUsernameTaken:   domainerrors.ErrAdminUsernameTaken,
	repository.ErrUserNotFound:         domainerrors.ErrUserNotFound,
	repository.ErrDeviceNotFound:       domainerrors.ErrDeviceNotFound,
	repository.ErrWishlistItemNotFound: domainerrors.ErrWishlistItemNotFound,
	repository.ErrSubscriberNotFound:   domainerrors.ErrSubscriberNotFound,
	repository.ErrContentNotFound:      domainerrors.ErrContentNotFound,
}

// translateError replaces a repository sentinel in err's chain with its
// domain error, keeping the message as context. Other errors pass through.
func translateError(err error, message string) error {
	if err == nil {
		return nil
	}
	for sentinel, domainErr := range repositoryErrors {
		if errors.Is(err, sentinel) {
			return errors.Wrap(domainErr, message)
		}
	}

	return errors.Wrap(err, message)
}

// loggerFrom returns the request-scoped logger if available, otherwise fallback.
func loggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}
