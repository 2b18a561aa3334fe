package middleware

import (
	"log/slog"

	deliverycontext "verdeluxe/internal/delivery/context"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/domain/service"
	"verdeluxe/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type CustomerAuthMiddlewareParams struct {
	fx.In

	Verifier service.IdentityVerifier
	UserUC   usecase.UserUsecase
	Logger   *slog.Logger
}

// CustomerAuthMiddleware resolves the storefront customer from a Firebase ID token.
type CustomerAuthMiddleware struct {
	verifier service.IdentityVerifier
	userUC   usecase.UserUsecase
	logger   *slog.Logger
}

func NewCustomerAuthMiddleware(params CustomerAuthMiddlewareParams) *CustomerAuthMiddleware {
	return &CustomerAuthMiddleware{
		verifier: params.Verifier,
		userUC:   params.UserUC,
		logger:   params.Logger,
	}
}

// Authenticate verifies the ID token and provisions the user on first sign-in.
func (m *CustomerAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		ctx := c.Request().Context()
		identity, err := m.verifier.VerifyIDToken(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("ID token rejected", slog.Any("error", err))

			return domainerrors.ErrIdentityTokenInvalid
		}

		user, err := m.userUC.EnsureUser(ctx, identity)
		if err != nil {
			return err
		}

		deliverycontext.SetUserID(c, user.ID)

		return next(c)
	}
}
