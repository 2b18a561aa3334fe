package middleware

import (
	"slices"
	"strings"

	deliverycontext "verdeluxe/internal/delivery/context"
	"verdeluxe/internal/domain/entity"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards the admin API with JWT access tokens.
type AuthMiddleware struct {
	adminUC usecase.AdminUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(adminUC usecase.AdminUsecase) *AuthMiddleware {
	return &AuthMiddleware{adminUC: adminUC}
}

// Authenticate validates the bearer access token and stores the admin on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return domainerrors.ErrTokenInvalid.WithDetails("missing bearer token")
		}

		admin, err := m.adminUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetAdmin(c, admin.ID, []string{entity.RoleAdmin.String()})

		return next(c)
	}
}

// RequireRole checks the roles set by Authenticate.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := deliverycontext.GetRoles(c)
			if !ok || !slices.Contains(roles, requiredRole.String()) {
				return domainerrors.ErrForbidden.WithDetails("requires role " + requiredRole.String())
			}

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(authHeader, "Bearer ")
	token = strings.TrimSpace(token)

	return token, found && token != ""
}
