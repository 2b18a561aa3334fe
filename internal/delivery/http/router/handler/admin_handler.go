package handler

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "verdeluxe/internal/delivery/context"
	"verdeluxe/internal/delivery/http/response"
	"verdeluxe/internal/errors"
	"verdeluxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves admin bootstrap, login and token refresh.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenRequest struct {
	Token string `json:"token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

func (h *AdminHandler) CheckExists(c echo.Context) error {
	exists, err := h.adminUC.CheckExists(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"exists": exists}, "")
}

// CreateAdmin bootstraps the first admin without credentials. Later calls
// must carry an admin access token.
func (h *AdminHandler) CreateAdmin(c echo.Context) error {
	var input usecase.CreateAdminInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	ctx := c.Request().Context()

	var actorID *uuid.UUID
	if token := bearer(c); token != "" {
		actor, err := h.adminUC.Authenticate(ctx, token)
		if err != nil {
			return errors.WithStack(err)
		}
		actorID = &actor.ID
	}

	admin, err := h.adminUC.CreateAdmin(ctx, &input, actorID)
	if err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Admin created",
		slog.String("admin_id", admin.ID.String()),
		slog.Bool("bootstrap", actorID == nil),
	)

	return response.Success(c, http.StatusCreated, admin, "Admin created")
}

func (h *AdminHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.adminUC.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Authenticate reports the admin behind a token given in the body or the
// Authorization header.
func (h *AdminHandler) Authenticate(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		req.Token = ""
	}
	token := strings.TrimSpace(req.Token)
	if token == "" {
		token = bearer(c)
	}

	admin, err := h.adminUC.Authenticate(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, admin, "")
}

func (h *AdminHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tokens, err := h.adminUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokens, "")
}

func bearer(c echo.Context) string {
	token, _ := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")

	return strings.TrimSpace(token)
}
