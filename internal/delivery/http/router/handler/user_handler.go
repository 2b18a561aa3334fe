package handler

import (
	"net/http"

	"verdeluxe/internal/delivery/http/response"
	"verdeluxe/internal/errors"
	"verdeluxe/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler serves the customer's own profile and the admin user list.
type UserHandler struct {
	uc usecase.UserUsecase
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type UpdateProfileRequest struct {
	DisplayName string `json:"displayName"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.uc.UpdateDisplayName(c.Request().Context(), userID, req.DisplayName)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated")
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	users, err := h.uc.ListUsers(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// UpdateUser lets an admin correct a customer's display name.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.uc.UpdateDisplayName(c.Request().Context(), id, req.DisplayName)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated")
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted")
}
