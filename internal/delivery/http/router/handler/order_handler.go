package handler

import (
	"net/http"

	"verdeluxe/internal/delivery/http/response"
	"verdeluxe/internal/domain/entity"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/errors"
	"verdeluxe/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OrderHandler serves order history for customers and fulfilment for admins.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type UpdateOrderStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	orders, err := h.uc.ListUserOrders(c.Request().Context(), userID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

func (h *OrderHandler) GetMyOrder(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	orderID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	order, err := h.uc.GetUserOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// ListOrders handles GET /api/admin/orders?status=
func (h *OrderHandler) ListOrders(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	var status *entity.OrderStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.OrderStatus(raw)
		if !s.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("unknown status " + raw)
		}
		status = &s
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), status, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), orderID, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}
