package handler

import (
	"net/http"

	"verdeluxe/internal/delivery/http/response"
	"verdeluxe/internal/errors"
	"verdeluxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CartHandler serves the signed-in customer's cart.
type CartHandler struct {
	cartUC     usecase.CartUsecase
	checkoutUC usecase.CheckoutUsecase
}

func NewCartHandler(cartUC usecase.CartUsecase, checkoutUC usecase.CheckoutUsecase) *CartHandler {
	return &CartHandler{cartUC: cartUC, checkoutUC: checkoutUC}
}

type AddCartItemRequest struct {
	PlantID  uuid.UUID `json:"plantId" validate:"required"`
	Quantity int       `json:"quantity" validate:"required,gte=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

func (h *CartHandler) AddItem(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req AddCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.cartUC.AddItem(c.Request().Context(), userID, req.PlantID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Item added to cart")
}

// UpdateItem sets the quantity of a cart line; zero removes it.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	itemID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.cartUC.UpdateItem(c.Request().Context(), userID, itemID, req.Quantity); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart updated")
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	itemID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.cartUC.RemoveItem(c.Request().Context(), userID, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item removed from cart")
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.cartUC.ClearCart(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}

// Checkout places an order for the current cart.
func (h *CartHandler) Checkout(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input usecase.CheckoutInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	order, err := h.checkoutUC.PlaceOrder(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed")
}
