package handler

import (
	"net/http"

	"verdeluxe/internal/delivery/http/response"
	"verdeluxe/internal/errors"
	"verdeluxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StorefrontHandlerParams holds dependencies for StorefrontHandler, injected by Fx.
type StorefrontHandlerParams struct {
	fx.In

	WishlistUC   usecase.WishlistUsecase
	NewsletterUC usecase.NewsletterUsecase
	ContentUC    usecase.ContentUsecase
	DeviceUC     usecase.DeviceUsecase
}

// StorefrontHandler serves wishlists, newsletter sign-up, site content and
// push device registration.
type StorefrontHandler struct {
	wishlistUC   usecase.WishlistUsecase
	newsletterUC usecase.NewsletterUsecase
	contentUC    usecase.ContentUsecase
	deviceUC     usecase.DeviceUsecase
}

func NewStorefrontHandler(params StorefrontHandlerParams) *StorefrontHandler {
	return &StorefrontHandler{
		wishlistUC:   params.WishlistUC,
		newsletterUC: params.NewsletterUC,
		contentUC:    params.ContentUC,
		deviceUC:     params.DeviceUC,
	}
}

type AddWishlistRequest struct {
	PlantID uuid.UUID `json:"plantId" validate:"required"`
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

func (h *StorefrontHandler) ListWishlist(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.wishlistUC.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

func (h *StorefrontHandler) AddWishlist(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req AddWishlistRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.wishlistUC.Add(c.Request().Context(), userID, req.PlantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Added to wishlist")
}

func (h *StorefrontHandler) RemoveWishlist(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	plantID, err := uuidParam(c, "plantId")
	if err != nil {
		return err
	}

	if err := h.wishlistUC.Remove(c.Request().Context(), userID, plantID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Removed from wishlist")
}

func (h *StorefrontHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	subscriber, err := h.newsletterUC.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, subscriber, "Subscribed")
}

func (h *StorefrontHandler) ListSubscribers(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	subscribers, err := h.newsletterUC.List(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subscribers, "")
}

func (h *StorefrontHandler) DeleteSubscriber(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.newsletterUC.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Subscriber deleted")
}

func (h *StorefrontHandler) GetContent(c echo.Context) error {
	content, err := h.contentUC.Get(c.Request().Context(), c.Param("key"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, content, "")
}

func (h *StorefrontHandler) ListContent(c echo.Context) error {
	content, err := h.contentUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, content, "")
}

func (h *StorefrontHandler) UpsertContent(c echo.Context) error {
	var input usecase.ContentInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	content, err := h.contentUC.Upsert(c.Request().Context(), c.Param("key"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, content, "Content saved")
}

func (h *StorefrontHandler) DeleteContent(c echo.Context) error {
	if err := h.contentUC.Delete(c.Request().Context(), c.Param("key")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Content deleted")
}

// RegisterDevice registers an FCM token for order notifications.
func (h *StorefrontHandler) RegisterDevice(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var info usecase.DeviceInfo
	if err := bindAndValidate(c, &info); err != nil {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &info)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered successfully")
}
