package handler

import (
	"net/http"
	"strconv"
	"strings"

	"verdeluxe/internal/delivery/http/response"
	"verdeluxe/internal/domain/entity"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/errors"
	"verdeluxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the public catalog.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	adminUC   usecase.CatalogAdminUsecase
}

func NewCatalogHandler(catalogUC usecase.CatalogUsecase, adminUC usecase.CatalogAdminUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC, adminUC: adminUC}
}

// ListPlants handles GET /api/plants?categoryId=&featured=
func (h *CatalogHandler) ListPlants(c echo.Context) error {
	var filter entity.PlantFilter
	if raw := c.QueryParam("categoryId"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("invalid categoryId")
		}
		filter.CategoryID = &categoryID
	}
	if raw := c.QueryParam("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("invalid featured")
		}
		filter.Featured = &featured
	}

	plants, err := h.catalogUC.ListPlants(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plants, "")
}

func (h *CatalogHandler) GetPlant(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	plant, err := h.catalogUC.GetPlant(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plant, "")
}

func (h *CatalogHandler) GetPlantBySlug(c echo.Context) error {
	plant, err := h.catalogUC.GetPlantBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plant, "")
}

func (h *CatalogHandler) ListPlantPhotos(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	photos, err := h.catalogUC.ListPlantPhotos(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, photos, "")
}

// PlantQRCode responds with a PNG image rather than the JSON envelope.
func (h *CatalogHandler) PlantQRCode(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	png, err := h.catalogUC.PlantQRCode(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// ServeUpload streams a stored photo for GET /uploads/*.
func (h *CatalogHandler) ServeUpload(c echo.Context) error {
	key := strings.TrimPrefix(c.Param("*"), "/")
	if key == "" || strings.Contains(key, "..") {
		return domainerrors.ErrPhotoNotFound
	}

	body, contentType, err := h.adminUC.OpenPhoto(c.Request().Context(), key)
	if err != nil {
		return errors.WithStack(err)
	}
	defer body.Close()

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Stream(http.StatusOK, contentType, body)
}
