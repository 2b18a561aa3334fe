package handler

import (
	"net/http"

	"verdeluxe/internal/delivery/http/response"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/errors"
	"verdeluxe/internal/usecase"

	"github.com/labstack/echo/v4"
)

// photoFormField is the multipart field carrying the uploaded image.
const photoFormField = "photo"

// CatalogAdminHandler manages plants, categories and photos for admins.
type CatalogAdminHandler struct {
	uc usecase.CatalogAdminUsecase
}

func NewCatalogAdminHandler(uc usecase.CatalogAdminUsecase) *CatalogAdminHandler {
	return &CatalogAdminHandler{uc: uc}
}

func (h *CatalogAdminHandler) ListPlants(c echo.Context) error {
	plants, err := h.uc.ListAllPlants(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plants, "")
}

func (h *CatalogAdminHandler) CreatePlant(c echo.Context) error {
	var input usecase.PlantInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	plant, err := h.uc.CreatePlant(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, plant, "Plant created")
}

func (h *CatalogAdminHandler) UpdatePlant(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.PlantInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	plant, err := h.uc.UpdatePlant(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plant, "Plant updated")
}

func (h *CatalogAdminHandler) DeletePlant(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeletePlant(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Plant deactivated")
}

func (h *CatalogAdminHandler) CreateCategory(c echo.Context) error {
	var input usecase.CategoryInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created")
}

func (h *CatalogAdminHandler) UpdateCategory(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.CategoryInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	category, err := h.uc.UpdateCategory(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category updated")
}

func (h *CatalogAdminHandler) DeleteCategory(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted")
}

// UploadPhoto accepts a multipart upload in the "photo" field.
func (h *CatalogAdminHandler) UploadPhoto(c echo.Context) error {
	plantID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile(photoFormField)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("missing photo file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded photo")
	}
	defer file.Close()

	photo, err := h.uc.UploadPhoto(c.Request().Context(), plantID, &usecase.PhotoUpload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Content:     file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, photo, "Photo uploaded")
}

func (h *CatalogAdminHandler) DeletePhoto(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeletePhoto(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Photo deleted")
}
