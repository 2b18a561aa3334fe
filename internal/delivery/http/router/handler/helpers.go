// Package handler contains the HTTP handlers of the storefront API.
package handler

import (
	"strconv"

	deliverycontext "verdeluxe/internal/delivery/context"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate binds the request body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// pageQuery reads limit and offset; the usecases clamp the values.
func pageQuery(c echo.Context) (repository.Page, error) {
	var page repository.Page
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return page, domainerrors.ErrValidationFailed.WithDetails("invalid limit")
		}
		page.Limit = limit
	}
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return page, domainerrors.ErrValidationFailed.WithDetails("invalid offset")
		}
		page.Offset = offset
	}

	return page, nil
}

func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthenticated
	}

	return userID, nil
}
