package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"verdeluxe/internal/delivery/http/response"
	domainerrors "verdeluxe/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response, string) {
	t.Helper()

	var logs bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	m.HandleHTTPError(err, e.NewContext(req, rec))

	var env response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return rec, env, logs.String()
}

func TestHandleHTTPError_PlainError(t *testing.T) {
	rec, env, logs := handleError(t, errors.New("pq: relation does not exist"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "relation")
	assert.Contains(t, logs, "Unhandled error")
}

func TestHandleHTTPError_WrappedByRequestLogger(t *testing.T) {
	wrapped := echo.NewHTTPError(http.StatusInternalServerError).SetInternal(errors.New("pq: relation does not exist"))

	rec, env, logs := handleError(t, wrapped)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "relation")
	assert.Contains(t, logs, "relation does not exist")
}

func TestHandleHTTPError_EchoClientError(t *testing.T) {
	rec, env, logs := handleError(t, echo.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
	assert.Empty(t, logs)
}

func TestHandleHTTPError_AppError(t *testing.T) {
	err := domainerrors.ErrValidationFailed.WithDetails("Quantity failed on gte=1")

	rec, env, _ := handleError(t, errors.WithStack(err))

	assert.Equal(t, err.HTTPCode(), rec.Code)
	assert.Equal(t, err.ErrorCode(), env.Error.Code)
	assert.Equal(t, "Quantity failed on gte=1", env.Error.Details)
}

func TestHandleHTTPError_ServerAppErrorHidesDetails(t *testing.T) {
	err := domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "select plants")

	rec, env, logs := handleError(t, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, env.Error.Details)
	assert.Contains(t, logs, "Request failed")
}
