// Package validator plugs go-playground/validator into echo.
package validator

import (
	"fmt"
	"strings"

	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

func New() *CustomValidator {
	return &CustomValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate returns ErrValidationFailed listing every failing field.
func (v *CustomValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed on %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(msgs, "; "))
}
