// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	"reflect"
	"strings"

	domainerrors "nexprev/internal/domain/errors"
	"nexprev/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator installed on the Echo instance.
// Field errors are reported under the JSON name the client sent, not the
// Go struct field.
func New() echo.Validator {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &echoValidator{validate: validate}
}

// Validate checks the struct tags on a bound request payload. Tag failures
// surface as the validation taxonomy with one detail per failing field.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		details = append(details, describe(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "campo obrigatório: " + fieldErr.Field()
	case "email":
		return "e-mail inválido: " + fieldErr.Field()
	default:
		return "campo inválido: " + fieldErr.Field()
	}
}
