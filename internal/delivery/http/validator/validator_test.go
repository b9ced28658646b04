package validator

import (
	"testing"

	domainerrors "nexprev/internal/domain/errors"
	"nexprev/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

func TestValidate_ValidPayload(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{
		Name:  "Maria Souza",
		Email: "maria@exemplo.com",
		Phone: "(11) 98888-7777",
	})

	assert.NoError(t, err)
}

func TestValidate_MissingFieldsUseValidationTaxonomy(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{Email: "maria@exemplo.com"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, domainerrors.ErrValidationFailed.HTTPCode(), appErr.HTTPCode())
	assert.Contains(t, appErr.Details(), "campo obrigatório: name")
	assert.Contains(t, appErr.Details(), "campo obrigatório: phone")
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{Name: "Maria", Email: "não-é-email", Phone: "1"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "e-mail inválido: email")
	assert.NotContains(t, appErr.Details(), "Email")
}
