package directory

import (
	"context"
	"testing"
	"time"

	domainerrors "nexprev/internal/domain/errors"
	"nexprev/internal/errors"
	"nexprev/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
}

func TestCustomerVerifier(t *testing.T) {
	ctx := context.Background()
	verifier := NewCustomerVerifier()

	customer, err := verifier.Verify(ctx, session.Credential{Email: "teste@teste.com", Password: "1"})
	require.NoError(t, err)
	assert.Equal(t, "João Silva", customer.Name)
	assert.InDelta(t, 245.80, customer.CashbackBalance, 0.001)
	assert.InDelta(t, 1234.56, customer.TotalEarned, 0.001)
	assert.Equal(t, "JOAO2025", customer.ReferralCode)

	_, err = verifier.Verify(ctx, session.Credential{Email: "teste@teste.com", Password: "2"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestMerchantVerifier(t *testing.T) {
	ctx := context.Background()
	verifier := NewMerchantVerifier()

	merchant, err := verifier.Verify(ctx, session.Credential{Email: "teste1@teste.com", Password: "123"})
	require.NoError(t, err)
	assert.Equal(t, "Loja do João", merchant.BusinessName)
	assert.Equal(t, "12.345.678/0001-90", merchant.CNPJ)
	assert.True(t, merchant.IsActive)

	_, err = verifier.Verify(ctx, session.Credential{Email: "outra@loja.com", Password: "123"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAdminVerifier(t *testing.T) {
	ctx := context.Background()
	verifier := NewAdminVerifier()

	admin, err := verifier.Verify(ctx, session.Credential{Email: "admin@nexprev.com", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "Administrador Geral", admin.Name)
	assert.Equal(t, "super_admin", string(admin.Role))

	_, err = verifier.Verify(ctx, session.Credential{Email: "admin@nexprev.com", Password: "nope"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestCustomerFactory(t *testing.T) {
	ctx := context.Background()
	factory := NewCustomerFactory(fixedClock)

	_, err := factory.New(ctx, session.Fields{"name": "Maria", "email": "maria@example.com"})
	require.Error(t, err, "missing phone must be rejected")

	customer, err := factory.New(ctx, session.Fields{
		"name":  "Maria Souza",
		"email": "maria@example.com",
		"phone": "(11) 90000-0000",
	})
	require.NoError(t, err)
	assert.Equal(t, "MARIASOUZA2025", customer.ReferralCode)
	assert.Zero(t, customer.CashbackBalance)
}

func TestMerchantFactory(t *testing.T) {
	ctx := context.Background()
	factory := NewMerchantFactory(fixedClock)

	_, err := factory.New(ctx, session.Fields{"name": "Loja"})
	require.Error(t, err)

	merchant, err := factory.New(ctx, session.Fields{
		"name":         "Ana",
		"email":        "ana@loja.com",
		"phone":        "(11) 91111-1111",
		"businessName": "Loja da Ana",
		"cnpj":         "98.765.432/0001-10",
		"address":      "Av. Paulista, 1000",
		"category":     "Moda",
	})
	require.NoError(t, err)
	assert.True(t, merchant.IsActive)
	assert.Equal(t, "Loja da Ana", merchant.BusinessName)
	assert.NotEmpty(t, merchant.ID)
}
