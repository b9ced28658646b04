package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferralCode(t *testing.T) {
	tests := []struct {
		name string
		year int
		want string
	}{
		{name: "João Silva", year: 2025, want: "JOÃOSILVA2025"},
		{name: "maria", year: 2024, want: "MARIA2024"},
		{name: "  Ana  Paula ", year: 2025, want: "ANAPAULA2025"},
		{name: "", year: 2025, want: "2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReferralCode(tt.name, tt.year))
		})
	}
}

func TestReferralCode_Deterministic(t *testing.T) {
	first := ReferralCode("João Silva", 2025)
	second := ReferralCode("João Silva", 2025)

	assert.Equal(t, first, second)
}

func TestNewCustomerIdentity(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	customer := NewCustomerIdentity("João Silva", "joao@example.com", "(11) 98888-7777", now)

	require.NotNil(t, customer)
	assert.Equal(t, "1741608000000", customer.ID)
	assert.Equal(t, "JOÃOSILVA2025", customer.ReferralCode)
	assert.Zero(t, customer.CashbackBalance)
	assert.Zero(t, customer.TotalEarned)
}

func TestNewMerchantIdentity(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	merchant := NewMerchantIdentity(
		"João Silva", "loja@example.com", "(11) 97777-6666",
		"Loja do João", "12.345.678/0001-90", "Rua das Flores, 123",
		"Varejo", "Produtos diversos", "", now,
	)

	require.NotNil(t, merchant)
	assert.Equal(t, "merchant_1741608000000", merchant.ID)
	assert.True(t, merchant.IsActive)
	assert.Equal(t, now, merchant.CreatedAt)
}
