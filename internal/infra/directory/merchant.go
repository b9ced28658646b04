package directory

import (
	"context"
	"time"

	"nexprev/internal/domain/entity"
	domainerrors "nexprev/internal/domain/errors"
	"nexprev/internal/session"
)

const (
	merchantDemoEmail    = "teste1@teste.com"
	merchantDemoPassword = "123"
)

// merchantVerifier resolves the demo merchant credential.
type merchantVerifier struct{}

// NewMerchantVerifier returns the hardcoded merchant credential table.
func NewMerchantVerifier() session.Verifier[entity.MerchantIdentity] {
	return merchantVerifier{}
}

func (merchantVerifier) Verify(_ context.Context, cred session.Credential) (*entity.MerchantIdentity, error) {
	if cred.Email != merchantDemoEmail || cred.Password != merchantDemoPassword {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("merchant credential mismatch")
	}

	return &entity.MerchantIdentity{
		ID:           "merchant_1",
		Name:         "João Silva",
		Email:        merchantDemoEmail,
		Phone:        "(11) 99999-9999",
		BusinessName: "Loja do João",
		CNPJ:         "12.345.678/0001-90",
		Address:      "Rua das Flores, 123 - São Paulo/SP",
		Category:     "Varejo",
		Description:  "Loja especializada em produtos diversos",
		LogoURL:      "",
		IsActive:     true,
		CreatedAt:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}, nil
}

// merchantFactory fabricates merchant identities at registration time.
type merchantFactory struct {
	now Clock
}

// NewMerchantFactory returns the registration factory for merchants.
func NewMerchantFactory(clock Clock) session.Factory[entity.MerchantIdentity] {
	return merchantFactory{now: clockOrNow(clock)}
}

func (f merchantFactory) New(_ context.Context, fields session.Fields) (*entity.MerchantIdentity, error) {
	for _, required := range []string{"name", "email", "phone", "businessName", "cnpj", "address", "category"} {
		if fields[required] == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("campo obrigatório: " + required)
		}
	}

	return entity.NewMerchantIdentity(
		fields["name"],
		fields["email"],
		fields["phone"],
		fields["businessName"],
		fields["cnpj"],
		fields["address"],
		fields["category"],
		fields["description"],
		fields["logoUrl"],
		f.now(),
	), nil
}
