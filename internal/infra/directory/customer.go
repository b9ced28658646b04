package directory

import (
	"context"

	"nexprev/internal/domain/entity"
	domainerrors "nexprev/internal/domain/errors"
	"nexprev/internal/session"
)

const (
	customerDemoEmail    = "teste@teste.com"
	customerDemoPassword = "1"
)

// customerVerifier resolves the demo customer credential.
type customerVerifier struct{}

// NewCustomerVerifier returns the hardcoded customer credential table.
func NewCustomerVerifier() session.Verifier[entity.CustomerIdentity] {
	return customerVerifier{}
}

func (customerVerifier) Verify(_ context.Context, cred session.Credential) (*entity.CustomerIdentity, error) {
	if cred.Email != customerDemoEmail || cred.Password != customerDemoPassword {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("customer credential mismatch")
	}

	return &entity.CustomerIdentity{
		ID:              "1",
		Name:            "João Silva",
		Email:           customerDemoEmail,
		Phone:           "(11) 99999-9999",
		CashbackBalance: 245.80,
		TotalEarned:     1234.56,
		ReferralCode:    "JOAO2025",
	}, nil
}

// customerFactory fabricates customer identities at registration time.
type customerFactory struct {
	now Clock
}

// NewCustomerFactory returns the registration factory for customers.
func NewCustomerFactory(clock Clock) session.Factory[entity.CustomerIdentity] {
	return customerFactory{now: clockOrNow(clock)}
}

func (f customerFactory) New(_ context.Context, fields session.Fields) (*entity.CustomerIdentity, error) {
	for _, required := range []string{"name", "email", "phone"} {
		if fields[required] == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("campo obrigatório: " + required)
		}
	}

	return entity.NewCustomerIdentity(fields["name"], fields["email"], fields["phone"], f.now()), nil
}
