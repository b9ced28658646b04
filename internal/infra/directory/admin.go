package directory

import (
	"context"
	"time"

	"nexprev/internal/domain/entity"
	domainerrors "nexprev/internal/domain/errors"
	"nexprev/internal/session"
)

const (
	adminDemoEmail    = "admin@nexprev.com"
	adminDemoPassword = "admin123"
)

// adminVerifier resolves the demo administrator credential. Admins have no
// self-service registration, so no factory exists for this role.
type adminVerifier struct{}

// NewAdminVerifier returns the hardcoded admin credential table.
func NewAdminVerifier() session.Verifier[entity.AdminIdentity] {
	return adminVerifier{}
}

func (adminVerifier) Verify(_ context.Context, cred session.Credential) (*entity.AdminIdentity, error) {
	if cred.Email != adminDemoEmail || cred.Password != adminDemoPassword {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("admin credential mismatch")
	}

	return &entity.AdminIdentity{
		ID:        "admin_1",
		Name:      "Administrador Geral",
		Email:     adminDemoEmail,
		Role:      entity.AdminRoleSuper,
		CreatedAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}, nil
}
