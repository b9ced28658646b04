package impl

import (
	"context"
	"log/slog"

	domainerrors "nexprev/internal/domain/errors"
	"nexprev/internal/domain/service"
	"nexprev/internal/usecase"

	"github.com/pkg/errors"
)

// referralService implements the ReferralUsecase interface.
type referralService struct {
	qrcode service.QRCodeService
	logger *slog.Logger
}

// NewReferralService is the constructor for referralService.
func NewReferralService(qrcode service.QRCodeService, logger *slog.Logger) usecase.ReferralUsecase {
	return &referralService{
		qrcode: qrcode,
		logger: logger,
	}
}

// ShareQR renders the customer's referral code as a QR code PNG pointing at
// the registration page.
func (srv *referralService) ShareQR(_ context.Context, referralCode string) ([]byte, error) {
	if referralCode == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "referral code is empty")
	}

	srv.logger.Debug("Generating referral QR", "referralCode", referralCode)

	png, err := srv.qrcode.GenerateReferralQR(referralCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate referral QR")
	}

	return png, nil
}
