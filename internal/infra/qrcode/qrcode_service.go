package qrcode

import (
	"fmt"
	"net/url"

	"nexprev/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateReferralQR generates a QR code image pointing at the registration
// page with the referral code pre-filled.
func (s *qrcodeService) GenerateReferralQR(referralCode string) ([]byte, error) {
	if referralCode == "" {
		return nil, fmt.Errorf("referral code is empty")
	}

	qrCode, err := qrcode.New(s.ReferralLink(referralCode), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ReferralLink builds the registration URL the QR code encodes.
func (s *qrcodeService) ReferralLink(referralCode string) string {
	return s.baseURL + "?ref=" + url.QueryEscape(referralCode)
}
