package usecase

import "context"

// ReferralUsecase defines referral sharing operations for customers.
type ReferralUsecase interface {
	// ShareQR renders the customer's referral code as a QR code PNG.
	ShareQR(ctx context.Context, referralCode string) ([]byte, error)
}
