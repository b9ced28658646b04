// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateReferralQR generates a QR code image for sharing a referral code
	GenerateReferralQR(referralCode string) ([]byte, error)

	// ReferralLink builds the registration URL a referral QR encodes
	ReferralLink(referralCode string) string
}
