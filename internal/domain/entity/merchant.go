package entity

import (
	"strconv"
	"time"
)

// MerchantIdentity is the authenticated record for the merchant role.
type MerchantIdentity struct {
	ID           string    `json:"id"`           // Identifier assigned at registration ("merchant_" + unix-millis) or by the credential directory.
	Name         string    `json:"name"`         // The merchant owner's display name.
	Email        string    `json:"email"`        // The merchant's login identifier.
	Phone        string    `json:"phone"`        // Contact phone.
	BusinessName string    `json:"businessName"` // The store's trading name.
	CNPJ         string    `json:"cnpj"`         // Brazilian company tax id, formatted.
	Address      string    `json:"address"`      // The store's physical address.
	Category     string    `json:"category"`     // Store category (e.g. "Varejo").
	Description  string    `json:"description"`  // Free-form store description.
	LogoURL      string    `json:"logoUrl"`      // Logo image reference, may be empty.
	IsActive     bool      `json:"isActive"`     // Inactive merchants are hidden from customer-facing listings.
	CreatedAt    time.Time `json:"createdAt"`    // Timestamp of when the merchant record was created.
}

// NewMerchantIdentity fabricates a fresh merchant record at registration time.
// New merchants start active.
func NewMerchantIdentity(name, email, phone, businessName, cnpj, address, category, description, logoURL string, now time.Time) *MerchantIdentity {
	return &MerchantIdentity{
		ID:           "merchant_" + strconv.FormatInt(now.UnixMilli(), 10),
		Name:         name,
		Email:        email,
		Phone:        phone,
		BusinessName: businessName,
		CNPJ:         cnpj,
		Address:      address,
		Category:     category,
		Description:  description,
		LogoURL:      logoURL,
		IsActive:     true,
		CreatedAt:    now,
	}
}
