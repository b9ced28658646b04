// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// CustomerIdentity is the authenticated record for the customer role.
// It is the sole source of truth for customer-facing protected pages once
// a customer session is established.
type CustomerIdentity struct {
	ID              string  `json:"id"`              // Identifier assigned at registration (unix-millis derived) or by the credential directory.
	Name            string  `json:"name"`            // The customer's display name.
	Email           string  `json:"email"`           // The customer's login identifier.
	Phone           string  `json:"phone"`           // Contact phone, free-form (e.g. "(11) 99999-9999").
	CashbackBalance float64 `json:"cashbackBalance"` // Currently redeemable cashback amount, in BRL.
	TotalEarned     float64 `json:"totalEarned"`     // Lifetime cashback earned, in BRL. Never decreases.
	ReferralCode    string  `json:"referralCode"`    // Derived once at registration, never re-derived afterwards.
}

// NewCustomerIdentity fabricates a fresh customer record at registration time.
// The referral code is fixed here and persisted with the rest of the record.
func NewCustomerIdentity(name, email, phone string, now time.Time) *CustomerIdentity {
	return &CustomerIdentity{
		ID:              strconv.FormatInt(now.UnixMilli(), 10),
		Name:            name,
		Email:           email,
		Phone:           phone,
		CashbackBalance: 0,
		TotalEarned:     0,
		ReferralCode:    ReferralCode(name, now.Year()),
	}
}

// ReferralCode derives the shareable referral code from a customer name and
// the registration year: whitespace stripped, uppercased, year appended.
// The transform is deterministic so the same (name, year) pair always yields
// the same code.
func ReferralCode(name string, year int) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	for _, r := range name {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	b.WriteString(strconv.Itoa(year))

	return b.String()
}
