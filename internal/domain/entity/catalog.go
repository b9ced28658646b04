package entity

import "time"

// Partner is a store participating in the cashback program, shown on the
// customer-facing partner listings.
type Partner struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	LogoURL      string  `json:"logoUrl"`
	CashbackRate float64 `json:"cashbackRate"` // Percentage returned on purchases, e.g. 5 for 5%.
	Category     string  `json:"category"`
	Description  string  `json:"description"`
}

// Offer is a customer-facing promotional offer (daily offers, featured
// cashback campaigns).
type Offer struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	PartnerID   string  `json:"partnerId"`
	Cashback    float64 `json:"cashback"` // Percentage for this offer, may differ from the partner's base rate.
}

// Transaction is a single line of a customer's cashback statement.
// Statements are display-only; no balance mutation happens here.
type Transaction struct {
	ID        string    `json:"id"`
	Store     string    `json:"store"`
	Amount    float64   `json:"amount"`   // Purchase amount in BRL.
	Cashback  float64   `json:"cashback"` // Cashback credited for this purchase, in BRL.
	Status    string    `json:"status"`   // "confirmado", "pendente" or "cancelado".
	CreatedAt time.Time `json:"createdAt"`
}

// Product is an item in a merchant's catalog.
type Product struct {
	ID          string    `json:"id"`
	MerchantID  string    `json:"merchantId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	IsActive    bool      `json:"isActive"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MerchantOffer is a promotion created by a merchant for its own store.
type MerchantOffer struct {
	ID                 string    `json:"id"`
	MerchantID         string    `json:"merchantId"`
	ProductID          string    `json:"productId,omitempty"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	DiscountPercentage float64   `json:"discountPercentage,omitempty"`
	DiscountAmount     float64   `json:"discountAmount,omitempty"`
	MinPurchaseAmount  float64   `json:"minPurchaseAmount,omitempty"`
	ValidFrom          time.Time `json:"validFrom"`
	ValidUntil         time.Time `json:"validUntil"`
	IsActive           bool      `json:"isActive"`
	ImageURL           string    `json:"imageUrl,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// CustomerSummary is the merchant-facing view of a customer who purchased at
// the store. It carries aggregates only, never the customer's session record.
type CustomerSummary struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	TotalPurchases float64   `json:"totalPurchases"`
	LastPurchase   time.Time `json:"lastPurchase"`
	CashbackEarned float64   `json:"cashbackEarned"`
	IsActive       bool      `json:"isActive"`
}

// DashboardStats aggregates platform-wide counters for the admin dashboard.
type DashboardStats struct {
	TotalCustomers int `json:"totalCustomers"`
	TotalMerchants int `json:"totalMerchants"`
	TotalProducts  int `json:"totalProducts"`
	TotalOffers    int `json:"totalOffers"`
	TotalPartners  int `json:"totalPartners"`
}
