package usecase

import (
	"context"
	"time"

	"nexprev/internal/domain/entity"
)

// MerchantUsecase defines the merchant back-office operations: product
// catalog, store promotions and the customer directory.
type MerchantUsecase interface {
	ListProducts(ctx context.Context, merchantID string) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, merchantID string, input *CreateProductInput) (*entity.Product, error)
	ListOffers(ctx context.Context, merchantID string) ([]*entity.MerchantOffer, error)
	CreateOffer(ctx context.Context, merchantID string, input *CreateMerchantOfferInput) (*entity.MerchantOffer, error)
	ListCustomers(ctx context.Context, merchantID string) ([]*entity.CustomerSummary, error)
	SearchCustomers(ctx context.Context, query string) ([]*entity.CustomerSummary, error)
}

// --- Input DTOs ---

// CreateProductInput defines the data required to add a product to the catalog.
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
	ImageURL    string  `json:"imageUrl"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

// CreateMerchantOfferInput defines the data required to create a store promotion.
type CreateMerchantOfferInput struct {
	ProductID          string    `json:"productId"`
	Title              string    `json:"title" validate:"required"`
	Description        string    `json:"description"`
	DiscountPercentage float64   `json:"discountPercentage" validate:"gte=0,lte=100"`
	DiscountAmount     float64   `json:"discountAmount" validate:"gte=0"`
	MinPurchaseAmount  float64   `json:"minPurchaseAmount" validate:"gte=0"`
	ValidFrom          time.Time `json:"validFrom"`
	ValidUntil         time.Time `json:"validUntil"`
	ImageURL           string    `json:"imageUrl"`
}
