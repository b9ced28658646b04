package repository

import (
	"context"

	"nexprev/internal/domain/entity"
)

// ProductRepository stores a merchant's product catalog.
type ProductRepository interface {
	ListByMerchantID(ctx context.Context, merchantID string) ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	CountAll(ctx context.Context) (int, error)
}

// MerchantOfferRepository stores merchant-created promotions.
type MerchantOfferRepository interface {
	ListByMerchantID(ctx context.Context, merchantID string) ([]*entity.MerchantOffer, error)
	Create(ctx context.Context, offer *entity.MerchantOffer) error
	CountAll(ctx context.Context) (int, error)
}

// MerchantDirectoryRepository counts registered merchant accounts for the
// admin dashboard.
type MerchantDirectoryRepository interface {
	CountAll(ctx context.Context) (int, error)
}

// CustomerDirectoryRepository provides the merchant-facing view of customers
// who purchased at a store. Search matches name or email, case-insensitive.
type CustomerDirectoryRepository interface {
	ListByMerchantID(ctx context.Context, merchantID string) ([]*entity.CustomerSummary, error)
	Search(ctx context.Context, query string) ([]*entity.CustomerSummary, error)
	CountAll(ctx context.Context) (int, error)
}
