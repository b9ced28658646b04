// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"nexprev/internal/domain/entity"
)

// CatalogUsecase defines the customer-facing read operations: partners,
// promotional offers and the cashback statement.
type CatalogUsecase interface {
	ListPartners(ctx context.Context) ([]*entity.Partner, error)
	GetPartner(ctx context.Context, id string) (*entity.Partner, error)
	ListOffers(ctx context.Context) ([]*entity.Offer, error)
	GetOffer(ctx context.Context, id string) (*entity.Offer, error)
	ListTransactions(ctx context.Context, customerID string) ([]*entity.Transaction, error)
}
