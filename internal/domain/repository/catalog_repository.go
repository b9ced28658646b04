// Package repository defines the persistence contracts the use cases depend on.
// Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"nexprev/internal/domain/entity"
	"nexprev/internal/errors"
)

// ErrPartnerNotFound is returned when no partner matches the given id.
var ErrPartnerNotFound = errors.New("partner not found")

// ErrOfferNotFound is returned when no offer matches the given id.
var ErrOfferNotFound = errors.New("offer not found")

// PartnerRepository provides read access to the partner directory.
type PartnerRepository interface {
	List(ctx context.Context) ([]*entity.Partner, error)
	FindByID(ctx context.Context, id string) (*entity.Partner, error)
}

// OfferRepository provides read access to customer-facing offers.
type OfferRepository interface {
	List(ctx context.Context) ([]*entity.Offer, error)
	FindByID(ctx context.Context, id string) (*entity.Offer, error)
}

// TransactionRepository provides read access to a customer's cashback statement.
type TransactionRepository interface {
	ListByCustomerID(ctx context.Context, customerID string) ([]*entity.Transaction, error)
}
