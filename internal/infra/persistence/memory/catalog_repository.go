package memory

import (
	"context"
	"sync"

	"nexprev/internal/domain/entity"
	"nexprev/internal/domain/repository"
)

// partnerRepository serves the seeded partner directory.
type partnerRepository struct {
	mu       sync.RWMutex
	partners []*entity.Partner
}

// NewPartnerRepository is the constructor for partnerRepository.
func NewPartnerRepository() repository.PartnerRepository {
	return &partnerRepository{partners: seedPartners()}
}

func (repo *partnerRepository) List(_ context.Context) ([]*entity.Partner, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Partner, len(repo.partners))
	for i, p := range repo.partners {
		clone := *p
		out[i] = &clone
	}

	return out, nil
}

func (repo *partnerRepository) FindByID(_ context.Context, id string) (*entity.Partner, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, p := range repo.partners {
		if p.ID == id {
			clone := *p

			return &clone, nil
		}
	}

	return nil, repository.ErrPartnerNotFound
}

// offerRepository serves the seeded customer-facing offers.
type offerRepository struct {
	mu     sync.RWMutex
	offers []*entity.Offer
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository() repository.OfferRepository {
	return &offerRepository{offers: seedOffers()}
}

func (repo *offerRepository) List(_ context.Context) ([]*entity.Offer, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Offer, len(repo.offers))
	for i, o := range repo.offers {
		clone := *o
		out[i] = &clone
	}

	return out, nil
}

func (repo *offerRepository) FindByID(_ context.Context, id string) (*entity.Offer, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, o := range repo.offers {
		if o.ID == id {
			clone := *o

			return &clone, nil
		}
	}

	return nil, repository.ErrOfferNotFound
}

// transactionRepository serves the seeded cashback statements.
type transactionRepository struct {
	mu         sync.RWMutex
	byCustomer map[string][]*entity.Transaction
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository() repository.TransactionRepository {
	return &transactionRepository{byCustomer: seedTransactions()}
}

func (repo *transactionRepository) ListByCustomerID(_ context.Context, customerID string) ([]*entity.Transaction, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	txs := repo.byCustomer[customerID]
	out := make([]*entity.Transaction, len(txs))
	for i, tx := range txs {
		clone := *tx
		out[i] = &clone
	}

	return out, nil
}
