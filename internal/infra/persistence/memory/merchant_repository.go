package memory

import (
	"context"
	"strings"
	"sync"

	"nexprev/internal/domain/entity"
	"nexprev/internal/domain/repository"
)

// productRepository keeps merchant catalogs in memory. Writes append; the
// demo mode never deletes.
type productRepository struct {
	mu       sync.RWMutex
	products []*entity.Product
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository() repository.ProductRepository {
	return &productRepository{products: seedProducts()}
}

func (repo *productRepository) ListByMerchantID(_ context.Context, merchantID string) ([]*entity.Product, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var out []*entity.Product
	for _, p := range repo.products {
		if p.MerchantID != merchantID {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}

	return out, nil
}

func (repo *productRepository) Create(_ context.Context, product *entity.Product) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	clone := *product
	repo.products = append(repo.products, &clone)

	return nil
}

func (repo *productRepository) CountAll(_ context.Context) (int, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return len(repo.products), nil
}

// merchantOfferRepository keeps merchant promotions in memory.
type merchantOfferRepository struct {
	mu     sync.RWMutex
	offers []*entity.MerchantOffer
}

// NewMerchantOfferRepository is the constructor for merchantOfferRepository.
func NewMerchantOfferRepository() repository.MerchantOfferRepository {
	return &merchantOfferRepository{offers: seedMerchantOffers()}
}

func (repo *merchantOfferRepository) ListByMerchantID(_ context.Context, merchantID string) ([]*entity.MerchantOffer, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var out []*entity.MerchantOffer
	for _, o := range repo.offers {
		if o.MerchantID != merchantID {
			continue
		}
		clone := *o
		out = append(out, &clone)
	}

	return out, nil
}

func (repo *merchantOfferRepository) Create(_ context.Context, offer *entity.MerchantOffer) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	clone := *offer
	repo.offers = append(repo.offers, &clone)

	return nil
}

func (repo *merchantOfferRepository) CountAll(_ context.Context) (int, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return len(repo.offers), nil
}

// merchantDirectoryRepository counts merchant accounts. Demo mode ships a
// single seeded merchant plus whatever registrations happen at runtime.
type merchantDirectoryRepository struct {
	mu    sync.RWMutex
	count int
}

// NewMerchantDirectoryRepository is the constructor for merchantDirectoryRepository.
func NewMerchantDirectoryRepository() repository.MerchantDirectoryRepository {
	return &merchantDirectoryRepository{count: 1}
}

func (repo *merchantDirectoryRepository) CountAll(_ context.Context) (int, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.count, nil
}

// customerDirectoryRepository serves the merchant-facing customer view.
// Every seeded customer is visible to every merchant in demo mode.
type customerDirectoryRepository struct {
	mu        sync.RWMutex
	customers []*entity.CustomerSummary
}

// NewCustomerDirectoryRepository is the constructor for customerDirectoryRepository.
func NewCustomerDirectoryRepository() repository.CustomerDirectoryRepository {
	return &customerDirectoryRepository{customers: seedCustomerSummaries()}
}

func (repo *customerDirectoryRepository) ListByMerchantID(_ context.Context, _ string) ([]*entity.CustomerSummary, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.cloneAll(), nil
}

func (repo *customerDirectoryRepository) Search(_ context.Context, query string) ([]*entity.CustomerSummary, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return repo.cloneAll(), nil
	}

	var out []*entity.CustomerSummary
	for _, c := range repo.customers {
		if !strings.Contains(strings.ToLower(c.Name), needle) &&
			!strings.Contains(strings.ToLower(c.Email), needle) {
			continue
		}
		clone := *c
		out = append(out, &clone)
	}

	return out, nil
}

func (repo *customerDirectoryRepository) CountAll(_ context.Context) (int, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return len(repo.customers), nil
}

func (repo *customerDirectoryRepository) cloneAll() []*entity.CustomerSummary {
	out := make([]*entity.CustomerSummary, len(repo.customers))
	for i, c := range repo.customers {
		clone := *c
		out[i] = &clone
	}

	return out
}
