package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"nexprev/internal/domain/entity"
	domainerrors "nexprev/internal/domain/errors"
	"nexprev/internal/domain/repository"
	"nexprev/internal/usecase"

	"github.com/pkg/errors"
)

// merchantService implements the MerchantUsecase interface.
type merchantService struct {
	productRepo repository.ProductRepository
	offerRepo   repository.MerchantOfferRepository
	customers   repository.CustomerDirectoryRepository
	logger      *slog.Logger
	now         func() time.Time
}

// NewMerchantService is the constructor for merchantService.
func NewMerchantService(
	productRepo repository.ProductRepository,
	offerRepo repository.MerchantOfferRepository,
	customers repository.CustomerDirectoryRepository,
	logger *slog.Logger,
) usecase.MerchantUsecase {
	return &merchantService{
		productRepo: productRepo,
		offerRepo:   offerRepo,
		customers:   customers,
		logger:      logger,
		now:         time.Now,
	}
}

// ListProducts returns the merchant's product catalog.
func (srv *merchantService) ListProducts(ctx context.Context, merchantID string) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListByMerchantID(ctx, merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// CreateProduct adds a product to the merchant's catalog. New products start
// active.
func (srv *merchantService) CreateProduct(ctx context.Context, merchantID string, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.logger.Info("Creating product", "merchantID", merchantID, "name", input.Name)

	if strings.TrimSpace(input.Name) == "" || input.Price <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "product requires a name and a positive price")
	}

	createdAt := srv.now()
	product := &entity.Product{
		ID:          strconv.FormatInt(createdAt.UnixMilli(), 10),
		MerchantID:  merchantID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		IsActive:    true,
		Stock:       input.Stock,
		CreatedAt:   createdAt,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// ListOffers returns the merchant's store promotions.
func (srv *merchantService) ListOffers(ctx context.Context, merchantID string) ([]*entity.MerchantOffer, error) {
	offers, err := srv.offerRepo.ListByMerchantID(ctx, merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchant offers")
	}

	return offers, nil
}

// CreateOffer creates a store promotion. Offers start active and must carry
// a title and a coherent validity window.
func (srv *merchantService) CreateOffer(ctx context.Context, merchantID string, input *usecase.CreateMerchantOfferInput) (*entity.MerchantOffer, error) {
	srv.logger.Info("Creating merchant offer", "merchantID", merchantID, "title", input.Title)

	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "offer requires a title")
	}
	if !input.ValidUntil.IsZero() && !input.ValidFrom.IsZero() && input.ValidUntil.Before(input.ValidFrom) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "offer validity window ends before it starts")
	}

	createdAt := srv.now()
	offer := &entity.MerchantOffer{
		ID:                 strconv.FormatInt(createdAt.UnixMilli(), 10),
		MerchantID:         merchantID,
		ProductID:          input.ProductID,
		Title:              input.Title,
		Description:        input.Description,
		DiscountPercentage: input.DiscountPercentage,
		DiscountAmount:     input.DiscountAmount,
		MinPurchaseAmount:  input.MinPurchaseAmount,
		ValidFrom:          input.ValidFrom,
		ValidUntil:         input.ValidUntil,
		IsActive:           true,
		ImageURL:           input.ImageURL,
		CreatedAt:          createdAt,
	}

	if err := srv.offerRepo.Create(ctx, offer); err != nil {
		return nil, errors.Wrap(err, "failed to create merchant offer")
	}

	return offer, nil
}

// ListCustomers returns the merchant-facing customer directory.
func (srv *merchantService) ListCustomers(ctx context.Context, merchantID string) ([]*entity.CustomerSummary, error) {
	customers, err := srv.customers.ListByMerchantID(ctx, merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return customers, nil
}

// SearchCustomers filters the directory by name or email, case-insensitive.
func (srv *merchantService) SearchCustomers(ctx context.Context, query string) ([]*entity.CustomerSummary, error) {
	customers, err := srv.customers.Search(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search customers")
	}

	return customers, nil
}
