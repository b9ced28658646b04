// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "nexprev/internal/delivery/context"
	"nexprev/internal/domain/entity"
	domainerrors "nexprev/internal/domain/errors"
	"nexprev/internal/domain/repository"
	"nexprev/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	partnerRepo     repository.PartnerRepository
	offerRepo       repository.OfferRepository
	transactionRepo repository.TransactionRepository
	logger          *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	partnerRepo repository.PartnerRepository,
	offerRepo repository.OfferRepository,
	transactionRepo repository.TransactionRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		partnerRepo:     partnerRepo,
		offerRepo:       offerRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// ListPartners returns every store participating in the cashback program.
func (srv *catalogService) ListPartners(ctx context.Context) ([]*entity.Partner, error) {
	partners, err := srv.partnerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list partners")
	}

	return partners, nil
}

// GetPartner returns a single partner by id.
func (srv *catalogService) GetPartner(ctx context.Context, id string) (*entity.Partner, error) {
	partner, err := srv.partnerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPartnerNotFound, id)
		}

		return nil, errors.Wrap(err, "failed to find partner")
	}

	return partner, nil
}

// ListOffers returns the customer-facing promotional offers.
func (srv *catalogService) ListOffers(ctx context.Context) ([]*entity.Offer, error) {
	offers, err := srv.offerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	return offers, nil
}

// GetOffer returns a single offer by id.
func (srv *catalogService) GetOffer(ctx context.Context, id string) (*entity.Offer, error) {
	offer, err := srv.offerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOfferNotFound, id)
		}

		return nil, errors.Wrap(err, "failed to find offer")
	}

	return offer, nil
}

// ListTransactions returns the customer's cashback statement, newest first.
func (srv *catalogService) ListTransactions(ctx context.Context, customerID string) ([]*entity.Transaction, error) {
	deliverycontext.LoggerOrDefault(ctx, srv.logger).Debug("Listing transactions", "customerID", customerID)

	txs, err := srv.transactionRepo.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return txs, nil
}
