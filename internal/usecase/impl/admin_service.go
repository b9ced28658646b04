package impl

import (
	"context"
	"log/slog"

	"nexprev/internal/domain/entity"
	"nexprev/internal/domain/repository"
	"nexprev/internal/usecase"

	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	partnerRepo repository.PartnerRepository
	offerRepo   repository.OfferRepository
	productRepo repository.ProductRepository
	merchants   repository.MerchantDirectoryRepository
	customers   repository.CustomerDirectoryRepository
	logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	partnerRepo repository.PartnerRepository,
	offerRepo repository.OfferRepository,
	productRepo repository.ProductRepository,
	merchants repository.MerchantDirectoryRepository,
	customers repository.CustomerDirectoryRepository,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		partnerRepo: partnerRepo,
		offerRepo:   offerRepo,
		productRepo: productRepo,
		merchants:   merchants,
		customers:   customers,
		logger:      logger,
	}
}

// GetDashboardStats aggregates platform-wide counters for the admin dashboard.
func (srv *adminService) GetDashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	srv.logger.Debug("Aggregating dashboard stats")

	partners, err := srv.partnerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count partners")
	}

	offers, err := srv.offerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count offers")
	}

	totalProducts, err := srv.productRepo.CountAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	totalMerchants, err := srv.merchants.CountAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count merchants")
	}

	totalCustomers, err := srv.customers.CountAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count customers")
	}

	return &entity.DashboardStats{
		TotalCustomers: totalCustomers,
		TotalMerchants: totalMerchants,
		TotalProducts:  totalProducts,
		TotalOffers:    len(offers),
		TotalPartners:  len(partners),
	}, nil
}
