package impl

import (
	"context"
	"testing"

	"nexprev/internal/domain/repository"
	"nexprev/internal/infra/persistence/memory"
	"nexprev/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAdminService() (usecase.AdminUsecase, repository.ProductRepository) {
	productRepo := memory.NewProductRepository()
	service := NewAdminService(
		memory.NewPartnerRepository(),
		memory.NewOfferRepository(),
		productRepo,
		memory.NewMerchantDirectoryRepository(),
		memory.NewCustomerDirectoryRepository(),
		discardLogger(),
	)

	return service, productRepo
}

func TestAdminService_GetDashboardStats(t *testing.T) {
	service, _ := createTestAdminService()

	stats, err := service.GetDashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalCustomers)
	assert.Equal(t, 1, stats.TotalMerchants)
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 4, stats.TotalOffers)
	assert.Equal(t, 6, stats.TotalPartners)
}

func TestAdminService_GetDashboardStats_ReflectsNewProducts(t *testing.T) {
	service, productRepo := createTestAdminService()
	ctx := context.Background()

	before, err := service.GetDashboardStats(ctx)
	require.NoError(t, err)

	merchantSvc := NewMerchantService(
		productRepo,
		memory.NewMerchantOfferRepository(),
		memory.NewCustomerDirectoryRepository(),
		discardLogger(),
	)
	_, err = merchantSvc.CreateProduct(ctx, "1", &usecase.CreateProductInput{
		Name:     "Boné",
		Price:    39.90,
		Category: "Acessórios",
	})
	require.NoError(t, err)

	after, err := service.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.TotalProducts+1, after.TotalProducts)
}
