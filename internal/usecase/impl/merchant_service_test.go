package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "nexprev/internal/domain/errors"
	"nexprev/internal/infra/persistence/memory"
	"nexprev/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestMerchantService() usecase.MerchantUsecase {
	return NewMerchantService(
		memory.NewProductRepository(),
		memory.NewMerchantOfferRepository(),
		memory.NewCustomerDirectoryRepository(),
		discardLogger(),
	)
}

func TestMerchantService_ListProducts(t *testing.T) {
	service := createTestMerchantService()

	products, err := service.ListProducts(context.Background(), "1")
	require.NoError(t, err)
	require.NotEmpty(t, products)

	for _, p := range products {
		assert.Equal(t, "1", p.MerchantID)
	}
}

func TestMerchantService_ListProducts_UnknownMerchant(t *testing.T) {
	service := createTestMerchantService()

	products, err := service.ListProducts(context.Background(), "other")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestMerchantService_CreateProduct(t *testing.T) {
	service := createTestMerchantService()
	ctx := context.Background()

	before, err := service.ListProducts(ctx, "1")
	require.NoError(t, err)

	created, err := service.CreateProduct(ctx, "1", &usecase.CreateProductInput{
		Name:     "Jaqueta corta-vento",
		Price:    199.90,
		Category: "Vestuário",
		Stock:    30,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)
	assert.Equal(t, "1", created.MerchantID)

	after, err := service.ListProducts(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)
}

func TestMerchantService_CreateProduct_Invalid(t *testing.T) {
	service := createTestMerchantService()

	tests := []struct {
		name  string
		input *usecase.CreateProductInput
	}{
		{"missing name", &usecase.CreateProductInput{Price: 10, Category: "Vestuário"}},
		{"zero price", &usecase.CreateProductInput{Name: "Meia", Category: "Vestuário"}},
		{"negative price", &usecase.CreateProductInput{Name: "Meia", Price: -5, Category: "Vestuário"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateProduct(context.Background(), "1", tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestMerchantService_CreateOffer(t *testing.T) {
	service := createTestMerchantService()
	ctx := context.Background()

	created, err := service.CreateOffer(ctx, "1", &usecase.CreateMerchantOfferInput{
		Title:              "Liquidação de verão",
		DiscountPercentage: 20,
		ValidFrom:          time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil:         time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	offers, err := service.ListOffers(ctx, "1")
	require.NoError(t, err)

	var found bool
	for _, o := range offers {
		if o.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found, "created offer not listed")
}

func TestMerchantService_CreateOffer_InvalidWindow(t *testing.T) {
	service := createTestMerchantService()

	_, err := service.CreateOffer(context.Background(), "1", &usecase.CreateMerchantOfferInput{
		Title:     "Janela invertida",
		ValidFrom: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil: time.Date(2025, 2, 1, 0, 0, 0, 0,
			time.UTC),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMerchantService_SearchCustomers(t *testing.T) {
	service := createTestMerchantService()
	ctx := context.Background()

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{"by name fragment", "joão", 1},
		{"by email fragment", "maria@", 1},
		{"case insensitive", "CARLOS", 1},
		{"no match", "inexistente", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.SearchCustomers(ctx, tt.query)
			require.NoError(t, err)
			assert.Len(t, got, tt.wantCount)
		})
	}
}

func TestMerchantService_SearchCustomers_EmptyQueryReturnsAll(t *testing.T) {
	service := createTestMerchantService()
	ctx := context.Background()

	all, err := service.ListCustomers(ctx, "1")
	require.NoError(t, err)

	got, err := service.SearchCustomers(ctx, "   ")
	require.NoError(t, err)
	assert.Len(t, got, len(all))
}
