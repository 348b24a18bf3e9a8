package impl

import (
	"context"
	"testing"

	"esnaftaucuz/internal/domain/entity"
	domainerrors "esnaftaucuz/internal/domain/errors"
	mockRepo "esnaftaucuz/internal/mocks/repository"
	"esnaftaucuz/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	productRepo  *mockRepo.MockProductRepository
	locationRepo *mockRepo.MockLocationRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		ProductRepo:  productRepo,
		LocationRepo: locationRepo,
	})

	return catalogServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		locationRepo: locationRepo,
	}
}

func TestCatalogService_SearchProducts_Success(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		SearchProductsByName(ctx, "domates", 20).
		Return([]*entity.Product{{Name: "Domates", Category: "meyve-sebze"}}, nil)

	products, err := fx.service.SearchProducts(ctx, "  domates  ", 0)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Domates", products[0].Name)
}

func TestCatalogService_SearchProducts_EmptyQuery(t *testing.T) {
	fx := createTestCatalogService(t)

	products, err := fx.service.SearchProducts(context.Background(), "   ", 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Nil(t, products)
}

func TestCatalogService_SearchProducts_ClampsLimit(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		SearchProductsByName(ctx, "un", 50).
		Return([]*entity.Product{}, nil)

	_, err := fx.service.SearchProducts(ctx, "un", 500)
	require.NoError(t, err)
}

func TestCatalogService_SearchLocations_Success(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.locationRepo.EXPECT().
		SearchLocationsByName(ctx, "pazar", 10).
		Return([]*entity.Location{{Name: "Sali Pazari", City: "Istanbul"}}, nil)

	locations, err := fx.service.SearchLocations(ctx, "pazar", 10)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "Sali Pazari", locations[0].Name)
}

func TestCatalogService_SearchLocations_RepoFailure(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.locationRepo.EXPECT().
		SearchLocationsByName(ctx, "pazar", 20).
		Return(nil, errors.New("connection refused"))

	locations, err := fx.service.SearchLocations(ctx, "pazar", 0)
	require.Error(t, err)
	assert.Nil(t, locations)
}

func TestCatalogService_ListLocationsByCity_Success(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.locationRepo.EXPECT().
		ListLocationsByCity(ctx, "Istanbul", "Kadikoy").
		Return([]*entity.Location{{Name: "Kadikoy Carsi", City: "Istanbul", District: "Kadikoy"}}, nil)

	locations, err := fx.service.ListLocationsByCity(ctx, "Istanbul", " Kadikoy ")
	require.NoError(t, err)
	require.Len(t, locations, 1)
}

func TestCatalogService_ListLocationsByCity_EmptyCity(t *testing.T) {
	fx := createTestCatalogService(t)

	locations, err := fx.service.ListLocationsByCity(context.Background(), "", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Nil(t, locations)
}
