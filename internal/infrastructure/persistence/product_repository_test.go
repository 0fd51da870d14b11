package persistence

import (
	"context"
	"testing"

	"github.com/coffeehouse/backend/internal/domain/catalog"
	"github.com/coffeehouse/backend/internal/domain/shared"
	"github.com/coffeehouse/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, name, category, price string) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, category, valueobject.NewMoneyUSDFromFloat(0))
	require.NoError(t, err)
	require.NoError(t, product.ChangePrice(valueobject.NewMoneyUSD(mustDecimal(t, price))))
	return product
}

func TestGormProductRepository_SaveAndFindByID(t *testing.T) {
	repo := NewGormProductRepository(newTestDB(t))
	product := newProduct(t, "Flat White", "coffee", "4.50")

	require.NoError(t, repo.Save(context.Background(), product))

	found, err := repo.FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Flat White", found.Name)
	assert.Equal(t, "coffee", found.Category)
	assert.True(t, found.Price.Equal(mustDecimal(t, "4.50")))
	assert.Equal(t, catalog.ProductStatusActive, found.Status)
}

func TestGormProductRepository_FindByID_NotFound(t *testing.T) {
	repo := NewGormProductRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormProductRepository_FindActiveExcludesInactive(t *testing.T) {
	repo := NewGormProductRepository(newTestDB(t))

	active := newProduct(t, "Flat White", "coffee", "4.50")
	inactive := newProduct(t, "Seasonal Latte", "coffee", "5.00")
	inactive.Deactivate()
	require.NoError(t, repo.Save(context.Background(), active))
	require.NoError(t, repo.Save(context.Background(), inactive))

	products, err := repo.FindActive(context.Background(), shared.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Flat White", products[0].Name)
}

func TestGormProductRepository_FindByCategory(t *testing.T) {
	repo := NewGormProductRepository(newTestDB(t))

	require.NoError(t, repo.Save(context.Background(), newProduct(t, "Flat White", "coffee", "4.50")))
	require.NoError(t, repo.Save(context.Background(), newProduct(t, "Croissant", "pastry", "3.25")))

	products, err := repo.FindByCategory(context.Background(), "pastry", shared.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Croissant", products[0].Name)
}

func TestGormProductRepository_FindFeatured(t *testing.T) {
	repo := NewGormProductRepository(newTestDB(t))

	featured := newProduct(t, "Flat White", "coffee", "4.50")
	featured.SetFeatured(true)
	require.NoError(t, repo.Save(context.Background(), featured))
	require.NoError(t, repo.Save(context.Background(), newProduct(t, "Croissant", "pastry", "3.25")))

	products, err := repo.FindFeatured(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Flat White", products[0].Name)
}

func TestGormProductRepository_ListCategories(t *testing.T) {
	repo := NewGormProductRepository(newTestDB(t))

	require.NoError(t, repo.Save(context.Background(), newProduct(t, "Flat White", "coffee", "4.50")))
	require.NoError(t, repo.Save(context.Background(), newProduct(t, "Espresso", "coffee", "3.00")))
	require.NoError(t, repo.Save(context.Background(), newProduct(t, "Croissant", "pastry", "3.25")))

	categories, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"coffee", "pastry"}, categories)
}

func TestGormProductRepository_SearchFilter(t *testing.T) {
	repo := NewGormProductRepository(newTestDB(t))

	require.NoError(t, repo.Save(context.Background(), newProduct(t, "Flat White", "coffee", "4.50")))
	require.NoError(t, repo.Save(context.Background(), newProduct(t, "Croissant", "pastry", "3.25")))

	filter := shared.DefaultFilter()
	filter.Search = "Flat"

	products, err := repo.FindAll(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, products, 1)

	count, err := repo.Count(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGormProductRepository_Delete(t *testing.T) {
	repo := NewGormProductRepository(newTestDB(t))
	product := newProduct(t, "Flat White", "coffee", "4.50")
	require.NoError(t, repo.Save(context.Background(), product))

	require.NoError(t, repo.Delete(context.Background(), product.ID))

	_, err := repo.FindByID(context.Background(), product.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), product.ID), shared.ErrNotFound)
}
