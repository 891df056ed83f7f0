package postgres_test

import (
	"context"
	"testing"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/repository/postgres"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_List(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewProductRepository(testDB.DB)
	ctx := context.Background()

	testutil.NewProductBuilder().WithName("Cordless Drill Kit").WithSKU("DRL-100").Featured().Build(t, testDB.DB)
	testutil.NewProductBuilder().WithName("Angle Grinder").WithSKU("GRN-200").Build(t, testDB.DB)
	testutil.NewProductBuilder().WithName("Discontinued Saw").WithSKU("SAW-300").Inactive().Build(t, testDB.DB)
	testutil.NewProductBuilder().WithName("Empty Shelf Item").WithSKU("EMP-400").WithStock(0).Build(t, testDB.DB)

	page := domain.Pagination{Page: 1, PerPage: 20}

	t.Run("active only hides inactive products", func(t *testing.T) {
		result, err := repo.List(ctx, domain.ProductFilter{ActiveOnly: true}, page)
		require.NoError(t, err)
		assert.Equal(t, int64(3), result.Total)
		for _, p := range result.Items {
			assert.True(t, p.IsActive)
		}
	})

	t.Run("admin listing includes inactive", func(t *testing.T) {
		result, err := repo.List(ctx, domain.ProductFilter{}, page)
		require.NoError(t, err)
		assert.Equal(t, int64(4), result.Total)
	})

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		result, err := repo.List(ctx, domain.ProductFilter{Search: "drill"}, page)
		require.NoError(t, err)
		require.Equal(t, int64(1), result.Total)
		assert.Equal(t, "DRL-100", result.Items[0].SKU)
	})

	t.Run("search matches sku", func(t *testing.T) {
		result, err := repo.List(ctx, domain.ProductFilter{Search: "GRN-"}, page)
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Total)
	})

	t.Run("featured filter", func(t *testing.T) {
		featured := true
		result, err := repo.List(ctx, domain.ProductFilter{Featured: &featured}, page)
		require.NoError(t, err)
		require.Equal(t, int64(1), result.Total)
		assert.Equal(t, "DRL-100", result.Items[0].SKU)
	})

	t.Run("stock status filter", func(t *testing.T) {
		out := domain.StockOutOfStock
		result, err := repo.List(ctx, domain.ProductFilter{StockStatus: &out}, page)
		require.NoError(t, err)
		require.Equal(t, int64(1), result.Total)
		assert.Equal(t, "EMP-400", result.Items[0].SKU)
	})

	t.Run("pagination", func(t *testing.T) {
		result, err := repo.List(ctx, domain.ProductFilter{}, domain.Pagination{Page: 1, PerPage: 3})
		require.NoError(t, err)
		assert.Len(t, result.Items, 3)
		assert.Equal(t, int64(4), result.Total)
		assert.Equal(t, 2, result.TotalPages)

		rest, err := repo.List(ctx, domain.ProductFilter{}, domain.Pagination{Page: 2, PerPage: 3})
		require.NoError(t, err)
		assert.Len(t, rest.Items, 1)
	})
}

func TestProductRepository_Counts(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewProductRepository(testDB.DB)
	ctx := context.Background()

	testutil.NewProductBuilder().WithStock(50).Build(t, testDB.DB)
	testutil.NewProductBuilder().WithStock(2).Build(t, testDB.DB) // low stock
	testutil.NewProductBuilder().WithStock(0).Build(t, testDB.DB) // out of stock
	testutil.NewProductBuilder().WithStock(0).Inactive().Build(t, testDB.DB)

	active, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), active)

	lowStock, err := repo.CountLowStock(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), lowStock)
}
