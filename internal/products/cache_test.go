package products

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/bafain/storefront-client/internal/api"
	mock_products "github.com/bafain/storefront-client/internal/products/mocks"
)

func TestCacheFetchesOnceThenServesFromMemory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	getter := mock_products.NewMockGetter(ctrl)
	getter.EXPECT().
		GetProduct(gomock.Any(), "p-1").
		Return(api.Product{ID: "p-1", Title: "Sepatu Lari", PriceIDR: 250000}, nil).
		Times(1)

	cache := NewCache(getter, zap.NewNop())

	for i := 0; i < 3; i++ {
		product, err := cache.Get(context.Background(), "p-1")
		require.NoError(t, err)
		assert.Equal(t, int64(250000), product.PriceIDR)
	}
}

func TestCacheGetPropagatesFetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	getter := mock_products.NewMockGetter(ctrl)
	getter.EXPECT().
		GetProduct(gomock.Any(), "p-missing").
		Return(api.Product{}, errors.New("not found")).
		Times(2)

	cache := NewCache(getter, zap.NewNop())

	_, err := cache.Get(context.Background(), "p-missing")
	assert.Error(t, err)

	// Failures are not cached; the next call asks again.
	_, err = cache.Get(context.Background(), "p-missing")
	assert.Error(t, err)
}

func TestResolveIsBestEffort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	getter := mock_products.NewMockGetter(ctrl)
	getter.EXPECT().
		GetProduct(gomock.Any(), "p-1").
		Return(api.Product{ID: "p-1", Title: "Sepatu Lari"}, nil)
	getter.EXPECT().
		GetProduct(gomock.Any(), "p-gone").
		Return(api.Product{}, errors.New("not found"))

	cache := NewCache(getter, zap.NewNop())

	product := cache.Resolve(context.Background(), "p-1")
	require.NotNil(t, product)
	assert.Equal(t, "Sepatu Lari", product.Title)

	assert.Nil(t, cache.Resolve(context.Background(), "p-gone"))
}

func TestInvalidateForcesRefetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	getter := mock_products.NewMockGetter(ctrl)
	first := getter.EXPECT().
		GetProduct(gomock.Any(), "p-1").
		Return(api.Product{ID: "p-1", PriceIDR: 100000}, nil)
	getter.EXPECT().
		GetProduct(gomock.Any(), "p-1").
		Return(api.Product{ID: "p-1", PriceIDR: 125000}, nil).
		After(first)

	cache := NewCache(getter, zap.NewNop())

	product, err := cache.Get(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, int64(100000), product.PriceIDR)

	cache.Invalidate("p-1")

	product, err = cache.Get(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, int64(125000), product.PriceIDR)
}
