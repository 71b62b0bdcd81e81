//go:generate mockgen -source ./cache.go -destination=./mocks/cache.go -package=mock_products
package products

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/bafain/storefront-client/internal/api"
)

// Getter fetches a single product from the catalog.
type Getter interface {
	GetProduct(ctx context.Context, productID string) (api.Product, error)
}

// Cache keeps product snapshots the cart has already resolved so repeated
// loads do not refetch the whole catalog line by line.
type Cache struct {
	mu       sync.RWMutex
	products map[string]api.Product
	getter   Getter
	log      *zap.Logger
}

func NewCache(getter Getter, log *zap.Logger) *Cache {
	return &Cache{
		products: make(map[string]api.Product),
		getter:   getter,
		log:      log,
	}
}

// Get returns the snapshot for productID, fetching on a miss.
func (c *Cache) Get(ctx context.Context, productID string) (api.Product, error) {
	c.mu.RLock()
	product, found := c.products[productID]
	c.mu.RUnlock()
	if found {
		return product, nil
	}

	product, err := c.getter.GetProduct(ctx, productID)
	if err != nil {
		return api.Product{}, err
	}

	c.mu.Lock()
	c.products[productID] = product
	c.mu.Unlock()
	return product, nil
}

// Resolve is the best-effort variant cart enrichment uses: an unknown or
// unreachable product yields nil rather than an error, so a single broken
// line never fails a whole cart load.
func (c *Cache) Resolve(ctx context.Context, productID string) *api.Product {
	if productID == "" {
		return nil
	}
	product, err := c.Get(ctx, productID)
	if err != nil {
		c.log.Debug("product snapshot unavailable",
			zap.String("product_id", productID), zap.Error(err))
		return nil
	}
	return &product
}

// Invalidate drops one snapshot, forcing a refetch on next use.
func (c *Cache) Invalidate(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.products, productID)
}

// Clear empties the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = make(map[string]api.Product)
}
