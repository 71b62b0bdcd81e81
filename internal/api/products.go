package api

import (
	"context"
	"net/url"
	"strconv"
)

// Product is the catalog snapshot the cart renders from. Only the fields
// the client reads are modeled; the catalog carries more.
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	PriceIDR    int64  `json:"price_idr"`
	PriceUnit   string `json:"price_unit,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

type ProductListQuery struct {
	Q        string
	Limit    int
	Offset   int
	MinPrice int64
	MaxPrice int64
}

func (c *Client) ListProducts(ctx context.Context, query ProductListQuery) ([]Product, error) {
	values := url.Values{}
	if query.Q != "" {
		values.Set("q", query.Q)
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Offset > 0 {
		values.Set("offset", strconv.Itoa(query.Offset))
	}
	if query.MinPrice > 0 {
		values.Set("min_price", strconv.FormatInt(query.MinPrice, 10))
	}
	if query.MaxPrice > 0 {
		values.Set("max_price", strconv.FormatInt(query.MaxPrice, 10))
	}
	return Do[[]Product](ctx, c, "/products", RequestOptions{Query: values})
}

func (c *Client) GetProduct(ctx context.Context, productID string) (Product, error) {
	return Do[Product](ctx, c, "/products/"+productID, RequestOptions{})
}
