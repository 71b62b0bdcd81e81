package api

import (
	"context"
	"net/http"
)

// CartItem is one server-held cart line.
type CartItem struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Qty       int64  `json:"qty"`
}

type CartResponse struct {
	Items    []CartItem `json:"items"`
	Subtotal int64      `json:"subtotal"`
	Currency string     `json:"currency"`
}

type CartItemResponse struct {
	Item CartItem `json:"item"`
}

type CartItemDeleteResponse struct {
	Message string `json:"message"`
	ItemID  string `json:"item_id"`
	Deleted bool   `json:"deleted"`
}

func (c *Client) GetCart(ctx context.Context) (CartResponse, error) {
	return Do[CartResponse](ctx, c, "/cart", RequestOptions{})
}

func (c *Client) AddCartItem(ctx context.Context, productID string, qty int64) (CartItemResponse, error) {
	return Do[CartItemResponse](ctx, c, "/cart/items", RequestOptions{
		Method:  http.MethodPost,
		Payload: map[string]any{"product_id": productID, "qty": qty},
	})
}

func (c *Client) UpdateCartItem(ctx context.Context, itemID string, qty int64) (CartItemResponse, error) {
	return Do[CartItemResponse](ctx, c, "/cart/items/"+itemID, RequestOptions{
		Method:  http.MethodPatch,
		Payload: map[string]any{"qty": qty},
	})
}

func (c *Client) DeleteCartItem(ctx context.Context, itemID string) (CartItemDeleteResponse, error) {
	return Do[CartItemDeleteResponse](ctx, c, "/cart/items/"+itemID, RequestOptions{
		Method: http.MethodDelete,
	})
}
