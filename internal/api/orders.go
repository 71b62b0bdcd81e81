package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Order is the backend's order record. Identity is immutable after
// creation; status, payment_status and the deadline are the fields a poll
// legitimately refreshes.
type Order struct {
	ID            string                 `json:"id"`
	Status        string                 `json:"status"`
	PaymentStatus string                 `json:"payment_status"`
	CreatedAt     *time.Time             `json:"created_at"`
	ExpiresAt     *time.Time             `json:"expires_at"`
	Address       *AddressPayload        `json:"address,omitempty"`
	ShippingOpt   *ShippingOptionPayload `json:"shipping_option,omitempty"`
	CustomerNote  string                 `json:"customer_note,omitempty"`
	Items         []OrderItem            `json:"items,omitempty"`
	Subtotal      int64                  `json:"subtotal"`
	ShippingFee   int64                  `json:"shipping_fee"`
	TaxAmount     int64                  `json:"tax_amount"`
	Total         int64                  `json:"total"`
	Currency      string                 `json:"currency"`
	PaymentMethod *PaymentMethodPayload  `json:"payment_method,omitempty"`
}

type OrderItem struct {
	ProductID string `json:"product_id"`
	Qty       int64  `json:"qty"`
}

type PaymentMethodPayload struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type OrderCreatePayload struct {
	Address        AddressPayload        `json:"address"`
	ShippingOption ShippingOptionPayload `json:"shipping_option"`
	CustomerNote   string                `json:"customer_note,omitempty"`
	Items          []OrderItem           `json:"items"`
	Subtotal       int64                 `json:"subtotal"`
	ShippingFee    int64                 `json:"shipping_fee"`
	TaxAmount      int64                 `json:"tax_amount"`
	Total          int64                 `json:"total"`
	PaymentMethod  PaymentMethodPayload  `json:"payment_method"`
}

type OrderResponse struct {
	Order Order `json:"order"`
}

type OrderListQuery struct {
	Status string
	Q      string
	Page   int
	Limit  int
}

type OrderListResponse struct {
	Orders []Order `json:"orders"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
	Total  int     `json:"total"`
}

type OrderActionResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type InvoiceResponse struct {
	OrderID     string `json:"order_id"`
	DownloadURL string `json:"download_url"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (c *Client) CreateOrder(ctx context.Context, payload OrderCreatePayload) (OrderResponse, error) {
	return Do[OrderResponse](ctx, c, "/orders", RequestOptions{
		Method:  http.MethodPost,
		Payload: payload,
	})
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (OrderResponse, error) {
	return Do[OrderResponse](ctx, c, "/orders/"+orderID, RequestOptions{})
}

func (c *Client) ListOrders(ctx context.Context, query OrderListQuery) (OrderListResponse, error) {
	values := url.Values{}
	if query.Status != "" {
		values.Set("status", query.Status)
	}
	if query.Q != "" {
		values.Set("q", query.Q)
	}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	return Do[OrderListResponse](ctx, c, "/orders", RequestOptions{Query: values})
}

func (c *Client) CheckPayment(ctx context.Context, orderID string) (OrderActionResponse, error) {
	return Do[OrderActionResponse](ctx, c, "/orders/"+orderID+"/check-payment", RequestOptions{
		Method: http.MethodPost,
	})
}

func (c *Client) GetInvoice(ctx context.Context, orderID string) (InvoiceResponse, error) {
	return Do[InvoiceResponse](ctx, c, "/orders/"+orderID+"/invoice", RequestOptions{})
}
