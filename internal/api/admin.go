package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type AdminIdentity struct {
	UID         string `json:"uid"`
	Role        string `json:"role"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

type AdminSessionResponse struct {
	Admin AdminIdentity `json:"admin"`
}

type AdminDashboardSummary struct {
	TotalOrders   int64 `json:"total_orders"`
	PaidOrders    int64 `json:"paid_orders"`
	PendingOrders int64 `json:"pending_orders"`
	ProductsCount int64 `json:"products_count"`
	TotalRevenue  int64 `json:"total_revenue"`
}

type AdminStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type AdminDashboardResponse struct {
	Summary        AdminDashboardSummary `json:"summary"`
	OrdersByStatus []AdminStatusCount    `json:"orders_by_status"`
	RecentOrders   []Order               `json:"recent_orders"`
}

type AdminOrderListResponse struct {
	Orders []Order `json:"orders"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
	Total  int     `json:"total"`
}

type AdminOrderUpdatePayload struct {
	Status string `json:"status,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

type AdminShipment struct {
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"nomor_resi"`
	ETA            string `json:"eta,omitempty"`
}

type AdminShipmentUpdateResponse struct {
	OrderID  string        `json:"order_id"`
	Shipment AdminShipment `json:"shipment"`
	Message  string        `json:"message"`
}

type AdminProductPayload struct {
	Title       string `json:"title"`
	PriceIDR    int64  `json:"price_idr"`
	PriceUnit   string `json:"price_unit,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

func (c *Client) GetAdminSession(ctx context.Context) (AdminSessionResponse, error) {
	return Do[AdminSessionResponse](ctx, c, "/api/v1/admin/session", RequestOptions{})
}

func (c *Client) GetAdminDashboard(ctx context.Context) (AdminDashboardResponse, error) {
	return Do[AdminDashboardResponse](ctx, c, "/api/v1/admin/dashboard", RequestOptions{})
}

func (c *Client) ListAdminOrders(ctx context.Context, query OrderListQuery) (AdminOrderListResponse, error) {
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
	return Do[AdminOrderListResponse](ctx, c, "/api/v1/admin/orders", RequestOptions{Query: values})
}

func (c *Client) UpdateAdminOrder(ctx context.Context, orderID string, payload AdminOrderUpdatePayload) (OrderActionResponse, error) {
	return Do[OrderActionResponse](ctx, c, "/api/v1/admin/orders/"+orderID, RequestOptions{
		Method:  http.MethodPatch,
		Payload: payload,
	})
}

func (c *Client) UpdateAdminShipment(ctx context.Context, orderID string, shipment AdminShipment) (AdminShipmentUpdateResponse, error) {
	return Do[AdminShipmentUpdateResponse](ctx, c, "/api/v1/admin/orders/"+orderID+"/shipment", RequestOptions{
		Method:  http.MethodPatch,
		Payload: shipment,
	})
}

func (c *Client) ListAdminProducts(ctx context.Context, query ProductListQuery) ([]Product, error) {
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
	return Do[[]Product](ctx, c, "/api/v1/admin/products", RequestOptions{Query: values})
}

func (c *Client) CreateAdminProduct(ctx context.Context, payload AdminProductPayload) (Product, error) {
	return Do[Product](ctx, c, "/api/v1/admin/products", RequestOptions{
		Method:  http.MethodPost,
		Payload: payload,
	})
}

func (c *Client) UpdateAdminProduct(ctx context.Context, productID string, payload AdminProductPayload) (Product, error) {
	return Do[Product](ctx, c, "/api/v1/admin/products/"+productID, RequestOptions{
		Method:  http.MethodPut,
		Payload: payload,
	})
}

func (c *Client) DeleteAdminProduct(ctx context.Context, productID string) (MessageResponse, error) {
	return Do[MessageResponse](ctx, c, "/api/v1/admin/products/"+productID, RequestOptions{
		Method: http.MethodDelete,
	})
}
