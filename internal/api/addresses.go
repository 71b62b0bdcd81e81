package api

import (
	"context"
	"net/http"
)

// Address is one saved delivery address on the profile.
type Address struct {
	ID            string         `json:"id,omitempty"`
	Label         string         `json:"label,omitempty"`
	RecipientName string         `json:"recipient_name,omitempty"`
	Email         string         `json:"email,omitempty"`
	Phone         string         `json:"phone,omitempty"`
	AddressLine1  string         `json:"address_line1,omitempty"`
	AddressLine2  string         `json:"address_line2,omitempty"`
	City          string         `json:"city,omitempty"`
	Province      string         `json:"province,omitempty"`
	PostalCode    string         `json:"postal_code,omitempty"`
	Country       string         `json:"country,omitempty"`
	Notes         string         `json:"notes,omitempty"`
	IsDefault     bool           `json:"is_default,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

type AddressListResponse struct {
	Addresses []Address `json:"addresses"`
}

type AddressResponse struct {
	Address Address `json:"address"`
}

type AddressDeleteResponse struct {
	Message   string `json:"message"`
	AddressID string `json:"address_id"`
	Deleted   bool   `json:"deleted"`
}

type AddressDefaultResponse struct {
	Address Address `json:"address"`
	Message string  `json:"message"`
}

func (c *Client) ListAddresses(ctx context.Context) (AddressListResponse, error) {
	return Do[AddressListResponse](ctx, c, "/api/v1/me/addresses", RequestOptions{})
}

func (c *Client) CreateAddress(ctx context.Context, payload Address) (AddressResponse, error) {
	return Do[AddressResponse](ctx, c, "/api/v1/me/addresses", RequestOptions{
		Method:  http.MethodPost,
		Payload: payload,
	})
}

func (c *Client) UpdateAddress(ctx context.Context, addressID string, payload Address) (AddressResponse, error) {
	return Do[AddressResponse](ctx, c, "/api/v1/me/addresses/"+addressID, RequestOptions{
		Method:  http.MethodPatch,
		Payload: payload,
	})
}

func (c *Client) DeleteAddress(ctx context.Context, addressID string) (AddressDeleteResponse, error) {
	return Do[AddressDeleteResponse](ctx, c, "/api/v1/me/addresses/"+addressID, RequestOptions{
		Method: http.MethodDelete,
	})
}

func (c *Client) SetDefaultAddress(ctx context.Context, addressID string) (AddressDefaultResponse, error) {
	return Do[AddressDefaultResponse](ctx, c, "/api/v1/me/addresses/"+addressID+"/set-default", RequestOptions{
		Method: http.MethodPost,
	})
}
