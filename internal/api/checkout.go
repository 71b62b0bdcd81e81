package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// AddressPayload is the address block sent with summary and order calls.
type AddressPayload struct {
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	Province     string `json:"province"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// ShippingOptionPayload describes the selected shipping tier.
type ShippingOptionPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Price   int64  `json:"price"`
	ETAText string `json:"eta_text"`
}

type SummaryRequest struct {
	Address        AddressPayload        `json:"address"`
	ShippingOption ShippingOptionPayload `json:"shipping_option"`
	Subtotal       int64                 `json:"subtotal"`
}

// SummaryResponse is the backend's priced summary. All amounts are integer
// minor units.
type SummaryResponse struct {
	Subtotal    int64  `json:"subtotal"`
	ShippingFee int64  `json:"shipping_fee"`
	TaxAmount   int64  `json:"tax_amount"`
	Total       int64  `json:"total"`
	Currency    string `json:"currency"`
}

type SelectShippingResponse struct {
	SelectedOption json.RawMessage `json:"selected_option"`
	Message        string          `json:"message"`
}

func (c *Client) CheckoutSummary(ctx context.Context, payload SummaryRequest) (SummaryResponse, error) {
	return Do[SummaryResponse](ctx, c, "/checkout/summary", RequestOptions{
		Method:  http.MethodPost,
		Payload: payload,
	})
}

func (c *Client) SelectShipping(ctx context.Context, optionID string) (SelectShippingResponse, error) {
	return Do[SelectShippingResponse](ctx, c, "/checkout/select-shipping", RequestOptions{
		Method:  http.MethodPost,
		Payload: map[string]string{"option_id": optionID},
	})
}
