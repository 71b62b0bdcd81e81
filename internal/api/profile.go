package api

import (
	"context"
	"encoding/json"
	"net/http"
)

type ProfilePayload struct {
	FullName   string `json:"full_name,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Company    string `json:"company,omitempty"`
	Address    string `json:"address,omitempty"`
	JoinedDate string `json:"joined_date,omitempty"`
	AvatarURL  string `json:"avatar_url,omitempty"`
}

type ProfileResponse struct {
	User    json.RawMessage `json:"user"`
	Profile *ProfilePayload `json:"profile"`
}

func (c *Client) GetProfile(ctx context.Context) (ProfileResponse, error) {
	return Do[ProfileResponse](ctx, c, "/api/v1/me", RequestOptions{})
}

func (c *Client) UpdateProfile(ctx context.Context, payload ProfilePayload) (ProfileResponse, error) {
	return Do[ProfileResponse](ctx, c, "/api/v1/me", RequestOptions{
		Method:  http.MethodPatch,
		Payload: payload,
	})
}
