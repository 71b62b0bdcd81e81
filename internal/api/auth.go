package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// AuthSession is the session envelope returned by login, register and
// refresh. The blobs stay raw: the credential store owns their
// interpretation and the backend is free to extend them.
type AuthSession struct {
	User    json.RawMessage `json:"user"`
	Session json.RawMessage `json:"session"`
}

type RegisterResponse struct {
	AuthSession
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type RegisterPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type ResetPasswordPayload struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	NewPassword  string `json:"new_password"`
}

// Login exchanges credentials for a session. No Authorization header: these
// calls precede having a session.
func (c *Client) Login(ctx context.Context, email, password string) (AuthSession, error) {
	return Do[AuthSession](ctx, c, "/auth/login", RequestOptions{
		Method:  http.MethodPost,
		Payload: map[string]string{"email": email, "password": password},
		NoAuth:  true,
	})
}

func (c *Client) Register(ctx context.Context, payload RegisterPayload) (RegisterResponse, error) {
	return Do[RegisterResponse](ctx, c, "/auth/register", RequestOptions{
		Method:  http.MethodPost,
		Payload: payload,
		NoAuth:  true,
	})
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (MessageResponse, error) {
	return Do[MessageResponse](ctx, c, "/auth/forgot-password", RequestOptions{
		Method:  http.MethodPost,
		Payload: map[string]string{"email": email},
		NoAuth:  true,
	})
}

func (c *Client) ResetPassword(ctx context.Context, payload ResetPasswordPayload) (MessageResponse, error) {
	return Do[MessageResponse](ctx, c, "/auth/reset-password", RequestOptions{
		Method:  http.MethodPost,
		Payload: payload,
		NoAuth:  true,
	})
}

// RefreshSession trades a refresh token for a fresh session. The resilient
// executor calls this internally on 401; it is exported for explicit
// session restoration at startup.
func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (AuthSession, error) {
	return Do[AuthSession](ctx, c, "/auth/refresh", RequestOptions{
		Method:  http.MethodPost,
		Payload: map[string]string{"refresh_token": refreshToken},
		NoAuth:  true,
	})
}
