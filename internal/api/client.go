// Package api is the client's single gateway to the commerce backend.
// Every domain module (cart, checkout, orders, products, profile,
// addresses, admin, chat) is a thin typed wrapper around one resilient
// request executor that attaches bearer credentials and transparently
// refreshes an expired access token exactly once.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bafain/storefront-client/internal/metrics"
	"github.com/bafain/storefront-client/internal/session"
)

const (
	headerAuthorization = "Authorization"
	headerRefreshToken  = "X-Refresh-Token"
	headerRequestID     = "X-Request-ID"

	genericErrorMessage = "request failed"
)

// Error is a failed API call carrying the backend's own message when the
// response body provided one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// Client executes requests against the configured backend base URL.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	creds   *session.Store
	log     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, creds *session.Store, log *zap.Logger) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q: scheme and host required", baseURL)
	}
	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
		log:     log,
	}, nil
}

// RequestOptions shape a single call through the executor.
type RequestOptions struct {
	// Method defaults to GET.
	Method string
	// Payload, when non-nil, is marshaled as the JSON request body.
	Payload any
	// Query is appended to the path.
	Query url.Values
	// NoAuth skips both credential headers. Login, register, password
	// flows and the refresh call itself precede having a session.
	NoAuth bool
}

// Do executes one resilient request and decodes the 2xx response body into
// T. An empty body decodes to the zero value.
func Do[T any](ctx context.Context, c *Client, path string, opts RequestOptions) (T, error) {
	var result T

	body, err := c.do(ctx, path, opts, false)
	if err != nil {
		return result, err
	}
	if len(body) == 0 {
		return result, nil
	}
	if err := json.Unmarshal(body, &result); err != nil {
		c.log.Warn("unparseable response body",
			zap.String("path", path), zap.Error(err))
		return result, &Error{Status: http.StatusOK, Message: genericErrorMessage}
	}
	return result, nil
}

// do runs the transport once and applies the one-shot refresh-and-retry
// protocol: a 401 with a refresh token available and no retry spent yet
// rotates the session through /auth/refresh and replays the original call
// exactly once. A failed refresh falls through to the normal error path and
// intentionally does NOT clear the stale session; logout is a separate,
// explicit action.
func (c *Client) do(ctx context.Context, path string, opts RequestOptions, retried bool) ([]byte, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var accessToken, refreshToken string
	if !opts.NoAuth {
		accessToken = c.creds.AccessToken()
		refreshToken = c.creds.RefreshToken()
	}

	body, status, err := c.transport(ctx, method, path, opts, accessToken, refreshToken)
	if err != nil {
		return nil, err
	}
	if status >= 200 && status < 300 {
		return body, nil
	}

	if status == http.StatusUnauthorized && !retried && refreshToken != "" {
		if refreshErr := c.refreshCredentials(ctx, refreshToken); refreshErr == nil {
			return c.do(ctx, path, opts, true)
		}
	}

	return nil, apiError(status, body)
}

func (c *Client) transport(ctx context.Context, method, path string, opts RequestOptions, accessToken, refreshToken string) ([]byte, int, error) {
	rel := &url.URL{Path: path}
	if len(opts.Query) > 0 {
		rel.RawQuery = opts.Query.Encode()
	}
	reqURL := c.baseURL.ResolveReference(rel)

	var reqBody *bytes.Reader
	if opts.Payload != nil {
		raw, err := json.Marshal(opts.Payload)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal payload: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerRequestID, uuid.NewString())
	if accessToken != "" {
		req.Header.Set(headerAuthorization, "Bearer "+accessToken)
	}
	if refreshToken != "" {
		req.Header.Set(headerRefreshToken, refreshToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(method, "transport_error").Inc()
		return nil, 0, &Error{Message: genericErrorMessage}
	}
	defer resp.Body.Close()

	metrics.RequestsTotal.WithLabelValues(method, statusClass(resp.StatusCode)).Inc()

	data, err := readAll(resp)
	if err != nil {
		return nil, 0, &Error{Status: resp.StatusCode, Message: genericErrorMessage}
	}

	c.log.Debug("api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode))

	return data, resp.StatusCode, nil
}

// refreshCredentials rotates the session through the unauthenticated
// refresh endpoint. The session is replaced unconditionally; the user
// record is replaced only when the response carries one, so a token-only
// refresh keeps the last-known identity.
func (c *Client) refreshCredentials(ctx context.Context, refreshToken string) error {
	metrics.TokenRefreshTotal.Inc()

	refreshed, err := Do[AuthSession](ctx, c, "/auth/refresh", RequestOptions{
		Method:  http.MethodPost,
		Payload: map[string]string{"refresh_token": refreshToken},
		NoAuth:  true,
	})
	if err != nil {
		metrics.TokenRefreshFailedTotal.Inc()
		c.log.Warn("session refresh failed", zap.Error(err))
		return err
	}

	user := refreshed.User
	if len(user) == 0 {
		user = c.creds.User()
	}
	c.creds.Save(refreshed.Session, user)
	c.log.Debug("session refreshed")
	return nil
}

// apiError builds the surfaced error: body detail, else body message, else
// the HTTP status text, else a generic fallback.
func apiError(status int, body []byte) *Error {
	var parsed errorBody
	if len(body) > 0 {
		_ = json.Unmarshal(body, &parsed)
	}

	message := parsed.Detail
	if message == "" {
		message = parsed.Message
	}
	if message == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = genericErrorMessage
	}
	return &Error{Status: status, Message: message}
}

func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}

func readAll(resp *http.Response) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
