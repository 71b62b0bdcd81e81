package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bafain/storefront-client/internal/session"
	"github.com/bafain/storefront-client/internal/storage"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Store, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	creds := session.NewStore(storage.NewFileStore(""))
	client, err := NewClient(server.URL, 5*time.Second, creds, zap.NewNop())
	require.NoError(t, err)
	return client, creds, server
}

func saveSession(creds *session.Store, access, refresh string) {
	creds.Save(json.RawMessage(
		`{"access_token":"`+access+`","refresh_token":"`+refresh+`"}`), nil)
}

func TestNewClientRejectsBadBaseURL(t *testing.T) {
	creds := session.NewStore(storage.NewFileStore(""))
	_, err := NewClient("not-a-url", time.Second, creds, zap.NewNop())
	assert.Error(t, err)
}

func TestDoAttachesCredentialHeaders(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer at-1", r.Header.Get("Authorization"))
		assert.Equal(t, "rt-1", r.Header.Get("X-Refresh-Token"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "u-1"})
	}).Methods(http.MethodGet)

	client, creds, _ := newTestClient(t, router)
	saveSession(creds, "at-1", "rt-1")

	resp, err := Do[map[string]string](context.Background(), client, "/api/v1/me", RequestOptions{})
	require.NoError(t, err)
	assert.Equal(t, "u-1", resp["id"])
}

func TestDoNoAuthSkipsCredentialHeaders(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("X-Refresh-Token"))
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodPost)

	client, creds, _ := newTestClient(t, router)
	saveSession(creds, "at-1", "rt-1")

	_, err := Do[MessageResponse](context.Background(), client, "/auth/login", RequestOptions{
		Method: http.MethodPost,
		NoAuth: true,
	})
	require.NoError(t, err)
}

func TestErrorMessagePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{
			name:     "detail wins over message",
			status:   http.StatusBadRequest,
			body:     `{"detail":"Keranjang kosong","message":"ignored"}`,
			expected: "Keranjang kosong",
		},
		{
			name:     "message when no detail",
			status:   http.StatusConflict,
			body:     `{"message":"Stok tidak mencukupi"}`,
			expected: "Stok tidak mencukupi",
		},
		{
			name:     "status text when body is empty",
			status:   http.StatusNotFound,
			body:     "",
			expected: "Not Found",
		},
		{
			name:     "status text when body is not json",
			status:   http.StatusBadGateway,
			body:     "<html>upstream</html>",
			expected: "Bad Gateway",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := mux.NewRouter()
			router.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			client, _, _ := newTestClient(t, router)

			_, err := Do[OrderResponse](context.Background(), client, "/orders", RequestOptions{})
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.expected, apiErr.Message)
		})
	}
}

func TestRefreshAndRetryRotatesSession(t *testing.T) {
	var meCalls, refreshCalls atomic.Int64

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/me", func(w http.ResponseWriter, r *http.Request) {
		meCalls.Add(1)
		if r.Header.Get("Authorization") != "Bearer at-new" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"token kadaluarsa"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "u-1"})
	}).Methods(http.MethodGet)
	router.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		assert.Empty(t, r.Header.Get("Authorization"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "rt-old", payload["refresh_token"])

		_ = json.NewEncoder(w).Encode(AuthSession{
			Session: json.RawMessage(`{"access_token":"at-new","refresh_token":"rt-new"}`),
			User:    json.RawMessage(`{"id":"u-1"}`),
		})
	}).Methods(http.MethodPost)

	client, creds, _ := newTestClient(t, router)
	saveSession(creds, "at-expired", "rt-old")

	resp, err := Do[map[string]string](context.Background(), client, "/api/v1/me", RequestOptions{})
	require.NoError(t, err)
	assert.Equal(t, "u-1", resp["id"])

	assert.Equal(t, int64(2), meCalls.Load())
	assert.Equal(t, int64(1), refreshCalls.Load())
	assert.Equal(t, "at-new", creds.AccessToken())
	assert.Equal(t, "rt-new", creds.RefreshToken())
}

func TestRefreshWithoutUserKeepsStoredIdentity(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer at-new" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "u-1"})
	}).Methods(http.MethodGet)
	router.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		// Token-only rotation: no user block in the response.
		_ = json.NewEncoder(w).Encode(AuthSession{
			Session: json.RawMessage(`{"access_token":"at-new","refresh_token":"rt-new"}`),
		})
	}).Methods(http.MethodPost)

	client, creds, _ := newTestClient(t, router)
	creds.Save(
		json.RawMessage(`{"access_token":"at-expired","refresh_token":"rt-old"}`),
		json.RawMessage(`{"id":"u-1","email":"budi@example.com","name":"Budi"}`))

	_, err := Do[map[string]string](context.Background(), client, "/api/v1/me", RequestOptions{})
	require.NoError(t, err)

	assert.Equal(t, "at-new", creds.AccessToken())
	assert.NotNil(t, creds.User())
	assert.Equal(t, "Budi", creds.Identity().Name)
}

func TestRetryHappensAtMostOnce(t *testing.T) {
	var meCalls, refreshCalls atomic.Int64

	// The refresh succeeds but the replayed call is rejected again; the
	// client must surface the second rejection instead of looping.
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/me", func(w http.ResponseWriter, r *http.Request) {
		n := meCalls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		if n == 1 {
			_, _ = w.Write([]byte(`{"detail":"first rejection"}`))
			return
		}
		_, _ = w.Write([]byte(`{"detail":"second rejection"}`))
	}).Methods(http.MethodGet)
	router.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		_ = json.NewEncoder(w).Encode(AuthSession{
			Session: json.RawMessage(`{"access_token":"at-new","refresh_token":"rt-new"}`),
		})
	}).Methods(http.MethodPost)

	client, creds, _ := newTestClient(t, router)
	saveSession(creds, "at-expired", "rt-old")

	_, err := Do[map[string]string](context.Background(), client, "/api/v1/me", RequestOptions{})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "second rejection", apiErr.Message)

	assert.Equal(t, int64(2), meCalls.Load())
	assert.Equal(t, int64(1), refreshCalls.Load())
}

func TestNoRefreshWithoutRefreshToken(t *testing.T) {
	var meCalls, refreshCalls atomic.Int64

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/me", func(w http.ResponseWriter, r *http.Request) {
		meCalls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}).Methods(http.MethodGet)
	router.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
	}).Methods(http.MethodPost)

	client, creds, _ := newTestClient(t, router)
	creds.Save(json.RawMessage(`{"access_token":"at-expired"}`), nil)

	_, err := Do[map[string]string](context.Background(), client, "/api/v1/me", RequestOptions{})
	require.Error(t, err)

	assert.Equal(t, int64(1), meCalls.Load())
	assert.Equal(t, int64(0), refreshCalls.Load())
}

func TestFailedRefreshKeepsStaleSession(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"sesi berakhir"}`))
	}).Methods(http.MethodGet)
	router.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"refresh token tidak berlaku"}`))
	}).Methods(http.MethodPost)

	client, creds, _ := newTestClient(t, router)
	saveSession(creds, "at-expired", "rt-dead")

	_, err := Do[map[string]string](context.Background(), client, "/api/v1/me", RequestOptions{})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "sesi berakhir", apiErr.Message)

	// Logout is explicit; a failed refresh never wipes credentials.
	assert.Equal(t, "at-expired", creds.AccessToken())
	assert.Equal(t, "rt-dead", creds.RefreshToken())
}

func TestDoDecodesEmptyBodyToZeroValue(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/orders/o-1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodDelete)

	client, _, _ := newTestClient(t, router)

	resp, err := Do[MessageResponse](context.Background(), client, "/orders/o-1", RequestOptions{
		Method: http.MethodDelete,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Message)
}

func TestDoSendsQueryAndPayload(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sepatu", r.URL.Query().Get("search"))
		_ = json.NewEncoder(w).Encode([]Product{{ID: "p-1", Title: "Sepatu Lari"}})
	}).Methods(http.MethodGet)
	router.HandleFunc("/cart/items", func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "p-1", payload["product_id"])
		_ = json.NewEncoder(w).Encode(CartItemResponse{})
	}).Methods(http.MethodPost)

	client, _, _ := newTestClient(t, router)

	products, err := Do[[]Product](context.Background(), client, "/products", RequestOptions{
		Query: map[string][]string{"search": {"sepatu"}},
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Sepatu Lari", products[0].Title)

	_, err = Do[CartItemResponse](context.Background(), client, "/cart/items", RequestOptions{
		Method:  http.MethodPost,
		Payload: map[string]any{"product_id": "p-1", "qty": 1},
	})
	require.NoError(t, err)
}
