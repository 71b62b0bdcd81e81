package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bafain/storefront-client/internal/api"
	"github.com/bafain/storefront-client/internal/auth"
	"github.com/bafain/storefront-client/internal/cart"
	"github.com/bafain/storefront-client/internal/products"
	"github.com/bafain/storefront-client/internal/session"
	"github.com/bafain/storefront-client/internal/storage"
)

// fakeBackend simulates the commerce API far enough to run a full
// login → cart → checkout → payment pass, including an access-token expiry
// in the middle of it.
type fakeBackend struct {
	mu          sync.Mutex
	validAccess string
	cartItems   []api.CartItem
	orderPlaced bool
}

func (b *fakeBackend) router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/auth/register", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, map[string]string{"message": "Pendaftaran berhasil, silakan login."})
	}).Methods(http.MethodPost)

	r.HandleFunc("/auth/login", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		b.validAccess = "at-1"
		b.mu.Unlock()
		writeJSON(w, api.AuthSession{
			Session: json.RawMessage(`{"access_token":"at-1","refresh_token":"rt-1"}`),
			User:    json.RawMessage(`{"id":"u-1","email":"budi@example.com"}`),
		})
	}).Methods(http.MethodPost)

	r.HandleFunc("/auth/refresh", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		b.validAccess = "at-2"
		b.mu.Unlock()
		writeJSON(w, api.AuthSession{
			Session: json.RawMessage(`{"access_token":"at-2","refresh_token":"rt-2"}`),
			User:    json.RawMessage(`{"id":"u-1","email":"budi@example.com"}`),
		})
	}).Methods(http.MethodPost)

	authorized := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			valid := "Bearer " + b.validAccess
			b.mu.Unlock()
			if req.Header.Get("Authorization") != valid {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"detail":"token kadaluarsa"}`))
				return
			}
			next(w, req)
		}
	}

	r.HandleFunc("/products/p-1", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, api.Product{ID: "p-1", Title: "Sepatu Lari", PriceIDR: 250000})
	}).Methods(http.MethodGet)

	r.HandleFunc("/cart", authorized(func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, api.CartResponse{Items: b.cartItems, Currency: "IDR"})
	})).Methods(http.MethodGet)

	r.HandleFunc("/cart/items", authorized(func(w http.ResponseWriter, req *http.Request) {
		var payload struct {
			ProductID string `json:"product_id"`
			Qty       int64  `json:"qty"`
		}
		_ = json.NewDecoder(req.Body).Decode(&payload)
		item := api.CartItem{ID: "i-1", ProductID: payload.ProductID, Qty: payload.Qty}
		b.mu.Lock()
		b.cartItems = append(b.cartItems, item)
		b.mu.Unlock()
		writeJSON(w, api.CartItemResponse{Item: item})
	})).Methods(http.MethodPost)

	r.HandleFunc("/checkout/summary", authorized(func(w http.ResponseWriter, req *http.Request) {
		var payload api.SummaryRequest
		_ = json.NewDecoder(req.Body).Decode(&payload)
		summary := LocalSummary(payload.Subtotal, payload.ShippingOption.Price, "IDR")
		writeJSON(w, summary)
	})).Methods(http.MethodPost)

	r.HandleFunc("/orders", authorized(func(w http.ResponseWriter, req *http.Request) {
		var payload api.OrderCreatePayload
		_ = json.NewDecoder(req.Body).Decode(&payload)
		created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		expires := created.Add(24 * time.Hour)
		b.mu.Lock()
		b.orderPlaced = true
		b.mu.Unlock()
		writeJSON(w, api.OrderResponse{Order: api.Order{
			ID:            "ord-1",
			Status:        "pending",
			PaymentStatus: "unpaid",
			CreatedAt:     &created,
			ExpiresAt:     &expires,
			Total:         payload.Total,
			Currency:      "IDR",
		}})
	})).Methods(http.MethodPost)

	r.HandleFunc("/orders/ord-1/check-payment", authorized(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, api.OrderActionResponse{OrderID: "ord-1", Status: "processing"})
	})).Methods(http.MethodPost)

	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestCheckoutFlowEndToEnd(t *testing.T) {
	backend := &fakeBackend{}
	server := httptest.NewServer(backend.router())
	t.Cleanup(server.Close)

	log := zap.NewNop()
	kv := storage.NewFileStore("")
	creds := session.NewStore(kv)
	client, err := api.NewClient(server.URL, 5*time.Second, creds, log)
	require.NoError(t, err)

	authService := auth.NewService(client, creds, kv, nil, log)
	productCache := products.NewCache(client, log)
	cartStore := cart.NewStore(client, productCache, creds, log)
	checkoutStore := NewStore(client, cartStore, creds, kv, log)
	authService.OnLogout(cartStore.Reset)
	authService.OnLogout(checkoutStore.ClearOrder)

	ctx := context.Background()

	message, err := authService.Register(ctx, auth.RegisterInput{
		Name: "Budi Santoso", Email: "budi@example.com", Password: "rahasia123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, message)
	assert.False(t, creds.HasSession())

	require.NoError(t, authService.Login(ctx, "budi@example.com", "rahasia123"))

	require.NoError(t, cartStore.AddItem(ctx, "p-1", 2))
	require.NoError(t, cartStore.Load(ctx))
	cartSnap := cartStore.Snapshot()
	require.Len(t, cartSnap.Items, 1)
	assert.Equal(t, int64(500000), cartSnap.Subtotal)

	checkoutStore.SetCustomer(Customer{
		FullName:   "Budi Santoso",
		Phone:      "0812000111",
		Email:      "budi@example.com",
		Address:    "Jl. Merdeka 1",
		City:       "Jakarta",
		Province:   "DKI Jakarta",
		PostalCode: "10110",
	})
	require.NoError(t, checkoutStore.CalculateSummary(ctx))
	summary := checkoutStore.Snapshot().Summary
	require.NotNil(t, summary)
	assert.Equal(t, int64(500000), summary.Subtotal)
	assert.Equal(t, int64(50000), summary.ShippingFee)
	assert.Equal(t, int64(60500), summary.TaxAmount) // 0.11 × 550000
	assert.Equal(t, int64(610500), summary.Total)

	// The access token expires before order placement; the resilient client
	// is expected to refresh and replay without surfacing an error.
	backend.mu.Lock()
	backend.validAccess = "at-rotated-away"
	backend.mu.Unlock()

	orderID, err := checkoutStore.PlaceOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ord-1", orderID)
	assert.Equal(t, "at-2", creds.AccessToken())

	snap := checkoutStore.Snapshot()
	require.NotNil(t, snap.PaymentDeadline)
	remaining, expired := checkoutStore.PaymentWindow()
	if !expired {
		assert.Positive(t, remaining)
	}

	// The deadline in this scenario is in the past relative to the real
	// clock, so the payment check must be blocked locally.
	_, err = checkoutStore.CheckPaymentStatus(ctx)
	assert.ErrorIs(t, err, ErrPaymentExpired)

	// Re-entry: clearing the expired order reopens checkout.
	checkoutStore.ClearOrder()
	assert.Empty(t, checkoutStore.Snapshot().OrderID)
	_, err = checkoutStore.CheckPaymentStatus(ctx)
	assert.ErrorIs(t, err, ErrNoOrder)

	// A fresh order against a live window confirms payment.
	checkoutStore.timeNow = fixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	orderID, err = checkoutStore.PlaceOrder(ctx)
	require.NoError(t, err)
	require.Equal(t, "ord-1", orderID)
	paid, err := checkoutStore.CheckPaymentStatus(ctx)
	require.NoError(t, err)
	assert.True(t, paid)
	assert.Equal(t, "paid", checkoutStore.Snapshot().PaymentStatus)

	authService.Logout()
	assert.False(t, creds.HasSession())
	assert.Empty(t, cartStore.Snapshot().Items)
	assert.Empty(t, checkoutStore.Snapshot().OrderID)
}
