//go:generate mockgen -source ./store.go -destination=./mocks/store.go -package=mock_checkout
package checkout

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/bafain/storefront-client/internal/api"
	"github.com/bafain/storefront-client/internal/cart"
	"github.com/bafain/storefront-client/internal/metrics"
)

// TaxRate is the fixed tax applied to (subtotal + shipping fee).
const TaxRate = 0.11

// defaultPaymentWindow is used only when the backend returns an order
// without its own deadline; normally the deadline is server-supplied.
const defaultPaymentWindow = 24 * time.Hour

// API is the backend surface the orchestrator calls through.
type API interface {
	CheckoutSummary(ctx context.Context, payload api.SummaryRequest) (api.SummaryResponse, error)
	SelectShipping(ctx context.Context, optionID string) (api.SelectShippingResponse, error)
	CreateOrder(ctx context.Context, payload api.OrderCreatePayload) (api.OrderResponse, error)
	GetOrder(ctx context.Context, orderID string) (api.OrderResponse, error)
	CheckPayment(ctx context.Context, orderID string) (api.OrderActionResponse, error)
}

// CartReader exposes the cart mirror the orchestrator prices from.
type CartReader interface {
	Snapshot() cart.State
}

// Credentials is the read-only session view.
type Credentials interface {
	HasSession() bool
}

// KV is the durable storage surface for selection/summary/order continuity
// across restarts.
type KV interface {
	Get(key string) (string, bool)
	GetJSON(key string, dest any) bool
	Set(key, value string)
	SetJSON(key string, v any)
	Delete(keys ...string)
}

// Durable keys for checkout continuity.
const (
	keyShippingMethod  = "checkout:shippingMethod"
	keyShippingLabel   = "checkout:shippingLabel"
	keyShippingDetail  = "checkout:shippingDetail"
	keyShippingPrice   = "checkout:shippingPrice"
	keyCarrier         = "checkout:carrier"
	keyCarrierLabel    = "checkout:carrierLabel"
	keyPackaging       = "checkout:packaging"
	keyPackagingLabel  = "checkout:packagingLabel"
	keyPaymentMethod   = "checkout:paymentMethod"
	keyPaymentLabel    = "checkout:paymentLabel"
	keySummary         = "checkout:summary"
	keyOrderID         = "checkout:orderId"
	keyPaymentDeadline = "checkout:paymentDeadline"
)

// Customer is the checkout draft's customer block, mutated field by field
// and never persisted server-side until order placement.
type Customer struct {
	FullName     string
	Phone        string
	Email        string
	Address      string
	AddressLine2 string
	City         string
	Province     string
	PostalCode   string
	Country      string
	Notes        string
}

// State is the orchestrator's observable snapshot.
type State struct {
	Customer            Customer
	PaymentMethod       PaymentMethod
	ShippingOptions     []ShippingOption
	SelectedShippingID  string
	CarrierOptions      []CarrierOption
	SelectedCarrierID   string
	PackagingOptions    []PackagingOption
	SelectedPackagingID string
	Summary             *api.SummaryResponse
	OrderID             string
	OrderStatus         string
	PaymentStatus       string
	PaymentDeadline     *time.Time
	Loading             bool
	Error               string
}

var (
	// ErrPaymentExpired blocks payment checks after the window closed.
	ErrPaymentExpired = errors.New("batas waktu pembayaran telah berakhir")
	// ErrNoOrder means no order has been placed in this checkout.
	ErrNoOrder = errors.New("pesanan belum tersedia")
	// ErrNoSession rejects operations requiring a logged-in session.
	ErrNoSession = errors.New("silakan login untuk melanjutkan pemesanan")
)

// Store orchestrates the checkout flow: draft selections, priced summary,
// order placement and the time-boxed payment window.
type Store struct {
	api   API
	cart  CartReader
	creds Credentials
	kv    KV
	log   *zap.Logger

	mu        sync.Mutex
	state     State
	countdown *Countdown

	timeNow func() time.Time
}

func NewStore(apiClient API, cartStore CartReader, creds Credentials, kv KV, log *zap.Logger) *Store {
	s := &Store{
		api:     apiClient,
		cart:    cartStore,
		creds:   creds,
		kv:      kv,
		log:     log,
		timeNow: time.Now,
	}
	s.state = s.restore()
	return s
}

// restore rebuilds selection state from durable storage so a restart
// resumes the same draft.
func (s *Store) restore() State {
	state := State{
		ShippingOptions:     fallbackShippingOptions,
		SelectedShippingID:  s.stored(keyShippingMethod, fallbackShippingOptions[0].ID),
		CarrierOptions:      defaultCarrierOptions,
		SelectedCarrierID:   s.stored(keyCarrier, defaultCarrierOptions[0].ID),
		PackagingOptions:    defaultPackagingOptions,
		SelectedPackagingID: s.stored(keyPackaging, defaultPackagingOptions[0].ID),
		PaymentMethod: PaymentMethod{
			ID:    s.stored(keyPaymentMethod, defaultPaymentMethod.ID),
			Label: s.stored(keyPaymentLabel, defaultPaymentMethod.Label),
		},
		OrderID: s.stored(keyOrderID, ""),
	}

	var summary api.SummaryResponse
	if s.kv.GetJSON(keySummary, &summary) {
		state.Summary = &summary
	}
	if raw, ok := s.kv.Get(keyPaymentDeadline); ok {
		if deadline, err := time.Parse(time.RFC3339, raw); err == nil {
			state.PaymentDeadline = &deadline
		}
	}
	return state
}

func (s *Store) stored(key, fallback string) string {
	if v, ok := s.kv.Get(key); ok && v != "" {
		return v
	}
	return fallback
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.state
	if s.state.Summary != nil {
		summary := *s.state.Summary
		snap.Summary = &summary
	}
	if s.state.PaymentDeadline != nil {
		deadline := *s.state.PaymentDeadline
		snap.PaymentDeadline = &deadline
	}
	return snap
}

// SetCustomer replaces the draft's customer block.
func (s *Store) SetCustomer(customer Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Customer = customer
}

// SetCustomerField mutates one draft field by name.
func (s *Store) SetCustomerField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch field {
	case "full_name":
		s.state.Customer.FullName = value
	case "phone":
		s.state.Customer.Phone = value
	case "email":
		s.state.Customer.Email = value
	case "address":
		s.state.Customer.Address = value
	case "address2":
		s.state.Customer.AddressLine2 = value
	case "city":
		s.state.Customer.City = value
	case "province":
		s.state.Customer.Province = value
	case "postal_code":
		s.state.Customer.PostalCode = value
	case "country":
		s.state.Customer.Country = value
	case "notes":
		s.state.Customer.Notes = value
	default:
		return errors.New("unknown customer field: " + field)
	}
	return nil
}

// PrefillCustomer fills empty draft fields from the profile's default
// address.
func (s *Store) PrefillCustomer(profile api.ProfilePayload, address *api.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := &s.state.Customer
	setIfEmpty(&c.FullName, profile.FullName)
	setIfEmpty(&c.Phone, profile.Phone)
	setIfEmpty(&c.Email, profile.Email)
	if address == nil {
		return
	}
	setIfEmpty(&c.FullName, address.RecipientName)
	setIfEmpty(&c.Phone, address.Phone)
	setIfEmpty(&c.Address, address.AddressLine1)
	setIfEmpty(&c.AddressLine2, address.AddressLine2)
	setIfEmpty(&c.City, address.City)
	setIfEmpty(&c.Province, address.Province)
	setIfEmpty(&c.PostalCode, address.PostalCode)
	setIfEmpty(&c.Country, address.Country)
}

func setIfEmpty(dest *string, value string) {
	if *dest == "" && value != "" {
		*dest = value
	}
}

// SetPaymentMethod selects a payment channel and mirrors it durably.
func (s *Store) SetPaymentMethod(method PaymentMethod) {
	s.kv.Set(keyPaymentMethod, method.ID)
	s.kv.Set(keyPaymentLabel, method.Label)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.PaymentMethod = method
}

// SetShippingOption selects a shipping tier, mirrors it durably and
// best-effort reports the selection to the backend.
func (s *Store) SetShippingOption(ctx context.Context, optionID string) {
	s.mu.Lock()
	selected := findShippingOption(s.state.ShippingOptions, optionID)
	s.state.SelectedShippingID = optionID
	s.mu.Unlock()

	s.kv.Set(keyShippingMethod, optionID)
	s.kv.Set(keyShippingLabel, selected.Title)
	s.kv.Set(keyShippingDetail, selected.Detail)
	s.kv.SetJSON(keyShippingPrice, selected.Price)

	if !s.creds.HasSession() {
		return
	}
	if _, err := s.api.SelectShipping(ctx, optionID); err != nil {
		// Selection reporting is advisory; keep the UI responsive.
		s.log.Debug("select-shipping call failed", zap.Error(err))
	}
}

// SetCarrier selects a courier and mirrors it durably.
func (s *Store) SetCarrier(carrierID string) {
	s.mu.Lock()
	selected := findCarrier(s.state.CarrierOptions, carrierID)
	s.state.SelectedCarrierID = carrierID
	s.mu.Unlock()
	s.kv.Set(keyCarrier, carrierID)
	s.kv.Set(keyCarrierLabel, selected.Label)
}

// SetPackaging selects a packaging style and mirrors it durably.
func (s *Store) SetPackaging(packagingID string) {
	s.mu.Lock()
	selected := findPackaging(s.state.PackagingOptions, packagingID)
	s.state.SelectedPackagingID = packagingID
	s.mu.Unlock()
	s.kv.Set(keyPackaging, packagingID)
	s.kv.Set(keyPackagingLabel, selected.Label)
}

// LocalSummary derives the fallback summary from a subtotal and shipping
// fee: tax = round(TaxRate × (subtotal + fee)).
func LocalSummary(subtotal, shippingFee int64, currency string) api.SummaryResponse {
	if currency == "" {
		currency = "IDR"
	}
	pretax := subtotal + shippingFee
	tax := int64(math.Round(TaxRate * float64(pretax)))
	return api.SummaryResponse{
		Subtotal:    subtotal,
		ShippingFee: shippingFee,
		TaxAmount:   tax,
		Total:       pretax + tax,
		Currency:    currency,
	}
}

// CalculateSummary recomputes the priced summary. The locally derived
// value is always available as a fallback; the backend's computation is
// authoritative when reachable, except when it reports a zero total
// against a non-zero local subtotal, a known cart/summary desync that the
// local value papers over deliberately.
func (s *Store) CalculateSummary(ctx context.Context) error {
	s.begin()
	defer s.finish()

	cartState := s.cart.Snapshot()
	s.mu.Lock()
	selected := findShippingOption(s.state.ShippingOptions, s.state.SelectedShippingID)
	customer := s.state.Customer
	s.mu.Unlock()

	local := LocalSummary(cartState.Subtotal, selected.Price, cartState.Currency)

	if !s.creds.HasSession() {
		s.setSummary(local)
		return nil
	}

	resp, err := s.api.CheckoutSummary(ctx, api.SummaryRequest{
		Address: addressPayload(customer),
		ShippingOption: api.ShippingOptionPayload{
			ID:      selected.ID,
			Name:    selected.Title,
			Price:   selected.Price,
			ETAText: selected.Detail,
		},
		Subtotal: cartState.Subtotal,
	})
	if err != nil {
		s.setSummary(local)
		return s.fail("summary", err)
	}

	summary := resp
	if resp.Total == 0 && cartState.Subtotal > 0 {
		summary = local
		if resp.Currency != "" {
			summary.Currency = resp.Currency
		}
	}
	s.setSummary(summary)
	return nil
}

func (s *Store) setSummary(summary api.SummaryResponse) {
	s.kv.SetJSON(keySummary, summary)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Summary = &summary
}

// PlaceOrder assembles the draft into an order-creation payload and places
// the order. On success the order id is stored durably and returned; on
// failure the id is empty and Error records the cause.
func (s *Store) PlaceOrder(ctx context.Context) (string, error) {
	s.begin()
	defer s.finish()

	if !s.creds.HasSession() {
		return "", s.failErr("place_order", ErrNoSession)
	}

	cartState := s.cart.Snapshot()
	s.mu.Lock()
	selected := findShippingOption(s.state.ShippingOptions, s.state.SelectedShippingID)
	customer := s.state.Customer
	payment := s.state.PaymentMethod
	summary := s.state.Summary
	s.mu.Unlock()

	if summary == nil {
		local := LocalSummary(cartState.Subtotal, selected.Price, cartState.Currency)
		summary = &local
	}

	items := make([]api.OrderItem, 0, len(cartState.Items))
	for _, line := range cartState.Items {
		items = append(items, api.OrderItem{ProductID: line.ProductID, Qty: line.Qty})
	}

	resp, err := s.api.CreateOrder(ctx, api.OrderCreatePayload{
		Address: addressPayload(customer),
		ShippingOption: api.ShippingOptionPayload{
			ID:      selected.ID,
			Name:    selected.Title,
			Price:   selected.Price,
			ETAText: selected.Detail,
		},
		CustomerNote:  customer.Notes,
		Items:         items,
		Subtotal:      summary.Subtotal,
		ShippingFee:   summary.ShippingFee,
		TaxAmount:     summary.TaxAmount,
		Total:         summary.Total,
		PaymentMethod: api.PaymentMethodPayload{ID: payment.ID, Label: payment.Label},
	})
	if err != nil {
		return "", s.fail("place_order", err)
	}

	order := resp.Order
	deadline := s.deadlineFor(order)

	s.kv.Set(keyOrderID, order.ID)
	s.kv.Set(keyPaymentDeadline, deadline.Format(time.RFC3339))

	s.mu.Lock()
	s.state.OrderID = order.ID
	s.state.OrderStatus = order.Status
	s.state.PaymentStatus = order.PaymentStatus
	s.state.PaymentDeadline = &deadline
	s.mu.Unlock()

	metrics.OrdersPlacedTotal.Inc()
	s.log.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Time("payment_deadline", deadline))
	return order.ID, nil
}

func (s *Store) deadlineFor(order api.Order) time.Time {
	if order.ExpiresAt != nil {
		return *order.ExpiresAt
	}
	if order.CreatedAt != nil {
		return order.CreatedAt.Add(defaultPaymentWindow)
	}
	return s.timeNow().Add(defaultPaymentWindow)
}

// LoadOrder refreshes order status from the backend.
func (s *Store) LoadOrder(ctx context.Context, orderID string) error {
	if orderID == "" {
		return nil
	}

	s.begin()
	defer s.finish()

	if !s.creds.HasSession() {
		return nil
	}

	resp, err := s.api.GetOrder(ctx, orderID)
	if err != nil {
		return s.fail("load_order", err)
	}

	order := resp.Order
	deadline := s.deadlineFor(order)
	s.kv.Set(keyOrderID, order.ID)
	s.kv.Set(keyPaymentDeadline, deadline.Format(time.RFC3339))

	s.mu.Lock()
	s.state.OrderID = order.ID
	s.state.OrderStatus = order.Status
	s.state.PaymentStatus = order.PaymentStatus
	s.state.PaymentDeadline = &deadline
	s.mu.Unlock()
	return nil
}

// CheckPaymentStatus polls the backend for payment confirmation. Once the
// payment window has expired the check is rejected locally: confirming a
// stale order would mislead the customer.
func (s *Store) CheckPaymentStatus(ctx context.Context) (bool, error) {
	s.mu.Lock()
	orderID := s.state.OrderID
	s.mu.Unlock()

	if orderID == "" {
		return false, s.failErr("check_payment", ErrNoOrder)
	}
	if remaining, expired := s.PaymentWindow(); expired {
		s.log.Debug("payment check blocked, window expired",
			zap.String("order_id", orderID), zap.Duration("remaining", remaining))
		return false, s.failErr("check_payment", ErrPaymentExpired)
	}

	s.begin()
	defer s.finish()

	if !s.creds.HasSession() {
		return false, s.failErr("check_payment", ErrNoSession)
	}

	resp, err := s.api.CheckPayment(ctx, orderID)
	if err != nil {
		return false, s.fail("check_payment", err)
	}

	s.mu.Lock()
	s.state.OrderStatus = resp.Status
	s.state.PaymentStatus = "paid"
	s.mu.Unlock()
	return true, nil
}

// AwaitPayment polls payment status at the given cadence until the backend
// confirms payment, the window expires, or ctx is done. Transient backend
// failures keep the poll alive; only the local rejections end it.
func (s *Store) AwaitPayment(ctx context.Context, interval time.Duration) (bool, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		paid, err := s.CheckPaymentStatus(ctx)
		if err != nil {
			if errors.Is(err, ErrNoOrder) || errors.Is(err, ErrPaymentExpired) || errors.Is(err, ErrNoSession) {
				return false, err
			}
		} else if paid {
			return true, nil
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}

// PaymentWindow derives the remaining time before the payment deadline.
// Remaining is recomputed from the deadline timestamp and the clock, never
// decremented, so suspended processes stay accurate.
func (s *Store) PaymentWindow() (time.Duration, bool) {
	s.mu.Lock()
	deadline := s.state.PaymentDeadline
	s.mu.Unlock()

	if deadline == nil {
		return 0, false
	}
	remaining := deadline.Sub(s.timeNow())
	if remaining <= 0 {
		return 0, true
	}
	return remaining, false
}

// ClearOrder resets order id, status, summary and deadline. This is the
// only way out of the expired state and the start of a fresh checkout.
func (s *Store) ClearOrder() {
	s.StopCountdown()
	s.kv.Delete(keyOrderID, keyPaymentDeadline, keySummary)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.OrderID = ""
	s.state.OrderStatus = ""
	s.state.PaymentStatus = ""
	s.state.Summary = nil
	s.state.PaymentDeadline = nil
	s.state.Error = ""
}

func addressPayload(customer Customer) api.AddressPayload {
	return api.AddressPayload{
		FullName:     customer.FullName,
		Phone:        customer.Phone,
		Email:        customer.Email,
		AddressLine1: customer.Address,
		AddressLine2: customer.AddressLine2,
		City:         customer.City,
		Province:     customer.Province,
		PostalCode:   customer.PostalCode,
		Country:      customer.Country,
		Notes:        customer.Notes,
	}
}

// ClearError discards the recorded error message.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = ""
}

func (s *Store) begin() {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Error = ""
	s.mu.Unlock()
}

func (s *Store) finish() {
	s.mu.Lock()
	s.state.Loading = false
	s.mu.Unlock()
}

func (s *Store) fail(operation string, err error) error {
	metrics.OperationErrorsTotal.WithLabelValues("checkout_" + operation).Inc()
	s.log.Warn("checkout operation failed",
		zap.String("operation", operation), zap.Error(err))

	message := err.Error()
	if message == "" {
		message = "Terjadi kesalahan, silakan coba lagi."
	}
	s.mu.Lock()
	s.state.Error = message
	s.mu.Unlock()
	return err
}

// failErr records a locally rejected operation without logging it as a
// backend failure.
func (s *Store) failErr(operation string, err error) error {
	metrics.OperationErrorsTotal.WithLabelValues("checkout_" + operation).Inc()
	s.mu.Lock()
	s.state.Error = err.Error()
	s.mu.Unlock()
	return err
}
