//go:generate mockgen -source ./store.go -destination=./mocks/store.go -package=mock_cart
package cart

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bafain/storefront-client/internal/api"
	"github.com/bafain/storefront-client/internal/metrics"
)

// API is the slice of the backend surface the cart mirror needs.
type API interface {
	GetCart(ctx context.Context) (api.CartResponse, error)
	AddCartItem(ctx context.Context, productID string, qty int64) (api.CartItemResponse, error)
	UpdateCartItem(ctx context.Context, itemID string, qty int64) (api.CartItemResponse, error)
	DeleteCartItem(ctx context.Context, itemID string) (api.CartItemDeleteResponse, error)
}

// ProductResolver resolves product snapshots best-effort; a nil result
// means "unknown product", rendered with a fallback.
type ProductResolver interface {
	Resolve(ctx context.Context, productID string) *api.Product
}

// Credentials is the read-only view of the session the store needs.
type Credentials interface {
	HasSession() bool
}

// Line is one product/quantity pairing in the local mirror. Product may be
// nil; quantity math never depends on it.
type Line struct {
	ID        string
	ProductID string
	Qty       int64
	Product   *api.Product
}

// State is the observable store snapshot. Error carries the user-facing
// message of the last failed operation; callers read it instead of
// handling panics or losing errors in the UI layer.
type State struct {
	Items    []Line
	Subtotal int64
	Currency string
	Loading  bool
	Error    string
}

const (
	defaultCurrency = "IDR"

	msgGeneric     = "Terjadi kesalahan, silakan coba lagi."
	msgLoginAdd    = "Silakan login untuk menambahkan produk."
	msgLoginUpdate = "Silakan login untuk memperbarui keranjang."
	msgLoginRemove = "Silakan login untuk menghapus produk."
	msgBadQty      = "Jumlah produk tidak valid."
)

// Store mirrors the server cart locally. Mutations are write-after: the
// local mirror changes only once the remote call has succeeded, so a failed
// mutation leaves local state untouched and surfaces Error.
//
// Mutations touching the same line are serialized through a per-line lock,
// and adds for the same product through a per-product lock; independent
// lines stay concurrent. Rapid repeated mutations on one line therefore
// apply in order instead of racing.
type Store struct {
	api      API
	products ProductResolver
	creds    Credentials
	log      *zap.Logger

	mu    sync.Mutex
	state State

	lineMu    sync.Mutex
	lineLocks map[string]*sync.Mutex
}

func NewStore(apiClient API, products ProductResolver, creds Credentials, log *zap.Logger) *Store {
	return &Store{
		api:       apiClient,
		products:  products,
		creds:     creds,
		log:       log,
		state:     State{Currency: defaultCurrency},
		lineLocks: make(map[string]*sync.Mutex),
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.state
	snap.Items = append([]Line(nil), s.state.Items...)
	return snap
}

// Load refreshes the mirror from the server. Without an access credential
// it resets to an empty guest cart and performs no network call.
func (s *Store) Load(ctx context.Context) error {
	s.begin()
	defer s.finish()

	if !s.creds.HasSession() {
		s.mu.Lock()
		s.state.Items = nil
		s.state.Subtotal = 0
		s.state.Currency = defaultCurrency
		s.mu.Unlock()
		return nil
	}

	resp, err := s.api.GetCart(ctx)
	if err != nil {
		return s.fail("load", err)
	}

	lines := s.enrich(ctx, resp.Items)

	subtotal := computeSubtotal(lines)
	if subtotal == 0 {
		subtotal = resp.Subtotal
	}
	currency := resp.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	s.mu.Lock()
	s.state.Items = lines
	s.state.Subtotal = subtotal
	s.state.Currency = currency
	s.mu.Unlock()
	return nil
}

// AddItem adds qty of a product. When a line for the product already exists
// its quantity is bumped through the update endpoint instead of creating a
// duplicate line.
func (s *Store) AddItem(ctx context.Context, productID string, qty int64) error {
	s.begin()
	defer s.finish()

	if qty <= 0 {
		return s.failLocal("add_item", msgBadQty)
	}
	if !s.creds.HasSession() {
		return s.failLocal("add_item", msgLoginAdd)
	}

	// All adds for one product funnel through the same lock, so the
	// existence check and the quantity math below always see the adds
	// that came before them. The check must not happen before the lock
	// is held: two racing adds would both read the same stale quantity.
	unlock := s.lockLine("product:" + productID)
	defer unlock()

	existing, ok := s.findByProduct(productID)
	if !ok {
		return s.createLine(ctx, productID, qty)
	}

	unlockLine := s.lockLine(existing.ID)
	defer unlockLine()

	// Re-read under the line lock: a direct quantity update may have moved
	// the line since the lookup, or a removal may have dropped it.
	current, ok := s.findByProduct(productID)
	if !ok {
		return s.createLine(ctx, productID, qty)
	}

	newQty := current.Qty + qty
	if _, err := s.api.UpdateCartItem(ctx, current.ID, newQty); err != nil {
		return s.fail("add_item", err)
	}
	s.applyQty(current.ID, newQty)
	metrics.CartMutationsTotal.WithLabelValues("merge_add").Inc()
	return nil
}

func (s *Store) createLine(ctx context.Context, productID string, qty int64) error {
	resp, err := s.api.AddCartItem(ctx, productID, qty)
	if err != nil {
		return s.fail("add_item", err)
	}

	item := resp.Item
	if item.ProductID == "" {
		item.ProductID = productID
	}
	line := Line{
		ID:        item.ID,
		ProductID: item.ProductID,
		Qty:       item.Qty,
		Product:   s.products.Resolve(ctx, item.ProductID),
	}

	s.mu.Lock()
	s.state.Items = append(s.state.Items, line)
	s.state.Subtotal = computeSubtotal(s.state.Items)
	s.mu.Unlock()
	metrics.CartMutationsTotal.WithLabelValues("add").Inc()
	return nil
}

// UpdateItem sets a line's quantity. A non-positive quantity removes the
// line instead of issuing a pointless round trip.
func (s *Store) UpdateItem(ctx context.Context, itemID string, qty int64) error {
	if qty <= 0 {
		return s.RemoveItem(ctx, itemID)
	}

	s.begin()
	defer s.finish()

	if !s.creds.HasSession() {
		return s.failLocal("update_item", msgLoginUpdate)
	}

	unlock := s.lockLine(itemID)
	defer unlock()

	if _, err := s.api.UpdateCartItem(ctx, itemID, qty); err != nil {
		return s.fail("update_item", err)
	}
	s.applyQty(itemID, qty)
	metrics.CartMutationsTotal.WithLabelValues("update").Inc()
	return nil
}

// RemoveItem deletes a line.
func (s *Store) RemoveItem(ctx context.Context, itemID string) error {
	s.begin()
	defer s.finish()

	if !s.creds.HasSession() {
		return s.failLocal("remove_item", msgLoginRemove)
	}

	unlock := s.lockLine(itemID)
	defer unlock()

	resp, err := s.api.DeleteCartItem(ctx, itemID)
	if err != nil {
		return s.fail("remove_item", err)
	}
	if !resp.Deleted {
		return nil
	}

	s.mu.Lock()
	items := s.state.Items[:0:0]
	for _, line := range s.state.Items {
		if line.ID != itemID {
			items = append(items, line)
		}
	}
	s.state.Items = items
	s.state.Subtotal = computeSubtotal(items)
	s.mu.Unlock()
	metrics.CartMutationsTotal.WithLabelValues("remove").Inc()
	return nil
}

// Reset drops the local mirror. Called when the session is destroyed; the
// server cart persists.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{Currency: defaultCurrency}
}

// ClearError discards the recorded error message.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = ""
}

// enrich resolves product snapshots for all lines concurrently.
// Resolution is best-effort: a failed lookup leaves Product nil.
func (s *Store) enrich(ctx context.Context, items []api.CartItem) []Line {
	lines := make([]Line, len(items))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		i, item := i, item
		lines[i] = Line{ID: item.ID, ProductID: item.ProductID, Qty: item.Qty}
		g.Go(func() error {
			lines[i].Product = s.products.Resolve(gctx, item.ProductID)
			return nil
		})
	}
	_ = g.Wait()
	return lines
}

func computeSubtotal(lines []Line) int64 {
	var total int64
	for _, line := range lines {
		if line.Product != nil {
			total += line.Product.PriceIDR * line.Qty
		}
	}
	return total
}

func (s *Store) findByProduct(productID string) (Line, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, line := range s.state.Items {
		if line.ProductID == productID {
			return line, true
		}
	}
	return Line{}, false
}

func (s *Store) applyQty(itemID string, qty int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Items {
		if s.state.Items[i].ID == itemID {
			s.state.Items[i].Qty = qty
		}
	}
	s.state.Subtotal = computeSubtotal(s.state.Items)
}

// lockLine serializes mutations per cart line.
func (s *Store) lockLine(key string) func() {
	s.lineMu.Lock()
	lock, ok := s.lineLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.lineLocks[key] = lock
	}
	s.lineMu.Unlock()

	lock.Lock()
	return lock.Unlock
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
	metrics.OperationErrorsTotal.WithLabelValues("cart_" + operation).Inc()
	s.log.Warn("cart operation failed",
		zap.String("operation", operation), zap.Error(err))

	message := err.Error()
	if message == "" {
		message = msgGeneric
	}
	s.mu.Lock()
	s.state.Error = message
	s.mu.Unlock()
	return err
}

func (s *Store) failLocal(operation, message string) error {
	metrics.OperationErrorsTotal.WithLabelValues("cart_" + operation).Inc()
	s.mu.Lock()
	s.state.Error = message
	s.mu.Unlock()
	return &LocalError{Message: message}
}

// LocalError is a mutation rejected client-side before any network call:
// missing session or invalid input.
type LocalError struct {
	Message string
}

func (e *LocalError) Error() string {
	return e.Message
}
