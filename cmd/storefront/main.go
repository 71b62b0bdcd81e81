package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bafain/storefront-client/internal/api"
	"github.com/bafain/storefront-client/internal/auth"
	"github.com/bafain/storefront-client/internal/cart"
	"github.com/bafain/storefront-client/internal/chat"
	"github.com/bafain/storefront-client/internal/checkout"
	"github.com/bafain/storefront-client/internal/config"
	"github.com/bafain/storefront-client/internal/logger"
	"github.com/bafain/storefront-client/internal/products"
	"github.com/bafain/storefront-client/internal/session"
	"github.com/bafain/storefront-client/internal/storage"
)

// app wires the client services together: one of everything, constructed
// at startup, torn down on logout.
type app struct {
	config   config.Config
	log      *zap.Logger
	creds    *session.Store
	auth     *auth.Service
	client   *api.Client
	products *products.Cache
	cart     *cart.Store
	checkout *checkout.Store
	chat     *chat.Store
}

func newApp() (*app, error) {
	cfg := config.Load()
	log := logger.New(cfg.Verbose)

	store := storage.NewFileStore(cfg.StatePath)
	creds := session.NewStore(store)

	client, err := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, creds, log)
	if err != nil {
		return nil, err
	}

	var authService *auth.Service
	idle := session.NewIdleWatcher(cfg.IdleTimeout, func() {
		authService.Logout()
	}, log)
	authService = auth.NewService(client, creds, store, idle, log)

	productCache := products.NewCache(client, log)
	cartStore := cart.NewStore(client, productCache, creds, log)
	checkoutStore := checkout.NewStore(client, cartStore, creds, store, log)
	chatStore := chat.NewStore(client, creds, store, log)

	authService.OnLogout(cartStore.Reset)
	authService.OnLogout(checkoutStore.ClearOrder)
	authService.OnLogout(productCache.Clear)
	authService.Resume()

	return &app{
		config:   cfg,
		log:      log,
		creds:    creds,
		auth:     authService,
		client:   client,
		products: productCache,
		cart:     cartStore,
		checkout: checkoutStore,
		chat:     chatStore,
	}, nil
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	application, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "init error:", err)
		os.Exit(1)
	}
	defer func() { _ = application.log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	application.auth.Touch()
	if err := application.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "account password")
		_ = fs.Parse(args)
		if err := a.auth.Login(ctx, *email, *password); err != nil {
			return err
		}
		identity := a.creds.Identity()
		fmt.Println("logged in as", identity.Email)
		return nil

	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		name := fs.String("name", "", "full name")
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "account password")
		phone := fs.String("phone", "", "phone number")
		_ = fs.Parse(args)
		message, err := a.auth.Register(ctx, auth.RegisterInput{
			Name: *name, Email: *email, Password: *password, Phone: *phone,
		})
		if err != nil {
			return err
		}
		fmt.Println(message)
		return nil

	case "logout":
		a.auth.Logout()
		fmt.Println("logged out")
		return nil

	case "whoami":
		identity := a.creds.Identity()
		if identity.ID == "" && identity.Email == "" {
			fmt.Println("not logged in")
			return nil
		}
		fmt.Printf("%s <%s>\n", identity.Name, identity.Email)
		return nil

	case "cart":
		if err := a.cart.Load(ctx); err != nil {
			return err
		}
		return printCart(a.cart.Snapshot())

	case "cart-add":
		fs := flag.NewFlagSet("cart-add", flag.ExitOnError)
		productID := fs.String("product", "", "product id")
		qty := fs.Int64("qty", 1, "quantity")
		_ = fs.Parse(args)
		if err := a.cart.Load(ctx); err != nil {
			return err
		}
		if err := a.cart.AddItem(ctx, *productID, *qty); err != nil {
			return err
		}
		return printCart(a.cart.Snapshot())

	case "cart-set":
		fs := flag.NewFlagSet("cart-set", flag.ExitOnError)
		itemID := fs.String("item", "", "cart line id")
		qty := fs.Int64("qty", 1, "quantity; zero removes the line")
		_ = fs.Parse(args)
		if err := a.cart.Load(ctx); err != nil {
			return err
		}
		if err := a.cart.UpdateItem(ctx, *itemID, *qty); err != nil {
			return err
		}
		return printCart(a.cart.Snapshot())

	case "cart-rm":
		fs := flag.NewFlagSet("cart-rm", flag.ExitOnError)
		itemID := fs.String("item", "", "cart line id")
		_ = fs.Parse(args)
		if err := a.cart.Load(ctx); err != nil {
			return err
		}
		if err := a.cart.RemoveItem(ctx, *itemID); err != nil {
			return err
		}
		return printCart(a.cart.Snapshot())

	case "products":
		fs := flag.NewFlagSet("products", flag.ExitOnError)
		q := fs.String("q", "", "search query")
		limit := fs.Int("limit", 20, "page size")
		_ = fs.Parse(args)
		list, err := a.client.ListProducts(ctx, api.ProductListQuery{Q: *q, Limit: *limit})
		if err != nil {
			return err
		}
		for _, p := range list {
			fmt.Printf("%s\t%s\tRp %d\n", p.ID, p.Title, p.PriceIDR)
		}
		return nil

	case "product-set":
		fs := flag.NewFlagSet("product-set", flag.ExitOnError)
		id := fs.String("id", "", "product id")
		title := fs.String("title", "", "product title")
		price := fs.Int64("price", 0, "price in IDR")
		unit := fs.String("unit", "", "price unit")
		desc := fs.String("desc", "", "description")
		_ = fs.Parse(args)
		updated, err := a.client.UpdateAdminProduct(ctx, *id, api.AdminProductPayload{
			Title: *title, PriceIDR: *price, PriceUnit: *unit, Description: *desc,
		})
		if err != nil {
			return err
		}
		// The cached snapshot is stale now; drop it so the next cart
		// enrichment refetches the edited product.
		a.products.Invalidate(*id)
		fmt.Printf("%s\t%s\tRp %d\n", updated.ID, updated.Title, updated.PriceIDR)
		return nil

	case "ship":
		fs := flag.NewFlagSet("ship", flag.ExitOnError)
		option := fs.String("option", "", "shipping option id")
		_ = fs.Parse(args)
		a.checkout.SetShippingOption(ctx, *option)
		return a.summarize(ctx)

	case "carrier":
		fs := flag.NewFlagSet("carrier", flag.ExitOnError)
		id := fs.String("id", "", "carrier id")
		_ = fs.Parse(args)
		a.checkout.SetCarrier(*id)
		return nil

	case "packaging":
		fs := flag.NewFlagSet("packaging", flag.ExitOnError)
		id := fs.String("id", "", "packaging id")
		_ = fs.Parse(args)
		a.checkout.SetPackaging(*id)
		return nil

	case "summary":
		if err := a.cart.Load(ctx); err != nil {
			return err
		}
		return a.summarize(ctx)

	case "place":
		if err := a.cart.Load(ctx); err != nil {
			return err
		}
		if err := a.checkout.CalculateSummary(ctx); err != nil {
			return err
		}
		orderID, err := a.checkout.PlaceOrder(ctx)
		if err != nil {
			return err
		}
		fmt.Println("order placed:", orderID)
		return nil

	case "order":
		fs := flag.NewFlagSet("order", flag.ExitOnError)
		id := fs.String("id", "", "order id; defaults to the current checkout order")
		_ = fs.Parse(args)
		orderID := *id
		if orderID == "" {
			orderID = a.checkout.Snapshot().OrderID
		}
		if err := a.checkout.LoadOrder(ctx, orderID); err != nil {
			return err
		}
		state := a.checkout.Snapshot()
		fmt.Printf("order %s: status=%s payment=%s\n", state.OrderID, state.OrderStatus, state.PaymentStatus)
		if remaining, expired := a.checkout.PaymentWindow(); expired {
			fmt.Println("payment window expired")
		} else if state.PaymentDeadline != nil {
			fmt.Println("payment window remaining:", remaining.Round(time.Second))
		}
		return nil

	case "pay-check":
		paid, err := a.checkout.CheckPaymentStatus(ctx)
		if err != nil {
			return err
		}
		if paid {
			fmt.Println("payment confirmed")
		}
		return nil

	case "pay-wait":
		a.checkout.StartCountdown(ctx, func(remaining time.Duration, expired bool) {
			if expired {
				fmt.Println("payment window expired")
				return
			}
			fmt.Printf("\rremaining: %s ", remaining.Round(time.Second))
		})
		paid, err := a.checkout.AwaitPayment(ctx, a.config.PaymentPollInterval)
		a.checkout.StopCountdown()
		if errors.Is(err, context.Canceled) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}
		if paid {
			fmt.Println("\npayment confirmed")
		}
		return nil

	case "new-checkout":
		a.checkout.ClearOrder()
		fmt.Println("checkout cleared")
		return nil

	case "chat":
		fs := flag.NewFlagSet("chat", flag.ExitOnError)
		message := fs.String("message", "", "message to support")
		_ = fs.Parse(args)
		ok, err := a.chat.SendMessage(ctx, *message)
		if err != nil {
			return err
		}
		state := a.chat.Snapshot()
		if !ok {
			if state.Error != "" {
				return fmt.Errorf("%s", state.Error)
			}
			return nil
		}
		last := state.Messages[len(state.Messages)-1]
		fmt.Println(last.Content)
		return nil

	case "chat-clear":
		a.chat.ClearMessages()
		fmt.Println("transcript cleared")
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) summarize(ctx context.Context) error {
	if err := a.checkout.CalculateSummary(ctx); err != nil {
		return err
	}
	state := a.checkout.Snapshot()
	if state.Summary == nil {
		return nil
	}
	s := state.Summary
	fmt.Printf("subtotal  Rp %d\nshipping  Rp %d\ntax       Rp %d\ntotal     Rp %d\n",
		s.Subtotal, s.ShippingFee, s.TaxAmount, s.Total)
	return nil
}

func printCart(state cart.State) error {
	if state.Error != "" {
		return fmt.Errorf("%s", state.Error)
	}
	for _, line := range state.Items {
		title := "Produk"
		if line.Product != nil {
			title = line.Product.Title
		}
		fmt.Printf("%s\t%s\tx%d\n", line.ID, title, line.Qty)
	}
	fmt.Printf("subtotal: Rp %d %s\n", state.Subtotal, state.Currency)
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: storefront <command> [flags]

commands:
  login -email -password      log in
  register -name -email ...   create an account
  logout                      log out and wipe local state
  whoami                      show the current identity
  products [-q]               browse the catalog
  product-set -id ...         edit a product (admin)
  cart                        show the cart
  cart-add -product [-qty]    add a product
  cart-set -item -qty         change a line quantity
  cart-rm -item               remove a line
  ship -option                select a shipping tier
  carrier -id                 select a courier
  packaging -id               select packaging
  summary                     recompute the priced summary
  place                       place the order
  order [-id]                 show order status
  pay-check                   poll payment status
  pay-wait                    countdown and poll until paid
  new-checkout                clear the order and start over
  chat -message               ask support
  chat-clear                  clear the chat transcript`)
}
