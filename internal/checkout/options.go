package checkout

// ShippingOption is one selectable shipping tier. These are the baked-in
// defaults used until (and as fallback for) the backend's own list.
type ShippingOption struct {
	ID      string
	Title   string
	Detail  string
	Price   int64
}

// CarrierOption is one selectable courier.
type CarrierOption struct {
	ID    string
	Label string
}

// PackagingOption is one selectable packaging style. Packaging never
// changes the priced summary; it only travels with the order.
type PackagingOption struct {
	ID    string
	Label string
}

// PaymentMethod is one selectable payment channel.
type PaymentMethod struct {
	ID    string
	Label string
}

var fallbackShippingOptions = []ShippingOption{
	{ID: "standar", Title: "Pengiriman Standar", Detail: "3 - 5 hari kerja", Price: 50000},
	{ID: "ekspres", Title: "Pengiriman Ekspres", Detail: "1 - 2 hari kerja", Price: 150000},
	{ID: "premium", Title: "Pengiriman Premium", Detail: "Pengiriman hari berikutnya", Price: 150000},
}

var defaultCarrierOptions = []CarrierOption{
	{ID: "jne", Label: "JNE"},
	{ID: "sicepat", Label: "SiCepat"},
	{ID: "anteraja", Label: "AnterAja"},
}

var defaultPackagingOptions = []PackagingOption{
	{ID: "regular", Label: "Regular"},
	{ID: "bubble", Label: "Bubble Wrap"},
	{ID: "kayu", Label: "Packing Kayu"},
}

var defaultPaymentMethod = PaymentMethod{ID: "bca", Label: "BCA Virtual Account"}

func findShippingOption(options []ShippingOption, id string) ShippingOption {
	for _, option := range options {
		if option.ID == id {
			return option
		}
	}
	return fallbackShippingOptions[0]
}

func findCarrier(options []CarrierOption, id string) CarrierOption {
	for _, option := range options {
		if option.ID == id {
			return option
		}
	}
	return defaultCarrierOptions[0]
}

func findPackaging(options []PackagingOption, id string) PackagingOption {
	for _, option := range options {
		if option.ID == id {
			return option
		}
	}
	return defaultPackagingOptions[0]
}
