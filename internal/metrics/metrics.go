package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_requests_total",
		Help: "Total number of API requests issued, by method and status class.",
	},
		[]string{"method", "status"},
	)

	TokenRefreshTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_token_refresh_total",
		Help: "Total number of access-token refresh attempts.",
	})

	TokenRefreshFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_token_refresh_failed_total",
		Help: "Total number of access-token refresh attempts that failed.",
	})

	CartMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_cart_mutations_total",
		Help: "Total number of cart mutations applied, by kind.",
	},
		[]string{"kind"},
	)

	OrdersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_placed_total",
		Help: "Total number of orders successfully placed.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
