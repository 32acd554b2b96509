// Package metrics exposes storefront counters on the default prometheus
// registry. They are observational only; no behavior reads them back.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SalesAmount accumulates the gross amount of completed sales.
	SalesAmount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_sales_amount_total",
		Help: "Gross amount of completed sales in dollars.",
	})

	// CommissionAmount accumulates referral commission credited to the wallet.
	CommissionAmount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_commission_amount_total",
		Help: "Referral commission credited to the wallet in dollars.",
	})

	// WithdrawalAmount accumulates successful withdrawals.
	WithdrawalAmount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_withdrawal_amount_total",
		Help: "Amount withdrawn from the wallet in dollars.",
	})

	// CheckoutCount counts completed checkouts.
	CheckoutCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_checkouts_total",
		Help: "Number of completed checkouts.",
	})
)
