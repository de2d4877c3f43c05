package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Cart mutation operations.
const (
	CartOpAdd    = "add"
	CartOpRemove = "remove"
	CartOpClear  = "clear"
)

// Outcome labels shared by checkout and newsletter counters.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// StoreMetrics records storefront activity: cart mutations, placed orders,
// newsletter signups and the number of live guest sessions.
type StoreMetrics struct {
	cartMutations *prometheus.CounterVec
	checkouts     *prometheus.CounterVec
	orderValue    prometheus.Histogram
	newsletter    *prometheus.CounterVec
	sessions      prometheus.Gauge
}

// NewStoreMetrics registers the storefront metrics on the provided registerer.
// A nil registerer yields a no-op recorder.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutations by operation.",
	}, []string{"op"})
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_orders_total",
		Help: "Checkout attempts by outcome.",
	}, []string{"outcome"})
	orderValue := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkout_order_value",
		Help:    "Total price of confirmed orders.",
		Buckets: []float64{10, 25, 50, 100, 250, 500, 1000},
	})
	newsletter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "newsletter_subscriptions_total",
		Help: "Newsletter signups by outcome.",
	}, []string{"outcome"})
	sessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "active_sessions",
		Help: "Guest sessions currently held in memory.",
	})
	reg.MustRegister(cartMutations, checkouts, orderValue, newsletter, sessions)
	return &StoreMetrics{
		cartMutations: cartMutations,
		checkouts:     checkouts,
		orderValue:    orderValue,
		newsletter:    newsletter,
		sessions:      sessions,
	}
}

// IncCartMutation counts one cart mutation.
func (m *StoreMetrics) IncCartMutation(op string) {
	if m == nil || m.cartMutations == nil {
		return
	}
	m.cartMutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncCheckout counts one checkout attempt.
func (m *StoreMetrics) IncCheckout(outcome string) {
	if m == nil || m.checkouts == nil {
		return
	}
	m.checkouts.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// ObserveOrderValue records the total of a confirmed order.
func (m *StoreMetrics) ObserveOrderValue(total float64) {
	if m == nil || m.orderValue == nil {
		return
	}
	m.orderValue.Observe(total)
}

// IncNewsletter counts one newsletter signup attempt.
func (m *StoreMetrics) IncNewsletter(outcome string) {
	if m == nil || m.newsletter == nil {
		return
	}
	m.newsletter.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// SetActiveSessions publishes the live session count.
func (m *StoreMetrics) SetActiveSessions(n int) {
	if m == nil || m.sessions == nil {
		return
	}
	m.sessions.Set(float64(n))
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
