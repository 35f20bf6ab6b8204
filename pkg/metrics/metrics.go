package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Checkout tracks charge attempts by payment method and outcome status.
type Checkout struct {
	Charges    *prometheus.CounterVec
	DurationMS *prometheus.HistogramVec
}

// NewCheckout registers the checkout metrics on reg. Tests should pass a
// fresh prometheus.NewRegistry to avoid duplicate registration.
func NewCheckout(reg prometheus.Registerer) *Checkout {
	charges := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shop",
		Subsystem: "checkout",
		Name:      "charges_total",
		Help:      "Total number of charge attempts.",
	}, []string{"method", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "shop",
		Subsystem: "checkout",
		Name:      "charge_duration_ms",
		Help:      "Charge latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"method"})

	reg.MustRegister(charges, duration)
	return &Checkout{Charges: charges, DurationMS: duration}
}

// Cart mirrors the live cart as gauges. It is fed through the cart store's
// subscription, which fires after every mutation.
type Cart struct {
	Items prometheus.Gauge
	Value prometheus.Gauge
}

func NewCart(reg prometheus.Registerer) *Cart {
	items := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "shop",
		Subsystem: "cart",
		Name:      "items",
		Help:      "Current number of items in the cart.",
	})
	value := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "shop",
		Subsystem: "cart",
		Name:      "value_usd",
		Help:      "Current cart total in USD.",
	})

	reg.MustRegister(items, value)
	return &Cart{Items: items, Value: value}
}

// Observe is safe to call on a nil receiver so metrics stay optional.
func (c *Cart) Observe(itemCount int, total float64) {
	if c == nil {
		return
	}
	c.Items.Set(float64(itemCount))
	c.Value.Set(total)
}

// RecordCharge is safe to call on a nil receiver so metrics stay optional.
func (c *Checkout) RecordCharge(method, status string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.Charges.WithLabelValues(method, status).Inc()
	c.DurationMS.WithLabelValues(method).Observe(float64(elapsed.Milliseconds()))
}

func Handler() http.Handler {
	return promhttp.Handler()
}
