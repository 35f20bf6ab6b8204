package payment

import (
	"context"
	"time"

	"github.com/sony/gobreaker/v2"
)

// BreakerProvider wraps a Provider with a circuit breaker. Only transport
// faults (Charge returning an error) count as failures; declined payments
// are ordinary Outcomes and never trip the breaker. While the breaker is
// open, Charge fails fast with gobreaker.ErrOpenState, which the checkout
// boundary normalizes like any other provider error.
type BreakerProvider struct {
	inner Provider
	cb    *gobreaker.CircuitBreaker[*Outcome]
}

func NewBreakerProvider(name string, inner Provider) *BreakerProvider {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}
	return &BreakerProvider{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker[*Outcome](settings),
	}
}

func (b *BreakerProvider) Ready() error {
	return b.inner.Ready()
}

// Reset forwards to the wrapped provider's flow state. The breaker's own
// failure counts are untouched; backend health is not per-session.
func (b *BreakerProvider) Reset() {
	if r, ok := b.inner.(Resetter); ok {
		r.Reset()
	}
}

func (b *BreakerProvider) Charge(ctx context.Context, amount float64) (*Outcome, error) {
	return b.cb.Execute(func() (*Outcome, error) {
		return b.inner.Charge(ctx, amount)
	})
}
