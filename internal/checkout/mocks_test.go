package checkout

import (
	"context"
	"sync"

	"github.com/BrianMwendwa180/Ecomerce-project/internal/auth"
	"github.com/BrianMwendwa180/Ecomerce-project/internal/payment"
)

// mockIdentity implements auth.Identity with a fixed answer.
type mockIdentity struct {
	active bool
	user   auth.User
}

func (m *mockIdentity) IsSessionActive() bool { return m.active }

func (m *mockIdentity) CurrentUser() (auth.User, bool) {
	if !m.active {
		return auth.User{}, false
	}
	return m.user, true
}

// mockProvider resolves charges from a script, or blocks until released so
// tests can act while a charge is in flight.
type mockProvider struct {
	mu       sync.Mutex
	outcome  *payment.Outcome
	err      error
	readyErr error
	release  chan *payment.Outcome // when set, Charge blocks on it
	amounts  []float64             // amounts received, in order
	calls    int
	resets   int
}

func (m *mockProvider) Ready() error { return m.readyErr }

func (m *mockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets++
}

func (m *mockProvider) resetCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resets
}

func (m *mockProvider) Charge(ctx context.Context, amount float64) (*payment.Outcome, error) {
	m.mu.Lock()
	m.calls++
	m.amounts = append(m.amounts, amount)
	release := m.release
	outcome, err := m.outcome, m.err
	m.mu.Unlock()

	if release != nil {
		select {
		case o := <-release:
			return o, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return outcome, err
}

func (m *mockProvider) chargedAmounts() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]float64, len(m.amounts))
	copy(out, m.amounts)
	return out
}

func (m *mockProvider) chargeCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockNotifier records notifications.
type mockNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (m *mockNotifier) PaymentSucceeded(transactionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.successes = append(m.successes, transactionID)
}

func (m *mockNotifier) PaymentFailed(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, reason)
}

func (m *mockNotifier) successList() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.successes))
	copy(out, m.successes)
	return out
}

func (m *mockNotifier) failureList() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.failures))
	copy(out, m.failures)
	return out
}
