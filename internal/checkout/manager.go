package checkout

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BrianMwendwa180/Ecomerce-project/internal/auth"
	"github.com/BrianMwendwa180/Ecomerce-project/internal/cart"
	"github.com/BrianMwendwa180/Ecomerce-project/internal/payment"
	"github.com/BrianMwendwa180/Ecomerce-project/pkg/metrics"
)

// Manager creates checkout sessions and tracks which one is active. At most
// one session is active at a time; opening a new one discards the previous,
// so a charge dispatched by a discarded session can never clear the cart.
type Manager struct {
	mu        sync.Mutex
	cart      *cart.Store
	identity  auth.Identity
	providers map[Method]payment.Provider
	notifier  Notifier
	logger    *zap.Logger
	metrics   *metrics.Checkout

	active *Session
}

func NewManager(
	cartStore *cart.Store,
	identity auth.Identity,
	providers map[Method]payment.Provider,
	notifier Notifier,
	logger *zap.Logger,
	m *metrics.Checkout,
) *Manager {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		cart:      cartStore,
		identity:  identity,
		providers: providers,
		notifier:  notifier,
		logger:    logger,
		metrics:   m,
	}
}

// Open starts a new checkout session, consulting the identity provider once
// at entry. Without an active sign-in the session is created blocked: no
// shipping form or payment is ever reachable from it.
func (m *Manager) Open() *Session {
	s := &Session{
		id:        uuid.NewString(),
		owner:     m,
		cart:      m.cart,
		providers: m.providers,
		notifier:  m.notifier,
		logger:    m.logger,
		method:    MethodPayPal,
		shipping:  ShippingInfo{Country: DefaultCountry},
	}

	user, ok := m.identity.CurrentUser()
	if !m.identity.IsSessionActive() || !ok {
		s.phase = PhaseBlocked
	} else {
		s.user = user
		s.phase = PhaseCollectingShipping
	}

	m.mu.Lock()
	old := m.active
	m.active = s
	m.mu.Unlock()

	// Lock order is manager before session everywhere (see settle), so the
	// replaced session is closed only after m.mu is released.
	if old != nil {
		old.close()
	}
	m.resetProviders()

	m.logger.Info("checkout opened",
		zap.String("checkout_id", s.id),
		zap.String("phase", s.phase.String()))
	return s
}

// Active returns the current session, if any.
func (m *Manager) Active() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Close discards a session. An in-flight charge is not cancelled; its late
// resolution is dropped by the session itself.
func (m *Manager) Close(s *Session) {
	if s == nil {
		return
	}
	m.mu.Lock()
	if m.active == s {
		m.active = nil
	}
	m.mu.Unlock()
	s.close()
	m.resetProviders()
	m.logger.Info("checkout closed", zap.String("checkout_id", s.id))
}

// settle finalizes a successful charge. Locks are taken manager first, then
// session, and the cart is cleared inside the manager's critical section, so
// a session being closed or replaced concurrently can never have its late
// success clear the cart. Returns false when the session is no longer the
// active in-flight one; the outcome is then discarded.
func (m *Manager) settle(s *Session, outcome *payment.Outcome) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.mu.Lock()
	s.inFlight = false
	if m.active != s || s.closed || s.phase != PhasePaymentInFlight {
		s.mu.Unlock()
		return false
	}
	s.result = outcome
	s.lastFailure = ""
	s.transitionLocked(PhaseSucceeded)
	s.mu.Unlock()

	m.cart.Clear()
	return true
}

// resetProviders drops per-buyer provider state, such as the M-Pesa step and
// phone number, so nothing from one session is visible in the next.
func (m *Manager) resetProviders() {
	for _, p := range m.providers {
		if r, ok := p.(payment.Resetter); ok {
			r.Reset()
		}
	}
}
