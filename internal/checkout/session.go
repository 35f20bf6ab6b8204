package checkout

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BrianMwendwa180/Ecomerce-project/internal/auth"
	"github.com/BrianMwendwa180/Ecomerce-project/internal/cart"
	"github.com/BrianMwendwa180/Ecomerce-project/internal/payment"
)

// Method identifies the selected payment capability.
type Method string

const (
	MethodPayPal Method = "paypal"
	MethodMpesa  Method = "mpesa"
)

const genericChargeFailure = "payment provider error occurred"

// Session is one checkout attempt, from opening the checkout to closure or
// completion. All state transitions happen under the session mutex; the one
// suspension point is the in-flight charge, which resolves through a
// single-fire channel and re-enters via resolve.
type Session struct {
	mu        sync.Mutex
	id        string
	owner     *Manager
	user      auth.User
	cart      *cart.Store
	providers map[Method]payment.Provider
	notifier  Notifier
	logger    *zap.Logger

	phase       Phase
	shipping    ShippingInfo
	method      Method
	inFlight    bool
	closed      bool
	lastFailure string
	charged     *Snapshot
	result      *payment.Outcome
}

func (s *Session) ID() string { return s.id }

func (s *Session) User() auth.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Session) Method() Method {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.method
}

func (s *Session) Shipping() ShippingInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shipping
}

// LastFailure is the provider reason from the most recent failed attempt,
// cleared only by a later successful charge.
func (s *Session) LastFailure() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFailure
}

// Result is the successful outcome once the session reaches SUCCEEDED.
func (s *Session) Result() *payment.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// ChargedAmount is the dispatch-time total of the most recent attempt.
func (s *Session) ChargedAmount() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.charged == nil {
		return 0, false
	}
	return s.charged.TotalAmount, true
}

// OrderSummary reads the cart at call time; it is never cached, so it
// reflects edits made up until a charge is actually dispatched.
func (s *Session) OrderSummary() *Snapshot {
	return TakeSnapshot(s.cart)
}

// UpdateShipping replaces the shipping draft and re-evaluates the validity
// gate. The gate works both ways: editing a valid form back to invalid
// retracts payment. Edits during an in-flight charge are recorded but do
// not move the phase.
func (s *Session) UpdateShipping(info ShippingInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gateLocked(); err != nil {
		return err
	}
	if info.Country == "" {
		info.Country = DefaultCountry
	}
	s.shipping = info

	switch s.phase {
	case PhaseCollectingShipping, PhaseAwaitingPayment:
		target := PhaseCollectingShipping
		if info.Valid() {
			target = PhaseAwaitingPayment
		}
		if target != s.phase {
			s.transitionLocked(target)
		}
	}
	return nil
}

// SelectMethod switches the payment capability. Selection alone never
// dispatches a charge, and switching during an in-flight charge does not
// affect the attempt already dispatched.
func (s *Session) SelectMethod(m Method) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gateLocked(); err != nil {
		return err
	}
	if _, ok := s.providers[m]; !ok {
		return payment.ErrUnknownProvider
	}
	s.method = m
	return nil
}

// Pay dispatches exactly one charge for the current cart total to the
// selected provider and returns a single-fire channel carrying the outcome.
// Validation failures (wrong phase, provider not ready, empty cart) block
// the dispatch entirely: no charge is made and no phase changes.
func (s *Session) Pay(ctx context.Context) (<-chan payment.Outcome, error) {
	s.mu.Lock()
	if err := s.gateLocked(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if s.inFlight || s.phase == PhasePaymentInFlight {
		s.mu.Unlock()
		return nil, ErrChargeInFlight
	}
	if !CanTransitionTo(s.phase, PhasePaymentInFlight) {
		s.mu.Unlock()
		return nil, ErrShippingIncomplete
	}

	provider := s.providers[s.method]
	if err := provider.Ready(); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	snapshot := TakeSnapshot(s.cart)
	if len(snapshot.Items) == 0 {
		s.mu.Unlock()
		return nil, ErrEmptyCart
	}

	s.inFlight = true
	s.transitionLocked(PhasePaymentInFlight)
	s.charged = snapshot
	method := s.method
	s.mu.Unlock()

	s.logger.Info("charge dispatched",
		zap.String("checkout_id", s.id),
		zap.String("method", string(method)),
		zap.Float64("amount", snapshot.TotalAmount))

	done := make(chan payment.Outcome, 1)
	go func() {
		start := time.Now()
		outcome, err := provider.Charge(ctx, snapshot.TotalAmount)
		if err != nil {
			// Provider errors never propagate past this boundary and never
			// leave the session stuck in PAYMENT_IN_FLIGHT.
			s.logger.Warn("payment provider error",
				zap.String("checkout_id", s.id),
				zap.String("method", string(method)),
				zap.Error(err))
			outcome = &payment.Outcome{Status: payment.StatusFailed, Reason: genericChargeFailure}
		}
		s.owner.metrics.RecordCharge(string(method), string(outcome.Status), time.Since(start))
		s.resolve(outcome)
		done <- *outcome
	}()
	return done, nil
}

// resolve applies the outcome of a dispatched charge. A session that was
// closed or replaced while the charge was pending is discarded here without
// touching the cart. The success path runs through the owner's settle so the
// liveness check and the cart clear happen under the manager lock; resolve
// itself never holds the session lock while talking to the manager.
func (s *Session) resolve(outcome *payment.Outcome) {
	if outcome.Succeeded() {
		// Only the exact session that dispatched the successful charge may
		// clear the cart, and only while it is still the active one.
		if !s.owner.settle(s, outcome) {
			s.logger.Info("successful charge resolved for inactive session, cart untouched",
				zap.String("checkout_id", s.id),
				zap.String("transaction_id", outcome.TransactionID))
			return
		}
		s.notifier.PaymentSucceeded(outcome.TransactionID)
		s.logger.Info("checkout completed",
			zap.String("checkout_id", s.id),
			zap.String("transaction_id", outcome.TransactionID))
		return
	}

	s.mu.Lock()
	s.inFlight = false
	if s.closed || s.phase != PhasePaymentInFlight {
		s.mu.Unlock()
		s.logger.Info("late charge resolution for discarded session",
			zap.String("checkout_id", s.id),
			zap.String("status", string(outcome.Status)))
		return
	}
	s.lastFailure = outcome.Reason
	s.transitionLocked(PhaseAwaitingPayment)
	s.mu.Unlock()
	s.notifier.PaymentFailed(outcome.Reason)
}

// transitionLocked moves the machine along a declared edge; anything not in
// the transition table is refused. Callers hold the mutex.
func (s *Session) transitionLocked(to Phase) bool {
	if !CanTransitionTo(s.phase, to) {
		return false
	}
	s.phase = to
	return true
}

// gateLocked rejects operations on sessions that never had an identity or
// are already finished. Callers hold the mutex.
func (s *Session) gateLocked() error {
	if s.closed {
		return ErrSessionClosed
	}
	if s.phase == PhaseBlocked {
		return ErrNoActiveSession
	}
	if s.phase == PhaseSucceeded {
		return ErrCheckoutComplete
	}
	return nil
}

func (s *Session) close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}
