package payment

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Step is the M-Pesa flow phase surfaced to the checkout UI. The phases are
// mutually exclusive and strictly ordered: input until dispatch, processing
// while the push confirmation is pending, success only on a successful
// outcome. A failed attempt returns to input.
type Step string

const (
	StepInput      Step = "input"
	StepProcessing Step = "processing"
	StepSuccess    Step = "success"
)

const (
	countryCode     = "254"
	minPhoneDigits  = 10
	mpesaFailReason = "Payment was cancelled or failed"
)

// StatusSource decides whether a simulated push confirmation succeeds.
// Next must return a value in [0, 100).
type StatusSource interface {
	Next() int
}

// RandomStatus is the production source: uniform rolls.
type RandomStatus struct{}

func (RandomStatus) Next() int {
	return rand.Intn(100)
}

// MpesaConfig carries the tunables for the simulated push flow. Rate is the
// KES-per-USD conversion used for the displayed amount; it is configuration,
// not a contract.
type MpesaConfig struct {
	Rate             float64
	ConfirmDelay     time.Duration
	SuccessThreshold int // rolls below this succeed
}

func DefaultMpesaConfig() MpesaConfig {
	return MpesaConfig{
		Rate:             110,
		ConfirmDelay:     3 * time.Second,
		SuccessThreshold: 90,
	}
}

// MpesaProvider simulates an STK-push payment: the buyer supplies a phone
// number, the charge waits out a confirmation delay, then resolves with a
// provider-generated transaction ID or a cancellation.
type MpesaProvider struct {
	cfg    MpesaConfig
	status StatusSource

	mu    sync.RWMutex
	phone string
	step  Step
	seq   uint64 // bumped by Reset; stale charges cannot move the step
}

func NewMpesaProvider(cfg MpesaConfig, status StatusSource) *MpesaProvider {
	return &MpesaProvider{cfg: cfg, status: status, step: StepInput}
}

// NormalizePhone canonicalizes a Kenyan subscriber number to the 254 prefix
// form: already-prefixed numbers pass through, a leading trunk zero is
// replaced by the country code, and a bare subscriber number is prefixed.
func NormalizePhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()

	switch {
	case strings.HasPrefix(d, countryCode):
		return d
	case strings.HasPrefix(d, "0"):
		return countryCode + d[1:]
	case strings.HasPrefix(d, "7"), strings.HasPrefix(d, "1"):
		return countryCode + d
	default:
		return d
	}
}

// SetPhone validates and normalizes the buyer's number. Charges are blocked
// until this has succeeded.
func (p *MpesaProvider) SetPhone(raw string) (string, error) {
	normalized := NormalizePhone(raw)
	if len(normalized) < minPhoneDigits {
		return "", ErrInvalidPhone
	}
	p.mu.Lock()
	p.phone = normalized
	p.mu.Unlock()
	return normalized, nil
}

// Phone returns the normalized number, echoed back during processing.
func (p *MpesaProvider) Phone() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.phone
}

// Current flow phase; the UI renders exactly one of the three.
func (p *MpesaProvider) Step() Step {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.step
}

// Reset returns the flow to the input phase and forgets the buyer's number.
// A charge already in flight keeps running, but its outcome can no longer
// move the step: that outcome belongs to the session that dispatched it.
func (p *MpesaProvider) Reset() {
	p.mu.Lock()
	p.phone = ""
	p.step = StepInput
	p.seq++
	p.mu.Unlock()
}

// LocalAmount converts a USD amount to KES at the configured rate.
func (p *MpesaProvider) LocalAmount(amount float64) float64 {
	return amount * p.cfg.Rate
}

func (p *MpesaProvider) Ready() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.phone == "" {
		return ErrPhoneRequired
	}
	return nil
}

func (p *MpesaProvider) Charge(ctx context.Context, amount float64) (*Outcome, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if err := p.Ready(); err != nil {
		return nil, err
	}

	p.mu.RLock()
	seq := p.seq
	p.mu.RUnlock()

	p.setStep(seq, StepProcessing)

	// Simulated confirmation delay: the buyer is entering a PIN on the phone.
	if p.cfg.ConfirmDelay > 0 {
		select {
		case <-time.After(p.cfg.ConfirmDelay):
		case <-ctx.Done():
			p.setStep(seq, StepInput)
			return nil, ctx.Err()
		}
	}

	if p.status.Next() < p.cfg.SuccessThreshold {
		p.setStep(seq, StepSuccess)
		return success(fmt.Sprintf("MPESA%d", time.Now().UnixMilli())), nil
	}

	p.setStep(seq, StepInput)
	return failure(mpesaFailReason), nil
}

// setStep applies only if no Reset happened since the charge began.
func (p *MpesaProvider) setStep(seq uint64, step Step) {
	p.mu.Lock()
	if p.seq == seq {
		p.step = step
	}
	p.mu.Unlock()
}
