// Package payment models the two interchangeable payment capabilities the
// checkout drives: a widget/approval-flow provider and a push-confirmation
// provider. Both resolve a charge to exactly one Outcome; business failures
// (declines, timeouts, cancellations) are Outcomes, never errors.
package payment

import "context"

// ChargeStatus is the terminal status of a single charge attempt.
type ChargeStatus string

const (
	StatusSuccess ChargeStatus = "SUCCESS"
	StatusFailed  ChargeStatus = "FAILED"
)

// Outcome is the single result of a charge attempt.
type Outcome struct {
	Status        ChargeStatus `json:"status"`
	TransactionID string       `json:"transaction_id,omitempty"`
	Reason        string       `json:"reason,omitempty"`
}

func (o Outcome) Succeeded() bool {
	return o.Status == StatusSuccess
}

func success(transactionID string) *Outcome {
	return &Outcome{Status: StatusSuccess, TransactionID: transactionID}
}

func failure(reason string) *Outcome {
	return &Outcome{Status: StatusFailed, Reason: reason}
}

// Provider is the uniform charge contract the checkout orchestrator is
// written against. Charge must produce exactly one Outcome per attempt;
// a returned error means the provider itself broke (transport fault,
// contract violation), not that the payment was declined.
//
// Ready reports whether the provider can dispatch at all. Providers that
// need input before a charge (a phone number, say) return a validation
// error here so the caller can surface it without starting an attempt.
type Provider interface {
	Ready() error
	Charge(ctx context.Context, amount float64) (*Outcome, error)
}

// Resetter is implemented by providers that hold per-buyer flow state, such
// as the M-Pesa step and phone number. The checkout calls Reset whenever a
// session is opened or closed; state from one session must never be visible
// in the next.
type Resetter interface {
	Reset()
}
