package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	paypalGenericError   = "PayPal payment error occurred"
	paypalDeclinedReason = "PayPal payment failed"
)

// ApprovalResult is what the embedded approval flow reports back after the
// buyer finishes (or abandons) the provider's own approval substeps.
type ApprovalResult struct {
	TransactionID string
	Declined      bool
	Reason        string
}

// ApprovalFlow is the third-party widget the PayPal provider embeds. The
// flow owns its internal create-order/approve/capture steps; this package
// only sees the final result.
type ApprovalFlow interface {
	Approve(ctx context.Context, amount float64) (*ApprovalResult, error)
}

// PayPalProvider charges through an embedded approval flow. Flow errors and
// declines map to failed Outcomes; a successful capture without a
// transaction ID gets a generated placeholder so the ID is never empty.
type PayPalProvider struct {
	flow ApprovalFlow
}

func NewPayPalProvider(flow ApprovalFlow) *PayPalProvider {
	return &PayPalProvider{flow: flow}
}

// Ready always passes: the approval flow collects its own inputs.
func (p *PayPalProvider) Ready() error {
	return nil
}

func (p *PayPalProvider) Charge(ctx context.Context, amount float64) (*Outcome, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	result, err := p.flow.Approve(ctx, amount)
	if err != nil {
		return failure(paypalGenericError), nil
	}
	if result.Declined {
		reason := result.Reason
		if reason == "" {
			reason = paypalDeclinedReason
		}
		return failure(reason), nil
	}

	transactionID := result.TransactionID
	if transactionID == "" {
		transactionID = fmt.Sprintf("PAYPAL-%s", uuid.NewString())
	}
	return success(transactionID), nil
}

// SandboxFlow approves everything after a short delay, standing in for the
// real PayPal widget in the demo deployment.
type SandboxFlow struct {
	Delay time.Duration
}

func (f SandboxFlow) Approve(ctx context.Context, _ float64) (*ApprovalResult, error) {
	if f.Delay > 0 {
		select {
		case <-time.After(f.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return &ApprovalResult{TransactionID: fmt.Sprintf("PAYPAL-%s", uuid.NewString())}, nil
}
