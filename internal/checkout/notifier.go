package checkout

import "go.uber.org/zap"

// Notifier receives fire-and-forget completion signals for receipt and
// toast presentation outside this core. No return value is consumed.
type Notifier interface {
	PaymentSucceeded(transactionID string)
	PaymentFailed(reason string)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) PaymentSucceeded(string) {}
func (NopNotifier) PaymentFailed(string)    {}

// LogNotifier writes notifications to the structured log, standing in for
// a toast/receipt surface.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n LogNotifier) PaymentSucceeded(transactionID string) {
	n.Logger.Info("Payment successful! Order confirmed.",
		zap.String("transaction_id", transactionID))
}

func (n LogNotifier) PaymentFailed(reason string) {
	n.Logger.Warn("Payment failed", zap.String("reason", reason))
}
