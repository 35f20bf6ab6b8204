package checkout

// Phase is the state of one checkout session.
type Phase string

const (
	// PhaseBlocked means no authenticated session existed at entry. The only
	// exit is closing the checkout; no further phase is reachable.
	PhaseBlocked Phase = "BLOCKED_NO_SESSION"

	// PhaseCollectingShipping is the initial reachable phase once a session
	// exists; the shipping form is not yet complete.
	PhaseCollectingShipping Phase = "COLLECTING_SHIPPING"

	// PhaseAwaitingPayment means shipping is valid and a payment method may
	// be selected or switched; nothing has been dispatched.
	PhaseAwaitingPayment Phase = "AWAITING_PAYMENT_SELECTION"

	// PhasePaymentInFlight means exactly one charge has been dispatched and
	// has not yet resolved.
	PhasePaymentInFlight Phase = "PAYMENT_IN_FLIGHT"

	// PhaseSucceeded is terminal: the charge resolved successfully and the
	// cart was cleared.
	PhaseSucceeded Phase = "SUCCEEDED"
)

var transitions = map[Phase][]Phase{
	PhaseBlocked:            {},
	PhaseCollectingShipping: {PhaseAwaitingPayment},
	PhaseAwaitingPayment:    {PhaseCollectingShipping, PhasePaymentInFlight},
	PhasePaymentInFlight:    {PhaseSucceeded, PhaseAwaitingPayment},
	PhaseSucceeded:          {},
}

// CanTransitionTo reports whether the phase machine allows from -> to.
// A failed charge returns to AWAITING_PAYMENT_SELECTION for retry; there is
// no FAILED terminal phase.
func CanTransitionTo(from, to Phase) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (p Phase) IsTerminal() bool {
	return p == PhaseSucceeded || p == PhaseBlocked
}

func (p Phase) String() string {
	return string(p)
}
