package checkout

import "errors"

var (
	ErrNoActiveSession    = errors.New("sign in required to continue with checkout")
	ErrShippingIncomplete = errors.New("please fill in all shipping information to proceed with payment")
	ErrChargeInFlight     = errors.New("a payment is already in progress for this checkout")
	ErrCheckoutComplete   = errors.New("checkout already completed")
	ErrSessionClosed      = errors.New("checkout session is closed")
	ErrEmptyCart          = errors.New("cart is empty, nothing to checkout")
)
