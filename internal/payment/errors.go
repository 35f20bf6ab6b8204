package payment

import "errors"

var (
	ErrInvalidAmount   = errors.New("charge amount must be positive")
	ErrInvalidPhone    = errors.New("please enter a valid phone number")
	ErrPhoneRequired   = errors.New("phone number is required before payment")
	ErrUnknownProvider = errors.New("unknown payment provider")
)
