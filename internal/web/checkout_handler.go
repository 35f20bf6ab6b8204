package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BrianMwendwa180/Ecomerce-project/internal/checkout"
	"github.com/BrianMwendwa180/Ecomerce-project/internal/payment"
)

type CheckoutHandler struct {
	manager *checkout.Manager
	mpesa   *payment.MpesaProvider
}

func NewCheckoutHandler(manager *checkout.Manager, mpesa *payment.MpesaProvider) *CheckoutHandler {
	return &CheckoutHandler{manager: manager, mpesa: mpesa}
}

type SelectMethodRequestDTO struct {
	Method string `json:"method"`
}

type PhoneRequestDTO struct {
	Phone string `json:"phone"`
}

type MpesaViewDTO struct {
	Step        string  `json:"step"`
	Phone       string  `json:"phone,omitempty"`
	LocalAmount float64 `json:"local_amount"`
	Currency    string  `json:"currency"`
}

type SessionViewDTO struct {
	CheckoutID  string                `json:"checkout_id"`
	Phase       string                `json:"phase"`
	Method      string                `json:"method"`
	Shipping    checkout.ShippingInfo `json:"shipping"`
	LastFailure string                `json:"last_failure,omitempty"`
	Summary     *checkout.Snapshot    `json:"summary"`
	Mpesa       *MpesaViewDTO         `json:"mpesa,omitempty"`
}

type PayResponseDTO struct {
	Phase   string           `json:"phase"`
	Outcome *payment.Outcome `json:"outcome,omitempty"`
}

func (h *CheckoutHandler) sessionView(s *checkout.Session) SessionViewDTO {
	view := SessionViewDTO{
		CheckoutID:  s.ID(),
		Phase:       s.Phase().String(),
		Method:      string(s.Method()),
		Shipping:    s.Shipping(),
		LastFailure: s.LastFailure(),
		Summary:     s.OrderSummary(),
	}
	if s.Method() == checkout.MethodMpesa {
		view.Mpesa = &MpesaViewDTO{
			Step:        string(h.mpesa.Step()),
			Phone:       h.mpesa.Phone(),
			LocalAmount: h.mpesa.LocalAmount(view.Summary.TotalAmount),
			Currency:    "KES",
		}
	}
	return view
}

// POST /api/v1/checkout
func (h *CheckoutHandler) Open(w http.ResponseWriter, _ *http.Request) {
	s := h.manager.Open()
	respondJSON(w, http.StatusCreated, h.sessionView(s))
}

// GET /api/v1/checkout
func (h *CheckoutHandler) Get(w http.ResponseWriter, _ *http.Request) {
	s := h.manager.Active()
	if s == nil {
		respondError(w, http.StatusNotFound, "not_found", "no open checkout session")
		return
	}
	respondJSON(w, http.StatusOK, h.sessionView(s))
}

// DELETE /api/v1/checkout
func (h *CheckoutHandler) Close(w http.ResponseWriter, _ *http.Request) {
	s := h.manager.Active()
	if s == nil {
		respondError(w, http.StatusNotFound, "not_found", "no open checkout session")
		return
	}
	h.manager.Close(s)
	respondJSON(w, http.StatusOK, map[string]string{"status": "closed"})
}

// PUT /api/v1/checkout/shipping
func (h *CheckoutHandler) UpdateShipping(w http.ResponseWriter, r *http.Request) {
	s := h.manager.Active()
	if s == nil {
		respondError(w, http.StatusNotFound, "not_found", "no open checkout session")
		return
	}

	var info checkout.ShippingInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if err := s.UpdateShipping(info); err != nil {
		handleCheckoutError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.sessionView(s))
}

// PUT /api/v1/checkout/method
func (h *CheckoutHandler) SelectMethod(w http.ResponseWriter, r *http.Request) {
	s := h.manager.Active()
	if s == nil {
		respondError(w, http.StatusNotFound, "not_found", "no open checkout session")
		return
	}

	var req SelectMethodRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if err := s.SelectMethod(checkout.Method(req.Method)); err != nil {
		handleCheckoutError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.sessionView(s))
}

// PUT /api/v1/checkout/phone
func (h *CheckoutHandler) SetPhone(w http.ResponseWriter, r *http.Request) {
	var req PhoneRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	normalized, err := h.mpesa.SetPhone(req.Phone)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_phone", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"phone": normalized})
}

// POST /api/v1/checkout/pay dispatches the charge and waits for the outcome
// within the request deadline. A request that times out leaves the charge
// running; its resolution is handled by the session, not this handler.
func (h *CheckoutHandler) Pay(w http.ResponseWriter, r *http.Request) {
	s := h.manager.Active()
	if s == nil {
		respondError(w, http.StatusNotFound, "not_found", "no open checkout session")
		return
	}

	// The charge outlives the request: abandoning the request must not
	// cancel a dispatched payment.
	done, err := s.Pay(context.WithoutCancel(r.Context()))
	if err != nil {
		handleCheckoutError(w, err)
		return
	}

	select {
	case outcome := <-done:
		respondJSON(w, http.StatusOK, PayResponseDTO{
			Phase:   s.Phase().String(),
			Outcome: &outcome,
		})
	case <-r.Context().Done():
		respondJSON(w, http.StatusAccepted, PayResponseDTO{
			Phase: s.Phase().String(),
		})
	}
}

func handleCheckoutError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkout.ErrNoActiveSession):
		respondError(w, http.StatusUnauthorized, "sign_in_required", err.Error())
	case errors.Is(err, checkout.ErrSessionClosed):
		respondError(w, http.StatusGone, "session_closed", err.Error())
	case errors.Is(err, checkout.ErrCheckoutComplete):
		respondError(w, http.StatusConflict, "already_completed", err.Error())
	case errors.Is(err, checkout.ErrChargeInFlight):
		respondError(w, http.StatusConflict, "payment_in_progress", err.Error())
	case errors.Is(err, checkout.ErrShippingIncomplete):
		respondError(w, http.StatusUnprocessableEntity, "shipping_incomplete", err.Error())
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", err.Error())
	case errors.Is(err, payment.ErrPhoneRequired), errors.Is(err, payment.ErrInvalidPhone):
		respondError(w, http.StatusBadRequest, "invalid_phone", err.Error())
	case errors.Is(err, payment.ErrUnknownProvider):
		respondError(w, http.StatusBadRequest, "unknown_method", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
