package web

import (
	"encoding/json"
	"net/http"

	"github.com/BrianMwendwa180/Ecomerce-project/internal/auth"
)

type AuthHandler struct {
	identity *auth.MockIdentity
}

func NewAuthHandler(identity *auth.MockIdentity) *AuthHandler {
	return &AuthHandler{identity: identity}
}

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequestDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	user, err := h.identity.Login(req.Email, req.Password)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_credentials", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	user, err := h.identity.Register(req.Name, req.Email, req.Password)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_credentials", err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	h.identity.Logout()
	respondJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}
