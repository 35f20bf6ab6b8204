package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/BrianMwendwa180/Ecomerce-project/internal/cart"
	"github.com/BrianMwendwa180/Ecomerce-project/internal/catalog"
)

// CartHandler exposes the cart store. Only the catalog side adds or updates
// lines through here; clearing on successful payment belongs to checkout.
type CartHandler struct {
	store   *cart.Store
	catalog catalog.Catalog
}

func NewCartHandler(store *cart.Store, c catalog.Catalog) *CartHandler {
	return &CartHandler{store: store, catalog: c}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartViewDTO struct {
	Items     []cart.Line `json:"items"`
	Total     float64     `json:"total"`
	ItemCount int         `json:"item_count"`
}

func (h *CartHandler) view() CartViewDTO {
	return CartViewDTO{
		Items:     h.store.Lines(),
		Total:     h.store.Total(),
		ItemCount: h.store.ItemCount(),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	product, ok := h.catalog.Get(req.ProductID)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	h.store.AddItem(product, req.Quantity)
	respondJSON(w, http.StatusCreated, h.view())
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be 99 or less")
		return
	}

	// Zero or negative removes the line, matching the store semantics.
	h.store.UpdateQuantity(productID, req.Quantity)
	respondJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	h.store.RemoveItem(productID)
	respondJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, _ *http.Request) {
	h.store.Clear()
	respondJSON(w, http.StatusOK, h.view())
}
