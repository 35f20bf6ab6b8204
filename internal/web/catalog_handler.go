package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/BrianMwendwa180/Ecomerce-project/internal/catalog"
)

type CatalogHandler struct {
	catalog catalog.Catalog
}

func NewCatalogHandler(c catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

type productListDTO struct {
	Products []catalog.Product `json:"products"`
	Count    int               `json:"count"`
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := catalog.Filter{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		SortBy:   q.Get("sort"),
	}
	if v := q.Get("min_price"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil || min < 0 {
			respondError(w, http.StatusBadRequest, "invalid_price", "min_price must be a non-negative number")
			return
		}
		filter.MinPrice = min
	}
	if v := q.Get("max_price"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil || max < 0 {
			respondError(w, http.StatusBadRequest, "invalid_price", "max_price must be a non-negative number")
			return
		}
		filter.MaxPrice = max
	}

	products := h.catalog.List(filter)
	respondJSON(w, http.StatusOK, productListDTO{Products: products, Count: len(products)})
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "product_id")
	product, ok := h.catalog.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]string{"categories": h.catalog.Categories()})
}
