package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/BrianMwendwa180/Ecomerce-project/pkg/metrics"
)

// Handlers bundles the per-area handlers the router mounts.
type Handlers struct {
	Catalog  *CatalogHandler
	Cart     *CartHandler
	Auth     *AuthHandler
	Checkout *CheckoutHandler
}

// NewRouter assembles the shop API.
func NewRouter(h Handlers, requestTimeout time.Duration) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", h.Catalog.ListProducts)
		r.Get("/products/{product_id}", h.Catalog.GetProduct)
		r.Get("/categories", h.Catalog.ListCategories)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.Cart.GetCart)
			r.Post("/items", h.Cart.AddItem)
			r.Put("/items/{product_id}", h.Cart.UpdateQuantity)
			r.Delete("/items/{product_id}", h.Cart.RemoveItem)
			r.Delete("/", h.Cart.ClearCart)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/register", h.Auth.Register)
			r.Post("/logout", h.Auth.Logout)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", h.Checkout.Open)
			r.Get("/", h.Checkout.Get)
			r.Delete("/", h.Checkout.Close)
			r.Put("/shipping", h.Checkout.UpdateShipping)
			r.Put("/method", h.Checkout.SelectMethod)
			r.Put("/phone", h.Checkout.SetPhone)
			r.Post("/pay", h.Checkout.Pay)
		})
	})

	return r
}
