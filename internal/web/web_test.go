package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/BrianMwendwa180/Ecomerce-project/internal/auth"
	"github.com/BrianMwendwa180/Ecomerce-project/internal/cart"
	"github.com/BrianMwendwa180/Ecomerce-project/internal/catalog"
	"github.com/BrianMwendwa180/Ecomerce-project/internal/checkout"
	"github.com/BrianMwendwa180/Ecomerce-project/internal/payment"
)

// fixedStatus forces the simulated M-Pesa confirmation result.
type fixedStatus struct{ roll int }

func (f fixedStatus) Next() int { return f.roll }

type testServer struct {
	router   chi.Router
	cart     *cart.Store
	identity *auth.MockIdentity
	mpesa    *payment.MpesaProvider
}

// newTestServer wires the full API with instant providers. mpesaRoll decides
// whether a simulated M-Pesa confirmation succeeds (below 90) or fails.
func newTestServer(t *testing.T, mpesaRoll int) *testServer {
	t.Helper()

	shopCatalog := catalog.NewMemoryCatalog(catalog.SeedProducts())
	cartStore := cart.NewStore()
	identity := auth.NewMockIdentity()

	mpesaCfg := payment.DefaultMpesaConfig()
	mpesaCfg.ConfirmDelay = 0
	mpesa := payment.NewMpesaProvider(mpesaCfg, fixedStatus{roll: mpesaRoll})
	paypal := payment.NewPayPalProvider(payment.SandboxFlow{})

	providers := map[checkout.Method]payment.Provider{
		checkout.MethodPayPal: paypal,
		checkout.MethodMpesa:  mpesa,
	}
	manager := checkout.NewManager(cartStore, identity, providers, nil, nil, nil)

	router := NewRouter(Handlers{
		Catalog:  NewCatalogHandler(shopCatalog),
		Cart:     NewCartHandler(cartStore, shopCatalog),
		Auth:     NewAuthHandler(identity),
		Checkout: NewCheckoutHandler(manager, mpesa),
	}, 5*time.Second)

	return &testServer{
		router:   router,
		cart:     cartStore,
		identity: identity,
		mpesa:    mpesa,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func (s *testServer) login(t *testing.T) {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/v1/auth/login",
		LoginRequestDTO{Email: "john@example.com", Password: "secret"})
	require.Equal(t, http.StatusOK, rec.Code)
}
